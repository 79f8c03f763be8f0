// This file is part of Banks2600.
//
// Banks2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Banks2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Banks2600.  If not, see <https://www.gnu.org/licenses/>.

package cartridge

import (
	"fmt"

	"github.com/jetsetilly/banks2600/curated"
	"github.com/jetsetilly/banks2600/hardware/memory/bus"
	"github.com/jetsetilly/banks2600/hardware/memory/memorymap"
	"github.com/jetsetilly/banks2600/serializer"
)

// an illegal opcode that causes a real 6507 to jam. uninitialised areas of a
// cartridge are filled with it so that a program wandering off the edge of
// its image halts rather than executing garbage
const jamOpcode = uint8(0x02)

// cart2k is the original cartridge format: no banking, data repeated
// throughout the 4k window through address masking.
//
//	- Combat
//	- Dragster
//	- Surround
//	- early titles generally
type cart2k struct {
	mapperCore

	data []uint8

	// the allocation is a power of two so the mask is all ones. out of range
	// addresses wrap rather than fault, which is what the absent address
	// lines of the real cartridge port do
	mask uint16
}

const maximum2kSize = 2048

func new2k(data []byte) (*cart2k, error) {
	cart := &cart2k{}
	cart.mappingID = "2K"

	// size can be a maximum of 2k. larger images are truncated
	size := len(data)
	if size > maximum2kSize {
		size = maximum2kSize
	}

	// allocation is the closest power of two for the given size, floored at
	// the page size, which is the smallest addressable area
	allocation := memorymap.PageSize
	for allocation < size {
		allocation <<= 1
	}

	cart.data = make([]uint8, allocation)
	for i := range cart.data {
		cart.data[i] = jamOpcode
	}
	copy(cart.data, data[:size])

	cart.createCodeAccess(allocation)

	cart.mask = uint16(allocation - 1)

	return cart, nil
}

func (cart *cart2k) String() string {
	return fmt.Sprintf("%s [atari 2k]", cart.mappingID)
}

// install implements the cartMapper interface.
func (cart *cart2k) install(mem bus.PageTable, owner bus.Device) {
	// map the image into every page of the cartridge window. the mask takes
	// care of repeating the data when the image is smaller than the window
	for addr := memorymap.OriginCart; addr <= memorymap.MemtopCart; addr += memorymap.PageSize {
		base := int(addr & cart.mask)
		mem.SetPageAccess(memorymap.PageNumber(addr), bus.PageAccess{
			Device:     owner,
			Perm:       bus.ReadOnly,
			Data:       cart.data[base : base+memorymap.PageSize],
			CodeAccess: cart.codeAccess[base : base+memorymap.PageSize],
		})
	}
}

// peek implements the cartMapper interface. Pure; there are no hotspots in
// this scheme.
func (cart *cart2k) peek(address uint16) uint8 {
	return cart.data[address&cart.mask]
}

// poke implements the cartMapper interface. This is ROM so poking has no
// effect.
func (cart *cart2k) poke(_ uint16, _ uint8) bool {
	return false
}

// patch implements the cartMapper interface.
func (cart *cart2k) patch(address uint16, data uint8) {
	cart.data[address&cart.mask] = data
	cart.changed = true
}

// bank implements the cartMapper interface. There is nothing to switch.
func (cart *cart2k) bank(_ int) bool {
	return false
}

// getBank implements the cartMapper interface.
func (cart *cart2k) getBank() int {
	return 0
}

// numBanks implements the cartMapper interface.
func (cart *cart2k) numBanks() int {
	return 1
}

// image implements the cartMapper interface.
func (cart *cart2k) image() []uint8 {
	return cart.data
}

// reset implements the cartMapper interface.
func (cart *cart2k) reset() {
	cart.changed = true
}

// save implements the cartMapper interface. There is no mutable state
// beyond the identity tag.
func (cart *cart2k) save(ser *serializer.Serializer) error {
	if err := ser.PutString(cart.id()); err != nil {
		return curated.Errorf("2k: %v", err)
	}
	return nil
}

// load implements the cartMapper interface.
func (cart *cart2k) load(ser *serializer.Serializer) error {
	tag, err := ser.GetString()
	if err != nil {
		return curated.Errorf("2k: %v", err)
	}
	if tag != cart.id() {
		return curated.Errorf(IncompatibleState, tag, cart.id())
	}
	return nil
}
