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

// cart4k is the straightforward format: the image fills the cartridge
// window exactly and there is nothing to switch.
//
//	- Pitfall
//	- River Raid
//	- Barnstormer
type cart4k struct {
	mapperCore

	data []uint8
}

const size4k = 4096

func new4k(data []byte) (*cart4k, error) {
	cart := &cart4k{}
	cart.mappingID = "4K"

	if len(data) != size4k {
		return nil, curated.Errorf("4k: %v", "wrong number of bytes in the cartridge data")
	}

	cart.data = make([]uint8, size4k)
	copy(cart.data, data)

	cart.createCodeAccess(size4k)

	return cart, nil
}

func (cart *cart4k) String() string {
	return fmt.Sprintf("%s [atari 4k]", cart.mappingID)
}

// install implements the cartMapper interface.
func (cart *cart4k) install(mem bus.PageTable, owner bus.Device) {
	for addr := memorymap.OriginCart; addr <= memorymap.MemtopCart; addr += memorymap.PageSize {
		base := int(addr & memorymap.CartridgeBits)
		mem.SetPageAccess(memorymap.PageNumber(addr), bus.PageAccess{
			Device:     owner,
			Perm:       bus.ReadOnly,
			Data:       cart.data[base : base+memorymap.PageSize],
			CodeAccess: cart.codeAccess[base : base+memorymap.PageSize],
		})
	}
}

// peek implements the cartMapper interface.
func (cart *cart4k) peek(address uint16) uint8 {
	return cart.data[address&memorymap.CartridgeBits]
}

// poke implements the cartMapper interface.
func (cart *cart4k) poke(_ uint16, _ uint8) bool {
	return false
}

// patch implements the cartMapper interface.
func (cart *cart4k) patch(address uint16, data uint8) {
	cart.data[address&memorymap.CartridgeBits] = data
	cart.changed = true
}

// bank implements the cartMapper interface.
func (cart *cart4k) bank(_ int) bool {
	return false
}

// getBank implements the cartMapper interface.
func (cart *cart4k) getBank() int {
	return 0
}

// numBanks implements the cartMapper interface.
func (cart *cart4k) numBanks() int {
	return 1
}

// image implements the cartMapper interface.
func (cart *cart4k) image() []uint8 {
	return cart.data
}

// reset implements the cartMapper interface.
func (cart *cart4k) reset() {
	cart.changed = true
}

// save implements the cartMapper interface.
func (cart *cart4k) save(ser *serializer.Serializer) error {
	if err := ser.PutString(cart.id()); err != nil {
		return curated.Errorf("4k: %v", err)
	}
	return nil
}

// load implements the cartMapper interface.
func (cart *cart4k) load(ser *serializer.Serializer) error {
	tag, err := ser.GetString()
	if err != nil {
		return curated.Errorf("4k: %v", err)
	}
	if tag != cart.id() {
		return curated.Errorf(IncompatibleState, tag, cart.id())
	}
	return nil
}
