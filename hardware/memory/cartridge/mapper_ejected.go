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
	"github.com/jetsetilly/banks2600/curated"
	"github.com/jetsetilly/banks2600/hardware/memory/bus"
	"github.com/jetsetilly/banks2600/hardware/memory/memorymap"
	"github.com/jetsetilly/banks2600/serializer"
)

// ejected is the mapper attached when there is nothing in the cartridge
// port. Unlike the real hardware it keeps the page table fully populated,
// which spares every other part of the system from a nil check.
type ejected struct {
	mapperCore
}

func newEjected() *ejected {
	cart := &ejected{}
	cart.mappingID = "-"
	return cart
}

func (cart *ejected) String() string {
	return "ejected"
}

// install implements the cartMapper interface.
func (cart *ejected) install(mem bus.PageTable, owner bus.Device) {
	for addr := memorymap.OriginCart; addr <= memorymap.MemtopCart; addr += memorymap.PageSize {
		mem.SetPageAccess(memorymap.PageNumber(addr), bus.PageAccess{
			Device: owner,
			Perm:   bus.ReadOnly,
		})
	}
}

// peek implements the cartMapper interface.
func (cart *ejected) peek(_ uint16) uint8 {
	// undriven data bus
	return 0
}

// poke implements the cartMapper interface.
func (cart *ejected) poke(_ uint16, _ uint8) bool {
	return false
}

// patch implements the cartMapper interface.
func (cart *ejected) patch(_ uint16, _ uint8) {
}

// bank implements the cartMapper interface.
func (cart *ejected) bank(_ int) bool {
	return false
}

// getBank implements the cartMapper interface.
func (cart *ejected) getBank() int {
	return 0
}

// numBanks implements the cartMapper interface.
func (cart *ejected) numBanks() int {
	return 1
}

// image implements the cartMapper interface.
func (cart *ejected) image() []uint8 {
	return nil
}

// reset implements the cartMapper interface.
func (cart *ejected) reset() {
}

// save implements the cartMapper interface.
func (cart *ejected) save(_ *serializer.Serializer) error {
	return curated.Errorf(Ejected)
}

// load implements the cartMapper interface.
func (cart *ejected) load(_ *serializer.Serializer) error {
	return curated.Errorf(Ejected)
}
