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

package vcs

import (
	"github.com/jetsetilly/banks2600/hardware/memory/bus"
	"github.com/jetsetilly/banks2600/hardware/memory/memorymap"
)

// ChipMemory is the register space of one of the console's chips (TIA or
// RIOT). The behaviour of the chips is way outside the scope of this
// project; all we need is a device that stores what is written and returns
// it on read, so that the address space is fully populated and so that the
// SB cartridge has something real to forward hotspot accesses to.
//
// Chip pages are dispatched through the Device interface rather than a
// direct data reference. Register reads and writes are not plain memory on
// real hardware and keeping the dispatch here means a future, fuller chip
// implementation can slot in without the page table changing shape.
type ChipMemory struct {
	label  string
	area   memorymap.Area
	origin uint16

	memory []uint8

	// the address of the last register written to, for the benefit of
	// debugging tools. reset by LastWrite()
	lastWrite uint16
	written   bool
}

// NewChipMemory is the preferred method of initialisation for the ChipMemory
// type.
func NewChipMemory(label string, area memorymap.Area, origin uint16, memtop uint16) *ChipMemory {
	return &ChipMemory{
		label:  label,
		area:   area,
		origin: origin,
		memory: make([]uint8, memtop-origin+1),
	}
}

// Install implements the bus.Installable interface. The chip claims every
// page in its area, mirrors included. Descriptors carry no direct data
// reference; see the commentary for the ChipMemory type.
func (chip *ChipMemory) Install(mem bus.PageTable) {
	for p := 0; p < memorymap.NumPages; p++ {
		addr := uint16(p) << memorymap.PageShift
		if _, area := memorymap.MapAddress(addr, true); area != chip.area {
			continue
		}

		mem.SetPageAccess(p, bus.PageAccess{
			Device: chip,
			Perm:   bus.ReadOnly,
		})
	}
}

// Peek implements the bus.Device interface.
func (chip *ChipMemory) Peek(address uint16) uint8 {
	ma, _ := memorymap.MapAddress(address, true)
	return chip.memory[ma^chip.origin]
}

// Poke implements the bus.Device interface.
func (chip *ChipMemory) Poke(address uint16, data uint8) bool {
	ma, _ := memorymap.MapAddress(address, false)
	chip.memory[ma^chip.origin] = data
	chip.lastWrite = ma
	chip.written = true
	return true
}

// LastWrite returns the register address of the most recent Poke() and
// whether any write has happened since the last call. Calling LastWrite
// clears the record.
func (chip *ChipMemory) LastWrite() (uint16, bool) {
	addr, ok := chip.lastWrite, chip.written
	chip.written = false
	return addr, ok
}

// Label returns the name of the chip.
func (chip *ChipMemory) Label() string {
	return chip.label
}
