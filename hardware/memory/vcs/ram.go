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

// RAMSize is the amount of RAM in the console. The 6532 gives us 128 bytes
// and that's the lot.
const RAMSize = 128

// RAM represents the console's RAM, mirrored throughout the address space
// wherever the memory map says RAM lives.
type RAM struct {
	memory []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{
		memory: make([]uint8, RAMSize),
	}
}

// Install implements the bus.Installable interface. Every RAM page,
// including the mirrors, receives a direct read-write reference into the one
// backing store so that mirrored addresses alias the same bytes.
func (ram *RAM) Install(mem bus.PageTable) {
	for p := 0; p < memorymap.NumPages; p++ {
		addr := uint16(p) << memorymap.PageShift
		ma, area := memorymap.MapAddress(addr, true)
		if area != memorymap.RAM {
			continue
		}

		offset := ma ^ memorymap.OriginRAM
		mem.SetPageAccess(p, bus.PageAccess{
			Device: ram,
			Perm:   bus.ReadWrite,
			Data:   ram.memory[offset : offset+memorymap.PageSize],
		})
	}
}

// Peek implements the bus.Device interface.
func (ram *RAM) Peek(address uint16) uint8 {
	ma, _ := memorymap.MapAddress(address, true)
	return ram.memory[ma^memorymap.OriginRAM]
}

// Poke implements the bus.Device interface.
func (ram *RAM) Poke(address uint16, data uint8) bool {
	ma, _ := memorymap.MapAddress(address, false)
	ram.memory[ma^memorymap.OriginRAM] = data
	return true
}

// Clear sets every byte of RAM to zero.
func (ram *RAM) Clear() {
	for i := range ram.memory {
		ram.memory[i] = 0
	}
}
