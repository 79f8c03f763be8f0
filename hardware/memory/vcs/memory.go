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
	"github.com/jetsetilly/banks2600/hardware/memory/cartridge"
	"github.com/jetsetilly/banks2600/hardware/memory/memorymap"
)

// Memory is the complete VCS memory system. It owns the addressable page
// table and the devices that populate it.
type Memory struct {
	// one descriptor per 64 byte page of the (normalised) address space.
	// rewritten by devices whenever their mapping changes
	pages [memorymap.NumPages]bus.PageAccess

	RAM  *RAM
	TIA  *ChipMemory
	RIOT *ChipMemory
	Cart *cartridge.Cartridge
}

// NewMemory is the preferred method of initialisation for the Memory type.
//
// Install order is significant. The cartridge is installed last because the
// SB mapper captures the descriptors of whatever is under its hotspot window
// at install time. Installing another device over that window afterwards
// would leave the cartridge forwarding to a stale descriptor.
func NewMemory() *Memory {
	mem := &Memory{}

	mem.TIA = NewChipMemory("TIA", memorymap.TIA, memorymap.OriginTIA, memorymap.MemtopTIA)
	mem.RIOT = NewChipMemory("RIOT", memorymap.RIOT, memorymap.OriginRIOT, memorymap.MemtopRIOT)
	mem.RAM = NewRAM()
	mem.Cart = cartridge.NewCartridge()

	mem.TIA.Install(mem)
	mem.RIOT.Install(mem)
	mem.RAM.Install(mem)
	mem.Cart.Install(mem)

	return mem
}

// GetPageAccess implements the bus.PageTable interface.
func (mem *Memory) GetPageAccess(page int) bus.PageAccess {
	return mem.pages[page]
}

// SetPageAccess implements the bus.PageTable interface. It always succeeds
// and overwrites any previous claim on the page.
func (mem *Memory) SetPageAccess(page int, access bus.PageAccess) {
	mem.pages[page] = access
}

// Read a byte from the address. The address is normalised before the page
// table lookup so mirror addresses work naturally.
//
// Note that a read is not necessarily pure. Reading a cartridge hotspot
// address is an instruction to the cartridge to switch banks.
func (mem *Memory) Read(address uint16) uint8 {
	address &= memorymap.Memtop
	pa := mem.pages[address>>memorymap.PageShift]
	if pa.Data != nil {
		return pa.Data[address&memorymap.PageMask]
	}
	return pa.Device.Peek(address)
}

// Write a byte to the address. The return value indicates whether any device
// accepted the write; writes to ROM return false.
func (mem *Memory) Write(address uint16, data uint8) bool {
	address &= memorymap.Memtop
	pa := &mem.pages[address>>memorymap.PageShift]
	if pa.Perm == bus.ReadWrite && pa.Data != nil {
		pa.Data[address&memorymap.PageMask] = data
		return true
	}
	return pa.Device.Poke(address, data)
}

// Peek is the debugging interface equivalent of Read(). The same hotspot
// caveat applies: peeking a hotspot address switches banks.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.Read(address)
}

// Poke is the debugging interface equivalent of Write().
func (mem *Memory) Poke(address uint16, data uint8) bool {
	return mem.Write(address, data)
}

// CodeAccess returns the code/data classification byte for the address. The
// second return value is false if the owning page carries no tracking
// information.
func (mem *Memory) CodeAccess(address uint16) (uint8, bool) {
	address &= memorymap.Memtop
	pa := mem.pages[address>>memorymap.PageShift]
	if pa.CodeAccess == nil {
		return 0, false
	}
	return pa.CodeAccess[address&memorymap.PageMask], true
}

// SetCodeAccess tags the address with a code/data classification byte. The
// return value is false if the owning page carries no tracking information.
func (mem *Memory) SetCodeAccess(address uint16, tag uint8) bool {
	address &= memorymap.Memtop
	pa := mem.pages[address>>memorymap.PageShift]
	if pa.CodeAccess == nil {
		return false
	}
	pa.CodeAccess[address&memorymap.PageMask] = tag
	return true
}
