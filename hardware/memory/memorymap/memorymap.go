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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case TIA:
		return "TIA"
	case RAM:
		return "RAM"
	case RIOT:
		return "RIOT"
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// The different memory areas in the VCS.
const (
	Undefined Area = iota
	TIA
	RAM
	RIOT
	Cartridge
)

// The origin and memory top for each area of memory. Checking which area an
// address falls within and forcing the address into the normalised range is
// all handled by the MapAddress() function.
const (
	OriginTIA  = uint16(0x0000)
	MemtopTIA  = uint16(0x003f)
	OriginRAM  = uint16(0x0080)
	MemtopRAM  = uint16(0x00ff)
	OriginRIOT = uint16(0x0280)
	MemtopRIOT = uint16(0x0297)
	OriginCart = uint16(0x1000)
	MemtopCart = uint16(0x1fff)
)

// Memtop is the top most address of memory in the VCS. It is the same as the
// cartridge memtop. Addresses are normalised with (addr & Memtop) before
// being looked up in the page table.
const Memtop = uint16(0x1fff)

// CartridgeBits identifies the bits in an address that are relevant to the
// cartridge address. Useful for discounting the bits that determine the
// cartridge mirror. For example, the following will be true:
//
//	0x1123 & CartridgeBits == 0xf123 & CartridgeBits
const CartridgeBits = OriginCart ^ MemtopCart

// The page table divides the addressable space into fixed size pages. The
// page is the granularity at which ownership of an address is tracked. 64
// bytes is the smallest amount of memory any device occupies contiguously
// (the TIA register mirror) so there is no need for anything finer.
const (
	PageShift = 6
	PageSize  = 1 << PageShift
	PageMask  = uint16(PageSize - 1)
	NumPages  = int(Memtop+1) >> PageShift
)

// PageNumber converts a (normalised) address to the index of the page table
// entry that owns it.
func PageNumber(address uint16) int {
	return int(address&Memtop) >> PageShift
}

// MapAddress translates the address argument from mirror space to primary
// space. Generally, an address should be passed through this function before
// accessing memory directly.
func MapAddress(address uint16, read bool) (uint16, Area) {
	// note that the order of these filters is important

	// cartridge addresses
	if address&OriginCart == OriginCart {
		return address & MemtopCart, Cartridge
	}

	// RIOT addresses
	if address&OriginRIOT == OriginRIOT {
		return address & MemtopRIOT, RIOT
	}

	// RAM addresses
	if address&OriginRAM == OriginRAM {
		return address & MemtopRAM, RAM
	}

	// everything else is in TIA space
	return address & MemtopTIA, TIA
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address, true)
	return area == a
}
