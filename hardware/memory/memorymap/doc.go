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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents.
//
// Because of the limited number of address lines used by the 6507 in the VCS
// the number of addressable locations is a lot less than the 16bit suggested
// by the addressing model of the CPU. The MapAddress() function should be
// used to produce a "mapped address" whenever an address is being used from
// the viewpoint of the CPU.
//
//	ma, area := memorymap.MapAddress(address, true)
//
// The package also defines the geometry of the page table used by the vcs
// package. Addressable memory is divided into pages of PageSize bytes and
// the PageNumber() function converts an address into a page table index.
package memorymap
