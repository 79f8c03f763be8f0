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

package bus

// Permission describes what kind of access a page allows through the direct
// Data reference. Pages without ReadWrite permission can still be poked; the
// poke is dispatched to the owning device which is free to ignore it.
type Permission int

// Valid Permission values.
const (
	ReadOnly Permission = iota
	ReadWrite
)

// PageAccess describes how one page of the address space is serviced. It is
// the equivalent of a row in the addressable page table described by the
// hardware documentation: owning device, capability and a direct reference
// into the device's backing store.
//
// If Data is non-nil a read of the page is a simple indexed load and, when
// Perm is ReadWrite, a write is a simple indexed store. If Data is nil every
// access is dispatched through the Device interface. Pages with read side
// effects (hotspots) must leave Data as nil.
//
// Data and CodeAccess are slices into memory owned by the device. A device
// that remaps its memory must republish its descriptors; the page table
// itself never rewrites them.
type PageAccess struct {
	Device Device
	Perm   Permission

	// direct reference to this page's bytes. length is at least the page
	// size. indexed with (address & memorymap.PageMask)
	Data []uint8

	// parallel tracking bytes for code/data classification. maintained by
	// external debugging tools, not by the dispatch layer
	CodeAccess []uint8
}
