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

// Package bus defines the contract between the memory dispatch layer and the
// devices that occupy the address space.
//
// Every page of addressable memory is described by a PageAccess value. The
// descriptor names the device that owns the page and, where the device
// allows it, carries a direct reference into the device's backing store. The
// dispatch layer (the vcs package) reads and writes through the descriptor
// without knowing anything else about the device.
//
// Devices claim pages by calling SetPageAccess() on the PageTable given to
// them at install time. A device that remaps its memory (a bank switched
// cartridge) republishes its descriptors whenever the mapping changes. The
// page table never holds a reference that can outlive the backing store: the
// Data and CodeAccess fields are slices and pin whatever array they point
// into.
package bus
