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

// Device is implemented by anything that can own a page of the address
// space: the cartridge, the RAM and the chip register areas.
type Device interface {
	// Peek returns the byte the device drives onto the data bus for the
	// given address. Peek is not necessarily pure: accessing a cartridge
	// hotspot switches banks as a side effect of the read.
	Peek(address uint16) uint8

	// Poke presents a byte to the device. The return value indicates
	// whether the device accepted the write. ROM pokes return false; this
	// is the defined no-op of writing to read-only memory, not an error.
	Poke(address uint16, data uint8) bool
}

// PageTable is the bus dispatch layer's table of page access descriptors.
// Devices receive the table at install time and claim their pages with
// SetPageAccess().
type PageTable interface {
	GetPageAccess(page int) PageAccess
	SetPageAccess(page int, access PageAccess)
}

// Installable devices register their own page access descriptors. Install
// order matters: a device that forwards accesses to a previously installed
// device (the SB cartridge forwarding to the chips under its hotspot
// window) must be installed last. The vcs package enforces this ordering.
type Installable interface {
	Install(mem PageTable)
}

// Sentinel error patterns for use with curated.Errorf().
const (
	// AddressError is used when a device is presented with an address it
	// cannot service.
	AddressError = "address error (%#04x)"
)
