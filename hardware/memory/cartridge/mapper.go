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
	"github.com/jetsetilly/banks2600/hardware/memory/bus"
	"github.com/jetsetilly/banks2600/serializer"
)

// cartMapper is implemented by every mapping scheme. The Cartridge type
// forwards to whichever mapper is attached.
type cartMapper interface {
	// the identity tag of the scheme. written at the head of saved state and
	// checked on load
	id() string

	// claim pages in the page table. the owner argument is the device the
	// descriptors should name, which is the enclosing Cartridge rather than
	// the mapper itself
	install(mem bus.PageTable, owner bus.Device)

	// relinquish any pages claimed outside the cartridge window. called
	// when the mapper is being replaced. the window itself needs no
	// handing back: the next mapper always claims it
	uninstall()

	// read a byte. not pure for mappers with hotspots
	peek(address uint16) uint8

	// present a byte for writing. the return value says whether the write
	// was accepted
	poke(address uint16, data uint8) bool

	// unconditionally overwrite a byte of the backing store. used by
	// debugging tools, never by the CPU
	patch(address uint16, data uint8)

	// make the specified bank visible through the cartridge window. returns
	// false, with no state change, when the mapper is bank-locked or when
	// the scheme has no banking
	bank(b int) bool

	getBank() int
	numBanks() int

	// the raw backing store. read only; use patch() to change it
	image() []uint8

	reset()

	save(ser *serializer.Serializer) error
	load(ser *serializer.Serializer) error

	// the sticky bank-changed latch and the bank-lock. provided by the
	// embedded mapperCore
	bankChanged() bool
	clearBankChanged()
	setBankLock(locked bool)
	bankLocked() bool
}

// mapperCore is the state shared by every mapping scheme. Mapper types embed
// it and gain the latch and lock behaviour for free.
type mapperCore struct {
	mappingID string

	// the bank-changed latch. set whenever a new bank becomes visible or the
	// backing store is patched. deliberately sticky: the cartridge never
	// clears it, the consumer (debugger, disassembler) does, once it has
	// refreshed whatever it was caching
	changed bool

	// when locked, bank() is a defined no-op returning false. used by
	// debugging tools to freeze the cartridge for inspection
	locked bool

	// parallel store for code/data classification, same size as the image.
	// slices of it ride along in the page access descriptors
	codeAccess []uint8
}

func (co *mapperCore) id() string {
	return co.mappingID
}

// uninstall is a no-op for mappers that only ever claim the cartridge
// window. mappers that reach outside it must provide their own.
func (co *mapperCore) uninstall() {
}

func (co *mapperCore) bankChanged() bool {
	return co.changed
}

func (co *mapperCore) clearBankChanged() {
	co.changed = false
}

func (co *mapperCore) setBankLock(locked bool) {
	co.locked = locked
}

func (co *mapperCore) bankLocked() bool {
	return co.locked
}

func (co *mapperCore) createCodeAccess(size int) {
	co.codeAccess = make([]uint8, size)
}
