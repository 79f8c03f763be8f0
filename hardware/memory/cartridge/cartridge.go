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
	"crypto/sha1"
	"fmt"
	"strings"

	"github.com/jetsetilly/banks2600/cartridgeloader"
	"github.com/jetsetilly/banks2600/curated"
	"github.com/jetsetilly/banks2600/hardware/memory/bus"
	"github.com/jetsetilly/banks2600/logger"
	"github.com/jetsetilly/banks2600/serializer"
)

const ejectedName = "ejected"

// Cartridge defines the information and operations for a VCS cartridge. The
// specifics differ between mapping schemes; the Cartridge type presents the
// attached mapper through one uniform surface.
type Cartridge struct {
	Filename string
	Hash     string

	// the specific cartridge data, mapped appropriately into the address
	// space
	mapper cartMapper

	// the page table the cartridge was installed into. remembered so that a
	// newly attached mapper can claim its pages immediately
	mem bus.PageTable
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type.
func NewCartridge() *Cartridge {
	cart := &Cartridge{}
	cart.Eject()
	return cart
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("%s\n%s", cart.Filename, cart.mapper)
}

// ID returns the identity tag of the attached mapping scheme.
func (cart *Cartridge) ID() string {
	return cart.mapper.id()
}

// Install lets the cartridge claim its pages in the page table. The
// cartridge must be the last device installed; see the package
// documentation.
func (cart *Cartridge) Install(mem bus.PageTable) {
	cart.mem = mem
	cart.mapper.install(mem, cart)
}

// Eject removes memory from cartridge space. Unlike the real hardware an
// ejected cartridge still services the cartridge window, for the convenience
// of everything else.
func (cart *Cartridge) Eject() {
	if cart.mapper != nil {
		cart.mapper.uninstall()
	}
	cart.Filename = ejectedName
	cart.Hash = ""
	cart.mapper = newEjected()
	if cart.mem != nil {
		cart.mapper.install(cart.mem, cart)
	}
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	_, ok := cart.mapper.(*ejected)
	return ok
}

// Attach loads the cartridge named by the loader and maps it into the
// address space, replacing whatever was attached before. On error the
// cartridge is left in the ejected state.
func (cart *Cartridge) Attach(cartload cartridgeloader.Loader) error {
	data, err := cartload.Load()
	if err != nil {
		return err
	}

	cart.Eject()
	cart.Filename = cartload.Filename
	cart.Hash = fmt.Sprintf("%x", sha1.Sum(data))

	// check that the hash matches any expected value
	if cartload.Hash != "" && cartload.Hash != cart.Hash {
		cart.Eject()
		return curated.Errorf("cartridge: %v", "unexpected hash value")
	}

	format := strings.ToUpper(strings.TrimSpace(cartload.Format))

	if format == "" || format == "AUTO" {
		err = cart.fingerprint(data)
	} else {
		switch format {
		case "2K":
			cart.mapper, err = new2k(data)
		case "4K":
			cart.mapper, err = new4k(data)
		case "SB":
			cart.mapper, err = newSB(data)
		default:
			err = curated.Errorf("cartridge: %v", fmt.Sprintf("unrecognised format (%s)", format))
		}
	}

	if err != nil {
		cart.Eject()
		return err
	}

	if cart.mem != nil {
		cart.mapper.install(cart.mem, cart)
	}

	return nil
}

// Peek implements the bus.Device interface. Note that a peek is not
// necessarily pure: peeking a hotspot address switches banks.
func (cart *Cartridge) Peek(address uint16) uint8 {
	return cart.mapper.peek(address)
}

// Poke implements the bus.Device interface.
func (cart *Cartridge) Poke(address uint16, data uint8) bool {
	return cart.mapper.poke(address, data)
}

// Patch unconditionally overwrites a byte of cartridge memory. For banked
// schemes the address is relative to the currently active bank. Intended for
// debugging and cheat tooling, never for the CPU.
func (cart *Cartridge) Patch(address uint16, data uint8) {
	cart.mapper.patch(address, data)
}

// GetBank returns the currently active bank number.
func (cart *Cartridge) GetBank() int {
	return cart.mapper.getBank()
}

// SetBank makes the specified bank visible through the cartridge window.
// Returns false, with no state change, if the cartridge is bank-locked or
// the scheme has no banking.
func (cart *Cartridge) SetBank(bank int) bool {
	if bank < 0 || bank >= cart.mapper.numBanks() {
		return false
	}
	return cart.mapper.bank(bank)
}

// NumBanks returns the number of banks in the cartridge.
func (cart *Cartridge) NumBanks() int {
	return cart.mapper.numBanks()
}

// Image returns the cartridge's backing store. The returned slice is the
// live store, not a copy; treat it as read only and use Patch() to change
// it.
func (cart *Cartridge) Image() []uint8 {
	return cart.mapper.image()
}

// BankChanged reports whether a new bank has become visible, or the backing
// store has been patched, since the latch was last cleared. The latch is
// sticky: the cartridge only ever sets it and the consumer clears it with
// ClearBankChanged() once any cached view has been refreshed.
func (cart *Cartridge) BankChanged() bool {
	return cart.mapper.bankChanged()
}

// ClearBankChanged clears the bank-changed latch.
func (cart *Cartridge) ClearBankChanged() {
	cart.mapper.clearBankChanged()
}

// SetBankLock freezes (or thaws) the cartridge's bank state. While locked,
// every bank switch, hotspot triggered or otherwise, is a no-op.
func (cart *Cartridge) SetBankLock(locked bool) {
	cart.mapper.setBankLock(locked)
}

// BankLocked reports whether the cartridge is bank-locked.
func (cart *Cartridge) BankLocked() bool {
	return cart.mapper.bankLocked()
}

// Reset the cartridge to its power-on state. For banked schemes this
// selects the startup bank.
func (cart *Cartridge) Reset() {
	cart.mapper.reset()
}

// Save writes the cartridge's identity tag and mutable state to the
// serializer. Failures are reported to the central log as well as returned;
// nothing propagates as a fault.
func (cart *Cartridge) Save(ser *serializer.Serializer) error {
	if err := cart.mapper.save(ser); err != nil {
		logger.Logf("cartridge", "save: %v", err)
		return err
	}
	return nil
}

// Load reads previously saved state from the serializer and applies it,
// republishing page access descriptors exactly as a live bank switch would.
// Fails cleanly, with no state applied, if the identity tag in the stream
// does not match the attached cartridge.
func (cart *Cartridge) Load(ser *serializer.Serializer) error {
	if err := cart.mapper.load(ser); err != nil {
		logger.Logf("cartridge", "load: %v", err)
		return err
	}
	return nil
}
