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

package cartridge_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/banks2600/cartridgeloader"
	"github.com/jetsetilly/banks2600/curated"
	"github.com/jetsetilly/banks2600/hardware/memory/bus"
	"github.com/jetsetilly/banks2600/hardware/memory/cartridge"
	"github.com/jetsetilly/banks2600/hardware/memory/memorymap"
	"github.com/jetsetilly/banks2600/serializer"
	"github.com/jetsetilly/banks2600/test"
)

// a bare page table for the cartridge to install into.
type mockPages struct {
	pages [memorymap.NumPages]bus.PageAccess
}

func (m *mockPages) GetPageAccess(page int) bus.PageAccess {
	return m.pages[page]
}

func (m *mockPages) SetPageAccess(page int, access bus.PageAccess) {
	m.pages[page] = access
}

// a device standing in for the chips whose mirrors live under the SB
// hotspot window. records the last address it was asked about.
type mockChip struct {
	lastAddress uint16
	value       uint8
}

func (ch *mockChip) Peek(address uint16) uint8 {
	ch.lastAddress = address
	return ch.value
}

func (ch *mockChip) Poke(address uint16, data uint8) bool {
	ch.lastAddress = address
	ch.value = data
	return true
}

// rom returns l bytes, each byte the low eight bits of its offset.
func rom(l int) []byte {
	data := make([]byte, l)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

// romSB returns an image of the given number of 4k banks, every byte of a
// bank being the bank number.
func romSB(banks int) []byte {
	data := make([]byte, banks*4096)
	for i := range data {
		data[i] = byte(i / 4096)
	}
	return data
}

// attach builds a page table with a mock chip under the hotspot window and
// attaches the data to a new cartridge installed into it.
func attach(t *testing.T, data []byte, format string) (*cartridge.Cartridge, *mockPages, *mockChip) {
	t.Helper()

	mem := &mockPages{}
	chip := &mockChip{}
	for p := 0; p < memorymap.NumPages; p++ {
		mem.SetPageAccess(p, bus.PageAccess{Device: chip, Perm: bus.ReadWrite})
	}

	cart := cartridge.NewCartridge()
	cart.Install(mem)

	err := cart.Attach(cartridgeloader.Loader{Filename: "test", Format: format, Data: data})
	test.ExpectedSuccess(t, err)

	return cart, mem, chip
}

func TestEjected(t *testing.T) {
	cart := cartridge.NewCartridge()
	test.Equate(t, cart.IsEjected(), true)
	test.Equate(t, cart.Peek(0x1000), 0)
	test.ExpectedFailure(t, cart.Poke(0x1000, 0xff))

	b := &bytes.Buffer{}
	err := cart.Save(serializer.New(b))
	if test.ExpectedFailure(t, err) {
		test.Equate(t, curated.Has(err, cartridge.Ejected), true)
	}
}

func Test2k(t *testing.T) {
	cart, mem, _ := attach(t, rom(2048), "AUTO")
	test.Equate(t, cart.ID(), "2K")
	test.Equate(t, cart.NumBanks(), 1)
	test.Equate(t, cart.GetBank(), 0)

	// the image repeats throughout the cartridge window
	test.Equate(t, cart.Peek(0x1000), 0x00)
	test.Equate(t, cart.Peek(0x1001), 0x01)
	test.Equate(t, cart.Peek(0x17ff), 0xff)
	test.Equate(t, cart.Peek(0x1800), 0x00)
	test.Equate(t, cart.Peek(0x1fff), 0xff)

	// every page of the window carries a direct reference into the image
	pa := mem.GetPageAccess(memorymap.PageNumber(memorymap.OriginCart))
	test.Equate(t, pa.Data[0], 0x00)
	pa = mem.GetPageAccess(memorymap.PageNumber(memorymap.MemtopCart))
	test.Equate(t, pa.Data[memorymap.PageSize-1], 0xff)
	test.Equate(t, int(pa.Perm), int(bus.ReadOnly))

	// this is ROM. writes change nothing
	test.ExpectedFailure(t, cart.Poke(0x1000, 0xde))
	test.Equate(t, cart.Peek(0x1000), 0x00)

	// there is no banking
	test.ExpectedFailure(t, cart.SetBank(0))
}

func Test2kShortImage(t *testing.T) {
	// images round up to the nearest power of two, the remainder filled
	// with an opcode that jams the CPU
	cart, _, _ := attach(t, rom(1000), "AUTO")
	test.Equate(t, len(cart.Image()), 1024)
	test.Equate(t, cart.Peek(0x1000+999), uint8(999&0xff))
	test.Equate(t, cart.Peek(0x1000+1000), 0x02)
	test.Equate(t, cart.Peek(0x1000+1023), 0x02)

	// the image repeats on the rounded size, not the original
	test.Equate(t, cart.Peek(0x1400), 0x00)
}

func Test2kOversizeImage(t *testing.T) {
	// over-large images are truncated when the format is given explicitly
	cart, _, _ := attach(t, rom(3000), "2K")
	test.Equate(t, len(cart.Image()), 2048)
	test.Equate(t, cart.Peek(0x17ff), 0xff)
}

func Test4k(t *testing.T) {
	cart, _, _ := attach(t, rom(4096), "AUTO")
	test.Equate(t, cart.ID(), "4K")
	test.Equate(t, cart.NumBanks(), 1)
	test.Equate(t, cart.Peek(0x1000), 0x00)
	test.Equate(t, cart.Peek(0x1fff), 0xff)
	test.ExpectedFailure(t, cart.Poke(0x1fff, 0x00))
	test.Equate(t, cart.Peek(0x1fff), 0xff)
}

func Test4kWrongSize(t *testing.T) {
	cart := cartridge.NewCartridge()
	err := cart.Attach(cartridgeloader.Loader{Filename: "test", Format: "4K", Data: rom(2048)})
	test.ExpectedFailure(t, err)
	test.Equate(t, cart.IsEjected(), true)
}

func TestFingerprintUnrecognisedSize(t *testing.T) {
	cart := cartridge.NewCartridge()
	err := cart.Attach(cartridgeloader.Loader{Filename: "test", Data: rom(5000)})
	if test.ExpectedFailure(t, err) {
		test.Equate(t, curated.Is(err, cartridge.UnrecognisedSize), true)
	}
	test.Equate(t, cart.IsEjected(), true)
}

func TestPatch(t *testing.T) {
	cart, _, _ := attach(t, rom(2048), "AUTO")
	cart.ClearBankChanged()

	cart.Patch(0x0010, 0xab)
	test.Equate(t, cart.Peek(0x1010), 0xab)
	test.Equate(t, cart.Image()[0x0010], 0xab)

	// patching trips the changed latch
	test.Equate(t, cart.BankChanged(), true)
}

func TestSBStartup(t *testing.T) {
	cart, mem, _ := attach(t, romSB(8), "AUTO")
	test.Equate(t, cart.ID(), "SB")
	test.Equate(t, cart.NumBanks(), 8)

	// the topmost bank is selected at power-on
	test.Equate(t, cart.GetBank(), 7)
	test.Equate(t, cart.Peek(0x1000), 7)

	pa := mem.GetPageAccess(memorymap.PageNumber(memorymap.OriginCart))
	test.Equate(t, pa.Data[0], 7)
}

func TestSBHotspots(t *testing.T) {
	cart, _, chip := attach(t, romSB(8), "AUTO")

	// reading a hotspot address selects the bank named by the low bits and
	// forwards the access to the chip that has always owned the address
	chip.value = 0x5a
	v := cart.Peek(0x0800)
	test.Equate(t, cart.GetBank(), 0)
	test.Equate(t, v, 0x5a)
	test.Equate(t, chip.lastAddress, 0x0800)

	cart.Peek(0x0803)
	test.Equate(t, cart.GetBank(), 3)
	test.Equate(t, cart.Peek(0x1000), 3)

	// writes switch banks just the same, and still reach the chip
	cart.Poke(0x0801, 0xe7)
	test.Equate(t, cart.GetBank(), 1)
	test.Equate(t, chip.value, 0xe7)

	// the bank select bits are masked to the number of banks
	cart.Peek(0x08ff)
	test.Equate(t, cart.GetBank(), 7)

	// mirrors of the hotspot window work through address masking
	cart.Peek(0x0e02)
	test.Equate(t, cart.GetBank(), 2)

	// cartridge window accesses never switch banks
	cart.Peek(0x1803)
	test.Equate(t, cart.GetBank(), 2)
	cart.Peek(0x1234)
	test.Equate(t, cart.GetBank(), 2)
}

func TestSBSetBankAndReset(t *testing.T) {
	cart, mem, _ := attach(t, romSB(4), "AUTO")
	test.Equate(t, cart.GetBank(), 3)

	test.ExpectedSuccess(t, cart.SetBank(1))
	test.Equate(t, cart.GetBank(), 1)
	test.Equate(t, cart.Peek(0x1abc), 1)

	// descriptors follow the switch
	pa := mem.GetPageAccess(memorymap.PageNumber(memorymap.OriginCart))
	test.Equate(t, pa.Data[0], 1)

	// out of range banks are refused
	test.ExpectedFailure(t, cart.SetBank(4))
	test.ExpectedFailure(t, cart.SetBank(-1))
	test.Equate(t, cart.GetBank(), 1)

	cart.Reset()
	test.Equate(t, cart.GetBank(), 3)
}

func TestSBBankChangedLatch(t *testing.T) {
	cart, _, _ := attach(t, romSB(8), "AUTO")

	// installation selects the startup bank, which trips the latch
	test.Equate(t, cart.BankChanged(), true)

	// the latch is sticky. only the consumer clears it
	cart.ClearBankChanged()
	test.Equate(t, cart.BankChanged(), false)

	cart.Peek(0x0802)
	test.Equate(t, cart.BankChanged(), true)
	test.Equate(t, cart.BankChanged(), true)

	cart.ClearBankChanged()
	cart.Peek(0x1000)
	test.Equate(t, cart.BankChanged(), false)
}

func TestSBBankLock(t *testing.T) {
	cart, _, _ := attach(t, romSB(8), "AUTO")
	test.Equate(t, cart.GetBank(), 7)

	cart.SetBankLock(true)
	test.Equate(t, cart.BankLocked(), true)

	// hotspots and explicit switches are both no-ops while locked
	cart.Peek(0x0802)
	test.Equate(t, cart.GetBank(), 7)
	test.ExpectedFailure(t, cart.SetBank(3))
	test.Equate(t, cart.GetBank(), 7)

	cart.SetBankLock(false)
	test.ExpectedSuccess(t, cart.SetBank(3))
	test.Equate(t, cart.GetBank(), 3)
}

func TestSBPatchPerBank(t *testing.T) {
	cart, _, _ := attach(t, romSB(8), "AUTO")

	// patches apply to the selected bank and persist across switches
	cart.SetBank(2)
	cart.Patch(0x0100, 0xab)
	test.Equate(t, cart.Peek(0x1100), 0xab)

	cart.SetBank(0)
	test.Equate(t, cart.Peek(0x1100), 0)

	cart.SetBank(2)
	test.Equate(t, cart.Peek(0x1100), 0xab)
}

func TestSBSaveLoad(t *testing.T) {
	cart, _, _ := attach(t, romSB(8), "AUTO")
	cart.SetBank(5)

	b := &bytes.Buffer{}
	test.ExpectedSuccess(t, cart.Save(serializer.New(b)))

	cart.SetBank(1)
	test.Equate(t, cart.GetBank(), 1)

	test.ExpectedSuccess(t, cart.Load(serializer.New(b)))
	test.Equate(t, cart.GetBank(), 5)

	// the restored bank is visible through the window
	test.Equate(t, cart.Peek(0x1000), 5)
}

func TestSBLoadWhileLocked(t *testing.T) {
	cart, mem, _ := attach(t, romSB(8), "AUTO")
	cart.SetBank(5)

	b := &bytes.Buffer{}
	test.ExpectedSuccess(t, cart.Save(serializer.New(b)))

	cart.SetBank(1)
	cart.SetBankLock(true)

	// the bank number restores even though the lock stops the page access
	// descriptors from being republished
	test.ExpectedSuccess(t, cart.Load(serializer.New(b)))
	test.Equate(t, cart.GetBank(), 5)

	pa := mem.GetPageAccess(memorymap.PageNumber(memorymap.OriginCart))
	test.Equate(t, pa.Data[0], 1)
}

func TestLoadIncompatibleState(t *testing.T) {
	cart2k, _, _ := attach(t, rom(2048), "AUTO")
	cartsb, _, _ := attach(t, romSB(8), "AUTO")

	b := &bytes.Buffer{}
	test.ExpectedSuccess(t, cart2k.Save(serializer.New(b)))

	cartsb.SetBank(2)
	err := cartsb.Load(serializer.New(b))
	if test.ExpectedFailure(t, err) {
		test.Equate(t, curated.Is(err, cartridge.IncompatibleState), true)
	}

	// nothing was applied
	test.Equate(t, cartsb.GetBank(), 2)
}

func TestLoadTruncatedState(t *testing.T) {
	cart, _, _ := attach(t, romSB(8), "AUTO")

	b := &bytes.Buffer{}
	ser := serializer.New(b)
	test.ExpectedSuccess(t, ser.PutString(cart.ID()))

	// the stream ends before the bank number
	err := cart.Load(serializer.New(b))
	if test.ExpectedFailure(t, err) {
		test.Equate(t, curated.Has(err, serializer.StreamError), true)
	}
}

func TestAttachReplaces(t *testing.T) {
	cart, mem, chip := attach(t, romSB(8), "AUTO")
	test.Equate(t, cart.ID(), "SB")

	err := cart.Attach(cartridgeloader.Loader{Filename: "test", Data: rom(2048)})
	test.ExpectedSuccess(t, err)
	test.Equate(t, cart.ID(), "2K")
	test.Equate(t, cart.Peek(0x1000), 0x00)

	pa := mem.GetPageAccess(memorymap.PageNumber(memorymap.OriginCart))
	test.Equate(t, pa.Data[0], 0x00)

	// the old mapper's claim on the hotspot window went with it. the pages
	// belong to the chip again, with their original permissions
	chip.value = 0x5a
	pa = mem.GetPageAccess(memorymap.PageNumber(0x0800))
	test.Equate(t, pa.Device.Peek(0x0800), 0x5a)
	test.Equate(t, pa.Perm == bus.ReadWrite, true)
}

func TestHashCheck(t *testing.T) {
	cart := cartridge.NewCartridge()

	err := cart.Attach(cartridgeloader.Loader{Filename: "test", Data: rom(2048), Hash: "notthehash"})
	test.ExpectedFailure(t, err)
	test.Equate(t, cart.IsEjected(), true)

	err = cart.Attach(cartridgeloader.Loader{Filename: "test", Data: rom(2048)})
	test.ExpectedSuccess(t, err)
	hash := cart.Hash

	err = cart.Attach(cartridgeloader.Loader{Filename: "test", Data: rom(2048), Hash: hash})
	test.ExpectedSuccess(t, err)
}
