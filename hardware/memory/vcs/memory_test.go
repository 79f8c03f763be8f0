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

package vcs_test

import (
	"testing"

	"github.com/jetsetilly/banks2600/cartridgeloader"
	"github.com/jetsetilly/banks2600/hardware/memory/vcs"
	"github.com/jetsetilly/banks2600/test"
)

// attachSB fills count banks of 4k, every byte of a bank being the bank
// number, and attaches the result.
func attachSB(t *testing.T, mem *vcs.Memory, count int) {
	t.Helper()

	data := make([]byte, count*4096)
	for i := range data {
		data[i] = byte(i / 4096)
	}

	err := mem.Cart.Attach(cartridgeloader.Loader{Filename: "test", Data: data})
	test.ExpectedSuccess(t, err)
}

func TestNewMemory(t *testing.T) {
	mem := vcs.NewMemory()

	// every device is in place and the cartridge port is empty
	test.Equate(t, mem.Cart.IsEjected(), true)
	test.Equate(t, mem.Read(0x1000), 0)
	test.ExpectedFailure(t, mem.Write(0x1000, 0xff))
}

func TestRAM(t *testing.T) {
	mem := vcs.NewMemory()

	test.ExpectedSuccess(t, mem.Write(0x0080, 0xde))
	test.Equate(t, mem.Read(0x0080), 0xde)

	// mirror addresses alias the same byte
	test.Equate(t, mem.Read(0x0180), 0xde)
	test.ExpectedSuccess(t, mem.Write(0x0180, 0xad))
	test.Equate(t, mem.Read(0x0080), 0xad)

	// top of RAM
	test.ExpectedSuccess(t, mem.Write(0x00ff, 0x55))
	test.Equate(t, mem.Read(0x00ff), 0x55)
	test.Equate(t, mem.RAM.Peek(0x00ff), 0x55)

	mem.RAM.Clear()
	test.Equate(t, mem.Read(0x0080), 0)
	test.Equate(t, mem.Read(0x00ff), 0)
}

func TestChipRegisters(t *testing.T) {
	mem := vcs.NewMemory()

	// TIA registers and a TIA mirror
	test.ExpectedSuccess(t, mem.Write(0x0005, 0xaa))
	test.Equate(t, mem.Read(0x0005), 0xaa)
	test.Equate(t, mem.Read(0x0045), 0xaa)

	addr, ok := mem.TIA.LastWrite()
	test.ExpectedSuccess(t, ok)
	test.Equate(t, addr, 0x0005)

	// the record clears once read
	_, ok = mem.TIA.LastWrite()
	test.ExpectedFailure(t, ok)

	// RIOT registers and a RIOT mirror
	test.ExpectedSuccess(t, mem.Write(0x0280, 0xbb))
	test.Equate(t, mem.Read(0x0280), 0xbb)
	test.Equate(t, mem.Read(0x0680), 0xbb)

	addr, ok = mem.RIOT.LastWrite()
	test.ExpectedSuccess(t, ok)
	test.Equate(t, addr, 0x0280)
}

func TestCartridgeWindow(t *testing.T) {
	mem := vcs.NewMemory()

	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i)
	}
	err := mem.Cart.Attach(cartridgeloader.Loader{Filename: "test", Data: data})
	test.ExpectedSuccess(t, err)

	test.Equate(t, mem.Read(0x1000), 0x00)
	test.Equate(t, mem.Read(0x1fff), 0xff)

	// cartridge mirrors outside the 13bit address space
	test.Equate(t, mem.Read(0xf000), 0x00)
	test.Equate(t, mem.Read(0xffff), 0xff)

	// the window is ROM
	test.ExpectedFailure(t, mem.Write(0x1000, 0x00))
	test.Equate(t, mem.Read(0x1000), 0x00)
}

func TestHotspotThroughMemory(t *testing.T) {
	mem := vcs.NewMemory()
	attachSB(t, mem, 8)

	test.Equate(t, mem.Cart.GetBank(), 7)
	test.Equate(t, mem.Read(0x1000), 7)

	// a read in the hotspot window switches banks and still reaches the
	// chip whose mirror lives underneath
	test.ExpectedSuccess(t, mem.Write(0x0000, 0x3c))
	test.Equate(t, mem.Read(0x0800), 0x3c)
	test.Equate(t, mem.Cart.GetBank(), 0)
	test.Equate(t, mem.Read(0x1000), 0)

	mem.Read(0x0803)
	test.Equate(t, mem.Cart.GetBank(), 3)
	test.Equate(t, mem.Read(0x1000), 3)

	// writes in the window switch banks too
	mem.Write(0x0805, 0x00)
	test.Equate(t, mem.Cart.GetBank(), 5)

	// ordinary chip accesses are unaffected
	mem.Read(0x0000)
	mem.Write(0x0080, 0x01)
	test.Equate(t, mem.Cart.GetBank(), 5)
}

func TestCodeAccess(t *testing.T) {
	mem := vcs.NewMemory()
	attachSB(t, mem, 4)

	// cartridge pages carry tracking information
	test.ExpectedSuccess(t, mem.SetCodeAccess(0x1000, 1))
	tag, ok := mem.CodeAccess(0x1000)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, tag, 1)

	// tracking follows the bank, not the window
	mem.Cart.SetBank(0)
	tag, ok = mem.CodeAccess(0x1000)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, tag, 0)

	mem.Cart.SetBank(3)
	tag, ok = mem.CodeAccess(0x1000)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, tag, 1)

	// chip pages carry none
	test.ExpectedFailure(t, mem.SetCodeAccess(0x0000, 1))
	_, ok = mem.CodeAccess(0x0000)
	test.ExpectedFailure(t, ok)
}

func TestPeekPoke(t *testing.T) {
	mem := vcs.NewMemory()
	attachSB(t, mem, 8)

	// Peek/Poke mirror Read/Write, hotspot side effects included
	test.Equate(t, mem.Peek(0x1000), 7)
	mem.Peek(0x0802)
	test.Equate(t, mem.Cart.GetBank(), 2)
	test.ExpectedFailure(t, mem.Poke(0x1000, 0x00))
	test.ExpectedSuccess(t, mem.Poke(0x0081, 0x99))
	test.Equate(t, mem.Peek(0x0081), 0x99)
}

func TestReplaceRestoresHotspotWindow(t *testing.T) {
	mem := vcs.NewMemory()

	test.ExpectedSuccess(t, mem.Write(0x0000, 0x3c))
	test.Equate(t, mem.Read(0x0800), 0x3c)

	attachSB(t, mem, 8)
	test.Equate(t, mem.Read(0x0800), 0x3c)
	test.Equate(t, mem.Cart.GetBank(), 0)

	// replacing the cartridge hands the hotspot window back to the chips
	// whose mirrors live underneath
	data := make([]byte, 2048)
	for i := range data {
		data[i] = 0x99
	}
	err := mem.Cart.Attach(cartridgeloader.Loader{Filename: "test", Data: data})
	test.ExpectedSuccess(t, err)
	test.Equate(t, mem.Read(0x0800), 0x3c)
	test.Equate(t, mem.Read(0x1000), 0x99)

	// a RAM mirror under the old window is writable again
	test.ExpectedSuccess(t, mem.Write(0x0980, 0xab))
	test.Equate(t, mem.Read(0x0980), 0xab)

	// and ejecting outright restores it too
	attachSB(t, mem, 8)
	mem.Cart.Eject()
	test.Equate(t, mem.Read(0x0800), 0x3c)
}
