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
	"fmt"

	"github.com/jetsetilly/banks2600/curated"
	"github.com/jetsetilly/banks2600/hardware/memory/bus"
	"github.com/jetsetilly/banks2600/hardware/memory/memorymap"
	"github.com/jetsetilly/banks2600/serializer"
)

// the SB hotspot window. any access in this range is a bank select. the
// range overlaps the mirrors of the TIA, RAM and RIOT, which is deliberate
// on the part of the hardware designers: the same access that selects a
// bank also reaches the chip that has always owned that address
const (
	hotspotOrigin = uint16(0x0800)
	hotspotMemtop = uint16(0x0fff)
)

// number of page table entries under the hotspot window.
const hotspotPages = int(hotspotMemtop+1-hotspotOrigin) >> memorymap.PageShift

// cartSB is the SUPERbanking format: 4k banks, as many as 64 of them,
// selected by the low bits of any address in the hotspot window.
//
//	- Boulder Dash demo
//	- homebrew ROMs of 128k and 256k generally
type cartSB struct {
	mapperCore

	data     []uint8
	bankSize int

	currentBank int

	// the bank that is active at power-on. many SB ROMs put their startup
	// code in the top bank and rely on it being selected first
	startBank int

	// the page table and owner are remembered at install time so that the
	// page access descriptors can be republished on every bank switch
	mem   bus.PageTable
	owner bus.Device

	// the descriptors that occupied the hotspot window before we claimed
	// it. accesses that stay inside the window after masking are forwarded
	// to these. captured once, at install time: the surrounding system
	// guarantees the cartridge is installed last
	hotspotAccess [hotspotPages]bus.PageAccess
}

const maximumSBSize = 64 * 4096

func newSB(data []byte) (*cartSB, error) {
	cart := &cartSB{}
	cart.mappingID = "SB"
	cart.bankSize = 4096

	if len(data) < cart.bankSize*2 || len(data)%cart.bankSize != 0 {
		return nil, curated.Errorf("SB: %v", "wrong number of bytes in the cartridge data")
	}
	if len(data) > maximumSBSize {
		return nil, curated.Errorf("SB: %v", "too many banks")
	}

	cart.data = make([]uint8, len(data))
	copy(cart.data, data)

	cart.createCodeAccess(len(data))

	cart.startBank = cart.numBanks() - 1

	return cart, nil
}

func (cart *cartSB) String() string {
	return fmt.Sprintf("%s [superbanking] Bank: %d", cart.mappingID, cart.currentBank)
}

// addressMask keeps only the bits of an address that mean anything to this
// scheme: the window/hotspot discriminating bits and the bank select bits.
// everything else is an unconnected address line.
func (cart *cartSB) addressMask() uint16 {
	return uint16(0x17ff + cart.numBanks())
}

// install implements the cartMapper interface.
func (cart *cartSB) install(mem bus.PageTable, owner bus.Device) {
	cart.mem = mem
	cart.owner = owner

	// capture the page access descriptors for the hotspot window before
	// claiming it. they belong to the chips whose mirrors live under the
	// window and we will need to forward accesses to them
	for i := 0; i < hotspotPages; i++ {
		cart.hotspotAccess[i] = mem.GetPageAccess(memorymap.PageNumber(hotspotOrigin) + i)
	}

	// claim the hotspot window. no direct data reference: every access must
	// come through the device so the bank switch side effect can happen
	for i := 0; i < hotspotPages; i++ {
		mem.SetPageAccess(memorymap.PageNumber(hotspotOrigin)+i, bus.PageAccess{
			Device: owner,
			Perm:   bus.ReadOnly,
		})
	}

	// install pages for the startup bank
	cart.bank(cart.startBank)
}

// uninstall implements the cartMapper interface. The hotspot window is
// handed back to the devices it was captured from.
func (cart *cartSB) uninstall() {
	if cart.mem == nil {
		return
	}
	for i := 0; i < hotspotPages; i++ {
		cart.mem.SetPageAccess(memorymap.PageNumber(hotspotOrigin)+i, cart.hotspotAccess[i])
	}
}

// peek implements the cartMapper interface. An access in the hotspot window
// switches banks before anything else happens.
func (cart *cartSB) peek(address uint16) uint8 {
	// the mask only matters for hotspot detection. a cartridge window read
	// uses every address line
	masked := address & cart.addressMask()

	// switch banks if necessary
	if masked&0x1800 == 0x0800 {
		cart.bank(int(masked) & cart.startBank)
	}

	if masked&memorymap.OriginCart != memorymap.OriginCart {
		// inside the hotspot window. the access belongs to whatever device
		// owned these pages before the cartridge was installed
		pa := cart.hotspotAccess[memorymap.PageNumber(masked)-memorymap.PageNumber(hotspotOrigin)]
		return pa.Device.Peek(masked)
	}

	return cart.data[cart.currentBank*cart.bankSize+int(address&memorymap.CartridgeBits)]
}

// poke implements the cartMapper interface. Symmetric with peek(): the bank
// switch happens whether the access is a read or a write.
func (cart *cartSB) poke(address uint16, data uint8) bool {
	masked := address & cart.addressMask()

	// switch banks if necessary
	if masked&0x1800 == 0x0800 {
		cart.bank(int(masked) & cart.startBank)
	}

	if masked&memorymap.OriginCart != memorymap.OriginCart {
		pa := cart.hotspotAccess[memorymap.PageNumber(masked)-memorymap.PageNumber(hotspotOrigin)]
		pa.Device.Poke(masked, data)
	}

	// this is ROM as far as the CPU is concerned
	return false
}

// patch implements the cartMapper interface. The address is relative to the
// currently active bank, not to the start of the image.
func (cart *cartSB) patch(address uint16, data uint8) {
	cart.data[cart.currentBank*cart.bankSize+int(address&memorymap.CartridgeBits)] = data
	cart.changed = true
}

// bank implements the cartMapper interface. Republishes one page access
// descriptor per page of the cartridge window, pointing into the selected
// bank's slice of the image.
func (cart *cartSB) bank(b int) bool {
	if cart.locked {
		return false
	}

	cart.currentBank = b

	if cart.mem != nil {
		offset := cart.currentBank * cart.bankSize
		for addr := memorymap.OriginCart; addr <= memorymap.MemtopCart; addr += memorymap.PageSize {
			base := offset + int(addr&memorymap.CartridgeBits)
			cart.mem.SetPageAccess(memorymap.PageNumber(addr), bus.PageAccess{
				Device:     cart.owner,
				Perm:       bus.ReadOnly,
				Data:       cart.data[base : base+memorymap.PageSize],
				CodeAccess: cart.codeAccess[base : base+memorymap.PageSize],
			})
		}
	}

	cart.changed = true
	return true
}

// getBank implements the cartMapper interface.
func (cart *cartSB) getBank() int {
	return cart.currentBank
}

// numBanks implements the cartMapper interface.
func (cart *cartSB) numBanks() int {
	return len(cart.data) / cart.bankSize
}

// image implements the cartMapper interface.
func (cart *cartSB) image() []uint8 {
	return cart.data
}

// reset implements the cartMapper interface. Power-on and the console reset
// switch both return the cartridge to the startup bank.
func (cart *cartSB) reset() {
	cart.bank(cart.startBank)
}

// save implements the cartMapper interface.
func (cart *cartSB) save(ser *serializer.Serializer) error {
	if err := ser.PutString(cart.id()); err != nil {
		return curated.Errorf("SB: %v", err)
	}
	if err := ser.PutShort(uint16(cart.currentBank)); err != nil {
		return curated.Errorf("SB: %v", err)
	}
	return nil
}

// load implements the cartMapper interface. A successful load republishes
// the page access descriptors, exactly as a live bank switch would, so the
// page table reflects the restored state.
func (cart *cartSB) load(ser *serializer.Serializer) error {
	tag, err := ser.GetString()
	if err != nil {
		return curated.Errorf("SB: %v", err)
	}
	if tag != cart.id() {
		return curated.Errorf(IncompatibleState, tag, cart.id())
	}

	b, err := ser.GetShort()
	if err != nil {
		return curated.Errorf("SB: %v", err)
	}
	if int(b) >= cart.numBanks() {
		return curated.Errorf("SB: %v", fmt.Sprintf("bank out of range (%d)", b))
	}

	cart.currentBank = int(b)
	cart.bank(cart.currentBank)

	return nil
}
