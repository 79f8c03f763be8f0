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

// Package monitor is an interactive terminal onto the memory system. It
// exists so that cartridges can be poked at by hand: inspect addresses,
// switch banks, patch bytes, save and restore state.
//
// The command language is small and line based:
//
//	PEEK address
//	POKE address value
//	PATCH address value
//	BANK [number]
//	TAG address [value]
//	LOCK / UNLOCK
//	RAM
//	CART
//	RESET
//	SAVE filename / LOAD filename
//	QUIT
//
// Numbers are decimal by default; the 0x and $ prefixes both mean
// hexadecimal, the latter being the convention in 6502 circles.
package monitor

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/banks2600/curated"
	"github.com/jetsetilly/banks2600/hardware/memory/vcs"
	"github.com/jetsetilly/banks2600/monitor/easyterm"
	"github.com/jetsetilly/banks2600/serializer"
)

// Monitor is an interactive session against one memory system.
type Monitor struct {
	mem  *vcs.Memory
	term easyterm.Terminal

	input *bufio.Scanner

	running bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(mem *vcs.Memory) (*Monitor, error) {
	mon := &Monitor{
		mem:   mem,
		input: bufio.NewScanner(os.Stdin),
	}

	if err := mon.term.Initialise(os.Stdin, os.Stdout); err != nil {
		return nil, curated.Errorf("monitor: %v", err)
	}

	return mon, nil
}

// Run the monitor until the user quits or input is exhausted.
func (mon *Monitor) Run() error {
	// line based input wants the terminal in canonical mode, whatever state
	// the shell left it in
	mon.term.CanonicalMode()
	defer mon.term.CleanUp()

	mon.term.Print("%s\n", mon.mem.Cart.String())
	mon.running = true

	for mon.running {
		mon.prompt()
		if !mon.input.Scan() {
			break
		}
		if err := mon.parseInput(mon.input.Text()); err != nil {
			mon.term.Print("error: %v\n", err)
		}
	}

	return mon.input.Err()
}

func (mon *Monitor) prompt() {
	lock := ""
	if mon.mem.Cart.BankLocked() {
		lock = " locked"
	}
	mon.term.Print("[bank %d%s] ", mon.mem.Cart.GetBank(), lock)
}

func (mon *Monitor) parseInput(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	command := strings.ToUpper(fields[0])
	args := fields[1:]

	switch command {
	case "PEEK":
		addr, err := mon.parseAddress(args)
		if err != nil {
			return err
		}
		mon.term.Print("$%04x = $%02x\n", addr, mon.mem.Peek(addr))

	case "POKE":
		addr, value, err := mon.parseAddressValue(args)
		if err != nil {
			return err
		}
		if !mon.mem.Poke(addr, value) {
			return curated.Errorf("monitor: %v", "no device accepted the write")
		}

	case "PATCH":
		addr, value, err := mon.parseAddressValue(args)
		if err != nil {
			return err
		}
		mon.mem.Cart.Patch(addr, value)

	case "BANK":
		if len(args) == 0 {
			mon.term.Print("bank %d of %d\n", mon.mem.Cart.GetBank(), mon.mem.Cart.NumBanks())
			return nil
		}
		b, err := strconv.Atoi(args[0])
		if err != nil {
			return curated.Errorf("monitor: %v", err)
		}
		if !mon.mem.Cart.SetBank(b) {
			return curated.Errorf("monitor: %v", "bank could not be selected")
		}

	case "TAG":
		// read or set the code/data classification byte for an address
		switch len(args) {
		case 1:
			addr, err := parseNumber(args[0], 16)
			if err != nil {
				return err
			}
			tag, ok := mon.mem.CodeAccess(addr)
			if !ok {
				return curated.Errorf("monitor: %v", "no code access tracking for that address")
			}
			mon.term.Print("$%04x tag $%02x\n", addr, tag)
		case 2:
			addr, value, err := mon.parseAddressValue(args)
			if err != nil {
				return err
			}
			if !mon.mem.SetCodeAccess(addr, value) {
				return curated.Errorf("monitor: %v", "no code access tracking for that address")
			}
		default:
			return curated.Errorf("monitor: %v", "address, or address and value, required")
		}

	case "LOCK":
		mon.mem.Cart.SetBankLock(true)

	case "UNLOCK":
		mon.mem.Cart.SetBankLock(false)

	case "RAM":
		mon.printRAM()

	case "CART":
		mon.term.Print("%s\n", mon.mem.Cart.String())
		mon.term.Print("hash: %s\n", mon.mem.Cart.Hash)

	case "RESET":
		mon.mem.Cart.Reset()

	case "SAVE":
		return mon.save(args)

	case "LOAD":
		return mon.load(args)

	case "QUIT", "Q":
		mon.running = false

	default:
		return curated.Errorf("monitor: unrecognised command (%s)", command)
	}

	return nil
}

func (mon *Monitor) parseAddress(args []string) (uint16, error) {
	if len(args) != 1 {
		return 0, curated.Errorf("monitor: %v", "address required")
	}
	return parseNumber(args[0], 16)
}

func (mon *Monitor) parseAddressValue(args []string) (uint16, uint8, error) {
	if len(args) != 2 {
		return 0, 0, curated.Errorf("monitor: %v", "address and value required")
	}
	addr, err := parseNumber(args[0], 16)
	if err != nil {
		return 0, 0, err
	}
	value, err := parseNumber(args[1], 8)
	if err != nil {
		return 0, 0, err
	}
	return addr, uint8(value), nil
}

// parseNumber reads a decimal, 0x-prefixed or $-prefixed number of the
// given bit size. The return value is sized for addresses; narrower values
// are in range by construction.
func parseNumber(s string, bits int) (uint16, error) {
	base := 0
	if strings.HasPrefix(s, "$") {
		s = s[1:]
		base = 16
	}
	v, err := strconv.ParseUint(s, base, bits)
	if err != nil {
		return 0, curated.Errorf("monitor: %v", err)
	}
	return uint16(v), nil
}

func (mon *Monitor) printRAM() {
	for i := 0; i < vcs.RAMSize; i += 16 {
		mon.term.Print("$%02x:", 0x80+i)
		for j := 0; j < 16; j++ {
			mon.term.Print(" %02x", mon.mem.RAM.Peek(uint16(0x80+i+j)))
		}
		mon.term.Print("\n")
	}
}

func (mon *Monitor) save(args []string) error {
	if len(args) != 1 {
		return curated.Errorf("monitor: %v", "filename required")
	}

	f, err := os.Create(args[0])
	if err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	defer f.Close()

	return mon.mem.Cart.Save(serializer.New(f))
}

func (mon *Monitor) load(args []string) error {
	if len(args) != 1 {
		return curated.Errorf("monitor: %v", "filename required")
	}

	f, err := os.OpenFile(args[0], os.O_RDWR, 0)
	if err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	defer f.Close()

	return mon.mem.Cart.Load(serializer.New(f))
}
