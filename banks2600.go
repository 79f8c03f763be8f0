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

package main

import (
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/banks2600/cartridgeloader"
	"github.com/jetsetilly/banks2600/hardware/memory/memorymap"
	"github.com/jetsetilly/banks2600/hardware/memory/vcs"
	"github.com/jetsetilly/banks2600/logger"
	"github.com/jetsetilly/banks2600/modalflag"
	"github.com/jetsetilly/banks2600/monitor"
	"github.com/jetsetilly/banks2600/performance"
	"github.com/jetsetilly/banks2600/statsview"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("INFO", "MONITOR", "STRESS", "VIZ")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	switch md.Mode() {
	case "INFO":
		err = info(md)
	case "MONITOR":
		err = monitorMode(md)
	case "STRESS":
		err = stress(md)
	case "VIZ":
		err = viz(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		os.Exit(20)
	}
}

// attach the cartridge named in the remaining arguments to a new memory
// system. common to every mode.
func attach(md *modalflag.Modes, format string) (*vcs.Memory, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("2600 cartridge required for %s mode", md)
	case 1:
		mem := vcs.NewMemory()
		err := mem.Cart.Attach(cartridgeloader.NewLoader(md.GetArg(0), format))
		if err != nil {
			return nil, err
		}
		return mem, nil
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}
}

func info(md *modalflag.Modes) error {
	md.NewMode()
	format := md.AddString("format", "AUTO", "force use of cartridge format")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	mem, err := attach(md, *format)
	if err != nil {
		return err
	}

	fmt.Println(mem.Cart.String())
	fmt.Printf("hash: %s\n", mem.Cart.Hash)
	fmt.Printf("format: %s\n", mem.Cart.ID())
	fmt.Printf("banks: %d (current: %d)\n", mem.Cart.NumBanks(), mem.Cart.GetBank())
	fmt.Printf("image: %d bytes\n", len(mem.Cart.Image()))
	fmt.Println(memorymap.Summary())

	return nil
}

func monitorMode(md *modalflag.Modes) error {
	md.NewMode()
	format := md.AddString("format", "AUTO", "force use of cartridge format")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	mem, err := attach(md, *format)
	if err != nil {
		return err
	}

	mon, err := monitor.NewMonitor(mem)
	if err != nil {
		return err
	}

	return mon.Run()
}

func stress(md *modalflag.Modes) error {
	md.NewMode()
	format := md.AddString("format", "AUTO", "force use of cartridge format")
	duration := md.AddString("duration", "5s", "run duration (with an additional 2s overhead)")
	profCPU := md.AddBool("cpuprofile", false, "write cpu profile to cpu.profile")
	profMem := md.AddBool("memprofile", false, "write memory profile to mem.profile")
	stats := md.AddBool("statsview", statsview.Available(), "run live stats view (requires build with statsview tag)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("2600 cartridge required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0), *format)
		return performance.Check(os.Stdout, cartload, *duration, *profCPU, *profMem)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func viz(md *modalflag.Modes) error {
	md.NewMode()
	format := md.AddString("format", "AUTO", "force use of cartridge format")
	outFile := md.AddString("out", "memviz.dot", "output file for the dot diagram")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	mem, err := attach(md, *format)
	if err != nil {
		return err
	}

	f, err := os.Create(*outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	// a dot diagram of the memory system: page table, devices, the attached
	// mapper and its backing store
	memviz.Map(f, mem)

	fmt.Printf("memory diagram written to %s\n", *outFile)

	return nil
}
