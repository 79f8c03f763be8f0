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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/banks2600/cartridgeloader"
	"github.com/jetsetilly/banks2600/curated"
	"github.com/jetsetilly/banks2600/hardware/memory/memorymap"
	"github.com/jetsetilly/banks2600/hardware/memory/vcs"
)

// number of bus accesses between checks of the expiry timer. checking the
// timer channel is relatively expensive
const performanceBrake = 4096

// Check the performance of the memory system using the supplied cartridge.
//
// A synthetic access pattern runs for the specified duration: reads across
// the cartridge window, RAM writes and chip register reads, in roughly the
// proportions a running 6507 program would produce. Reports the number of
// accesses per second. A cpu and/or memory profile is created as requested
// by the profile arguments.
func Check(output io.Writer, cartload cartridgeloader.Loader, duration string, profileCPU bool, profileMem bool) error {
	mem := vcs.NewMemory()

	if err := mem.Cart.Attach(cartload); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	fmt.Fprintf(output, "%s\n", mem.Cart.String())

	var accesses int

	runner := func() error {
		expired := make(chan bool)
		time.AfterFunc(dur, func() {
			expired <- true
		})

		var addr uint16
		brake := 0

		for {
			// a cartridge read, a RAM write and read, a chip register read.
			// the address walks the whole space so every mirror and every
			// page table entry gets exercised
			mem.Read(memorymap.OriginCart | (addr & memorymap.CartridgeBits))
			mem.Write(memorymap.OriginRAM|(addr&0x7f), uint8(addr))
			mem.Read(memorymap.OriginRAM | (addr & 0x7f))
			mem.Read(addr & memorymap.MemtopTIA)
			addr = (addr + 1) & memorymap.Memtop
			accesses += 4

			brake++
			if brake >= performanceBrake {
				brake = 0
				select {
				case <-expired:
					return nil
				default:
				}
			}
		}
	}

	start := time.Now()

	err = cpuProfile(profileCPU, "cpu.profile", runner)
	if err != nil {
		return err
	}

	elapsed := time.Since(start).Seconds()
	if elapsed > 0 {
		fmt.Fprintf(output, "%.0f accesses/sec (%d in %.2fs)\n", float64(accesses)/elapsed, accesses, elapsed)
	}

	return memProfile(profileMem, "mem.profile")
}
