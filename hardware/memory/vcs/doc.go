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

// Package vcs is the memory system of the console. The Memory type owns the
// addressable page table and dispatches every read and write to the device
// that has claimed the page. Reads of pages with a direct data reference are
// a single indexed load, which is what makes the dispatch cheap enough to
// sit on the CPU's critical path.
//
// The memory system is strictly single threaded. All access must come from
// the one goroutine driving the emulation; nothing here locks.
package vcs
