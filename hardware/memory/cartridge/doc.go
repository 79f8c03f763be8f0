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

// Package cartridge implements loading and mapping of cartridge memory.
//
// The address window the console gives a cartridge is small (0x1000 to
// 0x1fff) and images larger than that work by switching which bank of the
// image is visible through the window. The different ways of doing that are
// the mapping schemes; each scheme is implemented by a mapper type and the
// Cartridge type presents whichever mapper is attached through one uniform
// surface.
//
// Currently supported mapping schemes are listed below. The strings in
// quotation marks are the identifiers that can be used in the Format field
// of cartridgeloader.Loader. An empty string or "AUTO" tells the cartridge
// system to make a best guess from the image size.
//
//	Atari 2k		"2K"
//	Atari 4k		"4K"
//	SUPERbanking	"SB"
//
// The SB scheme selects banks through a hotspot window at 0x0800 to 0x0fff.
// That window overlaps the mirrors of the always-present chips, so the SB
// mapper forwards any access that is not a cartridge access to whatever
// device owned those pages before the cartridge was installed. The cartridge
// must therefore be the last device installed; the vcs package takes care of
// that.
package cartridge
