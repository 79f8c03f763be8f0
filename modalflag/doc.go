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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes). A program mode can be thought of as a tree, each mode having a
// set of flags and possibly a handful of sub-modes.
//
// The basic pattern for using modalflag is:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("INFO", "MONITOR")
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		os.Exit(0)
//	case modalflag.ParseError:
//		fmt.Println(err)
//		os.Exit(10)
//	}
//
//	switch md.Mode() {
//	case "INFO":
//		...
//	case "MONITOR":
//		...
//	}
//
// Sub-mode parsing descends a layer at a time: call NewMode(), add the
// flags for the new layer and Parse() again. The arguments not yet consumed
// are carried over automatically.
package modalflag
