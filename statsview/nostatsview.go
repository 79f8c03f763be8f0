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

//go:build !statsview
// +build !statsview

package statsview

import (
	"fmt"
	"io"
)

const Address = ""

// Launch is a stub. The statsview build constraint was not present when the
// binary was built.
func Launch(output io.Writer) {
	fmt.Fprintln(output, "stats server not available in this build")
}

// Available reports whether the binary was built with the statsview
// constraint.
func Available() bool {
	return false
}
