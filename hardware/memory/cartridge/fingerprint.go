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
	"github.com/jetsetilly/banks2600/curated"
)

// fingerprint decides on a mapping scheme for the data. For the schemes this
// package supports, image size is the whole story; there are no content
// heuristics to apply.
func (cart *Cartridge) fingerprint(data []byte) error {
	var err error

	switch {
	case len(data) <= maximum2kSize:
		cart.mapper, err = new2k(data)

	case len(data) == size4k:
		cart.mapper, err = new4k(data)

	case len(data)%4096 == 0:
		cart.mapper, err = newSB(data)

	default:
		return curated.Errorf(UnrecognisedSize, len(data))
	}

	return err
}
