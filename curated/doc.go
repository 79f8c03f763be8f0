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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function.
//
// The advantage of a curated error over a plain error is that the formatting
// pattern used to create it can be recovered later. The Is() function says
// whether an error was created with a specific pattern; the Has() function
// says whether a pattern occurs anywhere in a chain of wrapped curated
// errors. Deciding how to respond to a failed cartridge operation is then a
// matter of comparing patterns rather than strings.
//
//	err := cart.Attach(loader)
//	if curated.Has(err, cartridge.UnrecognisedSize) {
//		...
//	}
//
// Error messages in a chain of curated errors are normalised on output.
// Adjacent duplicate message parts are removed, meaning functions can wrap
// errors freely without worrying about stuttering messages.
package curated
