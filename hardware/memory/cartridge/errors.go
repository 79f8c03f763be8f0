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

// Sentinel error patterns for use with curated.Errorf(). Callers can detect
// these conditions with curated.Has().
const (
	// UnrecognisedSize is returned when fingerprinting cannot find a mapping
	// scheme for the image.
	UnrecognisedSize = "unrecognised cartridge size (%d bytes)"

	// IncompatibleState is returned by Load() when the identity tag in the
	// stream does not belong to the attached cartridge. Nothing beyond the
	// tag has been read when this is returned.
	IncompatibleState = "state tag %q does not match cartridge %q"

	// Ejected is returned by operations that need an attached cartridge.
	Ejected = "nothing attached to the cartridge port"
)
