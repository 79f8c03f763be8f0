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

package serializer_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/banks2600/curated"
	"github.com/jetsetilly/banks2600/serializer"
	"github.com/jetsetilly/banks2600/test"
)

func TestRoundTrip(t *testing.T) {
	b := &bytes.Buffer{}
	ser := serializer.New(b)

	test.ExpectedSuccess(t, ser.PutString("SB"))
	test.ExpectedSuccess(t, ser.PutShort(0x1234))
	test.ExpectedSuccess(t, ser.PutByte(0xab))

	s, err := ser.GetString()
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "SB")

	v, err := ser.GetShort()
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x1234)

	by, err := ser.GetByte()
	test.ExpectedSuccess(t, err)
	test.Equate(t, by, 0xab)
}

func TestTruncatedStream(t *testing.T) {
	b := &bytes.Buffer{}
	ser := serializer.New(b)

	test.ExpectedSuccess(t, ser.PutString("2K"))

	// chop the stream mid-string
	trunc := bytes.NewBuffer(b.Bytes()[:3])
	ser = serializer.New(trunc)

	_, err := ser.GetString()
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Has(err, serializer.StreamError), true)

	// reading from an empty stream fails cleanly too
	_, err = ser.GetShort()
	test.ExpectedFailure(t, err)
}

func TestCorruptLength(t *testing.T) {
	// a length prefix that claims an absurd string size must be treated as
	// corruption, not as an instruction to allocate
	b := bytes.NewBuffer([]byte{0xff, 0xff})
	ser := serializer.New(b)

	_, err := ser.GetString()
	test.ExpectedFailure(t, err)
}
