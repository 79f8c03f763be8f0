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

// Package serializer provides the byte stream primitives used when saving
// and loading cartridge state. The framing of the stream (what file it lives
// in, what surrounds the cartridge data) is owned by the caller; this
// package only knows how to put and get the individual values.
//
// All errors, including truncated or corrupt data, surface as curated
// errors with the StreamError pattern. Nothing in this package panics on bad
// input.
package serializer

import (
	"encoding/binary"
	"io"

	"github.com/jetsetilly/banks2600/curated"
)

// StreamError is the curated error pattern for any failure at the stream
// boundary.
const StreamError = "serializer: %v"

// strings longer than this are assumed to be stream corruption. identity
// tags are a handful of characters
const maxStringLength = 1024

// Serializer reads and writes primitive values to a byte stream. Values are
// written little-endian; strings are written as a 16bit length followed by
// the raw bytes.
type Serializer struct {
	stream io.ReadWriter
}

// New is the preferred method of initialisation for the Serializer type.
func New(stream io.ReadWriter) *Serializer {
	return &Serializer{stream: stream}
}

// PutByte writes a single byte to the stream.
func (ser *Serializer) PutByte(v uint8) error {
	if err := binary.Write(ser.stream, binary.LittleEndian, v); err != nil {
		return curated.Errorf(StreamError, err)
	}
	return nil
}

// GetByte reads a single byte from the stream.
func (ser *Serializer) GetByte() (uint8, error) {
	var v uint8
	if err := binary.Read(ser.stream, binary.LittleEndian, &v); err != nil {
		return 0, curated.Errorf(StreamError, err)
	}
	return v, nil
}

// PutShort writes a 16bit value to the stream.
func (ser *Serializer) PutShort(v uint16) error {
	if err := binary.Write(ser.stream, binary.LittleEndian, v); err != nil {
		return curated.Errorf(StreamError, err)
	}
	return nil
}

// GetShort reads a 16bit value from the stream.
func (ser *Serializer) GetShort() (uint16, error) {
	var v uint16
	if err := binary.Read(ser.stream, binary.LittleEndian, &v); err != nil {
		return 0, curated.Errorf(StreamError, err)
	}
	return v, nil
}

// PutString writes a length prefixed string to the stream.
func (ser *Serializer) PutString(s string) error {
	if len(s) > maxStringLength {
		return curated.Errorf(StreamError, "string too long")
	}

	if err := ser.PutShort(uint16(len(s))); err != nil {
		return err
	}

	if _, err := ser.stream.Write([]byte(s)); err != nil {
		return curated.Errorf(StreamError, err)
	}

	return nil
}

// GetString reads a length prefixed string from the stream.
func (ser *Serializer) GetString() (string, error) {
	l, err := ser.GetShort()
	if err != nil {
		return "", err
	}

	if int(l) > maxStringLength {
		return "", curated.Errorf(StreamError, "string too long")
	}

	b := make([]byte, l)
	if _, err := io.ReadFull(ser.stream, b); err != nil {
		return "", curated.Errorf(StreamError, err)
	}

	return string(b), nil
}
