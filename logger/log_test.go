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

package logger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/banks2600/logger"
	"github.com/jetsetilly/banks2600/test"
)

func TestLog(t *testing.T) {
	logger.Clear()

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "")

	logger.Log("test", "this is a test")
	logger.Write(s)
	test.Equate(t, s.String(), "test: this is a test\n")

	// identical entries are compressed into a repeat count
	logger.Log("test", "this is a test")
	s.Reset()
	logger.Write(s)
	test.Equate(t, s.String(), "test: this is a test (repeat x2)\n")

	logger.Logf("test", "formatted %s %d", "entry", 10)
	s.Reset()
	logger.Tail(s, 1)
	test.Equate(t, s.String(), "test: formatted entry 10\n")

	logger.Clear()
	s.Reset()
	logger.Write(s)
	test.Equate(t, s.String(), "")
}

func TestTail(t *testing.T) {
	logger.Clear()

	logger.Log("tag", "one")
	logger.Log("tag", "two")
	logger.Log("tag", "three")

	s := &strings.Builder{}
	logger.Tail(s, 2)
	test.Equate(t, s.String(), "tag: two\ntag: three\n")

	// tail longer than the log is the whole log
	s.Reset()
	logger.Tail(s, 100)
	test.Equate(t, s.String(), "tag: one\ntag: two\ntag: three\n")
}
