// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// clear the builder before continuing, makes comparisons easier to manage
	w.Reset()

	log.Log(logger.Allow, "test2", errors.New("this is another test"))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Logf(logger.Allow, "CPU", "jam (%#04x)", 0x8000)
	log.Logf(logger.Allow, "CPU", "jam (%#04x)", 0x8000)
	log.Logf(logger.Allow, "CPU", "jam (%#04x)", 0x8000)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "CPU: jam (0x8000) (repeat x3)\n")
}

func TestMaximum(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
	test.ExpectEquality(t, len(log.Copy()), 2)
}

type prohibitLogging struct{}

func (prohibitLogging) AllowLogging() bool {
	return false
}

func TestPermission(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(prohibitLogging{}, "test", "not logged")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	echo := &strings.Builder{}
	log.SetEcho(echo)
	log.Log(logger.Allow, "test", "echoed")
	test.ExpectEquality(t, echo.String(), "test: echoed\n")
}
