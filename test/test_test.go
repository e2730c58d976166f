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

package test_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/gophernes/test"
)

func TestExpectations(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("failure"))
	test.ExpectEquality(t, 10, 10)
	test.ExpectInequality(t, uint8(10), 11)
	test.ExpectApproximate(t, 10.1, 10.0, 0.05)
}

func TestRingWriter(t *testing.T) {
	r, err := test.NewRingWriter(10)
	test.DemandSuccess(t, err)

	fmt.Fprint(r, "abc")
	test.ExpectEquality(t, r.String(), "abc")

	fmt.Fprint(r, "defghij")
	test.ExpectEquality(t, r.String(), "abcdefghij")

	fmt.Fprint(r, "kl")
	test.ExpectEquality(t, r.String(), "cdefghijkl")

	// oversized write keeps only the tail
	fmt.Fprint(r, "0123456789ABC")
	test.ExpectEquality(t, r.String(), "3456789ABC")

	r.Reset()
	test.ExpectEquality(t, r.String(), "")
}

func TestCappedWriter(t *testing.T) {
	c, err := test.NewCappedWriter(5)
	test.DemandSuccess(t, err)

	fmt.Fprint(c, "abc")
	test.ExpectEquality(t, c.String(), "abc")
	fmt.Fprint(c, "defgh")
	test.ExpectEquality(t, c.String(), "abcde")
	n, _ := c.Write([]byte("x"))
	test.ExpectEquality(t, n, 0)

	c.Reset()
	test.ExpectEquality(t, c.String(), "")

	_, err = test.NewCappedWriter(0)
	test.ExpectFailure(t, err)
}
