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

package curated_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/test"
)

const testError = "test error: %s"
const testErrorB = "test error B: %s"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testError, e)
	test.ExpectEquality(t, f.Error(), "test error: foo")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectSuccess(t, curated.IsAny(e))

	// Has() should fail because we haven't included testErrorB anywhere in the error
	test.ExpectFailure(t, curated.Has(e, testErrorB))

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testErrorB, e)
	test.ExpectFailure(t, curated.Is(f, testError))
	test.ExpectSuccess(t, curated.Is(f, testErrorB))
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testErrorB))

	// plain errors are never curated
	test.ExpectFailure(t, curated.IsAny(fmt.Errorf("plain")))
	test.ExpectFailure(t, curated.Is(nil, testError))
}

func TestUnwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	e := curated.Errorf("wrapped: %v", sentinel)
	test.ExpectSuccess(t, errors.Is(e, sentinel))
	test.ExpectEquality(t, e.Error(), "wrapped: sentinel")
}
