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

package test

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

// id returns a prefix for failure messages built from the list of tags
func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}
	s := make([]string, len(tags))
	for i, t := range tags {
		s[i] = fmt.Sprintf("%v", t)
	}
	return fmt.Sprintf("[%s] ", strings.Join(s, " "))
}

// ExpectEquality is used to test equality between one value and another.
// Returns false if the test fails.
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T, tags ...any) bool {
	t.Helper()
	if value != expectedValue {
		t.Errorf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), value, value, expectedValue)
		return false
	}
	return true
}

// ExpectInequality is used to test inequality between one value and another.
// Returns false if the test fails.
func ExpectInequality[T comparable](t *testing.T, value T, unexpectedValue T, tags ...any) bool {
	t.Helper()
	if value == unexpectedValue {
		t.Errorf("%sinequality test of type %T failed: '%v' does equal '%v'", id(tags...), value, value, unexpectedValue)
		return false
	}
	return true
}

// ExpectApproximate is used to test approximate equality between one value
// and another. The tolerance argument is a proportion of the expected value.
func ExpectApproximate[T ~float32 | ~float64 | ~int](t *testing.T, value T, expectedValue T, tolerance float64, tags ...any) bool {
	t.Helper()
	v := float64(value)
	e := float64(expectedValue)
	if math.Abs(v-e) > math.Abs(e*tolerance) {
		t.Errorf("%sapproximation test of type %T failed: '%v' is not within %.2f of '%v'", id(tags...), value, value, tolerance, expectedValue)
		return false
	}
	return true
}

// expect returns true if v is a success value for its type. Only booleans,
// errors and nil are supported
func expect(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		t.Fatalf("%sunsupported type (%T) for expectation testing", id(tags...), v)
	}
	return false
}

// ExpectSuccess tests argument v for a success condition suitable for its
// type. Currently supported types:
//
//	bool -> bool == true
//	error -> error == nil
//
// If type is nil then the test will succeed.
func ExpectSuccess(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if !expect(t, v, tags...) {
		switch v := v.(type) {
		case error:
			t.Errorf("%sexpected success (error: %v)", id(tags...), v)
		default:
			t.Errorf("%sexpected success (%T)", id(tags...), v)
		}
		return false
	}
	return true
}

// ExpectFailure tests argument v for a failure condition suitable for its
// type. Currently supported types:
//
//	bool -> bool == false
//	error -> error != nil
//
// If type is nil then the test will fail.
func ExpectFailure(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if expect(t, v, tags...) {
		t.Errorf("%sexpected failure (%T)", id(tags...), v)
		return false
	}
	return true
}
