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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions are the most common.
// They take two comparable values of the same type and fail the test if the
// expectation is not met.
//
// ExpectSuccess() and ExpectFailure() test for success/failure values
// appropriate to the type of the value. For booleans success is true and for
// errors success is nil. The Demand*() variants of the functions stop the test
// immediately rather than allowing it to continue.
//
// All functions accept an optional list of tags. The tags are printed as part
// of the failure message and are useful for identifying which entry in a table
// of tests has failed.
//
// The RingWriter type is useful for capturing output that would normally be
// written to a terminal.
package test
