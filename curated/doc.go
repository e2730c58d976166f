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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with a pattern and a list of values, in the same
// way as fmt.Errorf(). Unlike fmt.Errorf() the pattern is kept with the error
// so that it can be tested for later with the Is() and Has() functions.
//
// Packages that return curated errors export the patterns they use as
// constants. For example, the clocks package exports UnsupportedRatio:
//
//	if curated.Is(err, clocks.UnsupportedRatio) {
//		...
//	}
//
// Error messages are normalised so that repeated adjacent parts of an error
// chain appear only once. An error of "nes: nes: no cartridge" is reported as
// "nes: no cartridge".
package curated
