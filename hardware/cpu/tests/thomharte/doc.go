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

// Package thomharte runs the 6502 single-step tests created and maintained by
// Thom Harte.
//
// https://github.com/SingleStepTests/65x02
//
// The tests are large and are not included as part of the GopherNES
// repository.
//
// Add the instructions you want to test from the 6502/v1 directory on Github
// to the 6502/v1 directory in this package. Tests from the nes6502/v1
// directory can be added in the same way and will be run against the 2A03
// variant of the CPU. Tests are skipped if the directories do not exist.
package thomharte
