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

// Package regression checks that the emulation produces the same output as
// it did previously.
//
// Each entry in the regression database names a cartridge, a television
// specification and a number of frames, along with the video and audio
// digests produced when the entry was added. Running the regression
// repeats the emulation and compares the digests. Joypad input for the
// emulation can be supplied with an input recording.
package regression
