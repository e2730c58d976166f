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

// Package cartridge is the interface between the NES and the data on a
// cartridge. The Cartridge type wraps a mapper, which is the logic that
// translates CPU and PPU addresses into physical ROM and RAM.
//
// Cartridge images are in the iNES format. Only version 1 of the format is
// understood. The NES 2.0 extensions are rejected as are any mappers other
// than NROM (mapper 0).
//
// When no cartridge is attached the ejected mapper drives a constant value
// onto the data bus for every address in the cartridge window.
package cartridge
