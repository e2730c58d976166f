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

// Package instructions defines the instruction set of the 6502 as found in the
// 2A03. Every one of the 256 opcodes has a Definition, including the
// undocumented opcodes. The table is indexed by opcode:
//
//	defn := instructions.GetDefinitions()[0xa9]
//
// The Definition describes the addressing mode and the effect category of the
// instruction. The CPU uses these two properties to decide the sequence of
// bus cycles for the instruction and the Operator to decide what to do with
// the data.
package instructions
