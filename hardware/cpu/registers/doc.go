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

// Package registers implements the registers of the 6502 found in the 2A03.
// The Register type is used for the accumulator and the two index registers.
// The ProgramCounter, StackPointer and StatusRegister types implement the
// other registers.
//
// The arithmetic and logical functions of the Register type return carry and
// overflow information but never alter a status register. It is up to the
// caller to decide which flags are affected:
//
//	a.Load(10)
//	carry, overflow := a.Add(11, false)
//	sr.Zero = a.IsZero()
package registers
