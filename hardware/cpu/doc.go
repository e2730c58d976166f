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

// Package cpu emulates the 6502 microprocessor core found in the NES. Like
// all 8-bit processors of the era, the 6502 executes instructions according
// to the single byte value read from an address pointed to by the program
// counter. This single byte is the opcode and is looked up in the instruction
// table. The instruction definition for that opcode is then used to move
// execution of the program forward.
//
// The CPU advances one cycle at a time with the Cycle() function. Every cycle
// performs exactly one access of the bus, the same as the real chip, and
// the instruction is resumed on the next call to Cycle(). This means that
// other parts of the console can be advanced between any two cycles of an
// instruction.
//
// The ExecuteInstruction() function is a convenience that calls Cycle() until
// the instruction is complete. The callback argument is called after every
// cycle.
//
//	mc := cpu.NewCPU(nil, mem, nil)
//	mc.PowerOn()
//
//	numCycles := 0
//	for {
//		mc.ExecuteInstruction(func() error {
//			numCycles++
//			return nil
//		})
//	}
//
// The interrupt lines are sampled during the last cycle of each instruction.
// A pending interrupt is serviced with a seven cycle sequence in place of the
// next instruction.
//
// The CPU in the NES lacks decimal arithmetic. The NMOS Variant is provided
// for use outside of the NES and honours the decimal flag in ADC and SBC.
//
// All undocumented opcodes are implemented. The unstable opcodes (XAA, LAX
// immediate, AHX, SHX, SHY and TAS) use the commonly observed behaviour. KIL
// halts the CPU until the next reset.
package cpu
