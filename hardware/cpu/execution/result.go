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

package execution

import (
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
)

// Interrupt records which interrupt sequence, if any, the CPU was performing
// rather than an instruction.
type Interrupt int

// List of valid Interrupt values.
const (
	NoInterrupt Interrupt = iota
	NMI
	IRQ
	Reset
)

func (i Interrupt) String() string {
	switch i {
	case NMI:
		return "NMI"
	case IRQ:
		return "IRQ"
	case Reset:
		return "RESET"
	}
	return ""
}

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
//
// The Result type is updated every cycle during the execution of the
// instruction. Fields other than Address and Interrupt are undefined until
// the Final field is true.
type Result struct {
	// a reference to the instruction definition. nil for interrupt sequences
	Defn *instructions.Definition

	// address of the opcode
	Address uint16

	// instruction data is the actual instruction data. so, for example, in the
	// case of a branch instruction, it is the offset value.
	InstructionData uint16

	// the number of bytes read during instruction decode
	ByteCount int

	// the actual number of cycles taken by the instruction - usually the same
	// as Defn.Cycles but in the case of page faults and branches, this value
	// may be different
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether a known buggy code path (in the emulated CPU) was triggered
	CPUBug Bug

	// whether branch instruction test passed (ie. branched) or not. testing of
	// this field should be used in conjunction with Defn.IsBranch()
	BranchSuccess bool

	// the interrupt sequence being performed, if any
	Interrupt Interrupt

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}
