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
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
)

// Operand returns the operand of the instruction formatted in the usual 6502
// assembly syntax.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}

	d := r.InstructionData

	switch r.Defn.AddressingMode {
	case instructions.Implied:
		switch r.Defn.Operator {
		case instructions.Asl, instructions.Lsr, instructions.Rol, instructions.Ror:
			return "A"
		}
		return ""
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", d)
	case instructions.Relative:
		// branch target is relative to the address of the next instruction
		offset := uint16(int8(uint8(d)))
		return fmt.Sprintf("$%04x", r.Address+2+offset)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", d)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", d)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", d)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", d)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", d)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", d)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", d)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", d)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", d)
	}

	return ""
}

func (r Result) String() string {
	if r.Interrupt != NoInterrupt {
		return fmt.Sprintf("%04x %s", r.Address, r.Interrupt)
	}
	if r.Defn == nil {
		return fmt.Sprintf("%04x ???", r.Address)
	}

	s := fmt.Sprintf("%04x %s", r.Address, r.Defn.Operator)
	if o := r.Operand(); o != "" {
		s = fmt.Sprintf("%s %s", s, o)
	}
	if r.Final {
		s = fmt.Sprintf("%s [%d]", s, r.Cycles)
	}
	if r.CPUBug != NoBug {
		s = fmt.Sprintf("%s * %s", s, r.CPUBug)
	}

	return s
}
