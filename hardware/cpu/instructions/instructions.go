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

package instructions

import "fmt"

// AddressingMode describes the method data for the instruction should be received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Immediate
	Relative // relative addressing is used for branch instructions

	Absolute // abs
	ZeroPage // zpg
	Indirect // ind

	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind), Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case Absolute:
		return "Absolute"
	case ZeroPage:
		return "ZeroPage"
	case Indirect:
		return "Indirect"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	case AbsoluteIndexedX:
		return "AbsoluteIndexedX"
	case AbsoluteIndexedY:
		return "AbsoluteIndexedY"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	case ZeroPageIndexedY:
		return "ZeroPageIndexedY"
	}
	return "unknown addressing mode"
}

// Bytes returns the number of bytes an instruction with this addressing mode
// occupies, including the opcode.
func (m AddressingMode) Bytes() int {
	switch m {
	case Implied:
		return 1
	case Absolute, Indirect, AbsoluteIndexedX, AbsoluteIndexedY:
		return 3
	}
	return 2
}

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// the following effects have a variable effect on the program counter,
	// depending on the instruction's precise operand.

	// flow consists of the Branch and JMP instructions. Branch instructions
	// specifically can be distinguished by the AddressingMode.
	Flow

	Subroutine
	Interrupt

	// stack operations push or pull a single register
	Stack
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case RMW:
		return "RMW"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	case Stack:
		return "Stack"
	}
	return "unknown effect"
}

// Definition defines each instruction in the instruction set; one per instruction.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// Undocumented returns true if the instruction is not part of the documented
// instruction set.
func (defn Definition) Undocumented() bool {
	return defn.Operator.Undocumented() || defn.OpCode == 0xeb
}
