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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
)

// execute performs cycle t of the current instruction. The opcode fetch is
// cycle zero
func (mc *CPU) execute(t int) {
	defn := mc.LastResult.Defn

	switch defn.Effect {
	case instructions.Flow:
		switch {
		case defn.IsBranch():
			mc.branch(t, defn.Operator)
		case defn.AddressingMode == instructions.Indirect:
			mc.jmpIndirect(t)
		default:
			mc.jmpAbsolute(t)
		}
		return

	case instructions.Subroutine:
		if defn.Operator == instructions.Jsr {
			mc.jsr(t)
		} else {
			mc.rts(t)
		}
		return

	case instructions.Interrupt:
		if defn.Operator == instructions.Brk {
			mc.brk(t)
		} else {
			mc.rti(t)
		}
		return

	case instructions.Stack:
		mc.stack(t, defn.Operator)
		return
	}

	switch defn.AddressingMode {
	case instructions.Implied:
		// dummy read of the byte following the opcode
		mc.read(mc.PC.Address())
		if defn.Operator == instructions.KIL {
			mc.kill()
			return
		}
		mc.implied(defn.Operator)
		mc.finish()
		return

	case instructions.Immediate:
		v := mc.operand()
		mc.LastResult.InstructionData = uint16(v)
		mc.readOperation(defn, v)
		mc.finish()
		return
	}

	if !mc.addressed {
		mc.addressed = mc.resolve(t, defn)
		return
	}

	mc.dcycle++

	switch defn.Effect {
	case instructions.Read:
		mc.readOperation(defn, mc.read(mc.addr))
		mc.finish()

	case instructions.Write:
		mc.writeOperation(defn.Operator)
		mc.finish()

	case instructions.RMW:
		switch mc.dcycle {
		case 1:
			mc.data = mc.read(mc.addr)
		case 2:
			// the unmodified value is written back while the ALU works
			mc.write(mc.addr, mc.data)
		case 3:
			mc.write(mc.addr, mc.rmwOperation(defn.Operator, mc.data))
			mc.finish()
		}

	default:
		panic(fmt.Sprintf("cpu: unexpected effect for %s", defn))
	}
}

// resolve performs one cycle of effective address calculation. returns true
// if the address is ready for the next cycle
func (mc *CPU) resolve(t int, defn *instructions.Definition) bool {
	switch defn.AddressingMode {
	case instructions.ZeroPage:
		mc.addr = uint16(mc.operand())
		mc.LastResult.InstructionData = mc.addr
		return true

	case instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY:
		switch t {
		case 1:
			mc.ptr = mc.operand()
			mc.LastResult.InstructionData = uint16(mc.ptr)
			return false
		case 2:
			mc.read(uint16(mc.ptr))
			idx := mc.X.Value()
			if defn.AddressingMode == instructions.ZeroPageIndexedY {
				idx = mc.Y.Value()
			}
			mc.addr = uint16(mc.ptr + idx)
			if uint16(mc.ptr)+uint16(idx) > 0xff {
				mc.LastResult.CPUBug = execution.ZeroPageIndexBug
			}
			return true
		}

	case instructions.Absolute:
		switch t {
		case 1:
			mc.addr = uint16(mc.operand())
			return false
		case 2:
			mc.addr |= uint16(mc.operand()) << 8
			mc.LastResult.InstructionData = mc.addr
			return true
		}

	case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
		switch t {
		case 1:
			mc.base = uint16(mc.operand())
			return false
		case 2:
			mc.base |= uint16(mc.operand()) << 8
			mc.LastResult.InstructionData = mc.base
			idx := mc.X.Value()
			if defn.AddressingMode == instructions.AbsoluteIndexedY {
				idx = mc.Y.Value()
			}
			mc.index(idx)
			return defn.Effect == instructions.Read && !mc.crossed
		case 3:
			mc.fixup(defn)
			return true
		}

	case instructions.IndexedIndirect:
		switch t {
		case 1:
			mc.ptr = mc.operand()
			mc.LastResult.InstructionData = uint16(mc.ptr)
			return false
		case 2:
			mc.read(uint16(mc.ptr))
			mc.ptr += mc.X.Value()
			return false
		case 3:
			mc.addr = uint16(mc.read(uint16(mc.ptr)))
			return false
		case 4:
			mc.addr |= uint16(mc.read(uint16(mc.ptr+1))) << 8
			if mc.ptr == 0xff {
				mc.LastResult.CPUBug = execution.IndexedIndirectAddressingBug
			}
			return true
		}

	case instructions.IndirectIndexed:
		switch t {
		case 1:
			mc.ptr = mc.operand()
			mc.LastResult.InstructionData = uint16(mc.ptr)
			return false
		case 2:
			mc.base = uint16(mc.read(uint16(mc.ptr)))
			return false
		case 3:
			mc.base |= uint16(mc.read(uint16(mc.ptr+1))) << 8
			mc.index(mc.Y.Value())
			return defn.Effect == instructions.Read && !mc.crossed
		case 4:
			mc.fixup(defn)
			return true
		}
	}

	panic(fmt.Sprintf("cpu: address cycle out of range (%d) for %s", t, defn))
}

// index the base address
func (mc *CPU) index(idx uint8) {
	mc.addr = mc.base + uint16(idx)
	mc.crossed = mc.addr&0xff00 != mc.base&0xff00
}

// fixup is the extra cycle for indexed addressing. the high byte of the
// address has not been corrected for the page crossing at the time of the
// read
func (mc *CPU) fixup(defn *instructions.Definition) {
	mc.read((mc.base & 0xff00) | (mc.addr & 0x00ff))
	if mc.crossed && defn.PageSensitive {
		mc.LastResult.PageFault = true
	}
}

func (mc *CPU) branch(t int, op instructions.Operator) {
	switch t {
	case 1:
		v := mc.operand()
		mc.LastResult.InstructionData = uint16(v)
		if !mc.branchTest(op) {
			mc.finish()
			return
		}
		mc.LastResult.BranchSuccess = true
		mc.addr = mc.PC.Address() + uint16(int8(v))
	case 2:
		mc.read(mc.PC.Address())
		if mc.addr&0xff00 == mc.PC.Address()&0xff00 {
			mc.PC.Load(mc.addr)
			mc.finish()
			return
		}
		// only the low byte is correct after the first addition
		mc.PC.LoadLo(uint8(mc.addr))
		mc.LastResult.PageFault = true
	case 3:
		mc.read(mc.PC.Address())
		mc.PC.Load(mc.addr)
		mc.finish()
	default:
		panic(fmt.Sprintf("cpu: branch cycle out of range (%d)", t))
	}
}

func (mc *CPU) branchTest(op instructions.Operator) bool {
	switch op {
	case instructions.Bcc:
		return !mc.Status.Carry
	case instructions.Bcs:
		return mc.Status.Carry
	case instructions.Beq:
		return mc.Status.Zero
	case instructions.Bne:
		return !mc.Status.Zero
	case instructions.Bmi:
		return mc.Status.Sign
	case instructions.Bpl:
		return !mc.Status.Sign
	case instructions.Bvc:
		return !mc.Status.Overflow
	case instructions.Bvs:
		return mc.Status.Overflow
	}
	panic(fmt.Sprintf("cpu: not a branch operator (%s)", op))
}

func (mc *CPU) jmpAbsolute(t int) {
	switch t {
	case 1:
		mc.addr = uint16(mc.operand())
	case 2:
		mc.addr |= uint16(mc.operand()) << 8
		mc.LastResult.InstructionData = mc.addr
		mc.PC.Load(mc.addr)
		mc.finish()
	default:
		panic(fmt.Sprintf("cpu: jmp cycle out of range (%d)", t))
	}
}

func (mc *CPU) jmpIndirect(t int) {
	switch t {
	case 1:
		mc.base = uint16(mc.operand())
	case 2:
		mc.base |= uint16(mc.operand()) << 8
		mc.LastResult.InstructionData = mc.base
	case 3:
		mc.addr = uint16(mc.read(mc.base))
	case 4:
		// the high byte of the pointer is not incremented
		mc.addr |= uint16(mc.read((mc.base&0xff00)|((mc.base+1)&0x00ff))) << 8
		if mc.base&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		}
		mc.PC.Load(mc.addr)
		mc.finish()
	default:
		panic(fmt.Sprintf("cpu: jmp cycle out of range (%d)", t))
	}
}

func (mc *CPU) jsr(t int) {
	switch t {
	case 1:
		mc.data = mc.operand()
	case 2:
		mc.read(mc.SP.Address())
	case 3:
		mc.push(mc.PC.Hi())
	case 4:
		mc.push(mc.PC.Lo())
	case 5:
		mc.addr = uint16(mc.operand())<<8 | uint16(mc.data)
		mc.LastResult.InstructionData = mc.addr
		mc.PC.Load(mc.addr)
		mc.finish()
	default:
		panic(fmt.Sprintf("cpu: jsr cycle out of range (%d)", t))
	}
}

func (mc *CPU) rts(t int) {
	switch t {
	case 1:
		mc.read(mc.PC.Address())
	case 2:
		mc.read(mc.SP.Address())
	case 3:
		mc.PC.LoadLo(mc.pull())
	case 4:
		mc.PC.LoadHi(mc.pull())
	case 5:
		mc.read(mc.PC.Address())
		mc.PC.Add(1)
		mc.finish()
	default:
		panic(fmt.Sprintf("cpu: rts cycle out of range (%d)", t))
	}
}

func (mc *CPU) rti(t int) {
	switch t {
	case 1:
		mc.read(mc.PC.Address())
	case 2:
		mc.read(mc.SP.Address())
	case 3:
		mc.Status.Load(mc.pull())
	case 4:
		mc.PC.LoadLo(mc.pull())
	case 5:
		mc.PC.LoadHi(mc.pull())
		mc.finish()
	default:
		panic(fmt.Sprintf("cpu: rti cycle out of range (%d)", t))
	}
}

func (mc *CPU) brk(t int) {
	switch t {
	case 1:
		// the padding byte is read and skipped but is not counted as part of
		// the instruction
		mc.read(mc.PC.Address())
		mc.PC.Add(1)
	case 2:
		mc.push(mc.PC.Hi())
	case 3:
		mc.push(mc.PC.Lo())
	case 4:
		mc.vector = mc.selectVector(cpubus.IRQ)
		if mc.vector == cpubus.NMI {
			mc.LastResult.CPUBug = execution.InterruptHijackBug
		}
		mc.push(mc.Status.Pushed(true))
	case 5:
		mc.addr = uint16(mc.read(mc.vector))
		mc.Status.InterruptDisable = true
	case 6:
		mc.addr |= uint16(mc.read(mc.vector+1)) << 8
		mc.PC.Load(mc.addr)
		mc.finishSequence()
	default:
		panic(fmt.Sprintf("cpu: brk cycle out of range (%d)", t))
	}
}

func (mc *CPU) stack(t int, op instructions.Operator) {
	switch t {
	case 1:
		mc.read(mc.PC.Address())
		return
	case 2:
		switch op {
		case instructions.Pha:
			mc.push(mc.A.Value())
			mc.finish()
		case instructions.Php:
			mc.push(mc.Status.Pushed(true))
			mc.finish()
		default:
			mc.read(mc.SP.Address())
		}
		return
	case 3:
		v := mc.pull()
		switch op {
		case instructions.Pla:
			mc.A.Load(v)
			mc.Status.SetZN(v)
		case instructions.Plp:
			mc.Status.Load(v)
		}
		mc.finish()
		return
	}
	panic(fmt.Sprintf("cpu: stack cycle out of range (%d)", t))
}
