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

	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
)

// decimal arithmetic is only available to the NMOS variant
func (mc *CPU) decimal() bool {
	return mc.Variant == NMOS && mc.Status.DecimalMode
}

func (mc *CPU) adc(v uint8) {
	if mc.decimal() {
		mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.AddDecimal(v, mc.Status.Carry)
		return
	}
	mc.Status.Carry, mc.Status.Overflow = mc.A.Add(v, mc.Status.Carry)
	mc.Status.SetZN(mc.A.Value())
}

func (mc *CPU) sbc(v uint8) {
	if mc.decimal() {
		mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.SubtractDecimal(v, mc.Status.Carry)
		return
	}
	mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(v, mc.Status.Carry)
	mc.Status.SetZN(mc.A.Value())
}

func (mc *CPU) compare(r uint8, v uint8) {
	mc.Status.Carry = r >= v
	mc.Status.SetZN(r - v)
}

// implied performs the operation of single byte instructions
func (mc *CPU) implied(op instructions.Operator) {
	switch op {
	case instructions.Nop, instructions.NOP:

	case instructions.Asl:
		mc.Status.Carry = mc.A.ASL()
		mc.Status.SetZN(mc.A.Value())
	case instructions.Lsr:
		mc.Status.Carry = mc.A.LSR()
		mc.Status.SetZN(mc.A.Value())
	case instructions.Rol:
		mc.Status.Carry = mc.A.ROL(mc.Status.Carry)
		mc.Status.SetZN(mc.A.Value())
	case instructions.Ror:
		mc.Status.Carry = mc.A.ROR(mc.Status.Carry)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Clc:
		mc.Status.Carry = false
	case instructions.Cld:
		mc.Status.DecimalMode = false
	case instructions.Cli:
		mc.Status.InterruptDisable = false
	case instructions.Clv:
		mc.Status.Overflow = false
	case instructions.Sec:
		mc.Status.Carry = true
	case instructions.Sed:
		mc.Status.DecimalMode = true
	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Dex:
		mc.X.Load(mc.X.Value() - 1)
		mc.Status.SetZN(mc.X.Value())
	case instructions.Dey:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.Status.SetZN(mc.Y.Value())
	case instructions.Inx:
		mc.X.Load(mc.X.Value() + 1)
		mc.Status.SetZN(mc.X.Value())
	case instructions.Iny:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.SetZN(mc.X.Value())
	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.SetZN(mc.Y.Value())
	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.SetZN(mc.X.Value())
	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.SetZN(mc.A.Value())
	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.SetZN(mc.A.Value())

	default:
		panic(fmt.Sprintf("cpu: unexpected implied operator (%s)", op))
	}
}

// readOperation performs the operation of instructions that read a value
// from memory, or from the instruction itself for immediate addressing
func (mc *CPU) readOperation(defn *instructions.Definition, v uint8) {
	switch defn.Operator {
	case instructions.Nop, instructions.NOP:

	case instructions.Adc:
		mc.adc(v)
	case instructions.Sbc:
		mc.sbc(v)

	case instructions.And:
		mc.A.AND(v)
		mc.Status.SetZN(mc.A.Value())
	case instructions.Eor:
		mc.A.EOR(v)
		mc.Status.SetZN(mc.A.Value())
	case instructions.Ora:
		mc.A.ORA(v)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Bit:
		mc.Status.Zero = mc.A.Value()&v == 0
		mc.Status.Sign = v&0x80 == 0x80
		mc.Status.Overflow = v&0x40 == 0x40

	case instructions.Cmp:
		mc.compare(mc.A.Value(), v)
	case instructions.Cpx:
		mc.compare(mc.X.Value(), v)
	case instructions.Cpy:
		mc.compare(mc.Y.Value(), v)

	case instructions.Lda:
		mc.A.Load(v)
		mc.Status.SetZN(v)
	case instructions.Ldx:
		mc.X.Load(v)
		mc.Status.SetZN(v)
	case instructions.Ldy:
		mc.Y.Load(v)
		mc.Status.SetZN(v)

	case instructions.LAX:
		if defn.AddressingMode == instructions.Immediate {
			// unstable. the magic value varies between chips
			v &= mc.A.Value() | 0xee
		}
		mc.A.Load(v)
		mc.X.Load(v)
		mc.Status.SetZN(v)

	case instructions.ANC:
		mc.A.AND(v)
		mc.Status.SetZN(mc.A.Value())
		mc.Status.Carry = mc.Status.Sign

	case instructions.ASR:
		mc.A.AND(v)
		mc.Status.Carry = mc.A.LSR()
		mc.Status.SetZN(mc.A.Value())

	case instructions.ARR:
		mc.A.AND(v)
		mc.A.ROR(mc.Status.Carry)
		r := mc.A.Value()
		mc.Status.SetZN(r)
		mc.Status.Carry = r&0x40 == 0x40
		mc.Status.Overflow = (r>>6)&0x01 != (r>>5)&0x01

	case instructions.AXS:
		r := mc.A.Value() & mc.X.Value()
		mc.Status.Carry = r >= v
		mc.X.Load(r - v)
		mc.Status.SetZN(mc.X.Value())

	case instructions.XAA:
		// unstable. the magic value varies between chips
		mc.A.Load((mc.A.Value() | 0xee) & mc.X.Value() & v)
		mc.Status.SetZN(mc.A.Value())

	case instructions.LAS:
		r := v & mc.SP.Value()
		mc.A.Load(r)
		mc.X.Load(r)
		mc.SP.Load(r)
		mc.Status.SetZN(r)

	default:
		panic(fmt.Sprintf("cpu: unexpected read operator (%s)", defn.Operator))
	}
}

// writeOperation performs the write cycle of store instructions
func (mc *CPU) writeOperation(op instructions.Operator) {
	switch op {
	case instructions.Sta:
		mc.write(mc.addr, mc.A.Value())
	case instructions.Stx:
		mc.write(mc.addr, mc.X.Value())
	case instructions.Sty:
		mc.write(mc.addr, mc.Y.Value())
	case instructions.SAX:
		mc.write(mc.addr, mc.A.Value()&mc.X.Value())
	case instructions.SHX:
		mc.unstableStore(mc.X.Value())
	case instructions.SHY:
		mc.unstableStore(mc.Y.Value())
	case instructions.AHX:
		mc.unstableStore(mc.A.Value() & mc.X.Value())
	case instructions.TAS:
		mc.SP.Load(mc.A.Value() & mc.X.Value())
		mc.unstableStore(mc.SP.Value())
	default:
		panic(fmt.Sprintf("cpu: unexpected write operator (%s)", op))
	}
}

// unstableStore is used by the store instructions that AND the value with the
// high byte of the base address plus one. if indexing crossed a page then the
// value also replaces the high byte of the address
func (mc *CPU) unstableStore(v uint8) {
	v &= uint8(mc.base>>8) + 1
	addr := mc.addr
	if mc.crossed {
		addr = uint16(v)<<8 | addr&0x00ff
	}
	mc.write(addr, v)
}

// rmwOperation modifies the value read by a read-modify-write instruction
// and returns the value to be written
func (mc *CPU) rmwOperation(op instructions.Operator, v uint8) uint8 {
	r := registers.NewRegister(v, "")

	switch op {
	case instructions.Asl:
		mc.Status.Carry = r.ASL()
		mc.Status.SetZN(r.Value())
	case instructions.Lsr:
		mc.Status.Carry = r.LSR()
		mc.Status.SetZN(r.Value())
	case instructions.Rol:
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.Status.SetZN(r.Value())
	case instructions.Ror:
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.Status.SetZN(r.Value())
	case instructions.Inc:
		r.Load(v + 1)
		mc.Status.SetZN(r.Value())
	case instructions.Dec:
		r.Load(v - 1)
		mc.Status.SetZN(r.Value())

	case instructions.SLO:
		mc.Status.Carry = r.ASL()
		mc.A.ORA(r.Value())
		mc.Status.SetZN(mc.A.Value())
	case instructions.RLA:
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.A.AND(r.Value())
		mc.Status.SetZN(mc.A.Value())
	case instructions.SRE:
		mc.Status.Carry = r.LSR()
		mc.A.EOR(r.Value())
		mc.Status.SetZN(mc.A.Value())
	case instructions.RRA:
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.adc(r.Value())
	case instructions.DCP:
		r.Load(v - 1)
		mc.compare(mc.A.Value(), r.Value())
	case instructions.ISC:
		r.Load(v + 1)
		mc.sbc(r.Value())

	default:
		panic(fmt.Sprintf("cpu: unexpected read-modify-write operator (%s)", op))
	}

	return r.Value()
}
