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

// shorthand for the table below
const (
	imp = Implied
	imm = Immediate
	rel = Relative
	abs = Absolute
	zpg = ZeroPage
	ind = Indirect
	izx = IndexedIndirect
	izy = IndirectIndexed
	abx = AbsoluteIndexedX
	aby = AbsoluteIndexedY
	zpx = ZeroPageIndexedX
	zpy = ZeroPageIndexedY
)

type entry struct {
	operator      Operator
	mode          AddressingMode
	cycles        int
	effect        EffectCategory
	pageSensitive bool
}

// the cycle counts are the base counts. page sensitive instructions take one
// more cycle if indexing crosses a page. branches take one more cycle if the
// branch is taken and another if the branch crosses a page.
var table = [256]entry{
	0x00: {Brk, imp, 7, Interrupt, false},
	0x01: {Ora, izx, 6, Read, false},
	0x02: {KIL, imp, 2, Read, false},
	0x03: {SLO, izx, 8, RMW, false},
	0x04: {NOP, zpg, 3, Read, false},
	0x05: {Ora, zpg, 3, Read, false},
	0x06: {Asl, zpg, 5, RMW, false},
	0x07: {SLO, zpg, 5, RMW, false},
	0x08: {Php, imp, 3, Stack, false},
	0x09: {Ora, imm, 2, Read, false},
	0x0a: {Asl, imp, 2, Read, false},
	0x0b: {ANC, imm, 2, Read, false},
	0x0c: {NOP, abs, 4, Read, false},
	0x0d: {Ora, abs, 4, Read, false},
	0x0e: {Asl, abs, 6, RMW, false},
	0x0f: {SLO, abs, 6, RMW, false},

	0x10: {Bpl, rel, 2, Flow, true},
	0x11: {Ora, izy, 5, Read, true},
	0x12: {KIL, imp, 2, Read, false},
	0x13: {SLO, izy, 8, RMW, false},
	0x14: {NOP, zpx, 4, Read, false},
	0x15: {Ora, zpx, 4, Read, false},
	0x16: {Asl, zpx, 6, RMW, false},
	0x17: {SLO, zpx, 6, RMW, false},
	0x18: {Clc, imp, 2, Read, false},
	0x19: {Ora, aby, 4, Read, true},
	0x1a: {NOP, imp, 2, Read, false},
	0x1b: {SLO, aby, 7, RMW, false},
	0x1c: {NOP, abx, 4, Read, true},
	0x1d: {Ora, abx, 4, Read, true},
	0x1e: {Asl, abx, 7, RMW, false},
	0x1f: {SLO, abx, 7, RMW, false},

	0x20: {Jsr, abs, 6, Subroutine, false},
	0x21: {And, izx, 6, Read, false},
	0x22: {KIL, imp, 2, Read, false},
	0x23: {RLA, izx, 8, RMW, false},
	0x24: {Bit, zpg, 3, Read, false},
	0x25: {And, zpg, 3, Read, false},
	0x26: {Rol, zpg, 5, RMW, false},
	0x27: {RLA, zpg, 5, RMW, false},
	0x28: {Plp, imp, 4, Stack, false},
	0x29: {And, imm, 2, Read, false},
	0x2a: {Rol, imp, 2, Read, false},
	0x2b: {ANC, imm, 2, Read, false},
	0x2c: {Bit, abs, 4, Read, false},
	0x2d: {And, abs, 4, Read, false},
	0x2e: {Rol, abs, 6, RMW, false},
	0x2f: {RLA, abs, 6, RMW, false},

	0x30: {Bmi, rel, 2, Flow, true},
	0x31: {And, izy, 5, Read, true},
	0x32: {KIL, imp, 2, Read, false},
	0x33: {RLA, izy, 8, RMW, false},
	0x34: {NOP, zpx, 4, Read, false},
	0x35: {And, zpx, 4, Read, false},
	0x36: {Rol, zpx, 6, RMW, false},
	0x37: {RLA, zpx, 6, RMW, false},
	0x38: {Sec, imp, 2, Read, false},
	0x39: {And, aby, 4, Read, true},
	0x3a: {NOP, imp, 2, Read, false},
	0x3b: {RLA, aby, 7, RMW, false},
	0x3c: {NOP, abx, 4, Read, true},
	0x3d: {And, abx, 4, Read, true},
	0x3e: {Rol, abx, 7, RMW, false},
	0x3f: {RLA, abx, 7, RMW, false},

	0x40: {Rti, imp, 6, Interrupt, false},
	0x41: {Eor, izx, 6, Read, false},
	0x42: {KIL, imp, 2, Read, false},
	0x43: {SRE, izx, 8, RMW, false},
	0x44: {NOP, zpg, 3, Read, false},
	0x45: {Eor, zpg, 3, Read, false},
	0x46: {Lsr, zpg, 5, RMW, false},
	0x47: {SRE, zpg, 5, RMW, false},
	0x48: {Pha, imp, 3, Stack, false},
	0x49: {Eor, imm, 2, Read, false},
	0x4a: {Lsr, imp, 2, Read, false},
	0x4b: {ASR, imm, 2, Read, false},
	0x4c: {Jmp, abs, 3, Flow, false},
	0x4d: {Eor, abs, 4, Read, false},
	0x4e: {Lsr, abs, 6, RMW, false},
	0x4f: {SRE, abs, 6, RMW, false},

	0x50: {Bvc, rel, 2, Flow, true},
	0x51: {Eor, izy, 5, Read, true},
	0x52: {KIL, imp, 2, Read, false},
	0x53: {SRE, izy, 8, RMW, false},
	0x54: {NOP, zpx, 4, Read, false},
	0x55: {Eor, zpx, 4, Read, false},
	0x56: {Lsr, zpx, 6, RMW, false},
	0x57: {SRE, zpx, 6, RMW, false},
	0x58: {Cli, imp, 2, Read, false},
	0x59: {Eor, aby, 4, Read, true},
	0x5a: {NOP, imp, 2, Read, false},
	0x5b: {SRE, aby, 7, RMW, false},
	0x5c: {NOP, abx, 4, Read, true},
	0x5d: {Eor, abx, 4, Read, true},
	0x5e: {Lsr, abx, 7, RMW, false},
	0x5f: {SRE, abx, 7, RMW, false},

	0x60: {Rts, imp, 6, Subroutine, false},
	0x61: {Adc, izx, 6, Read, false},
	0x62: {KIL, imp, 2, Read, false},
	0x63: {RRA, izx, 8, RMW, false},
	0x64: {NOP, zpg, 3, Read, false},
	0x65: {Adc, zpg, 3, Read, false},
	0x66: {Ror, zpg, 5, RMW, false},
	0x67: {RRA, zpg, 5, RMW, false},
	0x68: {Pla, imp, 4, Stack, false},
	0x69: {Adc, imm, 2, Read, false},
	0x6a: {Ror, imp, 2, Read, false},
	0x6b: {ARR, imm, 2, Read, false},
	0x6c: {Jmp, ind, 5, Flow, false},
	0x6d: {Adc, abs, 4, Read, false},
	0x6e: {Ror, abs, 6, RMW, false},
	0x6f: {RRA, abs, 6, RMW, false},

	0x70: {Bvs, rel, 2, Flow, true},
	0x71: {Adc, izy, 5, Read, true},
	0x72: {KIL, imp, 2, Read, false},
	0x73: {RRA, izy, 8, RMW, false},
	0x74: {NOP, zpx, 4, Read, false},
	0x75: {Adc, zpx, 4, Read, false},
	0x76: {Ror, zpx, 6, RMW, false},
	0x77: {RRA, zpx, 6, RMW, false},
	0x78: {Sei, imp, 2, Read, false},
	0x79: {Adc, aby, 4, Read, true},
	0x7a: {NOP, imp, 2, Read, false},
	0x7b: {RRA, aby, 7, RMW, false},
	0x7c: {NOP, abx, 4, Read, true},
	0x7d: {Adc, abx, 4, Read, true},
	0x7e: {Ror, abx, 7, RMW, false},
	0x7f: {RRA, abx, 7, RMW, false},

	0x80: {NOP, imm, 2, Read, false},
	0x81: {Sta, izx, 6, Write, false},
	0x82: {NOP, imm, 2, Read, false},
	0x83: {SAX, izx, 6, Write, false},
	0x84: {Sty, zpg, 3, Write, false},
	0x85: {Sta, zpg, 3, Write, false},
	0x86: {Stx, zpg, 3, Write, false},
	0x87: {SAX, zpg, 3, Write, false},
	0x88: {Dey, imp, 2, Read, false},
	0x89: {NOP, imm, 2, Read, false},
	0x8a: {Txa, imp, 2, Read, false},
	0x8b: {XAA, imm, 2, Read, false},
	0x8c: {Sty, abs, 4, Write, false},
	0x8d: {Sta, abs, 4, Write, false},
	0x8e: {Stx, abs, 4, Write, false},
	0x8f: {SAX, abs, 4, Write, false},

	0x90: {Bcc, rel, 2, Flow, true},
	0x91: {Sta, izy, 6, Write, false},
	0x92: {KIL, imp, 2, Read, false},
	0x93: {AHX, izy, 6, Write, false},
	0x94: {Sty, zpx, 4, Write, false},
	0x95: {Sta, zpx, 4, Write, false},
	0x96: {Stx, zpy, 4, Write, false},
	0x97: {SAX, zpy, 4, Write, false},
	0x98: {Tya, imp, 2, Read, false},
	0x99: {Sta, aby, 5, Write, false},
	0x9a: {Txs, imp, 2, Read, false},
	0x9b: {TAS, aby, 5, Write, false},
	0x9c: {SHY, abx, 5, Write, false},
	0x9d: {Sta, abx, 5, Write, false},
	0x9e: {SHX, aby, 5, Write, false},
	0x9f: {AHX, aby, 5, Write, false},

	0xa0: {Ldy, imm, 2, Read, false},
	0xa1: {Lda, izx, 6, Read, false},
	0xa2: {Ldx, imm, 2, Read, false},
	0xa3: {LAX, izx, 6, Read, false},
	0xa4: {Ldy, zpg, 3, Read, false},
	0xa5: {Lda, zpg, 3, Read, false},
	0xa6: {Ldx, zpg, 3, Read, false},
	0xa7: {LAX, zpg, 3, Read, false},
	0xa8: {Tay, imp, 2, Read, false},
	0xa9: {Lda, imm, 2, Read, false},
	0xaa: {Tax, imp, 2, Read, false},
	0xab: {LAX, imm, 2, Read, false},
	0xac: {Ldy, abs, 4, Read, false},
	0xad: {Lda, abs, 4, Read, false},
	0xae: {Ldx, abs, 4, Read, false},
	0xaf: {LAX, abs, 4, Read, false},

	0xb0: {Bcs, rel, 2, Flow, true},
	0xb1: {Lda, izy, 5, Read, true},
	0xb2: {KIL, imp, 2, Read, false},
	0xb3: {LAX, izy, 5, Read, true},
	0xb4: {Ldy, zpx, 4, Read, false},
	0xb5: {Lda, zpx, 4, Read, false},
	0xb6: {Ldx, zpy, 4, Read, false},
	0xb7: {LAX, zpy, 4, Read, false},
	0xb8: {Clv, imp, 2, Read, false},
	0xb9: {Lda, aby, 4, Read, true},
	0xba: {Tsx, imp, 2, Read, false},
	0xbb: {LAS, aby, 4, Read, true},
	0xbc: {Ldy, abx, 4, Read, true},
	0xbd: {Lda, abx, 4, Read, true},
	0xbe: {Ldx, aby, 4, Read, true},
	0xbf: {LAX, aby, 4, Read, true},

	0xc0: {Cpy, imm, 2, Read, false},
	0xc1: {Cmp, izx, 6, Read, false},
	0xc2: {NOP, imm, 2, Read, false},
	0xc3: {DCP, izx, 8, RMW, false},
	0xc4: {Cpy, zpg, 3, Read, false},
	0xc5: {Cmp, zpg, 3, Read, false},
	0xc6: {Dec, zpg, 5, RMW, false},
	0xc7: {DCP, zpg, 5, RMW, false},
	0xc8: {Iny, imp, 2, Read, false},
	0xc9: {Cmp, imm, 2, Read, false},
	0xca: {Dex, imp, 2, Read, false},
	0xcb: {AXS, imm, 2, Read, false},
	0xcc: {Cpy, abs, 4, Read, false},
	0xcd: {Cmp, abs, 4, Read, false},
	0xce: {Dec, abs, 6, RMW, false},
	0xcf: {DCP, abs, 6, RMW, false},

	0xd0: {Bne, rel, 2, Flow, true},
	0xd1: {Cmp, izy, 5, Read, true},
	0xd2: {KIL, imp, 2, Read, false},
	0xd3: {DCP, izy, 8, RMW, false},
	0xd4: {NOP, zpx, 4, Read, false},
	0xd5: {Cmp, zpx, 4, Read, false},
	0xd6: {Dec, zpx, 6, RMW, false},
	0xd7: {DCP, zpx, 6, RMW, false},
	0xd8: {Cld, imp, 2, Read, false},
	0xd9: {Cmp, aby, 4, Read, true},
	0xda: {NOP, imp, 2, Read, false},
	0xdb: {DCP, aby, 7, RMW, false},
	0xdc: {NOP, abx, 4, Read, true},
	0xdd: {Cmp, abx, 4, Read, true},
	0xde: {Dec, abx, 7, RMW, false},
	0xdf: {DCP, abx, 7, RMW, false},

	0xe0: {Cpx, imm, 2, Read, false},
	0xe1: {Sbc, izx, 6, Read, false},
	0xe2: {NOP, imm, 2, Read, false},
	0xe3: {ISC, izx, 8, RMW, false},
	0xe4: {Cpx, zpg, 3, Read, false},
	0xe5: {Sbc, zpg, 3, Read, false},
	0xe6: {Inc, zpg, 5, RMW, false},
	0xe7: {ISC, zpg, 5, RMW, false},
	0xe8: {Inx, imp, 2, Read, false},
	0xe9: {Sbc, imm, 2, Read, false},
	0xea: {Nop, imp, 2, Read, false},
	0xeb: {Sbc, imm, 2, Read, false},
	0xec: {Cpx, abs, 4, Read, false},
	0xed: {Sbc, abs, 4, Read, false},
	0xee: {Inc, abs, 6, RMW, false},
	0xef: {ISC, abs, 6, RMW, false},

	0xf0: {Beq, rel, 2, Flow, true},
	0xf1: {Sbc, izy, 5, Read, true},
	0xf2: {KIL, imp, 2, Read, false},
	0xf3: {ISC, izy, 8, RMW, false},
	0xf4: {NOP, zpx, 4, Read, false},
	0xf5: {Sbc, zpx, 4, Read, false},
	0xf6: {Inc, zpx, 6, RMW, false},
	0xf7: {ISC, zpx, 6, RMW, false},
	0xf8: {Sed, imp, 2, Read, false},
	0xf9: {Sbc, aby, 4, Read, true},
	0xfa: {NOP, imp, 2, Read, false},
	0xfb: {ISC, aby, 7, RMW, false},
	0xfc: {NOP, abx, 4, Read, true},
	0xfd: {Sbc, abx, 4, Read, true},
	0xfe: {Inc, abx, 7, RMW, false},
	0xff: {ISC, abx, 7, RMW, false},
}

// definitions is built once from the table
var definitions []*Definition

func init() {
	definitions = make([]*Definition, len(table))
	for i, e := range table {
		definitions[i] = &Definition{
			OpCode:         uint8(i),
			Operator:       e.operator,
			Bytes:          e.mode.Bytes(),
			Cycles:         e.cycles,
			AddressingMode: e.mode,
			PageSensitive:  e.pageSensitive,
			Effect:         e.effect,
		}
	}
}

// GetDefinitions returns the table of instruction definitions, indexed by
// opcode. The table is shared and must not be altered.
func GetDefinitions() []*Definition {
	return definitions
}
