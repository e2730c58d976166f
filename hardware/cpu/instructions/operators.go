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

// Operator defines which operation is performed by the instruction.
type Operator int

// List of operators. The undocumented operators are in upper case.
const (
	Nop Operator = iota
	Adc
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	// undocumented
	NOP
	ANC
	ARR
	ASR
	AXS
	DCP
	ISC
	KIL
	LAS
	LAX
	RLA
	RRA
	SAX
	SLO
	SRE
	XAA
	AHX
	SHX
	SHY
	TAS
)

var operatorNames = [...]string{
	"nop", "adc", "and", "asl", "bcc", "bcs", "beq", "bit", "bmi", "bne",
	"bpl", "brk", "bvc", "bvs", "clc", "cld", "cli", "clv", "cmp", "cpx",
	"cpy", "dec", "dex", "dey", "eor", "inc", "inx", "iny", "jmp", "jsr",
	"lda", "ldx", "ldy", "lsr", "ora", "pha", "php", "pla", "plp", "rol",
	"ror", "rti", "rts", "sbc", "sec", "sed", "sei", "sta", "stx", "sty",
	"tax", "tay", "tsx", "txa", "txs", "tya",
	"NOP", "ANC", "ARR", "ASR", "AXS", "DCP", "ISC", "KIL", "LAS", "LAX",
	"RLA", "RRA", "SAX", "SLO", "SRE", "XAA", "AHX", "SHX", "SHY", "TAS",
}

func (op Operator) String() string {
	if int(op) < 0 || int(op) >= len(operatorNames) {
		return "unknown operator"
	}
	return operatorNames[op]
}

// Undocumented returns true if the operator only appears in undocumented
// opcodes.
func (op Operator) Undocumented() bool {
	return op >= NOP
}
