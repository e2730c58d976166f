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

package registers

import (
	"strings"
)

// the bits of the status register as they appear on the data bus
const (
	FlagCarry     = 0x01
	FlagZero      = 0x02
	FlagInterrupt = 0x04
	FlagDecimal   = 0x08
	FlagBreak     = 0x10
	FlagUnused    = 0x20
	FlagOverflow  = 0x40
	FlagSign      = 0x80
)

// StatusRegister is the special purpose register that stores the flags of the
// CPU. The break flag does not exist in the register. It only exists in the
// copy of the register pushed to the stack.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the register's name.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, on, off rune) {
		if set {
			s.WriteRune(on)
		} else {
			s.WriteRune(off)
		}
	}

	flag(sr.Sign, 'N', 'n')
	flag(sr.Overflow, 'V', 'v')
	s.WriteString("--")
	flag(sr.DecimalMode, 'D', 'd')
	flag(sr.InterruptDisable, 'I', 'i')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Carry, 'C', 'c')

	return s.String()
}

// Reset status flags to initial power-on state.
func (sr *StatusRegister) Reset() {
	sr.Load(FlagInterrupt)
}

// Value converts the StatusRegister to an 8 bit value. The unused bit is
// always set. The break bit is never set.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= FlagSign
	}
	if sr.Overflow {
		v |= FlagOverflow
	}
	if sr.DecimalMode {
		v |= FlagDecimal
	}
	if sr.InterruptDisable {
		v |= FlagInterrupt
	}
	if sr.Zero {
		v |= FlagZero
	}
	if sr.Carry {
		v |= FlagCarry
	}

	return v | FlagUnused
}

// Pushed returns the value of the register as it appears when pushed to the
// stack. The break bit is set for PHP and BRK but not for hardware
// interrupts.
func (sr StatusRegister) Pushed(brk bool) uint8 {
	if brk {
		return sr.Value() | FlagBreak
	}
	return sr.Value()
}

// Load sets the status flags from an 8 bit value. The break and unused bits
// are ignored.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&FlagSign == FlagSign
	sr.Overflow = v&FlagOverflow == FlagOverflow
	sr.DecimalMode = v&FlagDecimal == FlagDecimal
	sr.InterruptDisable = v&FlagInterrupt == FlagInterrupt
	sr.Zero = v&FlagZero == FlagZero
	sr.Carry = v&FlagCarry == FlagCarry
}

// SetZN sets the zero and sign flags according to value.
func (sr *StatusRegister) SetZN(value uint8) {
	sr.Zero = value == 0
	sr.Sign = value&0x80 == 0x80
}
