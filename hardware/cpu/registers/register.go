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
	"fmt"
)

// Register is an 8 bit register with a label for use when printing.
type Register struct {
	label string
	value uint8
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%02x", r.value)
}

// Label returns the register's name.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Address returns the value of the register as a zero-page address.
func (r Register) Address() uint16 {
	return uint16(r.value)
}

// IsNegative checks the sign bit of the register.
func (r Register) IsNegative() bool {
	return r.value&0x80 == 0x80
}

// IsZero checks if the register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// IsBitV checks bit 6 of the register. Used by the BIT instruction.
func (r Register) IsBitV() bool {
	return r.value&0x40 == 0x40
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register. Returns carry and overflow states.
func (r *Register) Add(val uint8, carry bool) (rcarry bool, overflow bool) {
	v := r.value

	sum := uint16(v) + uint16(val)
	if carry {
		sum++
	}
	r.value = uint8(sum)
	rcarry = sum > 0xff

	// overflow detection from Ken Shirriff's blog: "The 6502 overflow flag
	// explained mathematically"
	overflow = ((v ^ r.value) & (val ^ r.value) & 0x80) != 0

	return rcarry, overflow
}

// Subtract value from register. The carry flag is used as an inverted borrow
// flag, the same as the 6502. Returns carry and overflow states.
func (r *Register) Subtract(val uint8, carry bool) (rcarry bool, overflow bool) {
	return r.Add(^val, carry)
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// EOR value with register.
func (r *Register) EOR(val uint8) {
	r.value ^= val
}

// ORA value with register.
func (r *Register) ORA(val uint8) {
	r.value |= val
}

// ASL shifts register one bit to the left. Returns the most significant bit
// as it was before the shift.
func (r *Register) ASL() bool {
	carry := r.IsNegative()
	r.value <<= 1
	return carry
}

// LSR shifts register one bit to the right. Returns the least significant bit
// as it was before the shift.
func (r *Register) LSR() bool {
	carry := r.value&1 == 1
	r.value >>= 1
	return carry
}

// ROL rotates register one bit to the left through the carry.
func (r *Register) ROL(carry bool) bool {
	rcarry := r.IsNegative()
	r.value <<= 1
	if carry {
		r.value |= 1
	}
	return rcarry
}

// ROR rotates register one bit to the right through the carry.
func (r *Register) ROR(carry bool) bool {
	rcarry := r.value&1 == 1
	r.value >>= 1
	if carry {
		r.value |= 0x80
	}
	return rcarry
}
