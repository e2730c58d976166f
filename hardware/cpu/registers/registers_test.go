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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
	"github.com/jetsetilly/gophernes/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	r8 := registers.NewRegister(0, "test")
	test.ExpectSuccess(t, r8.IsZero())
	test.ExpectEquality(t, r8.Value(), uint8(0))

	// loading & addition
	r8.Load(127)
	test.ExpectEquality(t, r8.Value(), uint8(127))
	carry, overflow = r8.Add(2, false)
	test.ExpectEquality(t, r8.Value(), uint8(129))
	test.ExpectFailure(t, carry)
	test.ExpectSuccess(t, overflow)
	test.ExpectSuccess(t, r8.IsNegative())

	// addition boundary
	r8.Load(255)
	carry, overflow = r8.Add(1, false)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectSuccess(t, r8.IsZero())

	// addition boundary with carry
	r8.Load(254)
	carry, _ = r8.Add(1, true)
	test.ExpectSuccess(t, carry)
	test.ExpectSuccess(t, r8.IsZero())

	r8.Load(255)
	carry, _ = r8.Add(1, true)
	test.ExpectSuccess(t, carry)
	test.ExpectEquality(t, r8.Value(), uint8(1))

	// adding zero with carry set is not a carry out
	r8.Load(0x10)
	carry, _ = r8.Add(0, true)
	test.ExpectFailure(t, carry)
	test.ExpectEquality(t, r8.Value(), uint8(0x11))

	// subtraction. carry is an inverted borrow
	r8.Load(11)
	carry, _ = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(10))
	test.ExpectSuccess(t, carry)

	r8.Load(12)
	r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(10))

	r8.Load(0x01)
	carry, _ = r8.Subtract(0x06, true)
	test.ExpectEquality(t, r8.Value(), uint8(0xfb))
	test.ExpectFailure(t, carry)

	// signed overflow on subtraction
	r8.Load(0x80)
	_, overflow = r8.Subtract(0x01, true)
	test.ExpectSuccess(t, overflow)
	test.ExpectEquality(t, r8.Value(), uint8(0x7f))

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	test.ExpectEquality(t, r8.Value(), uint8(0x01))
	r8.EOR(0xff)
	test.ExpectEquality(t, r8.Value(), uint8(0xfe))
	r8.ORA(0x1)
	test.ExpectEquality(t, r8.Value(), uint8(0xff))

	// shifts
	carry = r8.ASL()
	test.ExpectEquality(t, r8.Value(), uint8(0xfe))
	test.ExpectSuccess(t, carry)
	carry = r8.LSR()
	test.ExpectEquality(t, r8.Value(), uint8(0x7f))
	test.ExpectFailure(t, carry)
	carry = r8.LSR()
	test.ExpectSuccess(t, carry)

	// rotation
	r8.Load(0xff)
	carry = r8.ROL(false)
	test.ExpectEquality(t, r8.Value(), uint8(0xfe))
	test.ExpectSuccess(t, carry)
	carry = r8.ROR(true)
	test.ExpectEquality(t, r8.Value(), uint8(0xff))
	test.ExpectFailure(t, carry)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), uint16(0))

	test.ExpectFailure(t, pc.Add(1))
	test.ExpectEquality(t, pc.Address(), uint16(1))

	pc.Load(0x80ff)
	test.ExpectSuccess(t, pc.Add(1))
	test.ExpectEquality(t, pc.Address(), uint16(0x8100))

	pc.LoadLo(0x34)
	pc.LoadHi(0x12)
	test.ExpectEquality(t, pc.Address(), uint16(0x1234))
	test.ExpectEquality(t, pc.Lo(), uint8(0x34))
	test.ExpectEquality(t, pc.Hi(), uint8(0x12))

	// wrap around the top of memory
	pc.Load(0xffff)
	pc.Add(1)
	test.ExpectEquality(t, pc.Address(), uint16(0))
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0x00)
	test.ExpectEquality(t, sp.Address(), uint16(0x0100))

	// stack pointer wraps within the stack page
	sp.Decrement()
	test.ExpectEquality(t, sp.Value(), uint8(0xff))
	test.ExpectEquality(t, sp.Address(), uint16(0x01ff))
	sp.Increment()
	test.ExpectEquality(t, sp.Address(), uint16(0x0100))
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.ExpectEquality(t, sr.Value(), uint8(0x20))
	test.ExpectEquality(t, sr.String(), "nv--dizc")

	sr.Reset()
	test.ExpectEquality(t, sr.Value(), uint8(0x24))
	test.ExpectEquality(t, sr.Pushed(true), uint8(0x34))
	test.ExpectEquality(t, sr.Pushed(false), uint8(0x24))

	// break and unused bits are never loaded
	sr.Load(0xff)
	test.ExpectEquality(t, sr.Value(), uint8(0xef))
	test.ExpectEquality(t, sr.String(), "NV--DIZC")

	sr.SetZN(0x00)
	test.ExpectSuccess(t, sr.Zero)
	test.ExpectFailure(t, sr.Sign)
	sr.SetZN(0x80)
	test.ExpectFailure(t, sr.Zero)
	test.ExpectSuccess(t, sr.Sign)
}

func TestDecimalMode(t *testing.T) {
	var rcarry bool

	r8 := registers.NewRegister(0, "test")

	rcarry, _, _, _ = r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(0x01))
	test.ExpectFailure(t, rcarry)

	rcarry, _, _, _ = r8.AddDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(0x03))
	test.ExpectFailure(t, rcarry)

	// addition on tens boundary
	r8.Load(0x09)
	r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(0x10))

	// subtraction on tens boundary
	r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(0x09))

	// subtraction without carry subtracts another one
	r8.SubtractDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(0x07))

	// addition on hundreds boundary
	r8.Load(0x99)
	rcarry, _, _, _ = r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(0x00))
	test.ExpectSuccess(t, rcarry)

	// subtraction on hundreds boundary
	r8.Load(0x00)
	rcarry, _, _, _ = r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(0x99))
	test.ExpectFailure(t, rcarry)
}
