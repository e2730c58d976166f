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

// the decimal functions return information about zero and sign bits in
// addition to the carry and overflow. this is different to binary
// addition/subtraction which only returns information for the carry and
// overflow flags.
//
// the 2A03 has the decimal circuitry disconnected so these are only used when
// the CPU is configured as a plain NMOS 6502.
//
// details of this has been taken from "Flags on Decimal mode in the NMOS 6502"
// v1.0 by Jorge Cwik

func addDecimal(a, b uint8, carry bool) (r uint8, rcarry bool) {
	r = a + b
	if carry {
		r++
	}
	return r, r > 9
}

// AddDecimal adds value to register as though both registers are decimal
// representations. Returns new carry state, zero, overflow, sign bit
// information.
func (r *Register) AddDecimal(val uint8, carry bool) (bool, bool, bool, bool) {

	runits, ucarry := addDecimal(r.value&0x0f, val&0x0f, carry)
	rtens, tcarry := addDecimal(r.value>>4, val>>4, ucarry)

	// the Z flag is computed from the binary result
	zero := r.value+val+carryBit(carry) == 0

	if ucarry {
		runits -= 10
	}

	// N and V are computed after the low nibble adjustment but before the
	// high nibble adjustment
	overflow := rtens&0x04 == 0x04
	sign := rtens&0x08 == 0x08

	if tcarry {
		rtens -= 10
	}

	r.value = (rtens << 4) | (runits & 0x0f)

	return tcarry, zero, overflow, sign
}

func subtractDecimal(a, b uint8, borrow bool) (r uint8, rborrow bool) {
	r = a - b
	if borrow {
		r--
	}
	return r, b > a || borrow && b == a
}

// SubtractDecimal subtracts value from register as though both registers are
// decimal representations. Returns new carry state, zero, overflow, sign bit
// information. The flags other than carry are the same as for binary
// subtraction.
func (r *Register) SubtractDecimal(val uint8, carry bool) (bool, bool, bool, bool) {
	bin := *r
	_, overflow := bin.Subtract(val, carry)

	runits, ucarry := subtractDecimal(r.value&0x0f, val&0x0f, !carry)
	rtens, tcarry := subtractDecimal(r.value>>4, val>>4, ucarry)

	if ucarry {
		runits += 10
	}
	if tcarry {
		rtens += 10
	}

	r.value = (rtens << 4) | (runits & 0x0f)

	return !tcarry, bin.IsZero(), overflow, bin.IsNegative()
}

func carryBit(carry bool) uint8 {
	if carry {
		return 1
	}
	return 0
}
