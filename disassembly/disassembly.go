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

package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
)

// Peeker is the memory the disassembly reads from. Reading must not have side
// effects.
type Peeker interface {
	Peek(address uint16) uint8
}

// Entry is a single disassembled instruction.
type Entry struct {
	Result execution.Result
	Bytes  []uint8
}

// Mnemonic of the instruction.
func (e Entry) Mnemonic() string {
	return e.Result.Defn.Operator.String()
}

// Operand of the instruction in 6502 assembly syntax.
func (e Entry) Operand() string {
	return e.Result.Operand()
}

func (e Entry) String() string {
	var b strings.Builder
	for _, v := range e.Bytes {
		fmt.Fprintf(&b, "%02x ", v)
	}

	s := fmt.Sprintf("%04x  %-9s %s", e.Result.Address, b.String(), e.Mnemonic())
	if o := e.Operand(); o != "" {
		s = fmt.Sprintf("%s %s", s, o)
	}
	if e.Result.Defn.Undocumented() {
		s = fmt.Sprintf("%s *", s)
	}
	return s
}

// Decode the instruction at the address.
func Decode(mem Peeker, address uint16) Entry {
	defn := instructions.GetDefinitions()[mem.Peek(address)]

	e := Entry{
		Result: execution.Result{
			Defn:      defn,
			Address:   address,
			ByteCount: defn.Bytes,
			Cycles:    defn.Cycles,
		},
		Bytes: make([]uint8, defn.Bytes),
	}

	for i := range e.Bytes {
		e.Bytes[i] = mem.Peek(address + uint16(i))
	}

	switch defn.Bytes {
	case 2:
		e.Result.InstructionData = uint16(e.Bytes[1])
	case 3:
		e.Result.InstructionData = uint16(e.Bytes[1]) | uint16(e.Bytes[2])<<8
	}

	return e
}

// Disassemble count instructions starting at the address. Addresses wrap at
// the top of memory.
func Disassemble(mem Peeker, address uint16, count int) []Entry {
	ents := make([]Entry, 0, count)
	for range count {
		e := Decode(mem, address)
		ents = append(ents, e)
		address += uint16(len(e.Bytes))
	}
	return ents
}

// Range disassembles every instruction from the first address up to and
// including the last address. Decoding stops early if the address wraps.
func Range(mem Peeker, from uint16, to uint16) []Entry {
	var ents []Entry
	address := from
	for address >= from && address <= to {
		e := Decode(mem, address)
		ents = append(ents, e)
		address += uint16(len(e.Bytes))
	}
	return ents
}

// Write the entries to output, one per line.
func Write(output io.Writer, ents []Entry) {
	for _, e := range ents {
		fmt.Fprintln(output, e)
	}
}
