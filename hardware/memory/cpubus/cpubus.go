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

package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Every access takes exactly one CPU cycle and may have side effects.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Debugger defines operations that access memory without side effects. Values
// returned by Peek() are what a Read() would return at that moment, without
// causing the Read() to happen. Not every address can be poked.
type Debugger interface {
	Peek(address uint16) uint8
	Poke(address uint16, data uint8) error
}

// Addresses of the interrupt vectors. Each vector is two bytes, low byte first.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)
