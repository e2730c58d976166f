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

import "fmt"

// StackPage is the page of memory used by the stack.
const StackPage = 0x0100

// StackPointer is an 8 bit register that always addresses the stack page.
// Increment and decrement wrap within the page.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns the register's name.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%02x", sp.value)
}

// Value returns the 8 bit value of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the full address in the stack page.
func (sp StackPointer) Address() uint16 {
	return StackPage | uint16(sp.value)
}

// Load value into stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Increment the stack pointer. Used when pulling from the stack.
func (sp *StackPointer) Increment() {
	sp.value++
}

// Decrement the stack pointer. Used when pushing to the stack.
func (sp *StackPointer) Decrement() {
	sp.value--
}
