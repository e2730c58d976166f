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

package debugger

import (
	"fmt"
	"slices"
	"strings"
)

// breakpoints halt execution when the program counter reaches one of the
// listed addresses. the check happens on instruction boundaries only.
type breakpoints struct {
	addresses []uint16
}

func (bp breakpoints) String() string {
	if len(bp.addresses) == 0 {
		return "no breakpoints"
	}
	s := strings.Builder{}
	for i, a := range bp.addresses {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(fmt.Sprintf("% 2d: $%04x", i, a))
	}
	return s.String()
}

// add breakpoint. returns false if the breakpoint already exists.
func (bp *breakpoints) add(address uint16) bool {
	i, found := slices.BinarySearch(bp.addresses, address)
	if found {
		return false
	}
	bp.addresses = slices.Insert(bp.addresses, i, address)
	return true
}

// drop breakpoint. returns false if the breakpoint does not exist.
func (bp *breakpoints) drop(address uint16) bool {
	i, found := slices.BinarySearch(bp.addresses, address)
	if !found {
		return false
	}
	bp.addresses = slices.Delete(bp.addresses, i, i+1)
	return true
}

func (bp *breakpoints) clear() {
	bp.addresses = bp.addresses[:0]
}

func (bp breakpoints) check(pc uint16) bool {
	_, found := slices.BinarySearch(bp.addresses, pc)
	return found
}
