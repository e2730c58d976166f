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

package execution

// Bug describes a known bug in the 6502 that was triggered during execution
// of the instruction.
type Bug string

// List of known bugs.
const (
	NoBug                        Bug = ""
	JmpIndirectAddressingBug     Bug = "indirect addressing bug"
	IndexedIndirectAddressingBug Bug = "indexed indirect addressing bug"
	ZeroPageIndexBug             Bug = "zero page index bug"
	InterruptHijackBug           Bug = "interrupt hijacked by NMI"
)
