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

package logger

// Permission is implemented by anything that may write to the log. The NES
// and its environment implement it so that only the main emulation logs. A
// regression run builds its NES with its own label, which keeps its CPU jams
// and PPU register warnings out of the log.
type Permission interface {
	AllowLogging() bool
}

type unconditional struct{}

func (unconditional) AllowLogging() bool {
	return true
}

// Allow is for log entries made outside of any emulation, such as by the
// cartridge loader or the command line.
var Allow Permission = unconditional{}
