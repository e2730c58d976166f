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

// Package debugger implements a command line debugging tool for the NES
// emulation. Features include:
//
//   - instruction, cycle and frame stepping
//   - breakpoints on the program counter
//   - memory peek and poke
//   - snapshots, save states and rewind
//   - joypad input and input recording
//   - script recording and playback
//   - memviz dumps of the emulation state
//
// Initialisation of the debugger is done with the NewDebugger() function
//
//	dbg, _ := debugger.NewDebugger(nes, term)
//
// Interaction with the debugger is through a terminal. The Terminal interface
// is defined in the terminal package. The colorterm and plainterm packages
// provide implementations.
//
// Commands are case insensitive and several commands can be entered on one
// line, separated by a semi-colon. Numbers can be written in decimal or in
// hex with the $ or 0x prefix.
package debugger
