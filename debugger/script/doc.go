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

// Package script allows the debugger to record and replay sequences of
// debugger commands.
//
// The Scribe type writes user input to a script file. Debugger output can be
// interleaved with the input as comment lines, which makes the file useful
// as a log of the session as well as a script.
//
// The Rescribe type reads a script and implements the terminal.Input
// interface so that the debugger can treat the script as though it was a
// terminal. Comment lines are skipped.
package script
