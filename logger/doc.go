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

// Package logger is the central log repository for the emulation. Log entries
// are made by the hardware for rare events that a user or developer may want
// to know about but which are not errors: a CPU jam, writes ignored during PPU
// warm-up, etc.
//
// Each entry is a tag and a detail string. Identical entries made one after
// another are collapsed into a single entry with a repeat count.
//
// All logging is done through the Permission interface. The hardware uses
// the NES type as the Permission so that logging can be suppressed while the
// emulation is being replayed by the rewind system.
package logger
