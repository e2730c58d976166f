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

// Package rewind keeps a history of NES states, one for every frame (or
// every few frames), so that the emulation can be returned to an earlier
// point.
//
// The Rewind type is attached to the PPU as a frame trigger. Check() should
// be called after every CPU instruction and takes a snapshot if a frame has
// been published since the last call. Snapshots are taken on an instruction
// boundary so the state can be plumbed in and emulation continued
// immediately.
//
// ExecutionState() records the state at the current position, which need not
// be on a frame boundary. It is used by the debugger so that the current
// position can be returned to after rewinding. The execution state is
// discarded by the next frame snapshot.
package rewind
