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

// Package hardware is the base package for the NES emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The NES type is the root of the emulation and contains references to all
// the sub-systems. From here, the emulation can be run continuously (with an
// optional callback to check for continuation) or it can be stepped by
// instruction, by CPU cycle or by frame.
//
// The NES type also acts as the clock coordinator. Every call to Tick()
// advances the PPU by the number of dots due for one CPU cycle and then
// advances the CPU, or the OAM DMA unit if it has halted the CPU, by one
// cycle. The PPU always runs first so that an NMI raised by the PPU is
// visible to the CPU in the same cycle.
//
// There is no hidden state in the coordinator. The emulation can be stopped
// after any tick and the complete state taken with Snapshot(). The state can
// be serialised with State.Save() and restored into any NES using the same
// cartridge with Plumb().
package hardware
