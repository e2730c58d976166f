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

package cpu

import (
	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
)

// State is the serialisable state of the CPU. It includes the progress of
// the current instruction so a CPU can be restored between any two cycles.
type State struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status uint8

	Variant Variant
	Killed  bool

	Phase     int
	Cycle     int
	Addressed bool
	DataCycle int
	Addr      uint16
	Base      uint16
	Ptr       uint8
	Data      uint8
	Crossed   bool
	Vector    uint16
	IFlag     bool
	Pending   execution.Interrupt

	// the instruction definition in the Result is not serialised. the
	// opcode is used to find the definition on restore. -1 if there is no
	// definition
	Opcode int
	Result execution.Result
}

// SaveState returns the current state of the CPU.
func (mc *CPU) SaveState() State {
	s := State{
		PC:        mc.PC.Address(),
		A:         mc.A.Value(),
		X:         mc.X.Value(),
		Y:         mc.Y.Value(),
		SP:        mc.SP.Value(),
		Status:    mc.Status.Value(),
		Variant:   mc.Variant,
		Killed:    mc.Killed,
		Phase:     int(mc.phase),
		Cycle:     mc.cycle,
		Addressed: mc.addressed,
		DataCycle: mc.dcycle,
		Addr:      mc.addr,
		Base:      mc.base,
		Ptr:       mc.ptr,
		Data:      mc.data,
		Crossed:   mc.crossed,
		Vector:    mc.vector,
		IFlag:     mc.iflag,
		Pending:   mc.pending,
		Opcode:    -1,
		Result:    mc.LastResult,
	}

	if mc.LastResult.Defn != nil {
		s.Opcode = int(mc.LastResult.Defn.OpCode)
	}
	s.Result.Defn = nil

	return s
}

// RestoreState restores the state previously returned by SaveState().
func (mc *CPU) RestoreState(s State) {
	mc.PC.Load(s.PC)
	mc.A.Load(s.A)
	mc.X.Load(s.X)
	mc.Y.Load(s.Y)
	mc.SP.Load(s.SP)
	mc.Status.Load(s.Status)
	mc.Variant = s.Variant
	mc.Killed = s.Killed
	mc.phase = phase(s.Phase)
	mc.cycle = s.Cycle
	mc.addressed = s.Addressed
	mc.dcycle = s.DataCycle
	mc.addr = s.Addr
	mc.base = s.Base
	mc.ptr = s.Ptr
	mc.data = s.Data
	mc.crossed = s.Crossed
	mc.vector = s.Vector
	mc.iflag = s.IFlag
	mc.pending = s.Pending

	mc.LastResult = s.Result
	if s.Opcode >= 0 && s.Opcode < len(mc.instructions) {
		mc.LastResult.Defn = mc.instructions[s.Opcode]
	}
}
