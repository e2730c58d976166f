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
	"fmt"

	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
	"github.com/jetsetilly/gophernes/hardware/interrupts"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
	"github.com/jetsetilly/gophernes/logger"
)

// Variant selects the behaviour of the CPU where versions of the 6502 differ.
type Variant int

// List of valid Variant values.
const (
	// the 6502 core in the NES. the decimal flag can be set but has no effect
	RP2A03 Variant = iota

	// the original NMOS 6502 with decimal arithmetic
	NMOS
)

func (v Variant) String() string {
	switch v {
	case RP2A03:
		return "2A03"
	case NMOS:
		return "NMOS"
	}
	return "unknown variant"
}

type phase int

const (
	phaseFetch phase = iota
	phaseExecute
	phaseInterrupt
	phaseReset
	phaseHalted
)

// CPU implements the 6502 as found in the NES. Register logic is implemented
// by the types in the registers sub-package.
type CPU struct {
	env *environment.Environment

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	Variant Variant

	mem          cpubus.Memory
	lines        *interrupts.Lines
	instructions []*instructions.Definition

	// last result. updated every cycle. the Final field is true once the
	// instruction or interrupt sequence is complete
	LastResult execution.Result

	// the cpu has encountered a KIL instruction. requires a Reset()
	Killed bool

	// the state of the current instruction between cycles
	phase     phase
	cycle     int
	addressed bool
	dcycle    int
	addr      uint16
	base      uint16
	ptr       uint8
	data      uint8
	crossed   bool
	vector    uint16

	// the interrupt disable flag as it was at the start of the current
	// cycle. used when polling the interrupt lines
	iflag bool

	// the interrupt to service instead of the next instruction
	pending execution.Interrupt
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// interrupt lines can be nil, in which case the CPU will never be interrupted
// except by a call to Reset().
//
// The CPU must be powered on or reset before being used.
func NewCPU(env *environment.Environment, mem cpubus.Memory, lines *interrupts.Lines) *CPU {
	if lines == nil {
		lines = &interrupts.Lines{}
	}
	return &CPU{
		env:          env,
		mem:          mem,
		lines:        lines,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0),
		Status:       registers.NewStatusRegister(),
		instructions: instructions.GetDefinitions(),
	}
}

// Plumb a new memory bus and interrupt lines into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory, lines *interrupts.Lines) {
	mc.mem = mem
	if lines != nil {
		mc.lines = lines
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// PowerOn sets the registers to their power on values and begins the reset
// sequence.
func (mc *CPU) PowerOn() {
	if mc.env != nil && mc.env.RandomState {
		src := mc.env.Random.Source()
		mc.A.Load(uint8(src.Intn(0x100)))
		mc.X.Load(uint8(src.Intn(0x100)))
		mc.Y.Load(uint8(src.Intn(0x100)))
	} else {
		mc.A.Load(0)
		mc.X.Load(0)
		mc.Y.Load(0)
	}
	mc.SP.Load(0)
	mc.Status.Reset()
	mc.Reset()
}

// Reset begins the seven cycle reset sequence. The A, X and Y registers are
// not affected. The stack pointer is decremented three times during the
// sequence, the same as for an interrupt, but nothing is written to the
// stack.
func (mc *CPU) Reset() {
	mc.Killed = false
	mc.pending = execution.NoInterrupt
	mc.phase = phaseReset
	mc.cycle = 0
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()
	mc.LastResult.Interrupt = execution.Reset
}

// AtBoundary returns true if the next cycle will begin a new instruction or
// interrupt sequence.
func (mc *CPU) AtBoundary() bool {
	return mc.phase == phaseFetch
}

// InReset returns true if the CPU is performing the reset sequence.
func (mc *CPU) InReset() bool {
	return mc.phase == phaseReset
}

// PendingInterrupt returns the interrupt that will be serviced instead of the
// next instruction.
func (mc *CPU) PendingInterrupt() execution.Interrupt {
	return mc.pending
}

// ExecuteInstruction runs cycles until the current instruction or interrupt
// sequence is complete. The callback function is called after every cycle and
// an error from the callback will end the instruction early. The CPU can be
// resumed with another call to ExecuteInstruction() or Cycle().
//
// A halted CPU performs a single idle cycle.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	for {
		mc.Cycle()

		if cycleCallback != nil {
			if err := cycleCallback(); err != nil {
				return err
			}
		}

		if mc.LastResult.Final {
			return nil
		}
	}
}

// Cycle performs one cycle of the current instruction or interrupt sequence.
// If the previous instruction has completed then the next opcode is fetched
// or, if an interrupt is pending, the interrupt sequence begins.
func (mc *CPU) Cycle() {
	mc.iflag = mc.Status.InterruptDisable

	switch mc.phase {
	case phaseFetch:
		mc.fetch()
		return
	case phaseHalted:
		return
	}

	t := mc.cycle
	mc.cycle++
	mc.LastResult.Cycles = mc.cycle

	switch mc.phase {
	case phaseExecute:
		mc.execute(t)
	case phaseInterrupt:
		mc.interrupt(t)
	case phaseReset:
		mc.reset(t)
	}
}

func (mc *CPU) read(address uint16) uint8 {
	return mc.mem.Read(address)
}

func (mc *CPU) write(address uint16, data uint8) {
	mc.mem.Write(address, data)
}

// read the next byte of the instruction
func (mc *CPU) operand() uint8 {
	v := mc.read(mc.PC.Address())
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v
}

func (mc *CPU) push(data uint8) {
	mc.write(mc.SP.Address(), data)
	mc.SP.Decrement()
}

func (mc *CPU) pull() uint8 {
	mc.SP.Increment()
	return mc.read(mc.SP.Address())
}

// finish completes an instruction and samples the interrupt lines
func (mc *CPU) finish() {
	mc.LastResult.Final = true
	mc.phase = phaseFetch

	mc.pending = execution.NoInterrupt
	if mc.lines.NMIPending() {
		mc.pending = execution.NMI
	} else if mc.lines.IRQAsserted() && !mc.iflag {
		mc.pending = execution.IRQ
	}
}

// finishSequence completes an interrupt sequence (including BRK). The lines
// are not sampled so the first instruction of the handler always runs.
func (mc *CPU) finishSequence() {
	mc.LastResult.Final = true
	mc.phase = phaseFetch
	mc.pending = execution.NoInterrupt
}

func (mc *CPU) fetch() {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()
	mc.LastResult.Cycles = 1
	mc.cycle = 1

	mc.addressed = false
	mc.dcycle = 0
	mc.crossed = false
	mc.addr = 0
	mc.base = 0

	if mc.pending != execution.NoInterrupt {
		mc.LastResult.Interrupt = mc.pending
		mc.pending = execution.NoInterrupt
		mc.read(mc.PC.Address())
		mc.phase = phaseInterrupt
		return
	}

	opcode := mc.operand()
	mc.LastResult.Defn = mc.instructions[opcode]
	mc.phase = phaseExecute
}

func (mc *CPU) kill() {
	mc.Killed = true
	mc.phase = phaseHalted
	mc.LastResult.Final = true
	logger.Logf(mc.env, "CPU", "halted by %s at %#04x", mc.LastResult.Defn.Operator, mc.LastResult.Address)
}

// interrupt performs the cycles of the NMI and IRQ sequence. The first cycle
// is performed by fetch()
func (mc *CPU) interrupt(t int) {
	switch t {
	case 1:
		mc.read(mc.PC.Address())
	case 2:
		mc.push(mc.PC.Hi())
	case 3:
		mc.push(mc.PC.Lo())
	case 4:
		mc.vector = mc.selectVector(cpubus.IRQ)
		if mc.vector == cpubus.NMI && mc.LastResult.Interrupt == execution.IRQ {
			mc.LastResult.Interrupt = execution.NMI
			mc.LastResult.CPUBug = execution.InterruptHijackBug
		}
		mc.push(mc.Status.Pushed(false))
	case 5:
		mc.addr = uint16(mc.read(mc.vector))
		mc.Status.InterruptDisable = true
	case 6:
		mc.addr |= uint16(mc.read(mc.vector+1)) << 8
		mc.PC.Load(mc.addr)
		mc.finishSequence()
	default:
		panic(fmt.Sprintf("cpu: interrupt sequence cycle out of range (%d)", t))
	}
}

// selectVector returns the NMI vector if an NMI is waiting, acknowledging
// it. Otherwise the fallback vector is returned
func (mc *CPU) selectVector(fallback uint16) uint16 {
	if mc.lines.NMIPending() {
		mc.lines.AcknowledgeNMI()
		return cpubus.NMI
	}
	return fallback
}

// reset performs the cycles of the reset sequence. The pushes of the
// interrupt sequence are reads
func (mc *CPU) reset(t int) {
	switch t {
	case 0, 1:
		mc.read(mc.PC.Address())
	case 2, 3, 4:
		mc.read(mc.SP.Address())
		mc.SP.Decrement()
	case 5:
		mc.addr = uint16(mc.read(cpubus.Reset))
		mc.Status.InterruptDisable = true
	case 6:
		mc.addr |= uint16(mc.read(cpubus.Reset+1)) << 8
		mc.PC.Load(mc.addr)
		mc.finishSequence()
		logger.Logf(mc.env, "CPU", "reset to %#04x", mc.addr)
	default:
		panic(fmt.Sprintf("cpu: reset sequence cycle out of range (%d)", t))
	}
}
