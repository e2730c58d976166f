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
	"os"
	"strings"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/debugger/govern"
	"github.com/jetsetilly/gophernes/debugger/script"
	"github.com/jetsetilly/gophernes/debugger/terminal"
	"github.com/jetsetilly/gophernes/disassembly"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/input"
	"github.com/jetsetilly/gophernes/hardware/peripherals/controllers"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/paths"
)

// Sentinal errors returned by the command processor.
const (
	UnknownCommand   = "unknown command: %s"
	CommandError     = "%s: %v"
	MissingArgument  = "missing argument: %s"
	TooManyArguments = "too many arguments: %s"
	UnknownOption    = "unknown option: %s"
	NoSnapshot       = "no snapshot"
)

type command struct {
	name  string
	usage string
	help  string
	fn    func(dbg *Debugger, tk *tokens) error

	// commands that are not written to a script recording
	unscribed bool
}

var commandList []command

func init() {
	commandList = []command{
		{name: "HELP", usage: "[command]", fn: (*Debugger).cmdHelp, unscribed: true,
			help: "list commands or show help for a single command"},
		{name: "STEP", usage: "[n]", fn: (*Debugger).cmdStep,
			help: "run n CPU instructions (default 1). breakpoints are honoured"},
		{name: "CYCLE", usage: "[n]", fn: (*Debugger).cmdCycle,
			help: "run n CPU cycles (default 1). the CPU may be left part way through an instruction"},
		{name: "FRAME", usage: "[n]", fn: (*Debugger).cmdFrame,
			help: "run until n frames have been published (default 1)"},
		{name: "RUN", fn: (*Debugger).cmdRun,
			help: "run until a breakpoint is met or the user interrupts with ctrl-c"},
		{name: "REGS", fn: (*Debugger).cmdRegs,
			help: "show the CPU registers"},
		{name: "PPU", fn: (*Debugger).cmdPPU,
			help: "show the PPU state and the clock counters"},
		{name: "LAST", fn: (*Debugger).cmdLast,
			help: "show the most recent CPU instruction"},
		{name: "DISASM", usage: "[address] [n]", fn: (*Debugger).cmdDisasm,
			help: "disassemble n instructions from address (default PC and 10)"},
		{name: "GREP", usage: "<text>", fn: (*Debugger).cmdGrep,
			help: "search the disassembly of cartridge space for text"},
		{name: "PEEK", usage: "<address> [n]", fn: (*Debugger).cmdPeek,
			help: "show n bytes of memory starting at address (default 1). peeking has no side effects"},
		{name: "POKE", usage: "<address> <value> [value...]", fn: (*Debugger).cmdPoke,
			help: "write values to consecutive memory addresses. PPU registers can not be poked"},
		{name: "BREAK", usage: "[address...]", fn: (*Debugger).cmdBreak,
			help: "add a breakpoint on the program counter or list breakpoints if there are no arguments"},
		{name: "CLEAR", usage: "[address...]", fn: (*Debugger).cmdClear,
			help: "remove breakpoints. all breakpoints are removed if there are no arguments"},
		{name: "RESET", fn: (*Debugger).cmdReset,
			help: "press the reset button"},
		{name: "POWER", fn: (*Debugger).cmdPower,
			help: "power cycle the console. the rewind history is cleared"},
		{name: "SNAPSHOT", fn: (*Debugger).cmdSnapshot,
			help: "take an in-memory snapshot of the emulation"},
		{name: "RESTORE", fn: (*Debugger).cmdRestore,
			help: "restore the in-memory snapshot"},
		{name: "REWIND", usage: "[frames|LAST]", fn: (*Debugger).cmdRewind,
			help: "move back through the rewind history. show the available history if there are no arguments"},
		{name: "GOTO", usage: "<frame>", fn: (*Debugger).cmdGoto,
			help: "move to the frame in the rewind history"},
		{name: "COMPARE", usage: "[LOCK|UNLOCK]", fn: (*Debugger).cmdCompare,
			help: "show RAM that differs from the comparison point in the rewind history"},
		{name: "SAVE", usage: "[file]", fn: (*Debugger).cmdSave,
			help: "save the emulation state to a file. a unique filename is used if none is given"},
		{name: "LOAD", usage: "<file>", fn: (*Debugger).cmdLoad,
			help: "load the emulation state from a file. the cartridge must match"},
		{name: "MEMVIZ", usage: "<file> [CPU|PPU|DMA|ALL]", fn: (*Debugger).cmdMemviz,
			help: "write a graphviz dot file of the emulation state (default CPU)"},
		{name: "PRESS", usage: "<port> <button>", fn: (*Debugger).cmdPress,
			help: "press a joypad button. takes effect at the next frame"},
		{name: "RELEASE", usage: "<port> <button>", fn: (*Debugger).cmdRelease,
			help: "release a joypad button. takes effect at the next frame"},
		{name: "JOYPAD", fn: (*Debugger).cmdJoypad,
			help: "show the state of both joypads"},
		{name: "INPUT", usage: "RECORD [file]|PLAYBACK <file>|STOP", fn: (*Debugger).cmdInput,
			help: "record or playback joypad input"},
		{name: "SCRIPT", usage: "RECORD [file]|END|<file>", fn: (*Debugger).cmdScript, unscribed: true,
			help: "record debugger commands to a script or run a script"},
		{name: "PREFS", usage: "[SET <key> <value>|SAVE|LOAD]", fn: (*Debugger).cmdPrefs,
			help: "list, change, save or load the debugger preferences"},
		{name: "LOG", usage: "[n]", fn: (*Debugger).cmdLog,
			help: "show the last n log entries (default 10)"},
		{name: "QUIT", fn: (*Debugger).cmdQuit, unscribed: true,
			help: "end the debugging session"},
	}
}

func lookupCommand(name string) (command, bool) {
	name = strings.ToUpper(name)
	for _, c := range commandList {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func (dbg *Debugger) processTokens(tk *tokens) error {
	name, _ := tk.get()
	cmd, ok := lookupCommand(name)
	if !ok {
		return curated.Errorf(UnknownCommand, name)
	}

	// input is recorded before the command is run so that it precedes any
	// output in the script
	if !cmd.unscribed {
		if err := dbg.scribe.WriteInput(strings.Join(tk.tokens, " ")); err != nil {
			return err
		}
	}

	err := cmd.fn(dbg, tk)
	if err == nil && tk.remaining() > 0 {
		err = curated.Errorf(TooManyArguments, tk.remainder())
	}
	if err != nil {
		return curated.Errorf(CommandError, cmd.name, err)
	}

	return nil
}

func (dbg *Debugger) cmdHelp(tk *tokens) error {
	name, ok := tk.get()
	if !ok {
		s := strings.Builder{}
		for i, c := range commandList {
			if i > 0 {
				s.WriteString(" ")
			}
			s.WriteString(c.name)
		}
		dbg.printLine(terminal.StyleHelp, "%s", s.String())
		return nil
	}

	cmd, ok := lookupCommand(name)
	if !ok {
		return curated.Errorf(UnknownCommand, name)
	}
	dbg.printLine(terminal.StyleHelp, "%s %s", cmd.name, cmd.usage)
	dbg.printLine(terminal.StyleHelp, "%s", cmd.help)

	return nil
}

func (dbg *Debugger) cmdStep(tk *tokens) error {
	n, err := tk.number(32, 1)
	if err != nil {
		return err
	}

	var ct uint64
	_, err = dbg.run(func() bool {
		ct++
		return ct >= n
	})
	if err != nil {
		return err
	}

	return dbg.cmdLast(tk)
}

func (dbg *Debugger) cmdCycle(tk *tokens) error {
	n, err := tk.number(32, 1)
	if err != nil {
		return err
	}

	dbg.state = govern.Stepping
	defer dbg.halted()

	for range n {
		if err := dbg.nes.Tick(); err != nil {
			return err
		}
		if dbg.nes.CPU.AtBoundary() {
			dbg.rewind.Check()
		}
	}

	dbg.printLine(terminal.StyleCPUStep, "%s", dbg.nes.CPU.LastResult)
	dbg.printLine(terminal.StyleVideoStep, "%s", dbg.nes.Clock)

	return nil
}

func (dbg *Debugger) cmdFrame(tk *tokens) error {
	n, err := tk.number(32, 1)
	if err != nil {
		return err
	}

	target := dbg.nes.PPU.FrameNum + n
	_, err = dbg.run(func() bool {
		return dbg.nes.PPU.FrameNum >= target
	})
	if err != nil {
		return err
	}

	dbg.printLine(terminal.StyleVideoStep, "frame: %d", dbg.nes.PPU.FrameNum)
	return nil
}

func (dbg *Debugger) cmdRun(_ *tokens) error {
	_, err := dbg.run(nil)
	if err != nil {
		return err
	}
	return dbg.cmdLast(nil)
}

func (dbg *Debugger) cmdRegs(_ *tokens) error {
	dbg.printLine(terminal.StyleInstrument, "%s", dbg.nes.CPU)
	if dma := dbg.nes.DMA(); dma.Active {
		dbg.printLine(terminal.StyleInstrument, "%s", dma)
	}
	return nil
}

func (dbg *Debugger) cmdPPU(_ *tokens) error {
	dbg.printLine(terminal.StyleInstrument, "%s", dbg.nes.PPU)
	dbg.printLine(terminal.StyleInstrument, "%s", dbg.nes.Clock)
	return nil
}

func (dbg *Debugger) cmdLast(_ *tokens) error {
	dbg.printLine(terminal.StyleCPUStep, "%s", dbg.nes.CPU.LastResult)
	return nil
}

func (dbg *Debugger) address(tk *tokens, arg string) (uint16, error) {
	if tk.remaining() == 0 {
		return 0, curated.Errorf(MissingArgument, arg)
	}
	a, err := tk.number(16, 0)
	return uint16(a), err
}

func (dbg *Debugger) cmdPeek(tk *tokens) error {
	addr, err := dbg.address(tk, "address")
	if err != nil {
		return err
	}
	n, err := tk.number(16, 1)
	if err != nil {
		return err
	}

	s := strings.Builder{}
	for i := range n {
		a := addr + uint16(i)
		if i%16 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("$%04x:", a))
		}
		s.WriteString(fmt.Sprintf(" %02x", dbg.nes.Mem.Peek(a)))
	}
	dbg.printLine(terminal.StyleInstrument, "%s", s.String())

	return nil
}

func (dbg *Debugger) cmdDisasm(tk *tokens) error {
	addr, err := tk.number(16, uint64(dbg.nes.CPU.PC.Address()))
	if err != nil {
		return err
	}
	n, err := tk.number(16, 10)
	if err != nil {
		return err
	}

	ents := disassembly.Disassemble(dbg.nes.Mem, uint16(addr), int(n))
	disassembly.Write(dbg.printStyle(terminal.StyleInstrument), ents)

	return nil
}

func (dbg *Debugger) cmdGrep(tk *tokens) error {
	if tk.remaining() == 0 {
		return curated.Errorf(MissingArgument, "text")
	}
	search := tk.remainder()
	tk.curr = len(tk.tokens)

	ents := disassembly.Range(dbg.nes.Mem, 0x8000, 0xffff)
	if disassembly.Grep(dbg.printStyle(terminal.StyleInstrument), ents, disassembly.GrepAll, search, false) == 0 {
		dbg.printLine(terminal.StyleFeedback, "no matches for: %s", search)
	}

	return nil
}

func (dbg *Debugger) cmdPoke(tk *tokens) error {
	addr, err := dbg.address(tk, "address")
	if err != nil {
		return err
	}
	if tk.remaining() == 0 {
		return curated.Errorf(MissingArgument, "value")
	}

	for tk.remaining() > 0 {
		v, err := tk.number(8, 0)
		if err != nil {
			return err
		}
		if err := dbg.nes.Mem.Poke(addr, uint8(v)); err != nil {
			return err
		}
		addr++
	}

	return nil
}

func (dbg *Debugger) cmdBreak(tk *tokens) error {
	if tk.remaining() == 0 {
		dbg.printLine(terminal.StyleFeedback, "%s", dbg.breakpoints)
		return nil
	}

	for tk.remaining() > 0 {
		a, err := dbg.address(tk, "address")
		if err != nil {
			return err
		}
		if dbg.breakpoints.add(a) {
			dbg.printLine(terminal.StyleFeedback, "breakpoint added: $%04x", a)
		} else {
			dbg.printLine(terminal.StyleFeedback, "breakpoint already exists: $%04x", a)
		}
	}

	return nil
}

func (dbg *Debugger) cmdClear(tk *tokens) error {
	if tk.remaining() == 0 {
		dbg.breakpoints.clear()
		dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
		return nil
	}

	for tk.remaining() > 0 {
		a, err := dbg.address(tk, "address")
		if err != nil {
			return err
		}
		if !dbg.breakpoints.drop(a) {
			dbg.printLine(terminal.StyleFeedback, "no breakpoint: $%04x", a)
		}
	}

	return nil
}

func (dbg *Debugger) cmdReset(_ *tokens) error {
	dbg.nes.Reset()
	dbg.printLine(terminal.StyleFeedback, "reset")
	return nil
}

func (dbg *Debugger) cmdPower(_ *tokens) error {
	dbg.nes.PowerOn()
	dbg.rewind.Reset()
	dbg.printLine(terminal.StyleFeedback, "power on")
	return nil
}

func (dbg *Debugger) cmdSnapshot(_ *tokens) error {
	dbg.snapshot = dbg.nes.Snapshot()
	dbg.printLine(terminal.StyleFeedback, "snapshot taken: frame %d", dbg.snapshot.PPU.FrameNum)
	return nil
}

func (dbg *Debugger) cmdRestore(_ *tokens) error {
	if dbg.snapshot == nil {
		return curated.Errorf(NoSnapshot)
	}
	if err := dbg.nes.Plumb(dbg.snapshot); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "snapshot restored: frame %d", dbg.nes.PPU.FrameNum)
	return nil
}

func (dbg *Debugger) cmdRewind(tk *tokens) error {
	arg, ok := tk.peek()
	if !ok {
		dbg.printLine(terminal.StyleFeedback, "%s", dbg.rewind.GetFrames())
		return nil
	}

	if strings.EqualFold(arg, "LAST") {
		tk.get()
		if err := dbg.rewind.GotoLast(); err != nil {
			return err
		}
	} else {
		n, err := tk.number(32, 0)
		if err != nil {
			return err
		}
		if _, err := dbg.rewind.Rewind(int(n)); err != nil {
			return err
		}
	}

	dbg.printLine(terminal.StyleFeedback, "frame: %d", dbg.nes.PPU.FrameNum)
	return nil
}

func (dbg *Debugger) cmdGoto(tk *tokens) error {
	if tk.remaining() == 0 {
		return curated.Errorf(MissingArgument, "frame")
	}
	n, err := tk.number(64, 0)
	if err != nil {
		return err
	}
	fn, err := dbg.rewind.GotoFrame(n)
	if err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "frame: %d", fn)
	return nil
}

func (dbg *Debugger) cmdCompare(tk *tokens) error {
	if arg, ok := tk.get(); ok {
		switch strings.ToUpper(arg) {
		case "LOCK":
			dbg.rewind.LockComparison(true)
		case "UNLOCK":
			dbg.rewind.LockComparison(false)
		default:
			return curated.Errorf(UnknownOption, arg)
		}
		return nil
	}

	cmp := dbg.rewind.GetComparisonState()
	s := strings.Builder{}

	ram := dbg.nes.Mem.RAM.RAM
	var diff int
	for i, v := range cmp.State.State.Mem.RAM {
		if ram[i] != v {
			diff++
			s.WriteString(fmt.Sprintf("$%04x: %02x -> %02x\n", i, v, ram[i]))
		}
	}

	s.WriteString(fmt.Sprintf("comparison: frame %d", cmp.State.Frame))
	if cmp.Locked {
		s.WriteString(" (locked)")
	}
	s.WriteString(fmt.Sprintf(": %d differences", diff))
	dbg.printLine(terminal.StyleInstrument, "%s", s.String())

	return nil
}

func (dbg *Debugger) filename(tk *tokens) (string, error) {
	fn, ok := tk.get()
	if !ok {
		return "", curated.Errorf(MissingArgument, "file")
	}
	return fn, nil
}

// the filename argument or a new unique filename if there is no argument
func (dbg *Debugger) newFilename(tk *tokens, prepend string) string {
	if fn, ok := tk.get(); ok {
		return fn
	}
	return paths.UniqueFilename(prepend, dbg.nes.Mem.Cart.Name)
}

func (dbg *Debugger) cmdSave(tk *tokens) error {
	fn := dbg.newFilename(tk, "state")

	f, err := os.Create(fn)
	if err != nil {
		return err
	}

	err = dbg.nes.Snapshot().Save(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	dbg.printLine(terminal.StyleFeedback, "state saved: %s", fn)
	return nil
}

func (dbg *Debugger) cmdLoad(tk *tokens) error {
	fn, err := dbg.filename(tk)
	if err != nil {
		return err
	}

	f, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	s, err := hardware.LoadState(f)
	if err != nil {
		return err
	}
	if err := dbg.nes.Plumb(s); err != nil {
		return err
	}
	dbg.rewind.Reset()

	dbg.printLine(terminal.StyleFeedback, "state loaded: frame %d", dbg.nes.PPU.FrameNum)
	return nil
}

func (dbg *Debugger) joypadEvent(tk *tokens, pressed bool) error {
	if tk.remaining() == 0 {
		return curated.Errorf(MissingArgument, "port")
	}
	port, err := tk.number(8, 0)
	if err != nil {
		return err
	}

	b, ok := tk.get()
	if !ok {
		return curated.Errorf(MissingArgument, "button")
	}
	button, err := controllers.ParseButton(b)
	if err != nil {
		return err
	}

	return dbg.nes.Input.PushEvent(input.Event{
		Port:    int(port),
		Button:  button,
		Pressed: pressed,
	})
}

func (dbg *Debugger) cmdPress(tk *tokens) error {
	return dbg.joypadEvent(tk, true)
}

func (dbg *Debugger) cmdRelease(tk *tokens) error {
	return dbg.joypadEvent(tk, false)
}

func (dbg *Debugger) cmdJoypad(_ *tokens) error {
	for i, j := range dbg.nes.Joypads {
		dbg.printLine(terminal.StyleInstrument, "%d: %s", i, j)
	}
	return nil
}

func (dbg *Debugger) cmdInput(tk *tokens) error {
	arg, ok := tk.get()
	if !ok {
		return curated.Errorf(MissingArgument, "RECORD, PLAYBACK or STOP")
	}

	switch strings.ToUpper(arg) {
	case "RECORD":
		fn := dbg.newFilename(tk, "input")
		rec := &input.Recording{}
		if err := dbg.nes.Input.AttachRecorder(rec); err != nil {
			return err
		}
		dbg.recording = rec
		dbg.recordTo = fn
		dbg.printLine(terminal.StyleFeedback, "recording input: %s", fn)

	case "PLAYBACK":
		fn, err := dbg.filename(tk)
		if err != nil {
			return err
		}
		f, err := os.Open(fn)
		if err != nil {
			return err
		}
		defer f.Close()

		rec, err := input.ReadRecording(f)
		if err != nil {
			return err
		}
		if err := dbg.nes.Input.AttachPlayback(rec); err != nil {
			return err
		}
		dbg.playback = rec
		dbg.printLine(terminal.StyleFeedback, "playing back input: %s", fn)

	case "STOP":
		return dbg.endInputRecording()

	default:
		return curated.Errorf(UnknownOption, arg)
	}

	return nil
}

// endInputRecording stops any input recording or playback. a recording is
// written to the file named when the recording started.
func (dbg *Debugger) endInputRecording() error {
	if dbg.playback != nil {
		dbg.playback = nil
		return dbg.nes.Input.AttachPlayback(nil)
	}

	if dbg.recording == nil {
		return nil
	}

	rec := dbg.recording
	dbg.recording = nil
	if err := dbg.nes.Input.AttachRecorder(nil); err != nil {
		return err
	}

	f, err := os.Create(dbg.recordTo)
	if err != nil {
		return err
	}
	err = rec.Write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	dbg.printLine(terminal.StyleFeedback, "input recording saved: %s (%d events)", dbg.recordTo, len(rec.Events))
	return nil
}

func (dbg *Debugger) cmdScript(tk *tokens) error {
	arg, ok := tk.get()
	if !ok {
		return curated.Errorf(MissingArgument, "RECORD, END or file")
	}

	switch strings.ToUpper(arg) {
	case "RECORD":
		fn := dbg.newFilename(tk, "script")
		if dbg.scribe.IsActive() {
			return curated.Errorf(script.ScribeActive)
		}
		dbg.printLine(terminal.StyleFeedback, "recording script: %s", fn)
		if err := dbg.scribe.StartSession(fn); err != nil {
			return err
		}
	case "END":
		return dbg.scribe.EndSession()
	default:
		return dbg.runScript(arg)
	}

	return nil
}

func (dbg *Debugger) cmdLog(tk *tokens) error {
	n, err := tk.number(16, 10)
	if err != nil {
		return err
	}
	logger.Tail(dbg.printStyle(terminal.StyleFeedback), int(n))
	return nil
}

func (dbg *Debugger) cmdPrefs(tk *tokens) error {
	arg, ok := tk.get()
	if !ok {
		for _, l := range strings.Split(strings.TrimSpace(dbg.prefs.dsk.String()), "\n") {
			dbg.printLine(terminal.StyleFeedback, "%s", l)
		}
		return nil
	}

	switch strings.ToUpper(arg) {
	case "SET":
		key, ok := tk.get()
		if !ok {
			return curated.Errorf(MissingArgument, "key")
		}
		val, ok := tk.get()
		if !ok {
			return curated.Errorf(MissingArgument, "value")
		}
		if err := dbg.prefs.dsk.Set(strings.ToLower(key), val); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "%s set to %s", strings.ToLower(key), val)
	case "SAVE":
		if err := dbg.prefs.dsk.Save(); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "preferences saved")
	case "LOAD":
		if err := dbg.prefs.dsk.Load(); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "preferences loaded")
	default:
		return curated.Errorf(UnknownOption, arg)
	}

	return nil
}

func (dbg *Debugger) cmdQuit(_ *tokens) error {
	dbg.state = govern.Ending
	return nil
}
