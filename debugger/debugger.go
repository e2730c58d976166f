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
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/debugger/govern"
	"github.com/jetsetilly/gophernes/debugger/script"
	"github.com/jetsetilly/gophernes/debugger/terminal"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/input"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/rewind"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	nes    *hardware.NES
	rewind *rewind.Rewind
	term   terminal.Terminal

	state govern.State

	breakpoints breakpoints

	// in-memory snapshot taken with the SNAPSHOT command
	snapshot *hardware.State

	// script recording
	scribe script.Scribe

	// input recording and playback. only one can be active at once
	recording *input.Recording
	recordTo  string
	playback  *input.Recording

	// the reason the most recent run halted
	haltReason string

	prefs *preferences

	// interrupt signals from the operating system. a signal will stop a
	// running emulation
	intChan chan os.Signal
}

// NewDebugger creates and initialises everything required for a new debugging
// session. Use the Start() method to actually begin the session.
func NewDebugger(nes *hardware.NES, term terminal.Terminal) (*Debugger, error) {
	dbg := &Debugger{
		nes:     nes,
		term:    term,
		state:   govern.Initialising,
		intChan: make(chan os.Signal, 1),
	}

	var err error
	dbg.rewind, err = rewind.NewRewind(nes, rewind.NewPreferences())
	if err != nil {
		return nil, fmt.Errorf("debugger: %w", err)
	}

	dbg.prefs, err = newPreferences(dbg.rewind, defaultPrefsPath())
	if err != nil {
		return nil, fmt.Errorf("debugger: %w", err)
	}

	return dbg, nil
}

// State returns the current state of the debugger.
func (dbg *Debugger) State() govern.State {
	return dbg.state
}

// Start the main debugger sequence. The initScript is a script of debugger
// commands that will be run before user input is accepted. An empty string
// means there is no script. A script that cannot be opened is reported but
// is not fatal.
func (dbg *Debugger) Start(initScript string) error {
	err := dbg.term.Initialise()
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer dbg.term.CleanUp()

	signal.Notify(dbg.intChan, os.Interrupt)
	defer signal.Stop(dbg.intChan)

	dbg.state = govern.Paused

	if initScript != "" {
		if err := dbg.runScript(initScript); err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	err = dbg.inputLoop(dbg.term)

	dbg.state = govern.Ending
	dbg.rewind.Remove()

	if err := dbg.endInputRecording(); err != nil {
		logger.Log(dbg.nes, "debugger", err)
	}
	if err := dbg.scribe.EndSession(); err != nil {
		logger.Log(dbg.nes, "debugger", err)
	}

	return err
}

func (dbg *Debugger) runScript(filename string) error {
	scr, err := script.RescribeScript(filename)
	if err != nil {
		return err
	}

	dbg.scribe.StartPlayback()
	defer dbg.scribe.EndPlayback()

	return dbg.inputLoop(scr)
}

// inputLoop reads and executes commands until the input is exhausted or the
// debugger is ending.
func (dbg *Debugger) inputLoop(inp terminal.Input) error {
	for dbg.state != govern.Ending {
		s, err := inp.TermRead(dbg.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if curated.Is(err, terminal.UserInterrupt) {
				continue
			}
			if curated.Is(err, terminal.UserAbort) {
				dbg.state = govern.Ending
				return nil
			}
			return fmt.Errorf("debugger: %w", err)
		}

		if !inp.IsInteractive() {
			dbg.printLine(terminal.StyleEcho, "%s", s)
		}

		dbg.parseInput(s)
	}

	return nil
}

func (dbg *Debugger) prompt() terminal.Prompt {
	p := terminal.Prompt{
		Type:    terminal.PromptTypeCPUStep,
		Content: fmt.Sprintf("$%04x", dbg.nes.CPU.PC.Address()),
	}
	if dbg.nes.CPU.Killed {
		p.Content = fmt.Sprintf("%s killed", p.Content)
	}
	if dbg.state == govern.Running {
		p.Type = terminal.PromptTypeRunning
	}
	return p
}

// parseInput executes every command in the input string. errors are printed
// to the terminal and stop any remaining commands in the input string from
// being executed.
func (dbg *Debugger) parseInput(input string) {
	for _, tk := range tokeniseInput(input) {
		if err := dbg.processTokens(tk); err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
			return
		}
		if dbg.state == govern.Ending {
			return
		}
	}
}

// halted is called whenever the emulation stops after being run.
func (dbg *Debugger) halted() {
	dbg.state = govern.Paused
	dbg.rewind.ExecutionState()
	dbg.rewind.UpdateComparison()
}

// run the emulation until the stop function returns true, a breakpoint is
// met, the CPU is killed or the user interrupts. the stop function can be
// nil. returns true if the emulation was halted for any reason other than
// the stop function.
func (dbg *Debugger) run(stop func() bool) (bool, error) {
	dbg.state = govern.Running
	dbg.haltReason = ""
	defer dbg.halted()

	// discard any interrupt that arrived before the run started
	select {
	case <-dbg.intChan:
	default:
	}

	var performanceFilter int

	err := dbg.nes.Run(func() (govern.State, error) {
		dbg.rewind.Check()

		if dbg.nes.CPU.Killed {
			dbg.haltReason = "cpu killed"
			return govern.Paused, nil
		}

		if pc := dbg.nes.CPU.PC.Address(); dbg.breakpoints.check(pc) {
			dbg.haltReason = fmt.Sprintf("breakpoint: $%04x", pc)
			return govern.Paused, nil
		}

		if stop != nil && stop() {
			return govern.Paused, nil
		}

		performanceFilter++
		if performanceFilter >= hardware.PerformanceBrake {
			performanceFilter = 0
			select {
			case <-dbg.intChan:
				dbg.haltReason = terminal.UserInterrupt
				return govern.Paused, nil
			default:
			}
		}

		return govern.Running, nil
	})
	if err != nil {
		return true, err
	}

	if dbg.haltReason != "" {
		dbg.printLine(terminal.StyleFeedback, "%s", dbg.haltReason)
		return true, nil
	}

	return false, nil
}
