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

package modalflag

import (
	"errors"
	"flag"
	"io"
	"strings"
)

const modeSeparator = "/"

// Modes holds the state of command line parsing. Output should be set before
// calling Parse() otherwise help messages will be lost.
type Modes struct {
	Output io.Writer

	// a new flagset is created by NewArgs() and NewMode()
	flags *flag.FlagSet

	args    []string
	argsIdx int

	// sub-modes for the next call to Parse(). the first is the default
	subModes []string

	// modes encountered so far. never reset
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs sets the arguments to parse and begins a new mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode discards the flags and sub-modes of the previous mode. Arguments
// not yet consumed by a mode selection are carried over.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.additionalHelp = ""
}

// AdditionalHelp is printed after the list of flags when help is requested.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned by Parse().
type ParseResult int

// List of valid ParseResult values.
const (
	// parsing succeeded. the caller should check Mode() if sub-modes were
	// specified
	ParseContinue ParseResult = iota

	// help was requested and has been printed to Output
	ParseHelp

	// the error return value of Parse() is not nil
	ParseError
)

// Parse the arguments for the current mode.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			if md.Output != nil {
				hw.help(md.Output, md.Path(), md.subModes, md.additionalHelp)
			}
			return ParseHelp, nil
		}
		return ParseError, err
	}

	// flags consumed by this mode are not seen by the next mode
	md.argsIdx = len(md.args) - md.flags.NArg()

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m
				md.argsIdx++
				break // for loop
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are neither flags nor a selected
// sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.argsIdx:]
}

// GetArg returns the indexed value from RemainingArgs(). An empty string is
// returned if there is no such argument.
func (md *Modes) GetArg(i int) string {
	r := md.RemainingArgs()
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// AddSubModes adds to the list of sub-modes for the next call to Parse().
// The first sub-mode ever added is the default.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for the next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddInt64 flag for the next call to Parse().
func (md *Modes) AddInt64(name string, value int64, usage string) *int64 {
	return md.flags.Int64(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddVar adds a flag with a custom type for the next call to Parse().
func (md *Modes) AddVar(value flag.Value, name string, usage string) {
	md.flags.Var(value, name, usage)
}

// Visit calls fn with the name of every flag set by the most recent Parse().
func (md *Modes) Visit(fn func(name string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
