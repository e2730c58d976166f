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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/modalflag"
	"github.com/jetsetilly/gophernes/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestFlagsAndArgs(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "-frames", "10", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	frames := md.AddInt("frames", 0, "number of frames")

	test.ExpectEquality(t, *testFlag, false)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *testFlag, true)
	test.ExpectEquality(t, *frames, 10)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "1")
	test.ExpectEquality(t, md.GetArg(1), "2")
	test.ExpectEquality(t, md.GetArg(2), "")

	var set []string
	md.Visit(func(name string) {
		set = append(set, name)
	})
	test.ExpectEquality(t, len(set), 2)
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-nosuchflag"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestNoHelpAvailable(t *testing.T) {
	w := newWriter(t)
	md := modalflag.Modes{Output: w}
	md.NewArgs([]string{"-help"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w.String(), "No help available\n")
}

func TestHelpFlags(t *testing.T) {
	w := newWriter(t)
	md := modalflag.Modes{Output: w}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", false, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, w.String(), "Usage:\n  -test\n    \ttest flag\n")
}

func TestHelpModes(t *testing.T) {
	w := newWriter(t)
	md := modalflag.Modes{Output: w}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, w.String(), "Usage:\n  available sub-modes: A, B, C\n    default: A\n")
}

func TestHelpAdditional(t *testing.T) {
	w := newWriter(t)
	md := modalflag.Modes{Output: w}
	md.NewArgs([]string{"-help"})
	md.AdditionalHelp("more information")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, w.String(), "Usage:\n\nmore information\n")
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-verbose", "debug", "-initscript", "foo", "rom.nes"})
	verbose := md.AddBool("verbose", false, "")
	md.AddSubModes("run", "debug")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *verbose, true)
	test.ExpectEquality(t, md.Mode(), "DEBUG")

	md.NewMode()
	script := md.AddString("initscript", "", "")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *script, "foo")
	test.ExpectEquality(t, md.GetArg(0), "rom.nes")
	test.ExpectEquality(t, md.Path(), "DEBUG")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"rom.nes"})
	md.AddSubModes("run", "debug")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	md.AddSubModes("fast", "slow")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Path(), "RUN/FAST")
	test.ExpectEquality(t, md.GetArg(0), "rom.nes")
}

func newWriter(t *testing.T) *test.RingWriter {
	t.Helper()
	w, err := test.NewRingWriter(1024)
	test.DemandSuccess(t, err)
	return w
}
