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

package prefs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/prefs"
	"github.com/jetsetilly/gophernes/test"
)

func TestBool(t *testing.T) {
	b := prefs.NewBool(true)
	test.ExpectEquality(t, b.Get(), prefs.Value(true))
	test.ExpectSuccess(t, b.Set("FALSE"))
	test.ExpectEquality(t, b.String(), "false")
	test.ExpectSuccess(t, b.Set("True"))
	test.ExpectEquality(t, b.String(), "true")
	test.ExpectSuccess(t, b.Set(false))
	test.ExpectSuccess(t, b.Reset())
	test.ExpectEquality(t, b.String(), "true")
	test.ExpectFailure(t, b.Set(10))
}

func TestInt(t *testing.T) {
	i := prefs.NewInt(5)
	test.ExpectEquality(t, i.Get(), prefs.Value(5))
	test.ExpectSuccess(t, i.Set(" 10 "))
	test.ExpectEquality(t, i.String(), "10")
	test.ExpectFailure(t, i.Set("ten"))
	test.ExpectFailure(t, i.Set(1.5))
	test.ExpectEquality(t, i.String(), "10")
	test.ExpectSuccess(t, i.Reset())
	test.ExpectEquality(t, i.String(), "5")
}

func TestHooks(t *testing.T) {
	i := prefs.NewInt(1)

	var post int
	i.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return errors.New("too small")
		}
		return nil
	})
	i.SetHookPost(func(v prefs.Value) error {
		post = v.(int)
		return nil
	})

	test.ExpectSuccess(t, i.Set(3))
	test.ExpectEquality(t, post, 3)

	// the pre hook prevents the change
	test.ExpectFailure(t, i.Set(0))
	test.ExpectEquality(t, i.String(), "3")
	test.ExpectEquality(t, post, 3)
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("foo::bar; baz::10;bad")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)

	v, ok := prefs.GetCommandLinePref("foo")
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, v, "bar")

	// values are forgotten once used
	_, ok = prefs.GetCommandLinePref("foo")
	test.ExpectEquality(t, ok, false)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::10")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sub", "preferences")

	dsk := prefs.NewDisk(fn)
	a := prefs.NewInt(1)
	b := prefs.NewBool(false)
	test.DemandSuccess(t, dsk.Add("test.a", a))
	test.DemandSuccess(t, dsk.Add("test.b", b))
	test.ExpectFailure(t, dsk.Add("bad key", a))

	// a missing file is not an error
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, a.String(), "1")

	test.ExpectSuccess(t, dsk.Set("test.a", 7))
	test.ExpectSuccess(t, dsk.Set("test.b", true))
	test.ExpectSuccess(t, curated.Is(dsk.Set("test.c", 1), prefs.DiskError))
	test.ExpectEquality(t, dsk.String(), "test.a :: 7\ntest.b :: true\n")
	test.DemandSuccess(t, dsk.Save())

	// unknown entries in the file survive a save
	f, err := os.OpenFile(fn, os.O_APPEND|os.O_WRONLY, 0)
	test.DemandSuccess(t, err)
	_, err = f.WriteString("other.key :: hello\n")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, f.Close())

	dsk2 := prefs.NewDisk(fn)
	a2 := prefs.NewInt(1)
	b2 := prefs.NewBool(false)
	test.DemandSuccess(t, dsk2.Add("test.a", a2))
	test.DemandSuccess(t, dsk2.Add("test.b", b2))
	test.ExpectSuccess(t, dsk2.Load())
	test.ExpectEquality(t, a2.String(), "7")
	test.ExpectEquality(t, b2.String(), "true")

	test.DemandSuccess(t, dsk2.Save())
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "other.key :: hello\ntest.a :: 7\ntest.b :: true\n")

	// the command line takes priority over the file
	prefs.PushCommandLineStack("test.a::9")
	test.ExpectSuccess(t, dsk2.Load())
	test.ExpectEquality(t, a2.String(), "9")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
