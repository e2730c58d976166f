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
	"github.com/jetsetilly/gophernes/paths"
	"github.com/jetsetilly/gophernes/prefs"
	"github.com/jetsetilly/gophernes/rewind"
)

// the name of the preferences file in the resource directory
const prefsFile = "preferences"

// preferences of the debugger that are saved to disk
type preferences struct {
	dsk *prefs.Disk

	rewindMaxEntries *prefs.Int
	rewindFreq       *prefs.Int
}

func newPreferences(rw *rewind.Rewind, path string) (*preferences, error) {
	def := rw.Preferences()

	p := &preferences{
		dsk:              prefs.NewDisk(path),
		rewindMaxEntries: prefs.NewInt(def.MaxEntries),
		rewindFreq:       prefs.NewInt(def.Freq),
	}

	// changes are applied to the rewind system before the value is stored so
	// that invalid values are refused
	p.rewindMaxEntries.SetHookPre(func(v prefs.Value) error {
		rp := rw.Preferences()
		rp.MaxEntries = v.(int)
		return rw.SetPreferences(rp)
	})
	p.rewindFreq.SetHookPre(func(v prefs.Value) error {
		rp := rw.Preferences()
		rp.Freq = v.(int)
		return rw.SetPreferences(rp)
	})

	if err := p.dsk.Add("rewind.maxentries", p.rewindMaxEntries); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("rewind.freq", p.rewindFreq); err != nil {
		return nil, err
	}

	return p, p.dsk.Load()
}

func defaultPrefsPath() string {
	return paths.ResourcePath(prefsFile)
}
