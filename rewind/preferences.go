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

package rewind

import (
	"github.com/jetsetilly/gophernes/curated"
)

// Preferences for the rewind system.
type Preferences struct {
	// the maximum number of entries to store before the earliest entries
	// are forgotten
	MaxEntries int

	// how often a frame snapshot is taken. the higher the number, the more
	// laggy the rewind system will feel
	Freq int
}

// NewPreferences returns the default preferences.
func NewPreferences() Preferences {
	return Preferences{
		MaxEntries: 100,
		Freq:       1,
	}
}

func (p Preferences) validate() error {
	if p.MaxEntries < 1 {
		return curated.Errorf("rewind: max entries must be at least 1 (%d)", p.MaxEntries)
	}
	if p.Freq < 1 {
		return curated.Errorf("rewind: frequency must be at least 1 (%d)", p.Freq)
	}
	return nil
}
