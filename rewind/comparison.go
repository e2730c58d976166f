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

// ComparisonState is returned by GetComparisonState().
type ComparisonState struct {
	State  *Entry
	Locked bool
}

// GetComparisonState gets a reference to the current comparison point.
func (r *Rewind) GetComparisonState() ComparisonState {
	return ComparisonState{
		State:  r.comparison,
		Locked: r.comparisonLocked,
	}
}

// UpdateComparison points comparison to the current entry.
func (r *Rewind) UpdateComparison() {
	if r.comparisonLocked {
		return
	}
	r.comparison = r.entries[r.curr]
}

// LockComparison stops the comparison point from being updated.
func (r *Rewind) LockComparison(locked bool) {
	r.comparisonLocked = locked
}
