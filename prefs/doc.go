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

// Package prefs provides typed preference values that can be saved to and
// loaded from disk.
//
// Preference values are added to a Disk instance under a key. The Load()
// and Save() functions of the Disk transfer every added value to and from
// the file. Values in the file for keys that have not been added are
// preserved when the file is saved.
//
// Values can be overridden by the command line stack. A string of key/value
// pairs is pushed onto the stack with PushCommandLineStack(). The pairs are
// separated by semicolons and the key is separated from the value by a
// double colon:
//
//	rewind.maxentries::50; rewind.freq::2
//
// Command line values are applied by the next call to Load() and are then
// forgotten.
package prefs
