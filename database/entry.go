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

package database

// Deserialiser creates a new entry from the serialised fields.
type Deserialiser func(fields SerialisedEntry) (Entry, error)

// SerialisedEntry is the Entry data represented as a list of strings.
type SerialisedEntry []string

// Entry represents the generic entry in the database.
type Entry interface {
	// the string that identifies the entry type in the database
	EntryType() string

	// human readable description of the entry
	String() string

	// the entry data as a list of strings. the number of fields must be
	// constant for an entry type
	Serialise() (SerialisedEntry, error)

	// called when the entry is deleted from the database
	CleanUp() error
}
