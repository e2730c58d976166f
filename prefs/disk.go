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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jetsetilly/gophernes/curated"
)

// DiskError is the pattern for errors returned by the Disk type.
const DiskError = "prefs: %v"

// separates the key from the value in the prefs file
const keySep = " :: "

// Disk associates preference values with keys in a file.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) *Disk {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
}

// Add a preference value to the disk under the key.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.ContainsAny(key, " :;") {
		return curated.Errorf(DiskError, fmt.Sprintf("invalid key: %q", key))
	}
	dsk.entries[key] = p
	return nil
}

// Keys returns the keys of the added preferences in sorted order.
func (dsk *Disk) Keys() []string {
	return slices.Sorted(maps.Keys(dsk.entries))
}

// Set the preference with the key.
func (dsk *Disk) Set(key string, v Value) error {
	p, ok := dsk.entries[key]
	if !ok {
		return curated.Errorf(DiskError, fmt.Sprintf("unknown preference: %s", key))
	}
	if err := p.Set(v); err != nil {
		return curated.Errorf(DiskError, err)
	}
	return nil
}

func (dsk *Disk) String() string {
	var s strings.Builder
	for _, k := range dsk.Keys() {
		fmt.Fprintf(&s, "%s%s%s\n", k, keySep, dsk.entries[k])
	}
	return s.String()
}

// read every key/value pair in the file. a missing file is not an error
func (dsk *Disk) read() (map[string]string, error) {
	entries := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entries, nil
		}
		return nil, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), keySep)
		if ok {
			entries[k] = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(DiskError, err)
	}

	return entries, nil
}

// Load the values of the added preferences from the file. Values on the
// command line stack are applied after the file has been read.
func (dsk *Disk) Load() error {
	entries, err := dsk.read()
	if err != nil {
		return err
	}

	for _, k := range dsk.Keys() {
		v, ok := GetCommandLinePref(k)
		if !ok {
			v, ok = entries[k]
		}
		if ok {
			if err := dsk.Set(k, v); err != nil {
				return err
			}
		}
	}

	return nil
}

// Save the values of the added preferences to the file. Entries in the file
// for keys that have not been added are kept.
func (dsk *Disk) Save() error {
	entries, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		entries[k] = p.String()
	}

	if err := os.MkdirAll(filepath.Dir(dsk.path), 0o700); err != nil {
		return curated.Errorf(DiskError, err)
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	w := bufio.NewWriter(f)
	for _, k := range slices.Sorted(maps.Keys(entries)) {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, entries[k])
	}

	err = w.Flush()
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}
