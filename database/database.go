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

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/jetsetilly/gophernes/curated"
)

// DatabaseError is the pattern for errors returned by the package.
const DatabaseError = "database: %v"

// arbitrary maximum number of entries
const maxEntries = 1000

// Activity describes what will happen during a session.
type Activity int

// List of valid Activity values.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

// Session is an open database.
type Session struct {
	path       string
	activity   Activity
	entries    map[int]Entry
	entryTypes map[string]Deserialiser
}

// StartSession opens the database at path and deserialises every entry. The
// init function should register the entry types.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		path:       path,
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]Deserialiser),
	}

	if err := init(db); err != nil {
		return nil, curated.Errorf(DatabaseError, err)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && activity == ActivityCreating {
			return db, nil
		}
		return nil, curated.Errorf(DatabaseError, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, curated.Errorf(DatabaseError, err)
		}
		if err := db.deserialise(rec); err != nil {
			return nil, err
		}
	}

	return db, nil
}

func (db *Session) deserialise(rec []string) error {
	if len(rec) < 2 {
		return curated.Errorf(DatabaseError, fmt.Sprintf("invalid entry: %v", rec))
	}

	key, err := strconv.Atoi(rec[0])
	if err != nil {
		return curated.Errorf(DatabaseError, fmt.Sprintf("invalid key: %s", rec[0]))
	}
	if _, ok := db.entries[key]; ok {
		return curated.Errorf(DatabaseError, fmt.Sprintf("duplicate key: %d", key))
	}

	des, ok := db.entryTypes[rec[1]]
	if !ok {
		return curated.Errorf(DatabaseError, fmt.Sprintf("unrecognised entry type: %s", rec[1]))
	}

	ent, err := des(rec[2:])
	if err != nil {
		return curated.Errorf(DatabaseError, err)
	}
	db.entries[key] = ent

	return nil
}

// EndSession closes the session. If commit is true and the session is not a
// reading session the entries are written to disk.
func (db *Session) EndSession(commit bool) error {
	if !commit || db.activity == ActivityReading {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(db.path), 0o700); err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	f, err := os.Create(db.path)
	if err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	w := csv.NewWriter(f)
	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]
		fields, err := ent.Serialise()
		if err != nil {
			f.Close()
			return curated.Errorf(DatabaseError, err)
		}
		rec := append([]string{fmt.Sprintf("%03d", key), ent.EntryType()}, fields...)
		if err := w.Write(rec); err != nil {
			f.Close()
			return curated.Errorf(DatabaseError, err)
		}
	}
	w.Flush()

	err = w.Error()
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	return nil
}

// RegisterEntryType tells the database what entries it may expect and how
// to deserialise them.
func (db *Session) RegisterEntryType(id string, des Deserialiser) error {
	if _, ok := db.entryTypes[id]; ok {
		return fmt.Errorf("duplicate entry type: %s", id)
	}
	db.entryTypes[id] = des
	return nil
}

// NumEntries returns the number of entries in the database.
func (db *Session) NumEntries() int {
	return len(db.entries)
}

// SortedKeyList returns a sorted list of database keys.
func (db *Session) SortedKeyList() []int {
	keys := make([]int, 0, len(db.entries))
	for k := range db.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// List the entries in key order.
func (db *Session) List(output io.Writer) {
	if db.NumEntries() == 0 {
		fmt.Fprintln(output, "database is empty")
		return
	}
	for _, key := range db.SortedKeyList() {
		fmt.Fprintf(output, "%03d %s\n", key, db.entries[key])
	}
	fmt.Fprintf(output, "Total: %d\n", db.NumEntries())
}

// Add an entry to the database. Returns the key of the new entry.
func (db *Session) Add(ent Entry) (int, error) {
	if db.activity == ActivityReading {
		return 0, curated.Errorf(DatabaseError, "cannot add entry in reading session")
	}

	for key := range maxEntries {
		if _, ok := db.entries[key]; !ok {
			db.entries[key] = ent
			return key, nil
		}
	}

	return 0, curated.Errorf(DatabaseError, fmt.Sprintf("maximum entries exceeded (max %d)", maxEntries))
}

// Get the entry with the specified key.
func (db *Session) Get(key int) (Entry, error) {
	ent, ok := db.entries[key]
	if !ok {
		return nil, curated.Errorf(DatabaseError, fmt.Sprintf("key not available: %d", key))
	}
	return ent, nil
}

// Delete the entry with the specified key.
func (db *Session) Delete(key int) error {
	if db.activity == ActivityReading {
		return curated.Errorf(DatabaseError, "cannot delete entry in reading session")
	}

	ent, err := db.Get(key)
	if err != nil {
		return err
	}

	if err := ent.CleanUp(); err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	delete(db.entries, key)
	return nil
}
