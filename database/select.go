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
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
)

// SelectAll calls onSelect for every entry in key order. Selection stops on
// the first error, which is returned along with the key of the entry.
func (db *Session) SelectAll(onSelect func(key int, ent Entry) error) (int, error) {
	return db.SelectKeys(onSelect)
}

// SelectKeys calls onSelect for the entries with the specified keys, in the
// order given. An empty list of keys selects every entry in key order.
// Selection stops on the first error, which is returned along with the key
// of the entry.
func (db *Session) SelectKeys(onSelect func(key int, ent Entry) error, keys ...int) (int, error) {
	if len(keys) == 0 {
		keys = db.SortedKeyList()
	}

	for _, key := range keys {
		ent, ok := db.entries[key]
		if !ok {
			return key, curated.Errorf(DatabaseError, fmt.Sprintf("key not available: %d", key))
		}
		if err := onSelect(key, ent); err != nil {
			return key, err
		}
	}

	return -1, nil
}
