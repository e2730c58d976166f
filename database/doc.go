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

// Package database is a simple way of storing structured entries of
// arbitrary type in a flat file.
//
// Use of a database requires a session, begun with StartSession() and ended
// with EndSession():
//
//	db, err := database.StartSession(path, database.ActivityCreating, initSession)
//	if err != nil {
//		return err
//	}
//	defer db.EndSession(true)
//
// The activity says what will happen during the session. ActivityReading
// sessions never write to the file. ActivityCreating will create the file if
// it does not exist.
//
// The initialisation function registers the entry types that the database
// can contain:
//
//	func initSession(db *database.Session) error {
//		return db.RegisterEntryType("foo", deserialiseFoo)
//	}
//
// The deserialiser is given the fields of the entry (not including the key
// and ID fields that the database adds) and returns a new Entry.
package database
