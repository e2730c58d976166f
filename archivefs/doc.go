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

// Package archivefs allows files inside zip archives to be addressed as
// though the archive were a directory. For example:
//
//	data, err := archivefs.ReadFile("roms/collection.zip/games/loop.nes")
//
// Paths that do not pass through an archive are read from the file system
// in the normal way.
package archivefs
