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

package paths

import (
	"fmt"
	"strings"
	"time"
)

// UniqueFilename creates a filename that should not collide with any
// existing file. The existence of the file is not checked.
//
// The format of the returned string is:
//
//	prepend_cartname_YYYYMMDD_HHMMSS
//
// If there is no cartridge name the format is:
//
//	prepend_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, cartName string) string {
	return uniqueFilename(prepend, cartName, time.Now())
}

func uniqueFilename(prepend string, cartName string, n time.Time) string {
	timestamp := n.Format("20060102_150405")
	c := strings.TrimSpace(cartName)
	if len(c) > 0 {
		return fmt.Sprintf("%s_%s_%s", prepend, c, timestamp)
	}
	return fmt.Sprintf("%s_%s", prepend, timestamp)
}
