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
	"os"
	"path/filepath"
)

// the base path for all resources. getBasePath() should be used instead of
// this value directly
const baseResourcePath = ".gophernes"

// ResourcePath returns the resource path prepended with the base resource
// path. Empty elements are ignored.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, getBasePath())
	p = append(p, resource...)
	return filepath.Join(p...)
}

// use the local base path if it exists, otherwise the user's config directory
func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(cnf, baseResourcePath[1:])
}

// ResourceExists returns the path of the resource if it exists.
func ResourceExists(resource ...string) (string, bool) {
	pth := ResourcePath(resource...)
	if _, err := os.Stat(pth); err != nil {
		return "", false
	}
	return pth, true
}
