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

package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used when referring to the application.
const ApplicationName = "GopherNES"

// set by the linker for release builds
var number string

var version string
var revision string

// Version returns the version string, the revision string and whether this
// is a numbered release.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a single line describing the version.
func String() string {
	v, r, _ := Version()
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	info, _ := debug.ReadBuildInfo()
	version, revision = fromBuildInfo(number, info)
}

func fromBuildInfo(number string, info *debug.BuildInfo) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info != nil {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = s.Value
			case "vcs.modified":
				vcsModified = s.Value == "true"
			}
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}
