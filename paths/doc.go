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

// Package paths contains functions to prepare paths to gophernes resources.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate configuration directory. For example, the following returns
// the path to the default debugger script:
//
//	d := paths.ResourcePath("debuggerInit")
//
// If a directory named ".gophernes" is present in the current directory then
// that is used as the base path. Otherwise the gophernes directory in the
// user's configuration directory, as found by os.UserConfigDir(), is used.
// For example, on a Linux system the above returns:
//
//	/home/user/.config/gophernes/debuggerInit
package paths
