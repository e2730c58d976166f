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

// Package modalflag wraps the flag package so that a command line can be
// split into modes, each with its own set of flags.
//
// Arguments are supplied once with NewArgs(). Flags for the current mode are
// added with the AddBool() family of functions and then Parse() is called.
// If sub-modes were listed with AddSubModes() the first non-flag argument is
// compared against them (case insensitively) and the matching mode, or the
// first listed mode if nothing matches, is appended to the mode path:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "DEBUG":
//		md.NewMode()
//		script := md.AddString("initscript", "", "script to run on startup")
//		...
//	}
//
// The -help flag is handled by Parse(), which prints the flags of the
// current mode and any sub-modes to the Output writer.
package modalflag
