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

package easyterm

// list of ASCII codes for non-alphanumeric characters
const (
	KeyInterrupt      = 3 // end-of-text character
	KeyEndOfFile      = 4
	KeyBackspace      = 8
	KeyLineFeed       = 10
	KeyCarriageReturn = 13
	KeyEsc            = 27
	KeyDelete         = 127
)

// list of ASCII code for characters that can follow KeyEsc
const (
	EscCursor = '['
)

// list of ASCII code for characters that can follow EscCursor
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
)

// ClearLine returns the cursor to the start of the line and erases it.
const ClearLine = "\r\033[2K"
