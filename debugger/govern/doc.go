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

// Package govern defines the types that describe the current condition of
// the emulation. The Mode is the broad way in which the emulation is being
// used and the State is what the emulation is doing at the moment.
//
// Continue check functions passed to the hardware package return a State.
// Returning Ending will stop the emulation at the next opportunity.
package govern
