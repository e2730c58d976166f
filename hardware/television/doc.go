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

// Package television defines the frame produced by the PPU and the interface
// for the components that consume frames.
//
// The PPU does not know how frames are displayed. Instead, implementations
// of FrameTrigger are added to the PPU and are called once per frame, at the
// moment the completed frame is published. Frame consumers include the SDL
// display, the frame digest and the screenshot tool.
//
// The limiter sub-package provides a FrameTrigger that paces the emulation to
// the frame rate of the console specification.
package television
