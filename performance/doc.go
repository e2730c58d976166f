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

// Package performance measures how quickly the emulation runs.
//
// Check() runs the emulation for a fixed duration and reports the number of
// frames generated per second. The emulation can optionally be run through
// one or more of the profilers in the Go runtime, see RunProfiler().
//
// CalcFPS() gives the frames-per-second in aggregate along with the accuracy
// compared to the television specification. It is not suitable for live
// monitoring.
package performance
