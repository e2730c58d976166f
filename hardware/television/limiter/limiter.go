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

// Package limiter paces the emulation so that frames are produced at the
// rate of the console specification.
package limiter

import (
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gophernes/hardware/television"
)

// Limiter implements the television.FrameTrigger interface. NewFrame() will
// block until it is time for the next frame.
type Limiter struct {
	// whether to wait for fps limited each frame
	Active atomic.Bool

	// the requested number of frames per second
	requested atomic.Value // float32

	// pulse that performs the limiting. the duration of the ticker will be set
	// when SetLimit() is called with a new fps value
	pulse *time.Ticker

	// waiting on a ticker every frame is too fine grained for some kernels so
	// the pulse covers several frames
	pulseCt      int
	pulseCtLimit int

	// pulse that performs the FPS measurement
	measuringPulse *time.Ticker

	// the measured FPS is the number of frames divided by the amount of
	// elapsed time since the previous measurement
	measureTime time.Time
	measureCt   int

	// the measured number of frames per second
	Measured atomic.Value // float32

	// nudge the limiter so that it doesn't wait for the specified number of frames
	Nudge atomic.Int32
}

// NewLimiter is preferred method of initialising a new instance of the Limiter
// type.
func NewLimiter(fps float32) *Limiter {
	lmtr := &Limiter{}
	lmtr.Active.Store(true)
	lmtr.Measured.Store(float32(0.0))
	lmtr.requested.Store(float32(0.0))

	lmtr.pulse = time.NewTicker(time.Millisecond * 16)
	lmtr.measuringPulse = time.NewTicker(time.Millisecond * 1000)
	lmtr.SetLimit(fps)

	return lmtr
}

// SetLimit sets the number of frames per second. A value of zero or less is
// ignored.
func (lmtr *Limiter) SetLimit(fps float32) {
	if fps <= 0.0 {
		return
	}
	lmtr.requested.Store(fps)

	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(fps/20)
	lmtr.pulse.Reset(time.Duration(1000000000 / fps * float32(lmtr.pulseCtLimit)))

	// restart actual FPS rate measurement values
	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// Requested returns the frame rate requested by the most recent call to
// SetLimit().
func (lmtr *Limiter) Requested() float32 {
	return lmtr.requested.Load().(float32)
}

// NewFrame implements the television.FrameTrigger interface.
func (lmtr *Limiter) NewFrame(_ *television.Frame) error {
	lmtr.CheckFrame()
	lmtr.MeasureActual()
	return nil
}

// CheckFrame should be called every frame.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++

	nudge := lmtr.Nudge.Load()
	if nudge > 0 {
		lmtr.Nudge.Store(nudge - 1)
		return
	}

	if lmtr.Active.Load() {
		lmtr.pulseCt++
		if lmtr.pulseCt >= lmtr.pulseCtLimit {
			lmtr.pulseCt = 0
			<-lmtr.pulse.C
		}
	}
}

// MeasureActual measures frame rate on every tick of the measuringPulse
// ticker.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		m := float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds())
		lmtr.Measured.Store(m)

		// reset time and count ready for next measurement
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop the limiter's tickers. The limiter should not be used after Stop()
// has been called.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
