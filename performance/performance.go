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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/debugger/govern"
	"github.com/jetsetilly/gophernes/hardware"
)

// CheckError is the pattern for errors returned by Check().
const CheckError = "performance: %v"

// sentinal error returned by the continue check when the time is up
var timedOut = errors.New("performance timed out")

// the emulation is run for this long before measurement begins so that the
// frame rate can settle
var leadTime = 2 * time.Second

// Check runs the emulation for the specified duration and writes the
// measured frame rate to output. The emulation is run through the profilers
// requested by the profile argument.
func Check(output io.Writer, nes *hardware.NES, profile Profile, duration time.Duration) error {
	if duration <= 0 {
		return curated.Errorf(CheckError, fmt.Sprintf("invalid duration: %v", duration))
	}

	var startFrame uint64
	var startTime time.Time
	var measuring bool

	// the deadline begins as the end of the lead time
	deadline := time.Now().Add(leadTime)

	brake := 0
	runner := func() error {
		return nes.Run(func() (govern.State, error) {
			brake++
			if brake < hardware.PerformanceBrake {
				return govern.Running, nil
			}
			brake = 0

			if time.Now().Before(deadline) {
				return govern.Running, nil
			}

			if !measuring {
				measuring = true
				startFrame = nes.PPU.FrameNum
				startTime = time.Now()
				deadline = startTime.Add(duration)
				return govern.Running, nil
			}

			return govern.Ending, timedOut
		})
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf(CheckError, err)
	}

	numFrames := nes.PPU.FrameNum - startFrame
	elapsed := time.Since(startTime).Seconds()
	fps, accuracy := CalcFPS(nes.Spec, numFrames, elapsed)
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, elapsed, accuracy)

	return nil
}
