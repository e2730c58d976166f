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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gophernes/hardware/television/limiter"
	"github.com/jetsetilly/gophernes/test"
)

func TestLimiter(t *testing.T) {
	lmtr := limiter.NewLimiter(100)
	defer lmtr.Stop()
	test.ExpectEquality(t, lmtr.Requested(), float32(100))

	// the pulse covers six frames at 100fps, each pulse is 60ms long
	start := time.Now()
	for range 18 {
		test.ExpectSuccess(t, lmtr.NewFrame(nil))
	}
	test.ExpectSuccess(t, time.Since(start) >= 150*time.Millisecond)

	// an inactive limiter does not wait
	lmtr.Active.Store(false)
	start = time.Now()
	for range 1000 {
		test.ExpectSuccess(t, lmtr.NewFrame(nil))
	}
	test.ExpectSuccess(t, time.Since(start) < 100*time.Millisecond)
}

func TestNudge(t *testing.T) {
	lmtr := limiter.NewLimiter(1)
	defer lmtr.Stop()

	lmtr.Nudge.Store(10)
	start := time.Now()
	for range 10 {
		lmtr.CheckFrame()
	}
	test.ExpectSuccess(t, time.Since(start) < 100*time.Millisecond)
	test.ExpectEquality(t, lmtr.Nudge.Load(), int32(0))

	lmtr.SetLimit(0)
	test.ExpectEquality(t, lmtr.Requested(), float32(1))
}
