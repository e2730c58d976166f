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

package clocks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophernes/curated"
)

// UnsupportedRatio is the pattern for errors returned by Ratio.Validate().
const UnsupportedRatio = "clocks: unsupported ratio: %v"

// the largest ratio that makes sense for the hardware. anything larger than
// this is certainly a configuration error
const maxDots = 64

// Ratio is the number of PPU dots that occur in a given number of CPU cycles.
type Ratio struct {
	Dots   int
	Cycles int
}

// List of ratios for the supported console types.
var (
	RatioNTSC  = Ratio{Dots: 3, Cycles: 1}
	RatioPAL   = Ratio{Dots: 16, Cycles: 5}
	RatioDendy = Ratio{Dots: 3, Cycles: 1}
)

func (r Ratio) String() string {
	return fmt.Sprintf("%d/%d", r.Dots, r.Cycles)
}

// Validate returns an error if the ratio cannot be used to drive the
// hardware. There must be at least one dot for every CPU cycle.
func (r Ratio) Validate() error {
	if r.Cycles <= 0 || r.Dots <= 0 {
		return curated.Errorf(UnsupportedRatio, r)
	}
	if r.Dots < r.Cycles {
		return curated.Errorf(UnsupportedRatio, r)
	}
	if r.Dots > r.Cycles*maxDots {
		return curated.Errorf(UnsupportedRatio, r)
	}
	return nil
}

// DotsPerCycle returns the average number of dots per CPU cycle.
func (r Ratio) DotsPerCycle() float64 {
	return float64(r.Dots) / float64(r.Cycles)
}

// ParseRatio converts a string of the form "dots/cycles" into a Ratio. The
// ratio is validated before being returned.
func ParseRatio(s string) (Ratio, error) {
	d, c, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return Ratio{}, curated.Errorf(UnsupportedRatio, s)
	}

	var r Ratio
	var err error

	r.Dots, err = strconv.Atoi(d)
	if err != nil {
		return Ratio{}, curated.Errorf(UnsupportedRatio, s)
	}
	r.Cycles, err = strconv.Atoi(c)
	if err != nil {
		return Ratio{}, curated.Errorf(UnsupportedRatio, s)
	}

	return r, r.Validate()
}
