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
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/television/specification"
	"github.com/jetsetilly/gophernes/test"
	"github.com/jetsetilly/gophernes/test/testrom"
)

func TestParseProfile(t *testing.T) {
	p, err := ParseProfile("cpu,trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileCPU|ProfileTrace)
	test.ExpectEquality(t, p.String(), "CPU,TRACE")

	p, err = ParseProfile("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileAll)

	p, err = ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "NONE")

	_, err = ParseProfile("cpu,disk")
	test.ExpectFailure(t, err)
}

func TestCalcFPS(t *testing.T) {
	fps, accuracy := CalcFPS(specification.SpecNTSC, 120, 2.0)
	test.ExpectApproximate(t, fps, 60.0, 0.01)
	test.ExpectApproximate(t, accuracy, 100*60.0/float64(specification.SpecNTSC.FramesPerSecond), 0.01)

	fps, _ = CalcFPS(specification.SpecNTSC, 120, 0)
	test.ExpectEquality(t, fps, 0.0)
}

func TestRunProfiler(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "test")

	var ran bool
	err := RunProfiler(ProfileCPU|ProfileMem, prefix, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ran, true)

	_, err = os.Stat(prefix + "_cpu.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(prefix + "_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(prefix + "_trace.profile")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	leadTime = 0

	// INX; JMP $8000
	cart, err := testrom.New().At(0x8000, 0xe8, 0x4c, 0x00, 0x80).Cartridge()
	test.DemandSuccess(t, err)
	nes, err := hardware.NewNES(cart, hardware.NewOptions())
	test.DemandSuccess(t, err)

	var b strings.Builder
	err = Check(&b, nes, ProfileNone, 50*time.Millisecond)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(b.String(), " fps ("), true)
	test.ExpectEquality(t, nes.PPU.FrameNum > 0, true)

	err = Check(&b, nes, ProfileNone, 0)
	test.ExpectFailure(t, err)
}
