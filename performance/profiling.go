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
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/jetsetilly/gophernes/curated"
)

// ProfilerError is the pattern for errors returned by RunProfiler().
const ProfilerError = "performance: profiler: %v"

// Profile specifies which profiles to create. Values can be combined.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
	ProfileTrace
	ProfileAll = ProfileCPU | ProfileMem | ProfileTrace
)

func (p Profile) String() string {
	if p == ProfileNone {
		return "NONE"
	}
	var s []string
	if p&ProfileCPU == ProfileCPU {
		s = append(s, "CPU")
	}
	if p&ProfileMem == ProfileMem {
		s = append(s, "MEM")
	}
	if p&ProfileTrace == ProfileTrace {
		s = append(s, "TRACE")
	}
	return strings.Join(s, ",")
}

// ParseProfile converts a comma separated list of profile names (CPU, MEM,
// TRACE, ALL or NONE) into a Profile value. Names are not case sensitive.
func ParseProfile(s string) (Profile, error) {
	var p Profile
	for _, n := range strings.Split(s, ",") {
		switch strings.ToUpper(strings.TrimSpace(n)) {
		case "", "NONE":
		case "CPU":
			p |= ProfileCPU
		case "MEM":
			p |= ProfileMem
		case "TRACE":
			p |= ProfileTrace
		case "ALL":
			p |= ProfileAll
		default:
			return ProfileNone, curated.Errorf(ProfilerError, "unknown profile: "+n)
		}
	}
	return p, nil
}

// RunProfiler runs the supplied function with the requested profiles
// active. Profile files are named with the prefix and the profile type.
func RunProfiler(profile Profile, prefix string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(prefix + "_cpu.profile")
		if err != nil {
			return curated.Errorf(ProfilerError, err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = curated.Errorf(ProfilerError, err)
			}
		}()
		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf(ProfilerError, err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := os.Create(prefix + "_trace.profile")
		if err != nil {
			return curated.Errorf(ProfilerError, err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = curated.Errorf(ProfilerError, err)
			}
		}()
		if err := trace.Start(f); err != nil {
			return curated.Errorf(ProfilerError, err)
		}
		defer trace.Stop()
	}

	if err := run(); err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create(prefix + "_mem.profile")
		if err != nil {
			return curated.Errorf(ProfilerError, err)
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return curated.Errorf(ProfilerError, err)
		}
	}

	return nil
}
