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

package execution

import (
	"github.com/jetsetilly/gophernes/curated"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition. Interrupt sequences are always
// seven cycles.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised")
	}

	if r.Interrupt != NoInterrupt {
		if r.Cycles != 7 {
			return curated.Errorf("cpu: number of cycles wrong for %s sequence (%d instead of 7)", r.Interrupt, r.Cycles)
		}
		return nil
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: execution has no instruction definition")
	}

	// is PageFault valid given content of Defn
	if !r.Defn.PageSensitive && r.PageFault {
		return curated.Errorf("cpu: unexpected page fault")
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	expected := r.Defn.Cycles
	if r.Defn.IsBranch() {
		if r.BranchSuccess {
			expected++
		}
		if r.PageFault {
			expected++
		}
	} else if r.PageFault {
		expected++
	}

	if r.Cycles != expected {
		return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode, r.Defn.Operator, r.Cycles, expected)
	}

	return nil
}
