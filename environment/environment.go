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

package environment

import (
	"github.com/jetsetilly/gophernes/random"
)

// Label is used to name the environment
type Label string

// MainEmulation is the label of the main emulation
const MainEmulation = Label("")

// Environment is used to provide context for an emulation.
type Environment struct {
	Label Label

	// any randomisation required by the emulation should be retrieved
	// through this structure
	Random *random.Random

	// RandomState is true if the power on state of registers and RAM should
	// be randomised. when false the power on state is zeroed
	RandomState bool
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
func NewEnvironment(label Label, clock random.Clock, seed int64) *Environment {
	return &Environment{
		Label:  label,
		Random: random.NewRandom(clock, seed),
	}
}

// IsMainEmulation returns true if the environment is intended for the main
// emulation in the system
func (env *Environment) IsMainEmulation() bool {
	return env == nil || env.Label == MainEmulation
}

// IsEmulation checks the emulation label and returns true if it matches
func (env *Environment) IsEmulation(label Label) bool {
	if env == nil {
		return label == MainEmulation
	}
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation is allowed to log.
func (env *Environment) AllowLogging() bool {
	return env.IsMainEmulation()
}
