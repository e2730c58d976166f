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

package sdlplay

import (
	"github.com/jetsetilly/gophernes/hardware/peripherals/controllers"
	"github.com/veandco/go-sdl2/sdl"
)

type binding struct {
	port   int
	button controllers.Button
}

// joypad 0 is on the cursor keys. joypad 1 is on the left side of the
// keyboard
var keyBindings = map[sdl.Keycode]binding{
	sdl.K_x:      {0, controllers.ButtonA},
	sdl.K_z:      {0, controllers.ButtonB},
	sdl.K_RSHIFT: {0, controllers.ButtonSelect},
	sdl.K_RETURN: {0, controllers.ButtonStart},
	sdl.K_UP:     {0, controllers.ButtonUp},
	sdl.K_DOWN:   {0, controllers.ButtonDown},
	sdl.K_LEFT:   {0, controllers.ButtonLeft},
	sdl.K_RIGHT:  {0, controllers.ButtonRight},

	sdl.K_g: {1, controllers.ButtonA},
	sdl.K_f: {1, controllers.ButtonB},
	sdl.K_t: {1, controllers.ButtonSelect},
	sdl.K_y: {1, controllers.ButtonStart},
	sdl.K_w: {1, controllers.ButtonUp},
	sdl.K_s: {1, controllers.ButtonDown},
	sdl.K_a: {1, controllers.ButtonLeft},
	sdl.K_d: {1, controllers.ButtonRight},
}

func bindKey(key sdl.Keycode) (binding, bool) {
	b, ok := keyBindings[key]
	return b, ok
}
