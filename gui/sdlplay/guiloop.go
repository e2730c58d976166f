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
	"path/filepath"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/input"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/paths"
	"github.com/jetsetilly/gophernes/screenshot"
	"github.com/veandco/go-sdl2/sdl"
)

// Run the emulation until the window is closed. Must be called from the main
// thread.
func (scr *SdlPlay) Run() error {
	for !scr.quit {
		scr.service()

		if scr.paused {
			sdl.Delay(16)
			continue
		}

		// the limiter is a frame trigger so this will not return any sooner
		// than the frame rate allows
		if err := scr.nes.RunForFrameCount(1, nil); err != nil {
			return err
		}

		if err := scr.present(); err != nil {
			return err
		}
	}

	return nil
}

// service all pending SDL events.
func (scr *SdlPlay) service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.quit = true

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			scr.keyboard(ev.Keysym.Sym, ev.Type == sdl.KEYDOWN)
		}
	}
}

func (scr *SdlPlay) keyboard(key sdl.Keycode, down bool) {
	if b, ok := bindKey(key); ok {
		err := scr.nes.Input.PushEvent(input.Event{
			Port:    b.port,
			Button:  b.button,
			Pressed: down,
		})
		if err != nil {
			logger.Log(scr.nes, "sdlplay", err)
		}
		return
	}

	if !down {
		return
	}

	switch key {
	case sdl.K_ESCAPE:
		scr.quit = true
	case sdl.K_p:
		scr.paused = !scr.paused
		if scr.paused {
			scr.window.SetTitle("GopherNES (paused)")
		} else {
			scr.window.SetTitle("GopherNES")
		}
	case sdl.K_F1:
		scr.nes.Reset()
	case sdl.K_F12:
		if err := scr.screenshot(); err != nil {
			logger.Log(scr.nes, "sdlplay", err)
		}
	}
}

func (scr *SdlPlay) screenshot() error {
	if scr.frame == nil {
		return curated.Errorf(screenshot.NoFrame)
	}

	fn := filepath.Join(scr.screenshotDir, paths.UniqueFilename("screenshot", scr.nes.Mem.Cart.Name)+".png")
	if err := screenshot.Save(fn, scr.frame, scr.nes.Spec, 2); err != nil {
		return err
	}

	logger.Logf(scr.nes, "sdlplay", "screenshot saved: %s", fn)
	return nil
}
