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
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/television"
	"github.com/jetsetilly/gophernes/hardware/television/limiter"
	"github.com/jetsetilly/gophernes/hardware/television/specification"
	"github.com/veandco/go-sdl2/sdl"
)

// SDLError is the pattern for errors returned by the SDL library.
const SDLError = "sdlplay: %v"

const pixelDepth = 4

// SdlPlay is a simple SDL implementation of the television.FrameTrigger
// interface.
type SdlPlay struct {
	nes  *hardware.NES
	lmtr *limiter.Limiter

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// the RGBA pixels of the most recent frame. copied to the texture before
	// the texture is presented
	pixels []byte

	// the most recently received frame. used for screenshots
	frame *television.Frame

	// the directory in which to save screenshots
	screenshotDir string

	quit   bool
	paused bool
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. The scale
// value is the size of each NES pixel in screen pixels.
func NewSdlPlay(nes *hardware.NES, scale int) (*SdlPlay, error) {
	if scale < 1 {
		scale = 1
	}

	scr := &SdlPlay{
		nes:    nes,
		lmtr:   limiter.NewLimiter(nes.Spec.FramesPerSecond),
		pixels: make([]byte, television.FrameWidth*television.FrameHeight*pixelDepth),
	}

	var err error

	if err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	scr.window, err = sdl.CreateWindow("GopherNES",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(television.FrameWidth*scale), int32(television.FrameHeight*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	// texture is the same size as the frame. the renderer scales it to fit
	// the window
	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING,
		television.FrameWidth, television.FrameHeight)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	nes.PPU.AddFrameTrigger(scr)
	nes.PPU.AddFrameTrigger(scr.lmtr)

	return scr, nil
}

// Destroy the window and release all SDL resources.
func (scr *SdlPlay) Destroy() {
	scr.nes.PPU.RemoveFrameTrigger(scr)
	scr.nes.PPU.RemoveFrameTrigger(scr.lmtr)
	scr.lmtr.Stop()

	if scr.texture != nil {
		scr.texture.Destroy()
	}
	if scr.renderer != nil {
		scr.renderer.Destroy()
	}
	if scr.window != nil {
		scr.window.Destroy()
	}
	sdl.Quit()
}

// SetScreenshotDir sets the directory in which screenshots are saved.
func (scr *SdlPlay) SetScreenshotDir(dir string) {
	scr.screenshotDir = dir
}

// NewFrame implements the television.FrameTrigger interface.
func (scr *SdlPlay) NewFrame(frame *television.Frame) error {
	scr.frame = frame
	convertFrame(scr.pixels, frame, scr.nes.Spec)
	return nil
}

// convertFrame writes the frame to the pixels slice as RGBA values.
func convertFrame(pixels []byte, frame *television.Frame, spec specification.Spec) {
	for i, p := range frame.Pixels {
		c := spec.GetColor(p)
		j := i * pixelDepth
		pixels[j] = c.R
		pixels[j+1] = c.G
		pixels[j+2] = c.B
		pixels[j+3] = c.A
	}
}

func (scr *SdlPlay) present() error {
	tex, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	row := television.FrameWidth * pixelDepth
	for y := range television.FrameHeight {
		copy(tex[y*pitch:y*pitch+row], scr.pixels[y*row:(y+1)*row])
	}
	scr.texture.Unlock()

	if err := scr.renderer.Clear(); err != nil {
		return curated.Errorf(SDLError, err)
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return curated.Errorf(SDLError, err)
	}
	scr.renderer.Present()

	return nil
}
