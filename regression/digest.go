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

package regression

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/database"
	"github.com/jetsetilly/gophernes/digest"
	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/input"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
)

const digestEntryType = "digest"

// regression runs are not the main emulation and do not log
const regressionEmulation = environment.Label("regression")

const (
	digestFieldCartName int = iota
	digestFieldCartHash
	digestFieldSpec
	digestFieldNumFrames
	digestFieldPlayback
	digestFieldVideo
	digestFieldAudio
	digestFieldNotes
	numDigestFields
)

// DigestRegression runs a cartridge for a number of frames and compares the
// video and audio digests with the digests recorded when the entry was
// added.
type DigestRegression struct {
	CartLoad  cartridgeloader.Loader
	Spec      string
	NumFrames int

	// an input recording file. empty string means no input
	Playback string

	Notes string

	video string
	audio string
}

// NewDigestRegression is the preferred method of initialisation for the
// DigestRegression type.
func NewDigestRegression(cartload cartridgeloader.Loader, spec string, numFrames int) *DigestRegression {
	return &DigestRegression{
		CartLoad:  cartload,
		Spec:      strings.ToUpper(spec),
		NumFrames: numFrames,
	}
}

func deserialiseDigestEntry(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != numDigestFields {
		return nil, fmt.Errorf("digest entry: wrong number of fields: %d", len(fields))
	}

	reg := &DigestRegression{
		Spec:     fields[digestFieldSpec],
		Playback: fields[digestFieldPlayback],
		Notes:    fields[digestFieldNotes],
		video:    fields[digestFieldVideo],
		audio:    fields[digestFieldAudio],
	}

	reg.CartLoad = cartridgeloader.NewLoader(fields[digestFieldCartName], "AUTO")
	reg.CartLoad.Hash = fields[digestFieldCartHash]

	var err error
	reg.NumFrames, err = strconv.Atoi(fields[digestFieldNumFrames])
	if err != nil {
		return nil, fmt.Errorf("digest entry: invalid number of frames: %s", fields[digestFieldNumFrames])
	}

	return reg, nil
}

// EntryType implements the database.Entry interface.
func (reg *DigestRegression) EntryType() string {
	return digestEntryType
}

// Serialise implements the database.Entry interface.
func (reg *DigestRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		reg.CartLoad.Filename,
		reg.CartLoad.Hash,
		reg.Spec,
		strconv.Itoa(reg.NumFrames),
		reg.Playback,
		reg.video,
		reg.audio,
		reg.Notes,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (reg *DigestRegression) CleanUp() error {
	return nil
}

func (reg *DigestRegression) String() string {
	var s strings.Builder
	fmt.Fprintf(&s, "[%s] %s frames=%d", reg.Spec, reg.CartLoad.ShortName(), reg.NumFrames)
	if reg.Playback != "" {
		s.WriteString(" [playback]")
	}
	if reg.Notes != "" {
		fmt.Fprintf(&s, " [%s]", reg.Notes)
	}
	return s.String()
}

func (reg *DigestRegression) regress(newRegression bool, output io.Writer, message string) (bool, string, error) {
	fmt.Fprint(output, message)

	cart := cartridge.NewCartridge()
	if err := cart.Attach(reg.CartLoad); err != nil {
		return false, "", err
	}

	opts := hardware.NewOptions()
	opts.Spec = reg.Spec
	opts.Label = regressionEmulation
	nes, err := hardware.NewNES(cart, opts)
	if err != nil {
		return false, "", err
	}

	if reg.Playback != "" {
		f, err := os.Open(reg.Playback)
		if err != nil {
			return false, "", err
		}
		rec, err := input.ReadRecording(f)
		f.Close()
		if err != nil {
			return false, "", err
		}
		if err := nes.Input.AttachPlayback(rec); err != nil {
			return false, "", err
		}
	}

	vid := digest.NewVideo()
	nes.PPU.AddFrameTrigger(vid)
	aud := digest.NewAudio()
	nes.Mem.AttachAudio(aud)

	if err := nes.RunForFrameCount(reg.NumFrames, nil); err != nil {
		return false, "", err
	}

	if newRegression {
		reg.CartLoad.Hash = cart.Hash
		reg.video = vid.Hash()
		reg.audio = aud.Hash()
		return true, "", nil
	}

	if v := vid.Hash(); v != reg.video {
		return false, fmt.Sprintf("video digest mismatch: %s != %s", v, reg.video), nil
	}
	if a := aud.Hash(); a != reg.audio {
		return false, fmt.Sprintf("audio digest mismatch: %s != %s", a, reg.audio), nil
	}

	return true, "", nil
}
