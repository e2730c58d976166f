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

package script

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gophernes/curated"
)

// Sentinal errors.
const (
	ScribeActive     = "script: scribe: already active"
	ScribeFileExists = "script: scribe: file already exists: %s"
	ScribeError      = "script: scribe: %v"
)

// commentLine prefixes lines in the script that are not input.
const commentLine = "#"

// Scribe can be used again after an EndSession(). The zero value is ready
// to use.
type Scribe struct {
	file       io.WriteCloser
	scriptfile string

	// the depth of script playback during the writing of a new script.
	// input from a script that is being played back is not recorded
	playbackDepth int
}

// IsActive returns true if a script is currently being captured.
func (scr *Scribe) IsActive() bool {
	return scr.file != nil
}

// StartSession a new script. The file must not already exist.
func (scr *Scribe) StartSession(scriptfile string) error {
	if scr.IsActive() {
		return curated.Errorf(ScribeActive)
	}

	f, err := os.OpenFile(scriptfile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return curated.Errorf(ScribeFileExists, scriptfile)
		}
		return curated.Errorf(ScribeError, err)
	}

	scr.file = f
	scr.scriptfile = scriptfile
	return nil
}

// StartWriter is like StartSession but uses an existing io.WriteCloser.
func (scr *Scribe) StartWriter(w io.WriteCloser) error {
	if scr.IsActive() {
		return curated.Errorf(ScribeActive)
	}
	scr.file = w
	scr.scriptfile = ""
	return nil
}

// EndSession the current scribe session.
func (scr *Scribe) EndSession() error {
	if !scr.IsActive() {
		return nil
	}

	defer func() {
		scr.file = nil
		scr.scriptfile = ""
		scr.playbackDepth = 0
	}()

	if err := scr.file.Close(); err != nil {
		return curated.Errorf(ScribeError, err)
	}

	return nil
}

// StartPlayback indicates that a replayed script has begun.
func (scr *Scribe) StartPlayback() {
	scr.playbackDepth++
}

// EndPlayback indicates that a replayed script has finished.
func (scr *Scribe) EndPlayback() {
	if scr.playbackDepth > 0 {
		scr.playbackDepth--
	}
}

// WriteInput writes user-input to the open script file.
func (scr *Scribe) WriteInput(command string) error {
	if !scr.IsActive() || scr.playbackDepth > 0 || command == "" {
		return nil
	}
	return scr.write(fmt.Sprintf("%s\n", command))
}

// WriteOutput writes debugger output to the open script file. Each line of
// output is written as a comment.
func (scr *Scribe) WriteOutput(output string) error {
	if !scr.IsActive() || scr.playbackDepth > 0 || output == "" {
		return nil
	}

	var s strings.Builder
	for _, l := range strings.Split(output, "\n") {
		s.WriteString(commentLine)
		s.WriteString(" ")
		s.WriteString(l)
		s.WriteString("\n")
	}

	return scr.write(s.String())
}

func (scr *Scribe) write(s string) error {
	if _, err := io.WriteString(scr.file, s); err != nil {
		return curated.Errorf(ScribeError, err)
	}
	return nil
}
