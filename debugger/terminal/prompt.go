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

package terminal

import (
	"strings"
)

// PromptType identifies the type of information in the prompt.
type PromptType int

// List of prompt types.
const (
	PromptTypeCPUStep PromptType = iota
	PromptTypeRunning
	PromptTypeConfirm
)

// Prompt specifies the prompt text and the prompt style
type Prompt struct {
	Type    PromptType
	Content string
}

// String returns the prompt with "standard" decoration. Good for terminals
// with no graphical capabilities at all.
func (p Prompt) String() string {
	if p.Type == PromptTypeConfirm {
		return p.Content
	}

	s := strings.Builder{}
	s.WriteString("[ ")
	s.WriteString(strings.TrimSpace(p.Content))
	s.WriteString(" ]")

	switch p.Type {
	case PromptTypeCPUStep:
		s.WriteString(" >> ")
	case PromptTypeRunning:
		s.WriteString(" ... ")
	}

	return s.String()
}
