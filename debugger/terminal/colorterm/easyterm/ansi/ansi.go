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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"strings"
)

var colors = map[string]int{
	"BLACK":   0,
	"RED":     1,
	"GREEN":   2,
	"YELLOW":  3,
	"BLUE":    4,
	"MAGENTA": 5,
	"CYAN":    6,
	"WHITE":   7,
	"NORMAL":  9,
}

var attributes = map[string]int{
	"BOLD":      1,
	"UNDERLINE": 4,
	"INVERSE":   7,
	"STRIKE":    8,
}

// Pens is the table of colors to be used for text.
var Pens = map[string]string{}

// DimPens is the table of pastel colors to be used for text.
var DimPens = map[string]string{}

// PenStyles is the table of styles to be used for text.
var PenStyles = map[string]string{}

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

func init() {
	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[c], _ = ColorBuild(c, "", true)
		DimPens[c], _ = ColorBuild(c, "", false)
	}
	for _, a := range []string{"bold", "underline"} {
		PenStyles[a], _ = ColorBuild("", a, false)
	}
}

// ColorBuild creates the ANSI sequence for the pen color and attribute.
// Either argument can be empty.
func ColorBuild(pen string, attribute string, bright bool) (string, error) {
	var codes []string

	if pen != "" {
		c, ok := colors[strings.ToUpper(pen)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown pen: %s", pen)
		}
		target := 3
		if bright {
			target = 9
		}
		codes = append(codes, fmt.Sprintf("%d%d", target, c))
	}

	if attribute != "" {
		a, ok := attributes[strings.ToUpper(attribute)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown attribute: %s", attribute)
		}
		codes = append(codes, fmt.Sprintf("%d", a))
	}

	if len(codes) == 0 {
		return NormalPen, nil
	}

	return fmt.Sprintf("\033[%sm", strings.Join(codes, ";")), nil
}
