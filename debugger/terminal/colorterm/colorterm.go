// This file is part of Boyadbg.
//
// Boyadbg is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Boyadbg is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Boyadbg.  If not, see <https://www.gnu.org/licenses/>.

// Package colorterm builds the ANSI escape sequences used to color the output
// of the terminal front-end.
package colorterm

import (
	"fmt"
	"strings"
)

// Color is one of the eight ANSI colors.
type Color int

// List of valid Color values. NoColor leaves the current color unchanged.
const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	NoColor
)

// Attribute of the text.
type Attribute int

// List of valid Attribute values.
const (
	Normal    Attribute = 0
	Bold      Attribute = 1
	Underline Attribute = 4
	Inverse   Attribute = 7
	Strike    Attribute = 8
)

// pen types
const (
	pen       = 3
	brightPen = 9
)

// Off resets the pen and attributes to the terminal defaults.
const Off = "\033[m"

// Build the escape sequence for the pen color and attribute.
func Build(c Color, bright bool, attr Attribute) string {
	var p []string

	if c != NoColor {
		t := pen
		if bright {
			t = brightPen
		}
		p = append(p, fmt.Sprintf("%d%d", t, c))
	}

	if attr != Normal {
		p = append(p, fmt.Sprintf("%d", attr))
	}

	return fmt.Sprintf("\033[%sm", strings.Join(p, ";"))
}

// Pen returns the escape sequence for a bright pen.
func Pen(c Color) string {
	return Build(c, true, Normal)
}

// DimPen returns the escape sequence for a normal intensity pen.
func DimPen(c Color) string {
	return Build(c, false, Normal)
}

// Wrap the string in the escape sequence followed by Off.
func Wrap(seq string, s string) string {
	return seq + s + Off
}
