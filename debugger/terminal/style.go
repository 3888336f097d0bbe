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

package terminal

import "github.com/boyadbg/boyadbg/debugger/terminal/colorterm"

// Style is the type of a line of output.
type Style int

// List of valid Style values.
const (
	StyleFeedback Style = iota
	StyleHelp
	StyleError
	StylePrompt
)

func (s Style) pen() string {
	switch s {
	case StyleHelp:
		return colorterm.DimPen(colorterm.White)
	case StyleError:
		return colorterm.Pen(colorterm.Red)
	case StylePrompt:
		return colorterm.Build(colorterm.NoColor, false, colorterm.Bold)
	}
	return colorterm.DimPen(colorterm.Cyan)
}
