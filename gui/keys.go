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

package gui

import (
	"strings"

	"github.com/boyadbg/boyadbg/debugger"
)

// KeyName returns the web key code for a letter or a digit. Any other
// character returns the empty string.
func KeyName(c rune) string {
	switch {
	case c >= 'a' && c <= 'z':
		return "Key" + strings.ToUpper(string(c))
	case c >= 'A' && c <= 'Z':
		return "Key" + string(c)
	case c >= '0' && c <= '9':
		return "Digit" + string(c)
	}
	return ""
}

// RefreshRate returns the refresh rate preference of the runtime.
func RefreshRate(rt *debugger.Runtime) float32 {
	return float32(rt.Prefs.RefreshRate.Get().(float64))
}
