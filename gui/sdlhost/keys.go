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

package sdlhost

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/boyadbg/boyadbg/gui"
	"github.com/boyadbg/boyadbg/userinput"
)

// keyName returns the web key code for the scancode. Keys that cannot be
// bound return the empty string.
func keyName(sc sdl.Scancode) string {
	switch {
	case sc >= sdl.SCANCODE_A && sc <= sdl.SCANCODE_Z:
		return gui.KeyName(rune('A' + int(sc-sdl.SCANCODE_A)))
	case sc >= sdl.SCANCODE_1 && sc <= sdl.SCANCODE_9:
		return gui.KeyName(rune('1' + int(sc-sdl.SCANCODE_1)))
	case sc >= sdl.SCANCODE_F1 && sc <= sdl.SCANCODE_F12:
		return fmt.Sprintf("F%d", int(sc-sdl.SCANCODE_F1)+1)
	}

	switch sc {
	case sdl.SCANCODE_0:
		return "Digit0"
	case sdl.SCANCODE_SPACE:
		return "Space"
	case sdl.SCANCODE_RETURN:
		return "Enter"
	case sdl.SCANCODE_ESCAPE:
		return "Escape"
	case sdl.SCANCODE_UP:
		return "ArrowUp"
	case sdl.SCANCODE_DOWN:
		return "ArrowDown"
	case sdl.SCANCODE_LEFT:
		return "ArrowLeft"
	case sdl.SCANCODE_RIGHT:
		return "ArrowRight"
	}

	return ""
}

// the modifier state at the time of the event. only one modifier is reported
// with alt taking priority over shift and shift over ctrl
func keyMod() userinput.KeyMod {
	mod := sdl.GetModState()
	switch {
	case mod&sdl.KMOD_LALT == sdl.KMOD_LALT || mod&sdl.KMOD_RALT == sdl.KMOD_RALT:
		return userinput.KeyModAlt
	case mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT:
		return userinput.KeyModShift
	case mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL:
		return userinput.KeyModCtrl
	}
	return userinput.KeyModNone
}
