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

package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/boyadbg/boyadbg/userinput"
)

// web key codes for the keys that can be bound
var keyNames = map[ebiten.Key]string{
	ebiten.KeyA: "KeyA", ebiten.KeyB: "KeyB", ebiten.KeyC: "KeyC", ebiten.KeyD: "KeyD",
	ebiten.KeyE: "KeyE", ebiten.KeyF: "KeyF", ebiten.KeyG: "KeyG", ebiten.KeyH: "KeyH",
	ebiten.KeyI: "KeyI", ebiten.KeyJ: "KeyJ", ebiten.KeyK: "KeyK", ebiten.KeyL: "KeyL",
	ebiten.KeyM: "KeyM", ebiten.KeyN: "KeyN", ebiten.KeyO: "KeyO", ebiten.KeyP: "KeyP",
	ebiten.KeyQ: "KeyQ", ebiten.KeyR: "KeyR", ebiten.KeyS: "KeyS", ebiten.KeyT: "KeyT",
	ebiten.KeyU: "KeyU", ebiten.KeyV: "KeyV", ebiten.KeyW: "KeyW", ebiten.KeyX: "KeyX",
	ebiten.KeyY: "KeyY", ebiten.KeyZ: "KeyZ",

	ebiten.KeyDigit0: "Digit0", ebiten.KeyDigit1: "Digit1", ebiten.KeyDigit2: "Digit2",
	ebiten.KeyDigit3: "Digit3", ebiten.KeyDigit4: "Digit4", ebiten.KeyDigit5: "Digit5",
	ebiten.KeyDigit6: "Digit6", ebiten.KeyDigit7: "Digit7", ebiten.KeyDigit8: "Digit8",
	ebiten.KeyDigit9: "Digit9",

	ebiten.KeyF1: "F1", ebiten.KeyF2: "F2", ebiten.KeyF3: "F3", ebiten.KeyF4: "F4",
	ebiten.KeyF5: "F5", ebiten.KeyF6: "F6", ebiten.KeyF7: "F7", ebiten.KeyF8: "F8",
	ebiten.KeyF9: "F9", ebiten.KeyF10: "F10", ebiten.KeyF11: "F11", ebiten.KeyF12: "F12",

	ebiten.KeySpace:      "Space",
	ebiten.KeyEnter:      "Enter",
	ebiten.KeyEscape:     "Escape",
	ebiten.KeyArrowUp:    "ArrowUp",
	ebiten.KeyArrowDown:  "ArrowDown",
	ebiten.KeyArrowLeft:  "ArrowLeft",
	ebiten.KeyArrowRight: "ArrowRight",
}

// only one modifier is reported with alt taking priority over shift and shift
// over ctrl
func keyMod() userinput.KeyMod {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyAlt):
		return userinput.KeyModAlt
	case ebiten.IsKeyPressed(ebiten.KeyShift):
		return userinput.KeyModShift
	case ebiten.IsKeyPressed(ebiten.KeyControl):
		return userinput.KeyModCtrl
	}
	return userinput.KeyModNone
}
