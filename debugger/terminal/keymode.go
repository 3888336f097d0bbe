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

import (
	"strings"

	"github.com/boyadbg/boyadbg/userinput"
)

// the number of frames a key pressed in key mode is held for. a terminal does
// not report key releases
const holdFrames = 6

// keyDecoder converts bytes read from the terminal into key codes as used by
// the userinput keymap
type keyDecoder struct {
	// 1 after an escape byte. 2 after the escape sequence introducer
	esc int
}

func (kd *keyDecoder) decode(b byte) (string, bool) {
	switch kd.esc {
	case 1:
		if b == '[' {
			kd.esc = 2
			return "", false
		}
		kd.esc = 0
		return "Escape", true
	case 2:
		kd.esc = 0
		switch b {
		case 'A':
			return "ArrowUp", true
		case 'B':
			return "ArrowDown", true
		case 'C':
			return "ArrowRight", true
		case 'D':
			return "ArrowLeft", true
		}
		return "", false
	}

	switch {
	case b == 27:
		kd.esc = 1
		return "", false
	case b >= 'a' && b <= 'z':
		return "Key" + strings.ToUpper(string(b)), true
	case b >= 'A' && b <= 'Z':
		return "Key" + string(b), true
	case b >= '0' && b <= '9':
		return "Digit" + string(b), true
	case b == ' ':
		return "Space", true
	case b == '\n' || b == '\r':
		return "Enter", true
	}

	return "", false
}

func (trm *Terminal) enterKeyMode() {
	trm.keyMode = true
	trm.keys = keyDecoder{}
	if trm.easyterm != nil {
		_ = trm.easyterm.CBreakMode()
	}
}

func (trm *Terminal) leaveKeyMode() {
	trm.keyMode = false
	for code := range trm.held {
		trm.ctrl.HandleUserInput(userinput.EventKeyboard{Key: code}, trm.ctl)
	}
	clear(trm.held)
	if trm.easyterm != nil {
		_ = trm.easyterm.CanonicalMode()
	}
	trm.TermPrintLine(StyleFeedback, "key mode ended")
	trm.Prompt()
}

func (trm *Terminal) keyPress(code string) {
	if code == "KeyQ" {
		trm.leaveKeyMode()
		return
	}

	// a key that is still held is pressed again by extending the hold
	if _, ok := trm.held[code]; ok {
		trm.held[code] = holdFrames
		return
	}

	trm.ctrl.HandleUserInput(userinput.EventKeyboard{Key: code, Down: true}, trm.ctl)
	if !trm.ctrl.LastKeyHandled {
		return
	}

	if trm.ctrl.Quit {
		trm.leaveKeyMode()
		return
	}

	if trm.ctrl.Keymap[code].IsKeypad() {
		trm.held[code] = holdFrames
	}
}
