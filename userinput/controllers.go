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

package userinput

// HandleInput is implemented by the type that receives the result of
// keyboard events.
type HandleInput interface {
	// apply the transform to the keypad mask
	UpdateKeypad(f func(uint16) uint16)

	// perform the debugger action
	HandleAction(a Action)
}

// Controllers applies keyboard events using a Keymap.
type Controllers struct {
	Keymap Keymap

	// whether the last event was found in the keymap
	LastKeyHandled bool

	// whether the last event was the stop action
	Quit bool
}

// NewControllers is the preferred method of initialisation for the
// Controllers type.
func NewControllers(km Keymap) *Controllers {
	return &Controllers{
		Keymap: km,
	}
}

// HandleUserInput applies the event. Repeated key presses are ignored.
func (c *Controllers) HandleUserInput(ev EventKeyboard, handle HandleInput) {
	c.LastKeyHandled = false
	c.Quit = false

	if ev.Repeat {
		return
	}

	b, ok := c.Keymap[ev.Encode()]
	if !ok {
		// releasing a key while a modifier is held should still release the
		// keypad key
		if ev.Down || ev.Mod == KeyModNone {
			return
		}
		b, ok = c.Keymap[ev.Key]
		if !ok || !b.IsKeypad() {
			return
		}
	}

	c.LastKeyHandled = true

	if b.IsKeypad() {
		if ev.Down {
			handle.UpdateKeypad(Press(b.Key))
		} else {
			handle.UpdateKeypad(Release(b.Key))
		}
		return
	}

	// actions happen on the key press only
	if ev.Down {
		c.Quit = b.Action == ActionStop
		handle.HandleAction(b.Action)
	}
}
