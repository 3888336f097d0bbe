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

// Key is a single key of the emulated keypad.
type Key uint16

// List of keypad keys. The value of each key is its bit in the keypad mask.
const (
	KeyA Key = 1 << iota
	KeyB
	KeySelect
	KeyStart
	KeyRight
	KeyLeft
	KeyUp
	KeyDown
	KeyR
	KeyL
)

// KeypadMask covers all keys of the keypad.
const KeypadMask = 0x3ff

// KeypadReleased is the value of the keypad mask when no keys are pressed.
const KeypadReleased = KeypadMask

// KeyList is the list of keys in bit order.
var KeyList = []Key{KeyA, KeyB, KeySelect, KeyStart, KeyRight, KeyLeft, KeyUp, KeyDown, KeyR, KeyL}

func (k Key) String() string {
	switch k {
	case KeyA:
		return "A"
	case KeyB:
		return "B"
	case KeySelect:
		return "Select"
	case KeyStart:
		return "Start"
	case KeyRight:
		return "Right"
	case KeyLeft:
		return "Left"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyR:
		return "R"
	case KeyL:
		return "L"
	}
	return ""
}

// ParseKey returns the key with the name. The comparison is case sensitive.
func ParseKey(name string) (Key, bool) {
	for _, k := range KeyList {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// Press returns a transform for the keypad mask that presses the key.
func Press(k Key) func(uint16) uint16 {
	return func(mask uint16) uint16 {
		return mask &^ uint16(k)
	}
}

// Release returns a transform for the keypad mask that releases the key.
func Release(k Key) func(uint16) uint16 {
	return func(mask uint16) uint16 {
		return mask | uint16(k)
	}
}

// ActiveKeys returns the names of the keys that are pressed in the mask.
func ActiveKeys(mask uint16) []string {
	var active []string
	for _, k := range KeyList {
		if ^mask&uint16(k) != 0 {
			active = append(active, k.String())
		}
	}
	return active
}
