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

import "strings"

// KeyMod indicates which modifier keys are held.
type KeyMod int

// List of valid KeyMod values. Values can be combined.
const (
	KeyModNone  KeyMod = 0
	KeyModCtrl  KeyMod = 1 << 0
	KeyModAlt   KeyMod = 1 << 1
	KeyModShift KeyMod = 1 << 2
)

// EventKeyboard is a key press or release.
type EventKeyboard struct {
	Key    string
	Down   bool
	Mod    KeyMod
	Repeat bool
}

// Encode the key and modifiers in the form used by Keymap.
func (ev EventKeyboard) Encode() string {
	s := make([]string, 0, 4)
	if ev.Mod&KeyModCtrl == KeyModCtrl {
		s = append(s, "Ctrl")
	}
	if ev.Mod&KeyModAlt == KeyModAlt {
		s = append(s, "Alt")
	}
	if ev.Mod&KeyModShift == KeyModShift {
		s = append(s, "Shift")
	}
	s = append(s, ev.Key)
	return strings.Join(s, "+")
}
