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

import (
	"fmt"
	"slices"
	"strings"
)

// Action is a debugger action that can be bound to a key.
type Action int

// List of valid Action values.
const (
	ActionReset Action = iota
	ActionToggleRun
	ActionStepInto
	ActionStepOut
	ActionStepScanline
	ActionStepFrame
	ActionStepIRQ
	ActionStop
)

func (a Action) String() string {
	switch a {
	case ActionReset:
		return "Reset"
	case ActionToggleRun:
		return "Pause/Continue"
	case ActionStepInto:
		return "Step into"
	case ActionStepOut:
		return "Step out"
	case ActionStepScanline:
		return "Step scanline"
	case ActionStepFrame:
		return "Step frame"
	case ActionStepIRQ:
		return "Step IRQ"
	case ActionStop:
		return "Stop"
	}
	return ""
}

// Binding is the effect of a key. If Key is non-zero then the binding is for
// the keypad, otherwise it is for the debugger action.
type Binding struct {
	Key    Key
	Action Action
}

// IsKeypad returns true if the binding is for the keypad.
func (b Binding) IsKeypad() bool {
	return b.Key != 0
}

func (b Binding) String() string {
	if b.IsKeypad() {
		return fmt.Sprintf("keypad %s", b.Key)
	}
	return fmt.Sprintf("debugger %s", b.Action)
}

// Keymap maps encoded key events to bindings.
type Keymap map[string]Binding

// DefaultKeymap returns a new instance of the default key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		"KeyX":       {Key: KeyA},
		"KeyZ":       {Key: KeyB},
		"Space":      {Key: KeySelect},
		"Enter":      {Key: KeyStart},
		"ArrowRight": {Key: KeyRight},
		"ArrowLeft":  {Key: KeyLeft},
		"ArrowUp":    {Key: KeyUp},
		"ArrowDown":  {Key: KeyDown},
		"KeyS":       {Key: KeyR},
		"KeyA":       {Key: KeyL},

		"F5":        {Action: ActionToggleRun},
		"F11":       {Action: ActionStepInto},
		"Shift+F11": {Action: ActionStepOut},
		"F9":        {Action: ActionReset},
		"KeyR":      {Action: ActionStepFrame},
		"KeyI":      {Action: ActionStepIRQ},
		"KeyL":      {Action: ActionStepScanline},
		"Escape":    {Action: ActionStop},
	}
}

func (km Keymap) String() string {
	keys := make([]string, 0, len(km))
	for k := range km {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%-12s %s\n", k, km[k]))
	}
	return s.String()
}
