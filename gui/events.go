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
	"github.com/boyadbg/boyadbg/logger"
	"github.com/boyadbg/boyadbg/userinput"
)

// Input forwards keyboard events from a window host to the debugger controls.
// Key names are the web key codes used by userinput.Keymap.
type Input struct {
	ctrl   *userinput.Controllers
	handle userinput.HandleInput

	// keys that are currently held, by key name. a key up for a key that
	// is not held is ignored
	held map[string]bool
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput(km userinput.Keymap, handle userinput.HandleInput) *Input {
	return &Input{
		ctrl:   userinput.NewControllers(km),
		handle: handle,
		held:   make(map[string]bool),
	}
}

// Key sends a key event to the controls. Returns true if the event was bound
// to a keypad key or a debugger action.
func (in *Input) Key(key string, down bool, mod userinput.KeyMod) bool {
	if key == "" {
		return false
	}

	repeat := down && in.held[key]
	if !down && !in.held[key] {
		return false
	}
	if down {
		in.held[key] = true
	} else {
		delete(in.held, key)
	}

	in.ctrl.HandleUserInput(userinput.EventKeyboard{
		Key:    key,
		Down:   down,
		Mod:    mod,
		Repeat: repeat,
	}, in.handle)

	if !in.ctrl.LastKeyHandled && down && !repeat {
		logger.Logf(logger.Allow, "gui", "unbound key: %s", userinput.EventKeyboard{Key: key, Mod: mod}.Encode())
	}

	return in.ctrl.LastKeyHandled
}

// ReleaseAll sends a key up event for every held key. Used when the window
// loses focus.
func (in *Input) ReleaseAll() {
	for key := range in.held {
		in.Key(key, false, userinput.KeyModNone)
	}
}
