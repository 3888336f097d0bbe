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

// Package userinput translates keyboard events from a host into changes to
// the keypad of the emulated machine and into debugger actions.
//
// Keys are named with the physical key codes used by web browsers, for
// example "KeyX", "ArrowLeft", "Space" and "F11". Modifiers are prefixed in
// the order Ctrl, Alt, Shift. For example, "Shift+F11".
//
// The keypad is represented as a ten bit active-low mask, as the emulated
// hardware sees it. A pressed key has its bit cleared.
package userinput
