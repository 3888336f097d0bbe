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

// Package terminal is a line based front-end to the debugger runtime. Commands
// are read from an io.Reader and results are written to an io.Writer. The
// terminal supplies the display refresh tick to the runtime with a
// limiter.Limiter because a terminal has no refresh of its own.
//
// Commands are case insensitive. The HELP command lists every command.
//
// The KEYS command puts the terminal into key mode. In key mode each key press
// is applied to the keypad or to the debugger controls using the default
// keymap. If the input is a real terminal it is switched into cbreak mode with
// the easyterm package for the duration of key mode. Pressing q leaves key
// mode.
package terminal
