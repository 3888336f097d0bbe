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

//go:build !windows

package easyterm

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// EasyTerm is the main container for posix terminals.
type EasyTerm struct {
	input  *os.File
	output *os.File

	// whether the input file is a terminal. the mode functions do nothing if
	// it is not
	interactive bool

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// Initialise the fields in the EasyTerm struct.
func (et *EasyTerm) Initialise(input *os.File, output *os.File) error {
	if input == nil {
		return fmt.Errorf("easyterm: requires an input file")
	}
	if output == nil {
		return fmt.Errorf("easyterm: requires an output file")
	}

	et.input = input
	et.output = output
	et.interactive = term.IsTerminal(int(input.Fd()))

	if !et.interactive {
		return nil
	}

	if err := termios.Tcgetattr(et.input.Fd(), &et.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	et.cbreakAttr = et.canAttr
	termios.Cfmakecbreak(&et.cbreakAttr)

	return nil
}

// IsInteractive returns true if the input file is a terminal.
func (et *EasyTerm) IsInteractive() bool {
	return et.interactive
}

// CleanUp returns the terminal to canonical mode.
func (et *EasyTerm) CleanUp() {
	_ = et.CanonicalMode()
}

// CanonicalMode puts the terminal into normal, everyday canonical mode.
func (et *EasyTerm) CanonicalMode() error {
	if !et.interactive {
		return nil
	}
	return termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.canAttr)
}

// CBreakMode puts the terminal into cbreak mode. Key presses are available to
// read immediately and are not echoed.
func (et *EasyTerm) CBreakMode() error {
	if !et.interactive {
		return nil
	}
	return termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.cbreakAttr)
}

// Geometry returns the size of the output terminal in characters. If the output
// is not a terminal then a width of 80 and a height of 24 are returned.
func (et *EasyTerm) Geometry() (int, int) {
	if et.output == nil || !term.IsTerminal(int(et.output.Fd())) {
		return 80, 24
	}
	w, h, err := term.GetSize(int(et.output.Fd()))
	if err != nil {
		return 80, 24
	}
	return w, h
}
