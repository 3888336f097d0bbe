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

//go:build windows

package easyterm

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// EasyTerm is the main container for the terminal. On Windows only the
// geometry of the terminal is supported.
type EasyTerm struct {
	input       *os.File
	output      *os.File
	interactive bool
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
	return nil
}

// IsInteractive returns true if the input file is a terminal.
func (et *EasyTerm) IsInteractive() bool {
	return et.interactive
}

// CleanUp does nothing on Windows.
func (et *EasyTerm) CleanUp() {
}

// CanonicalMode does nothing on Windows.
func (et *EasyTerm) CanonicalMode() error {
	return nil
}

// CBreakMode does nothing on Windows.
func (et *EasyTerm) CBreakMode() error {
	return nil
}

// Geometry returns the size of the output terminal in characters.
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
