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

// Package modalflag wraps the flag package from the standard library and adds
// the idea of program modes. Each mode has its own set of flags.
//
// Arguments are given with NewArgs() and parsed with Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG", "PERFORMANCE")
//	_, _ = md.Parse()
//
// After parsing, Mode() returns the selected mode. The first sub-mode is the
// default mode and is selected if the first argument does not name a mode.
// Flags for the selected mode are added after a call to NewMode() and parsed
// with a second call to Parse():
//
//	switch md.Mode() {
//	case "DEBUG":
//		md.NewMode()
//		breaks := md.AddList("break", "initial breakpoints")
//		_, _ = md.Parse()
//	}
//
// Path() returns every mode encountered so far joined by a slash. This is used
// in help messages.
//
// Requesting help with -help or -h prints the available flags and sub-modes
// to the Output writer. Parse() returns ParseHelp in this case and the caller
// should exit without printing anything further.
package modalflag
