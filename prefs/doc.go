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

// Package prefs facilitates the storage of preferences for the debugger
// runtime. Preferences are typed values (Bool, Int, Float, String) that can be
// added to a Disk instance for persistence.
//
//	var depth prefs.Int
//	dsk, _ := prefs.NewDisk(filename)
//	dsk.Add("debugger.decodedepth", &depth)
//	dsk.Load()
//
// The preferences file is plain text. Each line is a key/value pair separated
// by " :: ". Keys in the file that have not been added to the Disk instance are
// preserved when the file is saved. This means that one file can be shared by
// more than one Disk instance.
//
// Values can also be set from the command line. PushCommandLineStack() takes a
// string of the form "key::value; key::value". The values are consumed by the
// next call to Load() and take precedence over the values in the file.
package prefs
