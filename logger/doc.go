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

// Package logger is the central log for the debugger runtime. Entries are
// made with a tag and a detail. The tag names the sub-system making the entry
// and the detail can be a string, an error, a fmt.Stringer or any other value
// (which will be formatted with the %v verb).
//
//	logger.Log(logger.Allow, "runtime", "halted on breakpoint")
//	logger.Logf(logger.Allow, "callstack", "depth capped at %d", n)
//
// Adjacent entries that are identical are folded into a single entry with a
// repeat count.
//
// The Permission argument controls whether an entry is made at all. The Allow
// value always permits logging. Other implementations can be used to suppress
// logging in certain conditions, for example when measuring performance.
//
// The package level functions operate on a single central logger. A separate
// Logger instance can be created with NewLogger(), which is mostly useful for
// testing.
package logger
