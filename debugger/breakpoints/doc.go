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

// Package breakpoints implements the set of execution addresses at which the
// runtime halts a continuous run.
//
// The set is unordered. Addresses() returns a new sorted slice on every call
// and is used to build the argument to the core's breakpoint-aware stepping
// function. The runtime calls Addresses() once per tick so a breakpoint added
// during a run takes effect on the next tick.
//
// ParseAddress() and FormatAddress() are used by front-ends that allow the
// user to edit the set.
package breakpoints
