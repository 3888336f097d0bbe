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

// Package callstack infers a logical call stack from two signals provided by
// the emulation core: whether the current instruction is a subroutine call
// and the value of the link register.
//
// The stack is a heuristic. It does not walk the stack memory of the emulated
// machine. An entry is popped when execution reaches the return address of
// the entry at the top of the stack while the link register still holds that
// address. An entry is pushed when the core reports that a subroutine is
// being entered. Both can happen in the
// same observation. A subroutine that changes the link register without
// returning will confuse the tracker.
//
// The depth of the stack can be limited with SetMaxDepth(). When the limit is
// reached the oldest entry is discarded and the overflow count is increased.
package callstack
