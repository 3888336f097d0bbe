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

// Package scheduler provides the display-refresh callback mechanism used by
// the runtime.
//
// A host owns a Queue and calls Service() once per display refresh on the
// goroutine that owns the runtime. Service() first runs any functions pushed
// from other goroutines with PushFunction() and then runs the frame callbacks
// that were requested with RequestFrame() before Service() was called. A
// callback that requests another frame is run on the next call to Service().
package scheduler
