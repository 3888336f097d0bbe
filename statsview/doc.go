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

// Package statsview starts a web server showing the memory and goroutine
// statistics of the running program. It is only available when built with
// the statsview build tag:
//
//	go build -tags=statsview
//
// After launch the graphs are available at:
//
//	localhost:12600/debug/statsview
//
// Standard pprof statistics are available at:
//
//	localhost:12600/debug/pprof/
//
// Without the build tag Available() returns false and Launch() returns an
// error.
package statsview
