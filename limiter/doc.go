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

// Package limiter contains the types used to pace and to measure the rate of
// frames.
//
// FrameCounter measures the number of frames per second from the elapsed time
// of each frame. It does no waiting of its own and is suitable for hosts that
// are already synchronised to the display refresh.
//
// Limiter is for hosts that have no display to synchronise with, such as the
// terminal. It waits on a ticker so that frames are produced at the requested
// refresh rate.
package limiter
