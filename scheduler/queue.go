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

package scheduler

import (
	"time"

	"github.com/boyadbg/boyadbg/logger"
)

// FrameCallback is called with the time elapsed since the previous display
// refresh.
type FrameCallback func(elapsed time.Duration)

// Requester is implemented by types that can run a callback on the next
// display refresh.
type Requester interface {
	RequestFrame(f FrameCallback)
}

// Queue implements the Requester interface.
type Queue struct {
	frames []FrameCallback

	// functions pushed from other goroutines
	pushed chan func()
}

// NewQueue is the preferred method of initialisation for the Queue type. The
// size is the number of pushed functions that can be waiting at once.
func NewQueue(size int) *Queue {
	return &Queue{
		pushed: make(chan func(), size),
	}
}

// RequestFrame implements the Requester interface. It must be called from the
// goroutine that calls Service().
func (q *Queue) RequestFrame(f FrameCallback) {
	q.frames = append(q.frames, f)
}

// PushFunction can be called from any goroutine. The function will be run at
// the start of the next call to Service(). Returns false if the queue is full,
// in which case the function is dropped.
func (q *Queue) PushFunction(f func()) bool {
	select {
	case q.pushed <- f:
		return true
	default:
		logger.Log(logger.Allow, "scheduler", "dropped pushed function")
		return false
	}
}

// Pending returns the number of frame callbacks waiting for the next call to
// Service().
func (q *Queue) Pending() int {
	return len(q.frames)
}

// Service should be called once per display refresh. Returns the number of
// frame callbacks that were run.
func (q *Queue) Service(elapsed time.Duration) int {
	for done := false; !done; {
		select {
		case f := <-q.pushed:
			f()
		default:
			done = true
		}
	}

	frames := q.frames
	q.frames = nil
	for _, f := range frames {
		f(elapsed)
	}

	return len(frames)
}
