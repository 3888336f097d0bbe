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

package limiter

import (
	"math"
	"time"
)

// DefaultInterval is the length of time over which frames are counted.
const DefaultInterval = time.Second

// FrameCounter measures frames per second.
type FrameCounter struct {
	interval time.Duration

	// number of frames and the elapsed time since the most recent sample
	frames  int
	elapsed time.Duration

	fps int
}

// NewFrameCounter is the preferred method of initialisation for the
// FrameCounter type. An interval of zero or less is replaced with
// DefaultInterval.
func NewFrameCounter(interval time.Duration) *FrameCounter {
	fc := &FrameCounter{}
	fc.SetInterval(interval)
	return fc
}

// SetInterval changes the sampling interval and restarts the current sample.
func (fc *FrameCounter) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	fc.interval = interval
	fc.Reset()
}

// Interval returns the sampling interval.
func (fc *FrameCounter) Interval() time.Duration {
	return fc.interval
}

// Reset restarts the current sample. The most recent FPS value is kept.
func (fc *FrameCounter) Reset() {
	fc.frames = 0
	fc.elapsed = 0
}

// Tick should be called once per frame with the time elapsed since the
// previous call. When the elapsed time since the previous sample reaches the
// interval a new sample is taken and returned with a true value.
//
// The sample is the number of frames counted before this one, scaled to the
// interval and rounded up.
func (fc *FrameCounter) Tick(elapsed time.Duration) (int, bool) {
	fc.elapsed += elapsed

	var sampled bool
	if fc.elapsed >= fc.interval {
		fc.fps = int(math.Ceil(float64(fc.frames) * float64(fc.interval) / float64(fc.elapsed)))
		fc.frames = 0
		fc.elapsed = 0
		sampled = true
	}

	fc.frames++

	return fc.fps, sampled
}

// FPS returns the most recent sample.
func (fc *FrameCounter) FPS() int {
	return fc.fps
}
