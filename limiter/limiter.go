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
	"sync/atomic"
	"time"
)

// DefaultRefreshRate is used when the requested refresh rate is not valid.
const DefaultRefreshRate = 60.0

// Limiter produces frames at a fixed rate.
type Limiter struct {
	// whether Wait() should block until the next frame is due
	Active bool

	// the requested number of frames per second
	RefreshRate atomic.Value // float32

	// the measured number of frames per second. updated by MeasureActual()
	Measured atomic.Value // float32

	// pulse that performs the limiting
	pulse *time.Ticker

	// pulse that performs the measurement
	measuringPulse *time.Ticker
	measureTime    time.Time
	measureCt      int

	// time of the previous call to Wait()
	last time.Time
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(refreshRate float32) *Limiter {
	lmtr := &Limiter{
		Active: true,
	}
	lmtr.Measured.Store(float32(0.0))
	lmtr.pulse = time.NewTicker(time.Second / DefaultRefreshRate)
	lmtr.measuringPulse = time.NewTicker(time.Second)
	lmtr.SetRefreshRate(refreshRate)
	return lmtr
}

// SetRefreshRate changes the rate at which Wait() returns. Values of zero or
// less are replaced with DefaultRefreshRate.
func (lmtr *Limiter) SetRefreshRate(refreshRate float32) {
	if refreshRate <= 0 {
		refreshRate = DefaultRefreshRate
	}
	lmtr.RefreshRate.Store(refreshRate)
	lmtr.pulse.Reset(time.Duration(float32(time.Second) / refreshRate))

	now := time.Now()
	lmtr.measureCt = 0
	lmtr.measureTime = now
	lmtr.last = now
}

// Wait until the next frame is due. Returns the time elapsed since the
// previous call to Wait().
func (lmtr *Limiter) Wait() time.Duration {
	if lmtr.Active {
		<-lmtr.pulse.C
	}
	lmtr.measureCt++

	now := time.Now()
	elapsed := now.Sub(lmtr.last)
	lmtr.last = now

	return elapsed
}

// MeasureActual updates the Measured field once per second. It should be
// called once per frame.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		m := float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds())
		lmtr.Measured.Store(m)
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop the limiter. It should not be used after this.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
