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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/boyadbg/boyadbg/core"
	"github.com/boyadbg/boyadbg/debugger"
	"github.com/boyadbg/boyadbg/gui"
	"github.com/boyadbg/boyadbg/limiter"
	"github.com/boyadbg/boyadbg/scheduler"
)

// Leadtime is the period of running before measurement begins. It allows the
// frame rate to settle.
var Leadtime = 2 * time.Second

var timedOut = errors.New("performance timed out")

// Check runs the ROM for the specified duration and writes the frame rate to
// output. If uncapped is false the frame rate is limited to the refresh rate.
func Check(output io.Writer, profile Profile, c core.Core, rom []byte, uncapped bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	q := scheduler.NewQueue(1)

	rt, err := debugger.NewRuntime(c, q, "")
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	rt.Quiet(true)

	err = rt.Load(rom)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	lmtr := limiter.NewLimiter(gui.RefreshRate(rt))
	defer lmtr.Stop()
	lmtr.Active = !uncapped

	var numFrames int
	var startFrame int

	rt.Run(debugger.RunParams{
		OnFrame: func(_ core.Core) {
			numFrames++
		},
	})

	runner := func() error {
		lead := time.NewTimer(Leadtime)
		defer lead.Stop()

		// nil until the leadtime has elapsed
		var done <-chan time.Time

		for {
			select {
			case <-lead.C:
				startFrame = numFrames
				t := time.NewTimer(dur)
				defer t.Stop()
				done = t.C
			case <-done:
				return timedOut
			default:
			}

			q.Service(lmtr.Wait())

			if !rt.State().Running {
				return fmt.Errorf("runtime stopped: %s", rt.State())
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	n := numFrames - startFrame
	fps, accuracy := CalcFPS(n, dur.Seconds(), gui.RefreshRate(rt))
	_, err = fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, n, dur.Seconds(), accuracy)

	return err
}
