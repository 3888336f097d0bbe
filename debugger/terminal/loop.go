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

package terminal

import (
	"bufio"
	"errors"
	"io"

	"github.com/boyadbg/boyadbg/limiter"
	"github.com/boyadbg/boyadbg/logger"
	"github.com/boyadbg/boyadbg/scheduler"
)

// Run reads input and services the queue until the QUIT command is executed.
// Input is read on a separate goroutine and applied between display
// refreshes. If the input is exhausted, Run() returns once the runtime is no
// longer running.
func (trm *Terminal) Run(input io.Reader, q *scheduler.Queue, lmtr *limiter.Limiter) error {
	bytes := make(chan byte, 256)
	readErr := make(chan error, 1)

	go func() {
		r := bufio.NewReader(input)
		for {
			b, err := r.ReadByte()
			if err != nil {
				readErr <- err
				return
			}
			bytes <- b
		}
	}()

	trm.Prompt()

	var eof bool

	for !trm.quit {
		for drained := false; !drained && !trm.quit; {
			select {
			case b := <-bytes:
				trm.Input(b)
			case err := <-readErr:
				// bytes read before the error are still in the channel
				for len(bytes) > 0 && !trm.quit {
					trm.Input(<-bytes)
				}
				if !errors.Is(err, io.EOF) {
					return err
				}
				logger.Log(logger.Allow, "terminal", "end of input")
				eof = true
				drained = true
			default:
				drained = true
			}
		}

		if eof && !trm.rt.State().Running {
			return nil
		}

		q.Service(lmtr.Wait())
		lmtr.MeasureActual()
		trm.Tick()
	}

	return nil
}
