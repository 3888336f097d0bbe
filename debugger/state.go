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

package debugger

import (
	"fmt"
	"strings"

	"github.com/boyadbg/boyadbg/core"
	"github.com/boyadbg/boyadbg/debugger/govern"
)

// ExecutionState is a snapshot of the runtime. It is safe to read from any
// goroutine.
type ExecutionState struct {
	State govern.State

	// the reason the most recent run stopped
	Halt core.HaltReason

	// derived from State. never both true
	Running bool
	Paused  bool

	RomLoaded bool

	// cycles since the ROM was loaded or the runtime was reset
	Cycles uint64

	// cycles used by the most recent discrete step or breakpoint aware
	// frame. HasLastDelta is false after a plain frame
	LastDelta    uint32
	HasLastDelta bool

	// active-low keypad mask
	Keypad uint16

	FPS int
}

func (s ExecutionState) String() string {
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("state: %s", s.State))
	if s.Halt.Halted() {
		b.WriteString(fmt.Sprintf(" (%s)", s.Halt))
	}
	b.WriteString(fmt.Sprintf("  cycles: %d", s.Cycles))
	if s.HasLastDelta {
		b.WriteString(fmt.Sprintf("  delta: %d", s.LastDelta))
	}
	b.WriteString(fmt.Sprintf("  keypad: %#03x  fps: %d", s.Keypad, s.FPS))
	if !s.RomLoaded {
		b.WriteString("  (no rom)")
	}
	return b.String()
}

// setState changes the state of the runtime. Only the goroutine that owns the
// runtime should call this function.
func (rt *Runtime) setState(state govern.State) {
	prev := rt.state.Load().(govern.State)

	// intentionally panic if the change of state is not allowed
	if !govern.StateIntegrity(prev, state, rt.romLoaded) {
		panic(fmt.Sprintf("illegal change of state from %s to %s (rom loaded: %v)",
			prev, state, rt.romLoaded,
		))
	}

	rt.state.Store(state)
}

// publish the current values to the snapshot returned by State()
func (rt *Runtime) publish() {
	st := rt.state.Load().(govern.State)
	rt.snapshot.Store(ExecutionState{
		State:        st,
		Halt:         rt.halt,
		Running:      st.IsRunning(),
		Paused:       st.IsPaused(),
		RomLoaded:    rt.romLoaded,
		Cycles:       rt.cycles,
		LastDelta:    rt.lastDelta,
		HasLastDelta: rt.hasLastDelta,
		Keypad:       rt.keypad,
		FPS:          rt.fps.FPS(),
	})
}

// State returns a snapshot of the runtime.
func (rt *Runtime) State() ExecutionState {
	return rt.snapshot.Load().(ExecutionState)
}
