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

package govern

// State indicates the state of the runtime.
type State int

// List of possible runtime states.
//
// Idle is the default state. The runtime returns to Idle when the ROM is
// unloaded.
//
// Stepping is transient and is only seen for the duration of a discrete step.
// For the purposes of the Paused() function, Stepping counts as paused.
const (
	Idle State = iota
	Paused
	Stepping
	Running
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Paused:
		return "Paused"
	case Stepping:
		return "Stepping"
	case Running:
		return "Running"
	}

	return ""
}

// IsRunning is true only for the Running state.
func (s State) IsRunning() bool {
	return s == Running
}

// IsPaused is true for the Paused and Stepping states.
func (s State) IsPaused() bool {
	return s == Paused || s == Stepping
}

// StateIntegrity checks whether a change of state makes sense.
//
// Rules:
//
//  1. any state can move to Idle
//
//  2. no state other than Idle is possible without a ROM
//
//  3. Stepping can only be entered from Paused
//
//  4. a state can always be re-entered
func StateIntegrity(from State, to State, romLoaded bool) bool {
	if to == Idle {
		return true
	}
	if !romLoaded {
		return false
	}
	if from == to {
		return true
	}
	if to == Stepping {
		return from == Paused
	}
	return true
}
