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

package callstack

import (
	"fmt"
	"strings"

	"github.com/boyadbg/boyadbg/logger"
)

// Entry in the call stack.
type Entry struct {
	Caller uint32
	Return uint32
}

func (e Entry) String() string {
	return fmt.Sprintf("0x%08x -> 0x%08x", e.Caller, e.Return)
}

// Probe is the information required by Observe(). It is satisfied by
// core.Core.
type Probe interface {
	ExecAddress() uint32
	LR() uint32
	InstructionSize() int
	StartingSubroutine() bool
}

// DefaultMaxDepth is the depth limit used by the debugger unless changed by
// the callstack.maxdepth preference.
const DefaultMaxDepth = 1024

// Tracker maintains the inferred call stack.
type Tracker struct {
	entries []Entry

	// maximum number of entries. zero means no limit
	maxDepth int

	// number of entries discarded because of the depth limit
	overflow int

	// execution address of the previous observation. an observation is only
	// made when the execution address changes
	lastPC    uint32
	hasLastPC bool
}

// NewTracker is the preferred method of initialisation for the Tracker type.
func NewTracker(maxDepth int) *Tracker {
	return &Tracker{
		maxDepth: maxDepth,
	}
}

// SetMaxDepth changes the depth limit. Existing entries beyond the new limit
// are discarded, oldest first.
func (tr *Tracker) SetMaxDepth(maxDepth int) {
	tr.maxDepth = maxDepth
	tr.trim()
}

// MaxDepth returns the current depth limit.
func (tr *Tracker) MaxDepth() int {
	return tr.maxDepth
}

// Overflow returns the number of entries discarded because of the depth
// limit since the last call to Clear().
func (tr *Tracker) Overflow() int {
	return tr.overflow
}

// Push entry onto the stack.
func (tr *Tracker) Push(e Entry) {
	tr.entries = append(tr.entries, e)
	tr.trim()
}

// Pop the top entry from the stack. Returns false if the stack was empty.
func (tr *Tracker) Pop() (Entry, bool) {
	if len(tr.entries) == 0 {
		return Entry{}, false
	}
	e := tr.entries[len(tr.entries)-1]
	tr.entries = tr.entries[:len(tr.entries)-1]
	return e, true
}

// Top returns the entry at the top of the stack without removing it.
func (tr *Tracker) Top() (Entry, bool) {
	if len(tr.entries) == 0 {
		return Entry{}, false
	}
	return tr.entries[len(tr.entries)-1], true
}

// Depth returns the number of entries in the stack.
func (tr *Tracker) Depth() int {
	return len(tr.entries)
}

// Clear the stack and the overflow count.
func (tr *Tracker) Clear() {
	tr.entries = tr.entries[:0]
	tr.overflow = 0
	tr.hasLastPC = false
}

// Snapshot returns a copy of the stack. The first entry is the oldest.
func (tr *Tracker) Snapshot() []Entry {
	return append([]Entry(nil), tr.entries...)
}

func (tr *Tracker) trim() {
	if tr.maxDepth <= 0 || len(tr.entries) <= tr.maxDepth {
		return
	}
	n := len(tr.entries) - tr.maxDepth
	tr.entries = append(tr.entries[:0], tr.entries[n:]...)
	tr.overflow += n
	logger.Logf(logger.Allow, "callstack", "depth limit of %d reached", tr.maxDepth)
}

// Observe the probe and update the stack. The stack is only updated if the
// execution address has changed since the previous observation. Returns true
// if the stack was updated.
func (tr *Tracker) Observe(p Probe) bool {
	pc := p.ExecAddress()
	if tr.hasLastPC && tr.lastPC == pc {
		return false
	}
	tr.lastPC = pc
	tr.hasLastPC = true

	changed := false

	// the least significant bit of the link register indicates the
	// instruction set and is not part of the address
	lr := p.LR() &^ 1

	// the link register holds the return address for the whole of the
	// subroutine. the entry is popped only once execution has reached it
	if top, ok := tr.Top(); ok && top.Return == lr && top.Return == pc {
		tr.Pop()
		changed = true
	}

	if p.StartingSubroutine() {
		tr.Push(Entry{
			Caller: pc,
			Return: pc + uint32(p.InstructionSize()),
		})
		changed = true
	}

	return changed
}

func (tr *Tracker) String() string {
	if len(tr.entries) == 0 {
		return "call stack is empty"
	}
	s := strings.Builder{}
	for i := len(tr.entries) - 1; i >= 0; i-- {
		s.WriteString(tr.entries[i].String())
		if i > 0 {
			s.WriteString("\n")
		}
	}
	return s.String()
}
