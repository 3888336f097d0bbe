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

package callstack_test

import (
	"testing"

	"github.com/boyadbg/boyadbg/debugger/callstack"
	"github.com/boyadbg/boyadbg/test"
)

type probe struct {
	pc       uint32
	lr       uint32
	size     int
	starting bool
}

func (p probe) ExecAddress() uint32      { return p.pc }
func (p probe) LR() uint32               { return p.lr }
func (p probe) InstructionSize() int     { return p.size }
func (p probe) StartingSubroutine() bool { return p.starting }

func TestPushPopOrdering(t *testing.T) {
	tr := callstack.NewTracker(0)

	tr.Push(callstack.Entry{Caller: 0x100, Return: 0x104})
	tr.Push(callstack.Entry{Caller: 0x200, Return: 0x204})

	// reaching the return address of the top entry pops only that entry
	test.ExpectSuccess(t, tr.Observe(probe{pc: 0x204, lr: 0x204, size: 4}))
	test.DemandEquality(t, tr.Depth(), 1)
	top, ok := tr.Top()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, top, callstack.Entry{Caller: 0x100, Return: 0x104})

	// the return address of an entry that is not at the top has no effect
	tr.Push(callstack.Entry{Caller: 0x400, Return: 0x404})
	test.ExpectFailure(t, tr.Observe(probe{pc: 0x104, lr: 0x104, size: 4}))
	test.ExpectEquality(t, tr.Depth(), 2)
}

func TestObserveRequiresNewAddress(t *testing.T) {
	tr := callstack.NewTracker(0)

	p := probe{pc: 0x100, lr: 0, size: 4, starting: true}
	test.ExpectSuccess(t, tr.Observe(p))
	test.ExpectFailure(t, tr.Observe(p))
	test.ExpectEquality(t, tr.Depth(), 1)

	top, _ := tr.Top()
	test.ExpectEquality(t, top, callstack.Entry{Caller: 0x100, Return: 0x104})
}

func TestThumbBit(t *testing.T) {
	tr := callstack.NewTracker(0)

	test.ExpectSuccess(t, tr.Observe(probe{pc: 0x100, size: 2, starting: true}))
	top, _ := tr.Top()
	test.ExpectEquality(t, top.Return, uint32(0x102))

	// the link register has the thumb bit set
	test.ExpectSuccess(t, tr.Observe(probe{pc: 0x102, lr: 0x103, size: 2}))
	test.ExpectEquality(t, tr.Depth(), 0)
}

func TestLinkRegisterInsideSubroutine(t *testing.T) {
	tr := callstack.NewTracker(0)

	// the call instruction
	test.ExpectSuccess(t, tr.Observe(probe{pc: 0x100, lr: 0, size: 4, starting: true}))

	// the first instruction of the subroutine. the link register has been set
	// to the return address by the call
	test.ExpectFailure(t, tr.Observe(probe{pc: 0x400, lr: 0x104, size: 4}))
	test.ExpectEquality(t, tr.Depth(), 1)

	// the execution address matches but the link register has been changed
	test.ExpectFailure(t, tr.Observe(probe{pc: 0x104, lr: 0x200, size: 4}))
	test.ExpectEquality(t, tr.Depth(), 1)

	// both match
	test.ExpectFailure(t, tr.Observe(probe{pc: 0x400, lr: 0x104, size: 4}))
	test.ExpectSuccess(t, tr.Observe(probe{pc: 0x104, lr: 0x104, size: 4}))
	test.ExpectEquality(t, tr.Depth(), 0)
}

func TestPopAndPushInSameObservation(t *testing.T) {
	tr := callstack.NewTracker(0)
	tr.Push(callstack.Entry{Caller: 0x100, Return: 0x104})

	test.ExpectSuccess(t, tr.Observe(probe{pc: 0x104, lr: 0x104, size: 4, starting: true}))
	test.DemandEquality(t, tr.Depth(), 1)
	top, _ := tr.Top()
	test.ExpectEquality(t, top, callstack.Entry{Caller: 0x104, Return: 0x108})
}

func TestBalance(t *testing.T) {
	tr := callstack.NewTracker(0)

	// a sequence of calls where each call is matched by a return before the
	// next call
	var pc uint32 = 0x1000
	for i := 0; i < 10; i++ {
		test.ExpectSuccess(t, tr.Observe(probe{pc: pc, lr: 0, size: 4, starting: true}))
		test.ExpectEquality(t, tr.Depth(), 1)

		// inside the subroutine the link register holds the return address
		test.ExpectFailure(t, tr.Observe(probe{pc: 0x8000, lr: pc + 4, size: 4}))
		test.ExpectFailure(t, tr.Observe(probe{pc: 0x8004, lr: pc + 4, size: 4}))
		test.ExpectEquality(t, tr.Depth(), 1)

		// execution has returned
		test.ExpectSuccess(t, tr.Observe(probe{pc: pc + 4, lr: pc + 4, size: 4}))
		test.ExpectEquality(t, tr.Depth(), 0)

		pc += 0x10
	}
}

func TestMaxDepth(t *testing.T) {
	tr := callstack.NewTracker(3)

	for i := uint32(0); i < 5; i++ {
		tr.Push(callstack.Entry{Caller: i, Return: i + 4})
	}
	test.ExpectEquality(t, tr.Depth(), 3)
	test.ExpectEquality(t, tr.Overflow(), 2)

	s := tr.Snapshot()
	test.DemandEquality(t, len(s), 3)
	test.ExpectEquality(t, s[0].Caller, uint32(2))
	test.ExpectEquality(t, s[2].Caller, uint32(4))

	tr.SetMaxDepth(1)
	test.ExpectEquality(t, tr.Depth(), 1)
	test.ExpectEquality(t, tr.Overflow(), 4)

	tr.Clear()
	test.ExpectEquality(t, tr.Depth(), 0)
	test.ExpectEquality(t, tr.Overflow(), 0)

	_, ok := tr.Pop()
	test.ExpectFailure(t, ok)
}

func TestUnbounded(t *testing.T) {
	tr := callstack.NewTracker(0)
	for i := uint32(0); i < 5000; i++ {
		tr.Push(callstack.Entry{Caller: i, Return: i + 4})
	}
	test.ExpectEquality(t, tr.Depth(), 5000)
	test.ExpectEquality(t, tr.Overflow(), 0)
}

func TestString(t *testing.T) {
	tr := callstack.NewTracker(0)
	test.ExpectEquality(t, tr.String(), "call stack is empty")
	tr.Push(callstack.Entry{Caller: 0x08000004, Return: 0x08000008})
	tr.Push(callstack.Entry{Caller: 0x08000100, Return: 0x08000104})
	test.ExpectEquality(t, tr.String(), "0x08000100 -> 0x08000104\n0x08000004 -> 0x08000008")
}
