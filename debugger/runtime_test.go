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

package debugger_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/boyadbg/boyadbg/core"
	"github.com/boyadbg/boyadbg/core/minicore"
	"github.com/boyadbg/boyadbg/curated"
	"github.com/boyadbg/boyadbg/debugger"
	"github.com/boyadbg/boyadbg/debugger/govern"
	"github.com/boyadbg/boyadbg/disassembly"
	"github.com/boyadbg/boyadbg/scheduler"
	"github.com/boyadbg/boyadbg/test"
	"github.com/boyadbg/boyadbg/userinput"
)

const refresh = time.Second / 60

func newRuntime(t *testing.T) (*debugger.Runtime, *scheduler.Queue, *minicore.Core) {
	t.Helper()
	c := minicore.NewCore()
	q := scheduler.NewQueue(4)
	rt, err := debugger.NewRuntime(c, q, "")
	test.DemandSuccess(t, err)
	rt.Quiet(true)
	return rt, q, c
}

func exclusive(t *testing.T, rt *debugger.Runtime, tags ...any) {
	t.Helper()
	st := rt.State()
	if st.Running && st.Paused {
		t.Fatalf("running and paused at the same time %v", tags)
	}
	if st.Running && !st.RomLoaded {
		t.Fatalf("running without a rom %v", tags)
	}
}

// the third frame of this program reaches the breakpoint address
func thirdFrameROM() ([]byte, uint32) {
	const target = minicore.ROMOrigin + 0x100

	p := minicore.NewProgram()
	p.Mov(0, 0x48000)
	loop := p.Subs(0, 0, 1)
	p.Bcond(minicore.NE, loop)
	p.B(target)
	p.PadTo(target)
	p.Nop()
	spin := p.Here()
	p.B(spin)

	return p.ROM(), target
}

func TestIdle(t *testing.T) {
	rt, q, _ := newRuntime(t)

	st := rt.State()
	test.ExpectEquality(t, st.State, govern.Idle)
	test.ExpectEquality(t, st.Running, false)
	test.ExpectEquality(t, st.Paused, false)
	test.ExpectEquality(t, st.RomLoaded, false)
	test.ExpectEquality(t, st.Keypad, uint16(userinput.KeypadReleased))

	// nothing happens without a rom
	rt.Run(debugger.RunParams{})
	test.ExpectEquality(t, q.Pending(), 0)
	rt.Step(govern.StepInto)
	rt.Reset()
	rt.Pause()
	test.ExpectEquality(t, rt.State().State, govern.Idle)
	test.ExpectEquality(t, rt.State().Cycles, uint64(0))
}

func TestLoad(t *testing.T) {
	rt, _, c := newRuntime(t)

	err := rt.Load(nil)
	test.ExpectEquality(t, curated.Is(err, debugger.CannotLoad), true)
	test.ExpectEquality(t, curated.Has(err, minicore.UnsupportedROM), true)
	test.ExpectEquality(t, rt.State().State, govern.Idle)
	test.ExpectEquality(t, rt.State().RomLoaded, false)

	test.DemandSuccess(t, rt.Load(minicore.DemoROM()))
	st := rt.State()
	test.ExpectEquality(t, st.State, govern.Paused)
	test.ExpectEquality(t, st.RomLoaded, true)
	test.ExpectEquality(t, st.Paused, true)
	test.ExpectEquality(t, st.Cycles, c.Cycles())
	test.ExpectEquality(t, c.ExecAddress(), uint32(minicore.ROMOrigin))

	rt.Unload()
	st = rt.State()
	test.ExpectEquality(t, st.State, govern.Idle)
	test.ExpectEquality(t, st.RomLoaded, false)
	test.ExpectEquality(t, st.Cycles, uint64(0))
}

type noBIOS struct {
	core.Core
}

func TestLoadBIOS(t *testing.T) {
	rt, _, _ := newRuntime(t)
	test.ExpectSuccess(t, rt.LoadBIOS(make([]byte, minicore.BIOSSize)))

	err := rt.LoadBIOS([]byte{0})
	test.ExpectEquality(t, curated.Has(err, minicore.UnsupportedBIOS), true)

	rt, err = debugger.NewRuntime(noBIOS{minicore.NewCore()}, scheduler.NewQueue(1), "")
	test.DemandSuccess(t, err)
	rt.Quiet(true)
	err = rt.LoadBIOS(make([]byte, minicore.BIOSSize))
	test.ExpectEquality(t, curated.Is(err, debugger.NoBIOSSupport), true)
}

func TestRunAndPause(t *testing.T) {
	rt, q, _ := newRuntime(t)
	test.DemandSuccess(t, rt.Load(minicore.DemoROM()))

	var frames int
	rt.Run(debugger.RunParams{
		OnFrame: func(_ core.Core) {
			frames++
		},
	})
	test.ExpectEquality(t, rt.State().Running, true)
	test.ExpectEquality(t, rt.State().Paused, false)

	// a second call to run has no effect
	rt.Run(debugger.RunParams{})
	test.ExpectEquality(t, q.Pending(), 1)

	var prev uint64
	for i := range 5 {
		test.ExpectEquality(t, q.Service(refresh), 1, i)
		st := rt.State()
		test.ExpectEquality(t, st.Running, true, i)
		test.ExpectEquality(t, st.Cycles > prev, true, i)
		test.ExpectEquality(t, st.Cycles, uint64(minicore.FrameCycles*(i+1)), i)
		test.ExpectEquality(t, st.HasLastDelta, false, i)
		prev = st.Cycles
	}
	test.ExpectEquality(t, frames, 5)

	rt.Pause()
	st := rt.State()
	test.ExpectEquality(t, st.Running, false)
	test.ExpectEquality(t, st.Paused, true)
	test.ExpectEquality(t, st.Halt, core.HaltNone)

	// the tick that was already scheduled does nothing
	test.ExpectEquality(t, q.Service(refresh), 1)
	test.ExpectEquality(t, q.Service(refresh), 0)
	test.ExpectEquality(t, rt.State().Cycles, prev)
	test.ExpectEquality(t, frames, 5)
}

func TestBreakpointHalt(t *testing.T) {
	rt, q, c := newRuntime(t)

	rom, target := thirdFrameROM()
	test.DemandSuccess(t, rt.Load(rom))
	rt.Breakpoints().Add(target)

	var frames int
	rt.Run(debugger.RunParams{
		OnFrame: func(_ core.Core) {
			frames++
		},
	})

	test.ExpectEquality(t, q.Service(refresh), 1)
	test.ExpectEquality(t, rt.State().Running, true)
	test.ExpectEquality(t, rt.State().LastDelta, uint32(minicore.FrameCycles))
	test.ExpectEquality(t, q.Service(refresh), 1)
	test.ExpectEquality(t, rt.State().Running, true)
	test.ExpectEquality(t, q.Service(refresh), 1)

	st := rt.State()
	test.ExpectEquality(t, st.Running, false)
	test.ExpectEquality(t, st.Paused, true)
	test.ExpectEquality(t, st.Halt, core.HaltBreakpoint)
	test.ExpectEquality(t, c.ExecAddress(), target)
	test.ExpectEquality(t, st.Cycles, uint64(1+0x48000*2+1))
	test.ExpectEquality(t, st.HasLastDelta, true)
	test.ExpectEquality(t, st.LastDelta, uint32(1+0x48000*2+1-2*minicore.FrameCycles))
	test.ExpectEquality(t, q.Pending(), 0)

	// the frame function is called on the halting frame too
	test.ExpectEquality(t, frames, 3)

	// the halted address has been decoded
	test.ExpectInequality(t, rt.Disasm().Text(target), disassembly.Unknown)
	test.ExpectEquality(t, rt.Disasm().Text(target), "nop")
}

func TestBreakpointAtCurrentAddress(t *testing.T) {
	rt, q, _ := newRuntime(t)

	p := minicore.NewProgram()
	spin := p.Here()
	p.B(spin)
	test.DemandSuccess(t, rt.Load(p.ROM()))
	rt.Breakpoints().Add(spin)

	// the core advances before the breakpoint is honoured
	rt.Run(debugger.RunParams{})
	test.ExpectEquality(t, q.Service(refresh), 1)
	test.ExpectEquality(t, rt.State().Running, false)
	test.ExpectEquality(t, rt.State().Cycles, uint64(1))
}

func TestBreakpointAddedWhileRunning(t *testing.T) {
	rt, q, _ := newRuntime(t)

	rom, target := thirdFrameROM()
	test.DemandSuccess(t, rt.Load(rom))

	rt.Run(debugger.RunParams{})
	test.ExpectEquality(t, q.Service(refresh), 1)
	test.ExpectEquality(t, rt.State().HasLastDelta, false)

	rt.Breakpoints().Add(target)
	q.Service(refresh)
	test.ExpectEquality(t, rt.State().Running, true)
	q.Service(refresh)
	test.ExpectEquality(t, rt.State().Running, false)
	test.ExpectEquality(t, rt.State().Halt, core.HaltBreakpoint)
}

func TestRunSuperseded(t *testing.T) {
	rt, q, _ := newRuntime(t)
	test.DemandSuccess(t, rt.Load(minicore.DemoROM()))

	rt.Run(debugger.RunParams{})
	rt.Pause()
	rt.Run(debugger.RunParams{})
	test.ExpectEquality(t, q.Pending(), 2)

	// only the tick from the second run advances the core
	test.ExpectEquality(t, q.Service(refresh), 2)
	test.ExpectEquality(t, rt.State().Cycles, uint64(minicore.FrameCycles))
	test.ExpectEquality(t, q.Pending(), 1)
}

func TestPauseInFrameFunction(t *testing.T) {
	rt, q, _ := newRuntime(t)
	test.DemandSuccess(t, rt.Load(minicore.DemoROM()))

	var frames int
	rt.Run(debugger.RunParams{
		OnFrame: func(_ core.Core) {
			frames++
			if frames == 2 {
				rt.Pause()
			}
		},
	})

	q.Service(refresh)
	q.Service(refresh)
	test.ExpectEquality(t, rt.State().Running, false)
	test.ExpectEquality(t, rt.State().Cycles, uint64(minicore.FrameCycles*2))
	test.ExpectEquality(t, q.Pending(), 0)
}

func TestStep(t *testing.T) {
	rt, q, _ := newRuntime(t)
	test.DemandSuccess(t, rt.Load(minicore.DemoROM()))

	rt.Step(govern.StepInto)
	st := rt.State()
	test.ExpectEquality(t, st.State, govern.Paused)
	test.ExpectEquality(t, st.Cycles, uint64(1))
	test.ExpectEquality(t, st.HasLastDelta, true)
	test.ExpectEquality(t, st.LastDelta, uint32(1))

	rt.Step(govern.StepScanline)
	st = rt.State()
	test.ExpectEquality(t, st.Cycles, uint64(minicore.ScanlineCycles))
	test.ExpectEquality(t, st.LastDelta, uint32(minicore.ScanlineCycles-1))

	rt.Step(govern.StepFrame)
	st = rt.State()
	test.ExpectEquality(t, st.Cycles, uint64(minicore.FrameCycles))
	test.ExpectEquality(t, st.LastDelta, uint32(minicore.FrameCycles-minicore.ScanlineCycles))

	// steps are not allowed while running
	rt.Run(debugger.RunParams{})
	rt.Step(govern.StepInto)
	test.ExpectEquality(t, rt.State().Cycles, uint64(minicore.FrameCycles))
	q.Service(refresh)
	test.ExpectEquality(t, rt.State().Cycles, uint64(minicore.FrameCycles*2))

	// a plain frame clears the delta
	test.ExpectEquality(t, rt.State().HasLastDelta, false)
}

func TestReset(t *testing.T) {
	rt, _, c := newRuntime(t)
	test.DemandSuccess(t, rt.Load(minicore.DemoROM()))
	rt.Breakpoints().Add(0x08000100)
	rt.Breakpoints().Add(0x08000104)

	rt.UpdateKeypad(userinput.Press(userinput.KeyStart))
	for range 10 {
		rt.Step(govern.StepInto)
	}
	test.ExpectInequality(t, rt.Disasm().Len(), 0)

	// execution is inside the subroutine of the demo rom
	test.ExpectEquality(t, rt.CallStack().Depth(), 1)

	rt.Reset()
	st := rt.State()
	test.ExpectEquality(t, rt.Disasm().Len(), 0)
	test.ExpectEquality(t, rt.CallStack().Depth(), 0)
	test.ExpectEquality(t, st.Cycles, c.Cycles())
	test.ExpectEquality(t, st.HasLastDelta, false)
	test.ExpectEquality(t, st.Keypad, uint16(userinput.KeypadReleased))
	test.ExpectEquality(t, c.Keyinput(), uint16(userinput.KeypadReleased))
	test.ExpectEquality(t, st.State, govern.Paused)
	test.ExpectEquality(t, rt.Breakpoints().Len(), 2)

	// breakpoints also survive an unload
	rt.Unload()
	test.ExpectEquality(t, rt.Breakpoints().Len(), 2)
}

func TestUpdateKeypad(t *testing.T) {
	rt, _, c := newRuntime(t)
	test.DemandSuccess(t, rt.Load(minicore.DemoROM()))

	rt.UpdateKeypad(userinput.Press(userinput.KeyA))
	test.ExpectEquality(t, rt.State().Keypad, uint16(0x3fe))
	test.ExpectEquality(t, c.Keyinput(), uint16(0x3fe))

	rt.UpdateKeypad(func(uint16) uint16 { return 0xffff })
	test.ExpectEquality(t, rt.State().Keypad, uint16(0x3ff))
}

func TestDecodeIdempotence(t *testing.T) {
	rt, _, c := newRuntime(t)
	test.DemandSuccess(t, rt.Load(minicore.DemoROM()))

	a := rt.Disasm().Decode(c, 8)
	first := rt.Disasm().Entries()
	b := rt.Disasm().Decode(c, 8)
	second := rt.Disasm().Entries()

	test.DemandEquality(t, len(first), len(second))
	for i := range first {
		test.ExpectEquality(t, first[i], second[i], i)
		test.ExpectEquality(t, a[i], b[i], i)
	}
}

func TestCallStackBalance(t *testing.T) {
	rt, _, c := newRuntime(t)
	test.DemandSuccess(t, rt.Load(minicore.DemoROM()))

	const (
		call = minicore.ROMOrigin + 0x04
		sub  = minicore.ROMOrigin + 0x100
		ret  = minicore.ROMOrigin + 0x10c
	)

	// every call in the demo rom is matched by a return. the call is pushed
	// when execution stops on the call instruction and popped when execution
	// reaches the return address
	var returns int
	for i := range 1000 {
		before := rt.CallStack().Depth()
		rt.Step(govern.StepInto)

		pc := c.ExecAddress()
		depth := 0
		if pc == call || (pc >= sub && pc <= ret) {
			depth = 1
		}
		test.DemandEquality(t, rt.CallStack().Depth(), depth, i, pc)

		if before == 1 && depth == 0 {
			returns++
		}
	}
	test.ExpectInequality(t, returns, 0)
}

func TestNestedCallStack(t *testing.T) {
	rt, _, c := newRuntime(t)

	const (
		outer = minicore.ROMOrigin + 0x40
		inner = minicore.ROMOrigin + 0x80
	)

	p := minicore.NewProgram()
	p.Nop()
	outerCall := p.BL(outer)
	outerReturn := p.Here()
	p.B(outerReturn)

	// the outer subroutine keeps its return address in r4 while it calls the
	// inner subroutine
	p.PadTo(outer)
	p.Add(4, 14, 0)
	innerCall := p.BL(inner)
	innerReturn := p.Add(14, 4, 0)
	p.Ret()

	p.PadTo(inner)
	p.Nop()
	p.Ret()

	test.DemandSuccess(t, rt.Load(p.ROM()))

	steps := []struct {
		pc    uint32
		depth int
	}{
		{outerCall, 1},
		{outer, 1},
		{innerCall, 2},
		{inner, 2},
		{inner + 4, 2},
		{innerReturn, 1},
		{innerReturn + 4, 1},
		{outerReturn, 0},
	}

	for i, s := range steps {
		rt.Step(govern.StepInto)
		test.DemandEquality(t, c.ExecAddress(), s.pc, i)
		test.ExpectEquality(t, rt.CallStack().Depth(), s.depth, i)
	}

	// the entries were popped in stack order
	test.ExpectEquality(t, rt.CallStack().String(), "call stack is empty")
}

func TestFPS(t *testing.T) {
	rt, q, _ := newRuntime(t)
	test.DemandSuccess(t, rt.Load(minicore.DemoROM()))

	rt.Run(debugger.RunParams{})
	for range 50 {
		q.Service(20 * time.Millisecond)
	}
	test.ExpectEquality(t, rt.State().FPS, 49)
}

func TestMutualExclusion(t *testing.T) {
	rt, q, _ := newRuntime(t)
	rom, target := thirdFrameROM()

	rnd := rand.New(rand.NewSource(1))
	for i := range 2000 {
		switch rnd.Intn(10) {
		case 0:
			_ = rt.Load(rom)
		case 1:
			rt.Unload()
		case 2:
			rt.Reset()
		case 3:
			rt.Run(debugger.RunParams{})
		case 4:
			rt.Pause()
		case 5:
			rt.Step(govern.StepInto)
		case 6:
			rt.Step(govern.StepScanline)
		case 7:
			rt.Breakpoints().Toggle(target)
		case 8:
			rt.UpdateKeypad(userinput.Press(userinput.KeyB))
		default:
			q.Service(refresh)
		}
		exclusive(t, rt, i)
	}
}

func TestPauseOnHaltingFrame(t *testing.T) {
	rt, q, c := newRuntime(t)
	rom, target := thirdFrameROM()
	test.DemandSuccess(t, rt.Load(rom))
	rt.Breakpoints().Add(target)

	// the frame function pauses on the frame that reaches the breakpoint
	var frames int
	rt.Run(debugger.RunParams{
		OnFrame: func(_ core.Core) {
			frames++
			if frames == 3 {
				rt.Pause()
			}
		},
	})

	for range 3 {
		q.Service(refresh)
	}

	st := rt.State()
	test.ExpectEquality(t, st.Paused, true)
	test.ExpectEquality(t, st.Halt, core.HaltBreakpoint)
	test.ExpectEquality(t, c.ExecAddress(), target)
	test.ExpectEquality(t, q.Pending(), 0)
}

func TestUnknownStepType(t *testing.T) {
	rt, q, _ := newRuntime(t)
	test.DemandSuccess(t, rt.Load(minicore.DemoROM()))

	rt.Step(govern.StepType(99))
	st := rt.State()
	test.ExpectEquality(t, st.State, govern.Paused)
	test.ExpectEquality(t, st.Cycles, uint64(0))
	test.ExpectEquality(t, st.HasLastDelta, false)

	// the runtime can still be stepped and run
	rt.Step(govern.StepInto)
	test.ExpectEquality(t, rt.State().Cycles, uint64(1))
	rt.Run(debugger.RunParams{})
	test.ExpectEquality(t, rt.State().Running, true)
	test.ExpectEquality(t, q.Pending(), 1)
}
