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
	"testing"

	"github.com/boyadbg/boyadbg/core"
	"github.com/boyadbg/boyadbg/core/minicore"
	"github.com/boyadbg/boyadbg/debugger"
	"github.com/boyadbg/boyadbg/userinput"
	"github.com/boyadbg/boyadbg/test"
)

func TestToggleRun(t *testing.T) {
	rt, q, _ := newRuntime(t)
	test.DemandSuccess(t, rt.Load(minicore.DemoROM()))

	var frames int
	ctl := debugger.NewControls(rt, func(_ core.Core) {
		frames++
	})

	ctl.HandleAction(userinput.ActionToggleRun)
	test.ExpectEquality(t, rt.State().Running, true)
	q.Service(refresh)
	test.ExpectEquality(t, frames, 1)

	ctl.HandleAction(userinput.ActionToggleRun)
	test.ExpectEquality(t, rt.State().Running, false)
	test.ExpectEquality(t, rt.State().Paused, true)

	ctl.HandleAction(userinput.ActionToggleRun)
	ctl.HandleAction(userinput.ActionStop)
	test.ExpectEquality(t, rt.State().Running, false)
}

func TestControlSteps(t *testing.T) {
	rt, _, _ := newRuntime(t)
	test.DemandSuccess(t, rt.Load(minicore.DemoROM()))

	var frames int
	ctl := debugger.NewControls(rt, func(_ core.Core) {
		frames++
	})

	ctl.HandleAction(userinput.ActionStepInto)
	test.ExpectEquality(t, rt.State().Cycles, uint64(1))
	ctl.HandleAction(userinput.ActionStepScanline)
	test.ExpectEquality(t, rt.State().Cycles, uint64(minicore.ScanlineCycles))
	ctl.HandleAction(userinput.ActionStepFrame)
	test.ExpectEquality(t, rt.State().Cycles, uint64(minicore.FrameCycles))

	// the frame function is called after every step
	test.ExpectEquality(t, frames, 3)
}

func TestStepOut(t *testing.T) {
	rt, q, c := newRuntime(t)

	const sub = minicore.ROMOrigin + 0x40

	p := minicore.NewProgram()
	p.Nop()
	call := p.BL(sub)
	after := p.Nop()
	spin := p.Here()
	p.B(spin)
	p.PadTo(sub)
	p.Add(2, 2, 1)
	p.Ret()
	test.DemandSuccess(t, rt.Load(p.ROM()))

	ctl := debugger.NewControls(rt, nil)

	// nothing to step out of
	ctl.StepOut()
	test.ExpectEquality(t, q.Pending(), 0)

	// stop on the subroutine call
	ctl.HandleAction(userinput.ActionStepInto)
	test.ExpectEquality(t, c.ExecAddress(), call)
	top, ok := rt.CallStack().Top()
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, top.Return, after)

	ctl.HandleAction(userinput.ActionStepOut)
	test.ExpectEquality(t, rt.State().Running, true)
	q.Service(refresh)

	st := rt.State()
	test.ExpectEquality(t, st.Running, false)
	test.ExpectEquality(t, st.Halt, core.HaltBreakpoint)
	test.ExpectEquality(t, c.ExecAddress(), after)
	test.ExpectEquality(t, c.Reg(2), uint32(1))
	test.ExpectEquality(t, st.Cycles, uint64(4))
	test.ExpectEquality(t, rt.CallStack().Depth(), 0)

	// the runtime's own breakpoints were not used
	test.ExpectEquality(t, rt.Breakpoints().Len(), 0)
}

func TestStepOutInsideSubroutine(t *testing.T) {
	rt, q, c := newRuntime(t)

	const sub = minicore.ROMOrigin + 0x40

	p := minicore.NewProgram()
	p.Nop()
	p.BL(sub)
	after := p.Nop()
	spin := p.Here()
	p.B(spin)
	p.PadTo(sub)
	p.Add(2, 2, 1)
	p.Ret()
	test.DemandSuccess(t, rt.Load(p.ROM()))

	ctl := debugger.NewControls(rt, nil)

	// stop on the first instruction of the subroutine
	ctl.HandleAction(userinput.ActionStepInto)
	ctl.HandleAction(userinput.ActionStepInto)
	test.ExpectEquality(t, c.ExecAddress(), uint32(sub))
	test.DemandEquality(t, rt.CallStack().Depth(), 1)

	ctl.StepOut()
	test.ExpectEquality(t, rt.State().Running, true)
	q.Service(refresh)

	st := rt.State()
	test.ExpectEquality(t, st.Running, false)
	test.ExpectEquality(t, st.Halt, core.HaltBreakpoint)
	test.ExpectEquality(t, c.ExecAddress(), after)
	test.ExpectEquality(t, c.Reg(2), uint32(1))
	test.ExpectEquality(t, rt.CallStack().Depth(), 0)
}

func TestStepIRQ(t *testing.T) {
	rt, q, _ := newRuntime(t)
	test.DemandSuccess(t, rt.Load(minicore.DemoROM()))

	ctl := debugger.NewControls(rt, nil)
	ctl.HandleAction(userinput.ActionStepIRQ)
	q.Service(refresh)

	st := rt.State()
	test.ExpectEquality(t, st.Running, false)
	test.ExpectEquality(t, st.Halt, core.HaltIRQ)
	test.ExpectEquality(t, st.Cycles, uint64(minicore.VBlankCycle))
	test.ExpectEquality(t, st.LastDelta, uint32(minicore.VBlankCycle))
}

func TestRestart(t *testing.T) {
	rt, q, _ := newRuntime(t)
	test.DemandSuccess(t, rt.Load(minicore.DemoROM()))

	ctl := debugger.NewControls(rt, nil)
	ctl.HandleAction(userinput.ActionStepFrame)
	test.ExpectEquality(t, rt.State().Cycles, uint64(minicore.FrameCycles))

	ctl.HandleAction(userinput.ActionReset)
	test.ExpectEquality(t, rt.State().Cycles, uint64(0))
	test.ExpectEquality(t, rt.State().Running, true)
	q.Service(refresh)
	test.ExpectEquality(t, rt.State().Cycles, uint64(minicore.FrameCycles))

	// restarting a running runtime keeps it running
	ctl.Restart()
	test.ExpectEquality(t, rt.State().Cycles, uint64(0))
	test.ExpectEquality(t, rt.State().Running, true)
}

func TestKeyboard(t *testing.T) {
	rt, _, c := newRuntime(t)
	test.DemandSuccess(t, rt.Load(minicore.DemoROM()))

	ctl := debugger.NewControls(rt, nil)
	ctrl := userinput.NewControllers(userinput.DefaultKeymap())

	ctrl.HandleUserInput(userinput.EventKeyboard{Key: "KeyX", Down: true}, ctl)
	test.ExpectEquality(t, c.Keyinput(), uint16(0x3fe))
	ctrl.HandleUserInput(userinput.EventKeyboard{Key: "KeyX"}, ctl)
	test.ExpectEquality(t, c.Keyinput(), uint16(0x3ff))

	ctrl.HandleUserInput(userinput.EventKeyboard{Key: "F11", Down: true}, ctl)
	test.ExpectEquality(t, rt.State().Cycles, uint64(1))
}
