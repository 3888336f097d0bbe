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
	"github.com/boyadbg/boyadbg/core"
	"github.com/boyadbg/boyadbg/debugger/breakpoints"
	"github.com/boyadbg/boyadbg/debugger/govern"
	"github.com/boyadbg/boyadbg/logger"
	"github.com/boyadbg/boyadbg/userinput"
)

// Controls are the runtime operations that are bound to keys and commands.
// Every control that runs the core uses the same OnFrame function.
type Controls struct {
	rt *Runtime

	// called after every frame and after every discrete step
	OnFrame func(core.Core)
}

// NewControls is the preferred method of initialisation for the Controls type.
func NewControls(rt *Runtime, onFrame func(core.Core)) *Controls {
	return &Controls{
		rt:      rt,
		OnFrame: onFrame,
	}
}

func (c *Controls) stepAllowed() bool {
	st := c.rt.State()
	return st.RomLoaded && !st.Running
}

func (c *Controls) frame() {
	if c.OnFrame != nil {
		c.OnFrame(c.rt.core)
	}
}

// ToggleRun pauses the runtime if it is running, otherwise runs it with the
// runtime's breakpoints.
func (c *Controls) ToggleRun() {
	if c.rt.State().Running {
		c.rt.Pause()
		return
	}
	c.rt.Run(RunParams{OnFrame: c.OnFrame})
}

// Restart resets the core and runs it.
func (c *Controls) Restart() {
	if !c.rt.State().RomLoaded {
		return
	}
	c.rt.Reset()
	c.rt.Run(RunParams{OnFrame: c.OnFrame})
}

// Step the runtime by the specified amount.
func (c *Controls) Step(step govern.StepType) {
	if !c.stepAllowed() {
		return
	}
	c.rt.Step(step)
	c.frame()
}

// StepOut runs until the return address of the most recent subroutine call is
// reached. Does nothing if the call stack is empty.
func (c *Controls) StepOut() {
	if !c.stepAllowed() {
		return
	}
	top, ok := c.rt.callstack.Top()
	if !ok {
		logger.Log(c.rt, "runtime", "cannot step out with an empty call stack")
		return
	}
	c.rt.Run(RunParams{
		OnFrame:     c.OnFrame,
		Breakpoints: breakpoints.NewSet(top.Return),
	})
}

// StepIRQ runs until the core takes an interrupt or a breakpoint is reached.
func (c *Controls) StepIRQ() {
	if !c.stepAllowed() {
		return
	}
	c.rt.Run(RunParams{
		OnFrame: c.OnFrame,
		IRQ:     true,
	})
}

// UpdateKeypad implements the userinput.HandleInput interface.
func (c *Controls) UpdateKeypad(f func(uint16) uint16) {
	c.rt.UpdateKeypad(f)
}

// HandleAction implements the userinput.HandleInput interface.
func (c *Controls) HandleAction(a userinput.Action) {
	switch a {
	case userinput.ActionReset:
		c.Restart()
	case userinput.ActionToggleRun:
		c.ToggleRun()
	case userinput.ActionStepInto:
		c.Step(govern.StepInto)
	case userinput.ActionStepOut:
		c.StepOut()
	case userinput.ActionStepScanline:
		c.Step(govern.StepScanline)
	case userinput.ActionStepFrame:
		c.Step(govern.StepFrame)
	case userinput.ActionStepIRQ:
		c.StepIRQ()
	case userinput.ActionStop:
		if c.rt.State().Running {
			c.rt.Pause()
		}
	}
}
