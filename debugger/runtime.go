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
	"slices"
	"sync/atomic"
	"time"

	"github.com/boyadbg/boyadbg/core"
	"github.com/boyadbg/boyadbg/curated"
	"github.com/boyadbg/boyadbg/debugger/breakpoints"
	"github.com/boyadbg/boyadbg/debugger/callstack"
	"github.com/boyadbg/boyadbg/debugger/govern"
	"github.com/boyadbg/boyadbg/disassembly"
	"github.com/boyadbg/boyadbg/limiter"
	"github.com/boyadbg/boyadbg/logger"
	"github.com/boyadbg/boyadbg/scheduler"
	"github.com/boyadbg/boyadbg/userinput"
)

// NoBIOSSupport is returned by LoadBIOS() if the core does not accept a BIOS
// image.
const NoBIOSSupport = "debugger: core does not support a BIOS"

// CannotLoad is returned by Load() and LoadBIOS() if the core rejects the data.
const CannotLoad = "debugger: cannot load %s: %v"

// RunParams specifies how a call to Run() proceeds.
type RunParams struct {
	// called after every frame, including the frame on which the run halts
	OnFrame func(core.Core)

	// the addresses at which the run should halt. if nil then the runtime's
	// own breakpoints are used
	Breakpoints *breakpoints.Set

	// halt after the core takes an interrupt
	IRQ bool
}

// Runtime is the controller for an emulation core.
type Runtime struct {
	core   core.Core
	frames scheduler.Requester

	Prefs *Preferences

	breakpoints *breakpoints.Set
	callstack   *callstack.Tracker
	disasm      *disassembly.Cache
	fps         *limiter.FrameCounter

	// govern.State. written only by the goroutine that owns the runtime
	state atomic.Value

	// ExecutionState. the most recently published snapshot
	snapshot atomic.Value

	romLoaded    bool
	cycles       uint64
	lastDelta    uint32
	hasLastDelta bool
	keypad       uint16
	halt         core.HaltReason

	// incremented by every call to Run() and by anything that ends a run.
	// a tick from a previous generation never advances the core
	generation int

	quiet atomic.Bool

	// called when the refresh rate preference changes
	refreshRateHooks []func(float32)
}

// NewRuntime is the preferred method of initialisation for the Runtime type.
// The preferences file is loaded from prefsFile. If prefsFile is empty the
// preferences are not saved to disk.
func NewRuntime(c core.Core, frames scheduler.Requester, prefsFile string) (*Runtime, error) {
	rt := &Runtime{
		core:        c,
		frames:      frames,
		breakpoints: breakpoints.NewSet(),
		callstack:   callstack.NewTracker(callstack.DefaultMaxDepth),
		fps:         limiter.NewFrameCounter(limiter.DefaultInterval),
		keypad:      userinput.KeypadReleased,
	}

	var err error

	rt.disasm, err = disassembly.NewCache(0)
	if err != nil {
		return nil, fmt.Errorf("debugger: %w", err)
	}

	rt.Prefs, err = newPreferences(rt, prefsFile)
	if err != nil {
		return nil, fmt.Errorf("debugger: %w", err)
	}

	rt.state.Store(govern.Idle)
	rt.publish()

	return rt, nil
}

// AllowLogging implements the logger.Permission interface.
func (rt *Runtime) AllowLogging() bool {
	return !rt.quiet.Load()
}

// Quiet suppresses log entries from the runtime.
func (rt *Runtime) Quiet(quiet bool) {
	rt.quiet.Store(quiet)
}

// Core returns the emulation core. The stepping functions of the core should
// not be called directly.
func (rt *Runtime) Core() core.Core {
	return rt.core
}

// Breakpoints returns the runtime's breakpoints. Breakpoints are kept when a
// ROM is unloaded or the runtime is reset.
func (rt *Runtime) Breakpoints() *breakpoints.Set {
	return rt.breakpoints
}

// CallStack returns the call stack tracker.
func (rt *Runtime) CallStack() *callstack.Tracker {
	return rt.callstack
}

// Disasm returns the disassembly cache.
func (rt *Runtime) Disasm() *disassembly.Cache {
	return rt.disasm
}

// clear everything that is derived from the execution of the current ROM
func (rt *Runtime) clearDerived() {
	rt.disasm.Clear()
	rt.callstack.Clear()
	rt.fps.Reset()
	rt.hasLastDelta = false
	rt.lastDelta = 0
	rt.halt = core.HaltNone
	rt.keypad = userinput.KeypadReleased
}

// Load the ROM data into the core and boot it. The runtime is paused after a
// successful load. If the core rejects the ROM the runtime is left idle.
func (rt *Runtime) Load(rom []byte) error {
	rt.generation++

	rt.core.Reset()
	if err := rt.core.LoadROM(rom); err != nil {
		rt.romLoaded = false
		rt.clearDerived()
		rt.cycles = 0
		rt.setState(govern.Idle)
		rt.publish()
		logger.Log(rt, "runtime", err)
		return curated.Errorf(CannotLoad, "rom", err)
	}
	rt.core.Boot()

	rt.romLoaded = true
	rt.clearDerived()
	rt.core.SetKeyinput(rt.keypad)
	rt.cycles = rt.core.Cycles()
	rt.setState(govern.Paused)
	rt.publish()

	logger.Logf(rt, "runtime", "loaded rom (%d bytes)", len(rom))

	return nil
}

// LoadBIOS forwards the BIOS data to the core. Returns an error if the core
// does not support a BIOS.
func (rt *Runtime) LoadBIOS(bios []byte) error {
	l, ok := rt.core.(core.BIOSLoader)
	if !ok {
		return curated.Errorf(NoBIOSSupport)
	}
	if err := l.LoadBIOS(bios); err != nil {
		logger.Log(rt, "runtime", err)
		return curated.Errorf(CannotLoad, "bios", err)
	}
	return nil
}

// Unload the ROM. The runtime is made idle. Breakpoints are kept.
func (rt *Runtime) Unload() {
	rt.generation++
	rt.romLoaded = false
	rt.clearDerived()
	rt.cycles = 0
	rt.setState(govern.Idle)
	rt.publish()
}

// Reset the core and boot it again. The running state of the runtime is not
// changed. Does nothing if no ROM is loaded.
func (rt *Runtime) Reset() {
	if !rt.romLoaded {
		logger.Log(rt, "runtime", "cannot reset without a rom")
		return
	}

	rt.core.Reset()
	rt.core.Boot()
	rt.clearDerived()
	rt.core.SetKeyinput(rt.keypad)
	rt.cycles = rt.core.Cycles()
	rt.publish()
}

// Pause a running runtime. The core stops advancing from the next tick.
func (rt *Runtime) Pause() {
	if !rt.state.Load().(govern.State).IsRunning() {
		logger.Log(rt, "runtime", "cannot pause when not running")
		return
	}
	rt.generation++
	rt.setState(govern.Paused)
	rt.publish()
}

// Run the core until Pause() is called or a halt condition is met. Does
// nothing if the runtime is already running or if no ROM is loaded.
func (rt *Runtime) Run(params RunParams) {
	if !rt.romLoaded {
		logger.Log(rt, "runtime", "cannot run without a rom")
		return
	}
	if rt.state.Load().(govern.State).IsRunning() {
		logger.Log(rt, "runtime", "already running")
		return
	}

	if params.Breakpoints == nil {
		params.Breakpoints = rt.breakpoints
	}

	rt.generation++
	rt.halt = core.HaltNone
	rt.fps.Reset()
	rt.setState(govern.Running)
	rt.publish()

	rt.schedule(rt.generation, params)
}

func (rt *Runtime) schedule(generation int, params RunParams) {
	rt.frames.RequestFrame(func(elapsed time.Duration) {
		rt.tick(generation, params, elapsed)
	})
}

// a single iteration of the run loop. called on the display refresh
func (rt *Runtime) tick(generation int, params RunParams, elapsed time.Duration) {
	if generation != rt.generation || !rt.state.Load().(govern.State).IsRunning() {
		return
	}

	rt.fps.Tick(elapsed)

	var halt core.HaltReason

	// breakpoint addresses are collected on every tick so that changes made
	// while running take effect on the next frame
	if params.Breakpoints.Len() > 0 || params.IRQ {
		before := rt.core.Cycles()
		halt = rt.core.StepFrameWithHooks(params.Breakpoints.Addresses(), params.IRQ)
		rt.cycles = rt.core.Cycles()
		rt.lastDelta = uint32(rt.cycles - before)
		rt.hasLastDelta = true
	} else {
		rt.core.StepFrame()
		rt.cycles = rt.core.Cycles()
		rt.hasLastDelta = false
	}

	rt.observe()

	// recorded before OnFrame so that the reason survives a pause made by
	// the frame function
	if halt.Halted() {
		rt.halt = halt
	}

	if params.OnFrame != nil {
		params.OnFrame(rt.core)

		// the OnFrame function may have paused or restarted the runtime
		if generation != rt.generation {
			rt.publish()
			return
		}
	}

	if halt.Halted() {
		rt.generation++
		rt.setState(govern.Paused)
		rt.publish()
		logger.Logf(rt, "runtime", "halted on %s at %s", halt,
			breakpoints.FormatAddress(rt.core.ExecAddress()))
		return
	}

	rt.publish()
	rt.schedule(generation, params)
}

// Step the core by the specified amount. Does nothing if the runtime is
// running or if no ROM is loaded.
func (rt *Runtime) Step(step govern.StepType) {
	if !rt.romLoaded {
		logger.Log(rt, "runtime", "cannot step without a rom")
		return
	}
	if rt.state.Load().(govern.State).IsRunning() {
		logger.Log(rt, "runtime", "cannot step when running")
		return
	}

	if !slices.Contains(govern.StepTypeList, step) {
		logger.Logf(rt, "runtime", "unknown step type: %d", step)
		return
	}

	rt.setState(govern.Stepping)

	before := rt.core.Cycles()

	switch step {
	case govern.StepInto:
		rt.lastDelta = rt.core.DebugSyncedStep()
	case govern.StepScanline:
		rt.core.StepScanline()
		rt.lastDelta = uint32(rt.core.Cycles() - before)
	case govern.StepFrame:
		rt.core.StepFrame()
		rt.lastDelta = uint32(rt.core.Cycles() - before)
	}

	rt.cycles = rt.core.Cycles()
	rt.hasLastDelta = true
	rt.halt = core.HaltNone

	rt.observe()
	rt.setState(govern.Paused)
	rt.publish()
}

// OnRefreshRate adds a function to be called whenever the refresh rate
// preference changes. Hosts that pace themselves use this to follow changes
// made while running.
func (rt *Runtime) OnRefreshRate(f func(refreshRate float32)) {
	rt.refreshRateHooks = append(rt.refreshRateHooks, f)
}

// UpdateKeypad applies the transform to the keypad mask and forwards the
// result to the core.
func (rt *Runtime) UpdateKeypad(f func(uint16) uint16) {
	rt.keypad = f(rt.keypad) & userinput.KeypadMask
	rt.core.SetKeyinput(rt.keypad)
	rt.publish()
}

// observe the core after it has advanced
func (rt *Runtime) observe() {
	rt.callstack.Observe(rt.core)
	rt.decode()
}

func (rt *Runtime) decode() {
	if depth := rt.Prefs.DecodeDepth.Get().(int); depth > 0 {
		rt.disasm.Decode(rt.core, depth)
	}
}
