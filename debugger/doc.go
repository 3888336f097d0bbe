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

// Package debugger is the runtime controller for an emulation core. It owns
// the only references to the core's stepping functions and arbitrates between
// continuous running, which is paced by the display refresh of the host, and
// discrete stepping.
//
// The Runtime type is created with NewRuntime(). The host supplies the core
// and an implementation of scheduler.Requester. A ROM is loaded with Load()
// after which Run() and Step() can be used:
//
//	q := scheduler.NewQueue(16)
//	rt, _ := debugger.NewRuntime(minicore.NewCore(), q, "")
//	_ = rt.Load(rom)
//	rt.Run(debugger.RunParams{OnFrame: draw})
//
//	for {
//		q.Service(elapsed)
//	}
//
// Each call to Run() schedules a tick on the next display refresh. Every tick
// advances the core by one frame and then schedules the next tick, until the
// runtime is paused or the core reports that a breakpoint has been reached.
//
// After every advance of the core the call stack tracker observes the core
// and the disassembly cache is updated. The current state of the runtime is
// available as a snapshot with the State() function. The snapshot can be read
// from any goroutine.
//
// The Controls type wraps the Runtime with the operations that are bound to
// keys and terminal commands, such as StepOut() and StepIRQ().
package debugger
