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

// Package gui contains the parts of a window host that do not depend on a
// particular windowing library. The ebitenhost and sdlhost packages are the
// window hosts.
package gui

import (
	"fmt"

	"github.com/boyadbg/boyadbg/core"
	"github.com/boyadbg/boyadbg/debugger"
	"github.com/boyadbg/boyadbg/version"
)

// the number of bytes per pixel in a frame buffer
const pixelDepth = 4

// Frame is the buffer that a core draws into. The pixel format is RGBA with
// one byte per component.
type Frame struct {
	Width  int
	Height int
	Pixels []byte

	// the number of times Update() has been called
	updates int
}

// NewFrame is the preferred method of initialisation for the Frame type. The
// frame has the dimensions reported by the core.
func NewFrame(c core.Core) *Frame {
	w, h := core.FrameSize(c)
	return &Frame{
		Width:  w,
		Height: h,
		Pixels: make([]byte, w*h*pixelDepth),
	}
}

// Update the frame with the current picture of the core. Suitable for use as
// the OnFrame function of debugger.Controls.
func (f *Frame) Update(c core.Core) {
	c.WriteFrameBuffer(f.Pixels)
	f.updates++
}

// Updates returns the number of times the frame has been updated.
func (f *Frame) Updates() int {
	return f.updates
}

// Pitch is the number of bytes in one row of the frame.
func (f *Frame) Pitch() int {
	return f.Width * pixelDepth
}

// Title returns a window title for the execution state.
func Title(st debugger.ExecutionState) string {
	if !st.RomLoaded {
		return version.ApplicationName
	}
	if st.Running {
		return fmt.Sprintf("%s - running (%d fps)", version.ApplicationName, st.FPS)
	}
	return fmt.Sprintf("%s - %s", version.ApplicationName, st.State)
}

// Status returns a single line summary of the execution state, for drawing
// over the frame when the emulation is not running.
func Status(st debugger.ExecutionState, pc uint32) string {
	if !st.RomLoaded {
		return "no rom"
	}
	if st.Running {
		return ""
	}
	if st.Halt.Halted() {
		return fmt.Sprintf("%s at 0x%08x (%s)", st.State, pc, st.Halt)
	}
	return fmt.Sprintf("%s at 0x%08x", st.State, pc)
}
