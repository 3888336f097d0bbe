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

// Package ebitenhost is a window host for the debugger runtime using ebiten.
// Ebiten calls Update() at a fixed rate. The scheduler queue is serviced on
// every call so the runtime advances one frame per update.
//
// The status of the runtime is drawn over the picture whenever the runtime is
// not running.
package ebitenhost

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/boyadbg/boyadbg/debugger"
	"github.com/boyadbg/boyadbg/gui"
	"github.com/boyadbg/boyadbg/scheduler"
	"github.com/boyadbg/boyadbg/userinput"
)

// Host implements the ebiten.Game interface.
type Host struct {
	rt  *debugger.Runtime
	q   *scheduler.Queue
	ctl *debugger.Controls

	frame *gui.Frame
	input *gui.Input
	tex   *ebiten.Image

	scale int
	last  time.Time
	keys  []ebiten.Key
	title string
	focus bool
}

// NewHost is the preferred method of initialisation for the Host type. The
// window is the size of the frame multiplied by scale.
func NewHost(rt *debugger.Runtime, q *scheduler.Queue, scale int) *Host {
	if scale < 1 {
		scale = 1
	}

	h := &Host{
		rt:    rt,
		q:     q,
		frame: gui.NewFrame(rt.Core()),
		scale: scale,
		focus: true,
	}
	h.ctl = debugger.NewControls(rt, h.frame.Update)
	h.input = gui.NewInput(userinput.DefaultKeymap(), h.ctl)

	h.frame.Update(rt.Core())

	rt.OnRefreshRate(func(refreshRate float32) {
		ebiten.SetTPS(tps(refreshRate))
	})

	return h
}

// Controls returns the controls used by the host. The OnFrame function of the
// controls updates the window.
func (h *Host) Controls() *debugger.Controls {
	return h.ctl
}

// Run the host until the window is closed.
func (h *Host) Run() error {
	h.title = gui.Title(h.rt.State())
	ebiten.SetWindowTitle(h.title)
	ebiten.SetWindowSize(h.frame.Width*h.scale, h.frame.Height*h.scale)
	ebiten.SetTPS(tps(gui.RefreshRate(h.rt)))
	h.last = time.Now()
	return ebiten.RunGame(h)
}

// Update implements the ebiten.Game interface.
func (h *Host) Update() error {
	now := time.Now()
	elapsed := now.Sub(h.last)
	h.last = now

	if focus := ebiten.IsFocused(); focus != h.focus {
		h.focus = focus
		if !focus {
			h.input.ReleaseAll()
		}
	}

	mod := keyMod()

	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	for _, k := range h.keys {
		if name, ok := keyNames[k]; ok {
			h.input.Key(name, true, mod)
		}
	}

	h.keys = inpututil.AppendJustReleasedKeys(h.keys[:0])
	for _, k := range h.keys {
		if name, ok := keyNames[k]; ok {
			h.input.Key(name, false, mod)
		}
	}

	h.q.Service(elapsed)

	if title := gui.Title(h.rt.State()); title != h.title {
		ebiten.SetWindowTitle(title)
		h.title = title
	}

	return nil
}

// Draw implements the ebiten.Game interface.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.tex == nil {
		h.tex = ebiten.NewImage(h.frame.Width, h.frame.Height)
	}
	h.tex.WritePixels(h.frame.Pixels)
	screen.DrawImage(h.tex, nil)

	if s := gui.Status(h.rt.State(), h.rt.Core().ExecAddress()); s != "" {
		ebitenutil.DebugPrint(screen, s)
	}
}

// ticks per second for the refresh rate. ebiten does not accept zero
func tps(refreshRate float32) int {
	if refreshRate < 1 {
		return ebiten.DefaultTPS
	}
	return int(refreshRate + 0.5)
}

// Layout implements the ebiten.Game interface.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.frame.Width, h.frame.Height
}
