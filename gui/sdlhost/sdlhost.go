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

// Package sdlhost is a window host for the debugger runtime using SDL. The
// host owns the frame loop: the scheduler queue is serviced once per refresh
// as measured by a limiter.
//
// SDL must be serviced from the main thread. NewHost() and Run() should be
// called from the main goroutine.
package sdlhost

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/boyadbg/boyadbg/debugger"
	"github.com/boyadbg/boyadbg/gui"
	"github.com/boyadbg/boyadbg/limiter"
	"github.com/boyadbg/boyadbg/scheduler"
	"github.com/boyadbg/boyadbg/userinput"
)

// Host is an SDL window showing the picture of the core.
type Host struct {
	rt   *debugger.Runtime
	q    *scheduler.Queue
	ctl  *debugger.Controls
	lmtr *limiter.Limiter

	frame *gui.Frame
	input *gui.Input

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	title string
}

// NewHost is the preferred method of initialisation for the Host type. The
// window is the size of the frame multiplied by scale.
func NewHost(rt *debugger.Runtime, q *scheduler.Queue, scale int) (*Host, error) {
	runtime.LockOSThread()

	if scale < 1 {
		scale = 1
	}

	h := &Host{
		rt:    rt,
		q:     q,
		frame: gui.NewFrame(rt.Core()),
		lmtr:  limiter.NewLimiter(gui.RefreshRate(rt)),
	}
	h.ctl = debugger.NewControls(rt, h.frame.Update)
	h.input = gui.NewInput(userinput.DefaultKeymap(), h.ctl)

	// the picture is not updated until the core advances
	h.frame.Update(rt.Core())

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdlhost: %w", err)
	}

	h.window, err = sdl.CreateWindow(gui.Title(rt.State()),
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(h.frame.Width*scale), int32(h.frame.Height*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		h.Destroy()
		return nil, fmt.Errorf("sdlhost: %w", err)
	}

	h.renderer, err = sdl.CreateRenderer(h.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		h.Destroy()
		return nil, fmt.Errorf("sdlhost: %w", err)
	}

	h.texture, err = h.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(h.frame.Width), int32(h.frame.Height))
	if err != nil {
		h.Destroy()
		return nil, fmt.Errorf("sdlhost: %w", err)
	}

	rt.OnRefreshRate(h.lmtr.SetRefreshRate)

	return h, nil
}

// Controls returns the controls used by the host. The OnFrame function of the
// controls updates the window.
func (h *Host) Controls() *debugger.Controls {
	return h.ctl
}

// Destroy the window and shut down SDL.
func (h *Host) Destroy() {
	h.lmtr.Stop()
	if h.texture != nil {
		_ = h.texture.Destroy()
		h.texture = nil
	}
	if h.renderer != nil {
		_ = h.renderer.Destroy()
		h.renderer = nil
	}
	if h.window != nil {
		_ = h.window.Destroy()
		h.window = nil
	}
	sdl.Quit()
}

// Run the host until the window is closed.
func (h *Host) Run() error {
	for {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch ev := ev.(type) {
			case *sdl.QuitEvent:
				return nil

			case *sdl.KeyboardEvent:
				h.input.Key(keyName(ev.Keysym.Scancode), ev.Type == sdl.KEYDOWN, keyMod())

			case *sdl.WindowEvent:
				if ev.Event == sdl.WINDOWEVENT_FOCUS_LOST {
					h.input.ReleaseAll()
				}
			}
		}

		h.q.Service(h.lmtr.Wait())
		h.lmtr.MeasureActual()

		if err := h.render(); err != nil {
			return fmt.Errorf("sdlhost: %w", err)
		}
	}
}

func (h *Host) render() error {
	if title := gui.Title(h.rt.State()); title != h.title {
		h.window.SetTitle(title)
		h.title = title
	}

	err := h.texture.Update(nil, h.frame.Pixels, h.frame.Pitch())
	if err != nil {
		return err
	}

	err = h.renderer.Copy(h.texture, nil, nil)
	if err != nil {
		return err
	}

	h.renderer.Present()

	return nil
}
