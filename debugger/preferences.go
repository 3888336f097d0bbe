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
	"time"

	"github.com/boyadbg/boyadbg/prefs"
)

// DefaultPrefsFile is the name of the preferences file in the resources
// directory.
const DefaultPrefsFile = "preferences"

// Preferences defines and collates all the preference values used by the
// runtime.
type Preferences struct {
	rt  *Runtime
	dsk *prefs.Disk

	// number of instructions decoded after every advance of the core
	DecodeDepth prefs.Int

	// depth limit of the call stack. zero means no limit
	CallStackMaxDepth prefs.Int

	// capacity of the disassembly cache. zero means no limit
	DisasmCacheSize prefs.Int

	// the FPS sampling interval in milliseconds
	FPSInterval prefs.Int

	// refresh rate for hosts that pace themselves. changes are forwarded to
	// the functions added with Runtime.OnRefreshRate()
	RefreshRate prefs.Float
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return "preferences are not saved to disk"
	}
	return p.dsk.String()
}

// newPreferences is the preferred method of initialisation for the
// Preferences type. If pth is empty then the preferences cannot be saved or
// loaded.
func newPreferences(rt *Runtime, pth string) (*Preferences, error) {
	p := &Preferences{rt: rt}

	p.DecodeDepth.SetRange(0, 64)
	p.CallStackMaxDepth.SetRange(0, 1<<20)
	p.DisasmCacheSize.SetRange(0, 1<<20)
	p.FPSInterval.SetRange(100, 10000)

	p.CallStackMaxDepth.SetHook(func(v prefs.Value) error {
		p.rt.callstack.SetMaxDepth(v.(int))
		return nil
	})
	p.DisasmCacheSize.SetHook(func(v prefs.Value) error {
		return p.rt.disasm.Resize(v.(int))
	})
	p.FPSInterval.SetHook(func(v prefs.Value) error {
		p.rt.fps.SetInterval(time.Duration(v.(int)) * time.Millisecond)
		return nil
	})
	p.RefreshRate.SetHook(func(v prefs.Value) error {
		for _, f := range p.rt.refreshRateHooks {
			f(float32(v.(float64)))
		}
		return nil
	})

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	if pth == "" {
		return p, nil
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("debugger.decodedepth", &p.DecodeDepth); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("callstack.maxdepth", &p.CallStackMaxDepth); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("disasm.cachesize", &p.DisasmCacheSize); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("limiter.fpsinterval", &p.FPSInterval); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("limiter.refreshrate", &p.RefreshRate); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	if err := p.DecodeDepth.Set(2); err != nil {
		return err
	}
	if err := p.CallStackMaxDepth.Set(1024); err != nil {
		return err
	}
	if err := p.DisasmCacheSize.Set(0); err != nil {
		return err
	}
	if err := p.FPSInterval.Set(1000); err != nil {
		return err
	}
	if err := p.RefreshRate.Set(60.0); err != nil {
		return err
	}
	return nil
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
