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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/boyadbg/boyadbg/core/minicore"
	"github.com/boyadbg/boyadbg/debugger"
	"github.com/boyadbg/boyadbg/debugger/breakpoints"
	"github.com/boyadbg/boyadbg/debugger/terminal"
	"github.com/boyadbg/boyadbg/debugger/terminal/easyterm"
	"github.com/boyadbg/boyadbg/gui/ebitenhost"
	"github.com/boyadbg/boyadbg/gui/sdlhost"
	"github.com/boyadbg/boyadbg/limiter"
	"github.com/boyadbg/boyadbg/logger"
	"github.com/boyadbg/boyadbg/modalflag"
	"github.com/boyadbg/boyadbg/performance"
	"github.com/boyadbg/boyadbg/prefs"
	"github.com/boyadbg/boyadbg/resources"
	"github.com/boyadbg/boyadbg/scheduler"
	"github.com/boyadbg/boyadbg/statsview"
	"github.com/boyadbg/boyadbg/version"
)

// size of the queue of functions pushed from other goroutines
const pushQueueSize = 16

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the mode selected by the arguments. returns the exit value of the
// program
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "SDL", "DEBUG", "PERFORMANCE")
	md.AdditionalHelp("a rom file can be specified after the flags. the demo rom is used otherwise")
	showVersion := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return 0
	}

	switch md.Mode() {
	case "RUN":
		err = window(md, output, false)
	case "SDL":
		err = window(md, output, true)
	case "DEBUG":
		err = debug(md, output)
	case "PERFORMANCE":
		err = perform(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// flags common to the modes that create a runtime
type options struct {
	breaks    *modalflag.List
	prefs     *string
	log       *bool
	statsview *bool
	bios      *string
	fps       *float64
}

func addOptions(md *modalflag.Modes) options {
	opts := options{
		breaks:    md.AddList("break", "initial breakpoint addresses"),
		prefs:     md.AddString("prefs", "", "preference values. for example: debugger.decodedepth::4"),
		log:       md.AddBool("log", false, "echo debugging log to stdout"),
		statsview: md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address)),
		bios:      md.AddString("bios", "", "bios file to load before the rom"),
		fps:       md.AddFloat64("fps", 0, "refresh rate. zero uses the refresh rate preference"),
	}
	return opts
}

// create a runtime for the selected mode. the rom is loaded from the first
// remaining argument or the demo rom is used
func setup(md *modalflag.Modes, output io.Writer, opts options, q *scheduler.Queue) (*debugger.Runtime, error) {
	if len(md.RemainingArgs()) > 1 {
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	if *opts.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *opts.statsview {
		if err := statsview.Launch(output); err != nil {
			return nil, err
		}
	}

	if *opts.prefs != "" {
		prefs.PushCommandLineStack(*opts.prefs)
	}

	pth, err := resources.JoinPath(debugger.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	rt, err := debugger.NewRuntime(minicore.NewCore(), q, pth)
	if err != nil {
		return nil, err
	}

	if *opts.prefs != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "boyadbg", "unused preferences: %s", unused)
		}
	}

	if *opts.fps > 0 {
		if err := rt.Prefs.RefreshRate.Set(*opts.fps); err != nil {
			return nil, err
		}
	}

	if *opts.bios != "" {
		data, err := os.ReadFile(*opts.bios)
		if err != nil {
			return nil, err
		}
		if err := rt.LoadBIOS(data); err != nil {
			return nil, err
		}
	}

	rom := minicore.DemoROM()
	if fn := md.GetArg(0); fn != "" {
		rom, err = os.ReadFile(fn)
		if err != nil {
			return nil, err
		}
	}
	if err := rt.Load(rom); err != nil {
		return nil, err
	}

	for _, s := range opts.breaks.Values() {
		addr, err := breakpoints.ParseAddress(s)
		if err != nil {
			return nil, err
		}
		rt.Breakpoints().Add(addr)
	}

	return rt, nil
}

// host is implemented by the window hosts
type host interface {
	Controls() *debugger.Controls
	Run() error
}

func window(md *modalflag.Modes, output io.Writer, useSDL bool) error {
	md.NewMode()
	opts := addOptions(md)
	scale := md.AddInt("scale", 3, "window scaling")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	q := scheduler.NewQueue(pushQueueSize)

	rt, err := setup(md, output, opts, q)
	if err != nil {
		return err
	}

	var h host
	if useSDL {
		s, err := sdlhost.NewHost(rt, q, *scale)
		if err != nil {
			return err
		}
		defer s.Destroy()
		h = s
	} else {
		h = ebitenhost.NewHost(rt, q, *scale)
	}

	h.Controls().ToggleRun()

	return h.Run()
}

func debug(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	opts := addOptions(md)
	script := md.AddString("script", "", "script of terminal commands to run before reading input")
	color := md.AddBool("color", true, "color terminal output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	q := scheduler.NewQueue(pushQueueSize)

	rt, err := setup(md, output, opts, q)
	if err != nil {
		return err
	}

	trm := terminal.NewTerminal(rt, debugger.NewControls(rt, nil), output)

	et := &easyterm.EasyTerm{}
	if err := et.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	defer et.CleanUp()
	trm.SetEasyTerm(et)
	trm.Interactive = et.IsInteractive()
	trm.Color = *color && et.IsInteractive()

	if *script != "" {
		if err := trm.RunScript(*script); err != nil {
			return err
		}
		if trm.Quit() {
			return nil
		}
	}

	// ctrl-c halts a running emulation. quits otherwise
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)
	go func() {
		for range intChan {
			q.PushFunction(func() {
				if rt.State().Running {
					rt.Pause()
				} else {
					trm.Execute("QUIT")
				}
			})
		}
	}()

	lmtr := limiter.NewLimiter(float32(rt.Prefs.RefreshRate.Get().(float64)))
	defer lmtr.Stop()
	rt.OnRefreshRate(lmtr.SetRefreshRate)

	return trm.Run(os.Stdin, q, lmtr)
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	uncapped := md.AddBool("uncapped", true, "run at the fastest speed possible")
	duration := md.AddString("duration", "5s", "run duration (with an additional leadtime)")
	leadtime := md.AddDuration("leadtime", performance.Leadtime, "run time before measurement starts")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	rom := minicore.DemoROM()
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		rom, err = os.ReadFile(md.GetArg(0))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	performance.Leadtime = *leadtime

	return performance.Check(output, prf, minicore.NewCore(), rom, *uncapped, *duration)
}
