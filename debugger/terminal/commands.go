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

package terminal

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/boyadbg/boyadbg/curated"
	"github.com/boyadbg/boyadbg/debugger/breakpoints"
	"github.com/boyadbg/boyadbg/debugger/govern"
	"github.com/boyadbg/boyadbg/disassembly"
	"github.com/boyadbg/boyadbg/logger"
	"github.com/boyadbg/boyadbg/prefs"
	"github.com/boyadbg/boyadbg/userinput"
)

// Curated error patterns.
const (
	UnknownCommand  = "terminal: unknown command (%s)"
	MissingArgument = "terminal: %s requires %s"
	InvalidArgument = "terminal: invalid argument for %s (%s)"
	NoROM           = "terminal: no rom loaded"
	ScriptDepth     = "terminal: scripts nested too deeply (%s)"
)

// the maximum number of scripts being replayed at once
const maxScriptDepth = 8

const defaultDisasmCount = 8

type command struct {
	name string
	args string
	help string
	fn   func(trm *Terminal, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{"RUN", "", "run until paused or halted", cmdRun},
		{"PAUSE", "", "pause a running program", cmdPause},
		{"STEP", "[INTO|SCANLINE|FRAME]", "step by the given amount", cmdStep},
		{"STEPOUT", "", "run until the current subroutine returns", cmdStepOut},
		{"STEPIRQ", "", "run until an interrupt is taken", cmdStepIRQ},
		{"RESET", "", "reset the core", cmdReset},
		{"BREAK", "[address...]", "add breakpoints or list them", cmdBreak},
		{"DROP", "address|ALL", "remove breakpoints", cmdDrop},
		{"LIST", "", "list breakpoints", cmdList},
		{"STACK", "", "show the call stack", cmdStack},
		{"DISASM", "[count]", "decode instructions from the execution address", cmdDisasm},
		{"GREP", "[-c] [MNEMONIC|OPERAND] text", "search the disassembly", cmdGrep},
		{"STATE", "", "show the runtime state", cmdState},
		{"KEY", "name [UP]", "press or release a keypad key", cmdKey},
		{"KEYS", "", "enter key mode", cmdKeys},
		{"PREFS", "[SAVE|DEFAULTS|SET key value]", "show or change preferences", cmdPrefs},
		{"LOG", "[count]", "show recent log entries", cmdLog},
		{"MEMVIZ", "filename", "write the runtime state as a graphviz file", cmdMemviz},
		{"SCRIPT", "RECORD filename|END|filename", "record commands to a script or replay a script", cmdScript},
		{"HELP", "[command]", "list commands", cmdHelp},
		{"QUIT", "", "leave the debugger", cmdQuit},
	}
}

func lookup(name string) (command, bool) {
	i := slices.IndexFunc(commands, func(c command) bool {
		return c.name == name
	})
	if i < 0 {
		return command{}, false
	}
	return commands[i], true
}

func (trm *Terminal) requireROM() error {
	if !trm.rt.State().RomLoaded {
		return curated.Errorf(NoROM)
	}
	return nil
}

func (trm *Terminal) printPipeline() {
	c := trm.rt.Core()
	for i, e := range trm.rt.Disasm().Pipeline(c.ExecAddress(), c.InstructionSize()) {
		marker := " "
		if i == 0 {
			marker = ">"
		}
		trm.printf(StyleFeedback, "%s %s", marker, e)
	}
}

func cmdRun(trm *Terminal, _ []string) error {
	if err := trm.requireROM(); err != nil {
		return err
	}
	if trm.rt.State().Running {
		trm.TermPrintLine(StyleFeedback, "already running")
		return nil
	}
	trm.ctl.ToggleRun()
	return nil
}

func cmdPause(trm *Terminal, _ []string) error {
	if !trm.rt.State().Running {
		trm.TermPrintLine(StyleFeedback, "not running")
		return nil
	}
	trm.rt.Pause()
	trm.printPipeline()
	return nil
}

func cmdStep(trm *Terminal, args []string) error {
	if err := trm.requireROM(); err != nil {
		return err
	}

	step := govern.StepInto
	if len(args) > 0 {
		i := slices.IndexFunc(govern.StepTypeList, func(s govern.StepType) bool {
			return strings.EqualFold(s.String(), args[0])
		})
		if i < 0 {
			return curated.Errorf(InvalidArgument, "STEP", args[0])
		}
		step = govern.StepTypeList[i]
	}

	if trm.rt.State().Running {
		trm.TermPrintLine(StyleFeedback, "cannot step while running")
		return nil
	}

	trm.ctl.Step(step)
	trm.printPipeline()
	return nil
}

func cmdStepOut(trm *Terminal, _ []string) error {
	if err := trm.requireROM(); err != nil {
		return err
	}
	if trm.rt.CallStack().Depth() == 0 {
		trm.TermPrintLine(StyleFeedback, "call stack is empty")
		return nil
	}
	trm.ctl.StepOut()
	return nil
}

func cmdStepIRQ(trm *Terminal, _ []string) error {
	if err := trm.requireROM(); err != nil {
		return err
	}
	trm.ctl.StepIRQ()
	return nil
}

func cmdReset(trm *Terminal, _ []string) error {
	if err := trm.requireROM(); err != nil {
		return err
	}
	trm.rt.Reset()
	return nil
}

func cmdBreak(trm *Terminal, args []string) error {
	if len(args) == 0 {
		return cmdList(trm, nil)
	}

	for _, a := range args {
		addr, err := breakpoints.ParseAddress(a)
		if err != nil {
			return err
		}
		if trm.rt.Breakpoints().Add(addr) {
			trm.printf(StyleFeedback, "breakpoint added at %s", breakpoints.FormatAddress(addr))
		} else {
			trm.printf(StyleFeedback, "breakpoint already exists at %s", breakpoints.FormatAddress(addr))
		}
	}

	return nil
}

func cmdDrop(trm *Terminal, args []string) error {
	if len(args) == 0 {
		return curated.Errorf(MissingArgument, "DROP", "an address or ALL")
	}

	if strings.EqualFold(args[0], "ALL") {
		trm.rt.Breakpoints().Clear()
		trm.TermPrintLine(StyleFeedback, "all breakpoints dropped")
		return nil
	}

	for _, a := range args {
		addr, err := breakpoints.ParseAddress(a)
		if err != nil {
			return err
		}
		if trm.rt.Breakpoints().Remove(addr) {
			trm.printf(StyleFeedback, "breakpoint dropped at %s", breakpoints.FormatAddress(addr))
		} else {
			trm.printf(StyleFeedback, "no breakpoint at %s", breakpoints.FormatAddress(addr))
		}
	}

	return nil
}

func cmdList(trm *Terminal, _ []string) error {
	trm.printLines(StyleFeedback, trm.rt.Breakpoints().String())
	return nil
}

func cmdStack(trm *Terminal, _ []string) error {
	cs := trm.rt.CallStack()
	trm.printLines(StyleFeedback, cs.String())
	if n := cs.Overflow(); n > 0 {
		trm.printf(StyleFeedback, "(%d older entries dropped)", n)
	}
	return nil
}

func cmdDisasm(trm *Terminal, args []string) error {
	if err := trm.requireROM(); err != nil {
		return err
	}

	count := defaultDisasmCount
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return curated.Errorf(InvalidArgument, "DISASM", args[0])
		}
		count = n
	}

	for _, e := range trm.rt.Disasm().Decode(trm.rt.Core(), count) {
		trm.TermPrintLine(StyleFeedback, e.String())
	}

	return nil
}

func cmdGrep(trm *Terminal, args []string) error {
	var caseSensitive bool
	scope := disassembly.GrepAll

options:
	for len(args) > 0 {
		switch strings.ToUpper(args[0]) {
		case "-C":
			caseSensitive = true
		case "MNEMONIC":
			scope = disassembly.GrepMnemonic
		case "OPERAND":
			scope = disassembly.GrepOperand
		default:
			break options
		}
		args = args[1:]
	}

	if len(args) == 0 {
		return curated.Errorf(MissingArgument, "GREP", "search text")
	}

	n := trm.rt.Disasm().Grep(trm.output, scope, strings.Join(args, " "), caseSensitive)
	trm.printf(StyleFeedback, "%d matches", n)
	return nil
}

func cmdState(trm *Terminal, _ []string) error {
	trm.TermPrintLine(StyleFeedback, trm.rt.State().String())
	keys := userinput.ActiveKeys(trm.rt.State().Keypad)
	if len(keys) > 0 {
		trm.printf(StyleFeedback, "pressed: %s", strings.Join(keys, ", "))
	}
	return nil
}

func cmdKey(trm *Terminal, args []string) error {
	if len(args) == 0 {
		return curated.Errorf(MissingArgument, "KEY", "a key name")
	}

	i := slices.IndexFunc(userinput.KeyList, func(k userinput.Key) bool {
		return strings.EqualFold(k.String(), args[0])
	})
	if i < 0 {
		return curated.Errorf(InvalidArgument, "KEY", args[0])
	}
	k := userinput.KeyList[i]

	if len(args) > 1 {
		if !strings.EqualFold(args[1], "UP") {
			return curated.Errorf(InvalidArgument, "KEY", args[1])
		}
		trm.rt.UpdateKeypad(userinput.Release(k))
		return nil
	}

	trm.rt.UpdateKeypad(userinput.Press(k))
	return nil
}

func cmdKeys(trm *Terminal, _ []string) error {
	if err := trm.requireROM(); err != nil {
		return err
	}
	trm.TermPrintLine(StyleFeedback, "key mode started. press q to leave")
	trm.enterKeyMode()
	return nil
}

func cmdPrefs(trm *Terminal, args []string) error {
	p := trm.rt.Prefs

	if len(args) == 0 {
		trm.printLines(StyleFeedback, p.String())
		return nil
	}

	switch strings.ToUpper(args[0]) {
	case "SAVE":
		return p.Save()
	case "DEFAULTS":
		return p.SetDefaults()
	case "SET":
		if len(args) < 3 {
			return curated.Errorf(MissingArgument, "PREFS SET", "a key and a value")
		}
		v := map[string]interface {
			Set(prefs.Value) error
		}{
			"debugger.decodedepth": &p.DecodeDepth,
			"callstack.maxdepth":   &p.CallStackMaxDepth,
			"disasm.cachesize":     &p.DisasmCacheSize,
			"limiter.fpsinterval":  &p.FPSInterval,
			"limiter.refreshrate":  &p.RefreshRate,
		}[strings.ToLower(args[1])]
		if v == nil {
			return curated.Errorf(InvalidArgument, "PREFS SET", args[1])
		}
		return v.Set(args[2])
	}

	return curated.Errorf(InvalidArgument, "PREFS", args[0])
}

func cmdLog(trm *Terminal, args []string) error {
	n := 10
	if len(args) > 0 {
		var err error
		n, err = strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return curated.Errorf(InvalidArgument, "LOG", args[0])
		}
	}
	logger.Tail(trm.output, n)
	return nil
}

func cmdMemviz(trm *Terminal, args []string) error {
	if len(args) == 0 {
		return curated.Errorf(MissingArgument, "MEMVIZ", "a filename")
	}
	if err := trm.memviz(args[0]); err != nil {
		return err
	}
	trm.printf(StyleFeedback, "runtime written to %s", args[0])
	return nil
}

func cmdHelp(trm *Terminal, args []string) error {
	if len(args) > 0 {
		cmd, ok := lookup(strings.ToUpper(args[0]))
		if !ok {
			return curated.Errorf(UnknownCommand, args[0])
		}
		trm.printf(StyleHelp, "%s %s", cmd.name, cmd.args)
		trm.printf(StyleHelp, "  %s", cmd.help)
		return nil
	}

	for _, cmd := range commands {
		trm.TermPrintLine(StyleHelp, strings.TrimRight(fmt.Sprintf("%-8s %s", cmd.name, cmd.args), " "))
	}
	return nil
}

func cmdScript(trm *Terminal, args []string) error {
	if len(args) == 0 {
		return curated.Errorf(MissingArgument, "SCRIPT", "an argument")
	}

	switch strings.ToUpper(args[0]) {
	case "RECORD":
		if len(args) < 2 {
			return curated.Errorf(MissingArgument, "SCRIPT RECORD", "a filename")
		}
		if err := trm.scribe.StartSession(args[1]); err != nil {
			return err
		}
		trm.printf(StyleFeedback, "recording to %s", args[1])
	case "END":
		fn := trm.scribe.Filename()
		if err := trm.scribe.EndSession(); err != nil {
			return err
		}
		trm.printf(StyleFeedback, "recording to %s ended", fn)
	default:
		return trm.RunScript(args[0])
	}

	return nil
}

func cmdQuit(trm *Terminal, _ []string) error {
	trm.quit = true
	if trm.scribe.IsActive() {
		return trm.scribe.EndSession()
	}
	return nil
}
