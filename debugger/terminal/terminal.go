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
	"io"
	"strings"

	"github.com/boyadbg/boyadbg/curated"
	"github.com/boyadbg/boyadbg/debugger"
	"github.com/boyadbg/boyadbg/debugger/breakpoints"
	"github.com/boyadbg/boyadbg/debugger/script"
	"github.com/boyadbg/boyadbg/debugger/terminal/colorterm"
	"github.com/boyadbg/boyadbg/debugger/terminal/easyterm"
	"github.com/boyadbg/boyadbg/userinput"
)

// Terminal executes debugger commands.
type Terminal struct {
	rt  *debugger.Runtime
	ctl *debugger.Controls

	output io.Writer

	// print a prompt when waiting for input
	Interactive bool

	// color output with ANSI escape sequences
	Color bool

	// optional. used to switch in and out of cbreak mode for key mode
	easyterm *easyterm.EasyTerm

	// the current line of input
	line strings.Builder

	// key mode
	keyMode bool
	keys    keyDecoder
	ctrl    *userinput.Controllers

	// frames remaining before a key pressed in key mode is released
	held map[string]int

	// whether the runtime was running at the previous tick
	wasRunning bool

	// records commands while a script session is active
	scribe script.Scribe

	quit bool
}

// NewTerminal is the preferred method of initialisation for the Terminal type.
func NewTerminal(rt *debugger.Runtime, ctl *debugger.Controls, output io.Writer) *Terminal {
	return &Terminal{
		rt:     rt,
		ctl:    ctl,
		output: output,
		ctrl:   userinput.NewControllers(userinput.DefaultKeymap()),
		held:   make(map[string]int),
	}
}

// SetEasyTerm allows the terminal to change the mode of the real terminal.
func (trm *Terminal) SetEasyTerm(et *easyterm.EasyTerm) {
	trm.easyterm = et
}

// Quit returns true if the QUIT command has been executed.
func (trm *Terminal) Quit() bool {
	return trm.quit
}

// KeyMode returns true if the terminal is in key mode.
func (trm *Terminal) KeyMode() bool {
	return trm.keyMode
}

// TermPrintLine writes a line of output in the specified style.
func (trm *Terminal) TermPrintLine(style Style, s string) {
	if style == StyleError {
		s = fmt.Sprintf("* %s", s)
	}
	if trm.Color {
		s = colorterm.Wrap(style.pen(), s)
	}
	if style == StylePrompt {
		io.WriteString(trm.output, s)
		return
	}
	io.WriteString(trm.output, s)
	io.WriteString(trm.output, "\n")
}

func (trm *Terminal) printf(style Style, format string, args ...any) {
	trm.TermPrintLine(style, fmt.Sprintf(format, args...))
}

// print the lines of a multi-line string
func (trm *Terminal) printLines(style Style, s string) {
	for _, l := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		trm.TermPrintLine(style, l)
	}
}

// Prompt prints the prompt if the terminal is interactive.
func (trm *Terminal) Prompt() {
	if !trm.Interactive || trm.keyMode {
		return
	}

	st := trm.rt.State()

	s := strings.Builder{}
	s.WriteString("[ ")
	if st.RomLoaded {
		s.WriteString(breakpoints.FormatAddress(trm.rt.Core().ExecAddress()))
		s.WriteString(" ")
	}
	s.WriteString(strings.ToLower(st.State.String()))
	s.WriteString(" ]")
	if st.Running {
		s.WriteString(" > ")
	} else {
		s.WriteString(" >> ")
	}

	trm.TermPrintLine(StylePrompt, s.String())
}

// Execute a single line of input. Errors are printed to the output.
func (trm *Terminal) Execute(input string) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return
	}

	name := strings.ToUpper(tokens[0])
	cmd, ok := lookup(name)
	if !ok {
		trm.TermPrintLine(StyleError, curated.Errorf(UnknownCommand, tokens[0]).Error())
		return
	}

	if err := cmd.fn(trm, tokens[1:]); err != nil {
		trm.TermPrintLine(StyleError, err.Error())
	} else if cmd.name != "SCRIPT" {
		trm.scribe.WriteInput(strings.Join(tokens, " "))
	}

	trm.wasRunning = trm.rt.State().Running
}

// RunScript executes every command in the script file. Replaying stops early
// if the QUIT command is executed.
func (trm *Terminal) RunScript(filename string) error {
	if trm.scribe.PlaybackDepth() >= maxScriptDepth {
		return curated.Errorf(ScriptDepth, filename)
	}

	scr, err := script.RescribeScript(filename)
	if err != nil {
		return err
	}

	// the command that starts the replay is recorded. the commands in the
	// script are not
	trm.scribe.WriteInput(fmt.Sprintf("SCRIPT %s", filename))

	trm.scribe.StartPlayback()
	defer trm.scribe.EndPlayback()

	for l, ok := scr.Next(); ok && !trm.quit; l, ok = scr.Next() {
		trm.Execute(l)
	}

	return nil
}

// Input is called with every byte read from the input. In line mode the line
// is executed when a newline is received. In key mode each byte is a key
// press.
func (trm *Terminal) Input(b byte) {
	if trm.keyMode {
		if code, ok := trm.keys.decode(b); ok {
			trm.keyPress(code)
		}
		return
	}

	switch b {
	case '\n':
		line := trm.line.String()
		trm.line.Reset()
		trm.Execute(line)
		trm.Prompt()
	case '\r':
	default:
		trm.line.WriteByte(b)
	}
}

// Tick should be called after every display refresh. It releases keys pressed
// in key mode and reports the end of a run.
func (trm *Terminal) Tick() {
	for code, n := range trm.held {
		n--
		if n > 0 {
			trm.held[code] = n
			continue
		}
		delete(trm.held, code)
		trm.ctrl.HandleUserInput(userinput.EventKeyboard{Key: code}, trm.ctl)
	}

	st := trm.rt.State()
	if trm.wasRunning && !st.Running {
		if st.Halt.Halted() {
			trm.printf(StyleFeedback, "halted on %s at %s", st.Halt,
				breakpoints.FormatAddress(trm.rt.Core().ExecAddress()))
			trm.printPipeline()
		}
		trm.Prompt()
	}
	trm.wasRunning = st.Running
}
