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
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/boyadbg/boyadbg/debugger"
	"github.com/boyadbg/boyadbg/debugger/callstack"
)

// the parts of the runtime that are written by the MEMVIZ command
type memvizView struct {
	State       debugger.ExecutionState
	CallStack   []callstack.Entry
	Breakpoints []uint32
}

func (trm *Terminal) memviz(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer f.Close()

	view := &memvizView{
		State:       trm.rt.State(),
		CallStack:   trm.rt.CallStack().Snapshot(),
		Breakpoints: trm.rt.Breakpoints().Addresses(),
	}
	memviz.Map(f, view)

	return nil
}
