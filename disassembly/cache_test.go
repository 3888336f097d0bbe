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

package disassembly_test

import (
	"fmt"
	"testing"

	"github.com/boyadbg/boyadbg/core"
	"github.com/boyadbg/boyadbg/disassembly"
	"github.com/boyadbg/boyadbg/test"
)

// decoder produces instructions whose text depends on the current
// instruction size so that a change of instruction set can be simulated
type decoder struct {
	pc    uint32
	size  int
	calls int
}

func (d *decoder) InstructionSize() int {
	return d.size
}

func (d *decoder) NextInstructions(count int) []core.Instruction {
	d.calls++
	ins := make([]core.Instruction, count)
	for i := range ins {
		addr := d.pc + uint32(i*d.size)
		ins[i] = core.Instruction{
			Address: addr,
			Text:    fmt.Sprintf("op%d %x", d.size*8, addr),
		}
	}
	return ins
}

func TestDecodeAndLookup(t *testing.T) {
	c, err := disassembly.NewCache(0)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, c.Text(0x100), disassembly.Unknown)
	_, ok := c.Lookup(0x100)
	test.ExpectFailure(t, ok)

	d := &decoder{pc: 0x100, size: 4}
	decoded := c.Decode(d, 2)
	test.ExpectEquality(t, len(decoded), 2)
	test.ExpectEquality(t, c.Len(), 2)

	e, ok := c.Lookup(0x104)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e, disassembly.Entry{Address: 0x104, Text: "op32 104", Size: 4})

	// lookup does not decode
	test.ExpectEquality(t, c.Text(0x108), disassembly.Unknown)
	test.ExpectEquality(t, d.calls, 1)

	// a count of zero does not call the decoder
	test.ExpectEquality(t, len(c.Decode(d, 0)), 0)
	test.ExpectEquality(t, d.calls, 1)
}

func TestDecodeIdempotence(t *testing.T) {
	c, _ := disassembly.NewCache(0)
	d := &decoder{pc: 0x08000000, size: 4}

	c.Decode(d, 8)
	first := c.Entries()
	c.Decode(d, 8)
	second := c.Entries()

	test.DemandEquality(t, len(first), len(second))
	for i := range first {
		test.ExpectEquality(t, first[i], second[i], i)
	}
}

func TestOverwrite(t *testing.T) {
	c, _ := disassembly.NewCache(0)
	d := &decoder{pc: 0x200, size: 4}
	c.Decode(d, 1)
	test.ExpectEquality(t, c.Text(0x200), "op32 200")

	// a change of instruction set replaces the entry
	d.size = 2
	c.Decode(d, 2)
	e, _ := c.Lookup(0x200)
	test.ExpectEquality(t, e.Text, "op16 200")
	test.ExpectEquality(t, e.Size, 2)
	test.ExpectEquality(t, c.Len(), 2)
}

func TestPipeline(t *testing.T) {
	c, _ := disassembly.NewCache(0)
	d := &decoder{pc: 0x300, size: 4}
	c.Decode(d, 1)

	p := c.Pipeline(0x300, 4)
	test.ExpectEquality(t, p[0].Text, "op32 300")
	test.ExpectEquality(t, p[1].Address, uint32(0x304))
	test.ExpectEquality(t, p[1].Text, disassembly.Unknown)
}

func TestBoundedCache(t *testing.T) {
	c, err := disassembly.NewCache(4)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.Capacity(), 4)

	d := &decoder{pc: 0x0, size: 4}
	c.Decode(d, 8)
	test.ExpectEquality(t, c.Len(), 4)

	// the oldest entries have been evicted
	test.ExpectEquality(t, c.Text(0x0), disassembly.Unknown)
	test.ExpectEquality(t, c.Text(0x1c), "op32 1c")

	test.ExpectSuccess(t, c.Resize(2))
	test.ExpectEquality(t, c.Len(), 2)

	// changing to an unbounded cache keeps the entries
	test.ExpectSuccess(t, c.Resize(0))
	test.ExpectEquality(t, c.Len(), 2)
	c.Decode(d, 8)
	test.ExpectEquality(t, c.Len(), 8)

	test.ExpectFailure(t, c.Resize(-1))

	c.Clear()
	test.ExpectEquality(t, c.Len(), 0)
}

func TestGrep(t *testing.T) {
	c, _ := disassembly.NewCache(0)
	c.Decode(&decoder{pc: 0x10, size: 4}, 2)
	c.Decode(&decoder{pc: 0x10, size: 2}, 1)

	tw := &test.CompareWriter{}
	n := c.Grep(tw, disassembly.GrepMnemonic, "OP32", false)
	test.ExpectEquality(t, n, 1)
	test.ExpectEquality(t, tw.String(), "0x00000014  op32 14\n")

	tw.Clear()
	n = c.Grep(tw, disassembly.GrepOperand, "op", true)
	test.ExpectEquality(t, n, 0)

	n = c.Grep(tw, disassembly.GrepAll, "1", false)
	test.ExpectEquality(t, n, 2)
}
