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

package minicore

import (
	"slices"

	"github.com/boyadbg/boyadbg/core"
	"github.com/boyadbg/boyadbg/curated"
)

// Memory map and timing.
const (
	BIOSOrigin = 0x00000000
	BIOSSize   = 0x4000
	ROMOrigin  = 0x08000000
	ROMMaxSize = 0x02000000

	ScanlineCycles = 1232
	Scanlines      = 228
	VBlankScanline = 160
	FrameCycles    = ScanlineCycles * Scanlines
	VBlankCycle    = ScanlineCycles * VBlankScanline

	InitialStackPointer = 0x03007f00
)

// Sentinel error patterns.
const (
	UnsupportedROM  = "minicore: unsupported rom: %v"
	UnsupportedBIOS = "minicore: unsupported bios: %v"
)

const (
	regSP = 13
	regLR = 14
)

// Core implements the core.Core interface.
type Core struct {
	bios []byte
	rom  []byte

	reg [15]uint32
	pc  uint32

	// condition flags
	n, z, c, v bool

	cycles uint64
	keys   uint16
}

// NewCore is the preferred method of initialisation for the Core type.
func NewCore() *Core {
	c := &Core{}
	c.Reset()
	return c
}

// Reset the core to its power-on state. The ROM and BIOS remain inserted.
func (c *Core) Reset() {
	c.reg = [15]uint32{}
	c.pc = BIOSOrigin
	c.n, c.z, c.c, c.v = false, false, false, false
	c.cycles = 0
	c.keys = 0x3ff
}

// Boot skips the BIOS and starts execution at the beginning of the ROM.
func (c *Core) Boot() {
	c.reg[regSP] = InitialStackPointer
	c.pc = ROMOrigin
}

// LoadROM inserts the ROM. The data must be a non-zero multiple of four bytes
// and be no larger than ROMMaxSize.
func (c *Core) LoadROM(data []byte) error {
	if len(data) == 0 {
		return curated.Errorf(UnsupportedROM, "empty")
	}
	if len(data) > ROMMaxSize {
		return curated.Errorf(UnsupportedROM, "too large")
	}
	if len(data)%4 != 0 {
		return curated.Errorf(UnsupportedROM, "not word aligned")
	}
	c.rom = slices.Clone(data)
	return nil
}

// LoadBIOS implements the core.BIOSLoader interface.
func (c *Core) LoadBIOS(data []byte) error {
	if len(data) != BIOSSize {
		return curated.Errorf(UnsupportedBIOS, "wrong size")
	}
	c.bios = slices.Clone(data)
	return nil
}

// FrameSize implements the core.Dimensions interface.
func (c *Core) FrameSize() (int, int) {
	return core.DefaultWidth, core.DefaultHeight
}

// StepFrame implements the core.Core interface.
func (c *Core) StepFrame() {
	target := c.nextBoundary(FrameCycles)
	for c.cycles < target {
		c.step()
	}
}

// StepFrameWithHooks implements the core.Core interface. Breakpoints are
// checked before each instruction except the first. This means that resuming
// from a breakpoint does not immediately halt again.
func (c *Core) StepFrameWithHooks(breakpoints []uint32, irq bool) core.HaltReason {
	target := c.nextBoundary(FrameCycles)
	for first := true; ; first = false {
		if !first && slices.Contains(breakpoints, c.pc) {
			return core.HaltBreakpoint
		}
		if c.cycles >= target {
			return core.HaltNone
		}
		if _, interrupt := c.step(); irq && interrupt {
			return core.HaltIRQ
		}
	}
}

// StepScanline implements the core.Core interface.
func (c *Core) StepScanline() {
	target := c.nextBoundary(ScanlineCycles)
	for c.cycles < target {
		c.step()
	}
}

// DebugSyncedStep implements the core.Core interface.
func (c *Core) DebugSyncedStep() uint32 {
	n, _ := c.step()
	return n
}

// ExecAddress implements the core.Core interface.
func (c *Core) ExecAddress() uint32 {
	return c.pc
}

// LR implements the core.Core interface.
func (c *Core) LR() uint32 {
	return c.reg[regLR]
}

// Reg returns the value of a general purpose register. Register 15 is the
// execution address.
func (c *Core) Reg(r int) uint32 {
	if r == 15 {
		return c.pc
	}
	return c.reg[r]
}

// InstructionSize implements the core.Core interface. The core only supports
// the ARM instruction set.
func (c *Core) InstructionSize() int {
	return 4
}

// Cycles implements the core.Core interface.
func (c *Core) Cycles() uint64 {
	return c.cycles
}

// Frame returns the number of frames completed since boot.
func (c *Core) Frame() uint64 {
	return c.cycles / FrameCycles
}

// Scanline returns the current scanline.
func (c *Core) Scanline() int {
	return int(c.cycles%FrameCycles) / ScanlineCycles
}

// NextInstructions implements the core.Core interface.
func (c *Core) NextInstructions(count int) []core.Instruction {
	ins := make([]core.Instruction, 0, count)
	addr := c.pc
	for range count {
		ins = append(ins, core.Instruction{
			Address: addr,
			Text:    disassemble(addr, c.fetch(addr)),
		})
		addr += 4
	}
	return ins
}

// StartingSubroutine implements the core.Core interface.
func (c *Core) StartingSubroutine() bool {
	w := c.fetch(c.pc)
	return isBranch(w) && isLink(w)
}

// SetKeyinput implements the core.Core interface.
func (c *Core) SetKeyinput(mask uint16) {
	c.keys = mask & 0x3ff
}

// Keyinput returns the most recent keypad mask.
func (c *Core) Keyinput() uint16 {
	return c.keys
}

func (c *Core) nextBoundary(size uint64) uint64 {
	return (c.cycles/size + 1) * size
}

// fetch the word at the address. unmapped memory reads as zero
func (c *Core) fetch(addr uint32) uint32 {
	var mem []byte
	switch {
	case addr < BIOSOrigin+BIOSSize:
		mem = c.bios
	case addr >= ROMOrigin && addr < ROMOrigin+ROMMaxSize:
		mem = c.rom
		addr -= ROMOrigin
	}
	if int(addr)+4 > len(mem) {
		return 0
	}
	return uint32(mem[addr]) | uint32(mem[addr+1])<<8 | uint32(mem[addr+2])<<16 | uint32(mem[addr+3])<<24
}

// step executes one instruction and returns the number of cycles used and
// whether the VBlank interrupt was signalled
func (c *Core) step() (uint32, bool) {
	c.execute(c.fetch(c.pc))
	before := c.cycles % FrameCycles
	c.cycles++
	after := c.cycles % FrameCycles
	return 1, before < VBlankCycle && after >= VBlankCycle
}
