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

package core

// HaltReason is returned by StepFrameWithHooks() and indicates why the frame
// was not completed.
type HaltReason int

// List of valid HaltReason values.
const (
	HaltNone HaltReason = iota
	HaltBreakpoint
	HaltIRQ
)

func (r HaltReason) String() string {
	switch r {
	case HaltNone:
		return "none"
	case HaltBreakpoint:
		return "breakpoint"
	case HaltIRQ:
		return "irq"
	}
	return ""
}

// Halted returns true if the reason indicates that the frame was stopped
// early.
func (r HaltReason) Halted() bool {
	return r != HaltNone
}

// Instruction is a single decoded instruction.
type Instruction struct {
	Address uint32
	Text    string
}

// Core is the interface to the emulation core.
type Core interface {
	Reset()
	Boot()
	LoadROM(data []byte) error

	// advance by one display frame
	StepFrame()

	// advance by one display frame but stop before executing an instruction
	// at any of the breakpoint addresses or, if irq is true, after an
	// interrupt has been taken
	StepFrameWithHooks(breakpoints []uint32, irq bool) HaltReason

	StepScanline()

	// advance by a single instruction and return the number of cycles used
	DebugSyncedStep() uint32

	ExecAddress() uint32
	LR() uint32

	// width of the current instruction in bytes. either 2 or 4
	InstructionSize() int

	// total cycles since the core was booted
	Cycles() uint64

	// decode count instructions starting at the current execution address
	NextInstructions(count int) []Instruction

	// the current instruction is a subroutine call
	StartingSubroutine() bool

	// active-low keypad mask
	SetKeyinput(mask uint16)

	// copy RGBA pixels to the buffer
	WriteFrameBuffer(buffer []byte)
}

// BIOSLoader is implemented by cores that accept a BIOS image.
type BIOSLoader interface {
	LoadBIOS(data []byte) error
}

// Dimensions is implemented by cores that can report the size of the frame
// buffer in pixels. Hosts assume DefaultWidth and DefaultHeight otherwise.
type Dimensions interface {
	FrameSize() (width int, height int)
}

// Default frame dimensions.
const (
	DefaultWidth  = 240
	DefaultHeight = 160
)

// FrameSize returns the frame dimensions of the core.
func FrameSize(c Core) (int, int) {
	if d, ok := c.(Dimensions); ok {
		return d.FrameSize()
	}
	return DefaultWidth, DefaultHeight
}
