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
	"fmt"
	"math/bits"
)

// Cond is the condition field of an ARM instruction.
type Cond uint32

// List of conditions.
const (
	EQ Cond = iota
	NE
	CS
	CC
	MI
	PL
	VS
	VC
	HI
	LS
	GE
	LT
	GT
	LE
	AL
)

var condNames = [...]string{"eq", "ne", "cs", "cc", "mi", "pl", "vs", "vc", "hi", "ls", "ge", "lt", "gt", "le", ""}

func (cd Cond) String() string {
	if int(cd) < len(condNames) {
		return condNames[cd]
	}
	return "nv"
}

// data processing opcodes supported by the core
const (
	opSUB = 0x2
	opADD = 0x4
	opCMP = 0xa
	opMOV = 0xd
)

const (
	encNop  = 0xe1a00000
	encBxLR = 0xe12fff1e
)

func isBranch(w uint32) bool {
	return w&0x0e000000 == 0x0a000000
}

func isLink(w uint32) bool {
	return w&0x01000000 != 0
}

func isDataImm(w uint32) bool {
	return w&0x0e000000 == 0x02000000
}

func branchTarget(addr uint32, w uint32) uint32 {
	offset := int32(w<<8) >> 6
	return addr + 8 + uint32(offset)
}

func decodeImm(w uint32) uint32 {
	return bits.RotateLeft32(w&0xff, -int((w>>8)&0xf)*2)
}

func (c *Core) condition(cd Cond) bool {
	switch cd {
	case EQ:
		return c.z
	case NE:
		return !c.z
	case CS:
		return c.c
	case CC:
		return !c.c
	case MI:
		return c.n
	case PL:
		return !c.n
	case VS:
		return c.v
	case VC:
		return !c.v
	case HI:
		return c.c && !c.z
	case LS:
		return !c.c || c.z
	case GE:
		return c.n == c.v
	case LT:
		return c.n != c.v
	case GT:
		return !c.z && c.n == c.v
	case LE:
		return c.z || c.n != c.v
	}
	return true
}

func (c *Core) execute(w uint32) {
	if !c.condition(Cond(w >> 28)) {
		c.pc += 4
		return
	}

	switch {
	case w&0x0fffffff == encBxLR&0x0fffffff:
		c.pc = c.reg[regLR] &^ 3
		return

	case isBranch(w):
		if isLink(w) {
			c.reg[regLR] = c.pc + 4
		}
		c.pc = branchTarget(c.pc, w)
		return

	case isDataImm(w):
		c.dataProcessing(w)
	}

	c.pc += 4
}

func (c *Core) dataProcessing(w uint32) {
	op := (w >> 21) & 0xf
	setFlags := w&0x00100000 != 0
	rn := (w >> 16) & 0xf
	rd := (w >> 12) & 0xf
	imm := decodeImm(w)

	// writes to the program counter are ignored
	write := func(v uint32) {
		if rd < 15 {
			c.reg[rd] = v
		}
	}

	operand := c.Reg(int(rn))

	switch op {
	case opMOV:
		write(imm)
		if setFlags {
			c.n = imm&0x80000000 != 0
			c.z = imm == 0
		}
	case opADD:
		r, carry := bits.Add32(operand, imm, 0)
		write(r)
		if setFlags {
			c.setArithmeticFlags(r, carry == 1, (operand^r)&(imm^r)&0x80000000 != 0)
		}
	case opSUB:
		r, borrow := bits.Sub32(operand, imm, 0)
		write(r)
		if setFlags {
			c.setArithmeticFlags(r, borrow == 0, (operand^imm)&(operand^r)&0x80000000 != 0)
		}
	case opCMP:
		r, borrow := bits.Sub32(operand, imm, 0)
		c.setArithmeticFlags(r, borrow == 0, (operand^imm)&(operand^r)&0x80000000 != 0)
	}
}

func (c *Core) setArithmeticFlags(r uint32, carry bool, overflow bool) {
	c.n = r&0x80000000 != 0
	c.z = r == 0
	c.c = carry
	c.v = overflow
}

func disassemble(addr uint32, w uint32) string {
	cd := Cond(w >> 28)

	switch {
	case w == encNop:
		return "nop"

	case w&0x0fffffff == encBxLR&0x0fffffff:
		return fmt.Sprintf("bx%s lr", cd)

	case isBranch(w):
		mnemonic := "b"
		if isLink(w) {
			mnemonic = "bl"
		}
		return fmt.Sprintf("%s%s 0x%08x", mnemonic, cd, branchTarget(addr, w))

	case isDataImm(w):
		op := (w >> 21) & 0xf
		s := ""
		if w&0x00100000 != 0 && op != opCMP {
			s = "s"
		}
		rn := (w >> 16) & 0xf
		rd := (w >> 12) & 0xf
		imm := decodeImm(w)

		switch op {
		case opMOV:
			return fmt.Sprintf("mov%s%s r%d, #0x%x", cd, s, rd, imm)
		case opADD:
			return fmt.Sprintf("add%s%s r%d, r%d, #0x%x", cd, s, rd, rn, imm)
		case opSUB:
			return fmt.Sprintf("sub%s%s r%d, r%d, #0x%x", cd, s, rd, rn, imm)
		case opCMP:
			return fmt.Sprintf("cmp%s r%d, #0x%x", cd, rn, imm)
		}
	}

	return fmt.Sprintf(".word 0x%08x", w)
}
