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

// Program assembles a ROM for the core. Instructions are placed one after the
// other starting at ROMOrigin.
//
//	p := minicore.NewProgram()
//	p.Mov(0, 0x100)
//	loop := p.Here()
//	p.Subs(0, 0, 1)
//	p.Bcond(minicore.NE, loop)
//	rom := p.ROM()
//
// Methods panic if an immediate value cannot be encoded or if a branch target
// is out of range.
type Program struct {
	words []uint32
}

// NewProgram is the preferred method of initialisation for the Program type.
func NewProgram() *Program {
	return &Program{}
}

// Here returns the address of the next instruction.
func (p *Program) Here() uint32 {
	return ROMOrigin + uint32(len(p.words))*4
}

// Word places a raw instruction word and returns its address.
func (p *Program) Word(w uint32) uint32 {
	addr := p.Here()
	p.words = append(p.words, w)
	return addr
}

// Nop places a no-op instruction.
func (p *Program) Nop() uint32 {
	return p.Word(encNop)
}

// PadTo places no-op instructions until the next instruction is at the
// address.
func (p *Program) PadTo(addr uint32) {
	if addr < p.Here() || addr%4 != 0 {
		panic(fmt.Sprintf("minicore: cannot pad to 0x%08x", addr))
	}
	for p.Here() < addr {
		p.Nop()
	}
}

// Mov places "mov rd, #imm".
func (p *Program) Mov(rd int, imm uint32) uint32 {
	return p.Word(dataImm(AL, opMOV, false, 0, rd, imm))
}

// Add places "add rd, rn, #imm".
func (p *Program) Add(rd int, rn int, imm uint32) uint32 {
	return p.Word(dataImm(AL, opADD, false, rn, rd, imm))
}

// Subs places "subs rd, rn, #imm".
func (p *Program) Subs(rd int, rn int, imm uint32) uint32 {
	return p.Word(dataImm(AL, opSUB, true, rn, rd, imm))
}

// Cmp places "cmp rn, #imm".
func (p *Program) Cmp(rn int, imm uint32) uint32 {
	return p.Word(dataImm(AL, opCMP, true, rn, 0, imm))
}

// B places an unconditional branch.
func (p *Program) B(target uint32) uint32 {
	return p.Word(branch(AL, p.Here(), target, false))
}

// Bcond places a conditional branch.
func (p *Program) Bcond(cd Cond, target uint32) uint32 {
	return p.Word(branch(cd, p.Here(), target, false))
}

// BL places a subroutine call.
func (p *Program) BL(target uint32) uint32 {
	return p.Word(branch(AL, p.Here(), target, true))
}

// Ret places "bx lr".
func (p *Program) Ret() uint32 {
	return p.Word(encBxLR)
}

// ROM returns the assembled program as little-endian bytes.
func (p *Program) ROM() []byte {
	rom := make([]byte, 0, len(p.words)*4)
	for _, w := range p.words {
		rom = append(rom, byte(w), byte(w>>8), byte(w>>16), byte(w>>24))
	}
	return rom
}

func encodeImm(imm uint32) (uint32, bool) {
	for rot := uint32(0); rot < 16; rot++ {
		v := bits.RotateLeft32(imm, int(rot)*2)
		if v <= 0xff {
			return rot<<8 | v, true
		}
	}
	return 0, false
}

func dataImm(cd Cond, op uint32, setFlags bool, rn int, rd int, imm uint32) uint32 {
	enc, ok := encodeImm(imm)
	if !ok {
		panic(fmt.Sprintf("minicore: cannot encode immediate 0x%x", imm))
	}
	w := uint32(cd)<<28 | 0x02000000 | op<<21 | uint32(rn&0xf)<<16 | uint32(rd&0xf)<<12 | enc
	if setFlags {
		w |= 0x00100000
	}
	return w
}

func branch(cd Cond, from uint32, to uint32, link bool) uint32 {
	offset := int64(to) - int64(from) - 8
	if offset%4 != 0 || offset < -(1<<25) || offset >= 1<<25 {
		panic(fmt.Sprintf("minicore: branch from 0x%08x to 0x%08x out of range", from, to))
	}
	w := uint32(cd)<<28 | 0x0a000000 | uint32(offset>>2)&0x00ffffff
	if link {
		w |= 0x01000000
	}
	return w
}

// DemoROM returns a program that loops forever calling a subroutine. It is
// used by the hosts when no ROM is given.
func DemoROM() []byte {
	const sub = ROMOrigin + 0x100

	p := NewProgram()
	start := p.Mov(0, 0x1000)
	loop := p.BL(sub)
	p.Subs(0, 0, 1)
	p.Bcond(NE, loop)
	p.B(start)

	p.PadTo(sub)
	p.Mov(1, 0x10)
	wait := p.Subs(1, 1, 1)
	p.Bcond(NE, wait)
	p.Ret()

	return p.ROM()
}
