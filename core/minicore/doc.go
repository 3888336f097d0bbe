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

// Package minicore is a small, deterministic implementation of core.Core. It
// executes a subset of the ARM instruction set from a ROM mapped at
// 0x08000000:
//
//	mov/movs  rd, #imm
//	add/adds  rd, rn, #imm
//	sub/subs  rd, rn, #imm
//	cmp       rn, #imm
//	b/bl      with any condition
//	bx        lr
//
// Every other instruction is executed as a no-op. Every instruction takes one
// cycle. A frame is 228 scanlines of 1232 cycles and a VBlank interrupt is
// signalled at the start of scanline 160.
//
// The Program type can be used to assemble ROMs for the core.
package minicore
