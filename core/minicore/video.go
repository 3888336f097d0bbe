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

import "github.com/boyadbg/boyadbg/core"

// keypad indicators are drawn along the bottom of the frame
const (
	keyBoxWidth  = 16
	keyBoxHeight = 12
	keyBoxStride = 22
	keyBoxTop    = core.DefaultHeight - keyBoxHeight - 4
)

// WriteFrameBuffer implements the core.Core interface. The picture is a
// gradient that scrolls once per frame with an indicator for each key of the
// keypad. Pressed keys are drawn in white.
func (c *Core) WriteFrameBuffer(buffer []byte) {
	frame := byte(c.Frame())

	for y := 0; y < core.DefaultHeight; y++ {
		for x := 0; x < core.DefaultWidth; x++ {
			i := (y*core.DefaultWidth + x) * 4
			if i+3 >= len(buffer) {
				return
			}

			r, g, b := byte(x)+frame, byte(y), byte(0x80)

			if y >= keyBoxTop && y < keyBoxTop+keyBoxHeight {
				k := (x - 4) / keyBoxStride
				if x >= 4 && k < 10 && (x-4)%keyBoxStride < keyBoxWidth {
					if c.keys&(1<<k) == 0 {
						r, g, b = 0xff, 0xff, 0xff
					} else {
						r, g, b = 0x30, 0x30, 0x30
					}
				}
			}

			buffer[i] = r
			buffer[i+1] = g
			buffer[i+2] = b
			buffer[i+3] = 0xff
		}
	}
}
