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

package colorterm_test

import (
	"testing"

	"github.com/boyadbg/boyadbg/debugger/terminal/colorterm"
	"github.com/boyadbg/boyadbg/test"
)

func TestBuild(t *testing.T) {
	test.ExpectEquality(t, colorterm.Pen(colorterm.Red), "\033[91m")
	test.ExpectEquality(t, colorterm.DimPen(colorterm.White), "\033[37m")
	test.ExpectEquality(t, colorterm.Build(colorterm.NoColor, false, colorterm.Bold), "\033[1m")
	test.ExpectEquality(t, colorterm.Build(colorterm.Cyan, true, colorterm.Underline), "\033[96;4m")
	test.ExpectEquality(t, colorterm.Build(colorterm.NoColor, false, colorterm.Normal), colorterm.Off)
}

func TestWrap(t *testing.T) {
	s := colorterm.Wrap(colorterm.Pen(colorterm.Green), "ok")
	test.ExpectEquality(t, s, "\033[92mok\033[m")
}
