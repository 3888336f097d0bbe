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

package main

import (
	"regexp"
	"strings"
	"testing"

	"github.com/boyadbg/boyadbg/core/minicore"
	"github.com/boyadbg/boyadbg/test"
)

func TestHelp(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"-help"}, &out), 0)
	test.ExpectEquality(t, strings.Contains(out.String(), "available sub-modes: RUN, SDL, DEBUG, PERFORMANCE"), true, out.String())

	out.Reset()
	test.ExpectEquality(t, launch([]string{"performance", "-help"}, &out), 0)
	test.ExpectEquality(t, strings.Contains(out.String(), "for PERFORMANCE mode"), true, out.String())
	test.ExpectEquality(t, strings.Contains(out.String(), "-leadtime"), true, out.String())
}

func TestVersionFlag(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"-version"}, &out), 0)
	test.ExpectEquality(t, strings.HasPrefix(out.String(), "boyadbg "), true, out.String())
}

func TestPerformanceMode(t *testing.T) {
	var out strings.Builder
	ret := launch([]string{"PERFORMANCE", "-duration", "20ms", "-leadtime", "10ms"}, &out)
	test.ExpectEquality(t, ret, 0, out.String())

	re := regexp.MustCompile(`^\d+\.\d{2} fps \(\d+ frames in 0\.02 seconds\) \d+\.\d%\n$`)
	test.ExpectEquality(t, re.MatchString(out.String()), true, out.String())
}

func TestErrors(t *testing.T) {
	var out strings.Builder

	// unknown flags select the default mode which then fails to parse them
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, &out), 20)
	test.ExpectEquality(t, strings.HasPrefix(out.String(), "* error in RUN mode"), true, out.String())

	out.Reset()
	test.ExpectEquality(t, launch([]string{"PERFORMANCE", "-profile", "gpu"}, &out), 20)
	test.ExpectEquality(t, strings.Contains(out.String(), "unknown profile type (gpu)"), true, out.String())

	out.Reset()
	test.ExpectEquality(t, launch([]string{"PERFORMANCE", "a.rom", "b.rom"}, &out), 20)
	test.ExpectEquality(t, strings.Contains(out.String(), "too many arguments"), true, out.String())
}

func BenchmarkFrame(b *testing.B) {
	c := minicore.NewCore()
	if err := c.LoadROM(minicore.DemoROM()); err != nil {
		b.Fatal(err)
	}
	c.Boot()

	b.ResetTimer()
	for range b.N {
		c.StepFrame()
	}
}
