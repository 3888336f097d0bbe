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

package performance_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/boyadbg/boyadbg/core/minicore"
	"github.com/boyadbg/boyadbg/curated"
	"github.com/boyadbg/boyadbg/performance"
	"github.com/boyadbg/boyadbg/test"
)

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(120, 2.0, 60)
	test.ExpectEquality(t, fps, 60.0)
	test.ExpectEquality(t, accuracy, 100.0)

	fps, accuracy = performance.CalcFPS(60, 2.0, 60)
	test.ExpectEquality(t, fps, 30.0)
	test.ExpectEquality(t, accuracy, 50.0)

	fps, accuracy = performance.CalcFPS(60, 0, 60)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfileString("cpu, Mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "cpu,mem")

	p, err = performance.ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)
	test.ExpectEquality(t, p.String(), "cpu,mem,trace")

	_, err = performance.ParseProfileString("cpu,gpu")
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, performance.UnknownProfile), true)
}

func TestRunProfiler(t *testing.T) {
	header := filepath.Join(t.TempDir(), "test")

	var ran bool
	err := performance.RunProfiler(performance.ProfileCPU|performance.ProfileMem, header, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ran, true)

	_, err = os.Stat(header + "_cpu.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(header + "_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(header + "_trace.profile")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	lead := performance.Leadtime
	performance.Leadtime = 10 * time.Millisecond
	defer func() {
		performance.Leadtime = lead
	}()

	var out strings.Builder
	err := performance.Check(&out, performance.ProfileNone, minicore.NewCore(), minicore.DemoROM(), true, "50ms")
	test.ExpectSuccess(t, err)

	re := regexp.MustCompile(`^\d+\.\d{2} fps \(\d+ frames in 0\.05 seconds\) \d+\.\d%\n$`)
	test.ExpectEquality(t, re.MatchString(out.String()), true, out.String())
}

func TestCheckFailures(t *testing.T) {
	var out strings.Builder
	err := performance.Check(&out, performance.ProfileNone, minicore.NewCore(), minicore.DemoROM(), true, "soon")
	test.ExpectFailure(t, err)

	err = performance.Check(&out, performance.ProfileNone, minicore.NewCore(), nil, true, "50ms")
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, out.Len(), 0)
}
