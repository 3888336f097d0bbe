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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/boyadbg/boyadbg/prefs"
	"github.com/boyadbg/boyadbg/test"
)

func cmpPrefFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Fatalf("error reading prefs file: %v", err)
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestIntAndRange(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var depth prefs.Int
	depth.SetRange(0, 64)
	test.ExpectSuccess(t, dsk.Add("debugger.decodedepth", &depth))

	test.ExpectSuccess(t, depth.Set(2))
	test.ExpectFailure(t, depth.Set(65))
	test.ExpectFailure(t, depth.Set("two"))
	test.ExpectEquality(t, depth.Get().(int), 2)

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "debugger.decodedepth :: 2\n")

	// a second disk instance can load the same value
	var loaded prefs.Int
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dsk2.Add("debugger.decodedepth", &loaded))
	test.ExpectSuccess(t, dsk2.Load())
	test.ExpectEquality(t, loaded.Get().(int), 2)
}

func TestSharedFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	var a prefs.String
	var b prefs.Float

	dskA, _ := prefs.NewDisk(fn)
	test.ExpectSuccess(t, dskA.Add("a", &a))
	test.ExpectSuccess(t, a.Set("foo"))
	test.DemandSuccess(t, dskA.Save())

	dskB, _ := prefs.NewDisk(fn)
	test.ExpectSuccess(t, dskB.Add("b", &b))
	test.ExpectSuccess(t, b.Set(0.5))
	test.DemandSuccess(t, dskB.Save())

	// saving dskB has not lost the value saved by dskA
	cmpPrefFile(t, fn, "a :: foo\nb :: 0.5\n")
}

func TestMissingFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "missing")

	var v prefs.Int
	dsk, _ := prefs.NewDisk(fn)
	test.ExpectSuccess(t, dsk.Add("v", &v))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(int), 0)
}

func TestIllegalKey(t *testing.T) {
	var v prefs.Int
	dsk, _ := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs"))
	test.ExpectFailure(t, dsk.Add("bad key", &v))
	test.ExpectFailure(t, dsk.Add("bad::key", &v))
	test.ExpectSuccess(t, dsk.Add("good.key", &v))
	test.ExpectFailure(t, dsk.Add("good.key", &v))
}

func TestCommandLineStack(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	var depth prefs.Int
	var maxDepth prefs.Int
	dsk, _ := prefs.NewDisk(fn)
	test.ExpectSuccess(t, dsk.Add("debugger.decodedepth", &depth))
	test.ExpectSuccess(t, dsk.Add("callstack.maxdepth", &maxDepth))

	test.ExpectSuccess(t, depth.Set(2))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("debugger.decodedepth::8; unused::true")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)

	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, depth.Get().(int), 8)

	// the unused preference is returned on pop
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::true")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	// without the command line value the disk value is used again
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, depth.Get().(int), 2)
}
