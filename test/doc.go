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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect*() functions report a test error and allow the test to continue.
// The Demand*() functions are fatal to the test and should be used when later
// parts of the test depend on the value being correct. For example, testing
// the length of a slice before indexing it.
//
// ExpectSuccess() and ExpectFailure() interpret the value according to its
// type:
//
//	bool -> true is success
//	error -> nil is success
//	nil -> success
//
// The nil type is considered a success because that is how an error value of
// nil is seen when passed through an interface.
//
// The CompareWriter type implements io.Writer and should be used to capture
// output for comparison with an expected string.
package test
