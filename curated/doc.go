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

// Package curated is a helper package for expected errors. Curated errors
// implement the error interface and are created with Errorf(), which takes a
// pattern and a list of values in the same way as fmt.Errorf().
//
// The pattern is remembered and can be tested for with Is() and Has(). Is()
// checks the outermost error only, Has() checks the entire chain of curated
// errors:
//
//	const notLoaded = "runtime: no rom loaded"
//
//	e := curated.Errorf(notLoaded)
//	f := curated.Errorf("step: %v", e)
//
//	curated.Is(f, notLoaded)  // false
//	curated.Has(f, notLoaded) // true
//
// Sentinal patterns should be stored as const strings and be named and
// commented like any other exported value.
//
// The Error() string is normalised so that adjacent duplicate parts of the
// chain are removed. Parts are separated by ": ". This means that wrapping an
// error with the same prefix more than once does not produce a stuttering
// message.
//
// Curated errors that wrap a plain error value (with the %v or %w verb) can be
// unwrapped by the errors package in the standard library. errors.Is() and
// errors.As() therefore work on chains that pass through a curated error.
package curated
