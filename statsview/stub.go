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

//go:build !statsview

package statsview

import (
	"io"

	"github.com/boyadbg/boyadbg/curated"
)

// NotAvailable is returned by Launch() when the program was built without the
// statsview build tag.
const NotAvailable = "statsview: not available in this build"

// Launch returns an error because the stats server is not available.
func Launch(_ io.Writer) error {
	return curated.Errorf(NotAvailable)
}

// Available returns false.
func Available() bool {
	return false
}
