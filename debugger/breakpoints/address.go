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

package breakpoints

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/boyadbg/boyadbg/curated"
)

// InvalidAddress is the curated error pattern returned by ParseAddress().
const InvalidAddress = "breakpoints: invalid address (%s)"

// ParseAddress accepts a hexadecimal address with a 0x prefix or a decimal
// address.
func ParseAddress(s string) (uint32, error) {
	s = strings.TrimSpace(s)

	var v uint64
	var err error

	if h, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		v, err = strconv.ParseUint(h, 16, 32)
	} else {
		v, err = strconv.ParseUint(s, 10, 32)
	}
	if err != nil {
		return 0, curated.Errorf(InvalidAddress, s)
	}

	return uint32(v), nil
}

// FormatAddress as a zero padded hexadecimal number with a 0x prefix.
func FormatAddress(address uint32) string {
	return fmt.Sprintf("0x%08x", address)
}
