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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// GrepScope limits the scope of the search.
type GrepScope int

// List of available scopes.
const (
	GrepMnemonic GrepScope = iota
	GrepOperand
	GrepAll
)

// split instruction text into mnemonic and operands
func split(text string) (string, string) {
	m, o, _ := strings.Cut(text, " ")
	return m, strings.TrimSpace(o)
}

// Grep searches the cache for the search string and writes every matching
// entry to output. Returns the number of matches.
func (c *Cache) Grep(output io.Writer, scope GrepScope, search string, caseSensitive bool) int {
	if !caseSensitive {
		search = strings.ToUpper(search)
	}

	var matches int

	for _, e := range c.Entries() {
		var s string

		m, o := split(e.Text)
		switch scope {
		case GrepMnemonic:
			s = m
		case GrepOperand:
			s = o
		case GrepAll:
			s = e.Text
		}

		if !caseSensitive {
			s = strings.ToUpper(s)
		}

		if strings.Contains(s, search) {
			fmt.Fprintln(output, e.String())
			matches++
		}
	}

	return matches
}
