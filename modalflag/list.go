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

package modalflag

import "strings"

// List implements the flag.Value interface for flags that can be given more
// than once.
type List struct {
	values []string
}

func (l *List) String() string {
	return strings.Join(l.values, ",")
}

// Set implements the flag.Value interface. Empty values are ignored.
func (l *List) Set(s string) error {
	for _, v := range strings.Split(s, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			l.values = append(l.values, v)
		}
	}
	return nil
}

// Values returns a copy of the list.
func (l *List) Values() []string {
	return append([]string(nil), l.values...)
}
