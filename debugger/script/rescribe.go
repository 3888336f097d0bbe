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

package script

import (
	"fmt"
	"os"
	"strings"
)

const commentLine = "#"

// Rescribe returns the commands of a script file in order.
type Rescribe struct {
	filename string
	lines    []string
	lineCt   int
}

// RescribeScript reads the script file.
func RescribeScript(filename string) (*Rescribe, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}

	scr := &Rescribe{filename: filename}
	for _, l := range strings.Split(string(data), "\n") {
		l = strings.TrimSpace(l)
		if l == "" || strings.HasPrefix(l, commentLine) {
			continue
		}
		scr.lines = append(scr.lines, l)
	}

	return scr, nil
}

func (scr *Rescribe) String() string {
	return scr.filename
}

// Len returns the number of commands in the script.
func (scr *Rescribe) Len() int {
	return len(scr.lines)
}

// Next returns the next command. Returns false if there are no more commands.
func (scr *Rescribe) Next() (string, bool) {
	if scr.lineCt >= len(scr.lines) {
		return "", false
	}
	l := scr.lines[scr.lineCt]
	scr.lineCt++
	return l, true
}
