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

package govern

// StepType is the granularity of a discrete step.
type StepType int

// List of valid StepType values.
const (
	StepInto StepType = iota
	StepScanline
	StepFrame
)

func (s StepType) String() string {
	switch s {
	case StepInto:
		return "Into"
	case StepScanline:
		return "Scanline"
	case StepFrame:
		return "Frame"
	}
	return ""
}

// StepTypeList is the list of step types in the order that they should be
// presented to the user.
var StepTypeList = []StepType{StepInto, StepScanline, StepFrame}
