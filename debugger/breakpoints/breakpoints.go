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
	"maps"
	"slices"
	"strings"
)

// Set of breakpoint addresses. The zero value is an empty set.
type Set struct {
	addresses map[uint32]struct{}
}

// NewSet is the preferred method of initialisation for the Set type.
func NewSet(addresses ...uint32) *Set {
	s := &Set{}
	for _, a := range addresses {
		s.Add(a)
	}
	return s
}

// Add address to the set. Returns false if the address was already in the
// set.
func (s *Set) Add(address uint32) bool {
	if s.addresses == nil {
		s.addresses = make(map[uint32]struct{})
	}
	if _, ok := s.addresses[address]; ok {
		return false
	}
	s.addresses[address] = struct{}{}
	return true
}

// Remove address from the set. Returns false if the address was not in the
// set.
func (s *Set) Remove(address uint32) bool {
	if _, ok := s.addresses[address]; !ok {
		return false
	}
	delete(s.addresses, address)
	return true
}

// Toggle adds the address if it is not in the set and removes it if it is.
// Returns true if the address is in the set after the call.
func (s *Set) Toggle(address uint32) bool {
	if s.Remove(address) {
		return false
	}
	return s.Add(address)
}

// Has returns true if the address is in the set.
func (s *Set) Has(address uint32) bool {
	_, ok := s.addresses[address]
	return ok
}

// Len returns the number of addresses in the set.
func (s *Set) Len() int {
	return len(s.addresses)
}

// Clear removes all addresses from the set.
func (s *Set) Clear() {
	clear(s.addresses)
}

// Addresses returns the addresses in the set in ascending order. The slice is
// new on every call and can be retained by the caller.
func (s *Set) Addresses() []uint32 {
	return slices.Sorted(maps.Keys(s.addresses))
}

func (s *Set) String() string {
	if s.Len() == 0 {
		return "no breakpoints"
	}
	b := strings.Builder{}
	for i, a := range s.Addresses() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%2d: %s", i, FormatAddress(a)))
	}
	return b.String()
}
