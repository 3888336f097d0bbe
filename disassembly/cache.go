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
	"cmp"
	"fmt"
	"slices"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/boyadbg/boyadbg/core"
	"github.com/boyadbg/boyadbg/logger"
)

// Unknown is the text shown for an address that has not been decoded.
const Unknown = "unknown"

// Entry is a single cached instruction.
type Entry struct {
	Address uint32
	Text    string

	// the instruction size reported by the core at the time of decoding
	Size int
}

func (e Entry) String() string {
	return fmt.Sprintf("0x%08x  %s", e.Address, e.Text)
}

// Decoder is the part of core.Core required by the cache.
type Decoder interface {
	InstructionSize() int
	NextInstructions(count int) []core.Instruction
}

// Cache of decoded instructions.
type Cache struct {
	crit sync.Mutex

	// only one of unbounded or bounded is used depending on the capacity
	unbounded map[uint32]Entry
	bounded   *lru.Cache[uint32, Entry]
	capacity  int
}

// NewCache is the preferred method of initialisation for the Cache type. A
// capacity of zero means that the cache is unbounded.
func NewCache(capacity int) (*Cache, error) {
	c := &Cache{}
	if err := c.Resize(capacity); err != nil {
		return nil, err
	}
	return c, nil
}

// Resize the cache. Entries are kept where possible. A capacity of zero means
// that the cache is unbounded.
func (c *Cache) Resize(capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("disassembly: capacity cannot be negative")
	}

	c.crit.Lock()
	defer c.crit.Unlock()

	c.capacity = capacity

	if capacity == 0 {
		existing := c.entries()
		c.bounded = nil
		c.unbounded = make(map[uint32]Entry, len(existing))
		for _, e := range existing {
			c.unbounded[e.Address] = e
		}
		return nil
	}

	if c.bounded != nil {
		if evicted := c.bounded.Resize(capacity); evicted > 0 {
			logger.Logf(logger.Allow, "disasm", "resize evicted %d entries", evicted)
		}
		return nil
	}

	b, err := lru.New[uint32, Entry](capacity)
	if err != nil {
		return fmt.Errorf("disassembly: %w", err)
	}
	for _, e := range c.entries() {
		b.Add(e.Address, e)
	}
	c.unbounded = nil
	c.bounded = b

	return nil
}

// Capacity returns the maximum number of entries. Zero means that the cache is
// unbounded.
func (c *Cache) Capacity() int {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.capacity
}

// Decode count instructions from the current execution address of the core
// and merge them into the cache. Returns the decoded entries.
func (c *Cache) Decode(d Decoder, count int) []Entry {
	if count <= 0 {
		return nil
	}

	ins := d.NextInstructions(count)
	size := d.InstructionSize()

	c.crit.Lock()
	defer c.crit.Unlock()

	decoded := make([]Entry, 0, len(ins))
	for _, in := range ins {
		e := Entry{
			Address: in.Address,
			Text:    in.Text,
			Size:    size,
		}
		c.put(e)
		decoded = append(decoded, e)
	}

	return decoded
}

func (c *Cache) put(e Entry) {
	if c.bounded != nil {
		c.bounded.Add(e.Address, e)
		return
	}
	c.unbounded[e.Address] = e
}

// Lookup the entry for an address.
func (c *Cache) Lookup(address uint32) (Entry, bool) {
	c.crit.Lock()
	defer c.crit.Unlock()
	if c.bounded != nil {
		return c.bounded.Get(address)
	}
	e, ok := c.unbounded[address]
	return e, ok
}

// Text returns the decoded text for the address or the Unknown marker if the
// address has not been decoded.
func (c *Cache) Text(address uint32) string {
	if e, ok := c.Lookup(address); ok {
		return e.Text
	}
	return Unknown
}

// Pipeline returns the entries for the instruction being executed and the
// instruction that follows it. Addresses that have not been decoded have the
// Unknown marker as their text.
func (c *Cache) Pipeline(pc uint32, size int) [2]Entry {
	var p [2]Entry
	for i := range p {
		addr := pc + uint32(i*size)
		p[i] = Entry{Address: addr, Text: c.Text(addr), Size: size}
	}
	return p
}

// Len returns the number of entries in the cache.
func (c *Cache) Len() int {
	c.crit.Lock()
	defer c.crit.Unlock()
	if c.bounded != nil {
		return c.bounded.Len()
	}
	return len(c.unbounded)
}

// Clear all entries from the cache.
func (c *Cache) Clear() {
	c.crit.Lock()
	defer c.crit.Unlock()
	if c.bounded != nil {
		c.bounded.Purge()
		return
	}
	clear(c.unbounded)
}

// Entries returns a copy of every entry in the cache in address order.
func (c *Cache) Entries() []Entry {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.entries()
}

func (c *Cache) entries() []Entry {
	var e []Entry
	if c.bounded != nil {
		for _, k := range c.bounded.Keys() {
			if v, ok := c.bounded.Peek(k); ok {
				e = append(e, v)
			}
		}
	} else {
		e = make([]Entry, 0, len(c.unbounded))
		for _, v := range c.unbounded {
			e = append(e, v)
		}
	}
	slices.SortFunc(e, func(a, b Entry) int {
		return cmp.Compare(a.Address, b.Address)
	})
	return e
}
