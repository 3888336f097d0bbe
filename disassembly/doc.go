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

// Package disassembly caches the decoded text of instructions by address.
//
// Decoding is pull based. The runtime calls Decode() with the number of
// instructions that the consumer wants to see, starting at the current
// execution address. The results are merged into the cache. An entry for an
// address that is already in the cache is replaced because the same address
// can decode differently after a change of instruction set.
//
// Lookups never cause a decode. An address that is not in the cache is shown
// with the Unknown marker.
//
// By default the cache grows without limit. A capacity can be given to
// NewCache() or Resize(), in which case the least recently used entries are
// evicted.
package disassembly
