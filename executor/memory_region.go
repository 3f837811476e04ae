// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package executor

import (
	"fmt"
	"sync"
	"unsafe"
)

// Wasm linear memory addresses are i32, so every Memory is handed a
// full 4GiB reservation up front (mapReserve, per-OS below) and grows
// by committing pages within that reservation rather than by
// reallocating and copying: a pointer obtained from Base stays valid
// across a Grow.
const (
	wasmPageSize = 1 << 16 // 64KiB, fixed by the Wasm spec
	addressSpace = 1 << 32
	maxPages     = addressSpace / wasmPageSize
)

// Memory is one instance's linear memory. Loads and stores in the IR
// address it with a 32-bit offset measured from Base; Grow commits
// additional pages without moving already-committed ones.
type Memory struct {
	mu     sync.Mutex
	region *[addressSpace]byte
	pages  int
	limit  int // hard cap on Grow in pages
}

// NewMemory reserves the instance's full address space and commits
// initialPages of it. limitPages caps how far Grow may go; 0 means the
// Wasm-imposed maximum of 65536 pages (4GiB).
func NewMemory(initialPages, limitPages int) (*Memory, error) {
	if limitPages == 0 || limitPages > maxPages {
		limitPages = maxPages
	}
	if initialPages > limitPages {
		return nil, fmt.Errorf("executor: initial pages %d exceeds limit %d", initialPages, limitPages)
	}
	region := mapReserve()
	m := &Memory{region: region, limit: limitPages}
	if initialPages > 0 {
		if err := commitRange(region[:initialPages*wasmPageSize]); err != nil {
			return nil, err
		}
		m.pages = initialPages
	}
	return m, nil
}

// Pages reports the number of currently committed 64KiB pages.
func (m *Memory) Pages() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pages
}

// Grow commits delta additional pages and returns the page count
// before growth, or ok=false if the grow would exceed the instance's
// limit or the pages cannot be committed.
func (m *Memory) Grow(delta int) (prev int, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if delta < 0 || m.pages+delta > m.limit {
		return m.pages, false
	}
	if delta == 0 {
		return m.pages, true
	}
	start := m.pages * wasmPageSize
	end := (m.pages + delta) * wasmPageSize
	if err := commitRange(m.region[start:end]); err != nil {
		return m.pages, false
	}
	prev = m.pages
	m.pages += delta
	return prev, true
}

// Bytes returns the committed region as a slice, for the bounds-checked
// load and store paths.
func (m *Memory) Bytes() []byte {
	m.mu.Lock()
	n := m.pages * wasmPageSize
	m.mu.Unlock()
	return m.region[:n:n]
}

// Base returns a pointer to byte 0 of linear memory, for callers that
// address it through raw pointers rather than through Bytes (the
// executor's loads and stores use Bytes). The returned pointer stays
// valid across Grow:
// only the PROT_READ|PROT_WRITE extent changes, never the base
// address.
func (m *Memory) Base() unsafe.Pointer {
	return unsafe.Pointer(&m.region[0])
}

// Close decommits the instance's memory and releases the reservation.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pages == 0 {
		return releaseReserve(m.region)
	}
	if err := decommitRange(m.region[:m.pages*wasmPageSize]); err != nil {
		return err
	}
	m.pages = 0
	return releaseReserve(m.region)
}
