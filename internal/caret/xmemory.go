package caret

import (
	"github.com/dshills/textchain/internal/layout"
	"github.com/dshills/textchain/internal/region"
)

// XMemory remembers a single target x coordinate across a chain of vertical
// moves. Horizontal moves, text edits, and mouse-driven selection all
// invalidate it. Scoped to one document; independent documents never share
// an XMemory.
type XMemory struct {
	x   float64
	has bool
}

// NewXMemory creates an empty horizontal memory.
func NewXMemory() *XMemory {
	return &XMemory{}
}

// HasValue reports whether a coordinate is stored.
func (m *XMemory) HasValue() bool {
	return m.has
}

// Value returns the stored coordinate; valid only when HasValue is true.
func (m *XMemory) Value() float64 {
	return m.x
}

// Reset clears the stored coordinate.
func (m *XMemory) Reset() {
	m.x = 0
	m.has = false
}

// Store remembers the x coordinate of the caret at index in the region.
// A store is keyed to a single insertion point: if the region holds a
// non-empty selection the call is a no-op, and the caller must pick an
// endpoint explicitly via StoreEndpoint.
func (m *XMemory) Store(q layout.Query, r *region.Region, index int) {
	if r.HasSelection() {
		return
	}
	m.StoreEndpoint(q, r, index)
}

// StoreEndpoint remembers the x coordinate of the insertion point at index,
// regardless of the region's selection state. An empty buffer stores 0; an
// index at or past end-of-buffer stores the right edge of the last glyph;
// otherwise the left edge of the glyph at index. If geometry is unavailable
// nothing is stored.
func (m *XMemory) StoreEndpoint(q layout.Query, r *region.Region, index int) {
	n := r.Len()
	if n == 0 {
		m.x = 0
		m.has = true
		return
	}
	if index >= n {
		rect, ok := q.GlyphRect(n - 1)
		if !ok {
			return
		}
		m.x = rect.MaxX()
		m.has = true
		return
	}
	if index < 0 {
		index = 0
	}
	rect, ok := q.GlyphRect(index)
	if !ok {
		return
	}
	m.x = rect.X
	m.has = true
}
