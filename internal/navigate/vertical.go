package navigate

import (
	"github.com/dshills/textchain/internal/caret"
	"github.com/dshills/textchain/internal/event"
	"github.com/dshills/textchain/internal/layout"
	"github.com/dshills/textchain/internal/region"
	"github.com/dshills/textchain/internal/selection"
)

// vertical executes moveUp/moveDown. A plain move over an active selection
// first collapses it toward the move direction and then performs one more
// vertical move, matching the plain-editor convention.
func (c *Coordinator) vertical(down, extend bool) {
	if !extend {
		if pos, ok := c.collapseActive(down); ok {
			c.verticalFrom(pos, down, false)
			return
		}
	} else {
		c.sel.EnsureAnchor()
	}
	pos, ok := c.head()
	if !ok {
		return
	}
	c.verticalFrom(pos, down, extend)
}

// verticalFrom moves one visual line up or down from the given position,
// crossing into the neighboring region when the position sits on the
// region's first or last line.
func (c *Coordinator) verticalFrom(pos selection.Position, down, extend bool) {
	r := pos.Region
	q := c.doc.Layout(r)
	if q == nil {
		return
	}
	if c.atVerticalEdge(q, r, pos.Index, down) {
		c.crossVertical(pos, down, extend)
		return
	}
	target, status := caret.VerticalTarget(q, r, pos.Index, !down)
	switch status {
	case caret.StepUnavailable:
		return
	case caret.StepBoundary:
		c.crossVertical(pos, down, extend)
		return
	}
	c.ensureX(q, r, pos.Index, extend)
	if !c.xmem.HasValue() {
		return
	}
	land, ok := caret.PointToIndex(q, r, c.xmem.Value(), target)
	if !ok {
		return
	}
	c.place(selection.Position{Region: r, Index: land}, extend)
}

// atVerticalEdge reports whether the caret's line is the region's first
// (moving up) or last (moving down) line.
func (c *Coordinator) atVerticalEdge(q layout.Query, r *region.Region, index int, down bool) bool {
	frag, ok := caret.CurrentLine(q, r, index)
	if !ok {
		return false
	}
	if down {
		return q.IsLastLine(frag.Range)
	}
	return q.IsFirstLine(frag.Range)
}

// crossVertical hands the caret or selection head to the neighboring
// region, landing on its last line (moving up) or first line (moving down)
// at the remembered horizontal coordinate. With no neighbor, the caret
// clamps to the document-absolute boundary.
func (c *Coordinator) crossVertical(pos selection.Position, down, extend bool) {
	r := pos.Region
	var target *region.Region
	if down {
		target = c.doc.Next(r)
	} else {
		target = c.doc.Prev(r)
	}
	if target == nil {
		if extend {
			idx := 0
			edge := event.EdgeStart
			if down {
				idx = r.Len()
				edge = event.EdgeEnd
			}
			c.place(selection.Position{Region: r, Index: idx}, true)
			c.bus.Publish(event.BoundaryReached{Region: r, Edge: edge})
		} else {
			c.clampToEdge(r, down)
		}
		c.xmem.Reset()
		return
	}
	q2 := c.doc.Layout(target)
	if q2 == nil {
		return
	}
	if q := c.doc.Layout(r); q != nil {
		c.ensureX(q, r, pos.Index, extend)
	}
	if !c.xmem.HasValue() {
		return
	}
	// Moving down enters at the target's first line; moving up at its last.
	frag, ok := q2.EdgeLineFragment(!down)
	if !ok {
		return
	}
	land, ok := caret.PointToIndex(q2, target, c.xmem.Value(), frag)
	if !ok {
		return
	}
	c.place(selection.Position{Region: target, Index: land}, extend)
}

// ensureX stores the horizontal coordinate for the position starting a
// chain of vertical moves, if none is stored yet. Extending moves store
// from the head endpoint explicitly since the region holds a range.
func (c *Coordinator) ensureX(q layout.Query, r *region.Region, index int, extend bool) {
	if c.xmem.HasValue() {
		return
	}
	if extend {
		c.xmem.StoreEndpoint(q, r, index)
	} else {
		c.xmem.Store(q, r, index)
	}
}
