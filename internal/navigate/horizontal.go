package navigate

import (
	"github.com/dshills/textchain/internal/event"
	"github.com/dshills/textchain/internal/region"
	"github.com/dshills/textchain/internal/selection"
)

// horizontal executes moveLeft/moveRight. Horizontal movement always
// invalidates the remembered vertical x coordinate. A plain move over an
// active selection only collapses it, without the extra step vertical moves
// perform.
func (c *Coordinator) horizontal(forward, extend bool) {
	defer c.xmem.Reset()

	if !extend {
		if _, ok := c.collapseActive(forward); ok {
			return
		}
		focused := c.doc.CurrentFocus()
		if focused == nil {
			return
		}
		c.horizontalCaret(focused, forward)
		return
	}

	c.sel.EnsureAnchor()
	pos, ok := c.head()
	if !ok {
		return
	}
	c.horizontalExtend(pos, forward)
}

// horizontalCaret moves the caret one position, entering the neighboring
// region at its far end when the caret sits on this region's edge.
func (c *Coordinator) horizontalCaret(r *region.Region, forward bool) {
	idx := r.Caret()
	if forward {
		if idx < r.Len() {
			r.SetCaret(idx + 1)
			return
		}
		target := c.doc.Next(r)
		if target == nil {
			c.clampToEdge(r, true)
			return
		}
		target.SetCaret(0)
		c.doc.RequestFocus(target)
		return
	}
	if idx > 0 {
		r.SetCaret(idx - 1)
		return
	}
	target := c.doc.Prev(r)
	if target == nil {
		c.clampToEdge(r, false)
		return
	}
	target.SetCaret(target.Len())
	c.doc.RequestFocus(target)
}

// horizontalExtend moves the selection head one position, crossing into
// the neighbor when the head sits on the region's edge.
func (c *Coordinator) horizontalExtend(pos selection.Position, forward bool) {
	r := pos.Region
	if forward {
		if pos.Index < r.Len() {
			c.place(selection.Position{Region: r, Index: pos.Index + 1}, true)
			return
		}
		target := c.doc.Next(r)
		if target == nil {
			c.bus.Publish(event.BoundaryReached{Region: r, Edge: event.EdgeEnd})
			return
		}
		c.place(selection.Position{Region: target, Index: 0}, true)
		return
	}
	if pos.Index > 0 {
		c.place(selection.Position{Region: r, Index: pos.Index - 1}, true)
		return
	}
	target := c.doc.Prev(r)
	if target == nil {
		c.bus.Publish(event.BoundaryReached{Region: r, Edge: event.EdgeStart})
		return
	}
	c.place(selection.Position{Region: target, Index: target.Len()}, true)
}
