package navigate

import (
	"github.com/dshills/textchain/internal/region"
	"github.com/dshills/textchain/internal/selection"
)

// word executes wordLeft/wordRight. Word movement invalidates the
// remembered vertical x coordinate like any horizontal motion. A plain
// move over an active selection collapses it toward the move direction and
// then performs the word move from there.
func (c *Coordinator) word(forward, extend bool) {
	defer c.xmem.Reset()

	if !extend {
		if pos, ok := c.collapseActive(forward); ok {
			c.wordFrom(pos, forward, false)
			return
		}
	} else {
		c.sel.EnsureAnchor()
	}
	pos, ok := c.head()
	if !ok {
		return
	}
	c.wordFrom(pos, forward, extend)
}

// wordFrom jumps to the next or previous word boundary. At a region edge
// it enters the neighbor at its far end and performs one native word move
// inward, so the landing point is the first or last word boundary rather
// than the raw edge. With no neighbor the command is a no-op.
func (c *Coordinator) wordFrom(pos selection.Position, forward, extend bool) {
	r := pos.Region
	atEdge := (forward && pos.Index >= r.Len()) || (!forward && pos.Index <= 0)
	if !atEdge {
		q := c.doc.Layout(r)
		if q == nil {
			return
		}
		land, ok := q.WordBoundary(pos.Index, forward)
		if !ok {
			return
		}
		c.place(selection.Position{Region: r, Index: land}, extend)
		return
	}

	var target *region.Region
	if forward {
		target = c.doc.Next(r)
	} else {
		target = c.doc.Prev(r)
	}
	if target == nil {
		return
	}
	q2 := c.doc.Layout(target)
	if q2 == nil {
		return
	}
	entry := 0
	if !forward {
		entry = target.Len()
	}
	land, ok := q2.WordBoundary(entry, forward)
	if !ok {
		land = entry
	}
	c.place(selection.Position{Region: target, Index: land}, extend)
}
