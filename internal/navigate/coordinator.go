package navigate

import (
	"github.com/dshills/textchain/internal/caret"
	"github.com/dshills/textchain/internal/document"
	"github.com/dshills/textchain/internal/event"
	"github.com/dshills/textchain/internal/region"
	"github.com/dshills/textchain/internal/selection"
)

// Coordinator drives caret movement and selection extension across regions.
type Coordinator struct {
	doc  *document.Document
	sel  *selection.Model
	xmem *caret.XMemory
	bus  *event.Bus
}

// New creates a coordinator over the document, selection model, and
// horizontal memory.
func New(doc *document.Document, sel *selection.Model, xmem *caret.XMemory, bus *event.Bus) *Coordinator {
	return &Coordinator{doc: doc, sel: sel, xmem: xmem, bus: bus}
}

// XMemory returns the coordinator's horizontal memory.
func (c *Coordinator) XMemory() *caret.XMemory {
	return c.xmem
}

// InvalidateGeometry clears the horizontal memory and forces a chain
// re-sort. Call after an external mutation (programmatic text replacement,
// frame changes) invalidated cached geometry.
func (c *Coordinator) InvalidateGeometry() {
	c.xmem.Reset()
	c.doc.Resort()
}

// Dispatch executes one movement command. Extending commands grow the
// selection from the anchor; plain commands move the caret, collapsing any
// active selection first.
func (c *Coordinator) Dispatch(cmd Command, extend bool) {
	switch cmd {
	case GlobalStart, GlobalEnd:
		c.globalJump(cmd.isForward())
	case MoveUp, MoveDown:
		c.vertical(cmd.isForward(), extend)
	case MoveLeft, MoveRight:
		c.horizontal(cmd.isForward(), extend)
	case WordLeft, WordRight:
		c.word(cmd.isForward(), extend)
	}
}

// globalJump clears all selection state and places the caret at the
// absolute start or end of the document.
func (c *Coordinator) globalJump(toEnd bool) {
	c.sel.ClearAll()
	c.xmem.Reset()
	var target *region.Region
	if toEnd {
		target = c.doc.Last()
	} else {
		target = c.doc.First()
	}
	if target == nil {
		return
	}
	if toEnd {
		target.SetCaret(target.Len())
	} else {
		target.SetCaret(0)
	}
	c.doc.RequestFocus(target)
}

// collapseActive collapses an active selection to its start (forward ==
// false) or end boundary, focuses that region, and returns the collapsed
// position. Reports false when nothing was selected.
func (c *Coordinator) collapseActive(forward bool) (selection.Position, bool) {
	pos, ok := c.sel.Collapse(forward)
	if !ok {
		return selection.Position{}, false
	}
	c.sel.ClearAll()
	pos.Region.SetCaret(pos.Index)
	c.doc.RequestFocus(pos.Region)
	return pos, true
}

// head returns the position movement starts from: the derived selection
// head when extending, the focused caret otherwise.
func (c *Coordinator) head() (selection.Position, bool) {
	return c.sel.Head()
}

// clampToEdge pins the caret to the document-absolute boundary and reports
// the blocked move.
func (c *Coordinator) clampToEdge(r *region.Region, forward bool) {
	edge := event.EdgeStart
	if forward {
		edge = event.EdgeEnd
		r.SetCaret(r.Len())
	} else {
		r.SetCaret(0)
	}
	c.doc.RequestFocus(r)
	c.bus.Publish(event.BoundaryReached{Region: r, Edge: edge})
}

// place puts the movement result into effect: a plain move sets a caret in
// the target region; an extending move re-projects the selection with the
// new head. Focus follows the target region either way.
func (c *Coordinator) place(pos selection.Position, extend bool) {
	if extend {
		c.sel.Project(pos)
	} else {
		pos.Region.SetCaret(pos.Index)
	}
	c.doc.RequestFocus(pos.Region)
}
