// Package mouse implements the mouse-driven selection gesture: press, drag,
// release, shift-click, and select-all. Points arrive in document
// coordinates; region frames map them into region-local layout space, and
// points falling in the gap between regions snap to the nearer region's
// edge.
package mouse

import (
	"errors"

	"github.com/dshills/textchain/internal/caret"
	"github.com/dshills/textchain/internal/document"
	"github.com/dshills/textchain/internal/geom"
	"github.com/dshills/textchain/internal/region"
	"github.com/dshills/textchain/internal/selection"
)

// ErrDragInProgress is returned when a command that would conflict with an
// active drag gesture is rejected.
var ErrDragInProgress = errors.New("drag gesture in progress")

// Tracker owns the drag gesture state for one document.
type Tracker struct {
	doc      *document.Document
	sel      *selection.Model
	xmem     *caret.XMemory
	dragging bool
}

// NewTracker creates a tracker over the document and selection model.
func NewTracker(doc *document.Document, sel *selection.Model, xmem *caret.XMemory) *Tracker {
	return &Tracker{doc: doc, sel: sel, xmem: xmem}
}

// IsDragging reports whether a drag gesture is active.
func (t *Tracker) IsDragging() bool {
	return t.dragging
}

// BeginDrag starts a selection gesture at the given document-coordinate
// point in the region: other regions' selections are cleared, the anchor is
// fixed at the resolved index, and the horizontal memory is invalidated.
func (t *Tracker) BeginDrag(r *region.Region, p geom.Point) {
	idx, ok := t.resolveIndex(r, p)
	if !ok {
		return
	}
	for _, other := range t.doc.Regions() {
		if other != r {
			other.ClearSelection()
		}
	}
	r.SetCaret(idx)
	t.sel.SetAnchor(selection.Position{Region: r, Index: idx})
	t.doc.RequestFocus(r)
	t.dragging = true
	t.xmem.Reset()
}

// Drag extends the gesture to the given document-coordinate point,
// re-projecting the selection from the unchanged anchor. A point in the gap
// between regions snaps to index 0 of the nearer region when above its top
// edge, or to its length when below.
func (t *Tracker) Drag(p geom.Point) {
	if !t.dragging {
		return
	}
	target, above, inside := t.regionAt(p)
	if target == nil {
		return
	}
	var idx int
	if inside {
		resolved, ok := t.resolveIndex(target, p)
		if !ok {
			return
		}
		idx = resolved
	} else if above {
		idx = 0
	} else {
		idx = target.Len()
	}
	t.sel.Project(selection.Position{Region: target, Index: idx})
	t.doc.RequestFocus(target)
}

// EndDrag finishes the gesture. Selection state persists; only the
// dragging flag is cleared.
func (t *Tracker) EndDrag() {
	t.dragging = false
}

// ShiftClick extends the selection to the click point, or behaves as
// BeginDrag when no anchor exists yet.
func (t *Tracker) ShiftClick(r *region.Region, p geom.Point) {
	if _, ok := t.sel.Anchor(); !ok {
		t.BeginDrag(r, p)
		return
	}
	idx, ok := t.resolveIndex(r, p)
	if !ok {
		return
	}
	t.xmem.Reset()
	t.sel.Project(selection.Position{Region: r, Index: idx})
	t.doc.RequestFocus(r)
}

// SelectAll selects every region's full range. The anchor is untouched.
// Rejected while a drag is active, since that would conflict with the
// in-progress gesture.
func (t *Tracker) SelectAll() error {
	if t.dragging {
		return ErrDragInProgress
	}
	t.sel.SelectAll()
	t.xmem.Reset()
	return nil
}

// resolveIndex maps a document-coordinate point to a rune index in the
// region, rounding to the nearer insertion point.
func (t *Tracker) resolveIndex(r *region.Region, p geom.Point) (int, bool) {
	q := t.doc.Layout(r)
	if q == nil {
		return 0, false
	}
	frame := r.Frame()
	local := p.Offset(-frame.X, -frame.Y)
	idx, frac, ok := q.CharacterIndex(local)
	if !ok {
		return 0, false
	}
	if frac >= 0.5 {
		idx++
	}
	if idx < 0 {
		idx = 0
	} else if idx > r.Len() {
		idx = r.Len()
	}
	return idx, true
}

// regionAt finds the region containing the point vertically. When the
// point falls in a gap, the nearer region is returned with inside == false
// and above reporting which side of it the point lies on.
func (t *Tracker) regionAt(p geom.Point) (target *region.Region, above, inside bool) {
	var bestDist float64
	for _, r := range t.doc.Regions() {
		f := r.Frame()
		if f.ContainsY(p.Y) {
			return r, false, true
		}
		var dist float64
		if p.Y < f.Y {
			dist = f.Y - p.Y
		} else {
			dist = p.Y - f.MaxY()
		}
		if target == nil || dist < bestDist {
			target = r
			bestDist = dist
			above = p.Y < f.Y
		}
	}
	return target, above, false
}
