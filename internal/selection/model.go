package selection

import (
	"github.com/dshills/textchain/internal/document"
	"github.com/dshills/textchain/internal/event"
	"github.com/dshills/textchain/internal/region"
)

// Position is one endpoint of the document-wide selection: a region and a
// rune index within it.
type Position struct {
	Region *region.Region
	Index  int
}

// Model owns the selection anchor and derives the head from the focused
// region's selection state. One Model per document; independent documents
// never share anchor state.
type Model struct {
	doc    *document.Document
	bus    *event.Bus
	anchor *Position
}

// NewModel creates a selection model over the document.
func NewModel(doc *document.Document, bus *event.Bus) *Model {
	return &Model{doc: doc, bus: bus}
}

// Anchor returns the current anchor. An anchor whose region is no longer
// registered is stale and reported as absent.
func (m *Model) Anchor() (Position, bool) {
	if m.anchor == nil {
		return Position{}, false
	}
	if !m.doc.Contains(m.anchor.Region) {
		m.anchor = nil
		return Position{}, false
	}
	return *m.anchor, true
}

// SetAnchor fixes the anchor at the given position.
func (m *Model) SetAnchor(p Position) {
	p.Index = clamp(p.Index, 0, p.Region.Len())
	m.anchor = &p
}

// ClearAnchor drops the anchor.
func (m *Model) ClearAnchor() {
	m.anchor = nil
}

// EnsureAnchor creates an anchor at the focused region's caret (or at its
// selection start, if a selection already exists) unless one is already
// active. Called before any extending command executes.
func (m *Model) EnsureAnchor() {
	if _, ok := m.Anchor(); ok {
		return
	}
	focused := m.doc.CurrentFocus()
	if focused == nil {
		return
	}
	m.SetAnchor(Position{Region: focused, Index: focused.Selection().Start})
}

// Head derives the moving endpoint of the selection from the focused
// region's selection and the anchor.
func (m *Model) Head() (Position, bool) {
	focused := m.doc.CurrentFocus()
	if focused == nil {
		return Position{}, false
	}
	sel := focused.Selection()
	if sel.IsEmpty() {
		return Position{Region: focused, Index: sel.Start}, true
	}
	anchor, ok := m.Anchor()
	if !ok {
		return Position{Region: focused, Index: sel.End}, true
	}
	if anchor.Region == focused {
		switch anchor.Index {
		case sel.Start:
			return Position{Region: focused, Index: sel.End}, true
		case sel.End:
			return Position{Region: focused, Index: sel.Start}, true
		}
		// Stale anchor index: the head is whichever bound lies farther
		// from it.
		if sel.End-anchor.Index >= anchor.Index-sel.Start {
			return Position{Region: focused, Index: sel.End}, true
		}
		return Position{Region: focused, Index: sel.Start}, true
	}
	// Anchor lives in another region: the head is the focused selection's
	// boundary nearer the document's outer edge relative to the anchor.
	aOrder, aOK := m.doc.IndexOf(anchor.Region)
	fOrder, fOK := m.doc.IndexOf(focused)
	if !aOK || !fOK {
		return Position{Region: focused, Index: sel.End}, true
	}
	if aOrder < fOrder {
		return Position{Region: focused, Index: sel.End}, true
	}
	return Position{Region: focused, Index: sel.Start}, true
}

// Project recomputes every region's selection range from the anchor and the
// given head, then publishes the per-region ranges. Without an active
// anchor the head becomes a plain caret.
func (m *Model) Project(head Position) {
	anchor, ok := m.Anchor()
	if !ok {
		head.Region.SetCaret(head.Index)
		m.publish()
		return
	}
	aOrder, aOK := m.doc.IndexOf(anchor.Region)
	hOrder, hOK := m.doc.IndexOf(head.Region)
	if !aOK || !hOK {
		head.Region.SetCaret(head.Index)
		m.publish()
		return
	}
	head.Index = clamp(head.Index, 0, head.Region.Len())
	forward := aOrder < hOrder || (aOrder == hOrder && anchor.Index <= head.Index)
	lo, hi := aOrder, hOrder
	if lo > hi {
		lo, hi = hi, lo
	}

	for i, r := range m.doc.Regions() {
		switch {
		case r == anchor.Region && r == head.Region:
			start, end := anchor.Index, head.Index
			if start > end {
				start, end = end, start
			}
			r.SetSelection(region.NewRange(start, end))
		case r == anchor.Region:
			if forward {
				r.SetSelection(region.NewRange(anchor.Index, r.Len()))
			} else {
				r.SetSelection(region.NewRange(0, anchor.Index))
			}
		case r == head.Region:
			if forward {
				r.SetSelection(region.NewRange(0, head.Index))
			} else {
				r.SetSelection(region.NewRange(head.Index, r.Len()))
			}
		case i > lo && i < hi:
			r.SelectAll()
		default:
			r.ClearSelection()
		}
	}
	m.publish()
}

// Collapse returns the position at the very start (toEnd == false) or very
// end (toEnd == true) of the current selection: the first or last region in
// document order holding a non-empty selection, with the matching range
// bound. Reports false when no region is selected.
func (m *Model) Collapse(toEnd bool) (Position, bool) {
	regions := m.doc.Regions()
	if toEnd {
		for i := len(regions) - 1; i >= 0; i-- {
			if regions[i].HasSelection() {
				return Position{Region: regions[i], Index: regions[i].Selection().End}, true
			}
		}
		return Position{}, false
	}
	for _, r := range regions {
		if r.HasSelection() {
			return Position{Region: r, Index: r.Selection().Start}, true
		}
	}
	return Position{}, false
}

// SelectedRegions returns the regions with non-zero selection, in document
// order.
func (m *Model) SelectedRegions() []*region.Region {
	var out []*region.Region
	for _, r := range m.doc.Regions() {
		if r.HasSelection() {
			out = append(out, r)
		}
	}
	return out
}

// IsMultiRegion reports whether strictly more than one region holds a
// non-zero selection.
func (m *Model) IsMultiRegion() bool {
	count := 0
	for _, r := range m.doc.Regions() {
		if r.HasSelection() {
			count++
			if count > 1 {
				return true
			}
		}
	}
	return false
}

// SelectAll sets every region's selection to its full range. The anchor is
// left untouched.
func (m *Model) SelectAll() {
	for _, r := range m.doc.Regions() {
		r.SelectAll()
	}
	m.publish()
}

// ClearAll clears every region's selection and drops the anchor.
func (m *Model) ClearAll() {
	for _, r := range m.doc.Regions() {
		r.ClearSelection()
	}
	m.anchor = nil
	m.publish()
}

// Ranges returns the current per-region selection ranges keyed by region ID.
func (m *Model) Ranges() map[string]region.Range {
	out := make(map[string]region.Range, m.doc.Count())
	for _, r := range m.doc.Regions() {
		out[r.ID()] = r.Selection()
	}
	return out
}

func (m *Model) publish() {
	m.bus.Publish(event.SelectionChanged{Ranges: m.Ranges()})
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
