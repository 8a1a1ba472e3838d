// Package edit performs the cross-region edits the regions cannot do
// alone: deleting a selection that spans several regions by merging its
// endpoints, and assembling the clipboard text for a multi-region
// selection.
package edit

import (
	"strings"

	"github.com/dshills/textchain/internal/caret"
	"github.com/dshills/textchain/internal/document"
	"github.com/dshills/textchain/internal/event"
	"github.com/dshills/textchain/internal/region"
	"github.com/dshills/textchain/internal/selection"
)

// RegionSeparator joins consecutive regions' text when copying a
// multi-region selection.
const RegionSeparator = "\n\n"

// Coordinator applies cross-region edits to the document.
type Coordinator struct {
	doc  *document.Document
	sel  *selection.Model
	xmem *caret.XMemory
	bus  *event.Bus
}

// New creates an edit coordinator.
func New(doc *document.Document, sel *selection.Model, xmem *caret.XMemory, bus *event.Bus) *Coordinator {
	return &Coordinator{doc: doc, sel: sel, xmem: xmem, bus: bus}
}

// DeleteSelection deletes the active selection across all participating
// regions. The first region keeps its content before the selection plus the
// last region's content after it; every other participating region is
// emptied but never removed from the document. Focus lands in the first
// region with the caret at the merge point. With no selection the call is a
// no-op.
func (c *Coordinator) DeleteSelection() {
	regions := c.sel.SelectedRegions()
	if len(regions) == 0 {
		return
	}

	first := regions[0]
	last := regions[len(regions)-1]
	prefix := first.Slice(region.NewRange(0, first.Selection().Start))
	suffix := last.Slice(region.NewRange(last.Selection().End, last.Len()))

	first.Replace(prefix + suffix)
	for _, r := range regions[1:] {
		r.Replace("")
	}

	first.SetCaret(len([]rune(prefix)))
	c.sel.ClearAll()
	c.xmem.Reset()
	c.doc.RequestFocus(first)

	for _, r := range regions {
		c.bus.Publish(event.ContentReplaced{Region: r, Content: r.Text()})
	}
}

// SelectedText returns the selected text across all regions in document
// order looking like one document: consecutive regions' substrings joined
// by a double line break, with no separator before the first or after the
// last. Returns "" when nothing is selected.
func (c *Coordinator) SelectedText() string {
	regions := c.sel.SelectedRegions()
	if len(regions) == 0 {
		return ""
	}
	parts := make([]string, len(regions))
	for i, r := range regions {
		parts[i] = r.Slice(r.Selection())
	}
	return strings.Join(parts, RegionSeparator)
}
