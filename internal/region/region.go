package region

import (
	"github.com/google/uuid"

	"github.com/dshills/textchain/internal/geom"
)

// Region is one text buffer in the document chain. Content is a sequence of
// Unicode scalars; all indices are rune indices. A region always carries a
// selection range; a zero-length range is the caret.
type Region struct {
	id      string
	content []rune
	sel     Range
	frame   geom.Rect
}

// New creates a region with the given initial content and a caret at 0.
func New(content string) *Region {
	return &Region{
		id:      uuid.New().String(),
		content: []rune(content),
	}
}

// ID returns the region's stable identity.
func (r *Region) ID() string {
	return r.id
}

// Len returns the content length in runes.
func (r *Region) Len() int {
	return len(r.content)
}

// Text returns the full content as a string.
func (r *Region) Text() string {
	return string(r.content)
}

// Runes returns the content as runes. The slice must not be mutated.
func (r *Region) Runes() []rune {
	return r.content
}

// Slice returns the content covered by the given range, clamped to bounds.
func (r *Region) Slice(rng Range) string {
	rng = rng.Clamp(len(r.content))
	return string(r.content[rng.Start:rng.End])
}

// Replace replaces the entire content and collapses the selection to a
// caret clamped into the new bounds.
func (r *Region) Replace(content string) {
	r.content = []rune(content)
	r.sel = CaretRange(r.sel.Start).Clamp(len(r.content))
}

// Selection returns the current selection range.
func (r *Region) Selection() Range {
	return r.sel
}

// SetSelection sets the selection range, clamped to content bounds.
func (r *Region) SetSelection(rng Range) {
	r.sel = rng.Clamp(len(r.content))
}

// SelectAll selects the full content.
func (r *Region) SelectAll() {
	r.sel = Range{Start: 0, End: len(r.content)}
}

// ClearSelection collapses the selection to a caret at its start.
func (r *Region) ClearSelection() {
	r.sel = CaretRange(r.sel.Start)
}

// HasSelection returns true if the selection has non-zero length.
func (r *Region) HasSelection() bool {
	return !r.sel.IsEmpty()
}

// Caret returns the caret index. For a non-empty selection this is the
// selection start; callers that care about direction consult the
// selection model instead.
func (r *Region) Caret() int {
	return r.sel.Start
}

// SetCaret places a zero-length selection at the given index, clamped.
func (r *Region) SetCaret(index int) {
	r.sel = CaretRange(index).Clamp(len(r.content))
}

// Frame returns the region's rectangle in document coordinates.
func (r *Region) Frame() geom.Rect {
	return r.frame
}

// SetFrame sets the region's rectangle in document coordinates. The frame
// drives document ordering and gap resolution during drags.
func (r *Region) SetFrame(frame geom.Rect) {
	r.frame = frame
}
