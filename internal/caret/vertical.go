package caret

import (
	"github.com/dshills/textchain/internal/geom"
	"github.com/dshills/textchain/internal/layout"
	"github.com/dshills/textchain/internal/region"
)

// StepStatus reports the outcome of resolving a vertical target line.
type StepStatus int

// Vertical step outcomes.
const (
	// StepOK means a target line was resolved.
	StepOK StepStatus = iota
	// StepBoundary means the caret's line is the region's first or last
	// line; the move must cross regions or clamp.
	StepBoundary
	// StepUnavailable means the layout could not answer; callers fall
	// back to native behavior without touching coordinator state.
	StepUnavailable
)

// isTerminator reports whether the rune ends a line.
func isTerminator(r rune) bool {
	return r == '\n' || r == '\r'
}

// CurrentLine returns the line fragment the caret at index visually sits
// on. A caret at end-of-buffer sits on the line containing the final glyph,
// not on a hypothetical following line.
func CurrentLine(q layout.Query, r *region.Region, index int) (layout.Fragment, bool) {
	probe := index
	if index == r.Len() && index > 0 {
		probe = index - 1
	}
	return q.LineFragment(probe)
}

// VerticalTarget resolves the line directly above (up) or below the line
// containing the caret at index.
func VerticalTarget(q layout.Query, r *region.Region, index int, up bool) (layout.Fragment, StepStatus) {
	current, ok := CurrentLine(q, r, index)
	if !ok {
		return layout.Fragment{}, StepUnavailable
	}
	var probe int
	if up {
		probe = current.Range.Start - 1
		if probe < 0 {
			return layout.Fragment{}, StepBoundary
		}
	} else {
		probe = current.Range.End
		if probe >= r.Len() {
			return layout.Fragment{}, StepBoundary
		}
	}
	target, ok := q.LineFragment(probe)
	if !ok {
		return layout.Fragment{}, StepUnavailable
	}
	// Degenerate layouts can hand back the same visual line; treat it as
	// a boundary rather than looping in place.
	if target.Rect.Y == current.Rect.Y {
		return layout.Fragment{}, StepBoundary
	}
	return target, StepOK
}

// lineEndIndex returns the caret index at the visual end of the line,
// excluding any trailing line terminator.
func lineEndIndex(r *region.Region, frag layout.Fragment) int {
	runes := r.Runes()
	end := frag.Range.End
	if end > len(runes) {
		end = len(runes)
	}
	for end > frag.Range.Start && isTerminator(runes[end-1]) {
		end--
	}
	return end
}

// lastRealGlyphRight returns the right edge of the line's last glyph that
// is not a line terminator, falling back to the fragment rectangle.
func lastRealGlyphRight(q layout.Query, r *region.Region, frag layout.Fragment) float64 {
	runes := r.Runes()
	i := frag.Range.End - 1
	if i >= len(runes) {
		i = len(runes) - 1
	}
	for i >= frag.Range.Start && i >= 0 && isTerminator(runes[i]) {
		i--
	}
	if i < frag.Range.Start || i < 0 {
		return frag.Rect.X
	}
	if rect, ok := q.GlyphRect(i); ok {
		return rect.MaxX()
	}
	return frag.Rect.MaxX()
}

// PointToIndex resolves the caret index nearest to the horizontal
// coordinate x on the target line. The same procedure lands the caret when
// vertical navigation crosses into a neighboring region, with target set to
// that region's first or last line.
func PointToIndex(q layout.Query, r *region.Region, x float64, target layout.Fragment) (int, bool) {
	idx, frac, ok := q.CharacterIndex(geom.NewPoint(x, target.Rect.MidY()))
	if !ok {
		return 0, false
	}
	// Round to the nearer insertion point.
	if frac >= 0.5 {
		idx++
	}
	length := r.Len()
	if idx < 0 {
		idx = 0
	} else if idx > length {
		idx = length
	}
	// Queries can drift to an adjacent line; snap back to this line's end.
	if !onLine(idx, target, length) {
		idx = lineEndIndex(r, target)
	}
	// Phantom end: a remembered far-right column must land at the end of
	// a short line, not be truncated mid-line by rounding.
	if onLine(idx, target, length) && x > lastRealGlyphRight(q, r, target) {
		idx = lineEndIndex(r, target)
	}
	return idx, true
}

// onLine reports whether idx is a valid insertion index on the line. The
// line's end index counts only when the line is the buffer's final line.
func onLine(idx int, frag layout.Fragment, length int) bool {
	if idx < frag.Range.Start {
		return false
	}
	if idx < frag.Range.End {
		return true
	}
	return idx == frag.Range.End && frag.Range.End == length
}
