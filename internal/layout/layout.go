// Package layout declares the geometric query capability the coordinator
// consumes, one instance per region. Any text layout engine that can answer
// these seven questions is substitutable; the grid subpackage provides a
// monospace implementation.
package layout

import (
	"github.com/dshills/textchain/internal/geom"
	"github.com/dshills/textchain/internal/region"
)

// Fragment is one laid-out line: the rune range it covers (including a
// trailing line terminator, if any) and its pixel rectangle in region-local
// coordinates.
type Fragment struct {
	Range region.Range
	Rect  geom.Rect
}

// Query answers geometric questions about one region's laid-out text.
// Every method that can fail reports ok == false when geometry is not
// available (for example, the container has not been laid out yet); callers
// degrade to the nearest safe behavior without mutating coordinator state.
type Query interface {
	// LineFragment returns the line containing the given rune index.
	LineFragment(index int) (Fragment, bool)

	// EdgeLineFragment returns the first line (fromEnd == false) or the
	// last line (fromEnd == true).
	EdgeLineFragment(fromEnd bool) (Fragment, bool)

	// CharacterIndex returns the rune index of the insertion point at or
	// left of the given region-local point, together with the fractional
	// horizontal distance of the point across the glyph at that index
	// (0 at its left edge, approaching 1 at its right edge).
	CharacterIndex(p geom.Point) (index int, fraction float64, ok bool)

	// IsFirstLine reports whether the given line range is the first line.
	IsFirstLine(r region.Range) bool

	// IsLastLine reports whether the given line range is the last line.
	IsLastLine(r region.Range) bool

	// GlyphRect returns the bounding rectangle of the glyph at the given
	// rune index.
	GlyphRect(index int) (geom.Rect, bool)

	// WordBoundary returns the nearest word boundary strictly after
	// (forward) or before (backward) the given rune index.
	WordBoundary(index int, forward bool) (int, bool)
}
