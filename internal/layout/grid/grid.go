// Package grid implements layout.Query for a monospace character grid.
// Each cell is CellWidth pixels wide (double for wide runes, per
// go-runewidth) and each line is LineHeight pixels tall. It is the layout
// used by the demo and the test suite; a proportional text shaper can be
// substituted without touching the coordinator.
package grid

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/textchain/internal/geom"
	"github.com/dshills/textchain/internal/layout"
	"github.com/dshills/textchain/internal/region"
)

// Default cell metrics, in device-independent pixels.
const (
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0
)

// Layout is a monospace grid layout over one region's content.
// The zero value is not laid out; use New.
type Layout struct {
	reg   *region.Region
	cellW float64
	lineH float64
}

// New creates a grid layout over the given region with default metrics.
func New(r *region.Region) *Layout {
	return &Layout{reg: r, cellW: DefaultCellWidth, lineH: DefaultCellHeight}
}

// NewWithMetrics creates a grid layout with explicit cell metrics.
// Non-positive metrics produce a layout that reports geometry-unavailable.
func NewWithMetrics(r *region.Region, cellW, lineH float64) *Layout {
	return &Layout{reg: r, cellW: cellW, lineH: lineH}
}

// SetMetrics replaces the cell metrics, for embedders whose metrics can
// change at runtime. Non-positive metrics make the layout report
// geometry-unavailable, as with NewWithMetrics.
func (l *Layout) SetMetrics(cellW, lineH float64) {
	l.cellW = cellW
	l.lineH = lineH
}

// laidOut reports whether the layout can answer geometric queries.
func (l *Layout) laidOut() bool {
	return l.reg != nil && l.cellW > 0 && l.lineH > 0
}

// line is one computed line: rune range including the trailing terminator,
// and the rune range of its visible text.
type line struct {
	start   int // first rune index
	end     int // one past the terminator, if any
	textEnd int // one past the last visible rune (before the terminator)
}

// lines splits the region content on line terminators. A trailing
// terminator yields an empty final line, so a caret at end-of-buffer always
// has a line to sit on.
func (l *Layout) lines() []line {
	content := l.reg.Runes()
	var out []line
	start := 0
	for i, r := range content {
		if r == '\n' {
			out = append(out, line{start: start, end: i + 1, textEnd: i})
			start = i + 1
		}
	}
	out = append(out, line{start: start, end: len(content), textEnd: len(content)})
	return out
}

// lineRect computes the pixel rectangle for the given line at row.
func (l *Layout) lineRect(ln line, row int) geom.Rect {
	content := l.reg.Runes()
	w := 0.0
	for _, r := range content[ln.start:ln.textEnd] {
		w += l.runeWidth(r)
	}
	return geom.NewRect(0, float64(row)*l.lineH, w, l.lineH)
}

// runeWidth returns the pixel width of one rune's cell.
func (l *Layout) runeWidth(r rune) float64 {
	if r == '\n' {
		return 0
	}
	return float64(runewidth.RuneWidth(r)) * l.cellW
}

func (l *Layout) fragment(ln line, row int) layout.Fragment {
	return layout.Fragment{
		Range: region.Range{Start: ln.start, End: ln.end},
		Rect:  l.lineRect(ln, row),
	}
}

// LineFragment returns the line containing the given rune index.
// An index at or past end-of-buffer resolves to the last line.
func (l *Layout) LineFragment(index int) (layout.Fragment, bool) {
	if !l.laidOut() {
		return layout.Fragment{}, false
	}
	lines := l.lines()
	for row, ln := range lines {
		if index < ln.end {
			return l.fragment(ln, row), true
		}
	}
	return l.fragment(lines[len(lines)-1], len(lines)-1), true
}

// EdgeLineFragment returns the first or last line.
func (l *Layout) EdgeLineFragment(fromEnd bool) (layout.Fragment, bool) {
	if !l.laidOut() {
		return layout.Fragment{}, false
	}
	lines := l.lines()
	if fromEnd {
		return l.fragment(lines[len(lines)-1], len(lines)-1), true
	}
	return l.fragment(lines[0], 0), true
}

// CharacterIndex maps a region-local point to the insertion index at or
// left of it, with the fractional distance of the point across that glyph.
func (l *Layout) CharacterIndex(p geom.Point) (int, float64, bool) {
	if !l.laidOut() {
		return 0, 0, false
	}
	lines := l.lines()
	row := int(p.Y / l.lineH)
	if p.Y < 0 {
		row = 0
	}
	if row >= len(lines) {
		row = len(lines) - 1
	}
	ln := lines[row]
	if p.X <= 0 {
		return ln.start, 0, true
	}
	content := l.reg.Runes()
	x := 0.0
	for i := ln.start; i < ln.textEnd; i++ {
		w := l.runeWidth(content[i])
		if w > 0 && p.X < x+w {
			return i, (p.X - x) / w, true
		}
		x += w
	}
	return ln.textEnd, 0, true
}

// IsFirstLine reports whether the given range is the first line.
func (l *Layout) IsFirstLine(r region.Range) bool {
	if !l.laidOut() {
		return false
	}
	ln := l.lines()[0]
	return r.Start == ln.start && r.End == ln.end
}

// IsLastLine reports whether the given range is the last line.
func (l *Layout) IsLastLine(r region.Range) bool {
	if !l.laidOut() {
		return false
	}
	lines := l.lines()
	ln := lines[len(lines)-1]
	return r.Start == ln.start && r.End == ln.end
}

// GlyphRect returns the bounding rectangle of the glyph at the given index.
// Line terminators have a zero-width rectangle at the end of their line.
func (l *Layout) GlyphRect(index int) (geom.Rect, bool) {
	if !l.laidOut() {
		return geom.Rect{}, false
	}
	content := l.reg.Runes()
	if index < 0 || index >= len(content) {
		return geom.Rect{}, false
	}
	lines := l.lines()
	for row, ln := range lines {
		if index >= ln.end {
			continue
		}
		x := 0.0
		for i := ln.start; i < index; i++ {
			x += l.runeWidth(content[i])
		}
		w := l.runeWidth(content[index])
		return geom.NewRect(x, float64(row)*l.lineH, w, l.lineH), true
	}
	return geom.Rect{}, false
}
