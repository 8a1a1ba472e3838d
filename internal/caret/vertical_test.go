package caret

import (
	"testing"

	"github.com/dshills/textchain/internal/layout"
	"github.com/dshills/textchain/internal/layout/grid"
	"github.com/dshills/textchain/internal/region"
)

func gridOver(content string) (layout.Query, *region.Region) {
	r := region.New(content)
	return grid.NewWithMetrics(r, 10, 10), r
}

func TestCurrentLineProbesBackAtEnd(t *testing.T) {
	q, r := gridOver("ab\ncd")
	frag, ok := CurrentLine(q, r, 5)
	if !ok {
		t.Fatal("expected geometry")
	}
	// A caret at end-of-buffer sits on the line ending there.
	if frag.Range.Start != 3 || frag.Range.End != 5 {
		t.Errorf("expected line [3:5), got %s", frag.Range)
	}
}

func TestVerticalTargetDown(t *testing.T) {
	q, r := gridOver("ab\ncd\nef")
	target, status := VerticalTarget(q, r, 1, false)
	if status != StepOK {
		t.Fatalf("expected StepOK, got %v", status)
	}
	if target.Range.Start != 3 || target.Range.End != 6 {
		t.Errorf("expected line [3:6), got %s", target.Range)
	}
}

func TestVerticalTargetUp(t *testing.T) {
	q, r := gridOver("ab\ncd\nef")
	target, status := VerticalTarget(q, r, 4, true)
	if status != StepOK {
		t.Fatalf("expected StepOK, got %v", status)
	}
	if target.Range.Start != 0 || target.Range.End != 3 {
		t.Errorf("expected line [0:3), got %s", target.Range)
	}
}

func TestVerticalTargetTopBoundary(t *testing.T) {
	q, r := gridOver("ab\ncd")
	if _, status := VerticalTarget(q, r, 1, true); status != StepBoundary {
		t.Errorf("expected StepBoundary at top line, got %v", status)
	}
}

func TestVerticalTargetBottomBoundary(t *testing.T) {
	q, r := gridOver("ab\ncd")
	if _, status := VerticalTarget(q, r, 4, false); status != StepBoundary {
		t.Errorf("expected StepBoundary at bottom line, got %v", status)
	}
}

func TestVerticalTargetUnavailable(t *testing.T) {
	r := region.New("ab\ncd")
	q := grid.NewWithMetrics(r, 0, 0)
	if _, status := VerticalTarget(q, r, 1, true); status != StepUnavailable {
		t.Errorf("expected StepUnavailable, got %v", status)
	}
}

func TestPointToIndexRoundsToNearerBoundary(t *testing.T) {
	q, r := gridOver("abcd")
	frag, _ := q.LineFragment(0)
	idx, ok := PointToIndex(q, r, 16, frag)
	if !ok {
		t.Fatal("expected geometry")
	}
	if idx != 2 {
		t.Errorf("fraction 0.6 should round up to 2, got %d", idx)
	}
	idx, _ = PointToIndex(q, r, 13, frag)
	if idx != 1 {
		t.Errorf("fraction 0.3 should stay at 1, got %d", idx)
	}
}

func TestPointToIndexPhantomEndShortLine(t *testing.T) {
	q, r := gridOver("long line here\nab\nlonger again")
	frag, _ := q.LineFragment(15) // the "ab" line
	idx, ok := PointToIndex(q, r, 140, frag)
	if !ok {
		t.Fatal("expected geometry")
	}
	// Far-right memory must land at the end of the short line, before its
	// terminator.
	if idx != 17 {
		t.Errorf("expected 17 (end of \"ab\"), got %d", idx)
	}
}

func TestPointToIndexLastLineEnd(t *testing.T) {
	q, r := gridOver("long line here\nab")
	frag, _ := q.LineFragment(16)
	idx, _ := PointToIndex(q, r, 140, frag)
	if idx != 17 {
		t.Errorf("expected end-of-buffer 17, got %d", idx)
	}
}

func TestPointToIndexFixedXIdempotent(t *testing.T) {
	// Repeated descent through lines of differing widths using one stored
	// x lands in the column nearest that x on each line.
	q, r := gridOver("aaaa\nbb\ncccc")
	x := 30.0
	lines := []struct {
		probe int
		want  int
	}{
		{0, 3},  // "aaaa": column 3
		{5, 7},  // "bb": phantom end, column 2 is index 7
		{8, 11}, // "cccc": column 3 is index 11
	}
	for _, tc := range lines {
		frag, ok := q.LineFragment(tc.probe)
		if !ok {
			t.Fatal("expected geometry")
		}
		idx, ok := PointToIndex(q, r, x, frag)
		if !ok {
			t.Fatal("expected geometry")
		}
		if idx != tc.want {
			t.Errorf("line at %d: expected %d, got %d", tc.probe, tc.want, idx)
		}
	}
}

func TestPointToIndexEmptyLine(t *testing.T) {
	q, r := gridOver("ab\n")
	frag, _ := q.EdgeLineFragment(true)
	idx, ok := PointToIndex(q, r, 100, frag)
	if !ok {
		t.Fatal("expected geometry")
	}
	if idx != 3 {
		t.Errorf("expected 3 on the empty final line, got %d", idx)
	}
}

func TestPointToIndexUnavailable(t *testing.T) {
	r := region.New("ab")
	q := grid.NewWithMetrics(r, 0, 0)
	if _, ok := PointToIndex(q, r, 0, layout.Fragment{}); ok {
		t.Error("expected geometry unavailable")
	}
}
