package mouse

import (
	"errors"
	"testing"

	"github.com/dshills/textchain/internal/caret"
	"github.com/dshills/textchain/internal/document"
	"github.com/dshills/textchain/internal/event"
	"github.com/dshills/textchain/internal/geom"
	"github.com/dshills/textchain/internal/layout/grid"
	"github.com/dshills/textchain/internal/region"
	"github.com/dshills/textchain/internal/selection"
)

// fixture stacks regions with 10px cells and 20px gaps between frames.
type fixture struct {
	doc  *document.Document
	sel  *selection.Model
	xmem *caret.XMemory
	tr   *Tracker
	regs []*region.Region
}

func newFixture(contents ...string) *fixture {
	doc := document.New()
	regs := make([]*region.Region, len(contents))
	for i, c := range contents {
		r := region.New(c)
		r.SetFrame(geom.NewRect(0, float64(i*50), 200, 30))
		doc.Register(r, grid.NewWithMetrics(r, 10, 10))
		regs[i] = r
	}
	sel := selection.NewModel(doc, event.NewBus())
	xmem := caret.NewXMemory()
	return &fixture{doc: doc, sel: sel, xmem: xmem, tr: NewTracker(doc, sel, xmem), regs: regs}
}

func TestBeginDragPlacesAnchorAndCaret(t *testing.T) {
	f := newFixture("abcdef", "ghij")
	f.regs[1].SetSelection(region.NewRange(0, 2))
	f.tr.BeginDrag(f.regs[0], geom.NewPoint(32, 5))

	if !f.tr.IsDragging() {
		t.Error("expected dragging state")
	}
	if got := f.regs[0].Caret(); got != 3 {
		t.Errorf("expected caret 3, got %d", got)
	}
	if f.regs[1].HasSelection() {
		t.Error("other regions' selections should be cleared")
	}
	anchor, ok := f.sel.Anchor()
	if !ok || anchor.Region != f.regs[0] || anchor.Index != 3 {
		t.Errorf("expected anchor (region 0, 3), got (%v, %d)", anchor.Region, anchor.Index)
	}
	if f.doc.CurrentFocus() != f.regs[0] {
		t.Error("focus should move to the pressed region")
	}
}

func TestBeginDragClearsXMemory(t *testing.T) {
	f := newFixture("abcdef")
	f.xmem.StoreEndpoint(f.doc.Layout(f.regs[0]), f.regs[0], 2)
	f.tr.BeginDrag(f.regs[0], geom.NewPoint(0, 5))
	if f.xmem.HasValue() {
		t.Error("mouse-originated selection must clear the stored x")
	}
}

func TestDragProjectsSelection(t *testing.T) {
	f := newFixture("abcdef", "ghij")
	f.tr.BeginDrag(f.regs[0], geom.NewPoint(20, 5))
	f.tr.Drag(geom.NewPoint(20, 55)) // inside region 1, column 2

	if sel := f.regs[0].Selection(); sel.Start != 2 || sel.End != 6 {
		t.Errorf("first region: expected [2:6), got %s", sel)
	}
	if sel := f.regs[1].Selection(); sel.Start != 0 || sel.End != 2 {
		t.Errorf("second region: expected [0:2), got %s", sel)
	}
}

func TestDragIntoGapSnapsToNearerRegion(t *testing.T) {
	f := newFixture("abcdef", "ghij")
	f.tr.BeginDrag(f.regs[0], geom.NewPoint(20, 5))

	// Gap between frames spans y in [30, 50); below 40 region 1 is nearer.
	f.tr.Drag(geom.NewPoint(0, 42))
	if sel := f.regs[1].Selection(); !sel.IsEmpty() || sel.Start != 0 {
		t.Errorf("point above region 1 should snap to its index 0, got %s", sel)
	}
	if sel := f.regs[0].Selection(); sel.Start != 2 || sel.End != 6 {
		t.Errorf("first region: expected [2:6), got %s", sel)
	}

	// Above 40 region 0 is nearer; below its bottom edge snaps to length.
	f.tr.Drag(geom.NewPoint(0, 35))
	if sel := f.regs[0].Selection(); sel.Start != 2 || sel.End != 6 {
		t.Errorf("expected [2:6) after snapping to region 0 length, got %s", sel)
	}
}

func TestDragWithoutBeginIsNoop(t *testing.T) {
	f := newFixture("abcdef")
	f.tr.Drag(geom.NewPoint(30, 5))
	if f.regs[0].HasSelection() {
		t.Error("drag without a gesture should do nothing")
	}
}

func TestEndDragKeepsSelection(t *testing.T) {
	f := newFixture("abcdef")
	f.tr.BeginDrag(f.regs[0], geom.NewPoint(0, 5))
	f.tr.Drag(geom.NewPoint(40, 5))
	f.tr.EndDrag()
	if f.tr.IsDragging() {
		t.Error("dragging flag should be cleared")
	}
	if sel := f.regs[0].Selection(); sel.Start != 0 || sel.End != 4 {
		t.Errorf("selection should persist after EndDrag, got %s", sel)
	}
}

func TestShiftClickWithoutAnchorBehavesAsBeginDrag(t *testing.T) {
	f := newFixture("abcdef")
	f.tr.ShiftClick(f.regs[0], geom.NewPoint(20, 5))
	anchor, ok := f.sel.Anchor()
	if !ok || anchor.Index != 2 {
		t.Errorf("expected anchor at 2, got %d", anchor.Index)
	}
}

func TestShiftClickExtendsFromAnchor(t *testing.T) {
	f := newFixture("abcdef", "ghij")
	f.tr.BeginDrag(f.regs[0], geom.NewPoint(20, 5))
	f.tr.EndDrag()
	f.tr.ShiftClick(f.regs[1], geom.NewPoint(30, 55))

	if sel := f.regs[0].Selection(); sel.Start != 2 || sel.End != 6 {
		t.Errorf("first region: expected [2:6), got %s", sel)
	}
	if sel := f.regs[1].Selection(); sel.Start != 0 || sel.End != 3 {
		t.Errorf("second region: expected [0:3), got %s", sel)
	}
}

func TestSelectAll(t *testing.T) {
	f := newFixture("abc", "defg")
	if err := f.tr.SelectAll(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel := f.regs[0].Selection(); sel.Start != 0 || sel.End != 3 {
		t.Errorf("expected [0:3), got %s", sel)
	}
	if sel := f.regs[1].Selection(); sel.Start != 0 || sel.End != 4 {
		t.Errorf("expected [0:4), got %s", sel)
	}
}

func TestSelectAllRejectedWhileDragging(t *testing.T) {
	f := newFixture("abc")
	f.tr.BeginDrag(f.regs[0], geom.NewPoint(0, 5))
	err := f.tr.SelectAll()
	if !errors.Is(err, ErrDragInProgress) {
		t.Errorf("expected ErrDragInProgress, got %v", err)
	}
}
