package event

import (
	"testing"

	"github.com/dshills/textchain/internal/region"
)

func TestSubscribeTyped(t *testing.T) {
	bus := NewBus()
	var got int
	bus.Subscribe(TypeFocusChanged, func(e Event) {
		got++
	})
	bus.Publish(FocusChanged{})
	bus.Publish(SelectionChanged{})
	if got != 1 {
		t.Errorf("expected 1 delivery, got %d", got)
	}
}

func TestSubscribeAll(t *testing.T) {
	bus := NewBus()
	var got []Type
	bus.SubscribeAll(func(e Event) {
		got = append(got, e.EventType())
	})
	bus.Publish(FocusChanged{})
	bus.Publish(BoundaryReached{Edge: EdgeEnd})
	if len(got) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(got))
	}
	if got[0] != TypeFocusChanged || got[1] != TypeBoundaryReached {
		t.Errorf("unexpected delivery order: %v", got)
	}
}

func TestPublishOnNilBus(t *testing.T) {
	var bus *Bus
	bus.Publish(FocusChanged{}) // must not panic
}

func TestSelectionChangedCarriesRanges(t *testing.T) {
	bus := NewBus()
	r := region.New("abc")
	var ranges map[string]region.Range
	bus.Subscribe(TypeSelectionChanged, func(e Event) {
		ranges = e.(SelectionChanged).Ranges
	})
	bus.Publish(SelectionChanged{Ranges: map[string]region.Range{
		r.ID(): region.NewRange(1, 2),
	}})
	if rng := ranges[r.ID()]; rng.Start != 1 || rng.End != 2 {
		t.Errorf("expected [1:2), got %s", rng)
	}
}

func TestEdgeString(t *testing.T) {
	if EdgeStart.String() != "start" || EdgeEnd.String() != "end" {
		t.Error("unexpected edge names")
	}
}
