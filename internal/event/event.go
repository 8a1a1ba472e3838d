package event

import (
	"sync"

	"github.com/dshills/textchain/internal/region"
)

// Type identifies an event kind for subscription routing.
type Type string

// Event types published by the coordinator packages.
const (
	TypeSelectionChanged Type = "selection.changed"
	TypeBoundaryReached  Type = "boundary.reached"
	TypeFocusChanged     Type = "focus.changed"
	TypeContentReplaced  Type = "content.replaced"
)

// Event is implemented by every published event value.
type Event interface {
	EventType() Type
}

// Edge identifies which edge of the document a blocked move ran into.
type Edge int

// Document edges.
const (
	EdgeStart Edge = iota
	EdgeEnd
)

// String returns the edge name.
func (e Edge) String() string {
	if e == EdgeStart {
		return "start"
	}
	return "end"
}

// SelectionChanged reports the per-region selection ranges after a
// projection, keyed by region ID.
type SelectionChanged struct {
	Ranges map[string]region.Range
}

// EventType implements Event.
func (SelectionChanged) EventType() Type { return TypeSelectionChanged }

// BoundaryReached reports a movement command that hit a document edge with
// no neighbor to cross into.
type BoundaryReached struct {
	Region *region.Region
	Edge   Edge
}

// EventType implements Event.
func (BoundaryReached) EventType() Type { return TypeBoundaryReached }

// FocusChanged reports a focus handoff between regions. Previous or
// Current may be nil.
type FocusChanged struct {
	Previous *region.Region
	Current  *region.Region
}

// EventType implements Event.
func (FocusChanged) EventType() Type { return TypeFocusChanged }

// ContentReplaced reports that a region's content was replaced wholesale,
// so external consumers can re-layout and re-bind.
type ContentReplaced struct {
	Region  *region.Region
	Content string
}

// EventType implements Event.
func (ContentReplaced) EventType() Type { return TypeContentReplaced }

// Handler receives published events.
type Handler func(Event)

// Bus routes published events to subscribed handlers.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
	all      []Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[Type][]Handler)}
}

// Subscribe registers a handler for one event type.
func (b *Bus) Subscribe(t Type, h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[t] = append(b.handlers[t], h)
}

// SubscribeAll registers a handler for every event type.
func (b *Bus) SubscribeAll(h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.all = append(b.all, h)
}

// Publish delivers the event synchronously to matching handlers.
// Publishing on a nil bus is a no-op, so coordinator components can run
// without a bus attached.
func (b *Bus) Publish(e Event) {
	if b == nil || e == nil {
		return
	}
	b.mu.RLock()
	typed := append([]Handler(nil), b.handlers[e.EventType()]...)
	all := append([]Handler(nil), b.all...)
	b.mu.RUnlock()

	for _, h := range typed {
		h(e)
	}
	for _, h := range all {
		h(e)
	}
}
