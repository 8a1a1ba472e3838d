package document

import (
	"sort"

	"github.com/dshills/textchain/internal/event"
	"github.com/dshills/textchain/internal/layout"
	"github.com/dshills/textchain/internal/region"
)

// FocusController is the capability that owns which region holds focus.
// The document provides a default implementation; embedders with their own
// focus plumbing supply theirs via WithFocusController.
type FocusController interface {
	RequestFocus(r *region.Region)
	CurrentFocus() *region.Region
}

type entry struct {
	reg *region.Region
	lq  layout.Query
}

// Document is the ordered sequence of registered regions plus their layout
// handles and the focus controller.
type Document struct {
	entries []entry
	dirty   bool
	focus   FocusController
	bus     *event.Bus
}

// Option configures a Document during creation.
type Option func(*Document)

// WithFocusController supplies an external focus owner.
func WithFocusController(fc FocusController) Option {
	return func(d *Document) {
		if fc != nil {
			d.focus = fc
		}
	}
}

// WithBus attaches an event bus for focus notifications.
func WithBus(bus *event.Bus) Option {
	return func(d *Document) {
		d.bus = bus
	}
}

// New creates an empty document.
func New(opts ...Option) *Document {
	d := &Document{}
	for _, opt := range opts {
		opt(d)
	}
	if d.focus == nil {
		d.focus = &localFocus{bus: d.bus}
	}
	return d
}

// Register adds a region and its layout handle to the document.
// Registration order need not match visual order; the chain is sorted on
// the next order-dependent read.
func (d *Document) Register(r *region.Region, lq layout.Query) {
	if r == nil {
		return
	}
	if _, ok := d.find(r); ok {
		return
	}
	d.entries = append(d.entries, entry{reg: r, lq: lq})
	d.dirty = true
}

// Unregister removes a region from the document. Unregistering the focused
// region drops focus.
func (d *Document) Unregister(r *region.Region) {
	i, ok := d.find(r)
	if !ok {
		return
	}
	d.entries = append(d.entries[:i], d.entries[i+1:]...)
	d.dirty = true
	if d.focus.CurrentFocus() == r {
		d.focus.RequestFocus(nil)
	}
}

// Resort marks the chain order stale so the next order-dependent read
// re-sorts. Call after an external mutation moved region frames.
func (d *Document) Resort() {
	d.dirty = true
}

// ensureSorted re-sorts the chain by frame top edge if it is stale.
func (d *Document) ensureSorted() {
	if !d.dirty {
		return
	}
	sort.SliceStable(d.entries, func(i, j int) bool {
		return d.entries[i].reg.Frame().Y < d.entries[j].reg.Frame().Y
	})
	d.dirty = false
}

func (d *Document) find(r *region.Region) (int, bool) {
	for i, e := range d.entries {
		if e.reg == r {
			return i, true
		}
	}
	return 0, false
}

// Count returns the number of registered regions.
func (d *Document) Count() int {
	return len(d.entries)
}

// Contains reports whether the region is registered.
func (d *Document) Contains(r *region.Region) bool {
	_, ok := d.find(r)
	return ok
}

// Regions returns the regions in document order.
func (d *Document) Regions() []*region.Region {
	d.ensureSorted()
	out := make([]*region.Region, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.reg
	}
	return out
}

// Layout returns the layout handle registered for the region, or nil.
func (d *Document) Layout(r *region.Region) layout.Query {
	if i, ok := d.find(r); ok {
		return d.entries[i].lq
	}
	return nil
}

// IndexOf returns the region's position in document order.
func (d *Document) IndexOf(r *region.Region) (int, bool) {
	d.ensureSorted()
	return d.find(r)
}

// At returns the region at the given document-order position, or nil.
func (d *Document) At(i int) *region.Region {
	d.ensureSorted()
	if i < 0 || i >= len(d.entries) {
		return nil
	}
	return d.entries[i].reg
}

// First returns the first region in document order, or nil.
func (d *Document) First() *region.Region {
	return d.At(0)
}

// Last returns the last region in document order, or nil.
func (d *Document) Last() *region.Region {
	return d.At(len(d.entries) - 1)
}

// Next returns the region after r in document order, or nil.
func (d *Document) Next(r *region.Region) *region.Region {
	if i, ok := d.IndexOf(r); ok {
		return d.At(i + 1)
	}
	return nil
}

// Prev returns the region before r in document order, or nil.
func (d *Document) Prev(r *region.Region) *region.Region {
	if i, ok := d.IndexOf(r); ok {
		return d.At(i - 1)
	}
	return nil
}

// RequestFocus moves focus to the given region via the focus controller.
func (d *Document) RequestFocus(r *region.Region) {
	d.focus.RequestFocus(r)
}

// CurrentFocus returns the focused region, or nil.
func (d *Document) CurrentFocus() *region.Region {
	return d.focus.CurrentFocus()
}

// localFocus is the default in-process focus owner.
type localFocus struct {
	current *region.Region
	bus     *event.Bus
}

// RequestFocus implements FocusController.
func (f *localFocus) RequestFocus(r *region.Region) {
	if f.current == r {
		return
	}
	prev := f.current
	f.current = r
	f.bus.Publish(event.FocusChanged{Previous: prev, Current: r})
}

// CurrentFocus implements FocusController.
func (f *localFocus) CurrentFocus() *region.Region {
	return f.current
}
