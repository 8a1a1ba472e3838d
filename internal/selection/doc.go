// Package selection maintains a document-wide selection as a single
// anchor/head pair and projects it into per-region ranges.
//
// Selection Model:
//
// The anchor is the position where the selection started and never moves
// during extension; the head is the moving end. Neither is stored per
// region: the anchor lives in the model, and the head is derived on demand
// from the focused region's range and the anchor's document order, so the
// two representations cannot disagree.
//
// Projection is always a full recomputation from the unchanged anchor and
// the new head:
//
//   - The anchor region keeps the span from the anchor to its nearer edge
//   - The head region keeps the span from its edge to the head
//   - Regions strictly between are selected entirely
//   - Regions outside the span keep their caret but show no range
//
// Ranges are never adjusted incrementally, so repeated extension cannot
// drift out of agreement with the anchor.
//
// An anchor whose region has been unregistered is treated as absent. The
// model publishes event.SelectionChanged after each projection.
//
// The model is not safe for concurrent use; see the single-threaded model
// note in package region.
package selection
