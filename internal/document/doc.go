// Package document maintains the ordered chain of regions.
//
// Order follows the regions' visual top-to-bottom frames and is the single
// source of truth for "next" and "previous". Registration may happen before
// frames exist, so ordering is resolved lazily: Register and Resort only
// mark the order dirty, and the chain re-sorts before the next
// order-dependent read. The sort is stable, so regions sharing a Y
// coordinate keep their registration order.
//
// The document also routes focus. By default it tracks focus itself and
// publishes event.FocusChanged; an embedder with its own first-responder
// notion supplies a FocusController via WithFocusController and the
// document delegates to it.
//
// Each region registers together with its layout.Query, which the
// coordinators fetch through Layout when they need geometry.
//
// All methods are intended for the single interaction thread; the package
// does no locking of its own.
package document
