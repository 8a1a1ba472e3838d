// Package region provides the Region type: one independently-edited text
// buffer participating in a sequential document.
//
// A region owns:
//
//   - Its content, as a flat sequence of Unicode scalars indexed by rune
//   - Its current selection, a normalized Range (a caret is an empty range)
//   - Its frame, a rectangle in document coordinates set by the embedder
//
// A region never knows about its neighbors. All cross-region behavior
// (movement crossing, multi-region selection, merge deletion) lives in the
// coordinator packages, which consume regions through the document chain.
//
// Range indices are rune offsets, not bytes. NewRange normalizes backward
// input so Start <= End always holds, and clamps negative components to
// zero; out-of-bounds indices are clamped at the point of use instead, since
// a Range does not know its buffer's length.
//
// Basic usage:
//
//	r := region.New("hello\nworld")
//	r.SetCaret(5)
//	r.SetSelection(region.NewRange(0, 5))
//	text := r.Slice(r.Selection()) // "hello"
//
// Region is not safe for concurrent use. The coordination model is
// single-threaded: every mutation happens on the interaction thread.
package region
