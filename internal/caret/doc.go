// Package caret implements the caret geometry math for vertical movement.
//
// Two pieces live here:
//
//   - XMemory, the remembered target horizontal coordinate. A chain of
//     up/down moves stores the caret's x once and reuses it on every
//     subsequent line, so the caret stays visually aligned across lines of
//     unequal width instead of walking leftward through short lines.
//   - Point-to-index resolution: given a target line and an x coordinate,
//     find the insertion index the caret should land on. The same procedure
//     serves moves between lines inside a region and landings when a move
//     crosses into a neighboring region.
//
// Resolution rounds to the nearer insertion point (fraction >= 0.5 goes
// right), clamps to the buffer, snaps back when the layout query drifts to
// an adjacent line, and corrects the phantom-end case: an x remembered past
// the end of a short line lands at that line's end rather than being
// truncated mid-line by rounding. Line terminators are never included in
// the landed index.
//
// Geometry may be unavailable (no layout yet, zero metrics). Every entry
// point reports that through its ok result and stores or changes nothing,
// so callers degrade to native behavior without corrupting state.
package caret
