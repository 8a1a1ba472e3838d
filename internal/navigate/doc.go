// Package navigate interprets directional and boundary-crossing movement
// commands over the region chain.
//
// A single Dispatch entry point consumes the Command enumeration; each
// command may be issued plain or extending (shift held). Per-command
// behavior is a tagged switch. Every cross-region decision (which neighbor
// to enter, which index to land on, when to clamp at the document edge)
// lives here rather than in the regions.
//
// Movement rules:
//
//   - A plain move over a selection spanning several regions collapses it
//     to the directional edge; up/down then take one more step, left/right
//     only collapse.
//   - Vertical moves inside a region resolve the target line and land via
//     the remembered horizontal coordinate (package caret). On the first or
//     last line they cross into the neighbor's adjacent edge line.
//   - Horizontal moves step one scalar; at a region edge they enter the
//     neighbor at its far end. Word moves cross first, then take one word
//     step inward.
//   - globalStart/globalEnd clear all selection state and jump to the
//     absolute document start or end.
//
// Only vertical movement preserves the remembered x coordinate; every other
// command, and any text edit or mouse gesture, invalidates it.
//
// Clamping at a document edge and extending into one publish
// event.BoundaryReached so the embedder can flash or bounce.
package navigate
