// Package event provides the notification bus downstream consumers
// subscribe to.
//
// The coordinators publish four notifications:
//
//	selection.changed - the per-region selection ranges were recomputed
//	boundary.reached  - a move hit the absolute document start or end
//	focus.changed     - focus moved between regions
//	content.replaced  - a region's content was rewritten by an edit
//
// All coordinator work happens on a single interaction thread, so delivery
// is synchronous: handlers run inline during Publish, in subscription
// order, and see the post-mutation state. Handlers must not mutate the
// document or selection re-entrantly.
//
// Subscribe registers for one event type; SubscribeAll for every type. A
// nil *Bus is valid and drops everything, so coordinators can be wired
// without one.
package event
