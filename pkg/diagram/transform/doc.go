// Package transform provides structural edits of a diagram's item graph.
//
// # Overview
//
// Transformations take an item snapshot and return a new one; the input
// slice and its items are never modified, so the result can be handed to
// [diagram.Store.Replace] as a whole.
//
// # Joint Insertion
//
// [InsertJoint] subdivides a connection by placing a joint on its midpoint:
//
//	Before: order → ship
//	After:  order → 7f3c… → ship
//
// The start item's edge to the end item is removed and the joint id is
// appended to its edge list, so directed reachability is kept through
// exactly one extra hop. No item is deleted.
//
// # Joint IDs
//
// Joint ids come from an [IDFunc], random UUIDs by default. A generated id
// that collides with an existing item is discarded and a new one is drawn.
package transform
