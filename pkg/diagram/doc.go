// Package diagram provides the item store and geometry of a flow diagram.
//
// # Overview
//
// A diagram is a collection of positioned, typed items connected by directed
// edges. Each item stores the ids of its targets in [Item.Edges]; the visual
// connections ([Link]) are never stored but derived from the item collection
// whenever it changes. Graphs may contain cycles and disconnected components.
//
// # Position Model
//
// Every item carries two coordinates:
//
//   - [Item.Position]: the last committed top-left corner
//   - [Item.Shift]: a transient offset, non-zero only while the item is part
//     of an uncommitted drag
//
// The on-screen location is [Item.Effective] (Position + Shift). Drag sessions
// mutate only the shift; a commit folds it into the position and resets it.
//
// # Item Kinds
//
// Items are either activities (wide rectangles) or joints (small squares
// used to subdivide a connection). Sizes are fixed per [Kind] and looked up
// with [Kind.Size].
//
// # Store
//
// [Store] holds the current snapshot. It is copy-on-write: [Store.Replace]
// validates and swaps a whole new item slice, and readers receive copies,
// so a renderer never observes a partially updated graph. [Store.Lookup]
// fails with an errors.ErrCodeNotFound error for unknown ids; it never
// returns a placeholder item.
//
// # Hit-Testing
//
// [BoundsOf] turns an item into an axis-aligned [Box]; [Intersects] is the
// single separating-axis predicate used both for point hits (a degenerate
// box from [PointBox]) and rubber-band selection.
//
// # Concurrency
//
// Store is not safe for concurrent use. The engine is driven from a single
// event loop and processes pointer events strictly in arrival order.
package diagram
