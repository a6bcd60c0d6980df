// Package selection implements item selection for the diagram editor.
//
// # Transforms
//
// [Toggle], [Set], [UnselectAll] and [WithinRectangle] are pure functions
// over an item snapshot: they return a new slice and never modify their
// input. Exclusive operations (additive == false) clear every other item
// first; additive operations leave the rest of the selection alone.
//
// Rubber-band selection always replaces the previous selection.
//
// # Clicks
//
// A pointer-down on an item is recorded as a [Press]. [Begin] selects the
// item right away unless it was already selected, in which case the
// decision waits for the release so dragging a multi-selection does not
// collapse it. On release, [Press.Resolve] applies the click rule when the
// press was short and the drag was canceled:
//
//   - more than one item selected before and no modifier: select only the
//     clicked item
//   - otherwise: flip the clicked item, additive if the modifier was held
//
// # Rectangle
//
// [Rectangle] tracks the rubber band between pointer-down on empty canvas
// and the matching release.
package selection
