// Package snap adjusts item positions after a committed drag.
//
// # Lane Snap
//
// The canvas is divided into horizontal lanes. Activities snap their top
// edge to the nearest line anchor + k·LaneHeight; joints use their own
// anchor and half the lane height, which puts them between activity lanes.
// With the default [Config]:
//
//	activity: top = 17 + k·140
//	joint:    top = 51 + k·70
//
// A remainder of exactly half the modulus rounds down the page. Snapping
// is idempotent and is computed with a floored remainder, so negative
// coordinates snap the same way as positive ones.
//
// # Neighbor Alignment
//
// After the lane pass, each moved item looks at its direct neighbors that
// did not move: outgoing targets first, then items with an edge to it. If
// the closest vertical center is nearer than AlignThreshold, the item's
// vertical center is set to that neighbor's. Ties go to the neighbor seen
// first. No averaging takes place.
package snap
