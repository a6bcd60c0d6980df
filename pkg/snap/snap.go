package snap

import (
	"math"

	"github.com/matzehuels/flowboard/pkg/diagram"
)

// Config holds the snap geometry. A non-positive LaneHeight disables the
// lane pass.
type Config struct {
	LaneHeight     float64 `toml:"lane_height"`
	ActivityAnchor float64 `toml:"activity_anchor"`
	JointAnchor    float64 `toml:"joint_anchor"`
	AlignThreshold float64 `toml:"align_threshold"`
}

// DefaultConfig returns the stock lane geometry.
func DefaultConfig() Config {
	return Config{
		LaneHeight:     140,
		ActivityAnchor: 17,
		JointAnchor:    51,
		AlignThreshold: 100,
	}
}

// Pass names a snap pass.
type Pass string

const (
	PassLane  Pass = "lane"
	PassAlign Pass = "align"
)

// Adjustment records a position change made by a pass.
type Adjustment struct {
	ItemID   string
	Pass     Pass
	From, To float64 // top edge before and after
	Neighbor string  // alignment target, empty for lane snaps
}

// LaneTop returns the snapped top edge for an item of the given kind.
func (c Config) LaneTop(kind diagram.Kind, top float64) float64 {
	anchor, mod := c.ActivityAnchor, c.LaneHeight
	if kind == diagram.KindJoint {
		anchor, mod = c.JointAnchor, c.LaneHeight/2
	}
	if mod <= 0 {
		return top
	}
	k := math.Floor((top-anchor)/mod + 0.5)
	snapped := anchor + k*mod
	if snapped == top {
		return top
	}
	return snapped
}

// Apply runs the lane pass and then the alignment pass on the moved items
// and returns the new snapshot with every change made. Items not named in
// moved are left alone. The input is not modified.
func Apply(items []diagram.Item, moved []string, cfg Config) ([]diagram.Item, []Adjustment) {
	out := make([]diagram.Item, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	set := make(map[string]struct{}, len(moved))
	for _, id := range moved {
		set[id] = struct{}{}
	}
	adj := lane(out, set, cfg)
	adj = append(adj, align(out, set, cfg)...)
	return out, adj
}

func lane(items []diagram.Item, moved map[string]struct{}, cfg Config) []Adjustment {
	var adj []Adjustment
	for i := range items {
		it := &items[i]
		if _, ok := moved[it.ID]; !ok {
			continue
		}
		from := it.Effective().Y
		to := cfg.LaneTop(it.Kind, from)
		if to == from {
			continue
		}
		it.Position.Y += to - from
		adj = append(adj, Adjustment{ItemID: it.ID, Pass: PassLane, From: from, To: to})
	}
	return adj
}

func align(items []diagram.Item, moved map[string]struct{}, cfg Config) []Adjustment {
	index := diagram.Index(items)
	incoming := make(map[string][]int, len(items))
	for i, it := range items {
		if _, ok := moved[it.ID]; ok {
			continue
		}
		for _, target := range it.Edges {
			incoming[target] = append(incoming[target], i)
		}
	}

	var adj []Adjustment
	for i := range items {
		it := &items[i]
		if _, ok := moved[it.ID]; !ok {
			continue
		}
		var candidates []int
		for _, target := range it.Edges {
			if j, ok := index[target]; ok {
				if _, m := moved[target]; !m {
					candidates = append(candidates, j)
				}
			}
		}
		candidates = append(candidates, incoming[it.ID]...)

		best, bestGap := -1, math.Inf(1)
		cy := it.CenterY()
		for _, j := range candidates {
			if gap := math.Abs(cy - items[j].CenterY()); gap < bestGap {
				best, bestGap = j, gap
			}
		}
		if best < 0 || bestGap >= cfg.AlignThreshold || bestGap == 0 {
			continue
		}
		from := it.Effective().Y
		it.Position.Y += items[best].CenterY() - cy
		adj = append(adj, Adjustment{
			ItemID: it.ID, Pass: PassAlign,
			From: from, To: it.Effective().Y,
			Neighbor: items[best].ID,
		})
	}
	return adj
}
