package diagram

import (
	"math"

	"github.com/matzehuels/flowboard/pkg/errors"
)

// Link is a derived connection between the centers of two items.
// Links have no lifecycle of their own; they are rebuilt from the item
// collection on every change.
type Link struct {
	ID          string
	Start       string // source item id
	End         string // target item id
	StartCenter Point
	EndCenter   Point
}

// LinkID returns the id of the link from start to end.
func LinkID(start, end string) string { return start + errors.LinkSeparator + end }

// Midpoint returns the point halfway between the link's centers.
func (l Link) Midpoint() Point {
	return Point{
		X: (l.StartCenter.X + l.EndCenter.X) / 2,
		Y: (l.StartCenter.Y + l.EndCenter.Y) / 2,
	}
}

// Length returns the distance between the link's centers.
func (l Link) Length() float64 {
	d := l.EndCenter.Sub(l.StartCenter)
	return math.Hypot(d.X, d.Y)
}

// DeriveLinks builds one link per outgoing edge, in item then edge order.
// Edges whose target is missing from items are skipped.
func DeriveLinks(items []Item) []Link {
	return deriveLinks(items, Index(items))
}

func deriveLinks(items []Item, index map[string]int) []Link {
	var links []Link
	for _, it := range items {
		for _, target := range it.Edges {
			j, ok := index[target]
			if !ok {
				continue
			}
			links = append(links, Link{
				ID:          LinkID(it.ID, target),
				Start:       it.ID,
				End:         target,
				StartCenter: it.Center(),
				EndCenter:   items[j].Center(),
			})
		}
	}
	return links
}

// NearestLink returns the link whose segment passes closest to p, provided
// the distance is at most tolerance.
func NearestLink(links []Link, p Point, tolerance float64) (Link, bool) {
	best, bestDist := -1, math.Inf(1)
	for i, l := range links {
		if d := segmentDistance(p, l.StartCenter, l.EndCenter); d <= tolerance && d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Link{}, false
	}
	return links[best], true
}

func segmentDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq == 0 {
		d := p.Sub(a)
		return math.Hypot(d.X, d.Y)
	}
	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / lenSq
	t = math.Max(0, math.Min(1, t))
	closest := Point{X: a.X + t*ab.X, Y: a.Y + t*ab.Y}
	d := p.Sub(closest)
	return math.Hypot(d.X, d.Y)
}
