package transform

import (
	"slices"

	"github.com/google/uuid"

	"github.com/matzehuels/flowboard/pkg/diagram"
	"github.com/matzehuels/flowboard/pkg/errors"
)

// IDFunc generates candidate ids for new items.
type IDFunc func() string

// NewUUID is the default IDFunc.
func NewUUID() string { return uuid.NewString() }

// maxIDAttempts bounds how often a colliding id is redrawn.
const maxIDAttempts = 16

// InsertJoint replaces the edge named by linkID with a two-hop path through
// a new joint item centered on the link's midpoint.
//
// It returns the new snapshot and the inserted joint. The error carries
// errors.ErrCodeInvalidInput for a malformed link id, errors.ErrCodeNotFound
// if either endpoint or the edge itself is missing, and
// errors.ErrCodeInternal if newID keeps producing taken ids. A nil newID
// uses [NewUUID].
func InsertJoint(items []diagram.Item, linkID string, newID IDFunc) ([]diagram.Item, diagram.Item, error) {
	start, end, err := errors.SplitLinkID(linkID)
	if err != nil {
		return nil, diagram.Item{}, err
	}
	index := diagram.Index(items)
	si, ok := index[start]
	if !ok {
		return nil, diagram.Item{}, errors.NotFound("item", start)
	}
	ei, ok := index[end]
	if !ok {
		return nil, diagram.Item{}, errors.NotFound("item", end)
	}
	if !items[si].HasEdge(end) {
		return nil, diagram.Item{}, errors.NotFound("link", linkID)
	}

	if newID == nil {
		newID = NewUUID
	}
	id, err := uniqueID(index, newID)
	if err != nil {
		return nil, diagram.Item{}, err
	}

	link := diagram.Link{StartCenter: items[si].Center(), EndCenter: items[ei].Center()}
	mid := link.Midpoint()
	half := diagram.KindJoint.Size()
	joint := diagram.Item{
		ID:       id,
		Kind:     diagram.KindJoint,
		Position: diagram.Point{X: mid.X - half.Width/2, Y: mid.Y - half.Height/2},
		Edges:    []string{end},
	}

	out := make([]diagram.Item, 0, len(items)+1)
	for i, it := range items {
		it = it.Clone()
		if i == si {
			it.Edges = slices.DeleteFunc(it.Edges, func(target string) bool { return target == end })
			it.Edges = append(it.Edges, id)
		}
		out = append(out, it)
	}
	out = append(out, joint)
	return out, joint.Clone(), nil
}

func uniqueID(index map[string]int, newID IDFunc) (string, error) {
	for range maxIDAttempts {
		id := newID()
		if errors.ValidateItemID(id) != nil {
			continue
		}
		if _, taken := index[id]; !taken {
			return id, nil
		}
	}
	return "", errors.New(errors.ErrCodeInternal, "no free joint id after %d attempts", maxIDAttempts)
}
