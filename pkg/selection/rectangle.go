package selection

import (
	"github.com/matzehuels/flowboard/pkg/diagram"
	"github.com/matzehuels/flowboard/pkg/errors"
)

// Rectangle is the rubber-band session. The zero value is idle.
type Rectangle struct {
	active bool
	origin diagram.Point // container coordinates of the press
	offset diagram.Point // client minus container coordinates
	bounds diagram.Box
}

// Start opens a session at the pressed point, given in container and client
// coordinates. It fails with errors.ErrCodeInvalidState if a session is open.
func (r *Rectangle) Start(relative, client diagram.Point) error {
	if r.active {
		return errors.InvalidState("selection rectangle already active")
	}
	*r = Rectangle{
		active: true,
		origin: relative,
		offset: client.Sub(relative),
		bounds: diagram.PointBox(relative),
	}
	return nil
}

// Move stretches the band to the pointer at client and returns the new
// bounds in container coordinates. It reports false if no session is open.
func (r *Rectangle) Move(client diagram.Point) (diagram.Box, bool) {
	if !r.active {
		return diagram.Box{}, false
	}
	r.bounds = diagram.BoxFromCorners(r.origin, client.Sub(r.offset))
	return r.bounds, true
}

// End closes the session and returns the final bounds. A release without
// any motion yields the degenerate box at the press point.
func (r *Rectangle) End() (diagram.Box, error) {
	if !r.active {
		return diagram.Box{}, errors.InvalidState("no selection rectangle active")
	}
	b := r.bounds
	*r = Rectangle{}
	return b, nil
}

// Bounds returns the current bounds, or false when idle.
func (r *Rectangle) Bounds() (diagram.Box, bool) { return r.bounds, r.active }

// Active reports whether a session is open.
func (r *Rectangle) Active() bool { return r.active }
