// Package drag tracks pointer drag sessions.
//
// A [Controller] owns at most one open session. Each pointer move yields
// the shift from the press point; the release decides whether the drag
// is committed or canceled. Presses shorter than the threshold cancel, and
// so does any final shift the [Handler] rejects, which the editor uses to
// keep items from leaving the canvas.
//
// The controller never touches items itself. Callers receive the shift
// through the handler and decide what to apply.
package drag

import (
	"time"

	"github.com/matzehuels/flowboard/pkg/diagram"
	"github.com/matzehuels/flowboard/pkg/errors"
)

// DefaultThreshold is the minimum press duration of a committed drag.
const DefaultThreshold = 300 * time.Millisecond

// Handler receives session callbacks.
type Handler interface {
	// OnMoved is called for every pointer move with the pointer position in
	// container coordinates and the shift since the press.
	OnMoved(relative, shift diagram.Point)
	// Accepts reports whether a final shift may be committed.
	Accepts(shift diagram.Point) bool
	// OnUp is called once when the session closes.
	OnUp(canceled bool)
}

// Funcs adapts plain functions to [Handler]. Nil fields are skipped and a
// nil Accept accepts every shift.
type Funcs struct {
	Moved  func(relative, shift diagram.Point)
	Accept func(shift diagram.Point) bool
	Up     func(canceled bool)
}

func (f Funcs) OnMoved(relative, shift diagram.Point) {
	if f.Moved != nil {
		f.Moved(relative, shift)
	}
}

func (f Funcs) Accepts(shift diagram.Point) bool {
	return f.Accept == nil || f.Accept(shift)
}

func (f Funcs) OnUp(canceled bool) {
	if f.Up != nil {
		f.Up(canceled)
	}
}

// Session is a snapshot of the open drag.
type Session struct {
	OriginRelative diagram.Point
	OriginClient   diagram.Point
	StartedAt      time.Time
	Shift          diagram.Point
}

// Result describes a closed session.
type Result struct {
	Shift       diagram.Point
	Elapsed     time.Duration
	Canceled    bool
	OutOfBounds bool // the handler rejected the final shift
}

// Controller coordinates a single drag at a time. It is not safe for
// concurrent use.
type Controller struct {
	threshold time.Duration
	session   *Session
	handler   Handler
}

// NewController returns a controller using threshold to separate clicks
// from drags. A non-positive threshold selects [DefaultThreshold].
func NewController(threshold time.Duration) *Controller {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Controller{threshold: threshold}
}

// Threshold returns the click threshold.
func (c *Controller) Threshold() time.Duration { return c.threshold }

// Start opens a session. It fails with errors.ErrCodeInvalidState if one is
// already open and errors.ErrCodeInvalidInput for a nil handler.
func (c *Controller) Start(relative, client diagram.Point, at time.Time, h Handler) error {
	if c.session != nil {
		return errors.InvalidState("drag session already active")
	}
	if h == nil {
		return errors.New(errors.ErrCodeInvalidInput, "drag handler is nil")
	}
	c.session = &Session{OriginRelative: relative, OriginClient: client, StartedAt: at}
	c.handler = h
	return nil
}

// Move updates the shift to client minus the press point and forwards it to
// the handler. It reports false when no session is open.
func (c *Controller) Move(client diagram.Point) (diagram.Point, bool) {
	if c.session == nil {
		return diagram.Point{}, false
	}
	c.session.Shift = client.Sub(c.session.OriginClient)
	c.handler.OnMoved(c.session.OriginRelative.Add(c.session.Shift), c.session.Shift)
	return c.session.Shift, true
}

// End closes the session at time at and notifies the handler.
func (c *Controller) End(at time.Time) (Result, error) {
	if c.session == nil {
		return Result{}, errors.InvalidState("no drag session active")
	}
	s, h := *c.session, c.handler
	c.session, c.handler = nil, nil

	r := Result{Shift: s.Shift, Elapsed: at.Sub(s.StartedAt)}
	r.OutOfBounds = !h.Accepts(s.Shift)
	r.Canceled = r.Elapsed < c.threshold || r.OutOfBounds
	h.OnUp(r.Canceled)
	return r, nil
}

// Active reports whether a session is open.
func (c *Controller) Active() bool { return c.session != nil }

// Current returns the open session, or false when idle.
func (c *Controller) Current() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}
