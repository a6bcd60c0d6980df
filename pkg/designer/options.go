package designer

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/flowboard/pkg/diagram/transform"
	"github.com/matzehuels/flowboard/pkg/observability"
	"github.com/matzehuels/flowboard/pkg/snap"
)

// Option configures a Designer.
type Option func(*Designer)

// WithLogger sets the logger for interaction events. The default discards
// all output.
func WithLogger(l *log.Logger) Option {
	return func(d *Designer) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithClock sets the time source for events without a timestamp.
func WithClock(now func() time.Time) Option {
	return func(d *Designer) {
		if now != nil {
			d.now = now
		}
	}
}

// WithIDFunc sets the generator for joint ids.
func WithIDFunc(f transform.IDFunc) Option {
	return func(d *Designer) {
		if f != nil {
			d.newID = f
		}
	}
}

// WithSnapConfig replaces the lane and alignment geometry.
func WithSnapConfig(c snap.Config) Option { return func(d *Designer) { d.snap = c } }

// WithClickThreshold sets the press duration separating clicks from drags.
func WithClickThreshold(t time.Duration) Option { return func(d *Designer) { d.threshold = t } }

// WithHooks sets the event hooks. Without it the globally registered
// observability.Designer hooks are used.
func WithHooks(h observability.DesignerHooks) Option { return func(d *Designer) { d.hooks = h } }

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
