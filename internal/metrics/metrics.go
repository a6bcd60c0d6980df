// Package metrics implements the observability hooks with Prometheus
// collectors and writes them to a node_exporter textfile.
package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/flowboard/pkg/observability"
)

// Hooks records designer and render events. It implements both
// observability.DesignerHooks and observability.RenderHooks.
type Hooks struct {
	registry *prometheus.Registry

	Selection     prometheus.Gauge
	DragsTotal    *prometheus.CounterVec
	DragDuration  prometheus.Histogram
	DraggedItems  prometheus.Histogram
	SnapsTotal    *prometheus.CounterVec
	SnapDistance  *prometheus.HistogramVec
	JointsTotal   prometheus.Counter
	RendersTotal  *prometheus.CounterVec
	RenderSeconds *prometheus.HistogramVec
}

var (
	_ observability.DesignerHooks = (*Hooks)(nil)
	_ observability.RenderHooks   = (*Hooks)(nil)
)

// New creates the collectors and registers them with a fresh registry.
func New() *Hooks {
	h := &Hooks{
		registry: prometheus.NewRegistry(),
		Selection: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "flowboard_selected_items",
			Help: "Number of currently selected items",
		}),
		DragsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "flowboard_drags_total",
			Help: "Total number of closed drag sessions",
		}, []string{"canceled"}),
		DragDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "flowboard_drag_duration_seconds",
			Help:    "Time between pointer-down and pointer-up of a drag",
			Buckets: []float64{0.1, 0.2, 0.3, 0.5, 1, 2, 5},
		}),
		DraggedItems: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "flowboard_dragged_items",
			Help:    "Number of items moved by one drag",
			Buckets: prometheus.LinearBuckets(1, 1, 8),
		}),
		SnapsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "flowboard_snaps_total",
			Help: "Total number of snap adjustments",
		}, []string{"pass"}),
		SnapDistance: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "flowboard_snap_distance_pixels",
			Help:    "Absolute vertical distance moved by a snap adjustment",
			Buckets: []float64{5, 10, 20, 35, 50, 70, 100},
		}, []string{"pass"}),
		JointsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "flowboard_joints_inserted_total",
			Help: "Total number of inserted joints",
		}),
		RendersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "flowboard_renders_total",
			Help: "Total number of diagram exports",
		}, []string{"format", "result"}),
		RenderSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "flowboard_render_duration_seconds",
			Help:    "Time spent exporting a diagram",
			Buckets: prometheus.DefBuckets,
		}, []string{"format"}),
	}
	h.registry.MustRegister(
		h.Selection, h.DragsTotal, h.DragDuration, h.DraggedItems,
		h.SnapsTotal, h.SnapDistance, h.JointsTotal,
		h.RendersTotal, h.RenderSeconds,
	)
	return h
}

// Registry returns the registry holding the collectors.
func (h *Hooks) Registry() *prometheus.Registry { return h.registry }

// Install registers h as the global designer and render hooks.
func (h *Hooks) Install() {
	observability.SetDesignerHooks(h)
	observability.SetRenderHooks(h)
}

// WriteFile writes all metrics in the text exposition format to path,
// atomically as node_exporter's textfile collector expects.
func (h *Hooks) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, h.registry)
}

func (h *Hooks) OnSelectionChanged(selected int) { h.Selection.Set(float64(selected)) }

func (h *Hooks) OnDragStart(items int) { h.DraggedItems.Observe(float64(items)) }

func (h *Hooks) OnDragEnd(_ int, canceled bool, elapsed time.Duration) {
	h.DragsTotal.WithLabelValues(strconv.FormatBool(canceled)).Inc()
	h.DragDuration.Observe(elapsed.Seconds())
}

func (h *Hooks) OnSnap(pass string, delta float64) {
	if delta < 0 {
		delta = -delta
	}
	h.SnapsTotal.WithLabelValues(pass).Inc()
	h.SnapDistance.WithLabelValues(pass).Observe(delta)
}

func (h *Hooks) OnJointInserted(string, string) { h.JointsTotal.Inc() }

func (h *Hooks) OnRenderStart(context.Context, string, int) {}

func (h *Hooks) OnRenderComplete(_ context.Context, format string, _ int, duration time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	h.RendersTotal.WithLabelValues(format, result).Inc()
	h.RenderSeconds.WithLabelValues(format).Observe(duration.Seconds())
}
