// Package observability provides hooks for metrics and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about editor interactions and diagram rendering.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, so the engine packages
// stay free of metrics frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDesignerHooks(metrics.NewDesignerHooks(reg))
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Designer().OnDragStart(len(moved))
//	// ... pointer moves ...
//	observability.Designer().OnDragEnd(len(moved), canceled, elapsed)
//
// Designer hooks are invoked synchronously from the event loop and must not
// block.
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Designer Hooks
// =============================================================================

// DesignerHooks receives events from the interaction engine.
type DesignerHooks interface {
	// OnSelectionChanged records a change of the selected set.
	OnSelectionChanged(selected int)

	// Drag events
	OnDragStart(items int)
	OnDragEnd(items int, canceled bool, elapsed time.Duration)

	// OnSnap records a position adjustment made after a drop. Pass is
	// "lane" or "align".
	OnSnap(pass string, delta float64)

	// OnJointInserted records a successful joint insertion.
	OnJointInserted(linkID, jointID string)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from diagram export.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, format string, items int)
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDesignerHooks is a no-op implementation of DesignerHooks.
type NoopDesignerHooks struct{}

func (NoopDesignerHooks) OnSelectionChanged(int)             {}
func (NoopDesignerHooks) OnDragStart(int)                    {}
func (NoopDesignerHooks) OnDragEnd(int, bool, time.Duration) {}
func (NoopDesignerHooks) OnSnap(string, float64)             {}
func (NoopDesignerHooks) OnJointInserted(string, string)     {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string, int) {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	designerHooks DesignerHooks = NoopDesignerHooks{}
	renderHooks   RenderHooks   = NoopRenderHooks{}
	hooksMu       sync.RWMutex
)

// SetDesignerHooks registers custom designer hooks.
// This should be called once at application startup before any editing.
func SetDesignerHooks(h DesignerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		designerHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Designer returns the registered designer hooks.
func Designer() DesignerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return designerHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	designerHooks = NoopDesignerHooks{}
	renderHooks = NoopRenderHooks{}
}
