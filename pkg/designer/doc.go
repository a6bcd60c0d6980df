// Package designer is the interaction engine of the diagram editor.
//
// A [Designer] owns the item store and turns raw pointer events into
// selection changes, drags and rubber-band selections. The presentation
// layer forwards pointer-down, move and up events and redraws from [View].
//
// # Event Flow
//
// Pointer-down on an item selects it (see package selection for the exact
// rule) and opens a drag session over the selected items. Moves apply the
// shift to those items as a transient overlay. Pointer-up either reverts
// the shift (short press, or an item would leave the canvas) or commits it
// and runs the snap passes:
//
//	down(item) → Begin press → drag.Start
//	move       → Shift on moved items
//	up         → revert | fold + lane snap + neighbor align
//	           → resolve click
//
// Pointer-down on empty canvas clears the selection and opens the selecting
// rectangle; the release selects every item the rectangle touches.
//
// # Time
//
// Events may carry their own timestamp. A zero [Event.At] uses the clock
// given with [WithClock], which defaults to time.Now.
//
// # Errors
//
// Unknown item or link ids fail with errors.ErrCodeNotFound. Opening a
// second session while one is active, or editing the graph during a drag,
// fails with errors.ErrCodeInvalidState. A failed operation leaves the
// snapshot unchanged.
package designer
