// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixelreveal

import "time"

// Edge identifies a viewport edge used in trigger conditions.
type Edge uint8

const (
	// EdgeTop is the top edge of the visible scrolling area.
	EdgeTop Edge = iota

	// EdgeBottom is the bottom edge of the visible scrolling area.
	EdgeBottom
)

// String returns a string representation of the edge.
func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "Top"
	case EdgeBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// Overlay is an optional inner element translated vertically for the
// parallax effect.
type Overlay interface {
	// Height returns the overlay's own height in pixels.
	Height() int

	// SetTranslateY moves the overlay vertically by the given pixel offset.
	SetTranslateY(px float64)
}

// Host is the document environment surrounding a Controller: the image
// element being replaced, its parent container, and the container's
// visibility. The host presents the controller's Surface in the hidden
// element's place. The container must provide a non-zero content box
// once layout settles; degenerate boxes are clamped to one pixel per
// axis.
type Host interface {
	// ContentBox returns the container's current content box in pixels.
	ContentBox() (width, height int)

	// HideSource removes the original image element from paint without
	// removing it from the document structure.
	HideSource()

	// Reveal makes the container visible. Called once when the surface
	// crosses the bottom viewport edge.
	Reveal()

	// Overlay returns the inner parallax element, or nil when the
	// container has none.
	Overlay() Overlay

	// OnResize subscribes to host resize notifications.
	OnResize(fn func())
}

// Registration describes a scroll-linked callback handed to the
// external scroll-trigger service.
type Registration struct {
	// Start is the viewport edge whose crossing begins the trigger.
	Start Edge

	// End is the viewport edge whose crossing ends the trigger.
	// Only meaningful for scrubbed registrations.
	End Edge

	// Once restricts the trigger to a single firing.
	Once bool

	// Scrub binds progress to scroll position rather than time.
	Scrub bool

	// OnEnter fires when the start condition is crossed while
	// scrolling downward.
	OnEnter func()

	// OnProgress reports scrubbed progress in [0, 1] between the start
	// and end conditions.
	OnProgress func(progress float64)
}

// ScrollTrigger is the external scroll-observation service.
// Implementations deliver callbacks serially; the Controller
// additionally guards single-shot registrations with its own
// already-fired state, so a misbehaving service cannot restart a
// finished reveal.
type ScrollTrigger interface {
	Register(r Registration)
}

// ParallaxTween declares a scrubbed scroll-linked translation for the
// external animation collaborator.
type ParallaxTween struct {
	// Start and End bound the scroll span the tween is scrubbed over:
	// the surface's full traversal of the viewport.
	Start Edge
	End   Edge

	// Scrub is always true for the parallax binding.
	Scrub bool

	// TranslateY is the vertical travel as a fraction of the overlay's
	// own height. -1 moves the overlay up by its full height.
	TranslateY float64
}

// Tweener is the external animation collaborator driving the parallax
// overlay from declarative tween parameters.
type Tweener interface {
	Animate(o Overlay, tween ParallaxTween)
}

// Timer is a handle to a pending delayed call.
type Timer interface {
	// Stop cancels the pending call. It reports whether the call was
	// still pending.
	Stop() bool
}

// Scheduler provides delayed single-shot execution, the host timer
// facility behind the step cadence and the resize debounce.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// timeScheduler is the default Scheduler backed by standard library timers.
type timeScheduler struct{}

func (timeScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
