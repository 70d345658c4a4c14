// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixelreveal

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync"
	"time"

	"github.com/gogpu/pixelreveal/internal/pixelate"
)

// Construction errors.
var (
	// ErrNilHost is returned when no host environment is provided.
	ErrNilHost = errors.New("pixelreveal: nil host")

	// ErrNilTrigger is returned when no scroll-trigger service is provided.
	ErrNilTrigger = errors.New("pixelreveal: nil scroll trigger")

	// ErrEmptySource is returned when the image source URI is empty.
	ErrEmptySource = errors.New("pixelreveal: empty image source")

	// ErrBadLevels is returned when the clarity sequence is not strictly
	// increasing in (0, 1] or does not end at 1.0.
	ErrBadLevels = errors.New("pixelreveal: clarity levels must be strictly increasing in (0, 1] and end at 1")
)

// State reports controller readiness.
type State uint8

const (
	// StateLoading means the image fetch is still in flight; renders
	// are suppressed.
	StateLoading State = iota

	// StateReady means the bitmap is decoded and bindings are active.
	StateReady

	// StateFailed means the load failed; the controller stays inert.
	StateFailed
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateReady:
		return "Ready"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Controller owns one pixel-reveal effect: the Surface, the decoded
// SourceImage, and the clarity cursor. All mutable state lives on the
// instance; every external event (load completion, trigger callbacks,
// timer firings, resize) is serialized through one mutex, so handling
// is strictly sequential.
type Controller struct {
	mu sync.Mutex

	host    Host
	trigger ScrollTrigger
	tweener Tweener
	sched   Scheduler
	loader  Loader

	source   string
	levels   []float64
	interval time.Duration
	debounce time.Duration
	backdrop color.Color

	surface *Surface
	img     *SourceImage
	index   int
	state   State
	phase   phase

	stepTimer   Timer
	resizeTimer Timer

	started       bool
	enteredTop    bool
	enteredBottom bool
}

// New creates a controller for the image element wrapped by host.
// It hides the original element and allocates a Surface from the
// container's current content box; the image is not fetched until
// Start is called.
func New(host Host, trigger ScrollTrigger, source string, opts ...Option) (*Controller, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	if trigger == nil {
		return nil, ErrNilTrigger
	}
	if source == "" {
		return nil, ErrEmptySource
	}

	o := defaultControllerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateLevels(o.levels); err != nil {
		return nil, err
	}

	host.HideSource()
	w, h := host.ContentBox()

	return &Controller{
		host:     host,
		trigger:  trigger,
		tweener:  o.tweener,
		sched:    o.sched,
		loader:   o.loader,
		source:   source,
		levels:   o.levels,
		interval: o.interval,
		debounce: o.debounce,
		backdrop: o.backdrop,
		surface:  NewSurface(w, h),
		state:    StateLoading,
	}, nil
}

// validateLevels checks the clarity sequence invariants.
func validateLevels(levels []float64) error {
	if len(levels) == 0 {
		return ErrBadLevels
	}
	prev := 0.0
	for _, l := range levels {
		if l <= prev || l > 1 {
			return ErrBadLevels
		}
		prev = l
	}
	if levels[len(levels)-1] != 1 {
		return ErrBadLevels
	}
	return nil
}

// Start begins the asynchronous image load. It returns immediately;
// once the bitmap is decoded the controller renders the clear image and
// activates the viewport and resize bindings. Start is idempotent.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return
	}
	c.started = true
	loader, source := c.loader, c.source
	c.mu.Unlock()

	go func() {
		img, err := loader.Load(ctx, source)
		c.finishLoad(img, err)
	}()
}

// finishLoad handles image-decode completion. On failure the controller
// logs and stays inert; there is no retry and no user-visible error
// channel.
func (c *Controller) finishLoad(img image.Image, err error) {
	c.mu.Lock()
	if err != nil {
		c.state = StateFailed
		c.mu.Unlock()
		Logger().Warn("pixelreveal: image load failed", "source", c.source, "err", err)
		return
	}

	src := newSourceImage(img)
	if c.backdrop != nil {
		src.backdrop = c.backdrop
	}
	c.img = src

	w, h := c.host.ContentBox()
	c.surface = NewSurface(w, h)

	// Initial paint is the fully clear image; the reveal replays from
	// step zero only on viewport entry.
	c.index = len(c.levels) - 1
	c.renderLocked()
	c.state = StateReady
	c.mu.Unlock()

	Logger().Info("pixelreveal: source ready",
		"source", c.source, "width", src.width, "height", src.height)

	c.bind()
}

// renderLocked repaints the surface at the current clarity index.
// Callers must hold c.mu. Before the bitmap is decoded this is a no-op.
func (c *Controller) renderLocked() {
	if c.img == nil || c.surface == nil {
		return
	}
	scale := c.levels[c.index]
	pixelate.Draw(c.surface.RGBA(), c.img.bitmap, c.img.aspect, scale, c.img.backdrop)
	Logger().Debug("pixelreveal: rendered",
		"index", c.index, "scale", scale,
		"width", c.surface.width, "height", c.surface.height)
}

// Surface returns the drawing target owned by the controller.
func (c *Controller) Surface() *Surface {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.surface
}

// State returns the controller readiness state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ClarityIndex returns the current cursor into the clarity sequence.
func (c *Controller) ClarityIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// ClarityLevels returns a copy of the configured clarity sequence.
func (c *Controller) ClarityLevels() []float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]float64(nil), c.levels...)
}
