package pixelreveal

import (
	"image/color"
	"time"
)

// Defaults used when no option overrides them.
var (
	// DefaultClarityLevels is the reveal sequence used when none is
	// configured: fraction of native resolution per step, ending fully
	// clear.
	DefaultClarityLevels = []float64{0.02, 0.04, 0.06, 0.09, 1.0}
)

const (
	// DefaultStepInterval is the delay between clarity steps.
	DefaultStepInterval = 100 * time.Millisecond

	// DefaultResizeDebounce is the quiet period required before a
	// resize is applied.
	DefaultResizeDebounce = 100 * time.Millisecond
)

// Option configures a Controller during creation.
// Use functional options to customize Controller behavior.
//
// Example:
//
//	// Default reveal sequence and timing
//	ctl, err := pixelreveal.New(host, trigger, "hero.jpg")
//
//	// Custom sequence and a fake scheduler (dependency injection)
//	ctl, err := pixelreveal.New(host, trigger, "hero.jpg",
//	    pixelreveal.WithClarityLevels(0.05, 0.2, 1.0),
//	    pixelreveal.WithScheduler(sched))
type Option func(*options)

// options holds optional configuration for Controller creation.
type options struct {
	levels   []float64
	interval time.Duration
	debounce time.Duration
	sched    Scheduler
	loader   Loader
	tweener  Tweener
	backdrop color.Color
}

// defaultControllerOptions returns the default controller options.
func defaultControllerOptions() options {
	return options{
		levels:   append([]float64(nil), DefaultClarityLevels...),
		interval: DefaultStepInterval,
		debounce: DefaultResizeDebounce,
		sched:    timeScheduler{},
		loader:   autoLoader{},
	}
}

// WithClarityLevels sets the reveal sequence: strictly increasing scale
// factors in (0, 1], terminating at 1.0 (full clarity).
func WithClarityLevels(levels ...float64) Option {
	return func(o *options) {
		o.levels = append([]float64(nil), levels...)
	}
}

// WithStepInterval sets the delay between clarity steps.
func WithStepInterval(d time.Duration) Option {
	return func(o *options) {
		o.interval = d
	}
}

// WithResizeDebounce sets the quiet period required before a resize is
// applied.
func WithResizeDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

// WithScheduler sets a custom timer facility for the Controller.
// Use this for dependency injection of deterministic schedulers in
// tests and tooling.
func WithScheduler(s Scheduler) Option {
	return func(o *options) {
		if s != nil {
			o.sched = s
		}
	}
}

// WithLoader sets a custom image loader.
// The default loader picks local-file or HTTP loading from the source
// URI scheme.
func WithLoader(l Loader) Option {
	return func(o *options) {
		if l != nil {
			o.loader = l
		}
	}
}

// WithTweener sets the external animation collaborator for the parallax
// overlay. Without a tweener (or without an overlay element) the
// parallax binding is skipped.
func WithTweener(t Tweener) Option {
	return func(o *options) {
		o.tweener = t
	}
}

// WithBackdrop overrides the letterbox clear color. By default the
// backdrop is a muted dominant color extracted from the decoded image.
func WithBackdrop(c color.Color) Option {
	return func(o *options) {
		o.backdrop = c
	}
}
