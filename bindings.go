// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixelreveal

// bind activates the viewport and resize bindings once the source image
// is ready. Called without holding c.mu: trigger services may invoke
// callbacks synchronously during registration.
func (c *Controller) bind() {
	c.trigger.Register(Registration{
		Start:   EdgeTop,
		Once:    true,
		OnEnter: c.onEnterTop,
	})
	c.trigger.Register(Registration{
		Start:   EdgeBottom,
		Once:    true,
		OnEnter: c.onEnterBottom,
	})

	if o := c.host.Overlay(); o != nil && c.tweener != nil {
		c.tweener.Animate(o, ParallaxTween{
			Start:      EdgeTop,
			End:        EdgeBottom,
			Scrub:      true,
			TranslateY: -1,
		})
	}

	c.host.OnResize(c.onHostResize)

	Logger().Debug("pixelreveal: bindings active", "source", c.source)
}

// onEnterBottom reveals the container when the surface crosses the
// bottom viewport edge. Visibility is independent of the pixelation
// sequence and this fires at most once per controller lifetime.
func (c *Controller) onEnterBottom() {
	c.mu.Lock()
	if c.enteredBottom {
		c.mu.Unlock()
		return
	}
	c.enteredBottom = true
	c.mu.Unlock()

	c.host.Reveal()
}

// onHostResize debounces resize notifications: the resize is applied
// only after a quiet period with no further notifications.
func (c *Controller) onHostResize() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.resizeTimer != nil {
		c.resizeTimer.Stop()
	}
	c.resizeTimer = c.sched.AfterFunc(c.debounce, c.onResizeSettled)
}

// onResizeSettled reallocates the surface from the container's content
// box and snaps straight to the clear image instead of replaying the
// reveal. Any pending sequencer step would repaint at a stale index and
// regress the clarity the resize just set, so it is cancelled.
func (c *Controller) onResizeSettled() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resizeTimer = nil
	if c.stepTimer != nil {
		c.stepTimer.Stop()
		c.stepTimer = nil
	}
	if c.phase == phaseAdvancing {
		c.phase = phaseDone
	}

	w, h := c.host.ContentBox()
	c.surface = NewSurface(w, h)
	c.index = len(c.levels) - 1
	c.renderLocked()
}
