// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixelreveal

// phase is the step sequencer state.
//
// Idle is the initial state; the single-shot viewport-entry signal
// moves the machine to Advancing at index zero, each timer firing
// advances the index by one, and Done is terminal: once reached, only a
// resize can force another render, and it does so without re-entering
// the machine.
type phase uint8

const (
	phaseIdle phase = iota
	phaseAdvancing
	phaseDone
)

// onEnterTop handles the viewport-entry signal: it resets the clarity
// cursor and starts the step sequencer. It fires at most once per
// controller lifetime; repeats are ignored even if the trigger service
// delivers them.
func (c *Controller) onEnterTop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.enteredTop || c.state != StateReady {
		return
	}
	c.enteredTop = true

	c.index = 0
	c.phase = phaseAdvancing
	c.renderLocked()
	c.armStepLocked()
}

// armStepLocked schedules the next clarity step, or finishes the
// sequence when the cursor sits on the last level. Callers must hold
// c.mu.
func (c *Controller) armStepLocked() {
	if c.index+1 < len(c.levels) {
		c.stepTimer = c.sched.AfterFunc(c.interval, c.onStepTimer)
		return
	}
	c.stepTimer = nil
	c.phase = phaseDone
}

// onStepTimer advances the sequencer by one clarity step.
func (c *Controller) onStepTimer() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// A resize may have snapped to the clear image and cancelled the
	// sequence; a timer that fired anyway must not regress clarity.
	if c.phase != phaseAdvancing {
		return
	}

	c.index++
	c.renderLocked()
	c.armStepLocked()
}
