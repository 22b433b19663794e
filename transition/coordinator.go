// SPDX-License-Identifier: Unlicense OR MIT

package transition

import (
	"time"
)

// Coordinator runs animations alongside a transition.
type Coordinator interface {
	// AnimateAlongside schedules animation to run with the
	// transition and completion to run after it. It reports false
	// if the animation could not be scheduled.
	AnimateAlongside(animation func(p float32), completion func()) bool
	Duration() time.Duration
	Curve() Curve
}

// Runner runs a standalone animator, typically by updating it every
// frame until it finishes.
type Runner interface {
	Run(a *Animator)
}

// Animate runs animation alongside the transition of c. If c cannot
// schedule it, a standalone animator with the duration and curve of c
// is passed to r. Without a coordinator or runner the end state is
// applied immediately.
//
// Both animation and completion may be nil.
func Animate(c Coordinator, animation func(p float32), completion func(), r Runner) {
	if animation == nil {
		animation = func(float32) {}
	}
	if completion == nil {
		completion = func() {}
	}
	if c == nil {
		animation(1)
		completion()
		return
	}
	if c.AnimateAlongside(animation, completion) {
		return
	}
	if r == nil {
		animation(1)
		completion()
		return
	}
	d := c.Duration()
	if d <= 0 {
		d = Duration
	}
	a := NewAnimator(d, c.Curve())
	a.AddAnimation(animation)
	a.AddCompletion(func(Position) { completion() })
	r.Run(a)
}
