// SPDX-License-Identifier: Unlicense OR MIT

package transition

import (
	"time"
)

// State is the life cycle state of an Animator.
type State uint8

// Position is where an Animator came to rest.
type Position uint8

const (
	// Inactive animators have not started, or have finished.
	Inactive State = iota
	// Active animators are running or paused.
	Active
	// Stopped animators hold their current values until finished.
	Stopped
)

const (
	End Position = iota
	Start
	Current
)

// Animator is an interruptible animation of properties over time.
//
// Animations are functions of the eased progress, 0 at the start and 1
// at the end. The animator advances on frame time passed to Update, and
// may be paused, scrubbed and reversed while active. Completions run
// once, when the animation reaches either end or is finished
// explicitly.
//
// Animator is not safe for concurrent use; it is driven from the
// goroutine that lays out the window.
type Animator struct {
	Duration time.Duration
	Curve    Curve

	state       State
	running     bool
	reversed    bool
	fraction    float32
	last        time.Time
	animations  []func(p float32)
	completions []func(Position)
}

// NewAnimator returns an inactive animator.
func NewAnimator(d time.Duration, c Curve) *Animator {
	return &Animator{Duration: d, Curve: c}
}

// AddAnimation adds an animation. Animations added to an active
// animator are applied at the current progress.
func (a *Animator) AddAnimation(f func(p float32)) {
	a.animations = append(a.animations, f)
	if a.state == Active {
		f(a.progress())
	}
}

// AddCompletion adds a function to call when the animation ends.
func (a *Animator) AddCompletion(f func(Position)) {
	a.completions = append(a.completions, f)
}

// State returns the life cycle state.
func (a *Animator) State() State {
	return a.state
}

// Running reports whether the animator advances on Update.
func (a *Animator) Running() bool {
	return a.running
}

// Reversed reports whether the animator runs towards the start.
func (a *Animator) Reversed() bool {
	return a.reversed
}

// Fraction returns the linear progress of the animation.
func (a *Animator) Fraction() float32 {
	return a.fraction
}

// Start runs the animation from its current fraction, with now as the
// current frame time.
func (a *Animator) Start(now time.Time) {
	if a.state == Stopped {
		panic("transition: Start of stopped animator")
	}
	a.state = Active
	a.running = true
	a.last = now
	a.apply()
}

// Pause stops advancing the animation. Pausing an inactive animator
// activates it without running it, to allow scrubbing with
// SetFraction.
func (a *Animator) Pause() {
	if a.state == Stopped {
		return
	}
	if a.state == Inactive {
		a.state = Active
		a.apply()
	}
	a.running = false
}

// SetFraction scrubs a paused animator to f.
func (a *Animator) SetFraction(f float32) {
	if a.running {
		panic("transition: SetFraction of running animator")
	}
	a.fraction = clamp01(f)
	if a.state == Active {
		a.apply()
	}
}

// Reverse flips the direction of the animation. The current values
// are kept, so a reversed animator returns along the path it came.
func (a *Animator) Reverse() {
	a.reversed = !a.reversed
}

// Update advances a running animator to frame time now and reports
// whether it needs another frame.
func (a *Animator) Update(now time.Time) bool {
	if a.state != Active || !a.running {
		return false
	}
	dt := now.Sub(a.last)
	a.last = now
	step := float32(1)
	if a.Duration > 0 {
		step = float32(dt) / float32(a.Duration)
	}
	if a.reversed {
		a.fraction = clamp01(a.fraction - step)
	} else {
		a.fraction = clamp01(a.fraction + step)
	}
	a.apply()
	switch {
	case !a.reversed && a.fraction == 1:
		a.finish(End)
		return false
	case a.reversed && a.fraction == 0:
		a.finish(Start)
		return false
	}
	return true
}

// Stop freezes the animator at its current values. A stopped
// animator must be finished with Finish.
func (a *Animator) Stop() {
	if a.state == Inactive {
		return
	}
	a.state = Stopped
	a.running = false
}

// Finish ends a stopped animator at pos and runs its completions.
func (a *Animator) Finish(pos Position) {
	if a.state != Stopped {
		panic("transition: Finish of animator that is not stopped")
	}
	switch pos {
	case End:
		a.fraction = 1
		a.apply()
	case Start:
		a.fraction = 0
		a.apply()
	}
	a.finish(pos)
}

func (a *Animator) finish(pos Position) {
	a.state = Inactive
	a.running = false
	completions := a.completions
	a.completions = nil
	for _, f := range completions {
		f(pos)
	}
}

func (a *Animator) progress() float32 {
	return a.Curve.Ease(a.fraction)
}

func (a *Animator) apply() {
	p := a.progress()
	for _, f := range a.animations {
		f(p)
	}
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func (s State) String() string {
	switch s {
	case Inactive:
		return "Inactive"
	case Active:
		return "Active"
	case Stopped:
		return "Stopped"
	default:
		panic("unreachable")
	}
}

func (p Position) String() string {
	switch p {
	case End:
		return "End"
	case Start:
		return "Start"
	case Current:
		return "Current"
	default:
		panic("unreachable")
	}
}
