package spring

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/npillmayer/tween/emit"
)

// Event topics published on an Animator's emitter.
const (
	EventUpdate = "update" // payload: position, every Tick
	EventRest   = "rest"   // payload: position, once per settle
)

// defaultEpsilon is the settle threshold for position and velocity.
const defaultEpsilon = 0.001

// An Animator moves a scalar position toward a target with damped
// spring physics. It holds position and velocity between frames and is
// advanced explicitly by the host's frame clock through Tick.
type Animator struct {
	spring  harmonica.Spring
	pos     float64
	vel     float64
	target  float64
	epsilon float64
	resting bool
	events  *emit.Emitter[float64]
}

// NewAnimator creates an Animator stepped at the given frame rate.
// Frequency is the spring's angular frequency (stiffness), damping its
// damping ratio: below 1 the spring overshoots and oscillates, 1 is
// critically damped, above 1 approaches the target sluggishly.
func NewAnimator(fps int, frequency, damping float64) *Animator {
	return &Animator{
		spring:  harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		epsilon: defaultEpsilon,
	}
}

// SetTarget retargets the spring, keeping current position and
// velocity so motion stays continuous.
func (a *Animator) SetTarget(target float64) {
	if target != a.target {
		tracer().Debugf("spring retargeted %g -> %g", a.target, target)
	}
	a.target = target
	a.resting = false
}

// Jump teleports the spring to a position with zero velocity, without
// changing the target.
func (a *Animator) Jump(pos float64) {
	a.pos = pos
	a.vel = 0
	a.resting = false
}

// Target returns the current equilibrium position.
func (a *Animator) Target() float64 { return a.target }

// Position returns the position after the most recent Tick.
func (a *Animator) Position() float64 { return a.pos }

// Velocity returns the velocity after the most recent Tick.
func (a *Animator) Velocity() float64 { return a.vel }

// Tick advances the spring by one frame and returns the new position.
// Every tick publishes EventUpdate; the tick on which the spring
// settles additionally publishes EventRest, once, until the spring is
// disturbed again by SetTarget or Jump.
func (a *Animator) Tick() float64 {
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	if a.events != nil {
		a.events.Emit(EventUpdate, a.pos)
	}
	if !a.resting && a.AtRest() {
		a.resting = true
		a.pos = a.target // snap, the remainder is below the settle threshold
		a.vel = 0
		if a.events != nil {
			a.events.Emit(EventRest, a.pos)
		}
	}
	return a.pos
}

// AtRest reports wether position is within the settle threshold of the
// target and velocity has decayed below it.
func (a *Animator) AtRest() bool {
	return math.Abs(a.pos-a.target) < a.epsilon && math.Abs(a.vel) < a.epsilon
}

// Events returns the animator's emitter, creating it on first use.
// Payloads are positions.
func (a *Animator) Events() *emit.Emitter[float64] {
	if a.events == nil {
		a.events = emit.New[float64]()
	}
	return a.events
}
