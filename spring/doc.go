/*
Package spring animates a scalar position with damped spring physics.

An Animator integrates a harmonic oscillator one step per frame tick,
pulling its position toward a settable target. It owns no clock: the
host calls Tick once per frame, typically from the same callback chain
that feeds the resulting position into a tween.Interpolator as
progress. Motion can be observed through an event emitter instead of
polling.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2025 Norbert Pillmayer <norbert@pillmayer.com>

*/
package spring

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tween.spring'.
func tracer() tracing.Trace {
	return tracing.Select("tween.spring")
}
