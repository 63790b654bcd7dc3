/*
Package tween computes intermediate CSS style values between keyframes.

An Interpolator owns an ordered list of keyframes, each pinning style
values to a percentage of an animation's progress axis. Given a
normalized progress value it produces a complete style mapping:
continuous values (lengths, colors, transform/filter function lists)
blend linearly between their bracketing keyframes, discrete values
step, and progress outside the keyframe range extrapolates the trend
of the nearest segment instead of clamping.

Evaluation is a pure function of the stored keyframes and the progress
argument. The package performs no scheduling of its own: a host drives
it with one Evaluate call per animation tick, typically fed by
tween/spring or another frame clock, and applies the returned mapping
to its rendering target.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2025 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tween

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tween'.
func tracer() tracing.Trace {
	return tracing.Select("tween")
}
