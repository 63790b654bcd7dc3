package tween

import "github.com/fogleman/ease"

// TimingFunctions maps the timing-function keywords accepted in
// Keyframe.Easing to their curves. The CSS keywords map onto the
// closest quadratic approximations; the remaining entries expose the
// full set of named curves for hosts that want more pronounced shapes.
//
// The map is consulted, never mutated, at evaluation time. Unknown
// keywords degrade to linear.
var TimingFunctions = map[string]func(float64) float64{
	"linear":      ease.Linear,
	"ease":        ease.InOutSine,
	"ease-in":     ease.InQuad,
	"ease-out":    ease.OutQuad,
	"ease-in-out": ease.InOutQuad,

	"ease-in-cubic":       ease.InCubic,
	"ease-out-cubic":      ease.OutCubic,
	"ease-in-out-cubic":   ease.InOutCubic,
	"ease-in-quart":       ease.InQuart,
	"ease-out-quart":      ease.OutQuart,
	"ease-in-out-quart":   ease.InOutQuart,
	"ease-in-expo":        ease.InExpo,
	"ease-out-expo":       ease.OutExpo,
	"ease-in-out-expo":    ease.InOutExpo,
	"ease-in-circ":        ease.InCirc,
	"ease-out-circ":       ease.OutCirc,
	"ease-in-out-circ":    ease.InOutCirc,
	"ease-in-back":        ease.InBack,
	"ease-out-back":       ease.OutBack,
	"ease-in-out-back":    ease.InOutBack,
	"ease-in-elastic":     ease.InElastic,
	"ease-out-elastic":    ease.OutElastic,
	"ease-in-out-elastic": ease.InOutElastic,
	"ease-in-bounce":      ease.InBounce,
	"ease-out-bounce":     ease.OutBounce,
	"ease-in-out-bounce":  ease.InOutBounce,
}

// shapeFactor passes an in-range interpolation factor through the
// segment's timing function. Extrapolated factors stay linear: the
// named curves are only defined on [0,1], and projecting a trend
// beyond the keyframe range is a linear contract.
func shapeFactor(easing string, factor float64) float64 {
	if easing == "" || factor < 0 || factor > 1 {
		return factor
	}
	fn, ok := TimingFunctions[easing]
	if !ok {
		tracer().Debugf("unknown timing function %q, falling back to linear", easing)
		return factor
	}
	return fn(factor)
}
