package tween

import (
	"fmt"
	"math"
	"sort"

	"github.com/npillmayer/tween/style"
)

// A Keyframe pins down style values at a point along an animation's
// progress axis. Percent is conventionally within 0–100, but neither
// clamped nor required to be unique. A property need not appear in
// every keyframe; interpolation of a property only considers the
// keyframes where it is present.
//
// Easing optionally names a timing function (see TimingFunctions)
// shaping the segment that starts at this keyframe. An empty string
// means linear.
type Keyframe struct {
	Percent float64
	Styles  map[string]style.Property
	Easing  string
}

// An Interpolator owns an ordered list of keyframes and evaluates
// intermediate style mappings for arbitrary progress values.
//
// Interpolators are not synchronized: they are meant to live inside a
// single-threaded per-frame callback chain. Callers running frames
// elsewhere must sequence SetKeyframes happening-before the Evaluate
// calls that should observe the new set.
type Interpolator struct {
	frames []Keyframe
	props  []string // union of property keys over all frames, sorted
}

// New creates an Interpolator holding a sorted copy of the given
// keyframes. The sequence must be non-empty and every keyframe must
// carry at least one style property and a usable percent value.
func New(keyframes []Keyframe) (*Interpolator, error) {
	ip := &Interpolator{}
	if err := ip.SetKeyframes(keyframes); err != nil {
		return nil, err
	}
	return ip, nil
}

// SetKeyframes replaces the stored keyframe list wholesale. The input
// is validated up front and deep-copied, then sorted ascending by
// percent with a stable sort. On error the previously stored set stays
// in effect; no partial update is ever observable.
func (ip *Interpolator) SetKeyframes(keyframes []Keyframe) error {
	if len(keyframes) == 0 {
		return fmt.Errorf("expecting a non-empty sequence of keyframes")
	}
	frames := make([]Keyframe, len(keyframes))
	propset := make(map[string]struct{})
	for i, kf := range keyframes {
		if math.IsNaN(kf.Percent) {
			return fmt.Errorf("keyframe #%d has no usable percent value", i)
		}
		if len(kf.Styles) == 0 {
			return fmt.Errorf("keyframe #%d (at %s%%) has no styles", i,
				style.FormatNumber(kf.Percent))
		}
		styles := make(map[string]style.Property, len(kf.Styles))
		for k, v := range kf.Styles {
			styles[k] = v
			propset[k] = struct{}{}
		}
		frames[i] = Keyframe{Percent: kf.Percent, Styles: styles, Easing: kf.Easing}
	}
	sort.SliceStable(frames, func(i, j int) bool {
		return frames[i].Percent < frames[j].Percent
	})
	props := make([]string, 0, len(propset))
	for k := range propset {
		props = append(props, k)
	}
	sort.Strings(props)
	ip.frames = frames
	ip.props = props
	tracer().Debugf("interpolator now holds %d keyframes with %d properties",
		len(frames), len(props))
	return nil
}

// Evaluate computes the style mapping for a progress value. Progress
// is conventionally in [0,1] but not clamped: values outside trigger
// linear extrapolation beyond the keyframe range. The result holds one
// entry for every property appearing in any keyframe, each resolved
// independently. Evaluate never fails; every value combination has a
// defined fallback.
func (ip *Interpolator) Evaluate(progress float64) map[string]style.Property {
	percent := progress * 100
	out := make(map[string]style.Property, len(ip.props))
	for _, key := range ip.props {
		out[key] = ip.resolve(key, percent)
	}
	return out
}

// resolve computes a single property's value at the given percent.
func (ip *Interpolator) resolve(key string, percent float64) style.Property {
	var rel []int // indices of the keyframes where key is present
	for i := range ip.frames {
		if _, ok := ip.frames[i].Styles[key]; ok {
			rel = append(rel, i)
		}
	}
	if style.IsDiscrete(key) {
		return ip.stepValue(key, rel, percent)
	}
	if len(rel) == 1 {
		return ip.frames[rel[0]].Styles[key]
	}
	last := len(rel) - 1
	var i int
	switch {
	case percent <= ip.frames[rel[0]].Percent:
		i = 0 // extrapolate below the range, or sit on the first frame
	case percent >= ip.frames[rel[last]].Percent:
		i = last - 1 // extrapolate above the range
	default:
		for j := last; j >= 0; j-- {
			if ip.frames[rel[j]].Percent <= percent {
				i = j
				break
			}
		}
		if i == last {
			i = last - 1
		}
	}
	start := &ip.frames[rel[i]]
	end := &ip.frames[rel[i+1]]
	from, to := start.Styles[key], end.Styles[key]
	if start.Percent == end.Percent {
		return from // degenerate pair, factor undefined
	}
	factor := (percent - start.Percent) / (end.Percent - start.Percent)
	factor = shapeFactor(start.Easing, factor)
	return blend(from, to, factor)
}

// stepValue holds a discrete property at the most recent keyframe with
// percent not above the requested one. A percent preceding all
// relevant keyframes floors at the first keyframe's value.
func (ip *Interpolator) stepValue(key string, rel []int, percent float64) style.Property {
	choice := rel[0]
	for _, idx := range rel {
		if ip.frames[idx].Percent <= percent {
			choice = idx
		} else {
			break
		}
	}
	return ip.frames[choice].Styles[key]
}

// blend interpolates two raw property values at the given factor,
// dispatching on the value kind: color, function list, scalar with
// unit, and finally the discrete start/end fallback for everything
// that resists a numeric reading (mismatched units included).
func blend(from, to style.Property, factor float64) style.Property {
	if fc, ok := style.ParseColor(from); ok {
		if tc, ok2 := style.ParseColor(to); ok2 {
			return style.LerpColor(fc, tc, factor)
		}
		return stepEnds(from, to, factor)
	}
	ffl, fok := style.ParseFunctionList(from)
	tfl, tok := style.ParseFunctionList(to)
	if fok && !tok && to.IsNone() {
		tfl, tok = nil, true // "none" pairs with a function list as the empty list
	}
	if tok && !fok && from.IsNone() {
		ffl, fok = nil, true
	}
	if fok && tok {
		return style.LerpFunctionLists(ffl, tfl, factor)
	}
	if v, ok := style.LerpScalar(from, to, factor); ok {
		return v
	}
	return stepEnds(from, to, factor)
}

func stepEnds(from, to style.Property, factor float64) style.Property {
	if factor < 1 {
		return from
	}
	return to
}
