/*
Package style models raw CSS property values for animation purposes.

CSS property values arrive as untyped strings ("10px", "#ff0080",
"translateX(4px) rotate(12deg)", "block"). This package classifies and
parses them just far enough to interpolate between two snapshots of the
same property: scalars with a unit suffix, colors in the common hex and
functional notations, and transform/filter function lists. Everything
that resists a numeric reading is treated as a discrete token and
stepped instead of blended.

All parse functions are tolerant: they report failure through an ok
flag and never panic, so a caller can fall back to discrete stepping
for any value it cannot make numeric sense of.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2025 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tween.style'.
func tracer() tracing.Trace {
	return tracing.Select("tween.style")
}
