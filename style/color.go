package style

import (
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB triple with a straight alpha channel, all channels
// kept as floats in [0,1]. HSL input notations are converted on parse,
// so interpolation always happens channel-wise in RGB space.
type Color struct {
	C colorful.Color
	A float64
}

// ParseColor reads the common CSS color notations: hex ("#rgb",
// "#rrggbb"), rgb()/rgba() with integer or percentage channels, and
// hsl()/hsla() with a degree hue and percentage saturation/lightness.
// Named colors are not recognized; callers step them discretely.
func ParseColor(p Property) (Color, bool) {
	s := strings.TrimSpace(strings.ToLower(string(p)))
	if s == "" {
		return Color{}, false
	}
	if s[0] == '#' {
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, false
		}
		return Color{C: c, A: 1}, true
	}
	fns, ok := ParseFunctionList(Property(s))
	if !ok || len(fns) != 1 {
		return Color{}, false
	}
	fn := fns[0]
	if len(fn.Args) < 3 || len(fn.Args) > 4 {
		return Color{}, false
	}
	var col Color
	switch fn.Name {
	case "rgb", "rgba":
		var ch [3]float64
		for i := 0; i < 3; i++ {
			a := fn.Args[i]
			switch a.Unit {
			case "":
				ch[i] = a.Value / 255
			case "%":
				ch[i] = a.Value / 100
			default:
				return Color{}, false
			}
		}
		col = Color{C: colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, A: 1}
	case "hsl", "hsla":
		h, sat, l := fn.Args[0], fn.Args[1], fn.Args[2]
		if h.Unit != "" && h.Unit != "deg" {
			return Color{}, false
		}
		if sat.Unit != "%" || l.Unit != "%" {
			return Color{}, false
		}
		col = Color{C: colorful.Hsl(h.Value, sat.Value/100, l.Value/100), A: 1}
	default:
		return Color{}, false
	}
	if len(fn.Args) == 4 {
		a := fn.Args[3]
		switch a.Unit {
		case "":
			col.A = a.Value
		case "%":
			col.A = a.Value / 100
		default:
			return Color{}, false
		}
	}
	return col, true
}

// LerpColor blends two colors channel-wise in RGB space. Channels are
// clamped to their valid range after blending, which keeps
// extrapolated factors from overflowing. Opaque endpoint pairs encode
// as lowercase hex "#rrggbb" (channels rounded half-up to 0–255);
// anything carrying alpha encodes as "rgba(r, g, b, a)".
func LerpColor(from, to Color, factor float64) Property {
	c := colorful.Color{
		R: lerp(from.C.R, to.C.R, factor),
		G: lerp(from.C.G, to.C.G, factor),
		B: lerp(from.C.B, to.C.B, factor),
	}.Clamped()
	if from.A == 1 && to.A == 1 {
		return Property(c.Hex())
	}
	a := clamp01(lerp(from.A, to.A, factor))
	r, g, b := c.RGB255()
	return Property("rgba(" +
		strconv.Itoa(int(r)) + ", " +
		strconv.Itoa(int(g)) + ", " +
		strconv.Itoa(int(b)) + ", " +
		FormatNumber(a) + ")")
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
