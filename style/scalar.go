package style

import (
	"math"
	"strconv"
	"strings"
)

// Scalar is a plain numeric CSS value with an optional unit suffix,
// e.g. "10px" => (10, "px") or "0.5" => (0.5, "").
type Scalar struct {
	Value float64
	Unit  string
}

// ParseScalar splits a property value into numeric magnitude and unit
// suffix. Values that are not a single number followed by a unit token
// (letters or '%') do not parse as scalars.
func ParseScalar(p Property) (Scalar, bool) {
	s := strings.TrimSpace(string(p))
	if s == "" {
		return Scalar{}, false
	}
	i := 0
	if s[i] == '+' || s[i] == '-' {
		i++
	}
	digits, dot := 0, false
	for i < len(s) {
		c := s[i]
		if c >= '0' && c <= '9' {
			digits++
			i++
		} else if c == '.' && !dot {
			dot = true
			i++
		} else {
			break
		}
	}
	if digits == 0 {
		return Scalar{}, false
	}
	mag, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return Scalar{}, false
	}
	unit := s[i:]
	if !isUnit(unit) {
		return Scalar{}, false
	}
	return Scalar{Value: mag, Unit: unit}, true
}

// isUnit accepts the empty string, '%', or a short run of letters
// ("px", "deg", "rem", "vmin", ...).
func isUnit(s string) bool {
	if s == "" || s == "%" {
		return true
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

// LerpScalar blends two scalar property values linearly. Both sides
// must parse and carry the same unit, otherwise ok is false and the
// caller is expected to step discretely instead.
func LerpScalar(from, to Property, factor float64) (Property, bool) {
	f, ok := ParseScalar(from)
	if !ok {
		return NullStyle, false
	}
	t, ok := ParseScalar(to)
	if !ok || f.Unit != t.Unit {
		return NullStyle, false
	}
	v := lerp(f.Value, t.Value, factor)
	return Property(FormatNumber(v) + f.Unit), true
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// FormatNumber renders a float with at most 4 decimal digits and
// trailing zeros trimmed, keeping floating point noise out of output
// strings (a true value of 10 renders as "10", never "10.0001").
func FormatNumber(x float64) string {
	r := math.Round(x*1e4) / 1e4
	if r == 0 { // normalize -0
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
