package style

import (
	"strings"

	"github.com/gorilla/css/scanner"
)

// Fn is one name(args) entry of a transform or filter function list,
// e.g. "translate(10px, 4px)" => {"translate", [(10,"px"), (4,"px")]}.
type Fn struct {
	Name string
	Args []Scalar
}

// ParseFunctionList tokenizes a composite value like
//
//     translateX(10px) rotate(5deg)
//
// into its ordered list of functions with numeric arguments. Function
// names keep their original spelling but act as case-insensitive keys:
// a repeated name replaces the arguments of its first occurrence. A
// value that is not a well-formed, non-empty sequence of functions
// with purely numeric arguments does not parse (ok is false).
func ParseFunctionList(p Property) ([]Fn, bool) {
	s := scanner.New(string(p))
	var fns []Fn
	index := make(map[string]int) // lowercase name -> position in fns
	cur := -1                     // entry whose argument list is open; -1 when outside
	neg := false                  // pending '-' sign before a number token
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			return fns, len(fns) > 0 && cur < 0 && !neg
		case scanner.TokenS, scanner.TokenComment:
			continue
		case scanner.TokenFunction:
			if cur >= 0 {
				return nil, false
			}
			name := strings.TrimSuffix(tok.Value, "(")
			key := strings.ToLower(name)
			if at, ok := index[key]; ok {
				fns[at].Args = nil // later occurrence wins
				cur = at
			} else {
				index[key] = len(fns)
				cur = len(fns)
				fns = append(fns, Fn{Name: name})
			}
		case scanner.TokenNumber, scanner.TokenDimension, scanner.TokenPercentage:
			if cur < 0 {
				return nil, false
			}
			arg, ok := ParseScalar(Property(tok.Value))
			if !ok {
				return nil, false
			}
			if neg {
				arg.Value = -arg.Value
				neg = false
			}
			fns[cur].Args = append(fns[cur].Args, arg)
		case scanner.TokenChar:
			switch tok.Value {
			case ")":
				if cur < 0 || neg {
					return nil, false
				}
				cur = -1
			case ",":
				if cur < 0 {
					return nil, false
				}
			case "-", "+":
				if cur < 0 {
					return nil, false
				}
				neg = tok.Value == "-"
			default:
				return nil, false
			}
		default:
			return nil, false
		}
	}
}

// neutralArg is the identity argument for a function missing from one
// side of an interpolation: 1 for the scaling/gain family, 0 for
// everything that translates, rotates or skews.
func neutralArg(name string) float64 {
	switch key := strings.ToLower(name); {
	case strings.HasPrefix(key, "scale"):
		return 1
	case key == "opacity" || key == "brightness" || key == "contrast" || key == "saturate":
		return 1
	}
	return 0
}

// LerpFunctionLists blends two parsed function lists. The union of
// function names takes part: a function absent from one side
// interpolates against its neutral argument, with the unit inferred
// from the side that has the function. Present on both sides, each
// positional argument blends independently and keeps the start side's
// unit; a shorter argument list pads with the neutral. The result
// keeps the start side's function order, with end-only functions
// appended in end order.
func LerpFunctionLists(from, to []Fn, factor float64) Property {
	used := make([]bool, len(to))
	parts := make([]string, 0, len(from)+len(to))
	for _, f := range from {
		var counterpart []Scalar
		for j, t := range to {
			if !used[j] && strings.EqualFold(f.Name, t.Name) {
				counterpart = t.Args
				used[j] = true
				break
			}
		}
		parts = append(parts, lerpFn(f.Name, f.Args, counterpart, factor))
	}
	for j, t := range to {
		if !used[j] {
			parts = append(parts, lerpFn(t.Name, nil, t.Args, factor))
		}
	}
	return Property(strings.Join(parts, " "))
}

func lerpFn(name string, fromArgs, toArgs []Scalar, factor float64) string {
	n := len(fromArgs)
	if len(toArgs) > n {
		n = len(toArgs)
	}
	neutral := neutralArg(name)
	args := make([]string, n)
	for i := 0; i < n; i++ {
		fv, tv := neutral, neutral
		var unit string
		if i < len(toArgs) {
			tv = toArgs[i].Value
			unit = toArgs[i].Unit
		}
		if i < len(fromArgs) {
			fv = fromArgs[i].Value
			unit = fromArgs[i].Unit // start side's unit wins
		}
		args[i] = FormatNumber(lerp(fv, tv, factor)) + unit
	}
	return name + "(" + strings.Join(args, ", ") + ")"
}
