package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2025 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "strings"

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient classification and conversion helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// IsNone denotes the CSS keyword "none", which for transform- and
// filter-like properties stands for an empty function list.
func (p Property) IsNone() bool {
	return strings.TrimSpace(strings.ToLower(string(p))) == "none"
}

// IsDiscrete returns wether a property key never admits continuous
// interpolation, regardless of its current value. Discrete properties
// are stepped at keyframe boundaries instead of blended.
//
// The set is fixed: layout/display/positioning keywords, keyword-valued
// list/table/flex properties, and z-index.
func IsDiscrete(key string) bool {
	_, ok := discreteProperties[strings.ToLower(key)]
	return ok
}

var discreteProperties = map[string]struct{}{
	"display":               {},
	"position":              {},
	"float":                 {},
	"clear":                 {},
	"visibility":            {},
	"overflow":              {},
	"overflow-x":            {},
	"overflow-y":            {},
	"box-sizing":            {},
	"direction":             {},
	"white-space":           {},
	"word-break":            {},
	"word-wrap":             {},
	"text-align":            {},
	"text-transform":        {},
	"text-decoration":       {},
	"font-style":            {},
	"list-style":            {},
	"list-style-type":       {},
	"list-style-position":   {},
	"list-style-image":      {},
	"table-layout":          {},
	"border-collapse":       {},
	"caption-side":          {},
	"empty-cells":           {},
	"flex-direction":        {},
	"flex-wrap":             {},
	"justify-content":       {},
	"align-items":           {},
	"align-content":         {},
	"align-self":            {},
	"pointer-events":        {},
	"user-select":           {},
	"cursor":                {},
	"content":               {},
	"background-repeat":     {},
	"background-attachment": {},
	"z-index":               {},
}
