package style

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFunctionList(t *testing.T) {
	fns, ok := ParseFunctionList("translateX(10px) rotate(5deg)")
	require.True(t, ok)
	require.Len(t, fns, 2)
	require.Equal(t, "translateX", fns[0].Name)
	require.Equal(t, []Scalar{{10, "px"}}, fns[0].Args)
	require.Equal(t, "rotate", fns[1].Name)
	require.Equal(t, []Scalar{{5, "deg"}}, fns[1].Args)
}

func TestParseFunctionListMultiArg(t *testing.T) {
	fns, ok := ParseFunctionList("translate(10px, -4px)")
	require.True(t, ok)
	require.Len(t, fns, 1)
	require.Equal(t, []Scalar{{10, "px"}, {-4, "px"}}, fns[0].Args)
}

func TestParseFunctionListRepeatedNameWins(t *testing.T) {
	// function names act as keys of an ordered mapping: a repeated
	// name replaces the earlier arguments, keeping the first position
	fns, ok := ParseFunctionList("scale(2) rotate(5deg) scale(3)")
	require.True(t, ok)
	require.Len(t, fns, 2)
	require.Equal(t, "scale", fns[0].Name)
	require.Equal(t, []Scalar{{3, ""}}, fns[0].Args)
}

func TestParseFunctionListRejects(t *testing.T) {
	for _, in := range []Property{"", "none", "10px", "block", "rotate(", "rotate 5deg", "rotate(5deg) 3"} {
		_, ok := ParseFunctionList(in)
		require.False(t, ok, "parse %q", in)
	}
}

func TestLerpFunctionListsPairwise(t *testing.T) {
	from, _ := ParseFunctionList("translateX(0px) rotate(0deg)")
	to, _ := ParseFunctionList("translateX(10px) rotate(90deg)")
	got := LerpFunctionLists(from, to, 0.5)
	require.Equal(t, Property("translateX(5px) rotate(45deg)"), got)
}

func TestLerpFunctionListsUnion(t *testing.T) {
	from, _ := ParseFunctionList("translateX(0px)")
	to, _ := ParseFunctionList("translateX(10px) rotate(10deg)")
	// rotate is missing on the start side and interpolates from 0deg
	got := LerpFunctionLists(from, to, 0.5)
	require.Equal(t, Property("translateX(5px) rotate(5deg)"), got)

	// scale-family functions have a neutral argument of 1
	from, _ = ParseFunctionList("scale(3)")
	to, _ = ParseFunctionList("rotate(10deg)")
	got = LerpFunctionLists(from, to, 0.5)
	require.Equal(t, Property("scale(2) rotate(5deg)"), got)
}

func TestLerpFunctionListsPadsShorterArgList(t *testing.T) {
	from, _ := ParseFunctionList("translate(10px)")
	to, _ := ParseFunctionList("translate(20px, 6px)")
	got := LerpFunctionLists(from, to, 0.5)
	require.Equal(t, Property("translate(15px, 3px)"), got)
}

func TestLerpFunctionListsKeepsStartUnits(t *testing.T) {
	from, _ := ParseFunctionList("rotate(0deg)")
	to, _ := ParseFunctionList("rotate(100deg)")
	got := LerpFunctionLists(from, to, 0.25)
	require.Equal(t, Property("rotate(25deg)"), got)
}

func TestLerpFunctionListsEmptySide(t *testing.T) {
	to, _ := ParseFunctionList("translateX(10px)")
	got := LerpFunctionLists(nil, to, 0.5)
	require.Equal(t, Property("translateX(5px)"), got)
}
