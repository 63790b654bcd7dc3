package tween_test

import (
	"fmt"

	"github.com/npillmayer/tween"
	"github.com/npillmayer/tween/style"
)

func ExampleInterpolator_Evaluate() {
	ip, _ := tween.New([]tween.Keyframe{
		{Percent: 0, Styles: map[string]style.Property{
			"width":     "0px",
			"transform": "translateX(0px)",
			"color":     "#000000",
		}},
		{Percent: 100, Styles: map[string]style.Property{
			"width":     "100px",
			"transform": "translateX(10px) rotate(10deg)",
			"color":     "#ffffff",
		}},
	})
	out := ip.Evaluate(0.5)
	fmt.Println(out["width"])
	fmt.Println(out["transform"])
	fmt.Println(out["color"])
	// Output:
	// 50px
	// translateX(5px) rotate(5deg)
	// #808080
}
