package tween

import (
	"fmt"
	"sort"

	"github.com/npillmayer/tween/style"
	tp "github.com/xlab/treeprint"
)

// Dump renders the stored keyframe timeline as an indented tree, one
// branch per keyframe with its style properties as leaves. Intended
// for debugging and test logs.
func (ip *Interpolator) Dump() string {
	tree := tp.New()
	for _, kf := range ip.frames {
		label := fmt.Sprintf("%s%%", style.FormatNumber(kf.Percent))
		if kf.Easing != "" {
			label += " [" + kf.Easing + "]"
		}
		branch := tree.AddBranch(label)
		keys := make([]string, 0, len(kf.Styles))
		for k := range kf.Styles {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			branch.AddNode(fmt.Sprintf("%s: %s", k, kf.Styles[k]))
		}
	}
	return tree.String()
}
