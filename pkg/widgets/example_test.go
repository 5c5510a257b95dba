package widgets_test

import (
	"fmt"

	"github.com/go-drift/cellkit/pkg/core"
	"github.com/go-drift/cellkit/pkg/rendering"
	"github.com/go-drift/cellkit/pkg/widgets"
)

// This example lays out a title above a row whose middle child takes the
// space its siblings leave.
func Example() {
	root := widgets.Column[string]{Children: []core.Component[string]{
		widgets.Text[string]{Content: "status"},
		widgets.Row[string]{Children: []core.Component[string]{
			widgets.Text[string]{Content: "a"},
			widgets.Flexible[string]{Fit: widgets.FlexFitLoose, Child: widgets.Text[string]{Content: "b"}},
			widgets.Text[string]{Content: "c"},
		}},
	}}

	buf := rendering.NewBuffer(7, 2)
	node, err := core.NewRenderer[string]().Frame(buf, func(*core.BuildContext) core.Component[string] {
		return root
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(buf)
	fmt.Println(node.Child(1).Child(1).Rect())

	// Output:
	// status
	// ab    c
	// (1,0 5x1)
}
