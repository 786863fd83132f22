package geom_test

import (
	"fmt"

	"github.com/forgekit/plantlayout/geom"
)

// ExampleVisibilityGraph_ShortestPath builds a visibility graph around a
// single square obstacle and routes a path around it.
func ExampleVisibilityGraph_ShortestPath() {
	obstacle := geom.Polygon{
		geom.Pt(1, -1),
		geom.Pt(2, -1),
		geom.Pt(2, 1),
		geom.Pt(1, 1),
	}
	vg := geom.Build([]geom.Polygon{obstacle})

	_, length, err := vg.ShortestPath(geom.Pt(0, 0), geom.Pt(3, 0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(length > 3)
	// Output: true
}
