package kdtree_test

import (
	"fmt"

	"github.com/rdvo/geotsp/geo"
	"github.com/rdvo/geotsp/kdtree"
)

func ExampleTree_FindNearestNeighbor() {
	pts := []geo.Point{
		geo.New(0, 0, 0),
		geo.New(1, 5, 5),
		geo.New(2, 1, 1),
	}
	tr := kdtree.Build(pts)
	nearest := tr.FindNearestNeighbor(geo.New(-1, 0.9, 1.2))
	fmt.Println(nearest.ID)
	// Output: 2
}
