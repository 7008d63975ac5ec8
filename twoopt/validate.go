package twoopt

import "github.com/rdvo/geotsp/geo"

// duplicateID reports whether any two points in t share an id. Geometric
// and Hybrid locate candidate swaps by id (buildIndex), where a duplicate
// would silently drop one of the two points from consideration; all four
// optimizers check it and return ErrDuplicateID up front instead.
func duplicateID(t []geo.Point) bool {
	seen := make(map[int]struct{}, len(t))
	for _, p := range t {
		if _, ok := seen[p.ID]; ok {
			return true
		}
		seen[p.ID] = struct{}{}
	}
	return false
}
