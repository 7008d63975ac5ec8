package geo

// Point is an immutable 2D coordinate pair carrying a caller-assigned
// stable identifier and a mutable activation flag.
//
// ID uniquely identifies a point across reorderings of a tour; two Points
// with the same ID are the same logical vertex even if copied. Active is
// written only by the twoopt package's Approximate and Hybrid optimizers,
// which copy their internal position-aligned activation bitset onto the
// tour after every accepted swap and on the final pass (see twoopt's
// syncActive); their candidate search never reads this field.
type Point struct {
	ID     int
	X, Y   float64
	Active bool
}

// New returns a Point with Active set to true, matching the reference
// behavior of treating every point as initially eligible for search.
func New(id int, x, y float64) Point {
	return Point{ID: id, X: x, Y: y, Active: true}
}

// Axis returns the coordinate of p on the given k-d tree splitting axis.
// axis 0 selects X, any other value selects Y.
func (p Point) Axis(axis int) float64 {
	if axis == 0 {
		return p.X
	}
	return p.Y
}
