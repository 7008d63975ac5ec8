package kdtree

import "github.com/rdvo/geotsp/geo"

// DefaultAdaptiveGrowthFactor is the per-step radius multiplier
// FindNeighborsAdaptive uses when the Tree was built without WithGrowthFactor.
const DefaultAdaptiveGrowthFactor = 1.5

// DefaultAdaptiveRadiusCap is the radius ceiling FindNeighborsAdaptive
// uses when the Tree was built without WithRadiusCap. It assumes a
// roughly unit-square coordinate domain; see WithRadiusCap for other
// domains.
const DefaultAdaptiveRadiusCap = 2.0

// node is an interior or leaf node of a Tree. Children are exclusively
// owned: a node is reachable from exactly one parent, never shared.
type node struct {
	point geo.Point
	axis  int // 0 = split on X, 1 = split on Y
	left  *node
	right *node
}

// Tree is a static 2D k-d tree over a fixed point set, splitting on X at
// even depths and Y at odd depths.
//
// A Tree is not safe for concurrent queries: NodesVisited is a plain
// int, reset and incremented by every traversal method.
type Tree struct {
	root         *node
	size         int
	visited      int
	growthFactor float64
	radiusCap    float64
}

// TreeOption configures a Tree at construction time.
type TreeOption func(*Tree)

// WithGrowthFactor overrides the per-step radius multiplier used by
// FindNeighborsAdaptive.
func WithGrowthFactor(factor float64) TreeOption {
	return func(t *Tree) { t.growthFactor = factor }
}

// WithRadiusCap overrides the radius ceiling used by FindNeighborsAdaptive,
// letting callers outside a unit-square domain rescale it (see
// DefaultAdaptiveRadiusCap).
func WithRadiusCap(cap float64) TreeOption {
	return func(t *Tree) { t.radiusCap = cap }
}

// Build constructs a Tree over points by recursively partitioning around
// the per-axis median. points is copied; the caller's slice is never
// mutated.
//
// Complexity: O(n log n) expected time (median-of-n quickselect at each
// of O(log n) levels), O(n) space.
func Build(points []geo.Point, opts ...TreeOption) *Tree {
	t := &Tree{growthFactor: DefaultAdaptiveGrowthFactor, radiusCap: DefaultAdaptiveRadiusCap}
	for _, opt := range opts {
		opt(t)
	}
	if len(points) == 0 {
		return t
	}
	cp := make([]geo.Point, len(points))
	copy(cp, points)
	t.root = build(cp, 0)
	t.size = len(points)
	return t
}

func build(pts []geo.Point, depth int) *node {
	if len(pts) == 0 {
		return nil
	}
	axis := depth % 2
	mid := len(pts) / 2
	quickselect(pts, 0, len(pts)-1, mid, axis)

	n := &node{point: pts[mid], axis: axis}
	n.left = build(pts[:mid], depth+1)
	n.right = build(pts[mid+1:], depth+1)
	return n
}

// quickselect reorders pts[lo:hi+1] in place so that pts[k] holds the
// element that would occupy position k in an axis-sorted ordering, with
// every element before k no greater and every element after k no less.
//
// Lomuto-scheme quickselect, average O(n) over the call.
func quickselect(pts []geo.Point, lo, hi, k, axis int) {
	for lo < hi {
		p := partition(pts, lo, hi, axis)
		switch {
		case k == p:
			return
		case k < p:
			hi = p - 1
		default:
			lo = p + 1
		}
	}
}

func partition(pts []geo.Point, lo, hi, axis int) int {
	pivot := pts[hi].Axis(axis)
	i := lo
	for j := lo; j < hi; j++ {
		if pts[j].Axis(axis) < pivot {
			pts[i], pts[j] = pts[j], pts[i]
			i++
		}
	}
	pts[i], pts[hi] = pts[hi], pts[i]
	return i
}

// Size returns the number of points the Tree was built from.
func (t *Tree) Size() int { return t.size }

// NodesVisited returns the number of node visits performed by the most
// recent traversal method call.
func (t *Tree) NodesVisited() int { return t.visited }

// ResetNodesVisited zeroes the visit counter without performing a query.
func (t *Tree) ResetNodesVisited() { t.visited = 0 }

// nearSide returns which child of n should be explored first for query,
// and the signed distance along n's split axis that determines whether
// the far side can be pruned.
func nearSide(n *node, query geo.Point) (near, far *node, axisDiff float64) {
	axisDiff = query.Axis(n.axis) - n.point.Axis(n.axis)
	if axisDiff > 0 {
		return n.right, n.left, axisDiff
	}
	return n.left, n.right, axisDiff
}

// FindNeighbors returns every point within radius (inclusive) of query.
//
// Complexity: O(log n + m) expected, where m is the result size; worst
// case O(n) if radius spans most of the point set.
func (t *Tree) FindNeighbors(query geo.Point, radius float64) []geo.Point {
	t.visited = 0
	var out []geo.Point
	radiusSq := radius * radius
	t.frnn(t.root, query, radiusSq, &out)
	return out
}

func (t *Tree) frnn(n *node, query geo.Point, radiusSq float64, out *[]geo.Point) {
	if n == nil {
		return
	}
	t.visited++
	if geo.SquaredDistance(n.point, query) <= radiusSq {
		*out = append(*out, n.point)
	}
	near, far, axisDiff := nearSide(n, query)
	t.frnn(near, query, radiusSq, out)
	if axisDiff*axisDiff <= radiusSq {
		t.frnn(far, query, radiusSq, out)
	}
}

// FindNearestNeighbor returns the point in the Tree closest to query. It
// returns the zero geo.Point if the Tree is empty.
//
// Complexity: O(log n) expected time.
func (t *Tree) FindNearestNeighbor(query geo.Point) geo.Point {
	if t.root == nil {
		return geo.Point{}
	}
	best := t.root.point
	bestDistSq := geo.SquaredDistance(query, best)
	t.visited = 0
	t.nearest(t.root, query, &best, &bestDistSq)
	return best
}

func (t *Tree) nearest(n *node, query geo.Point, best *geo.Point, bestDistSq *float64) {
	if n == nil {
		return
	}
	t.visited++
	if d := geo.SquaredDistance(n.point, query); d < *bestDistSq {
		*bestDistSq = d
		*best = n.point
	}
	near, far, axisDiff := nearSide(n, query)
	t.nearest(near, query, best, bestDistSq)
	if axisDiff*axisDiff < *bestDistSq {
		t.nearest(far, query, best, bestDistSq)
	}
}

// FindKNearestNeighbors returns up to k points closest to query, ordered
// nearest-first. Returns nil if k <= 0 or the Tree is empty.
//
// Complexity: O(log n + k log k) expected time.
func (t *Tree) FindKNearestNeighbors(query geo.Point, k int) []geo.Point {
	if k <= 0 || t.root == nil {
		return nil
	}
	h := &neighborHeap{}
	t.visited = 0
	t.knn(t.root, query, k, h)

	result := make([]geo.Point, h.Len())
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = popNeighbor(h).point
	}
	return result
}

func (t *Tree) knn(n *node, query geo.Point, k int, h *neighborHeap) {
	if n == nil {
		return
	}
	t.visited++
	d := geo.SquaredDistance(n.point, query)
	if h.Len() < k {
		pushNeighbor(h, neighbor{distSq: d, point: n.point})
	} else if d < (*h)[0].distSq {
		popNeighbor(h)
		pushNeighbor(h, neighbor{distSq: d, point: n.point})
	}

	near, far, axisDiff := nearSide(n, query)
	t.knn(near, query, k, h)

	if h.Len() < k || axisDiff*axisDiff < (*h)[0].distSq {
		t.knn(far, query, k, h)
	}
}

// FindNeighborsAdaptive grows the search radius geometrically (by the
// Tree's growth factor, default ×1.5) starting from baseRadius until at
// least minNeighbors points are found or the Tree's radius cap (default
// 2.0) is reached.
//
// Complexity: bounded by the number of growth steps (at most a handful
// given the fixed cap), each an O(log n + m) FindNeighbors call.
func (t *Tree) FindNeighborsAdaptive(query geo.Point, baseRadius float64, minNeighbors int) []geo.Point {
	radius := baseRadius
	neighbors := t.FindNeighbors(query, radius)
	visited := t.visited
	for len(neighbors) < minNeighbors && radius < t.radiusCap {
		radius *= t.growthFactor
		neighbors = t.FindNeighbors(query, radius)
		visited += t.visited
	}
	t.visited = visited
	return neighbors
}
