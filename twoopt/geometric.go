package twoopt

import (
	"math"
	"time"

	"github.com/rdvo/geotsp/geo"
	"github.com/rdvo/geotsp/kdtree"
	"github.com/rdvo/geotsp/tour"
)

const (
	geometricRadiusFactor  = 3.0
	geometricMinRadius     = 0.1
	geometricMinNeighbors  = 5
	geometricRadiusEnlarge = 2.0
)

// buildIndex returns a point-id to tour-position lookup table, rebuilt
// wholesale after every accepted swap since a short-side reversal can, in
// the worst case, touch the whole tour.
func buildIndex(t []geo.Point) map[int]int {
	idx := make(map[int]int, len(t))
	for i, p := range t {
		idx[p.ID] = i
	}
	return idx
}

// Geometric runs best-improvement 2-opt restricted to k-d-tree FRNN
// candidates around each tour vertex, rebuilding the tree every
// geometricRebuild swaps (default 25, see WithGeometricRebuildEvery).
//
// Complexity: O(iterations * n * (log n + k)) time where k is the local
// FRNN result size, versus Basic's O(iterations * n²).
func Geometric(t []geo.Point, opts ...Option) (Stats, error) {
	o := gatherOptions(opts...)
	start := time.Now()
	stats := newStats()
	stats.InitialLength = tour.Length(t)

	n := len(t)
	if n < 2 {
		return finalize(stats, t, start), nil
	}
	if duplicateID(t) {
		return finalize(stats, t, start), ErrDuplicateID
	}

	tree := kdtree.Build(t)

	for stats.Iterations < o.maxIterations {
		stats.Iterations++
		tree.ResetNodesVisited()

		bestGain := o.minImprovement
		bestI, bestJ := -1, -1
		idIndex := buildIndex(t)

		for i := 0; i <= n-3; i++ {
			prev := (i - 1 + n) % n
			next := (i + 1) % n
			avgEdge := (geo.Distance(t[prev], t[i]) + geo.Distance(t[i], t[next])) / 2
			radius := math.Max(avgEdge*geometricRadiusFactor, geometricMinRadius)

			neighbors := tree.FindNeighbors(t[i], radius)
			if len(neighbors) < geometricMinNeighbors {
				radius *= geometricRadiusEnlarge
				neighbors = tree.FindNeighbors(t[i], radius)
			}

			for _, nb := range neighbors {
				j, ok := idIndex[nb.ID]
				if !ok || !eligiblePair(i, j, n) {
					continue
				}
				gain := tour.Gain(t, i, j)
				stats.TotalComparisons++
				if gain > bestGain {
					bestGain = gain
					bestI, bestJ = i, j
				}
			}
		}
		stats.NumVisited += tree.NodesVisited()

		if bestI < 0 {
			break
		}
		if err := tour.PerformSwap(t, bestI, bestJ); err != nil {
			return finalize(stats, t, start), err
		}
		stats.NumSwaps++
		if stats.NumSwaps%o.geometricRebuild == 0 {
			tree = kdtree.Build(t)
		}

		reportProgress(o.reporter, "geometric", stats, t)
	}

	if stats.Iterations == o.maxIterations {
		stats.TruncatedAtMaxIterations = true
	}
	return finalize(stats, t, start), nil
}
