package twoopt

import (
	"math"
	"time"

	roaring "github.com/RoaringBitmap/roaring/v2"

	"github.com/rdvo/geotsp/geo"
	"github.com/rdvo/geotsp/kdtree"
	"github.com/rdvo/geotsp/tour"
)

const (
	hybridRadiusFactor = 4.0
	hybridMinRadius    = 0.15
	hybridMinNeighbors = 8
	hybridEmptyPassDivisor = 4
	hybridEmptyPassTopUp   = 15
)

// Hybrid runs best-improvement 2-opt over candidates that are both
// k-d-tree adaptive-FRNN neighbors and currently active, ranked by the
// squared-distance gain proxy (see tour.SquaredGain's caveat: this is an
// approximation and Hybrid is not guaranteed to reach a true 2-opt local
// minimum). Activation is reset around every accepted swap, and the k-d
// tree is rebuilt every hybridRebuild swaps (default 30, see
// WithHybridRebuildEvery).
//
// Complexity: O(iterations * a * (log n + k)) time where a is the active
// set size and k the local adaptive-FRNN result size.
func Hybrid(t []geo.Point, opts ...Option) (Stats, error) {
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

	treeOpts := []kdtree.TreeOption{
		kdtree.WithGrowthFactor(o.growthFactor),
		kdtree.WithRadiusCap(o.radiusCap),
	}
	tree := kdtree.Build(t, treeOpts...)
	active := newFullyActive(n)

	for stats.Iterations < o.maxIterations {
		stats.Iterations++
		tree.ResetNodesVisited()

		idxs := activeIndices(active)
		stats.ActiveNodes = len(idxs)
		idIndex := buildIndex(t)

		bestGain := o.minImprovement
		bestI, bestJ := -1, -1

		for _, i := range idxs {
			if i >= n-2 {
				continue
			}
			edge := geo.Distance(t[i], t[(i+1)%n])
			radius := math.Max(edge*hybridRadiusFactor, hybridMinRadius)
			neighbors := tree.FindNeighborsAdaptive(t[i], radius, hybridMinNeighbors)

			for _, nb := range neighbors {
				j, ok := idIndex[nb.ID]
				if !ok || !eligiblePair(i, j, n) || !active.Contains(uint32(j)) {
					continue
				}
				gain := tour.SquaredGain(t, i, j)
				stats.TotalComparisons++
				if gain > bestGain {
					bestGain = gain
					bestI, bestJ = i, j
				}
			}
		}
		stats.NumVisited += tree.NodesVisited()

		if bestI < 0 {
			activateEverySecond(active, n, max(len(idxs)+hybridEmptyPassTopUp, n/hybridEmptyPassDivisor))
			syncActive(t, active)
			break
		}

		if err := tour.PerformSwap(t, bestI, bestJ); err != nil {
			return finalize(stats, t, start), err
		}
		stats.NumSwaps++
		activateAround(active, n, bestI, bestJ, hybridActivationWindow)
		syncActive(t, active)

		if stats.NumSwaps%o.hybridRebuild == 0 {
			tree = kdtree.Build(t, treeOpts...)
		}

		reportProgress(o.reporter, "hybrid", stats, t)
	}

	if stats.Iterations == o.maxIterations {
		stats.TruncatedAtMaxIterations = true
	}
	return finalize(stats, t, start), nil
}

// activateEverySecond clears bm and activates positions 0, 2, 4, ... up
// to count, the broader escape Hybrid uses on an empty pass, relative to
// Approximate's random top-up.
func activateEverySecond(bm *roaring.Bitmap, n, count int) {
	bm.Clear()
	if count > n {
		count = n
	}
	for i := 0; i < count; i += 2 {
		bm.Add(uint32(i))
	}
}

