package twoopt

import (
	"time"

	"github.com/rdvo/geotsp/geo"
	"github.com/rdvo/geotsp/tour"
)

// Approximate runs best-improvement 2-opt restricted to pairs drawn from
// the currently active positions. Activation starts full, then narrows
// to the neighborhood of each accepted swap; an unproductive pass tops
// the active set up with randomly chosen extra positions before the
// common contract terminates the loop.
//
// Complexity: O(iterations * a²) time where a is the active-set size,
// versus Basic's O(iterations * n²); a starts at n and shrinks quickly.
func Approximate(t []geo.Point, opts ...Option) (Stats, error) {
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

	active := newFullyActive(n)

	for stats.Iterations < o.maxIterations {
		stats.Iterations++

		idxs := activeIndices(active)
		stats.ActiveNodes = len(idxs)

		bestGain := o.minImprovement
		bestI, bestJ := -1, -1

		for a := 0; a < len(idxs); a++ {
			i := idxs[a]
			for b := a + 1; b < len(idxs); b++ {
				j := idxs[b]
				if !eligiblePair(i, j, n) {
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

		if bestI < 0 {
			topUp(active, n, len(idxs)+o.approxTopUp, o.rng)
			syncActive(t, active)
			break
		}

		if err := tour.PerformSwap(t, bestI, bestJ); err != nil {
			return finalize(stats, t, start), err
		}
		stats.NumSwaps++
		activateAround(active, n, bestI, bestJ, activationWindow)
		syncActive(t, active)

		reportProgress(o.reporter, "approximate", stats, t)
	}

	if stats.Iterations == o.maxIterations {
		stats.TruncatedAtMaxIterations = true
	}
	return finalize(stats, t, start), nil
}
