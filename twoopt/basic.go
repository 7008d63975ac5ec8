package twoopt

import (
	"time"

	"github.com/rdvo/geotsp/geo"
	"github.com/rdvo/geotsp/tour"
)

// eligiblePair reports whether (i, j) is a candidate 2-opt swap under the
// standard constraints shared by all four optimizers: i < j, j >= i+2,
// and not the (0, n-1) whole-tour rotation.
func eligiblePair(i, j, n int) bool {
	return j >= i+2 && !(i == 0 && j == n-1)
}

// Basic runs exhaustive best-improvement 2-opt: every pass evaluates all
// eligible (i, j) pairs, applies the single best positive-gain swap, and
// repeats until a pass finds none or MaxIterations passes elapse.
//
// Complexity: O(iterations * n²) time, O(1) extra space per candidate
// evaluation.
func Basic(t []geo.Point, opts ...Option) (Stats, error) {
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

	for stats.Iterations < o.maxIterations {
		stats.Iterations++

		bestGain := o.minImprovement
		bestI, bestJ := -1, -1

		for i := 0; i <= n-3; i++ {
			for j := i + 2; j < n; j++ {
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
			break
		}
		if err := tour.PerformSwap(t, bestI, bestJ); err != nil {
			return finalize(stats, t, start), err
		}
		stats.NumSwaps++

		reportProgress(o.reporter, "basic", stats, t)
	}

	if stats.Iterations == o.maxIterations {
		stats.TruncatedAtMaxIterations = true
	}
	return finalize(stats, t, start), nil
}

// reportProgress forwards a progress snapshot to r every 100 iterations,
// matching spec.md §5's cadence.
func reportProgress(r Reporter, algorithm string, stats Stats, t []geo.Point) {
	if stats.Iterations%100 != 0 {
		return
	}
	snapshot := stats
	snapshot.FinalLength = tour.Length(t)
	r.Progress(algorithm, snapshot)
}
