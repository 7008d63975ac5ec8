// Package twoopt implements four 2-opt local-search optimizers over a
// geo.Point tour — Basic, Geometric, Approximate and Hybrid — sharing a
// common best-improvement acceptance rule and iteration budget, differing
// only in how each restricts its candidate swap pairs per pass:
//
//   - Basic: no pruning, exhaustive O(n²) candidate enumeration.
//   - Geometric: candidates limited to a kdtree.Tree's FRNN results
//     around each tour vertex, rebuilt periodically as the tour changes.
//   - Approximate: candidates limited to vertices whose activation bit
//     is set; activation propagates from the neighborhood of recent swaps.
//   - Hybrid: FRNN candidates additionally filtered by activation state,
//     ranked by a squared-distance gain proxy.
//
// Design:
//   - No logging, no panics on optimizer input; Options constructors
//     panic only on programmer error (invalid tuning values).
//   - Each optimizer mutates its tour argument in place and returns a
//     Stats value; there is no persistent optimizer state between calls.
//   - Progress is reported through an injected Reporter every 100
//     iterations rather than printed to stdout, so library embedders can
//     silence or redirect it (see options.go's WithReporter).
//   - Approximate's escape mechanism draws from a caller-seedable
//     *rand.Rand (see options.go's WithSeed), making its runs
//     reproducible. Hybrid's escape activates every second position and
//     draws no random numbers.
package twoopt
