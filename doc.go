// Package geotsp approximates the symmetric Euclidean Traveling
// Salesman Problem via 2-opt local search over a static 2D k-d tree
// index.
//
// What geotsp provides:
//
//	geo/    — Point, Distance, SquaredDistance
//	tour/   — Length, ReverseSegment, SmartReverseSegment, PerformSwap, Gain
//	kdtree/ — Tree: Build, FindNeighbors, FindNearestNeighbor, FindKNearestNeighbors, FindNeighborsAdaptive
//	twoopt/ — Basic, Geometric, Approximate, Hybrid, Options, Stats, Reporter
//
// The four optimizers in twoopt share one acceptance rule and iteration
// budget, and differ only in how each restricts its candidate swap
// pairs: Basic enumerates exhaustively, Geometric prunes with k-d-tree
// FRNN queries, Approximate prunes with an activation bitset that
// tracks recent swaps, and Hybrid intersects the two.
//
// Why this split: the geometric index and the tour representation are
// useful independently of any particular optimizer, and the optimizers
// are meant to be benchmarked against each other on the same tour, so
// neither geo, tour nor kdtree depends on twoopt.
//
// geotsp does not generate instances, construct an initial tour, or
// drive a CLI — it consumes an ordered slice of geo.Point and returns a
// locally-optimized permutation plus a twoopt.Stats record. Callers
// supply their own instance sampler and initial-tour heuristic (e.g.
// nearest-neighbor construction).
package geotsp
