// Package kdtree implements a static, axis-alternating 2D k-d tree over
// geo.Point, used by the twoopt package to prune 2-opt candidate search
// to a point's spatial neighborhood instead of scanning the whole tour.
//
// The tree is built once from a point set and never mutated afterward;
// the twoopt package rebuilds it periodically as the tour changes shape
// (see twoopt's rebuild cadence options), rather than updating it
// incrementally.
//
// Every traversal method increments an internal nodes-visited counter,
// reset at the start of each call, exposed via NodesVisited for callers
// that want to report search-pruning effectiveness.
package kdtree
