// Package tour provides allocation-conscious utilities that operate on a
// cyclic sequence of geo.Point, independent of how that sequence was
// produced or which optimizer will search it.
//
// Provided helpers:
//   - Length: total Euclidean length of the cyclic edge set.
//   - ReverseSegment: naive in-place reversal of a contiguous index range.
//   - SmartReverseSegment: short-side reversal (reverses whichever of the
//     two cyclic arcs between two positions is shorter).
//   - PerformSwap: applies a 2-opt move via SmartReverseSegment.
//   - Gain / SquaredGain: 2-opt move evaluation without mutating the tour.
//   - IsValid: permutation-preservation check against a reference point set.
//
// Design:
//   - No logging. ReverseSegment, SmartReverseSegment and PerformSwap
//     report a bad index range with a sentinel error from errors.go;
//     Gain and SquaredGain do not check their indices.
//   - O(n) time for whole-tour helpers; in-place mutation, no allocation,
//     in the per-pair helpers used by the twoopt package's hot loops.
//   - Deterministic behavior with documented pre/post-conditions.
package tour
