package tour

import "github.com/rdvo/geotsp/geo"

// Length returns the sum of Euclidean edge lengths over the cyclic edge
// set {(t[i], t[(i+1) mod n])}. Returns 0 for n < 2.
//
// Complexity: O(n) time, O(1) space.
func Length(t []geo.Point) float64 {
	n := len(t)
	if n < 2 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += geo.Distance(t[i], t[(i+1)%n])
	}
	return sum
}

// ReverseSegment reverses the contiguous index range [i, j] (inclusive) of
// t in place. Requires 0 <= i <= j < len(t).
//
// Complexity: O(j-i) time, O(1) space.
func ReverseSegment(t []geo.Point, i, j int) error {
	n := len(t)
	if i < 0 || j >= n || i > j {
		return ErrDimensionMismatch
	}
	reverseRange(t, i, j)
	return nil
}

// reverseRange swaps t[lo], t[hi], t[lo+1], t[hi-1], ... in place.
// Caller guarantees 0 <= lo <= hi < len(t) (or lo > hi, a no-op).
func reverseRange(t []geo.Point, lo, hi int) {
	for lo < hi {
		t[lo], t[hi] = t[hi], t[lo]
		lo++
		hi--
	}
}

// SmartReverseSegment reverses whichever of the two cyclic arcs between
// positions i and j is shorter, producing the same cyclic edge set as
// ReverseSegment(t, i, j). Requires 0 <= i <= j < len(t).
//
// Let direct = j - i + 1 and wrap = n - direct. If direct <= wrap, the
// direct segment [i, j] is reversed in place. Otherwise the complementary
// arc j+1, ..., n-1, 0, ..., i-1 is reversed cyclically in place: positions
// i..j are left untouched, the edge set is the same, and the sequence
// differs from ReverseSegment's result only by rotation and direction.
//
// Complexity: O(min(direct, wrap)) time, O(1) space.
func SmartReverseSegment(t []geo.Point, i, j int) error {
	n := len(t)
	if i < 0 || j >= n || i > j {
		return ErrDimensionMismatch
	}

	direct := j - i + 1
	wrap := n - direct
	if direct <= wrap {
		reverseRange(t, i, j)
		return nil
	}

	for k := 0; k < wrap/2; k++ {
		a := (j + 1 + k) % n
		b := (i - 1 - k + n) % n
		t[a], t[b] = t[b], t[a]
	}
	return nil
}

// PerformSwap applies the 2-opt move that removes edges (i, i+1) and
// (j, j+1 mod n) and reconnects them as (i, j) and (i+1, j+1 mod n), for
// i < j. It does so via SmartReverseSegment(t, i+1, j).
//
// Complexity: O(min(direct, wrap)) time, O(1) space, per SmartReverseSegment.
func PerformSwap(t []geo.Point, i, j int) error {
	if i >= j {
		return ErrDimensionMismatch
	}
	return SmartReverseSegment(t, i+1, j)
}

// Gain returns the reduction in tour length that PerformSwap(t, i, j)
// would achieve, without mutating t. Requires i < j.
//
// Returns 0 for adjacent indices (j <= i+1, no proper swap) and for the
// (0, n-1) pair (a whole-tour rotation with no net effect on the edge
// set). A positive result means the swap strictly shortens the tour.
//
// Complexity: O(1) time, O(1) space.
func Gain(t []geo.Point, i, j int) float64 {
	n := len(t)
	if j <= i+1 || (i == 0 && j == n-1) {
		return 0
	}
	iNext := (i + 1) % n
	jNext := (j + 1) % n
	old := geo.Distance(t[i], t[iNext]) + geo.Distance(t[j], t[jNext])
	new := geo.Distance(t[i], t[j]) + geo.Distance(t[iNext], t[jNext])
	return old - new
}

// SquaredGain is Gain computed with squared distances. It is an
// acknowledged approximation: d² is not monotone in the sum of two
// distances, so a positive SquaredGain does not guarantee a positive
// Gain. It exists only for the hybrid optimizer's candidate ranking, and
// MUST NOT be used to accept a move against a real-distance improvement
// threshold.
//
// Complexity: O(1) time, O(1) space.
func SquaredGain(t []geo.Point, i, j int) float64 {
	n := len(t)
	if j <= i+1 || (i == 0 && j == n-1) {
		return 0
	}
	iNext := (i + 1) % n
	jNext := (j + 1) % n
	old := geo.SquaredDistance(t[i], t[iNext]) + geo.SquaredDistance(t[j], t[jNext])
	new := geo.SquaredDistance(t[i], t[j]) + geo.SquaredDistance(t[iNext], t[jNext])
	return old - new
}

// IsValid reports whether t is a permutation of originals: same length,
// same multiset of IDs.
//
// Complexity: O(n) time, O(n) space.
func IsValid(t []geo.Point, originals []geo.Point) bool {
	if len(t) != len(originals) {
		return false
	}
	counts := make(map[int]int, len(originals))
	for _, p := range originals {
		counts[p.ID]++
	}
	for _, p := range t {
		counts[p.ID]--
		if counts[p.ID] < 0 {
			return false
		}
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}
