package twoopt

import (
	"math/rand"

	roaring "github.com/RoaringBitmap/roaring/v2"

	"github.com/rdvo/geotsp/geo"
)

// activationWindow is the number of positions (inclusive, both
// directions) marked active around each swap endpoint by Approximate.
const activationWindow = 2

// hybridActivationWindow is Hybrid's wider equivalent.
const hybridActivationWindow = 4

// newFullyActive returns a bitset with every position in [0, n) set,
// the initial state spec.md §4.6/§4.7 require.
func newFullyActive(n int) *roaring.Bitmap {
	bm := roaring.New()
	for i := 0; i < n; i++ {
		bm.Add(uint32(i))
	}
	return bm
}

// activeIndices returns the set bits of bm in ascending order.
func activeIndices(bm *roaring.Bitmap) []int {
	out := make([]int, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// activateAround clears bm and activates every position within window of
// i and j (mod n), per the swap-driven activation rule in spec.md §4.6/§4.7.
func activateAround(bm *roaring.Bitmap, n, i, j, window int) {
	bm.Clear()
	for offset := -window; offset <= window; offset++ {
		bm.Add(uint32(mod(i+offset, n)))
		bm.Add(uint32(mod(j+offset, n)))
	}
}

// topUp adds randomly chosen positions to bm until its cardinality
// reaches target (capped at n), the escape mechanism spec.md §4.6
// describes for an unproductive pass.
func topUp(bm *roaring.Bitmap, n, target int, rng *rand.Rand) {
	if target > n {
		target = n
	}
	for int(bm.GetCardinality()) < target {
		bm.Add(uint32(rng.Intn(n)))
	}
}

// syncActive writes bm's membership back onto each Point's Active field,
// the one point at which the internal bitset touches the Data Model's
// Point.Active. Approximate and Hybrid call it after every accepted swap
// and on the final pass; candidate search never reads Point.Active.
func syncActive(t []geo.Point, bm *roaring.Bitmap) {
	for i := range t {
		t[i].Active = bm.Contains(uint32(i))
	}
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
