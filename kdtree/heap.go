package kdtree

import (
	"container/heap"

	"github.com/rdvo/geotsp/geo"
)

// neighbor pairs a candidate point with its squared distance to the
// query, the unit of comparison in neighborHeap.
type neighbor struct {
	distSq float64
	point  geo.Point
}

// neighborHeap is a bounded max-heap keyed by distSq: the root is always
// the current worst (farthest) of the retained candidates, so a new
// candidate closer than the root can evict it in O(log k).
type neighborHeap []neighbor

func (h neighborHeap) Len() int            { return len(h) }
func (h neighborHeap) Less(i, j int) bool  { return h[i].distSq > h[j].distSq }
func (h neighborHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *neighborHeap) Push(x interface{}) { *h = append(*h, x.(neighbor)) }
func (h *neighborHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func pushNeighbor(h *neighborHeap, n neighbor) { heap.Push(h, n) }

func popNeighbor(h *neighborHeap) neighbor { return heap.Pop(h).(neighbor) }
