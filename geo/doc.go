// Package geo defines the 2D point primitive shared by the tour, kdtree
// and twoopt packages, plus the Euclidean distance helpers built on top
// of it.
//
// Points are copied freely; identity is carried by ID, not by pointer or
// coordinate value. Two Points with equal ID are assumed to refer to the
// same underlying instance even after a Tour has been reordered.
package geo
