package tour

import "errors"

// ErrDimensionMismatch signals a tour or index range that violates the
// dimension contract of the function being called (e.g. i >= j, or an
// index outside [0, n)).
var ErrDimensionMismatch = errors.New("tour: dimension mismatch")
