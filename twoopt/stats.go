package twoopt

import (
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/rdvo/geotsp/geo"
	"github.com/rdvo/geotsp/tour"
)

// Stats records the counters and timing produced by a single optimizer
// call. All fields are plain values; a Stats is safe to copy.
type Stats struct {
	// RunID uniquely tags one optimizer invocation, useful for
	// correlating log lines emitted through a Reporter across a batch of
	// runs.
	RunID uuid.UUID

	InitialLength    float64
	FinalLength      float64
	NumSwaps         int
	Iterations       int
	TotalComparisons int
	NumVisited       int
	ActiveNodes      int
	CPUTime          time.Duration

	// TruncatedAtMaxIterations is true when the optimizer stopped because
	// it hit its iteration budget rather than reaching a local optimum
	// under its pruning rule.
	TruncatedAtMaxIterations bool

	// EdgeLengthMean and EdgeLengthStdDev summarize the final tour's edge
	// length distribution, computed once at finalization.
	EdgeLengthMean   float64
	EdgeLengthStdDev float64
}

// ImprovementRatio returns (InitialLength-FinalLength)/InitialLength, or
// 0 if InitialLength is 0.
func (s Stats) ImprovementRatio() float64 {
	if s.InitialLength == 0 {
		return 0
	}
	return (s.InitialLength - s.FinalLength) / s.InitialLength
}

// SwapsPerSecond returns NumSwaps divided by CPUTime in seconds, or 0 if
// CPUTime is 0.
func (s Stats) SwapsPerSecond() float64 {
	secs := s.CPUTime.Seconds()
	if secs == 0 {
		return 0
	}
	return float64(s.NumSwaps) / secs
}

// finalize stamps final-length, edge-length distribution and elapsed
// time onto stats given the tour's state at optimizer return.
func finalize(stats Stats, pts []geo.Point, start time.Time) Stats {
	stats.FinalLength = tour.Length(pts)
	stats.CPUTime = time.Since(start)

	if n := len(pts); n >= 2 {
		lengths := make([]float64, n)
		for i := range pts {
			lengths[i] = geo.Distance(pts[i], pts[(i+1)%n])
		}
		stats.EdgeLengthMean = stat.Mean(lengths, nil)
		stats.EdgeLengthStdDev = stat.StdDev(lengths, nil)
	}
	return stats
}

func newStats() Stats {
	return Stats{RunID: uuid.New()}
}
