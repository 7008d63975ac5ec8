package twoopt

import (
	"log/slog"
	"os"
)

// Reporter receives periodic progress updates from an optimizer call
// (per spec.md §5, every 100 iterations). Implementations must return
// quickly; they are called from the optimizer's hot loop.
type Reporter interface {
	Progress(algorithm string, stats Stats)
}

// NoopReporter discards every report. It is the default when no
// WithReporter option is given, matching library-mode silence.
type NoopReporter struct{}

// Progress implements Reporter by doing nothing.
func (NoopReporter) Progress(string, Stats) {}

// SlogReporter routes progress reports through a *slog.Logger.
type SlogReporter struct {
	logger *slog.Logger
}

// NewSlogReporter wraps handler in a SlogReporter. A nil handler falls
// back to a text handler on stderr at info level.
func NewSlogReporter(handler slog.Handler) *SlogReporter {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &SlogReporter{logger: slog.New(handler)}
}

// NewJSONReporter returns a SlogReporter emitting JSON to stderr at level.
func NewJSONReporter(level slog.Level) *SlogReporter {
	return &SlogReporter{
		logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
	}
}

// Progress logs one line per report at info level, tagged with the
// algorithm name, run id, iteration count, swap count, current tour
// length and active-node count.
func (r *SlogReporter) Progress(algorithm string, stats Stats) {
	r.logger.Info("2-opt progress",
		"algorithm", algorithm,
		"run_id", stats.RunID,
		"iteration", stats.Iterations,
		"swaps", stats.NumSwaps,
		"length", stats.FinalLength,
		"active_nodes", stats.ActiveNodes,
	)
}
