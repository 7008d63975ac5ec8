package twoopt_test

import (
	"math/rand"
	"testing"

	"github.com/rdvo/geotsp/twoopt"
	"github.com/stretchr/testify/require"
)

type recordingReporter struct {
	calls []twoopt.Stats
}

func (r *recordingReporter) Progress(algorithm string, stats twoopt.Stats) {
	r.calls = append(r.calls, stats)
}

func TestReporterReceivesProgressEvery100Iterations(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	pts := randomTour(rng, 30)

	rec := &recordingReporter{}
	stats, err := twoopt.Basic(pts, twoopt.WithReporter(rec), twoopt.WithMaxIterations(250))
	require.NoError(t, err)
	require.LessOrEqual(t, stats.Iterations, 250)
	for _, call := range rec.calls {
		require.Zero(t, call.Iterations%100)
	}
}

func TestNoopReporterDiscardsSilently(t *testing.T) {
	require.NotPanics(t, func() {
		twoopt.NoopReporter{}.Progress("basic", twoopt.Stats{})
	})
}
