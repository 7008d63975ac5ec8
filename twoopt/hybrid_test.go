package twoopt_test

import (
	"math/rand"
	"testing"

	"github.com/rdvo/geotsp/geo"
	"github.com/rdvo/geotsp/tour"
	"github.com/rdvo/geotsp/twoopt"
	"github.com/stretchr/testify/require"
)

func TestHybridNeverIncreasesLength(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	pts := randomTour(rng, 70)
	original := make([]geo.Point, len(pts))
	copy(original, pts)
	before := tour.Length(pts)

	stats, err := twoopt.Hybrid(pts, twoopt.WithSeed(31))
	require.NoError(t, err)
	require.LessOrEqual(t, stats.FinalLength, before+1e-9)
	require.True(t, tour.IsValid(pts, original))
}

func TestHybridRebuildCadenceAndRadiusCapOverride(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	pts := randomTour(rng, 40)

	stats, err := twoopt.Hybrid(pts,
		twoopt.WithHybridRebuildEvery(1),
		twoopt.WithAdaptiveRadiusCap(0.5),
		twoopt.WithAdaptiveGrowthFactor(1.2),
	)
	require.NoError(t, err)
	require.GreaterOrEqual(t, stats.FinalLength, 0.0)
}

func TestHybridEmptyAndSingle(t *testing.T) {
	stats, err := twoopt.Hybrid(nil)
	require.NoError(t, err)
	require.Equal(t, 0, stats.NumSwaps)
}

func TestHybridRejectsDuplicateID(t *testing.T) {
	pts := []geo.Point{geo.New(0, 0, 0), geo.New(0, 1, 1), geo.New(2, 2, 0)}
	_, err := twoopt.Hybrid(pts)
	require.ErrorIs(t, err, twoopt.ErrDuplicateID)
}
