package twoopt_test

import (
	"math/rand"
	"testing"

	"github.com/rdvo/geotsp/geo"
	"github.com/rdvo/geotsp/tour"
	"github.com/rdvo/geotsp/twoopt"
	"github.com/stretchr/testify/require"
)

func TestGeometricNeverIncreasesLength(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	pts := randomTour(rng, 80)
	original := make([]geo.Point, len(pts))
	copy(original, pts)
	before := tour.Length(pts)

	stats, err := twoopt.Geometric(pts)
	require.NoError(t, err)
	require.LessOrEqual(t, stats.FinalLength, before+1e-9)
	require.True(t, tour.IsValid(pts, original))
}

func TestGeometricCrossedSquareConverges(t *testing.T) {
	pts := crossedSquare()
	stats, err := twoopt.Geometric(pts)
	require.NoError(t, err)
	require.LessOrEqual(t, stats.FinalLength, stats.InitialLength+1e-9)
}

func TestGeometricRebuildCadenceOverride(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	pts := randomTour(rng, 50)

	stats, err := twoopt.Geometric(pts, twoopt.WithGeometricRebuildEvery(1))
	require.NoError(t, err)
	require.GreaterOrEqual(t, stats.FinalLength, 0.0)
}

func TestGeometricEmptyAndSingle(t *testing.T) {
	stats, err := twoopt.Geometric(nil)
	require.NoError(t, err)
	require.Equal(t, 0, stats.NumSwaps)
}

func TestGeometricRejectsDuplicateID(t *testing.T) {
	pts := []geo.Point{geo.New(0, 0, 0), geo.New(0, 1, 1), geo.New(2, 2, 0)}
	_, err := twoopt.Geometric(pts)
	require.ErrorIs(t, err, twoopt.ErrDuplicateID)
}
