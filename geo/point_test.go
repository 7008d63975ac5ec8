package geo_test

import (
	"math"
	"testing"

	"github.com/rdvo/geotsp/geo"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p := geo.New(7, 1.5, -2.5)
	require.Equal(t, 7, p.ID)
	require.Equal(t, 1.5, p.X)
	require.Equal(t, -2.5, p.Y)
	require.True(t, p.Active)
}

func TestAxis(t *testing.T) {
	p := geo.New(0, 3.0, 4.0)
	require.Equal(t, 3.0, p.Axis(0))
	require.Equal(t, 4.0, p.Axis(1))
}

func TestDistance(t *testing.T) {
	a := geo.New(0, 0, 0)
	b := geo.New(1, 3, 4)
	require.InDelta(t, 5.0, geo.Distance(a, b), 1e-12)
}

func TestDistanceSymmetric(t *testing.T) {
	a := geo.New(0, 1.2, -3.4)
	b := geo.New(1, -5.6, 7.8)
	require.InDelta(t, geo.Distance(a, b), geo.Distance(b, a), 1e-12)
}

func TestSquaredDistanceMatchesDistance(t *testing.T) {
	a := geo.New(0, 0, 0)
	b := geo.New(1, 3, 4)
	require.InDelta(t, math.Pow(geo.Distance(a, b), 2), geo.SquaredDistance(a, b), 1e-9)
}

func TestSquaredDistanceCheaperThanDistanceForZero(t *testing.T) {
	a := geo.New(0, 2, 2)
	require.Equal(t, 0.0, geo.Distance(a, a))
	require.Equal(t, 0.0, geo.SquaredDistance(a, a))
}
