package twoopt_test

import (
	"testing"

	"github.com/rdvo/geotsp/twoopt"
	"github.com/stretchr/testify/require"
)

func TestWithMaxIterationsPanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { twoopt.WithMaxIterations(0) })
	require.Panics(t, func() { twoopt.WithMaxIterations(-1) })
}

func TestWithMinImprovementPanicsOnNegativeOrNonFinite(t *testing.T) {
	require.Panics(t, func() { twoopt.WithMinImprovement(-1e-9) })
}

func TestWithAdaptiveGrowthFactorPanicsWhenNotAboveOne(t *testing.T) {
	require.Panics(t, func() { twoopt.WithAdaptiveGrowthFactor(1) })
	require.Panics(t, func() { twoopt.WithAdaptiveGrowthFactor(0.5) })
}

func TestWithGeometricRebuildEveryPanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { twoopt.WithGeometricRebuildEvery(0) })
}

func TestWithReporterAcceptsNil(t *testing.T) {
	require.NotPanics(t, func() { twoopt.WithReporter(nil) })
}
