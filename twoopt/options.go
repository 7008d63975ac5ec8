// Options: functional configuration for the four 2-opt optimizers. This
// file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults and applies overrides.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness beyond
//     an explicit, caller-controlled RNG seed.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public entry points consume
//     ...Option.
package twoopt

import (
	"math"
	"math/rand"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxIterations bounds the number of optimizer passes.
	DefaultMaxIterations = 1000

	// DefaultMinImprovement is the minimum gain an accepted swap must clear.
	DefaultMinImprovement = 1e-9

	// DefaultGeometricRebuildEvery is the swap cadence at which Geometric
	// rebuilds its k-d tree from the current tour.
	DefaultGeometricRebuildEvery = 25

	// DefaultHybridRebuildEvery is the swap cadence at which Hybrid rebuilds
	// its k-d tree.
	DefaultHybridRebuildEvery = 30

	// DefaultAdaptiveGrowthFactor is the per-step radius multiplier used by
	// adaptive FRNN growth.
	DefaultAdaptiveGrowthFactor = 1.5

	// DefaultAdaptiveRadiusCap bounds adaptive FRNN radius growth. It
	// assumes a roughly unit-square coordinate domain; callers on a
	// differently-scaled domain should override it.
	DefaultAdaptiveRadiusCap = 2.0

	// DefaultApproximateTopUp is how many additional indices Approximate
	// activates, beyond the current active count, after an unproductive pass.
	DefaultApproximateTopUp = 10

	// DefaultRNGSeed seeds the deterministic RNG used by Approximate's
	// escape mechanism when the caller supplies none.
	DefaultRNGSeed = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxIterationsInvalid = "twoopt: WithMaxIterations: n must be positive"
	panicMinImprovementInvalid = "twoopt: WithMinImprovement: eps must be finite and non-negative"
	panicRebuildEveryInvalid  = "twoopt: WithRebuildEvery: n must be positive"
	panicRadiusCapInvalid     = "twoopt: WithAdaptiveRadiusCap: cap must be finite and positive"
	panicGrowthFactorInvalid  = "twoopt: WithAdaptiveGrowthFactor: factor must be finite and > 1"
	panicTopUpInvalid         = "twoopt: WithApproximateTopUp: n must be non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. It is unexported; public entry points accept ...Option and
// resolve them via gatherOptions.
type Options struct {
	maxIterations    int
	minImprovement   float64
	geometricRebuild int
	hybridRebuild    int
	growthFactor     float64
	radiusCap        float64
	approxTopUp      int
	rng              *rand.Rand
	reporter         Reporter
}

func defaultOptions() Options {
	return Options{
		maxIterations:    DefaultMaxIterations,
		minImprovement:   DefaultMinImprovement,
		geometricRebuild: DefaultGeometricRebuildEvery,
		hybridRebuild:    DefaultHybridRebuildEvery,
		growthFactor:     DefaultAdaptiveGrowthFactor,
		radiusCap:        DefaultAdaptiveRadiusCap,
		approxTopUp:      DefaultApproximateTopUp,
		rng:              rand.New(rand.NewSource(DefaultRNGSeed)),
		reporter:         NoopReporter{},
	}
}

// gatherOptions resolves defaults and applies overrides in order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ---------- Constructors (WithX) ----------

// WithMaxIterations overrides the pass budget (spec default 1000).
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}
	return func(o *Options) { o.maxIterations = n }
}

// WithMinImprovement overrides the minimum accepted gain (spec default 1e-9).
func WithMinImprovement(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicMinImprovementInvalid)
	}
	return func(o *Options) { o.minImprovement = eps }
}

// WithGeometricRebuildEvery overrides Geometric's k-d tree rebuild cadence.
func WithGeometricRebuildEvery(n int) Option {
	if n <= 0 {
		panic(panicRebuildEveryInvalid)
	}
	return func(o *Options) { o.geometricRebuild = n }
}

// WithHybridRebuildEvery overrides Hybrid's k-d tree rebuild cadence.
func WithHybridRebuildEvery(n int) Option {
	if n <= 0 {
		panic(panicRebuildEveryInvalid)
	}
	return func(o *Options) { o.hybridRebuild = n }
}

// WithAdaptiveGrowthFactor overrides the per-step radius multiplier used
// by adaptive FRNN growth in Hybrid.
func WithAdaptiveGrowthFactor(factor float64) Option {
	if isNonFinite(factor) || factor <= 1 {
		panic(panicGrowthFactorInvalid)
	}
	return func(o *Options) { o.growthFactor = factor }
}

// WithAdaptiveRadiusCap overrides the adaptive FRNN radius ceiling,
// letting callers outside a unit-square domain rescale it.
func WithAdaptiveRadiusCap(cap float64) Option {
	if isNonFinite(cap) || cap <= 0 {
		panic(panicRadiusCapInvalid)
	}
	return func(o *Options) { o.radiusCap = cap }
}

// WithApproximateTopUp overrides how many extra indices Approximate
// activates after a pass that applied no swap.
func WithApproximateTopUp(n int) Option {
	if n < 0 {
		panic(panicTopUpInvalid)
	}
	return func(o *Options) { o.approxTopUp = n }
}

// WithSeed makes Approximate's random top-up deterministic and
// reproducible for a given seed, replacing the reference implementation's
// fresh-random-device-per-call behavior. Hybrid draws no random numbers,
// so the seed has no effect on it.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithReporter routes per-100-iteration progress through r instead of
// discarding it. The zero value (no WithReporter call) is silent, as
// library mode requires.
func WithReporter(r Reporter) Option {
	if r == nil {
		r = NoopReporter{}
	}
	return func(o *Options) { o.reporter = r }
}

func isNonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}
