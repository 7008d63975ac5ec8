package twoopt

import (
	"os"

	"gopkg.in/yaml.v3"
)

// OptionsFile is the YAML-decodable representation of Options, letting
// callers externalize tuning knobs instead of composing Option values
// in code. Zero-valued fields fall back to their DefaultX constant.
type OptionsFile struct {
	MaxIterations        int     `yaml:"max_iterations"`
	MinImprovement       float64 `yaml:"min_improvement"`
	GeometricRebuildEvery int    `yaml:"geometric_rebuild_every"`
	HybridRebuildEvery   int     `yaml:"hybrid_rebuild_every"`
	AdaptiveGrowthFactor float64 `yaml:"adaptive_growth_factor"`
	AdaptiveRadiusCap    float64 `yaml:"adaptive_radius_cap"`
	ApproximateTopUp     int     `yaml:"approximate_top_up"`
	Seed                 int64   `yaml:"seed"`
}

// LoadOptionsYAML reads a YAML document from path and turns it into a
// slice of Option, one per non-zero field present. An empty or all-zero
// document yields no options, i.e. every optimizer default applies.
func LoadOptionsYAML(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file OptionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.toOptions()
}

// toOptions converts each non-zero field to its Option, catching the
// underlying WithX panic and turning it into ErrInvalidConfig: unlike a
// literal WithX call in code, a bad value here comes from a file the
// program does not control.
func (f OptionsFile) toOptions() (opts []Option, err error) {
	defer func() {
		if r := recover(); r != nil {
			opts, err = nil, ErrInvalidConfig
		}
	}()

	if f.MaxIterations != 0 {
		opts = append(opts, WithMaxIterations(f.MaxIterations))
	}
	if f.MinImprovement != 0 {
		opts = append(opts, WithMinImprovement(f.MinImprovement))
	}
	if f.GeometricRebuildEvery != 0 {
		opts = append(opts, WithGeometricRebuildEvery(f.GeometricRebuildEvery))
	}
	if f.HybridRebuildEvery != 0 {
		opts = append(opts, WithHybridRebuildEvery(f.HybridRebuildEvery))
	}
	if f.AdaptiveGrowthFactor != 0 {
		opts = append(opts, WithAdaptiveGrowthFactor(f.AdaptiveGrowthFactor))
	}
	if f.AdaptiveRadiusCap != 0 {
		opts = append(opts, WithAdaptiveRadiusCap(f.AdaptiveRadiusCap))
	}
	if f.ApproximateTopUp != 0 {
		opts = append(opts, WithApproximateTopUp(f.ApproximateTopUp))
	}
	if f.Seed != 0 {
		opts = append(opts, WithSeed(f.Seed))
	}
	return opts, nil
}
