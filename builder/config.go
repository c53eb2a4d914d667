// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Off-diagonal value generator for random constructors.
	valueFn func(*rand.Rand) float64
	// Added to |off-diagonal| row sums on the diagonal.
	margin float64
}

const (
	defaultMargin   = 1.0
	defaultOffValue = -1.0
)

// newBuilderConfig applies options over deterministic defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		valueFn: defaultValue,
		margin:  defaultMargin,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// defaultValue draws from (-1, -0.5]; -1 when no RNG is configured.
func defaultValue(r *rand.Rand) float64 {
	if r == nil {
		return defaultOffValue
	}
	return -(0.5 + 0.5*r.Float64())
}
