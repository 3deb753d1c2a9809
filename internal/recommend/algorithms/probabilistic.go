// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package algorithms

import (
	"math/rand"
	"sort"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"

	"github.com/tomtom215/tastenet/internal/errs"
	"github.com/tomtom215/tastenet/internal/metrics"
	"github.com/tomtom215/tastenet/internal/network"
	"github.com/tomtom215/tastenet/internal/recommend"
)

// Probabilistic samples an unrated item with probability proportional to
// its (shifted) score.
type Probabilistic struct {
	BaseAlgorithm
	rng *rand.Rand
}

// NewProbabilistic creates a Probabilistic algorithm seeded from cfg.Seed.
func NewProbabilistic(cfg recommend.Config, logger zerolog.Logger) (*Probabilistic, error) {
	base, err := NewBaseAlgorithm(NameProbabilistic, cfg, logger)
	if err != nil {
		return nil, err
	}

	// Use provided seed or default for determinism
	seed := cfg.Seed
	if seed == 0 {
		seed = 42
	}

	return &Probabilistic{
		BaseAlgorithm: base,
		rng:           rand.New(rand.NewSource(seed)), //nolint:gosec // math/rand is fine for recommendation sampling
	}, nil
}

// Recommend draws the next item.
func (p *Probabilistic) Recommend(rn *network.RatedNetwork) (item int, err error) {
	defer func() { metrics.RecordRecommendation(p.name, err) }()

	scores, err := p.scores(rn)
	if err != nil {
		return 0, err
	}
	for _, i := range rn.RatedIndices() {
		scores[i] = 0
	}

	candidates := rn.UnratedIndices()
	weights := make([]float64, len(candidates))
	for k, i := range candidates {
		weights[k] = scores[i]
	}

	if p.uniform(scores, weights) {
		return p.drawUniform(rn, candidates), nil
	}

	if low := floats.Min(weights); low < 0 {
		floats.AddConst(-low, weights)
	}
	sum := floats.Sum(weights)
	if sum == 0 {
		return p.drawUniform(rn, candidates), nil
	}
	floats.Scale(1/sum, weights)

	item, err = sample(candidates, weights, p.rng.Float64())
	if err != nil {
		return 0, err
	}
	p.logger.Debug().Int("item", item).Int("candidates", len(candidates)).Msg("Probabilistic pick")
	return item, nil
}

// uniform reports whether the draw must fall back to a uniform
// distribution: every score in scope is identical.
func (p *Probabilistic) uniform(scores, candidateWeights []float64) bool {
	if p.config.Fallback == recommend.FallbackAll {
		return allEqual(scores)
	}
	return allEqual(candidateWeights)
}

func (p *Probabilistic) drawUniform(rn *network.RatedNetwork, candidates []int) int {
	metrics.UniformFallbacks.Inc()

	pool := candidates
	if p.config.Fallback == recommend.FallbackAll {
		pool = make([]int, rn.Size())
		for i := range pool {
			pool[i] = i
		}
	}

	item := pool[p.rng.Intn(len(pool))]
	p.logger.Debug().Int("item", item).Int("pool", len(pool)).Msg("Uniform fallback pick")
	return item
}

// sample returns the first item, in ascending probability order, whose
// cumulative probability exceeds u.
func sample(items []int, probs []float64, u float64) (int, error) {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return probs[order[a]] < probs[order[b]]
	})

	sorted := make([]float64, len(order))
	for k, i := range order {
		sorted[k] = probs[i]
	}
	cdf := floats.CumSum(make([]float64, len(sorted)), sorted)

	for k, c := range cdf {
		if c > u {
			return items[order[k]], nil
		}
	}
	return 0, errs.Internal("probabilistic sample", errs.ErrDistributionExhausted,
		"u = %v, total = %v", u, cdf[len(cdf)-1])
}

func allEqual(v []float64) bool {
	for _, x := range v[1:] {
		if x != v[0] {
			return false
		}
	}
	return true
}
