// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package algorithms

import (
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"

	"github.com/tomtom215/tastenet/internal/metrics"
	"github.com/tomtom215/tastenet/internal/network"
	"github.com/tomtom215/tastenet/internal/recommend"
)

// Greedy recommends the highest-scoring unrated item.
// Ties go to the lowest index.
type Greedy struct {
	BaseAlgorithm
}

// NewGreedy creates a Greedy algorithm.
func NewGreedy(cfg recommend.Config, logger zerolog.Logger) (*Greedy, error) {
	base, err := NewBaseAlgorithm(NameGreedy, cfg, logger)
	if err != nil {
		return nil, err
	}
	return &Greedy{BaseAlgorithm: base}, nil
}

// Recommend returns the index of the best unrated item.
func (g *Greedy) Recommend(rn *network.RatedNetwork) (item int, err error) {
	defer func() { metrics.RecordRecommendation(g.name, err) }()

	scores, err := g.scores(rn)
	if err != nil {
		return 0, err
	}

	// Rated items sink below every finite score.
	for _, i := range rn.RatedIndices() {
		scores[i] = math.Inf(-1)
	}

	item = floats.MaxIdx(scores)
	g.logger.Debug().Int("item", item).Float64("score", scores[item]).Msg("Greedy pick")
	return item, nil
}
