// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package profile

import (
	"github.com/rs/zerolog"

	"github.com/tomtom215/tastenet/internal/matrix"
	"github.com/tomtom215/tastenet/internal/metrics"
	"github.com/tomtom215/tastenet/internal/network"
)

// Average learns a single profile from the mean of every user's ratings.
type Average struct {
	similarity SimilarityFunc
	logger     zerolog.Logger
}

// NewAverage creates an Average learner.
func NewAverage(sim SimilarityConfig, logger zerolog.Logger) (*Average, error) {
	fn, err := sim.Build()
	if err != nil {
		return nil, err
	}
	return &Average{
		similarity: fn,
		logger:     logger.With().Str("component", "profile").Str("learner", string(StrategyAverage)).Logger(),
	}, nil
}

// Name returns "average".
func (a *Average) Name() string {
	return string(StrategyAverage)
}

// Learn returns one profile built from the population mean.
func (a *Average) Learn(users []*network.RatedNetwork) (profiles []Profile, err error) {
	defer func() { metrics.RecordLearn(a.Name(), len(profiles), err) }()

	vectors, err := cleanRatings("average learn", users)
	if err != nil {
		return nil, err
	}

	mean, err := matrix.VectorMean(vectors)
	if err != nil {
		return nil, err
	}

	members := make([]int, len(users))
	for i := range members {
		members[i] = i
	}

	a.logger.Info().Int("users", len(users)).Int("items", len(mean)).Msg("Learned average profile")
	return []Profile{newProfile(mean, members, a.similarity)}, nil
}
