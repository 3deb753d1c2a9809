// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package profile

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tastenet/internal/errs"
	"github.com/tomtom215/tastenet/internal/matrix"
	"github.com/tomtom215/tastenet/internal/network"
)

// Learner derives similarity-network profiles from a population of users.
type Learner interface {
	// Name returns the learner identifier used in logs and metrics.
	Name() string

	// Learn returns the learned profiles. Users must share one dimension.
	Learn(users []*network.RatedNetwork) ([]Profile, error)
}

// Strategy names a Learner implementation.
type Strategy string

// Available strategies.
const (
	StrategyAverage Strategy = "average"
	StrategyKMeans  Strategy = "kmeans"
)

// Config selects and configures a learner.
type Config struct {
	Strategy   Strategy
	Similarity SimilarityConfig
	KMeans     KMeansConfig
}

// New constructs the learner named by cfg.Strategy.
func New(cfg Config, logger zerolog.Logger) (Learner, error) {
	switch cfg.Strategy {
	case StrategyAverage:
		return NewAverage(cfg.Similarity, logger)
	case StrategyKMeans:
		return NewKMeans(cfg.KMeans, cfg.Similarity, logger)
	default:
		return nil, errs.Config("new learner", nil, "unknown strategy %q", cfg.Strategy)
	}
}

// Profile is one learned taste archetype.
type Profile struct {
	// Network is the N×N similarity network.
	Network [][]float64 `json:"network"`

	// Mean is the rating vector the network was derived from.
	Mean []float64 `json:"mean"`

	// Members are the indices of the users that formed the profile.
	Members []int `json:"members"`
}

// Attach pairs the profile's network with a rating vector. Similarity
// values lie in [0, 1], so those are the declared bounds unless opts
// override them.
func (p Profile) Attach(ratings []network.Rating, opts ...network.Option) (*network.RatedNetwork, error) {
	all := append([]network.Option{network.WithBounds(0, 1)}, opts...)
	return network.New(p.Network, ratings, all...)
}

// Nearest returns the index of the profile whose mean is closest to the
// rated entries of ratings. Unrated entries are ignored. Ties go to the
// lowest index.
func Nearest(profiles []Profile, ratings []network.Rating) (int, error) {
	if len(profiles) == 0 {
		return 0, errs.Precondition("nearest profile", errs.ErrEmptyInput, "no profiles")
	}

	var rated []int
	var values []float64
	for i, r := range ratings {
		if r.Rated {
			rated = append(rated, i)
			values = append(values, float64(r.Stars))
		}
	}

	best, bestDist := 0, math.Inf(1)
	for i, p := range profiles {
		if len(p.Mean) != len(ratings) {
			return 0, errs.Precondition("nearest profile", errs.ErrDimensionMismatch,
				"profile %d has %d items, ratings have %d", i, len(p.Mean), len(ratings))
		}
		mean := make([]float64, len(rated))
		for k, item := range rated {
			mean[k] = p.Mean[item]
		}
		d, err := matrix.VectorDistance(mean, values)
		if err != nil {
			return 0, err
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, nil
}

func newProfile(mean []float64, members []int, fn SimilarityFunc) Profile {
	return Profile{
		Network: SimilarityMatrix(mean, fn),
		Mean:    mean,
		Members: members,
	}
}
