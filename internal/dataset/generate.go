// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package dataset

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/tomtom215/tastenet/internal/errs"
	"github.com/tomtom215/tastenet/internal/matrix"
	"github.com/tomtom215/tastenet/internal/network"
)

// GenerateConfig controls fixture generation.
type GenerateConfig struct {
	// Nodes is the number of items.
	Nodes int

	// Users is the number of users.
	Users int

	// RatedFraction is the probability that a user rated any given item.
	RatedFraction float64

	// Lower and Upper bound the similarity values.
	Lower float64
	Upper float64

	// Scale is the rating range.
	Scale network.Scale

	// Seed drives every random choice. If zero, a fixed default seed is used.
	Seed int64
}

// DefaultGenerateConfig returns a small fixture configuration.
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{
		Nodes:         10,
		Users:         50,
		RatedFraction: 0.5,
		Lower:         0,
		Upper:         1,
		Scale:         network.DefaultScale(),
		Seed:          42,
	}
}

// Generate builds a random dataset.
func Generate(cfg GenerateConfig) (*Dataset, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = 42
	}
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // fixtures do not need a secure source

	if cfg.Scale == (network.Scale{}) {
		cfg.Scale = network.DefaultScale()
	}

	sim, err := RandomNetwork(rng, cfg.Nodes, cfg.Lower, cfg.Upper)
	if err != nil {
		return nil, err
	}
	users, err := RandomUsers(rng, cfg.Nodes, cfg.Users, cfg.Scale, cfg.RatedFraction)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		Scale:   cfg.Scale,
		Lower:   cfg.Lower,
		Upper:   cfg.Upper,
		Network: sim,
		Users:   users,
	}, nil
}

// RandomNetwork returns a symmetric n×n matrix with a zero diagonal and
// off-diagonal values drawn uniformly from [lower, upper).
func RandomNetwork(rng *rand.Rand, n int, lower, upper float64) ([][]float64, error) {
	if n < 1 {
		return nil, errs.Config("random network", errs.ErrEmptyInput, "need at least one node, got %d", n)
	}
	if lower >= upper {
		return nil, errs.Config("random network", errs.ErrInvalidBounds, "lower %v, upper %v", lower, upper)
	}

	m := matrix.Square(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := lower + rng.Float64()*(upper-lower)
			m[i][j] = v
			m[j][i] = v
		}
	}
	return m, nil
}

// RandomUsers returns users whose ratings are drawn uniformly from scale.
// Each item is rated with probability ratedFraction. User IDs are UUIDs
// drawn from rng so fixtures are reproducible.
func RandomUsers(rng *rand.Rand, n, users int, scale network.Scale, ratedFraction float64) ([]User, error) {
	if err := scale.Validate(); err != nil {
		return nil, err
	}
	if n < 1 || users < 1 {
		return nil, errs.Config("random users", errs.ErrEmptyInput, "%d users over %d items", users, n)
	}
	if ratedFraction < 0 || ratedFraction > 1 {
		return nil, errs.Config("random users", nil, "rated fraction %v outside [0, 1]", ratedFraction)
	}

	span := scale.Max - scale.Min + 1
	out := make([]User, users)
	for u := range out {
		id, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			return nil, err
		}

		ratings := make([]network.Rating, n)
		for i := range ratings {
			if rng.Float64() < ratedFraction {
				ratings[i] = network.Stars(scale.Min + rng.Intn(span))
			}
		}
		out[u] = User{ID: id.String(), Ratings: ratings}
	}
	return out, nil
}
