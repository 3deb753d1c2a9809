// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package profile

import (
	"math"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tastenet/internal/errs"
	"github.com/tomtom215/tastenet/internal/matrix"
	"github.com/tomtom215/tastenet/internal/metrics"
	"github.com/tomtom215/tastenet/internal/network"
)

// KMeansConfig contains configuration for the k-means learner.
type KMeansConfig struct {
	// K is the number of profiles to learn. Required.
	K int

	// MaxRounds caps assign/update rounds. 0 means no cap.
	MaxRounds int

	// Seed drives the choice of initial means. 0 selects a fixed default.
	Seed int64
}

// KMeans learns k profiles by clustering users' rating vectors.
//
// Initial means are k distinct users chosen at random. Each round assigns
// every user to its nearest mean, then recomputes the means. Learning stops
// when a round reproduces the previous means exactly.
type KMeans struct {
	config     KMeansConfig
	similarity SimilarityFunc
	rng        *rand.Rand
	logger     zerolog.Logger
}

// NewKMeans creates a KMeans learner. A zero K is a configuration error.
func NewKMeans(cfg KMeansConfig, sim SimilarityConfig, logger zerolog.Logger) (*KMeans, error) {
	if cfg.K == 0 {
		return nil, errs.Config("new kmeans", nil, "k is required")
	}
	if cfg.K < 1 {
		return nil, errs.Precondition("new kmeans", nil, "k = %d, want >= 1", cfg.K)
	}
	if cfg.MaxRounds < 0 {
		return nil, errs.Config("new kmeans", nil, "max rounds = %d, want >= 0", cfg.MaxRounds)
	}

	fn, err := sim.Build()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = 42
	}

	return &KMeans{
		config:     cfg,
		similarity: fn,
		rng:        rand.New(rand.NewSource(seed)), //nolint:gosec // math/rand is fine for cluster seeding
		logger:     logger.With().Str("component", "profile").Str("learner", string(StrategyKMeans)).Logger(),
	}, nil
}

// Name returns "kmeans".
func (km *KMeans) Name() string {
	return string(StrategyKMeans)
}

// Learn clusters users into k groups and returns one profile per cluster,
// in cluster order.
func (km *KMeans) Learn(users []*network.RatedNetwork) (profiles []Profile, err error) {
	defer func() { metrics.RecordLearn(km.Name(), len(profiles), err) }()

	vectors, err := cleanRatings("kmeans learn", users)
	if err != nil {
		return nil, err
	}
	if len(vectors) < km.config.K {
		return nil, errs.Precondition("kmeans learn", nil,
			"%d users cannot form %d clusters", len(vectors), km.config.K)
	}

	means, assignment, err := km.converge(vectors, km.initialMeans(vectors))
	if err != nil {
		return nil, err
	}

	members := make([][]int, len(means))
	for user, cluster := range assignment {
		members[cluster] = append(members[cluster], user)
	}

	profiles = make([]Profile, len(means))
	for c, mean := range means {
		profiles[c] = newProfile(mean, members[c], km.similarity)
	}
	return profiles, nil
}

// initialMeans picks k distinct users uniformly at random.
func (km *KMeans) initialMeans(vectors [][]float64) [][]float64 {
	perm := km.rng.Perm(len(vectors))
	means := make([][]float64, km.config.K)
	for c := range means {
		means[c] = matrix.Clone1D(vectors[perm[c]])
	}
	return means
}

// converge runs assign/update rounds from the given means until the means
// stop changing. It returns the final means and each vector's cluster.
func (km *KMeans) converge(vectors, means [][]float64) ([][]float64, []int, error) {
	assignment := make([]int, len(vectors))

	for round := 1; ; round++ {
		if km.config.MaxRounds > 0 && round > km.config.MaxRounds {
			return nil, nil, errs.Internal("kmeans converge", errs.ErrNotConverged,
				"no fixed point after %d rounds", km.config.MaxRounds)
		}

		if err := assign(vectors, means, assignment); err != nil {
			return nil, nil, err
		}

		next, err := update(vectors, assignment, len(means))
		if err != nil {
			return nil, nil, err
		}

		km.logger.Debug().Int("round", round).Int("k", len(means)).Msg("k-means round")

		if matrix.Equal(next, means) {
			metrics.KMeansRounds.Observe(float64(round))
			km.logger.Info().
				Int("rounds", round).
				Int("k", len(next)).
				Int("users", len(vectors)).
				Msg("K-means converged")
			return next, assignment, nil
		}
		means = next
	}
}

// assign stores the index of the nearest mean for every vector.
// Ties go to the lowest cluster index.
func assign(vectors, means [][]float64, assignment []int) error {
	for i, v := range vectors {
		best, bestDist := 0, math.Inf(1)
		for c, mean := range means {
			d, err := matrix.VectorDistance(v, mean)
			if err != nil {
				return err
			}
			if d < bestDist {
				best, bestDist = c, d
			}
		}
		assignment[i] = best
	}
	return nil
}

// update recomputes each cluster mean from its members.
// A cluster without members is an internal error.
func update(vectors [][]float64, assignment []int, k int) ([][]float64, error) {
	groups := make([][][]float64, k)
	for i, c := range assignment {
		groups[c] = append(groups[c], vectors[i])
	}

	means := make([][]float64, k)
	for c, group := range groups {
		mean, err := matrix.VectorMean(group)
		if err != nil {
			return nil, errs.Internal("kmeans update", err, "cluster %d", c)
		}
		means[c] = mean
	}
	return means, nil
}
