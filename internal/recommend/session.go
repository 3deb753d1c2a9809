// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package recommend

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/tastenet/internal/errs"
	"github.com/tomtom215/tastenet/internal/metrics"
	"github.com/tomtom215/tastenet/internal/network"
)

// Session drives one user through a rated network: recommend an item,
// collect a rating, repeat until nothing is left unrated.
type Session struct {
	id        string
	network   *network.RatedNetwork
	algorithm Algorithm
	visited   []int
	logger    zerolog.Logger
}

// NewSession creates a session over rn. The session takes ownership of rn.
func NewSession(rn *network.RatedNetwork, alg Algorithm, logger zerolog.Logger) (*Session, error) {
	if rn == nil {
		return nil, errs.Precondition("new session", errs.ErrEmptyInput, "nil rated network")
	}
	if alg == nil {
		return nil, errs.Config("new session", nil, "algorithm is required")
	}

	id := uuid.New().String()
	return &Session{
		id:        id,
		network:   rn,
		algorithm: alg,
		logger: logger.With().
			Str("component", "session").
			Str("session_id", id).
			Str("algorithm", alg.Name()).
			Logger(),
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Network returns the rated network the session mutates.
func (s *Session) Network() *network.RatedNetwork {
	return s.network
}

// Visited returns the items rated through the session, in order.
func (s *Session) Visited() []int {
	return append([]int(nil), s.visited...)
}

// Next returns the algorithm's next recommendation.
func (s *Session) Next() (int, error) {
	if !s.network.HasUnrated() {
		return 0, errs.Precondition("session next", errs.ErrFullyRated, "session %s is complete", s.id)
	}

	item, err := s.algorithm.Recommend(s.network)
	if err != nil {
		return 0, fmt.Errorf("recommend next item: %w", err)
	}

	if r, _ := s.network.Rating(item); r.Rated {
		s.logger.Warn().Int("item", item).Msg("Algorithm recommended an already rated item")
	}
	return item, nil
}

// Rate stores the user's rating for item.
func (s *Session) Rate(item, stars int) error {
	if err := s.network.AddRating(item, stars); err != nil {
		return err
	}
	s.visited = append(s.visited, item)
	metrics.SessionSteps.Inc()

	s.logger.Debug().Int("item", item).Int("stars", stars).Int("step", len(s.visited)).Msg("Item rated")
	return nil
}

// Run recommends and rates items until every item is rated. It returns the
// visit order. The context is checked between steps.
func (s *Session) Run(ctx context.Context, rater Rater) ([]int, error) {
	if rater == nil {
		return nil, errs.Config("session run", nil, "rater is required")
	}

	for s.network.HasUnrated() {
		if err := ctx.Err(); err != nil {
			return s.Visited(), err
		}

		item, err := s.Next()
		if err != nil {
			return s.Visited(), err
		}

		stars, err := rater.Rate(ctx, item)
		if err != nil {
			return s.Visited(), fmt.Errorf("rate item %d: %w", item, err)
		}

		if err := s.Rate(item, stars); err != nil {
			return s.Visited(), err
		}
	}

	metrics.SessionsCompleted.Inc()
	s.logger.Info().Int("steps", len(s.visited)).Msg("Session complete")
	return s.Visited(), nil
}
