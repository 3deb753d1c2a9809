// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

// Package simulate runs the full loop: learn profiles from a dataset, then
// walk simulated users through recommendation sessions and score how early
// the sessions surface items the users like.
//
// Each simulated user reveals a few of their ratings up front. The profile
// whose mean is nearest to those ratings becomes the session's network and
// an Oracle answers every later rating request from the user's ratings.
package simulate

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tastenet/internal/dataset"
	"github.com/tomtom215/tastenet/internal/errs"
	"github.com/tomtom215/tastenet/internal/logging"
	"github.com/tomtom215/tastenet/internal/network"
	"github.com/tomtom215/tastenet/internal/profile"
	"github.com/tomtom215/tastenet/internal/recommend"
	"github.com/tomtom215/tastenet/internal/recommend/algorithms"
)

// Config controls a simulation run.
type Config struct {
	// Learner selects how profiles are learned.
	Learner profile.Config

	// Algorithm names the recommendation algorithm.
	Algorithm string

	// Recommend configures scoring.
	Recommend recommend.Config

	// Sessions is the number of simulated users. 0 runs one per dataset user.
	Sessions int

	// Revealed is how many of a user's ratings are known when a session starts.
	Revealed int
}

// SessionResult summarizes one simulated user.
type SessionResult struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Profile   int    `json:"profile"`
	Revealed  []int  `json:"revealed"`
	Order     []int  `json:"order"`
	Hits      int    `json:"hits"`
}

// Report is the outcome of a simulation run.
type Report struct {
	CorrelationID string            `json:"correlation_id"`
	Learner       string            `json:"learner"`
	Algorithm     string            `json:"algorithm"`
	Profiles      []profile.Profile `json:"profiles"`
	Sessions      []SessionResult   `json:"sessions"`
}

// HitRate returns hits per visited item across the first half of every
// session.
func (r *Report) HitRate() float64 {
	var hits, slots int
	for _, s := range r.Sessions {
		hits += s.Hits
		slots += firstHalf(len(s.Order))
	}
	if slots == 0 {
		return 0
	}
	return float64(hits) / float64(slots)
}

// Run learns profiles from ds and simulates sessions against them.
func Run(ctx context.Context, ds *dataset.Dataset, cfg Config, logger zerolog.Logger) (*Report, error) {
	if ds == nil {
		return nil, errs.Precondition("simulate", errs.ErrEmptyInput, "nil dataset")
	}
	if cfg.Revealed < 0 {
		return nil, errs.Config("simulate", nil, "revealed = %d, want >= 0", cfg.Revealed)
	}

	if logging.CorrelationIDFromContext(ctx) == "" {
		ctx = logging.ContextWithNewCorrelationID(ctx)
	}
	correlationID := logging.CorrelationIDFromContext(ctx)
	logger = logger.With().Str("component", "simulate").Str("correlation_id", correlationID).Logger()

	if cfg.Learner.Similarity.Scale == (network.Scale{}) {
		cfg.Learner.Similarity.Scale = ds.Scale
	}
	learner, err := profile.New(cfg.Learner, logger)
	if err != nil {
		return nil, err
	}
	alg, err := algorithms.New(cfg.Algorithm, cfg.Recommend, logger)
	if err != nil {
		return nil, err
	}

	users, err := ds.RatedNetworks()
	if err != nil {
		return nil, err
	}
	profiles, err := learner.Learn(users)
	if err != nil {
		return nil, fmt.Errorf("learn profiles: %w", err)
	}

	sessions := cfg.Sessions
	if sessions <= 0 {
		sessions = len(ds.Users)
	}

	report := &Report{
		CorrelationID: correlationID,
		Learner:       learner.Name(),
		Algorithm:     alg.Name(),
		Profiles:      profiles,
		Sessions:      make([]SessionResult, 0, sessions),
	}

	for i := 0; i < sessions; i++ {
		user := ds.Users[i%len(ds.Users)]
		res, err := runSession(ctx, ds.Scale, user, profiles, alg, cfg.Revealed, logger)
		if err != nil {
			return report, fmt.Errorf("session for user %s: %w", user.ID, err)
		}
		report.Sessions = append(report.Sessions, res)
	}

	logger.Info().
		Str("learner", report.Learner).
		Str("algorithm", report.Algorithm).
		Int("profiles", len(profiles)).
		Int("sessions", len(report.Sessions)).
		Float64("hit_rate", report.HitRate()).
		Msg("Simulation complete")
	return report, nil
}

func runSession(
	ctx context.Context,
	scale network.Scale,
	user dataset.User,
	profiles []profile.Profile,
	alg recommend.Algorithm,
	revealed int,
	logger zerolog.Logger,
) (SessionResult, error) {
	oracle, err := NewOracle(user.Ratings, scale)
	if err != nil {
		return SessionResult{}, err
	}

	start, shown := reveal(user.Ratings, revealed)
	best, err := profile.Nearest(profiles, start)
	if err != nil {
		return SessionResult{}, err
	}

	rn, err := profiles[best].Attach(start, network.WithScale(scale))
	if err != nil {
		return SessionResult{}, err
	}

	session, err := recommend.NewSession(rn, alg, logger.With().Str("user_id", user.ID).Logger())
	if err != nil {
		return SessionResult{}, err
	}

	order, err := session.Run(ctx, oracle)
	if err != nil {
		return SessionResult{}, err
	}

	hits, err := countHits(ctx, oracle, order, scale)
	if err != nil {
		return SessionResult{}, err
	}

	return SessionResult{
		SessionID: session.ID(),
		UserID:    user.ID,
		Profile:   best,
		Revealed:  shown,
		Order:     order,
		Hits:      hits,
	}, nil
}

// reveal keeps the first n rated entries and blanks the rest. It returns
// the starting ratings and the revealed indices. At least one item is
// always left unrated.
func reveal(ratings []network.Rating, n int) ([]network.Rating, []int) {
	start := make([]network.Rating, len(ratings))
	var shown []int
	for i, r := range ratings {
		if len(shown) >= n || len(shown) == len(ratings)-1 {
			break
		}
		if r.Rated {
			start[i] = r
			shown = append(shown, i)
		}
	}
	return start, shown
}

// countHits counts items in the first half of order that the user rates at
// or above the scale midpoint.
func countHits(ctx context.Context, oracle *Oracle, order []int, scale network.Scale) (int, error) {
	hits := 0
	for _, item := range order[:firstHalf(len(order))] {
		stars, err := oracle.Rate(ctx, item)
		if err != nil {
			return 0, err
		}
		if float64(stars) >= scale.Midpoint() {
			hits++
		}
	}
	return hits, nil
}

func firstHalf(n int) int {
	return (n + 1) / 2
}
