// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package algorithms

import (
	"github.com/rs/zerolog"

	"github.com/tomtom215/tastenet/internal/errs"
	"github.com/tomtom215/tastenet/internal/network"
	"github.com/tomtom215/tastenet/internal/recommend"
)

// Algorithm names.
const (
	NameGreedy        = "greedy"
	NameProbabilistic = "probabilistic"
)

// Names lists the available algorithms.
func Names() []string {
	return []string{NameGreedy, NameProbabilistic}
}

// New constructs the algorithm registered under name.
func New(name string, cfg recommend.Config, logger zerolog.Logger) (recommend.Algorithm, error) {
	switch name {
	case NameGreedy:
		return NewGreedy(cfg, logger)
	case NameProbabilistic:
		return NewProbabilistic(cfg, logger)
	default:
		return nil, errs.Config("new algorithm", nil, "unknown algorithm %q", name)
	}
}

// BaseAlgorithm provides common functionality for all algorithms.
type BaseAlgorithm struct {
	name   string
	config recommend.Config
	logger zerolog.Logger
}

// NewBaseAlgorithm validates cfg and creates a base algorithm with the given name.
func NewBaseAlgorithm(name string, cfg recommend.Config, logger zerolog.Logger) (BaseAlgorithm, error) {
	if err := cfg.Validate(); err != nil {
		return BaseAlgorithm{}, err
	}
	if cfg.Fallback == "" {
		cfg.Fallback = recommend.FallbackUnrated
	}
	return BaseAlgorithm{
		name:   name,
		config: cfg,
		logger: logger.With().Str("component", "recommend").Str("algorithm", name).Logger(),
	}, nil
}

// Name returns the algorithm identifier.
func (b *BaseAlgorithm) Name() string {
	return b.name
}

// Config returns the scoring configuration.
func (b *BaseAlgorithm) Config() recommend.Config {
	return b.config
}

// scores checks that rn has a target and returns its recommendation vector.
func (b *BaseAlgorithm) scores(rn *network.RatedNetwork) ([]float64, error) {
	if rn == nil {
		return nil, errs.Precondition(b.name, errs.ErrEmptyInput, "nil rated network")
	}
	if !rn.HasUnrated() {
		return nil, errs.Precondition(b.name, errs.ErrFullyRated, "nothing left to recommend")
	}
	return recommend.Vector(rn, b.config)
}

// Ensure all algorithms implement the interface.
var (
	_ recommend.Algorithm = (*Greedy)(nil)
	_ recommend.Algorithm = (*Probabilistic)(nil)
)
