// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package recommend

import (
	"math"

	"github.com/tomtom215/tastenet/internal/errs"
)

// Fallback selects the items a uniform draw is spread over.
type Fallback string

const (
	// FallbackUnrated draws uniformly among unrated items.
	FallbackUnrated Fallback = "unrated"

	// FallbackAll draws uniformly among every item, rated ones included.
	FallbackAll Fallback = "all"
)

// Config contains scoring and sampling parameters shared by all algorithms.
type Config struct {
	// UnratedStars replaces unrated entries of the rating vector.
	UnratedStars float64 `json:"unrated_stars"`

	// RescaleFactor is subtracted from every rating so that ratings above
	// it push similar items up and ratings below it push them down.
	RescaleFactor float64 `json:"rescale_factor"`

	// Fallback applies when every candidate scores the same.
	Fallback Fallback `json:"fallback"`

	// Seed is the random seed for probabilistic algorithms.
	// If zero, a fixed default seed is used.
	Seed int64 `json:"seed"`
}

// DefaultConfig returns the default scoring configuration.
func DefaultConfig() Config {
	return Config{
		UnratedStars:  2.5,
		RescaleFactor: 2.5,
		Fallback:      FallbackUnrated,
		Seed:          42,
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if !finite(c.UnratedStars) {
		return errs.Config("recommend config", nil, "unrated_stars must be finite, got %v", c.UnratedStars)
	}
	if !finite(c.RescaleFactor) {
		return errs.Config("recommend config", nil, "rescale_factor must be finite, got %v", c.RescaleFactor)
	}
	switch c.Fallback {
	case FallbackUnrated, FallbackAll, "":
	default:
		return errs.Config("recommend config", nil, "fallback must be %q or %q, got %q",
			FallbackUnrated, FallbackAll, c.Fallback)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
