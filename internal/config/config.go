// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package config

import (
	"github.com/tomtom215/tastenet/internal/dataset"
	"github.com/tomtom215/tastenet/internal/errs"
	"github.com/tomtom215/tastenet/internal/logging"
	"github.com/tomtom215/tastenet/internal/network"
	"github.com/tomtom215/tastenet/internal/profile"
	"github.com/tomtom215/tastenet/internal/recommend"
	"github.com/tomtom215/tastenet/internal/simulate"
	"github.com/tomtom215/tastenet/internal/validation"
)

// Config holds all application configuration.
type Config struct {
	Logging    LoggingConfig    `koanf:"logging"`
	Ratings    network.Scale    `koanf:"ratings"`
	Learner    LearnerConfig    `koanf:"learner"`
	Recommend  RecommendConfig  `koanf:"recommend"`
	Simulation SimulationConfig `koanf:"simulation"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal panic"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// LearnerConfig selects how profiles are learned from the user population.
type LearnerConfig struct {
	Strategy string `koanf:"strategy" validate:"oneof=average kmeans"`

	// K is the number of k-means profiles. Required when Strategy is kmeans.
	K int `koanf:"k" validate:"gte=0"`

	// Steepness of the exponential similarity function. 0 selects the default.
	Steepness float64 `koanf:"steepness" validate:"finite,gte=0"`

	// MaxRounds caps k-means rounds. 0 means no cap.
	MaxRounds int `koanf:"max_rounds" validate:"gte=0"`

	Seed int64 `koanf:"seed"`
}

// RecommendConfig configures scoring and the recommendation algorithm.
type RecommendConfig struct {
	Algorithm     string  `koanf:"algorithm" validate:"oneof=greedy probabilistic"`
	UnratedStars  float64 `koanf:"unrated_stars" validate:"finite"`
	RescaleFactor float64 `koanf:"rescale_factor" validate:"finite"`
	Fallback      string  `koanf:"fallback" validate:"oneof=unrated all"`
	Seed          int64   `koanf:"seed"`
}

// SimulationConfig controls fixture generation and simulation runs.
type SimulationConfig struct {
	Nodes         int     `koanf:"nodes" validate:"min=1"`
	Users         int     `koanf:"users" validate:"min=1"`
	Sessions      int     `koanf:"sessions" validate:"gte=0"`
	Revealed      int     `koanf:"revealed" validate:"gte=0"`
	RatedFraction float64 `koanf:"rated_fraction" validate:"finite,gte=0,lte=1"`
	Lower         float64 `koanf:"lower" validate:"finite"`
	Upper         float64 `koanf:"upper" validate:"finite,gtfield=Lower"`
	Seed          int64   `koanf:"seed"`

	// Dataset is a dataset file to simulate against. Empty generates one.
	Dataset string `koanf:"dataset"`
}

// Validate checks struct tags first, then rules that span fields.
// Every failure is a configuration error.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return errs.Config("validate config", err, "")
	}
	if err := c.Ratings.Validate(); err != nil {
		return err
	}
	if profile.Strategy(c.Learner.Strategy) == profile.StrategyKMeans && c.Learner.K < 1 {
		return errs.Config("validate config", nil, "learner.k must be at least 1 when learner.strategy is kmeans")
	}
	return nil
}

// LogConfig returns the logging settings for logging.Init.
func (c *Config) LogConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Logging.Level
	cfg.Format = c.Logging.Format
	cfg.Caller = c.Logging.Caller
	return cfg
}

// ProfileConfig returns the learner configuration.
func (c *Config) ProfileConfig() profile.Config {
	return profile.Config{
		Strategy: profile.Strategy(c.Learner.Strategy),
		Similarity: profile.SimilarityConfig{
			Steepness: c.Learner.Steepness,
			Scale:     c.Ratings,
		},
		KMeans: profile.KMeansConfig{
			K:         c.Learner.K,
			MaxRounds: c.Learner.MaxRounds,
			Seed:      c.Learner.Seed,
		},
	}
}

// ScoringConfig returns the recommendation scoring configuration.
func (c *Config) ScoringConfig() recommend.Config {
	return recommend.Config{
		UnratedStars:  c.Recommend.UnratedStars,
		RescaleFactor: c.Recommend.RescaleFactor,
		Fallback:      recommend.Fallback(c.Recommend.Fallback),
		Seed:          c.Recommend.Seed,
	}
}

// GenerateConfig returns the fixture generator configuration.
func (c *Config) GenerateConfig() dataset.GenerateConfig {
	return dataset.GenerateConfig{
		Nodes:         c.Simulation.Nodes,
		Users:         c.Simulation.Users,
		RatedFraction: c.Simulation.RatedFraction,
		Lower:         c.Simulation.Lower,
		Upper:         c.Simulation.Upper,
		Scale:         c.Ratings,
		Seed:          c.Simulation.Seed,
	}
}

// SimulateConfig returns the simulation run configuration.
func (c *Config) SimulateConfig() simulate.Config {
	return simulate.Config{
		Learner:   c.ProfileConfig(),
		Algorithm: c.Recommend.Algorithm,
		Recommend: c.ScoringConfig(),
		Sessions:  c.Simulation.Sessions,
		Revealed:  c.Simulation.Revealed,
	}
}
