// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/tastenet/internal/errs"
	"github.com/tomtom215/tastenet/internal/network"
	"github.com/tomtom215/tastenet/internal/recommend"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"tastenet.yaml",
	"tastenet.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "TASTENET_CONFIG"

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "TASTENET_"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	scoring := recommend.DefaultConfig()

	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Caller: false,
		},
		Ratings: network.DefaultScale(),
		Learner: LearnerConfig{
			Strategy:  "kmeans",
			K:         2,
			Steepness: 0.1,
			MaxRounds: 100,
			Seed:      42,
		},
		Recommend: RecommendConfig{
			Algorithm:     "greedy",
			UnratedStars:  scoring.UnratedStars,
			RescaleFactor: scoring.RescaleFactor,
			Fallback:      string(scoring.Fallback),
			Seed:          scoring.Seed,
		},
		Simulation: SimulationConfig{
			Nodes:         10,
			Users:         50,
			Sessions:      0,
			Revealed:      2,
			RatedFraction: 0.5,
			Lower:         0,
			Upper:         1,
			Seed:          42,
		},
	}
}

// Load loads configuration with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: path if non-empty, otherwise the first file found by findConfigFile
//  3. Environment Variables: TASTENET_* overrides any setting
//
// An explicit path that cannot be read is an error; a missing discovered file is not.
func Load(path string) (*Config, error) {
	k, err := NewKoanf(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// NewKoanf returns a Koanf instance holding the merged configuration layers.
// Callers use it to inspect or print the effective configuration.
func NewKoanf(path string) (*koanf.Koanf, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := path
	if configPath == "" {
		configPath = findConfigFile()
	} else if _, err := os.Stat(configPath); err != nil {
		return nil, errs.Config("load config", err, "config file %s", configPath)
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	return k, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	// Check environment variable first
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Logging
	"tastenet_log_level":  "logging.level",
	"tastenet_log_format": "logging.format",
	"tastenet_log_caller": "logging.caller",

	// Rating scale
	"tastenet_ratings_min": "ratings.min",
	"tastenet_ratings_max": "ratings.max",

	// Learner
	"tastenet_learner_strategy":   "learner.strategy",
	"tastenet_learner_k":          "learner.k",
	"tastenet_learner_steepness":  "learner.steepness",
	"tastenet_learner_max_rounds": "learner.max_rounds",
	"tastenet_learner_seed":       "learner.seed",

	// Recommendation
	"tastenet_recommend_algorithm":      "recommend.algorithm",
	"tastenet_recommend_unrated_stars":  "recommend.unrated_stars",
	"tastenet_recommend_rescale_factor": "recommend.rescale_factor",
	"tastenet_recommend_fallback":       "recommend.fallback",
	"tastenet_recommend_seed":           "recommend.seed",

	// Simulation
	"tastenet_simulation_nodes":          "simulation.nodes",
	"tastenet_simulation_users":          "simulation.users",
	"tastenet_simulation_sessions":       "simulation.sessions",
	"tastenet_simulation_revealed":       "simulation.revealed",
	"tastenet_simulation_rated_fraction": "simulation.rated_fraction",
	"tastenet_simulation_lower":          "simulation.lower",
	"tastenet_simulation_upper":          "simulation.upper",
	"tastenet_simulation_seed":           "simulation.seed",
	"tastenet_dataset":                   "simulation.dataset",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - TASTENET_LOG_LEVEL -> logging.level
//   - TASTENET_LEARNER_K -> learner.k
//   - TASTENET_DATASET -> simulation.dataset
//
// Unknown variables return an empty string and are ignored.
func envTransformFunc(key string) string {
	if path, ok := envMappings[strings.ToLower(key)]; ok {
		return path
	}
	return ""
}
