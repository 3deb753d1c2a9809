// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tomtom215/tastenet/internal/errs"
)

func writeConfig(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// TestDefaultConfig verifies default values are sensible and valid
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %v, want info", cfg.Logging.Level)
	}
	if cfg.Ratings.Min != 1 || cfg.Ratings.Max != 5 {
		t.Errorf("Ratings = %+v, want 1..5", cfg.Ratings)
	}
	if cfg.Learner.Strategy != "kmeans" {
		t.Errorf("Learner.Strategy = %v, want kmeans", cfg.Learner.Strategy)
	}
	if cfg.Learner.K != 2 {
		t.Errorf("Learner.K = %v, want 2", cfg.Learner.K)
	}
	if cfg.Recommend.Algorithm != "greedy" {
		t.Errorf("Recommend.Algorithm = %v, want greedy", cfg.Recommend.Algorithm)
	}
	if cfg.Recommend.UnratedStars != 2.5 {
		t.Errorf("Recommend.UnratedStars = %v, want 2.5", cfg.Recommend.UnratedStars)
	}
	if cfg.Recommend.RescaleFactor != 2.5 {
		t.Errorf("Recommend.RescaleFactor = %v, want 2.5", cfg.Recommend.RescaleFactor)
	}
	if cfg.Recommend.Fallback != "unrated" {
		t.Errorf("Recommend.Fallback = %v, want unrated", cfg.Recommend.Fallback)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig().Validate() error = %v", err)
	}
}

// TestEnvTransformFunc verifies environment variable to config path mapping
func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"TASTENET_LOG_LEVEL", "logging.level"},
		{"TASTENET_LOG_FORMAT", "logging.format"},
		{"TASTENET_RATINGS_MAX", "ratings.max"},
		{"TASTENET_LEARNER_K", "learner.k"},
		{"TASTENET_LEARNER_MAX_ROUNDS", "learner.max_rounds"},
		{"TASTENET_RECOMMEND_ALGORITHM", "recommend.algorithm"},
		{"TASTENET_RECOMMEND_FALLBACK", "recommend.fallback"},
		{"TASTENET_SIMULATION_RATED_FRACTION", "simulation.rated_fraction"},
		{"TASTENET_DATASET", "simulation.dataset"},
		{"tastenet_learner_seed", "learner.seed"},

		// Unknown (should return empty)
		{"TASTENET_CONFIG", ""},
		{"TASTENET_UNKNOWN", ""},
		{"PATH", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := envTransformFunc(tt.input)
			if result != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// TestFindConfigFile verifies config file discovery
func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	chdirForTest(t, tmpDir)

	t.Run("no config file exists", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "")
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})

	t.Run("tastenet.yaml exists", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "")
		path := writeConfig(t, tmpDir, "tastenet.yaml", "learner:\n  k: 3\n")
		defer os.Remove(path)

		if result := findConfigFile(); result != "tastenet.yaml" {
			t.Errorf("findConfigFile() = %q, want tastenet.yaml", result)
		}
	})

	t.Run("env var takes precedence", func(t *testing.T) {
		custom := writeConfig(t, tmpDir, "custom.yaml", "learner:\n  k: 3\n")
		t.Setenv(ConfigPathEnvVar, custom)

		if result := findConfigFile(); result != custom {
			t.Errorf("findConfigFile() = %q, want %q", result, custom)
		}
	})

	t.Run("env var with non-existent file", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/tastenet.yaml")
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})
}

// TestLoadEnvVars tests loading configuration from environment variables
func TestLoadEnvVars(t *testing.T) {
	chdirForTest(t, t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("TASTENET_LOG_LEVEL", "debug")
	t.Setenv("TASTENET_LEARNER_K", "4")
	t.Setenv("TASTENET_LEARNER_STEEPNESS", "0.25")
	t.Setenv("TASTENET_RECOMMEND_ALGORITHM", "probabilistic")
	t.Setenv("TASTENET_RECOMMEND_SEED", "7")
	t.Setenv("TASTENET_DATASET", "users.json")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %v, want debug", cfg.Logging.Level)
	}
	if cfg.Learner.K != 4 {
		t.Errorf("Learner.K = %v, want 4", cfg.Learner.K)
	}
	if cfg.Learner.Steepness != 0.25 {
		t.Errorf("Learner.Steepness = %v, want 0.25", cfg.Learner.Steepness)
	}
	if cfg.Recommend.Algorithm != "probabilistic" {
		t.Errorf("Recommend.Algorithm = %v, want probabilistic", cfg.Recommend.Algorithm)
	}
	if cfg.Recommend.Seed != 7 {
		t.Errorf("Recommend.Seed = %v, want 7", cfg.Recommend.Seed)
	}
	if cfg.Simulation.Dataset != "users.json" {
		t.Errorf("Simulation.Dataset = %v, want users.json", cfg.Simulation.Dataset)
	}

	// Untouched values keep their defaults
	if cfg.Simulation.Nodes != 10 {
		t.Errorf("Simulation.Nodes = %v, want 10", cfg.Simulation.Nodes)
	}
}

// TestLoadConfigFile tests loading configuration from a YAML file
func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, dir)
	t.Setenv(ConfigPathEnvVar, "")

	path := writeConfig(t, dir, "run.yaml", `
ratings:
  min: 1
  max: 10
learner:
  strategy: average
  k: 0
recommend:
  fallback: all
simulation:
  nodes: 6
  users: 12
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Ratings.Max != 10 {
		t.Errorf("Ratings.Max = %v, want 10", cfg.Ratings.Max)
	}
	if cfg.Learner.Strategy != "average" {
		t.Errorf("Learner.Strategy = %v, want average", cfg.Learner.Strategy)
	}
	if cfg.Recommend.Fallback != "all" {
		t.Errorf("Recommend.Fallback = %v, want all", cfg.Recommend.Fallback)
	}
	if cfg.Simulation.Nodes != 6 || cfg.Simulation.Users != 12 {
		t.Errorf("Simulation = %+v, want nodes 6 users 12", cfg.Simulation)
	}
}

// TestLoadDiscoveredFile tests that tastenet.yaml in the working directory is used
func TestLoadDiscoveredFile(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, dir)
	t.Setenv(ConfigPathEnvVar, "")
	writeConfig(t, dir, "tastenet.yaml", "learner:\n  k: 5\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Learner.K != 5 {
		t.Errorf("Learner.K = %v, want 5", cfg.Learner.K)
	}
}

// TestLoadEnvOverridesFile tests that env vars override config file values
func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, dir)
	t.Setenv(ConfigPathEnvVar, "")
	path := writeConfig(t, dir, "run.yaml", "learner:\n  k: 3\nrecommend:\n  algorithm: greedy\n")

	t.Setenv("TASTENET_LEARNER_K", "6")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Learner.K != 6 {
		t.Errorf("Learner.K = %v, want 6 (env should override file)", cfg.Learner.K)
	}
	if cfg.Recommend.Algorithm != "greedy" {
		t.Errorf("Recommend.Algorithm = %v, want greedy", cfg.Recommend.Algorithm)
	}
}

// TestLoadValidation tests that invalid configuration is rejected
func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantMsg string
	}{
		{
			name:    "unknown strategy",
			env:     map[string]string{"TASTENET_LEARNER_STRATEGY": "spectral"},
			wantMsg: "learner.strategy must be one of",
		},
		{
			name:    "unknown algorithm",
			env:     map[string]string{"TASTENET_RECOMMEND_ALGORITHM": "random"},
			wantMsg: "recommend.algorithm must be one of",
		},
		{
			name:    "kmeans without k",
			env:     map[string]string{"TASTENET_LEARNER_K": "0"},
			wantMsg: "learner.k must be at least 1",
		},
		{
			name:    "zero rating minimum",
			env:     map[string]string{"TASTENET_RATINGS_MIN": "0"},
			wantMsg: "min must be at least 1",
		},
		{
			name:    "inverted rating scale",
			env:     map[string]string{"TASTENET_RATINGS_MIN": "5", "TASTENET_RATINGS_MAX": "3"},
			wantMsg: "must be below max",
		},
		{
			name:    "rated fraction above one",
			env:     map[string]string{"TASTENET_SIMULATION_RATED_FRACTION": "1.5"},
			wantMsg: "simulation.rated_fraction must be less than or equal to 1",
		},
		{
			name:    "inverted similarity bounds",
			env:     map[string]string{"TASTENET_SIMULATION_LOWER": "2"},
			wantMsg: "simulation.upper must be greater than",
		},
		{
			name:    "bad log level",
			env:     map[string]string{"TASTENET_LOG_LEVEL": "loud"},
			wantMsg: "logging.level must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirForTest(t, t.TempDir())
			t.Setenv(ConfigPathEnvVar, "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load("")
			if err == nil {
				t.Fatal("Load() error = nil, want validation failure")
			}
			if !errs.IsConfig(err) {
				t.Errorf("Load() error kind = %v, want config", errs.KindOf(err))
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Load() error = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

// TestLoadMissingExplicitFile verifies an explicit path must exist
func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() error = nil, want missing file error")
	}
	if !errs.IsConfig(err) {
		t.Errorf("Load() error kind = %v, want config", errs.KindOf(err))
	}
}

// TestNewKoanf verifies the merged layers are exposed for inspection
func TestNewKoanf(t *testing.T) {
	chdirForTest(t, t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("TASTENET_RECOMMEND_FALLBACK", "all")

	k, err := NewKoanf("")
	if err != nil {
		t.Fatalf("NewKoanf() error = %v", err)
	}
	if got := k.String("recommend.fallback"); got != "all" {
		t.Errorf("recommend.fallback = %q, want all", got)
	}
	if got := k.Int("ratings.max"); got != 5 {
		t.Errorf("ratings.max = %d, want 5", got)
	}
}
