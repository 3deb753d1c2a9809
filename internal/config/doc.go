// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

/*
Package config provides layered configuration for Tastenet.

Configuration is merged from three sources, later sources winning:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: the --config flag, else $TASTENET_CONFIG, else
    tastenet.yaml or tastenet.yml in the working directory
 3. TASTENET_* environment variables

# Example File

	logging:
	  level: debug
	ratings:
	  min: 1
	  max: 5
	learner:
	  strategy: kmeans
	  k: 3
	  steepness: 0.1
	recommend:
	  algorithm: probabilistic
	  fallback: unrated
	simulation:
	  nodes: 12
	  users: 80
	  revealed: 3

# Environment Variables

  - TASTENET_LOG_LEVEL, TASTENET_LOG_FORMAT, TASTENET_LOG_CALLER
  - TASTENET_RATINGS_MIN, TASTENET_RATINGS_MAX
  - TASTENET_LEARNER_STRATEGY, TASTENET_LEARNER_K, TASTENET_LEARNER_STEEPNESS,
    TASTENET_LEARNER_MAX_ROUNDS, TASTENET_LEARNER_SEED
  - TASTENET_RECOMMEND_ALGORITHM, TASTENET_RECOMMEND_UNRATED_STARS,
    TASTENET_RECOMMEND_RESCALE_FACTOR, TASTENET_RECOMMEND_FALLBACK,
    TASTENET_RECOMMEND_SEED
  - TASTENET_SIMULATION_NODES, TASTENET_SIMULATION_USERS,
    TASTENET_SIMULATION_SESSIONS, TASTENET_SIMULATION_REVEALED,
    TASTENET_SIMULATION_RATED_FRACTION, TASTENET_SIMULATION_LOWER,
    TASTENET_SIMULATION_UPPER, TASTENET_SIMULATION_SEED, TASTENET_DATASET

# Validation

Load validates struct tags through the validation package and then checks
rules spanning several fields: the rating scale must satisfy 1 <= min < max
and learner.k must be at least 1 for the kmeans strategy. Failures are
configuration errors (errs.IsConfig).
*/
package config
