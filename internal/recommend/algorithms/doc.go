// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

// Package algorithms implements next-item recommendation algorithms.
//
// Each algorithm implements the recommend.Algorithm interface and scores
// items with recommend.Vector.
//
// # Algorithms
//
//   - Greedy: deterministic, returns the highest-scoring unrated item
//   - Probabilistic: samples an unrated item in proportion to its score
//
// Both refuse a fully rated network with a precondition error wrapping
// errs.ErrFullyRated.
//
// # Probabilistic Sampling
//
// Scores of rated items are zeroed and only unrated items are candidates.
// Negative candidate scores are shifted so the lowest is 0, then scores
// are normalized into a distribution. When every candidate scores the
// same the draw is uniform, over unrated items or over every item
// depending on recommend.Config.Fallback.
//
// # Thread Safety
//
// Greedy is safe for concurrent use. Probabilistic owns a seeded random
// source and is not.
package algorithms
