// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

// Package recommend scores items of a rated network and drives the
// recommend-then-rate loop for a single user.
//
// # Scoring
//
// The recommendation vector is the product of the rescaled similarity
// network and the rescaled rating vector:
//
//	score = (S - (upper-lower)/2) · (r - RescaleFactor)
//
// where unrated entries of r take UnratedStars. An item scores high when it
// is similar to items the user liked and dissimilar to items the user
// disliked.
//
// # Algorithms
//
// Algorithm implementations live in the algorithms subpackage:
//
//   - greedy: the highest-scoring unrated item
//   - probabilistic: an unrated item sampled in proportion to its score
//
// # Usage
//
//	alg, err := algorithms.New(algorithms.NameGreedy, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	session, err := recommend.NewSession(rn, alg, logger)
//	if err != nil {
//	    return err
//	}
//	order, err := session.Run(ctx, rater)
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent use. A Session owns its
// rated network exclusively.
package recommend
