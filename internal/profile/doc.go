// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

// Package profile learns taste profiles from a population of rated networks.
//
// A profile is a similarity network derived from a mean rating vector: two
// items are similar when the population rated them alike. Learners differ
// in how many mean vectors they produce.
//
//   - Average: one profile from the mean of every user
//   - KMeans: k profiles from the converged cluster means
//
// # Rating Cleaning
//
// Before any learning, unrated entries are replaced by the placeholder 0.
// The substitution lives only in the learner's working vectors and never
// reaches the stored ratings.
//
// # Example
//
//	learner, err := profile.NewKMeans(profile.KMeansConfig{K: 3}, profile.DefaultSimilarityConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	profiles, err := learner.Learn(users)
package profile
