// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package recommend

import (
	"context"

	"github.com/tomtom215/tastenet/internal/network"
)

// Algorithm picks the next item to present to a user.
//
// Recommend must not mutate the network. It returns a precondition error
// wrapping errs.ErrFullyRated when no item is left to recommend.
type Algorithm interface {
	// Name returns the algorithm identifier (e.g., "greedy", "probabilistic").
	Name() string

	// Recommend returns the index of the next item.
	Recommend(rn *network.RatedNetwork) (int, error)
}

// Rater supplies the user's rating for a recommended item.
type Rater interface {
	Rate(ctx context.Context, item int) (int, error)
}

// RaterFunc adapts a function to the Rater interface.
type RaterFunc func(ctx context.Context, item int) (int, error)

// Rate calls f.
func (f RaterFunc) Rate(ctx context.Context, item int) (int, error) {
	return f(ctx, item)
}
