// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package simulate

import (
	"context"
	"math"

	"github.com/tomtom215/tastenet/internal/errs"
	"github.com/tomtom215/tastenet/internal/network"
)

// Oracle answers rating requests from a user's known ratings. Items the
// user never rated get the neutral answer, the scale midpoint rounded to
// the nearest star.
type Oracle struct {
	ratings []network.Rating
	neutral int
}

// NewOracle creates an Oracle over ratings.
func NewOracle(ratings []network.Rating, scale network.Scale) (*Oracle, error) {
	if err := scale.Validate(); err != nil {
		return nil, err
	}
	return &Oracle{
		ratings: append([]network.Rating(nil), ratings...),
		neutral: int(math.Round(scale.Midpoint())),
	}, nil
}

// Rate implements recommend.Rater.
func (o *Oracle) Rate(ctx context.Context, item int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if item < 0 || item >= len(o.ratings) {
		return 0, errs.Precondition("oracle rate", errs.ErrIndexOutOfRange, "item %d, size %d", item, len(o.ratings))
	}
	if r := o.ratings[item]; r.Rated {
		return r.Stars, nil
	}
	return o.neutral, nil
}
