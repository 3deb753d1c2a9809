// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package profile

import (
	"math"

	"github.com/tomtom215/tastenet/internal/errs"
	"github.com/tomtom215/tastenet/internal/matrix"
	"github.com/tomtom215/tastenet/internal/network"
)

// DefaultSteepness is the decay rate of the default similarity function.
const DefaultSteepness = 0.1

// cleanPlaceholder replaces unrated entries while learning.
const cleanPlaceholder = 0

// SimilarityFunc maps two mean ratings to a similarity in [0, 1].
type SimilarityFunc func(r1, r2 float64) float64

// Exponential returns exp(-steepness * (r1 - r2)^2).
func Exponential(steepness float64) SimilarityFunc {
	return func(r1, r2 float64) float64 {
		d := r1 - r2
		return math.Exp(-steepness * d * d)
	}
}

// SimilarityConfig selects the similarity function used to turn a mean
// rating vector into a profile.
type SimilarityConfig struct {
	// Steepness is used by the default exponential function.
	// Ignored when Func is set.
	Steepness float64

	// Func overrides the exponential function.
	Func SimilarityFunc

	// Scale is the rating range Func is validated against.
	Scale network.Scale
}

// DefaultSimilarityConfig returns the exponential function over a 1..5 scale.
func DefaultSimilarityConfig() SimilarityConfig {
	return SimilarityConfig{
		Steepness: DefaultSteepness,
		Scale:     network.DefaultScale(),
	}
}

// Build validates the configuration and returns the similarity function.
func (c SimilarityConfig) Build() (SimilarityFunc, error) {
	scale := c.Scale
	if scale == (network.Scale{}) {
		scale = network.DefaultScale()
	}
	if err := scale.Validate(); err != nil {
		return nil, err
	}

	fn := c.Func
	if fn == nil {
		steepness := c.Steepness
		if steepness == 0 {
			steepness = DefaultSteepness
		}
		fn = Exponential(steepness)
	}

	if err := ValidateSimilarity(fn, scale); err != nil {
		return nil, err
	}
	return fn, nil
}

// ValidateSimilarity checks fn over every integer pair of the scale.
// A value outside [0, 1] is a configuration error.
func ValidateSimilarity(fn SimilarityFunc, scale network.Scale) error {
	if fn == nil {
		return errs.Config("validate similarity", nil, "similarity function is required")
	}
	steps := scale.Steps()
	for _, r1 := range steps {
		for _, r2 := range steps {
			v := fn(float64(r1), float64(r2))
			if math.IsNaN(v) || v < 0 || v > 1 {
				return errs.Config("validate similarity", nil,
					"similarity(%d, %d) = %v is outside [0, 1]", r1, r2, v)
			}
		}
	}
	return nil
}

// SimilarityMatrix builds the symmetric N×N network for a mean rating vector.
// The diagonal stays 0.
func SimilarityMatrix(mean []float64, fn SimilarityFunc) [][]float64 {
	n := len(mean)
	m := matrix.Square(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := fn(mean[i], mean[j])
			m[i][j] = v
			m[j][i] = v
		}
	}
	return m
}

// cleanRatings returns each user's ratings as numbers with unrated entries
// set to the placeholder. Every user must share the same dimension.
func cleanRatings(op string, users []*network.RatedNetwork) ([][]float64, error) {
	if len(users) == 0 {
		return nil, errs.Precondition(op, errs.ErrEmptyInput, "no users to learn from")
	}

	n := -1
	vectors := make([][]float64, len(users))
	for i, u := range users {
		if u == nil {
			return nil, errs.Precondition(op, errs.ErrEmptyInput, "user %d is nil", i)
		}
		if n < 0 {
			n = u.Size()
		}
		if u.Size() != n {
			return nil, errs.Precondition(op, errs.ErrDimensionMismatch,
				"user %d has %d items, want %d", i, u.Size(), n)
		}
		vectors[i] = u.Values(cleanPlaceholder)
	}
	return vectors, nil
}
