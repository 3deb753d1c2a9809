// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package network

import "github.com/tomtom215/tastenet/internal/errs"

// Scale is the inclusive integer range of valid star ratings.
type Scale struct {
	Min int `json:"min" koanf:"min"`
	Max int `json:"max" koanf:"max"`
}

// DefaultScale returns the 1..5 star scale.
func DefaultScale() Scale {
	return Scale{Min: 1, Max: 5}
}

// Validate checks that the scale is non-empty and does not include 0,
// which is reserved as the unrated placeholder.
func (s Scale) Validate() error {
	if s.Min < 1 {
		return errs.Config("rating scale", errs.ErrInvalidRating, "min must be at least 1, got %d", s.Min)
	}
	if s.Min >= s.Max {
		return errs.Config("rating scale", errs.ErrInvalidBounds, "min %d must be below max %d", s.Min, s.Max)
	}
	return nil
}

// Contains reports whether stars lies within the scale.
func (s Scale) Contains(stars int) bool {
	return stars >= s.Min && stars <= s.Max
}

// Midpoint returns the centre of the scale.
func (s Scale) Midpoint() float64 {
	return float64(s.Min+s.Max) / 2
}

// Steps returns every star value of the scale in ascending order.
func (s Scale) Steps() []int {
	if s.Max < s.Min {
		return nil
	}
	out := make([]int, 0, s.Max-s.Min+1)
	for v := s.Min; v <= s.Max; v++ {
		out = append(out, v)
	}
	return out
}
