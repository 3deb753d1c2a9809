// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package network

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tastenet/internal/errs"
)

// Rating is one entry of a rating vector: either a star value or unrated.
// The zero value is unrated. Stars is meaningless when Rated is false.
type Rating struct {
	Stars int
	Rated bool
}

// Unrated is the explicit "not yet rated" marker.
var Unrated = Rating{}

// Stars returns a rated entry with the given star value.
func Stars(n int) Rating {
	return Rating{Stars: n, Rated: true}
}

// Value returns the numeric value of the rating, or placeholder when unrated.
func (r Rating) Value(placeholder float64) float64 {
	if !r.Rated {
		return placeholder
	}
	return float64(r.Stars)
}

// String returns the star value, or "-" for unrated entries.
func (r Rating) String() string {
	if !r.Rated {
		return UnratedLabel
	}
	return strconv.Itoa(r.Stars)
}

// UnratedLabel is how unrated entries are printed.
const UnratedLabel = "-"

// MarshalJSON encodes unrated entries as null and rated entries as integers.
func (r Rating) MarshalJSON() ([]byte, error) {
	if !r.Rated {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(r.Stars)), nil
}

// UnmarshalJSON decodes null as unrated and an integer as a star value.
func (r *Rating) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*r = Unrated
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode rating %s: %w", data, err)
	}
	if n == 0 {
		// 0 is reserved as the numeric placeholder and never a stored rating.
		return errs.Precondition("decode rating", errs.ErrInvalidRating, "0 is not a rating, use null for unrated")
	}
	*r = Stars(n)
	return nil
}

// FromValues builds a rating vector where every value equal to unrated maps
// to the Unrated marker. Convenient for fixtures written as numeric rows.
func FromValues(values []int, unrated int) []Rating {
	out := make([]Rating, len(values))
	for i, v := range values {
		if v != unrated {
			out[i] = Stars(v)
		}
	}
	return out
}

// Values returns the numeric view of ratings with unrated entries replaced
// by placeholder.
func Values(ratings []Rating, placeholder float64) []float64 {
	out := make([]float64, len(ratings))
	for i, r := range ratings {
		out[i] = r.Value(placeholder)
	}
	return out
}
