// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

// Package network holds the rated similarity network: an N×N similarity
// matrix over items paired with one user's partial rating vector.
//
// # Invariants
//
//   - the similarity matrix is rectangular and square (N×N)
//   - the rating vector has exactly N entries
//   - the declared similarity bounds satisfy lower < upper
//
// The similarity matrix is fixed at construction. Ratings change in place
// through AddRating. A RatedNetwork is not safe for concurrent writers; the
// session that owns it is its single writer.
package network

import (
	"math"

	"github.com/tomtom215/tastenet/internal/errs"
	"github.com/tomtom215/tastenet/internal/matrix"
)

// RatedNetwork is a similarity network plus one user's ratings.
type RatedNetwork struct {
	similarity [][]float64
	ratings    []Rating
	lower      float64
	upper      float64
	scale      *Scale
}

// Option customises New.
type Option func(*options)

type options struct {
	lower *float64
	upper *float64
	scale *Scale
}

// WithLower declares the lower bound of the similarity values.
func WithLower(lower float64) Option {
	return func(o *options) { o.lower = &lower }
}

// WithUpper declares the upper bound of the similarity values.
func WithUpper(upper float64) Option {
	return func(o *options) { o.upper = &upper }
}

// WithBounds declares both similarity bounds.
func WithBounds(lower, upper float64) Option {
	return func(o *options) {
		o.lower = &lower
		o.upper = &upper
	}
}

// WithScale makes the network reject ratings outside scale.
func WithScale(scale Scale) Option {
	return func(o *options) { o.scale = &scale }
}

// New validates and builds a RatedNetwork. Both inputs are copied.
//
// Bounds that are not declared are derived from the matrix as
// floor(min) and ceil(max).
func New(similarity [][]float64, ratings []Rating, opts ...Option) (*RatedNetwork, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if err := checkShape(similarity, len(ratings)); err != nil {
		return nil, err
	}

	if o.scale != nil {
		if err := o.scale.Validate(); err != nil {
			return nil, err
		}
	}
	for i, r := range ratings {
		if err := checkRating(r, o.scale); err != nil {
			return nil, errs.Precondition("new rated network", err, "rating %d", i)
		}
	}

	lower, upper, err := resolveBounds(similarity, o.lower, o.upper)
	if err != nil {
		return nil, err
	}

	return &RatedNetwork{
		similarity: matrix.Clone(similarity),
		ratings:    append([]Rating(nil), ratings...),
		lower:      lower,
		upper:      upper,
		scale:      o.scale,
	}, nil
}

func checkShape(similarity [][]float64, n int) error {
	if !matrix.IsRectangular(similarity) {
		return errs.Precondition("new rated network", errs.ErrRaggedMatrix, "similarity network")
	}
	rows, cols := matrix.Dims(similarity)
	if rows == 0 {
		return errs.Precondition("new rated network", errs.ErrEmptyInput, "similarity network has no items")
	}
	if rows != cols {
		return errs.Precondition("new rated network", errs.ErrDimensionMismatch,
			"similarity network is %d×%d, want square", rows, cols)
	}
	if n != rows {
		return errs.Precondition("new rated network", errs.ErrDimensionMismatch,
			"%d ratings for %d items", n, rows)
	}
	return nil
}

func checkRating(r Rating, scale *Scale) error {
	if !r.Rated {
		return nil
	}
	if r.Stars == 0 {
		return errs.Precondition("", errs.ErrInvalidRating, "0 is reserved for unrated")
	}
	if scale != nil && !scale.Contains(r.Stars) {
		return errs.Precondition("", errs.ErrInvalidRating, "%d outside %d..%d", r.Stars, scale.Min, scale.Max)
	}
	return nil
}

func resolveBounds(similarity [][]float64, lower, upper *float64) (float64, float64, error) {
	var lo, hi float64
	if lower != nil {
		lo = *lower
	} else {
		v, err := matrix.Min(similarity)
		if err != nil {
			return 0, 0, err
		}
		lo = math.Floor(v)
	}
	if upper != nil {
		hi = *upper
	} else {
		v, err := matrix.Max(similarity)
		if err != nil {
			return 0, 0, err
		}
		hi = math.Ceil(v)
	}
	if !(lo < hi) {
		return 0, 0, errs.Precondition("new rated network", errs.ErrInvalidBounds, "lower %g, upper %g", lo, hi)
	}
	return lo, hi, nil
}

// Size returns N, the number of items.
func (n *RatedNetwork) Size() int {
	return len(n.ratings)
}

// Lower returns the declared lower similarity bound.
func (n *RatedNetwork) Lower() float64 {
	return n.lower
}

// Upper returns the declared upper similarity bound.
func (n *RatedNetwork) Upper() float64 {
	return n.upper
}

// Network returns a copy of the similarity matrix.
func (n *RatedNetwork) Network() [][]float64 {
	return matrix.Clone(n.similarity)
}

// Ratings returns a copy of the rating vector.
func (n *RatedNetwork) Ratings() []Rating {
	return append([]Rating(nil), n.ratings...)
}

// Rating returns the rating at index.
func (n *RatedNetwork) Rating(index int) (Rating, error) {
	if err := n.checkIndex("rating", index); err != nil {
		return Unrated, err
	}
	return n.ratings[index], nil
}

// Values returns the rating vector as numbers, substituting placeholder
// for unrated entries.
func (n *RatedNetwork) Values(placeholder float64) []float64 {
	return Values(n.ratings, placeholder)
}

// HasUnrated reports whether any item is still unrated.
func (n *RatedNetwork) HasUnrated() bool {
	for _, r := range n.ratings {
		if !r.Rated {
			return true
		}
	}
	return false
}

// HasAnyRated reports whether at least one item is rated.
func (n *RatedNetwork) HasAnyRated() bool {
	for _, r := range n.ratings {
		if r.Rated {
			return true
		}
	}
	return false
}

// UnratedIndices returns the indices of unrated items in ascending order.
func (n *RatedNetwork) UnratedIndices() []int {
	return n.indices(false)
}

// RatedIndices returns the indices of rated items in ascending order.
func (n *RatedNetwork) RatedIndices() []int {
	return n.indices(true)
}

func (n *RatedNetwork) indices(rated bool) []int {
	out := make([]int, 0, len(n.ratings))
	for i, r := range n.ratings {
		if r.Rated == rated {
			out = append(out, i)
		}
	}
	return out
}

// AddRating sets the rating at index, overwriting any previous value.
func (n *RatedNetwork) AddRating(index, stars int) error {
	if err := n.checkIndex("add rating", index); err != nil {
		return err
	}
	r := Stars(stars)
	if err := checkRating(r, n.scale); err != nil {
		return errs.Precondition("add rating", err, "index %d", index)
	}
	n.ratings[index] = r
	return nil
}

// Clone returns an independent copy of the network.
func (n *RatedNetwork) Clone() *RatedNetwork {
	return &RatedNetwork{
		similarity: matrix.Clone(n.similarity),
		ratings:    n.Ratings(),
		lower:      n.lower,
		upper:      n.upper,
		scale:      n.scale,
	}
}

func (n *RatedNetwork) checkIndex(op string, index int) error {
	if index < 0 || index >= len(n.ratings) {
		return errs.Precondition(op, errs.ErrIndexOutOfRange, "index %d, size %d", index, len(n.ratings))
	}
	return nil
}
