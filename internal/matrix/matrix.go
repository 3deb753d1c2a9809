// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

// Package matrix provides the dense vector and matrix helpers used by the
// profile learners and recommendation algorithms.
//
// Matrices are plain row-major [][]float64 values so they can be built with
// literals in tests and fixtures. The heavy lifting is delegated to gonum.
// None of the helpers hold state.
package matrix

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/tomtom215/tastenet/internal/errs"
)

// IsRectangular reports whether every row has the same length as row 0.
// An empty matrix is rectangular.
func IsRectangular(m [][]float64) bool {
	if len(m) == 0 {
		return true
	}
	width := len(m[0])
	for _, row := range m[1:] {
		if len(row) != width {
			return false
		}
	}
	return true
}

// Dims returns the row and column count of a rectangular matrix.
func Dims(m [][]float64) (rows, cols int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

// VectorDistance returns the Euclidean distance between a and b.
func VectorDistance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, errs.Precondition("vector distance", errs.ErrDimensionMismatch, "len %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	return floats.Distance(a, b, 2), nil
}

// VectorMean returns the element-wise mean of vectors.
//
// An empty collection has no mean; it is reported as an internal error
// wrapping errs.ErrEmptyCluster because the only caller that can reach it
// is a clustering round that left a cluster without members.
func VectorMean(vectors [][]float64) ([]float64, error) {
	if len(vectors) == 0 {
		return nil, errs.Internal("vector mean", errs.ErrEmptyCluster, "no vectors to average")
	}
	if !IsRectangular(vectors) {
		return nil, errs.Precondition("vector mean", errs.ErrRaggedMatrix, "vectors differ in length")
	}

	mean := make([]float64, len(vectors[0]))
	for _, v := range vectors {
		floats.Add(mean, v)
	}
	floats.Scale(1/float64(len(vectors)), mean)
	return mean, nil
}

// MatrixVectorProduct returns m·v.
func MatrixVectorProduct(m [][]float64, v []float64) ([]float64, error) {
	if !IsRectangular(m) {
		return nil, errs.Precondition("matrix vector product", errs.ErrRaggedMatrix, "ragged matrix")
	}
	rows, cols := Dims(m)
	if rows == 0 {
		return []float64{}, nil
	}
	if cols != len(v) {
		return nil, errs.Precondition("matrix vector product", errs.ErrDimensionMismatch,
			"matrix has %d columns, vector has %d entries", cols, len(v))
	}
	if cols == 0 {
		// gonum rejects zero-length dimensions
		return make([]float64, rows), nil
	}

	dense := mat.NewDense(rows, cols, Flatten(m))
	x := mat.NewVecDense(cols, Clone1D(v))
	out := mat.NewVecDense(rows, nil)
	out.MulVec(dense, x)
	return out.RawVector().Data, nil
}

// Equal reports whether m1 and m2 have identical dimensions and bit-equal
// elements. No tolerance is applied.
func Equal(m1, m2 [][]float64) bool {
	if len(m1) != len(m2) {
		return false
	}
	for i := range m1 {
		if !floats.Equal(m1[i], m2[i]) {
			return false
		}
	}
	return true
}

// Extremum returns the element of m that wins every comparison under
// better. better(a, b) must report whether a is strictly more extreme than b;
// the first extreme element in row-major order is kept on ties.
func Extremum(m [][]float64, better func(a, b float64) bool) (float64, error) {
	var (
		best  float64
		found bool
	)
	for _, row := range m {
		for _, v := range row {
			if !found || better(v, best) {
				best = v
				found = true
			}
		}
	}
	if !found {
		return 0, errs.Precondition("extremum", errs.ErrEmptyInput, "matrix has no elements")
	}
	return best, nil
}

// Min returns the smallest element of m.
func Min(m [][]float64) (float64, error) {
	return Extremum(m, func(a, b float64) bool { return a < b })
}

// Max returns the largest element of m.
func Max(m [][]float64) (float64, error) {
	return Extremum(m, func(a, b float64) bool { return a > b })
}

// Clone returns a deep copy of m.
func Clone(m [][]float64) [][]float64 {
	if m == nil {
		return nil
	}
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = Clone1D(row)
	}
	return out
}

// Clone1D returns a copy of v.
func Clone1D(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

// Flatten returns the row-major backing data of a rectangular matrix.
func Flatten(m [][]float64) []float64 {
	rows, cols := Dims(m)
	data := make([]float64, 0, rows*cols)
	for _, row := range m {
		data = append(data, row...)
	}
	return data
}

// Square returns an n×n zero matrix.
func Square(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	return m
}
