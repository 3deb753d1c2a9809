// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package recommend

import (
	"gonum.org/v1/gonum/floats"

	"github.com/tomtom215/tastenet/internal/errs"
	"github.com/tomtom215/tastenet/internal/matrix"
	"github.com/tomtom215/tastenet/internal/network"
)

// Vector returns the per-item recommendation scores for rn.
func Vector(rn *network.RatedNetwork, cfg Config) ([]float64, error) {
	if rn == nil {
		return nil, errs.Precondition("recommendation vector", errs.ErrEmptyInput, "nil rated network")
	}

	shift := (rn.Upper() - rn.Lower()) / 2
	similarity := rn.Network()
	for _, row := range similarity {
		floats.AddConst(-shift, row)
	}

	ratings := rn.Values(cfg.UnratedStars)
	floats.AddConst(-cfg.RescaleFactor, ratings)

	return matrix.MatrixVectorProduct(similarity, ratings)
}
