// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

// Package dataset generates fixture networks and user populations and
// reads and writes them as JSON.
//
// A dataset file looks like:
//
//	{
//	  "scale": {"min": 1, "max": 5},
//	  "lower": 0,
//	  "upper": 1,
//	  "network": [[0, 0.4], [0.4, 0]],
//	  "users": [{"id": "…", "ratings": [5, null]}]
//	}
//
// A null rating is unrated. When lower and upper are both absent the
// bounds are derived from the network.
package dataset

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tastenet/internal/errs"
	"github.com/tomtom215/tastenet/internal/network"
)

// User is one user's identity and ratings.
type User struct {
	ID      string           `json:"id"`
	Ratings []network.Rating `json:"ratings"`
}

// Dataset is a similarity network shared by a population of users.
type Dataset struct {
	Scale   network.Scale `json:"scale"`
	Lower   float64       `json:"lower,omitempty"`
	Upper   float64       `json:"upper,omitempty"`
	Network [][]float64   `json:"network"`
	Users   []User        `json:"users"`
}

// Size returns the number of items.
func (d *Dataset) Size() int {
	return len(d.Network)
}

// RatedNetworks returns one rated network per user, in user order.
// Ratings outside the dataset scale are rejected.
func (d *Dataset) RatedNetworks() ([]*network.RatedNetwork, error) {
	if len(d.Users) == 0 {
		return nil, errs.Precondition("dataset rated networks", errs.ErrEmptyInput, "dataset has no users")
	}

	opts := []network.Option{network.WithScale(d.Scale)}
	if d.Lower != 0 || d.Upper != 0 {
		opts = append(opts, network.WithBounds(d.Lower, d.Upper))
	}

	out := make([]*network.RatedNetwork, len(d.Users))
	for i, u := range d.Users {
		rn, err := network.New(d.Network, u.Ratings, opts...)
		if err != nil {
			return nil, fmt.Errorf("user %s: %w", u.ID, err)
		}
		out[i] = rn
	}
	return out, nil
}

// Validate checks the dataset can be turned into rated networks.
func (d *Dataset) Validate() error {
	_, err := d.RatedNetworks()
	return err
}

// Load reads and validates a dataset file.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the operator
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var d Dataset
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}
	if d.Scale == (network.Scale{}) {
		d.Scale = network.DefaultScale()
	}

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset %s: %w", path, err)
	}
	return &d, nil
}

// Save writes d to path as indented JSON.
func Save(path string, d *Dataset) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}
