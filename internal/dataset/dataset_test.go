// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package dataset

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/tastenet/internal/errs"
	"github.com/tomtom215/tastenet/internal/matrix"
	"github.com/tomtom215/tastenet/internal/network"
)

func TestRandomNetwork(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m, err := RandomNetwork(rng, 6, -1, 2)
	if err != nil {
		t.Fatalf("RandomNetwork() error = %v", err)
	}

	if r, c := matrix.Dims(m); r != 6 || c != 6 {
		t.Fatalf("Dims() = %d×%d, want 6×6", r, c)
	}
	for i := range m {
		if m[i][i] != 0 {
			t.Errorf("m[%d][%d] = %v, want 0", i, i, m[i][i])
		}
		for j := range m {
			if m[i][j] != m[j][i] {
				t.Errorf("m[%d][%d] != m[%d][%d]", i, j, j, i)
			}
			if i != j && (m[i][j] < -1 || m[i][j] >= 2) {
				t.Errorf("m[%d][%d] = %v, want in [-1, 2)", i, j, m[i][j])
			}
		}
	}
}

func TestRandomNetwork_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tests := []struct {
		name         string
		n            int
		lower, upper float64
		want         error
	}{
		{"no nodes", 0, 0, 1, errs.ErrEmptyInput},
		{"equal bounds", 3, 1, 1, errs.ErrInvalidBounds},
		{"inverted bounds", 3, 2, 1, errs.ErrInvalidBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RandomNetwork(rng, tt.n, tt.lower, tt.upper)
			if !errs.IsConfig(err) || !errors.Is(err, tt.want) {
				t.Errorf("RandomNetwork() error = %v, want config %v", err, tt.want)
			}
		})
	}
}

func TestRandomUsers(t *testing.T) {
	scale := network.DefaultScale()

	tests := []struct {
		name          string
		ratedFraction float64
		check         func(t *testing.T, r network.Rating)
	}{
		{"none rated", 0, func(t *testing.T, r network.Rating) {
			if r.Rated {
				t.Errorf("rating = %v, want unrated", r)
			}
		}},
		{"all rated", 1, func(t *testing.T, r network.Rating) {
			if !r.Rated || !scale.Contains(r.Stars) {
				t.Errorf("rating = %v, want a star in %d..%d", r, scale.Min, scale.Max)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := RandomUsers(rand.New(rand.NewSource(3)), 4, 5, scale, tt.ratedFraction)
			if err != nil {
				t.Fatalf("RandomUsers() error = %v", err)
			}
			if len(users) != 5 {
				t.Fatalf("len(RandomUsers()) = %d, want 5", len(users))
			}
			for _, u := range users {
				if _, err := uuid.Parse(u.ID); err != nil {
					t.Errorf("ID %q is not a UUID: %v", u.ID, err)
				}
				if len(u.Ratings) != 4 {
					t.Fatalf("len(Ratings) = %d, want 4", len(u.Ratings))
				}
				for _, r := range u.Ratings {
					tt.check(t, r)
				}
			}
		})
	}

	t.Run("invalid fraction", func(t *testing.T) {
		_, err := RandomUsers(rand.New(rand.NewSource(3)), 4, 5, scale, 1.5)
		if !errs.IsConfig(err) {
			t.Errorf("RandomUsers() error = %v, want config", err)
		}
	})

	t.Run("invalid scale", func(t *testing.T) {
		_, err := RandomUsers(rand.New(rand.NewSource(3)), 4, 5, network.Scale{Min: 3, Max: 3}, 0.5)
		if !errs.IsConfig(err) {
			t.Errorf("RandomUsers() error = %v, want config", err)
		}
	})
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := DefaultGenerateConfig()
	a, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	b, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if !matrix.Equal(a.Network, b.Network) {
		t.Error("networks differ for the same seed")
	}
	for i := range a.Users {
		if a.Users[i].ID != b.Users[i].ID {
			t.Errorf("user %d ID %s != %s", i, a.Users[i].ID, b.Users[i].ID)
		}
	}
	if err := a.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if a.Size() != cfg.Nodes {
		t.Errorf("Size() = %d, want %d", a.Size(), cfg.Nodes)
	}
}

func TestSaveLoad(t *testing.T) {
	cfg := DefaultGenerateConfig()
	cfg.Nodes = 4
	cfg.Users = 3
	d, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	d.Users[0].Ratings[0] = network.Unrated

	path := filepath.Join(t.TempDir(), "dataset.json")
	if err := Save(path, d); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(raw), "null") {
		t.Error("saved dataset has no null rating")
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !matrix.Equal(got.Network, d.Network) {
		t.Error("loaded network differs from saved network")
	}
	if got.Scale != d.Scale || got.Lower != d.Lower || got.Upper != d.Upper {
		t.Errorf("scale/bounds = %v [%v, %v], want %v [%v, %v]",
			got.Scale, got.Lower, got.Upper, d.Scale, d.Lower, d.Upper)
	}
	for i, u := range d.Users {
		if got.Users[i].ID != u.ID {
			t.Errorf("user %d ID = %s, want %s", i, got.Users[i].ID, u.ID)
		}
		for j, r := range u.Ratings {
			if got.Users[i].Ratings[j] != r {
				t.Errorf("user %d rating %d = %v, want %v", i, j, got.Users[i].Ratings[j], r)
			}
		}
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		isPre   bool
	}{
		{"malformed json", `{"network": [`, false},
		{"ragged network", `{"network": [[0, 1], [1]], "users": [{"id": "a", "ratings": [1, 2]}]}`, true},
		{"rating count mismatch", `{"network": [[0, 1], [1, 0]], "users": [{"id": "a", "ratings": [1]}]}`, true},
		{"rating outside scale", `{"network": [[0, 1], [1, 0]], "users": [{"id": "a", "ratings": [9, null]}]}`, true},
		{"no users", `{"network": [[0, 1], [1, 0]], "users": []}`, true},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatalf("Load() case %d error = nil, want error", i)
			}
			if tt.isPre && !errs.IsPrecondition(err) {
				t.Errorf("Load() error = %v, want precondition", err)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
}
