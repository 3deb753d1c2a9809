// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/tastenet/internal/errs"
	"github.com/tomtom215/tastenet/internal/network"
)

// firstUnrated recommends the lowest unrated index.
type firstUnrated struct {
	calls int
}

func (f *firstUnrated) Name() string { return "first" }

func (f *firstUnrated) Recommend(rn *network.RatedNetwork) (int, error) {
	f.calls++
	unrated := rn.UnratedIndices()
	if len(unrated) == 0 {
		return 0, errs.Precondition("first", errs.ErrFullyRated, "")
	}
	return unrated[0], nil
}

// constantRater rates every item with the same stars.
func constantRater(stars int) Rater {
	return RaterFunc(func(_ context.Context, _ int) (int, error) {
		return stars, nil
	})
}

func TestNewSession(t *testing.T) {
	rn := newRated(t, pairNetwork, []int{5, 0, 0})

	if _, err := NewSession(nil, &firstUnrated{}, zerolog.Nop()); !errs.IsPrecondition(err) {
		t.Errorf("NewSession(nil network) error = %v, want precondition", err)
	}
	if _, err := NewSession(rn, nil, zerolog.Nop()); !errs.IsConfig(err) {
		t.Errorf("NewSession(nil algorithm) error = %v, want config", err)
	}

	s, err := NewSession(rn, &firstUnrated{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if _, err := uuid.Parse(s.ID()); err != nil {
		t.Errorf("ID() = %q is not a UUID: %v", s.ID(), err)
	}
	if s.Network() != rn {
		t.Error("Network() does not return the session's network")
	}
}

func TestSession_Run(t *testing.T) {
	rn := newRated(t, pairNetwork, []int{5, 0, 0})
	alg := &firstUnrated{}

	s, err := NewSession(rn, alg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	order, err := s.Run(context.Background(), constantRater(3))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []int{1, 2}
	if len(order) != len(want) {
		t.Fatalf("Run() = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Run()[%d] = %d, want %d", i, order[i], want[i])
		}
	}
	if alg.calls != 2 {
		t.Errorf("Recommend() calls = %d, want 2", alg.calls)
	}
	if rn.HasUnrated() || !rn.HasAnyRated() {
		t.Errorf("HasUnrated() = %v, HasAnyRated() = %v, want false, true", rn.HasUnrated(), rn.HasAnyRated())
	}

	t.Run("next after completion", func(t *testing.T) {
		_, err := s.Next()
		if !errs.IsPrecondition(err) || !errors.Is(err, errs.ErrFullyRated) {
			t.Errorf("Next() error = %v, want precondition ErrFullyRated", err)
		}
	})
}

func TestSession_RunErrors(t *testing.T) {
	t.Run("canceled context", func(t *testing.T) {
		s, err := NewSession(newRated(t, pairNetwork, []int{0, 0, 0}), &firstUnrated{}, zerolog.Nop())
		if err != nil {
			t.Fatalf("NewSession() error = %v", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		rater := RaterFunc(func(_ context.Context, item int) (int, error) {
			if item == 1 {
				cancel()
			}
			return 4, nil
		})

		order, err := s.Run(ctx, rater)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
		if len(order) != 2 {
			t.Errorf("Run() visited %v, want two items before cancellation", order)
		}
	})

	t.Run("rater error", func(t *testing.T) {
		s, err := NewSession(newRated(t, pairNetwork, []int{0, 0, 0}), &firstUnrated{}, zerolog.Nop())
		if err != nil {
			t.Fatalf("NewSession() error = %v", err)
		}

		boom := errors.New("boom")
		_, err = s.Run(context.Background(), RaterFunc(func(context.Context, int) (int, error) {
			return 0, boom
		}))
		if !errors.Is(err, boom) {
			t.Errorf("Run() error = %v, want %v", err, boom)
		}
	})

	t.Run("invalid rating", func(t *testing.T) {
		s, err := NewSession(newRated(t, pairNetwork, []int{0, 0, 0}), &firstUnrated{}, zerolog.Nop())
		if err != nil {
			t.Fatalf("NewSession() error = %v", err)
		}

		_, err = s.Run(context.Background(), constantRater(0))
		if !errors.Is(err, errs.ErrInvalidRating) {
			t.Errorf("Run() error = %v, want ErrInvalidRating", err)
		}
		if len(s.Visited()) != 0 {
			t.Errorf("Visited() = %v, want empty", s.Visited())
		}
	})

	t.Run("nil rater", func(t *testing.T) {
		s, err := NewSession(newRated(t, pairNetwork, []int{0, 0, 0}), &firstUnrated{}, zerolog.Nop())
		if err != nil {
			t.Fatalf("NewSession() error = %v", err)
		}
		if _, err := s.Run(context.Background(), nil); !errs.IsConfig(err) {
			t.Errorf("Run(nil) error = %v, want config", err)
		}
	})
}

func TestSession_Rate(t *testing.T) {
	s, err := NewSession(newRated(t, pairNetwork, []int{0, 0, 0}), &firstUnrated{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	if err := s.Rate(3, 4); !errors.Is(err, errs.ErrIndexOutOfRange) {
		t.Errorf("Rate(3, 4) error = %v, want ErrIndexOutOfRange", err)
	}
	if err := s.Rate(2, 4); err != nil {
		t.Fatalf("Rate(2, 4) error = %v", err)
	}

	visited := s.Visited()
	visited[0] = 99
	if s.Visited()[0] != 2 {
		t.Error("Visited() exposes internal state")
	}
}
