// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/tastenet/internal/errs"
)

func TestRecordLearn(t *testing.T) {
	before := testutil.ToFloat64(ProfilesLearned.WithLabelValues("test-learner"))
	RecordLearn("test-learner", 3, nil)
	after := testutil.ToFloat64(ProfilesLearned.WithLabelValues("test-learner"))

	if after-before != 3 {
		t.Errorf("profiles learned delta = %v, want 3", after-before)
	}

	errBefore := testutil.ToFloat64(LearnErrors.WithLabelValues("test-learner", "config"))
	RecordLearn("test-learner", 0, errs.Config("kmeans", nil, "k is required"))
	errAfter := testutil.ToFloat64(LearnErrors.WithLabelValues("test-learner", "config"))

	if errAfter-errBefore != 1 {
		t.Errorf("learn errors delta = %v, want 1", errAfter-errBefore)
	}
}

func TestRecordRecommendation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind string
	}{
		{"success", nil, ""},
		{"precondition", errs.Precondition("greedy", errs.ErrFullyRated, "no target"), "precondition"},
		{"internal", errs.Internal("probabilistic", errs.ErrDistributionExhausted, "u=1"), "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				before := testutil.ToFloat64(Recommendations.WithLabelValues("test-alg"))
				RecordRecommendation("test-alg", nil)
				if got := testutil.ToFloat64(Recommendations.WithLabelValues("test-alg")) - before; got != 1 {
					t.Errorf("recommendations delta = %v, want 1", got)
				}
				return
			}
			before := testutil.ToFloat64(RecommendationErrors.WithLabelValues("test-alg", tt.kind))
			RecordRecommendation("test-alg", tt.err)
			if got := testutil.ToFloat64(RecommendationErrors.WithLabelValues("test-alg", tt.kind)) - before; got != 1 {
				t.Errorf("errors{kind=%s} delta = %v, want 1", tt.kind, got)
			}
		})
	}
}

func TestSummaryFrom(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tastenet_test_total",
		Help: "test counter",
	}, []string{"algorithm"})
	other := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "unrelated_total",
		Help: "ignored",
	})
	hist := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "tastenet_test_rounds",
		Help: "test histogram",
	})
	reg.MustRegister(counter, other, hist)

	counter.WithLabelValues("greedy").Add(2)
	other.Inc()
	hist.Observe(1)
	hist.Observe(4)

	samples, err := SummaryFrom(reg)
	if err != nil {
		t.Fatalf("SummaryFrom() error = %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("len(SummaryFrom()) = %d, want 2: %+v", len(samples), samples)
	}

	rounds, total := samples[0], samples[1]
	if rounds.Name != "tastenet_test_rounds" || rounds.Value != 2 {
		t.Errorf("histogram sample = %+v, want count 2", rounds)
	}
	if total.Labels != "algorithm=greedy" || total.Value != 2 {
		t.Errorf("counter sample = %+v, want algorithm=greedy 2", total)
	}
}

func TestMetricLint(t *testing.T) {
	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Fatalf("GatherAndLint() error = %v", err)
	}
	for _, p := range problems {
		t.Errorf("lint %s: %s", p.Metric, p.Text)
	}
}
