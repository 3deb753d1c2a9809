// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package metrics

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	"github.com/tomtom215/tastenet/internal/errs"
)

// Prefix is shared by every Tastenet metric name.
const Prefix = "tastenet_"

var (
	// Profile learning
	ProfilesLearned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tastenet_profiles_learned_total",
			Help: "Total number of similarity profiles produced by a learner",
		},
		[]string{"learner"},
	)

	LearnErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tastenet_learn_errors_total",
			Help: "Total number of failed learning calls",
		},
		[]string{"learner", "kind"},
	)

	KMeansRounds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tastenet_kmeans_rounds",
			Help:    "Assign/update rounds needed for k-means to converge",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 34, 55},
		},
	)

	// Recommendation
	Recommendations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tastenet_recommendations_total",
			Help: "Total number of items recommended",
		},
		[]string{"algorithm"},
	)

	RecommendationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tastenet_recommendation_errors_total",
			Help: "Total number of failed recommendation calls",
		},
		[]string{"algorithm", "kind"},
	)

	UniformFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tastenet_uniform_fallbacks_total",
			Help: "Probabilistic draws that fell back to a uniform distribution",
		},
	)

	// Sessions
	SessionSteps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tastenet_session_steps_total",
			Help: "Total recommend-then-rate steps performed by sessions",
		},
	)

	SessionsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tastenet_sessions_completed_total",
			Help: "Sessions that rated every item",
		},
	)
)

// RecordLearn records the outcome of a learning call.
func RecordLearn(learner string, profiles int, err error) {
	if err != nil {
		LearnErrors.WithLabelValues(learner, errs.KindOf(err).String()).Inc()
		return
	}
	ProfilesLearned.WithLabelValues(learner).Add(float64(profiles))
}

// RecordRecommendation records the outcome of a recommendation call.
func RecordRecommendation(algorithm string, err error) {
	if err != nil {
		RecommendationErrors.WithLabelValues(algorithm, errs.KindOf(err).String()).Inc()
		return
	}
	Recommendations.WithLabelValues(algorithm).Inc()
}

// Sample is a single gathered metric value.
type Sample struct {
	Name   string
	Labels string
	Value  float64
}

// Summary gathers every Tastenet metric from the default registry.
// Counters report their value and histograms their sample count.
func Summary() ([]Sample, error) {
	return SummaryFrom(prometheus.DefaultGatherer)
}

// SummaryFrom gathers Tastenet metrics from g.
func SummaryFrom(g prometheus.Gatherer) ([]Sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	var out []Sample
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), Prefix) {
			continue
		}
		for _, m := range mf.GetMetric() {
			out = append(out, Sample{
				Name:   mf.GetName(),
				Labels: formatLabels(m.GetLabel()),
				Value:  sampleValue(mf.GetType(), m),
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Labels < out[j].Labels
	})
	return out, nil
}

func sampleValue(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	case dto.MetricType_HISTOGRAM:
		return float64(m.GetHistogram().GetSampleCount())
	default:
		return m.GetUntyped().GetValue()
	}
}

func formatLabels(pairs []*dto.LabelPair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.GetName()+"="+p.GetValue())
	}
	return strings.Join(parts, ",")
}
