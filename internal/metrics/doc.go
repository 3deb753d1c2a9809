// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

/*
Package metrics provides Prometheus instrumentation for Tastenet.

Metrics are registered on the default registry with promauto. There is no
HTTP exposition; the CLI prints a Summary at the end of a run.

# Available Metrics

Learning:
  - tastenet_profiles_learned_total: profiles produced (counter)
    Labels: learner
  - tastenet_learn_errors_total: failed learning calls (counter)
    Labels: learner, kind
  - tastenet_kmeans_rounds: rounds to convergence (histogram)

Recommendation:
  - tastenet_recommendations_total: items recommended (counter)
    Labels: algorithm
  - tastenet_recommendation_errors_total: failed calls (counter)
    Labels: algorithm, kind
  - tastenet_uniform_fallbacks_total: uniform draws (counter)

Sessions:
  - tastenet_session_steps_total (counter)
  - tastenet_sessions_completed_total (counter)
*/
package metrics
