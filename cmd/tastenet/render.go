// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-json"

	"github.com/tomtom215/tastenet/internal/metrics"
	"github.com/tomtom215/tastenet/internal/network"
	"github.com/tomtom215/tastenet/internal/profile"
	"github.com/tomtom215/tastenet/internal/simulate"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func writeProfiles(w io.Writer, learner string, profiles []profile.Profile) error {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%d profiles learned by %s", len(profiles), learner)))

	for i, p := range profiles {
		rn, err := p.Attach(make([]network.Rating, len(p.Mean)))
		if err != nil {
			return err
		}

		mean := newTable("item", "mean")
		for item, v := range p.Mean {
			mean.Row(strconv.Itoa(item), formatFloat(v))
		}

		fmt.Fprintf(w, "\nProfile %d (%d members)\n", i, len(p.Members))
		fmt.Fprintln(w, mean.Render())
		fmt.Fprintln(w, rn.Render())
	}
	return nil
}

func writeReport(w io.Writer, r *simulate.Report, samples []metrics.Sample) error {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf(
		"Simulation %s: %s learner, %s algorithm", r.CorrelationID, r.Learner, r.Algorithm)))

	sessions := newTable("session", "user", "profile", "revealed", "order", "hits")
	for _, s := range r.Sessions {
		sessions.Row(
			shortID(s.SessionID),
			shortID(s.UserID),
			strconv.Itoa(s.Profile),
			joinInts(s.Revealed),
			joinInts(s.Order),
			strconv.Itoa(s.Hits),
		)
	}
	fmt.Fprintln(w, sessions.Render())
	fmt.Fprintf(w, "profiles: %d  sessions: %d  hit rate: %.3f\n\n", len(r.Profiles), len(r.Sessions), r.HitRate())

	stats := newTable("metric", "labels", "value")
	for _, s := range samples {
		stats.Row(s.Name, s.Labels, formatFloat(s.Value))
	}
	fmt.Fprintln(w, stats.Render())
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// shortID trims UUIDs to their first group for table display.
func shortID(id string) string {
	if head, _, ok := strings.Cut(id, "-"); ok {
		return head
	}
	return id
}
