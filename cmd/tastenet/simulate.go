// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/tastenet/internal/logging"
	"github.com/tomtom215/tastenet/internal/metrics"
	"github.com/tomtom215/tastenet/internal/simulate"
)

func newSimulateCmd(a *app) *cobra.Command {
	var (
		datasetPath string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Learn profiles and simulate recommendation sessions",
		Long: `Learn profiles from a dataset, then replay each user as a session: a few
ratings are revealed, the nearest profile is attached, and the configured
algorithm recommends items until the user has rated everything.

Examples:
  tastenet simulate
  tastenet simulate --dataset dataset.json --json
  TASTENET_RECOMMEND_ALGORITHM=probabilistic tastenet simulate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := a.loadDataset(datasetPath)
			if err != nil {
				return err
			}

			ctx := logging.ContextWithNewCorrelationID(cmd.Context())
			report, err := simulate.Run(ctx, ds, a.cfg.SimulateConfig(), logging.Logger())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), report)
			}

			samples, err := metrics.Summary()
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), report, samples)
		},
	}
	cmd.Flags().StringVarP(&datasetPath, "dataset", "d", "", "dataset file (default: generate one)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}
