// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/tastenet/internal/logging"
	"github.com/tomtom215/tastenet/internal/profile"
)

func newLearnCmd(a *app) *cobra.Command {
	var (
		datasetPath string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "learn",
		Short: "Learn taste profiles from a dataset",
		Long: `Learn similarity-network profiles from the users of a dataset using the
configured learner strategy (average or kmeans).

Examples:
  tastenet learn --dataset dataset.json
  tastenet learn --dataset dataset.json --json
  TASTENET_LEARNER_K=3 tastenet learn -d dataset.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := a.loadDataset(datasetPath)
			if err != nil {
				return err
			}

			learner, err := profile.New(a.cfg.ProfileConfig(), logging.Logger())
			if err != nil {
				return err
			}
			users, err := ds.RatedNetworks()
			if err != nil {
				return err
			}
			profiles, err := learner.Learn(users)
			if err != nil {
				return fmt.Errorf("learn profiles: %w", err)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), profiles)
			}
			return writeProfiles(cmd.OutOrStdout(), learner.Name(), profiles)
		},
	}
	cmd.Flags().StringVarP(&datasetPath, "dataset", "d", "", "dataset file (default: generate one)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print profiles as JSON")
	return cmd
}
