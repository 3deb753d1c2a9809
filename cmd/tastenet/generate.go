// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/tastenet/internal/dataset"
	"github.com/tomtom215/tastenet/internal/logging"
)

func newGenerateCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random dataset",
		Long: `Generate a random symmetric similarity network and a population of
partially rated users. Sizes come from the simulation section of the config.

Examples:
  tastenet generate --out dataset.json
  TASTENET_SIMULATION_NODES=20 tastenet generate -o big.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := dataset.Generate(a.cfg.GenerateConfig())
			if err != nil {
				return err
			}
			if err := dataset.Save(out, ds); err != nil {
				return err
			}

			log := logging.WithComponent("generate")
			log.Info().
				Str("path", out).
				Int("items", ds.Size()).
				Int("users", len(ds.Users)).
				Msg("Dataset written")
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d users over %d items to %s\n", len(ds.Users), ds.Size(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dataset.json", "output file")
	return cmd
}
