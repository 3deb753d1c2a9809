// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/tastenet/internal/config"
	"github.com/tomtom215/tastenet/internal/dataset"
	"github.com/tomtom215/tastenet/internal/logging"
)

// app carries state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "tastenet",
		Short: "Tastenet - similarity network recommendation simulator",
		Long: `Tastenet learns taste profiles from users' star ratings and simulates
recommendation sessions that walk a similarity network item by item.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newGenerateCmd(a),
		newLearnCmd(a),
		newSimulateCmd(a),
		newConfigCmd(a),
	)
	return root
}

func (a *app) load() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	logging.Init(cfg.LogConfig())
	if a.verbose {
		logging.SetLevelString("debug")
	}
	a.cfg = cfg
	return nil
}

// loadDataset reads path, falling back to simulation.dataset and then to a
// freshly generated dataset.
func (a *app) loadDataset(path string) (*dataset.Dataset, error) {
	if path == "" {
		path = a.cfg.Simulation.Dataset
	}
	if path == "" {
		logging.Debug().Msg("No dataset given, generating one")
		return dataset.Generate(a.cfg.GenerateConfig())
	}
	return dataset.Load(path)
}
