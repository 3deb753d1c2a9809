// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

// Package main is the entry point for the tastenet command.
//
// Tastenet learns taste profiles (similarity networks) from a population of
// users' star ratings and simulates recommendation sessions over them.
//
// # Commands
//
//	tastenet generate --out dataset.json   # random network and users
//	tastenet learn --dataset dataset.json  # print learned profiles
//	tastenet simulate                      # learn, then run sessions
//	tastenet config                        # print the effective configuration
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - TASTENET_* environment variables
//   - Config file (--config, $TASTENET_CONFIG or tastenet.yaml)
//   - Built-in defaults
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the running command. Simulations stop between
// session steps.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/tastenet/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		logging.Fatal().Err(err).Msg("tastenet failed")
	}
}
