// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

// Package logging provides centralized zerolog-based structured logging for Tastenet.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "console",
//	})
//
//	logging.Info().Int("users", n).Msg("Dataset loaded")
//	logging.Error().Err(err).Msg("Learning failed")
//
// Components take a zerolog.Logger and derive their own:
//
//	logger := logging.WithComponent("simulate")
//
// # Correlation IDs
//
// A simulation run carries a correlation ID in its context so every line
// logged for the run can be grouped:
//
//	ctx = logging.ContextWithNewCorrelationID(ctx)
//	logging.Ctx(ctx).Info().Msg("Run started")
//
// # Configuration
//
// The logging section of the Tastenet configuration maps onto Config:
//
//	TASTENET_LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	TASTENET_LOG_FORMAT  - json, console (default: console)
//	TASTENET_LOG_CALLER  - include caller file:line (default: false)
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
