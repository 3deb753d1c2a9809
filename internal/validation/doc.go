// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

// Package validation provides struct validation using go-playground/validator v10.
//
// It wraps a thread-safe singleton validator that reports failing fields by
// their koanf key, so a message such as "learner.max_rounds must be at least 1"
// points straight at the YAML key or environment variable to fix.
//
// # Custom Tags
//
//   - finite: rejects NaN and infinite float values
//
// # Usage
//
//	type LearnerConfig struct {
//	    Strategy string  `koanf:"strategy" validate:"oneof=average kmeans"`
//	    Steepness float64 `koanf:"steepness" validate:"finite,gte=0"`
//	}
//
//	if err := validation.ValidateStruct(&cfg); err != nil {
//	    var se *validation.StructError
//	    if errors.As(err, &se) {
//	        fmt.Println(se.Fields())
//	    }
//	}
package validation
