// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

// Package errs defines the error kinds shared by every Tastenet component.
//
// Errors fall into three kinds so callers can tell "you gave me bad input"
// apart from "the library has a bug":
//
//   - KindConfig: an invalid or missing parameter, raised before any work starts
//   - KindPrecondition: a shape or range violation at the boundary of a call
//   - KindInternal: a violated internal invariant (empty cluster, exhausted distribution)
//
// None of the kinds is retryable.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an Error.
type Kind int

const (
	// KindUnknown is reported by KindOf for errors not created by this package.
	KindUnknown Kind = iota
	// KindConfig indicates an invalid or missing configuration parameter.
	KindConfig
	// KindPrecondition indicates the caller violated an input contract.
	KindPrecondition
	// KindInternal indicates a logic defect inside Tastenet.
	KindInternal
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindPrecondition:
		return "precondition"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Sentinel causes. Match them with errors.Is.
var (
	ErrDimensionMismatch     = errors.New("dimension mismatch")
	ErrRaggedMatrix          = errors.New("matrix is not rectangular")
	ErrIndexOutOfRange       = errors.New("index out of range")
	ErrInvalidBounds         = errors.New("lower bound must be below upper bound")
	ErrEmptyInput            = errors.New("empty input")
	ErrInvalidRating         = errors.New("invalid rating")
	ErrFullyRated            = errors.New("network has no unrated items")
	ErrEmptyCluster          = errors.New("cluster received no members")
	ErrNotConverged          = errors.New("clustering did not converge")
	ErrDistributionExhausted = errors.New("cumulative distribution exhausted without a selection")
)

// Error is a classified error carrying the operation that raised it.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.Op, e.Message} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

func newf(kind Kind, op string, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Config creates a configuration error.
func Config(op string, cause error, format string, args ...any) *Error {
	return newf(KindConfig, op, cause, format, args...)
}

// Precondition creates a precondition error.
func Precondition(op string, cause error, format string, args ...any) *Error {
	return newf(KindPrecondition, op, cause, format, args...)
}

// Internal creates an internal invariant error.
func Internal(op string, cause error, format string, args ...any) *Error {
	return newf(KindInternal, op, cause, format, args...)
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsConfig reports whether err is a configuration error.
func IsConfig(err error) bool {
	return KindOf(err) == KindConfig
}

// IsPrecondition reports whether err is a precondition error.
func IsPrecondition(err error) bool {
	return KindOf(err) == KindPrecondition
}

// IsInternal reports whether err is an internal invariant error.
func IsInternal(err error) bool {
	return KindOf(err) == KindInternal
}
