// Package manifold declares the Oracle options and sentinel errors.
package manifold

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// DefaultVisitBudget is the number of triangulation vertices a single
// label-collecting traversal may visit before it stops.
const DefaultVisitBudget = 20

// Sentinel errors for oracle construction and queries.
var (
	// ErrNilComplex is returned when New receives a nil complex.
	ErrNilComplex = errors.New("manifold: complex is nil")

	// ErrNoPoints is returned when HasCommonManifold receives no points.
	ErrNoPoints = errors.New("manifold: empty point set")

	// ErrPointIndex is returned for a point index outside the critical-point table.
	ErrPointIndex = errors.New("manifold: point index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("manifold: invalid option supplied")
)

// Option configures Oracle behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds the tunable parameters of an Oracle.
type Options struct {
	// VisitBudget caps the number of vertices visited per point.
	VisitBudget int

	// Logger receives one debug line per query. Silent by default.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a 20-vertex budget and a silent logger.
func DefaultOptions() Options {
	return Options{
		VisitBudget: DefaultVisitBudget,
		Logger:      slog.New(nopHandler{}),
		err:         nil,
	}
}

// WithVisitBudget caps the per-point traversal at n visited vertices.
// n must be positive; anything else is an ErrOptionViolation.
func WithVisitBudget(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: VisitBudget must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.VisitBudget = n
	}
}

// WithLogger routes query diagnostics to l. Pass nil to keep the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely,
// making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }
