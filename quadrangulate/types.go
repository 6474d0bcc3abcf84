// Package quadrangulate declares the execution options, the Result type,
// and sentinel errors of the quadrangulation pipeline.
package quadrangulate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/quadmesh/manifold"
)

// Sentinel errors for quadrangulation execution.
var (
	// ErrNilComplex is returned when Execute receives a nil complex.
	ErrNilComplex = errors.New("quadrangulate: complex is nil")

	// ErrOddSeparatrices is returned when the mask-filtered separatrix
	// sample count is odd, so samples cannot pair into arcs.
	ErrOddSeparatrices = errors.New("quadrangulate: odd number of separatrix edge samples")

	// ErrUnknownCellID is returned when a kept separatrix sample references
	// a cell id absent from the critical-point table.
	ErrUnknownCellID = errors.New("quadrangulate: separatrix cell id matches no critical point")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("quadrangulate: invalid option supplied")
)

// Option configures Execute via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Execute is invoked.
type Option func(*Options)

// Options holds the tunable parameters of one execution.
type Options struct {
	// Dual selects the saddle-keyed dual builder instead of the
	// extrema-pairing direct builder.
	Dual bool

	// VisitBudget is forwarded to the manifold oracle in direct mode.
	VisitBudget int

	// Logger receives the execution summary and oracle diagnostics.
	// Silent by default.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options selecting the direct builder, the oracle's
// default visit budget, and a silent logger.
func DefaultOptions() Options {
	return Options{
		Dual:        false,
		VisitBudget: manifold.DefaultVisitBudget,
		Logger:      slog.New(nopHandler{}),
		err:         nil,
	}
}

// WithDual switches Execute to dual quadrangulation: one quad per saddle
// with exactly four emanating separatrices, no oracle, no repair pass.
func WithDual() Option {
	return func(o *Options) { o.Dual = true }
}

// WithVisitBudget caps the oracle's per-point traversal at n visited
// vertices. n must be positive; anything else is an ErrOptionViolation.
func WithVisitBudget(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: VisitBudget must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.VisitBudget = n
	}
}

// WithLogger routes diagnostics to l. Pass nil to keep the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the exclusively owned output of one execution.
type Result struct {
	// Cells is the flat output cell buffer: repeating groups of
	// [4, a, b, c, d] where a..d index the critical-point table.
	Cells []int

	// Points is the flat output point buffer: x,y,z triples of the
	// midpoints inserted by the repair pass. Indices into this buffer are
	// not critical-point indices; disambiguation is the caller's concern.
	Points []float32

	// QuadCount is the number of emitted quadrangles, len(Cells)/5.
	QuadCount int

	// DegenerateCount is the number of quads with a repeated saddle corner.
	DegenerateCount int

	// ManifoldCount is 1 + the maximum segmentation label.
	ManifoldCount int

	// BadQuads lists the indices of quads the repair pass flagged as
	// structurally inconsistent (at least two under-connected corners).
	// These quads stay in Cells; the appended Points are subdivision
	// candidates for a downstream re-tessellation.
	BadQuads []int

	// Elapsed is the wall-clock duration of the execution.
	Elapsed time.Duration
}

// Quads unpacks the flat cell buffer into 4-tuples of critical-point
// indices. Complexity: O(QuadCount).
func (r *Result) Quads() [][4]int {
	out := make([][4]int, 0, len(r.Cells)/5)
	for c := 0; c+5 <= len(r.Cells); c += 5 {
		out = append(out, [4]int{r.Cells[c+1], r.Cells[c+2], r.Cells[c+3], r.Cells[c+4]})
	}
	return out
}

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely,
// making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }
