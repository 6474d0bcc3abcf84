package quadrangulate

import (
	"time"

	"github.com/katalvlaran/quadmesh/manifold"
	"github.com/katalvlaran/quadmesh/mscx"
)

// quadrangulator carries the borrowed inputs and the oracle through one
// execution of the direct pipeline.
type quadrangulator struct {
	cx     *mscx.Complex
	oracle *manifold.Oracle
}

// Execute runs the full quadrangulation pipeline over cx:
//
//  1. filter the separatrix sample stream by its visibility mask;
//  2. pair the kept samples into (source, destination) arcs — an odd kept
//     count aborts with ErrOddSeparatrices before any output exists;
//  3. build quads, dual (WithDual) or direct;
//  4. in direct mode, run the consistency repair pass;
//  5. report quad, degenerate and manifold counts plus elapsed time.
//
// The returned Result is exclusively owned by the caller; cx is borrowed
// read-only for the duration of the call. Execution is deterministic for
// fixed inputs. Returns ErrNilComplex, any mscx validation error,
// ErrOptionViolation, ErrOddSeparatrices, or ErrUnknownCellID.
func Execute(cx *mscx.Complex, opts ...Option) (*Result, error) {
	if cx == nil {
		return nil, ErrNilComplex
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := cx.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	pos := filterSamples(cx.Seps)
	edges, err := pairEdges(pos, buildCellIndex(cx.Crit))
	if err != nil {
		return nil, err
	}

	res := &Result{}
	if o.Dual {
		dualQuadrangulate(edges, cx.Crit.Types, &res.Cells)
	} else {
		oracle, oerr := manifold.New(cx,
			manifold.WithVisitBudget(o.VisitBudget),
			manifold.WithLogger(o.Logger),
		)
		if oerr != nil {
			return nil, oerr
		}
		q := &quadrangulator{cx: cx, oracle: oracle}
		sepNumber, derr := q.directQuadrangulate(edges, res)
		if derr != nil {
			return nil, derr
		}
		q.repairPass(res, sepNumber, pos)
	}

	res.QuadCount = len(res.Cells) / 5
	// Validated above, cannot fail here.
	res.ManifoldCount, _ = cx.Seg.ManifoldCount()
	res.Elapsed = time.Since(start)

	o.Logger.Info("produced quadrangles",
		"quads", res.QuadCount,
		"degenerate", res.DegenerateCount,
		"manifolds", res.ManifoldCount,
		"badQuads", len(res.BadQuads),
		"midpoints", len(res.Points)/3,
		"elapsed", res.Elapsed,
	)

	return res, nil
}
