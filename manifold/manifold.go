// Package manifold implements the bounded-radius locality oracle used to
// validate candidate quadrangles against the manifold segmentation.
package manifold

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/quadmesh/mscx"
)

// Oracle answers shared-manifold queries over one Morse-Smale complex.
// It borrows the complex read-only and holds no other state, so a single
// Oracle may serve any number of sequential queries.
type Oracle struct {
	tri  mscx.Triangulation
	crit mscx.CriticalPoints
	seg  mscx.Segmentation
	opts Options
}

// New builds an Oracle over cx, applying any number of functional Options.
// Returns ErrNilComplex for a nil complex, ErrOptionViolation for bad
// options, or cx's own validation error unchanged.
// Complexity: O(len(cx.Seg)) for validation; queries are bounded separately.
func New(cx *mscx.Complex, opts ...Option) (*Oracle, error) {
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

	return &Oracle{tri: cx.Tri, crit: cx.Crit, seg: cx.Seg, opts: o}, nil
}

// HasCommonManifold reports whether every critical point in points can reach
// at least one common manifold region within the oracle's visit budget.
//
// For each point, a worklist BFS over the triangulation adjacency collects
// the segmentation labels of up to VisitBudget visited vertices; the label
// sets are then intersected left to right. The predicate is commutative in
// input order and monotone: adding points never grows the intersection.
//
// Returns ErrNoPoints for an empty point set and ErrPointIndex for an index
// outside the critical-point table.
func (o *Oracle) HasCommonManifold(points []int) (bool, error) {
	if len(points) == 0 {
		return false, ErrNoPoints
	}
	for _, p := range points {
		if p < 0 || p >= o.crit.Len() {
			return false, fmt.Errorf("%w: %d", ErrPointIndex, p)
		}
	}

	// Triangulation vertex of every input point.
	verts := make([]int, len(points))
	for i, p := range points {
		verts[i] = o.crit.VertexIDs[p]
	}

	// Labels reachable near-locally from the first point, then folded
	// against every further point's label set.
	shared := o.collectLabels(verts[0])
	for i := 1; i < len(verts); i++ {
		shared = intersectLabels(shared, o.collectLabels(verts[i]))
		if len(shared) == 0 {
			break
		}
	}

	o.opts.Logger.Debug("common manifolds between vertices",
		"vertices", verts,
		"labels", sortedLabels(shared),
	)

	return len(shared) > 0, nil
}

// collectLabels runs the capped worklist BFS from start and returns the set
// of segmentation labels seen on visited vertices.
func (o *Oracle) collectLabels(start int) map[int]struct{} {
	labels := make(map[int]struct{})
	visited := map[int]bool{start: true}
	queue := []int{start}

	for qi := 0; qi < len(queue); qi++ {
		if qi == o.opts.VisitBudget {
			break
		}
		v := queue[qi]
		if v >= 0 && v < len(o.seg) {
			labels[o.seg[v]] = struct{}{}
		}
		deg := o.tri.NeighborCount(v)
		for k := 0; k < deg; k++ {
			next := o.tri.Neighbor(v, k)
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	return labels
}

// intersectLabels returns the intersection of two label sets.
func intersectLabels(a, b map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{}, len(a))
	for label := range a {
		if _, ok := b[label]; ok {
			out[label] = struct{}{}
		}
	}
	return out
}

// sortedLabels flattens a label set into ascending order for stable logging.
func sortedLabels(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for label := range set {
		out = append(out, label)
	}
	sort.Ints(out)

	return out
}
