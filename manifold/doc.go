// Package manifold answers one question about a set of critical points:
// is there a manifold region of the segmentation that all of them can
// reach within a small neighborhood of the triangulation?
//
// What:
//
//   - Oracle wraps a validated mscx.Complex and exposes HasCommonManifold.
//   - Per input point, a breadth-first worklist traversal of the vertex
//     adjacency collects the segmentation labels of visited vertices.
//   - The traversal is capped at VisitBudget visited vertices per point
//     (default 20) — a hard locality bound, not a hop bound.
//   - The per-point label sets are intersected left to right; the predicate
//     holds iff the final intersection is non-empty.
//
// Why:
//
//   - Quadrangulation pairs saddles through extrema; a pair is only
//     geometrically plausible when both saddles sit near a common manifold.
//   - The cap trades completeness for bounded cost: the oracle may miss a
//     common region lying just outside the budget, never invent one.
//
// Properties:
//
//   - Commutative: the answer does not depend on input order.
//   - Monotone: adding points can only shrink the intersection.
//   - Pure: no shared state is mutated; a diagnostic line is the only output
//     besides the predicate.
//
// Complexity:
//
//   - HasCommonManifold: O(p·B·d) time, O(p·B) memory, where p = number of
//     points, B = VisitBudget, d = maximum vertex degree.
//
// Errors:
//
//   - ErrNilComplex: nil input complex.
//   - ErrNoPoints: empty point set (the predicate is undefined).
//   - ErrPointIndex: a point index outside [0, number of critical points).
//   - ErrOptionViolation: invalid option value (e.g. non-positive budget).
//   - mscx validation errors pass through unchanged.
package manifold
