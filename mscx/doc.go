// Package mscx defines borrowed, read-only views over the arrays a
// Morse-Smale complex computation hands to the quadrangulation core.
//
// What:
//
//   - CriticalPoints: parallel slices of cell id, point type, and
//     triangulation vertex id for every critical point.
//   - Separatrices: the flat separatrix sample stream — per-sample cell id,
//     visibility mask, and packed 3D coordinates.
//   - Triangulation: the two-primitive adjacency interface the core consumes
//     (neighbor count of a vertex, k-th neighbor of a vertex).
//   - SliceTriangulation: an adjacency-list implementation of Triangulation.
//   - Segmentation: per-vertex manifold region labels.
//   - Complex: the bundle of all four inputs, validated together.
//
// Why:
//
//   - The producing pipeline owns the arrays; this package never copies or
//     mutates them. Views stay valid for exactly one quadrangulation run.
//   - Validation up front turns silent index corruption into sentinel errors.
//
// Errors:
//
//   - ErrLengthMismatch: parallel slices disagree in length.
//   - ErrNilTriangulation: Complex carries no triangulation.
//   - ErrEmptySegmentation: no segmentation labels at all.
//   - ErrNegativeLabel: a segmentation label is negative.
//
// All view types are plain data; validation is the only behavior.
package mscx
