// Package mscx declares the input view types, the PointType enum,
// the Triangulation interface, and sentinel validation errors.
package mscx

import (
	"errors"
)

// Sentinel errors for input validation.
var (
	// ErrLengthMismatch indicates parallel input slices disagree in length.
	ErrLengthMismatch = errors.New("mscx: parallel slice lengths disagree")

	// ErrNilTriangulation indicates a Complex without a triangulation.
	ErrNilTriangulation = errors.New("mscx: triangulation is nil")

	// ErrEmptySegmentation indicates an empty segmentation array,
	// for which the manifold count is undefined.
	ErrEmptySegmentation = errors.New("mscx: segmentation is empty")

	// ErrNegativeLabel indicates a segmentation label below zero.
	ErrNegativeLabel = errors.New("mscx: negative segmentation label")
)

// PointType classifies a critical point of the scalar field.
// The integer codes match the Morse-Smale producer's convention:
// minima are 0, saddles 1, maxima 2.
type PointType int8

const (
	// Minimum marks a local minimum of the scalar field.
	Minimum PointType = 0
	// Saddle marks a saddle of the scalar field.
	Saddle PointType = 1
	// Maximum marks a local maximum of the scalar field.
	Maximum PointType = 2
)

// String returns the lowercase name of the point type.
func (t PointType) String() string {
	switch t {
	case Minimum:
		return "minimum"
	case Saddle:
		return "saddle"
	case Maximum:
		return "maximum"
	}
	return "unknown"
}

// IsExtremum reports whether t is a minimum or a maximum.
func (t PointType) IsExtremum() bool {
	return t == Minimum || t == Maximum
}

// Triangulation exposes the vertex adjacency of the underlying surface.
// These two primitives are the only triangulation queries the
// quadrangulation core performs.
type Triangulation interface {
	// NeighborCount returns the number of vertices adjacent to v.
	NeighborCount(v int) int
	// Neighbor returns the k-th vertex adjacent to v, 0 ≤ k < NeighborCount(v).
	Neighbor(v, k int) int
}

// SliceTriangulation implements Triangulation over a plain adjacency list:
// adj[v] holds the neighbors of vertex v. The zero value (nil) is a valid
// triangulation with no vertices.
type SliceTriangulation [][]int

// NeighborCount returns the degree of v, or 0 when v is out of range.
func (s SliceTriangulation) NeighborCount(v int) int {
	if v < 0 || v >= len(s) {
		return 0
	}
	return len(s[v])
}

// Neighbor returns the k-th neighbor of v.
func (s SliceTriangulation) Neighbor(v, k int) int {
	return s[v][k]
}

// CriticalPoints is a read-only parallel-array view of the critical points.
//
// CellIDs[i] is the Morse-Smale cell identifier of point i, matched against
// separatrix sample cell ids. Types[i] classifies the point. VertexIDs[i]
// locates the point in the triangulation.
type CriticalPoints struct {
	CellIDs   []int
	Types     []PointType
	VertexIDs []int
}

// Len returns the number of critical points.
func (c CriticalPoints) Len() int { return len(c.CellIDs) }

// Validate checks that the three parallel slices agree in length.
// Complexity: O(1).
func (c CriticalPoints) Validate() error {
	if len(c.Types) != len(c.CellIDs) || len(c.VertexIDs) != len(c.CellIDs) {
		return ErrLengthMismatch
	}
	return nil
}

// Separatrices is a read-only view of the flat separatrix sample stream.
//
// CellIDs[i] is the owning cell id of sample i. Mask[i] is the visibility
// bit: 0 keeps the sample, 1 excludes it. Points packs the 3D coordinate of
// sample i at Points[3*i], Points[3*i+1], Points[3*i+2].
type Separatrices struct {
	CellIDs []int
	Mask    []uint8
	Points  []float32
}

// Len returns the number of separatrix samples.
func (s Separatrices) Len() int { return len(s.CellIDs) }

// Validate checks mask and coordinate lengths against the sample count.
// Complexity: O(1).
func (s Separatrices) Validate() error {
	if len(s.Mask) != len(s.CellIDs) || len(s.Points) != 3*len(s.CellIDs) {
		return ErrLengthMismatch
	}
	return nil
}

// Segmentation assigns every triangulation vertex a manifold region label.
type Segmentation []int

// ManifoldCount returns 1 + the maximum label, the total number of manifold
// regions. An empty segmentation has no defined count and yields
// ErrEmptySegmentation; a negative label yields ErrNegativeLabel.
// Complexity: O(len(s)).
func (s Segmentation) ManifoldCount() (int, error) {
	if len(s) == 0 {
		return 0, ErrEmptySegmentation
	}
	maxLabel := 0
	for _, label := range s {
		if label < 0 {
			return 0, ErrNegativeLabel
		}
		if label > maxLabel {
			maxLabel = label
		}
	}
	return maxLabel + 1, nil
}

// Complex bundles the four borrowed inputs of one quadrangulation run.
// All fields are owned by the caller and must outlive the run unchanged.
type Complex struct {
	Tri  Triangulation
	Crit CriticalPoints
	Seps Separatrices
	Seg  Segmentation
}

// Validate runs every per-view check and verifies the triangulation is set.
// Returns the first failure; nil means the bundle is usable.
// Complexity: O(len(Seg)).
func (c *Complex) Validate() error {
	if c.Tri == nil {
		return ErrNilTriangulation
	}
	if err := c.Crit.Validate(); err != nil {
		return err
	}
	if err := c.Seps.Validate(); err != nil {
		return err
	}
	if _, err := c.Seg.ManifoldCount(); err != nil {
		return err
	}
	return nil
}
