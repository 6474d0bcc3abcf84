package mscx_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/quadmesh/mscx"
)

// TestPointType_String covers the enum names and the out-of-range fallback.
func TestPointType_String(t *testing.T) {
	cases := []struct {
		pt   mscx.PointType
		want string
	}{
		{mscx.Minimum, "minimum"},
		{mscx.Saddle, "saddle"},
		{mscx.Maximum, "maximum"},
		{mscx.PointType(7), "unknown"},
	}
	for _, c := range cases {
		if got := c.pt.String(); got != c.want {
			t.Errorf("PointType(%d).String() = %q; want %q", c.pt, got, c.want)
		}
	}
}

// TestPointType_IsExtremum checks that only minima and maxima qualify.
func TestPointType_IsExtremum(t *testing.T) {
	if !mscx.Minimum.IsExtremum() || !mscx.Maximum.IsExtremum() {
		t.Error("minima and maxima must be extrema")
	}
	if mscx.Saddle.IsExtremum() {
		t.Error("a saddle is not an extremum")
	}
}

// TestCriticalPoints_Validate rejects parallel slices of differing length.
func TestCriticalPoints_Validate(t *testing.T) {
	good := mscx.CriticalPoints{
		CellIDs:   []int{10, 20},
		Types:     []mscx.PointType{mscx.Minimum, mscx.Saddle},
		VertexIDs: []int{0, 1},
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid view rejected: %v", err)
	}
	if got := good.Len(); got != 2 {
		t.Errorf("Len() = %d; want 2", got)
	}

	bad := good
	bad.Types = bad.Types[:1]
	if err := bad.Validate(); !errors.Is(err, mscx.ErrLengthMismatch) {
		t.Errorf("short Types: want ErrLengthMismatch, got %v", err)
	}
}

// TestSeparatrices_Validate checks mask and coordinate length coupling.
func TestSeparatrices_Validate(t *testing.T) {
	good := mscx.Separatrices{
		CellIDs: []int{10, 20},
		Mask:    []uint8{0, 0},
		Points:  make([]float32, 6),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid view rejected: %v", err)
	}

	badMask := good
	badMask.Mask = []uint8{0}
	if err := badMask.Validate(); !errors.Is(err, mscx.ErrLengthMismatch) {
		t.Errorf("short Mask: want ErrLengthMismatch, got %v", err)
	}

	badPoints := good
	badPoints.Points = make([]float32, 5)
	if err := badPoints.Validate(); !errors.Is(err, mscx.ErrLengthMismatch) {
		t.Errorf("short Points: want ErrLengthMismatch, got %v", err)
	}
}

// TestSegmentation_ManifoldCount covers the max+1 rule and both error cases.
func TestSegmentation_ManifoldCount(t *testing.T) {
	if n, err := (mscx.Segmentation{0, 2, 1, 2}).ManifoldCount(); err != nil || n != 3 {
		t.Errorf("ManifoldCount = %d, %v; want 3, nil", n, err)
	}
	if n, err := (mscx.Segmentation{0, 0, 0}).ManifoldCount(); err != nil || n != 1 {
		t.Errorf("all-zero ManifoldCount = %d, %v; want 1, nil", n, err)
	}
	if _, err := (mscx.Segmentation{}).ManifoldCount(); !errors.Is(err, mscx.ErrEmptySegmentation) {
		t.Errorf("empty: want ErrEmptySegmentation, got %v", err)
	}
	if _, err := (mscx.Segmentation{0, -1}).ManifoldCount(); !errors.Is(err, mscx.ErrNegativeLabel) {
		t.Errorf("negative: want ErrNegativeLabel, got %v", err)
	}
}

// TestSliceTriangulation exercises both interface primitives, including the
// out-of-range degree query.
func TestSliceTriangulation(t *testing.T) {
	tri := mscx.SliceTriangulation{
		{1, 2},
		{0},
		{0},
	}
	if got := tri.NeighborCount(0); got != 2 {
		t.Errorf("NeighborCount(0) = %d; want 2", got)
	}
	if got := tri.Neighbor(0, 1); got != 2 {
		t.Errorf("Neighbor(0,1) = %d; want 2", got)
	}
	if got := tri.NeighborCount(99); got != 0 {
		t.Errorf("NeighborCount(99) = %d; want 0", got)
	}
	if got := tri.NeighborCount(-1); got != 0 {
		t.Errorf("NeighborCount(-1) = %d; want 0", got)
	}
}

// TestComplex_Validate verifies the bundle check order and nil triangulation.
func TestComplex_Validate(t *testing.T) {
	cx := &mscx.Complex{
		Tri: mscx.SliceTriangulation{{1}, {0}},
		Crit: mscx.CriticalPoints{
			CellIDs:   []int{10},
			Types:     []mscx.PointType{mscx.Minimum},
			VertexIDs: []int{0},
		},
		Seps: mscx.Separatrices{},
		Seg:  mscx.Segmentation{0, 0},
	}
	if err := cx.Validate(); err != nil {
		t.Fatalf("valid complex rejected: %v", err)
	}

	noTri := *cx
	noTri.Tri = nil
	if err := noTri.Validate(); !errors.Is(err, mscx.ErrNilTriangulation) {
		t.Errorf("nil triangulation: want ErrNilTriangulation, got %v", err)
	}

	noSeg := *cx
	noSeg.Seg = nil
	if err := noSeg.Validate(); !errors.Is(err, mscx.ErrEmptySegmentation) {
		t.Errorf("empty segmentation: want ErrEmptySegmentation, got %v", err)
	}
}
