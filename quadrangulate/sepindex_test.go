package quadrangulate

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/quadmesh/mscx"
)

// TestBuildCellIndex checks the one-shot hash and first-occurrence wins on
// duplicate cell ids.
func TestBuildCellIndex(t *testing.T) {
	crit := mscx.CriticalPoints{
		CellIDs:   []int{30, 10, 20, 10},
		Types:     []mscx.PointType{mscx.Minimum, mscx.Saddle, mscx.Maximum, mscx.Saddle},
		VertexIDs: []int{0, 1, 2, 3},
	}
	got := buildCellIndex(crit)
	want := map[int]int{30: 0, 10: 1, 20: 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("buildCellIndex = %v; want %v", got, want)
	}
}

// TestFilterSamples drops masked samples and preserves stream rows.
func TestFilterSamples(t *testing.T) {
	seps := mscx.Separatrices{
		CellIDs: []int{10, -1, 20, 30, -1},
		Mask:    []uint8{0, 1, 0, 0, 1},
		Points:  make([]float32, 15),
	}
	got := filterSamples(seps)
	want := []sepPos{{cell: 10, row: 0}, {cell: 20, row: 2}, {cell: 30, row: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("filterSamples = %v; want %v", got, want)
	}
}

// TestPairEdges covers pairing, the odd-count failure, and unknown cell ids.
func TestPairEdges(t *testing.T) {
	index := map[int]int{10: 0, 11: 1, 12: 2}

	edges, err := pairEdges([]sepPos{{11, 0}, {10, 1}, {11, 2}, {12, 3}}, index)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []sepEdge{{src: 1, dst: 0}, {src: 1, dst: 2}}
	if !reflect.DeepEqual(edges, want) {
		t.Errorf("pairEdges = %v; want %v", edges, want)
	}

	if _, err = pairEdges([]sepPos{{11, 0}, {10, 1}, {11, 2}}, index); !errors.Is(err, ErrOddSeparatrices) {
		t.Errorf("odd count: want ErrOddSeparatrices, got %v", err)
	}

	if _, err = pairEdges([]sepPos{{99, 0}, {10, 1}}, index); !errors.Is(err, ErrUnknownCellID) {
		t.Errorf("unknown src: want ErrUnknownCellID, got %v", err)
	}
	if _, err = pairEdges([]sepPos{{11, 0}, {99, 1}}, index); !errors.Is(err, ErrUnknownCellID) {
		t.Errorf("unknown dst: want ErrUnknownCellID, got %v", err)
	}
}
