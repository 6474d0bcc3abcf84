package quadrangulate

import (
	"fmt"

	"github.com/katalvlaran/quadmesh/mscx"
)

// sepEdge is one separatrix arc resolved to critical-point indices:
// src is the saddle end, dst the extremum end.
type sepEdge struct {
	src, dst int
}

// sepPos pairs a kept sample's cell id with its row in the raw sample
// stream. Rows stay in stream order, so consecutive entries bound one arc.
type sepPos struct {
	cell int
	row  int
}

// buildCellIndex maps every critical-point cell id to its point index,
// built once per execution. On duplicate cell ids the lowest point index
// wins, matching first-match lookup semantics.
// Complexity: O(N) time and memory.
func buildCellIndex(crit mscx.CriticalPoints) map[int]int {
	index := make(map[int]int, crit.Len())
	for i, cell := range crit.CellIDs {
		if _, ok := index[cell]; !ok {
			index[cell] = i
		}
	}
	return index
}

// filterSamples drops masked samples (mask bit 1) and returns the kept
// (cell id, row) pairs in stream order.
// Complexity: O(sample count).
func filterSamples(seps mscx.Separatrices) []sepPos {
	kept := make([]sepPos, 0, seps.Len())
	for i, cell := range seps.CellIDs {
		if seps.Mask[i] == 1 {
			continue
		}
		kept = append(kept, sepPos{cell: cell, row: i})
	}
	return kept
}

// pairEdges pairs the kept samples two by two into arcs and resolves their
// cell ids through the index. Every kept arc contributes exactly one
// (source, destination) pair, so an odd kept count is a fatal input error.
// Returns ErrOddSeparatrices or ErrUnknownCellID.
// Complexity: O(kept count).
func pairEdges(pos []sepPos, cellIndex map[int]int) ([]sepEdge, error) {
	if len(pos)%2 != 0 {
		return nil, ErrOddSeparatrices
	}
	edges := make([]sepEdge, 0, len(pos)/2)
	for i := 0; i < len(pos); i += 2 {
		src, ok := cellIndex[pos[i].cell]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownCellID, pos[i].cell)
		}
		dst, ok := cellIndex[pos[i+1].cell]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownCellID, pos[i+1].cell)
		}
		edges = append(edges, sepEdge{src: src, dst: dst})
	}
	return edges, nil
}
