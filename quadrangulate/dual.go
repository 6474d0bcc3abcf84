package quadrangulate

import (
	"sort"

	"github.com/katalvlaran/quadmesh/mscx"
)

// dualQuadrangulate emits one quad per saddle carrying exactly four
// separatrices. The quad's corners are the saddle's four destination
// extrema, reordered so that same-typed extrema sit on the diagonal and
// types alternate around the boundary. Saddles with any other separatrix
// count produce nothing; that completeness gap is inherent to dual mode.
// Complexity: O(E log S) time, S = distinct sources, E = edges.
func dualQuadrangulate(edges []sepEdge, types []mscx.PointType, cells *[]int) {
	// Destinations per source saddle, insertion order, duplicates kept.
	dests := make(map[int][]int, len(edges))
	for _, e := range edges {
		dests[e.src] = append(dests[e.src], e.dst)
	}

	// Ascending source order keeps the output deterministic.
	saddles := make([]int, 0, len(dests))
	for s := range dests {
		saddles = append(saddles, s)
	}
	sort.Ints(saddles)

	for _, s := range saddles {
		e := dests[s]
		if len(e) != 4 {
			continue
		}
		// Find the destination sharing e[0]'s type and place it diagonal.
		i := e[0]
		j, k, l := i, i, i
		switch {
		case types[e[1]] == types[i]:
			j, k, l = e[2], e[1], e[3]
		case types[e[2]] == types[i]:
			j, k, l = e[1], e[2], e[3]
		case types[e[3]] == types[i]:
			j, k, l = e[2], e[3], e[1]
		}
		*cells = append(*cells, 4, i, j, k, l)
	}
}
