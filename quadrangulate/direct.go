package quadrangulate

import (
	"sort"
)

// directQuadrangulate pairs extrema of opposite type through their shared
// saddles and appends quads to res.Cells.
//
// Edges are inverted to destination → set of incident source saddles, and
// every point's expected separatrix valence is counted (both endpoints of
// every edge). For each unordered extrema pair (i, k) with non-empty source
// sets and differing type:
//
//   - two or more common saddles: every unordered saddle pair (j, l) that
//     the manifold oracle confirms to share a local region yields one quad
//     [4, i, j, k, l];
//   - exactly one common saddle j, with i or k of source valence one:
//     one degenerate quad [4, i, j, k, j].
//
// Returns the expected valence table for the repair pass.
// Complexity: O(N² · S) time worst case, S = maximum source-set size.
func (q *quadrangulator) directQuadrangulate(edges []sepEdge, res *Result) ([]int, error) {
	n := q.cx.Crit.Len()

	// sources[d] holds the saddles incident to extremum d.
	sources := make([]map[int]struct{}, n)
	// sepNumber[p] counts every separatrix endpoint at p.
	sepNumber := make([]int, n)

	for _, e := range edges {
		if sources[e.dst] == nil {
			sources[e.dst] = make(map[int]struct{})
		}
		sources[e.dst][e.src] = struct{}{}
		sepNumber[e.dst]++
		sepNumber[e.src]++
	}

	for i := 0; i < n; i++ {
		if len(sources[i]) == 0 {
			continue
		}
		for k := i + 1; k < n; k++ {
			if len(sources[k]) == 0 {
				continue
			}
			// A valid quad alternates extremum/saddle/extremum/saddle,
			// so its two destination corners must differ in type.
			if q.cx.Crit.Types[k] == q.cx.Crit.Types[i] {
				continue
			}

			common := intersectSources(sources[i], sources[k])
			switch {
			case len(common) >= 2:
				// Each saddle pair bounds its own surface region, so one
				// (i, k) pair may legitimately yield several quads.
				for m := 0; m < len(common); m++ {
					for x := m + 1; x < len(common); x++ {
						j, l := common[m], common[x]
						ok, err := q.oracle.HasCommonManifold([]int{j, l})
						if err != nil {
							return nil, err
						}
						if ok {
							res.Cells = append(res.Cells, 4, i, j, k, l)
						}
					}
				}
			case len(common) == 1 && (len(sources[i]) == 1 || len(sources[k]) == 1):
				// A single mediating saddle at a low-valence extremum:
				// collapse into a degenerate quad with the saddle repeated.
				j := common[0]
				res.DegenerateCount++
				res.Cells = append(res.Cells, 4, i, j, k, j)
			}
		}
	}

	return sepNumber, nil
}

// intersectSources returns the ascending intersection of two source sets.
func intersectSources(a, b map[int]struct{}) []int {
	common := make([]int, 0, len(a))
	for s := range a {
		if _, ok := b[s]; ok {
			common = append(common, s)
		}
	}
	sort.Ints(common)

	return common
}
