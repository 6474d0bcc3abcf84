package quadrangulate

// repairPass compares every critical point's expected separatrix valence to
// its realized quad incidence, flags structurally inconsistent quads, and
// requests a midpoint for each of their four separatrix arcs.
//
// A point is bad when its realized incidence is below its expected valence;
// over-connected points are deliberately not flagged. A quad is bad when at
// least two of its corners are bad. Bad quads are kept in the output — the
// pass only records their indices and appends candidate subdivision points.
// Complexity: O(QuadCount + N + bad quads · arc scan).
func (q *quadrangulator) repairPass(res *Result, sepNumber []int, pos []sepPos) {
	n := q.cx.Crit.Len()

	// Realized incidence: every corner occurrence across all quads.
	quadNumber := make([]int, n)
	for c := 0; c+5 <= len(res.Cells); c += 5 {
		for _, p := range res.Cells[c+1 : c+5] {
			quadNumber[p]++
		}
	}

	// Under-connected points only.
	bad := make([]bool, n)
	for p := 0; p < n; p++ {
		bad[p] = quadNumber[p] < sepNumber[p]
	}

	for qi := 0; 5*qi+5 <= len(res.Cells); qi++ {
		nbad := 0
		for _, p := range res.Cells[5*qi+1 : 5*qi+5] {
			if bad[p] {
				nbad++
			}
		}
		if nbad >= 2 {
			res.BadQuads = append(res.BadQuads, qi)
		}
	}

	// One midpoint per distinct separatrix segment, however many bad quads
	// reference it.
	cache := make(map[[2]int]int)
	for _, qi := range res.BadQuads {
		i := res.Cells[5*qi+1]
		j := res.Cells[5*qi+2]
		k := res.Cells[5*qi+3]
		l := res.Cells[5*qi+4]
		q.findSeparatrixMiddle(j, i, pos, cache, res)
		q.findSeparatrixMiddle(j, k, pos, cache, res)
		q.findSeparatrixMiddle(l, i, pos, cache, res)
		q.findSeparatrixMiddle(l, k, pos, cache, res)
	}
}
