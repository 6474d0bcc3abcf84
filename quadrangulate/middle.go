package quadrangulate

import (
	"github.com/go-gl/mathgl/mgl32"
)

// findSeparatrixMiddle locates every arc of the position list running from
// src's cell to dst's cell and, per uncached (start, end) sample span,
// appends the arc's midpoint-by-arc-length to res.Points.
//
// Spans are detected between *consecutive* position-list entries; the rows
// between the two bounds belong to the same polyline in the raw sample
// stream, masked or not, and all of them take part in the integration.
// The chosen sample minimizes |cumulative length − total/2|, first minimum
// on ties. The cache keys by the (start, end) rows, so each distinct
// segment contributes at most one point no matter how many bad quads
// reference it.
// Complexity: O(len(pos) + span length) per call.
func (q *quadrangulator) findSeparatrixMiddle(src, dst int, pos []sepPos, cache map[[2]int]int, res *Result) {
	srcCell := q.cx.Crit.CellIDs[src]
	dstCell := q.cx.Crit.CellIDs[dst]

	var bounds [][2]int
	for i := 0; i+1 < len(pos); i++ {
		if pos[i].cell == srcCell && pos[i+1].cell == dstCell {
			bounds = append(bounds, [2]int{pos[i].row, pos[i+1].row})
		}
	}

	pts := q.cx.Seps.Points
	for _, b := range bounds {
		if _, ok := cache[b]; ok {
			continue
		}
		a, z := b[0], b[1]

		// Cumulative Euclidean arc length at every sample of the span.
		dist := make([]float32, z-a+1)
		prev := sampleVec(pts, a)
		for i := 1; i < len(dist); i++ {
			curr := sampleVec(pts, a+i)
			dist[i] = dist[i-1] + curr.Sub(prev).Len()
			prev = curr
		}

		// Nearest sample to the arc-length middle, not the sample-count middle.
		half := dist[len(dist)-1] / 2
		best := 0
		for i := range dist {
			if mgl32.Abs(dist[i]-half) < mgl32.Abs(dist[best]-half) {
				best = i
			}
		}
		id := a + best

		mid := sampleVec(pts, id)
		res.Points = append(res.Points, mid.X(), mid.Y(), mid.Z())
		cache[b] = id
	}
}

// sampleVec loads the 3D coordinate of sample i from the packed buffer.
func sampleVec(pts []float32, i int) mgl32.Vec3 {
	return mgl32.Vec3{pts[3*i], pts[3*i+1], pts[3*i+2]}
}
