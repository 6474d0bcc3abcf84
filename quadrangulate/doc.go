// Package quadrangulate builds a coarse quadrangular mesh from the critical
// points and separatrix arcs of a Morse-Smale complex.
//
// What:
//
//   - Execute filters the separatrix sample stream, pairs it into arcs, and
//     dispatches to one of two builders.
//   - Direct mode (default): extrema of opposite type sharing at least two
//     saddles become quads [4, i, j, k, l] with the saddle pair validated by
//     the manifold oracle; a single shared saddle at a valence-one extremum
//     becomes a degenerate quad [4, i, j, k, j].
//   - Dual mode: every saddle with exactly four separatrices becomes one
//     quad over its destination extrema, same-typed extrema on the diagonal.
//   - Direct mode ends with a consistency repair pass: points whose quad
//     incidence falls short of their separatrix valence mark quads bad, and
//     every bad quad's arcs receive a midpoint chosen by arc-length
//     bisection over the original polyline samples.
//
// Why:
//
//   - Quad meshing of scanned or simulated surfaces: the Morse-Smale
//     skeleton already captures the surface's flow structure; this package
//     turns it into cells a tessellator can refine.
//   - Best-effort by contract: inputs that cannot close into a valid mesh
//     yield quads plus diagnostics (BadQuads, midpoints), never a silent
//     failure or an invented topology.
//
// Output:
//
//   - Result.Cells: flat [4, a, b, c, d] groups of critical-point indices.
//   - Result.Points: flat x,y,z triples of inserted midpoints only.
//   - Counts, bad-quad indices, and wall-clock duration for diagnostics.
//
// Determinism:
//
//   - Fixed inputs produce identical output. Quads are however unordered
//     cells of the surface; compare them as sets, not sequences.
//
// Complexity:
//
//   - Direct: O(N²·S) pair enumeration plus O(p·B·d) per oracle query.
//   - Dual: O(E log S).
//   - Repair: linear in quads plus one position-list scan per bad arc.
//
// Errors:
//
//   - ErrNilComplex: nil input complex.
//   - ErrOddSeparatrices: kept sample count cannot pair into arcs.
//   - ErrUnknownCellID: kept sample references no critical point.
//   - ErrOptionViolation: invalid option value.
//   - mscx validation errors pass through unchanged.
package quadrangulate
