// Package quadmesh turns the output of a Morse-Smale complex computation —
// critical points and separatrix arcs over a triangulated surface — into a
// coarse quadrangular mesh whose corners are critical points.
//
// 🚀 What is quadmesh?
//
//	An in-memory geometry-topology library that brings together:
//		• Input views: borrowed, read-only views over the caller's Morse-Smale arrays
//		• Locality oracle: bounded-visit BFS over the triangulation to test shared manifolds
//		• Dual quadrangulation: one quad per saddle with exactly four separatrices
//		• Direct quadrangulation: extrema pairs stitched through shared saddles
//		• Consistency repair: valence bookkeeping plus arc-length midpoint insertion
//
// ✨ Why choose quadmesh?
//
//   - Honest contract – best-effort quadrangulation, residual defects are
//     reported as data, never hidden behind a false success
//   - Deterministic – fixed inputs always produce the same cells and points
//   - Pure Go core – vector math via go-gl/mathgl, no cgo
//   - Quiet by default – slog diagnostics, opt-in per call
//
// Under the hood, everything is organized under three subpackages:
//
//	mscx/          — Morse-Smale complex input views: critical points, separatrices,
//	                 triangulation adjacency, manifold segmentation
//	manifold/      — bounded-radius locality oracle over the triangulation
//	quadrangulate/ — dual & direct builders, consistency repair, orchestrator
//
// Quick ASCII example:
//
//	    min───sad───min
//	     │     │     │
//	    sad───max───sad
//	     │     │     │
//	    min───sad───min
//
//	a height field with one maximum yields four quads, each alternating
//	minimum/saddle/maximum/saddle around its boundary.
//
// Dive into the package docs of quadrangulate for the full execution
// pipeline, error taxonomy, and diagnostics.
//
//	go get github.com/katalvlaran/quadmesh/quadrangulate
package quadmesh
