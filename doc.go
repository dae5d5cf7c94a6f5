// Package mincut computes two-terminal minimum cuts and maximum flows for
// labeling problems such as binary image segmentation.
//
// What is inside?
//
//	Two engines over the same capacity model:
//		• graphcut: incremental tree-based augmenting paths on arbitrary
//		  sparse graphs (two search trees, growth, augmentation, adoption)
//		• gridcut:  push-relabel specialized to 4-connected 2-D lattices,
//		  with checkerboard passes running in parallel
//
// Why two engines?
//
//   - graphcut handles any topology, supports hard constraints, incremental
//     capacity updates between solves and cancellation through a context.
//   - gridcut trades generality for regular memory access and data
//     parallelism on image-shaped problems.
//
// Under the hood the module is organized as:
//
//	numeric/  — capacity constraint (integer or float) and tolerance helpers
//	graphcut/ — graph engine, Solve driver, queries and Verify
//	gridcut/  — grid engine
//	dimacs/   — DIMACS max-flow reader/writer, conversion to both engines
//	builder/  — reproducible instance generators
//	metrics/  — Prometheus observer for both engines
//	config/   — layered configuration of the command-line tool
//	cmd/mincut — `mincut solve` and `mincut generate`
//
// Quick ASCII example:
//
//	  s ─5→ [0] ─3─ [1] ─5→ t
//
//	two pixels with opposite preferences joined by a weak boundary: the cut
//	severs the 3-edge, the flow is 3.
//
//	go get github.com/katalvlaran/mincut/graphcut
package mincut
