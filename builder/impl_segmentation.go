// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_segmentation.go - implementation of Segmentation(width, height).
//
// Canonical model:
//   - One inner node per pixel, row-major: pixel (x,y) has inner index y*width+x.
//   - Unary term: arc source→pixel and pixel→sink, capacities from cfg.terminalFn.
//     Zero capacities are skipped so the problem carries no dead arcs.
//   - Pairwise term: symmetric arcs to the right and lower neighbor with one
//     capacity per pair drawn from cfg.weightFn.
//
// Contract:
//   - width ≥ 1, height ≥ 1 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - The result converts with both Problem.Graph and Problem.Grid(width, height).
//
// Complexity:
//   - Time: O(width·height).
//   - Space: O(width·height) arcs.
//
// Determinism:
//   - Pixels are visited y asc, x asc; per pixel the draws are
//     source, sink, right, down.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/dimacs"
)

const (
	methodSegmentation = "Segmentation"
	minGridDim         = 1
)

// Segmentation returns a Constructor that samples a width×height
// 4-connected labeling problem of the kind used in image segmentation.
func Segmentation(width, height int) Constructor {
	return func(cfg builderConfig) (*dimacs.Problem, error) {
		if width < minGridDim || height < minGridDim {
			return nil, fmt.Errorf("%s: %dx%d < min=%d: %w",
				methodSegmentation, width, height, minGridDim, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodSegmentation, ErrNeedRandSource)
		}

		n := width * height
		p := dimacs.NewProblem(n+numTerminal, SourceID, SinkID)
		p.Comments = append(p.Comments, fmt.Sprintf("%s %dx%d", methodSegmentation, width, height))

		var (
			x, y, id int
			c        float64
		)
		for y = 0; y < height; y++ {
			for x = 0; x < width; x++ {
				id = innerID(y*width + x)
				if c = cfg.terminalFn(cfg.rng); c > 0 {
					p.AddArc(SourceID, id, c)
				}
				if c = cfg.terminalFn(cfg.rng); c > 0 {
					p.AddArc(id, SinkID, c)
				}
				if x+1 < width {
					c = cfg.weightFn(cfg.rng)
					p.AddArc(id, id+1, c)
					p.AddArc(id+1, id, c)
				}
				if y+1 < height {
					c = cfg.weightFn(cfg.rng)
					p.AddArc(id, id+width, c)
					p.AddArc(id+width, id, c)
				}
			}
		}
		return p, nil
	}
}
