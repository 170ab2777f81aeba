package randgraph

import (
	"fmt"
	"math/rand"

	"github.com/xosmig/breaking-the-cycle/graph"
)

// Sparse samples an Erdos-Renyi-style random digraph over n vertices:
// for every ordered pair (i,j) with i != j, the edge i->j is included
// independently with probability p. Self-loops are never generated —
// PACE instances treat them as an immediate forced-into-S case, which
// is exercised separately by reduce's SELF-LOOP rule tests rather than
// by random sampling.
//
// n must be at least 1 and p must lie in [0,1]; rng must be non-nil
// whenever 0 < p < 1 (true stochastic sampling needs a source of
// randomness). Trial order is i ascending, j ascending, so two calls
// with the same n, p and an identically-seeded rng produce identical
// graphs.
func Sparse(n int, p float64, rng *rand.Rand) (*graph.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("randgraph: n=%d < 1", n)
	}
	if p < 0.0 || p > 1.0 {
		return nil, fmt.Errorf("randgraph: p=%.6f not in [0,1]", p)
	}
	if rng == nil && p > 0.0 && p < 1.0 {
		return nil, fmt.Errorf("randgraph: rng is required for 0<p<1")
	}

	g := graph.NewGraph(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng == nil {
				if p == 1.0 {
					g.AddEdge(i, j)
				}
				continue
			}
			if rng.Float64() <= p {
				g.AddEdge(i, j)
			}
		}
	}
	return g, nil
}
