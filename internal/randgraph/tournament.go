package randgraph

import (
	"fmt"
	"math/rand"

	"github.com/xosmig/breaking-the-cycle/graph"
)

// Tournament samples a random tournament over n vertices: for every
// unordered pair {i,j}, exactly one of i->j or j->i is present, chosen
// independently with probability 1/2 by rng. Tournaments are a useful
// stress case for the solver's reduction and branch-and-bound packages
// beyond the sparser Sparse model — every pair is adjacent, so unless
// the sampled orientation happens to be transitive (acyclic), the
// instance contains directed triangles.
//
// n must be at least 1; rng must be non-nil whenever n >= 2 (n==1 has
// no pairs to orient and needs no randomness).
func Tournament(n int, rng *rand.Rand) (*graph.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("randgraph: n=%d < 1", n)
	}
	if rng == nil && n >= 2 {
		return nil, fmt.Errorf("randgraph: rng is required for n>=2")
	}

	g := graph.NewGraph(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Intn(2) == 0 {
				g.AddEdge(i, j)
			} else {
				g.AddEdge(j, i)
			}
		}
	}
	return g, nil
}
