// File: bound.go
// Role: the public entry point combining LBPack and LBLP by max, per
// spec.md 4.E. Both components are independently admissible, so their
// max is too, and bnb calls this once per residual graph at each search
// node to decide whether the branch can be pruned.
package bound

import "github.com/xosmig/breaking-the-cycle/graph"

// Bound returns the larger of LBPack and LBLP for g's current live
// subgraph. Both are lower bounds on the optimal feedback vertex set
// size of the residual, so their maximum is too, and it is the tightest
// of the two available cheaply without running a full LP solver.
func Bound(g *graph.Graph) int {
	pack := LBPack(g)
	lp := LBLP(g)
	if lp > pack {
		return lp
	}
	return pack
}
