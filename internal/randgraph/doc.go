// Package randgraph generates random directed graphs for differential
// and property-based testing (spec.md §8): Erdos-Renyi-style sparse
// digraphs and random tournaments, both over the dense vertex range
// graph.NewGraph expects.
//
// Grounded on katalvlaran-lvlath/builder/impl_random_sparse.go's
// RandomSparse(n, p) constructor: the same independent-Bernoulli-trial
// model over ordered vertex pairs, the same "stable i asc, j asc trial
// order for deterministic output given a fixed seed" discipline, and
// the same fail-fast parameter validation before any mutation. Ported
// from lvlath/core's string-keyed, builder-option-configured graphs to
// this package's dense int-indexed graph.Graph, and carrying its own
// *rand.Rand rather than a builder option struct, since randgraph has
// no other configuration surface to fold the RNG into.
package randgraph
