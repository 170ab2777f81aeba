// Package reduce implements the reduction/kernelization engine: a fixed
// catalog of soundness-preserving rewriting rules applied to fixpoint,
// each rule either forcing a vertex into S or contracting it away.
//
// The rule catalog (SELF-LOOP, SINK/SOURCE, CORE, DOME, DOUBLE-EDGE,
// TWIN/flower, CROWN) is grounded on the PACE-solver reduction sketch in
// spec.md 4.C; the engine's worklist-driven fixpoint loop and its
// functional-option configuration (WithCrownBudget) are grounded on
// lvlath's pervasive GraphOption/BuilderOption pattern
// (core/types.go, builder/config.go).
package reduce
