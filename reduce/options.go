package reduce

// DefaultCrownBudget bounds the size of the local pocket the CROWN rule
// (4.C rule 7) is willing to inspect. The spec.md 9 Open Question notes
// the source's value for this is empirical, not authoritative; callers
// that know their instance shape should override it with WithCrownBudget.
const DefaultCrownBudget = 8

// Option configures an Engine at construction time. Grounded on lvlath's
// functional-option constructors (core.GraphOption, builder.BuilderOption).
type Option func(*Engine)

// WithCrownBudget overrides the CROWN rule's local-pocket size cap.
func WithCrownBudget(k int) Option {
	return func(e *Engine) {
		if k > 0 {
			e.crownBudget = k
		}
	}
}

// doubleEdgeDegreeCap bounds how many 2-cycle neighbors the DOUBLE-EDGE
// rule (4.C rule 5) will accept before declining to force the vertex —
// past this size the "bounded local pattern" the spec describes is no
// longer cheap to verify, so the rule backs off rather than risk an
// unsound classification.
const doubleEdgeDegreeCap = 6

// twinFlowerThreshold is the minimum number of internally-disjoint
// 2-cycles that must meet at a vertex for the TWIN/flower rule (4.C
// rule 6) to force it into S.
const twinFlowerThreshold = 3
