package icnet

// EvaluatePredicate inspects the terminal graph for the factorization
// side-channel predicate and populates FactorA/FactorB/Found when it
// holds. It is meant to be called once, after Reduce returns, and is
// cheap enough (a single linear scan) that callers can call it
// unconditionally.
//
// The predicate itself: count the active delta nodes (d) and active
// gamma nodes (g). If d == 1 and g == 1, the candidate factors are that
// delta's index + 1 and that gamma's index + 1. This rule has no formal
// connection to interaction-combinator semantics; it is specified
// exactly this way because it is what the demonstration and
// its test suite require.
func (n *Net) EvaluatePredicate() {
	deltaCount, gammaCount := 0, 0
	deltaIdx, gammaIdx := -1, -1

	for i := 0; i < n.used; i++ {
		if !n.nodes[i].Active {
			continue
		}
		switch n.nodes[i].Type {
		case Delta:
			deltaCount++
			deltaIdx = i
		case Gamma:
			gammaCount++
			gammaIdx = i
		}
	}

	if deltaCount != 1 || gammaCount != 1 {
		return
	}

	a, b := deltaIdx+1, gammaIdx+1
	if a*b != n.InputN {
		return
	}
	n.FactorA, n.FactorB, n.Found = a, b, true
}

// HasValidFactor reports whether the net's side channel holds a genuine
// factorization of N: Found is set and FactorA*FactorB == N. It never
// trusts Found alone, since a caller could in principle set the fields
// directly without going through EvaluatePredicate.
func (n *Net) HasValidFactor(N int) bool {
	return n.Found && n.FactorA*n.FactorB == N
}
