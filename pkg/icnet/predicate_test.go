package icnet

import "testing"

// TestHasValidFactor covers property 11 / scenario E4.
func TestHasValidFactor(t *testing.T) {
	net := NewNet(10, 100)
	net.InputN = 6
	net.FactorA = 2
	net.FactorB = 3
	net.Found = true

	if !net.HasValidFactor(6) {
		t.Fatalf("expected valid factorization of 6")
	}

	net.FactorA = 4
	if net.HasValidFactor(6) {
		t.Fatalf("4*3 != 6, should not be valid")
	}
}

func TestHasValidFactorRequiresFound(t *testing.T) {
	net := NewNet(10, 100)
	net.InputN = 6
	net.FactorA = 2
	net.FactorB = 3
	// Found deliberately left false.
	if net.HasValidFactor(6) {
		t.Fatalf("Found=false must not be treated as a solution")
	}
}

func TestEvaluatePredicateSingleDeltaGamma(t *testing.T) {
	net := NewNet(10, 100)
	net.InputN = 6
	// node 0: epsilon, node 1: delta (index+1=2), node 2: gamma (index+1=3)
	net.NewNode(Epsilon)
	net.NewNode(Delta)
	net.NewNode(Gamma)
	net.retire(0)

	net.EvaluatePredicate()

	if !net.Found || net.FactorA != 2 || net.FactorB != 3 {
		t.Fatalf("expected factors 2*3=6, got found=%v a=%d b=%d", net.Found, net.FactorA, net.FactorB)
	}
}

func TestEvaluatePredicateWrongProduct(t *testing.T) {
	net := NewNet(10, 100)
	net.InputN = 7
	net.NewNode(Delta)
	net.NewNode(Gamma)

	net.EvaluatePredicate()

	if net.Found {
		t.Fatalf("1*2=2 should not satisfy N=7")
	}
}

func TestEvaluatePredicateRequiresExactlyOneEach(t *testing.T) {
	net := NewNet(10, 100)
	net.InputN = 4
	net.NewNode(Delta)
	net.NewNode(Delta)
	net.NewNode(Gamma)

	net.EvaluatePredicate()

	if net.Found {
		t.Fatalf("two active deltas should not satisfy the predicate")
	}
}
