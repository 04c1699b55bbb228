package icnet

// Stats tracks how a reduction spent its gas, broken down by rewrite
// schema. Mirrors the teacher's habit of keeping a small counters struct
// alongside the engine and exposing it read-only (GetStats in the
// original deltanet.Network), generalized here to the four schemas this
// domain's combinators actually produce.
type Stats struct {
	DeltaDelta int // cross-annihilation
	GammaGamma int // parallel annihilation
	DeltaGamma int // duplication / commutation
	Erasure    int // epsilon retiring itself against its partner
}

// Total returns the sum of all rule counts, which always equals GasUsed
// for a net that hasn't hit its gas limit mid-rule (every counted rule
// increments gas by exactly one step).
func (s Stats) Total() int {
	return s.DeltaDelta + s.GammaGamma + s.DeltaGamma + s.Erasure
}
