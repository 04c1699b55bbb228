package icnet

// applyRewrite dispatches on the pair's agent types and runs the matching
// schema. It returns false when no rewrite happened (either because the
// pair doesn't match a known schema, which cannot occur for a validated
// active pair since every agent type combination is covered, or because a
// delta-gamma rewrite aborted for lack of capacity).
func applyRewrite(net *Net, a, b int) bool {
	ta, tb := net.nodes[a].Type, net.nodes[b].Type

	switch {
	case ta == Epsilon || tb == Epsilon:
		eps, other := a, b
		if tb == Epsilon {
			eps, other = b, a
		}
		applyErasure(net, eps, other)
		net.Stats.Erasure++
		net.trace("erasure", a, b)
		return true

	case ta == Delta && tb == Delta:
		applyDeltaDelta(net, a, b)
		net.Stats.DeltaDelta++
		net.trace("delta_delta", a, b)
		return true

	case ta == Gamma && tb == Gamma:
		applyGammaGamma(net, a, b)
		net.Stats.GammaGamma++
		net.trace("gamma_gamma", a, b)
		return true

	case (ta == Delta && tb == Gamma) || (ta == Gamma && tb == Delta):
		delta, gamma := a, b
		if ta == Gamma {
			delta, gamma = b, a
		}
		if !applyDeltaGamma(net, delta, gamma) {
			return false
		}
		net.Stats.DeltaGamma++
		net.trace("delta_gamma", a, b)
		return true
	}

	return false
}

// applyDeltaDelta is cross-annihilation: a.aux1<->b.aux2, a.aux2<->b.aux1,
// both nodes retired.
func applyDeltaDelta(net *Net, a, b int) {
	aux1a, aux2a := net.nodes[a].Ports[Aux1], net.nodes[a].Ports[Aux2]
	aux1b, aux2b := net.nodes[b].Ports[Aux1], net.nodes[b].Ports[Aux2]

	severAllSix(net, a, b)

	wire(net, aux1a, aux2b)
	wire(net, aux2a, aux1b)

	net.retire(a)
	net.retire(b)
}

// applyGammaGamma is parallel annihilation: a.aux1<->b.aux1,
// a.aux2<->b.aux2, both nodes retired.
func applyGammaGamma(net *Net, a, b int) {
	aux1a, aux2a := net.nodes[a].Ports[Aux1], net.nodes[a].Ports[Aux2]
	aux1b, aux2b := net.nodes[b].Ports[Aux1], net.nodes[b].Ports[Aux2]

	severAllSix(net, a, b)

	wire(net, aux1a, aux1b)
	wire(net, aux2a, aux2b)

	net.retire(a)
	net.retire(b)
}

// applyDeltaGamma is duplication/commutation. It allocates a fresh delta'
// and gamma', links delta'.principal<->gamma'.principal, and cross-wires
// the four original auxiliary peers onto the new nodes in the exact order
// the source implementation uses (which differs from some literature
// presentations of this rule):
//
//	delta'.aux1 <-> (original delta.aux1)
//	delta'.aux2 <-> (original gamma.aux1)
//	gamma'.aux1 <-> (original delta.aux2)
//	gamma'.aux2 <-> (original gamma.aux2)
//
// If either allocation fails, the whole rewrite is aborted: both original
// nodes are left exactly as they were (still linked, still active), no
// gas is charged, and false is returned.
func applyDeltaGamma(net *Net, delta, gamma int) bool {
	deltaAux1, deltaAux2 := net.nodes[delta].Ports[Aux1], net.nodes[delta].Ports[Aux2]
	gammaAux1, gammaAux2 := net.nodes[gamma].Ports[Aux1], net.nodes[gamma].Ports[Aux2]

	newDelta, err := net.NewNode(Delta)
	if err != nil {
		return false
	}
	newGamma, err := net.NewNode(Gamma)
	if err != nil {
		net.retire(newDelta)
		return false
	}

	severAllSix(net, delta, gamma)

	net.Connect(newDelta, Principal, newGamma, Principal)
	connectIfLinked(net, newDelta, Aux1, deltaAux1)
	connectIfLinked(net, newDelta, Aux2, gammaAux1)
	connectIfLinked(net, newGamma, Aux1, deltaAux2)
	connectIfLinked(net, newGamma, Aux2, gammaAux2)

	net.retire(delta)
	net.retire(gamma)
	return true
}

// applyErasure retires eps only; other and its auxiliaries are untouched.
func applyErasure(net *Net, eps, other int) {
	net.retire(eps)
}

// severAllSix severs the principal link between a and b plus all four
// auxiliary links, leaving every port named in the snapshot unlinked so
// the rewrite can freely rewire from the pre-read peers.
func severAllSix(net *Net, a, b int) {
	net.sever(a, Principal)
	net.sever(a, Aux1)
	net.sever(a, Aux2)
	net.sever(b, Aux1)
	net.sever(b, Aux2)
}

// wire connects two previously-snapshotted peers directly to each other.
// An unlinked snapshot means that auxiliary port had no peer; nothing is
// connected in that case, leaving both sides dangling-free (there is
// nothing to dangle: an unlinked port is simply left unlinked).
func wire(net *Net, x, y Link) {
	if x.isUnlinked() || y.isUnlinked() {
		return
	}
	net.Connect(x.PeerNode, x.PeerPort, y.PeerNode, y.PeerPort)
}

// connectIfLinked connects newNode's port to the peer recorded in peer,
// if that snapshot wasn't unlinked.
func connectIfLinked(net *Net, newNode, newPort int, peer Link) {
	if peer.isUnlinked() {
		return
	}
	net.Connect(newNode, newPort, peer.PeerNode, peer.PeerPort)
}
