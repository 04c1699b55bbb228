// Package search implements the indexed enumerator and search driver that
// sit on top of pkg/icnet: a total, deterministic map from a candidate
// index to a syntactically valid net, and the loop that builds, reduces,
// and predicate-tests successive candidates.
package search

import (
	"errors"

	"github.com/vic/icfactor/pkg/icnet"
)

// sizeCap bounds how much of the index space maps into node-count
// variation; n ranges over [3, sizeCap+2].
const sizeCap = 10

// patternBits is the modulus applied to the node index when picking
// which two bits of the pattern select that node's agent type. Chosen to
// match the construction schema's own "mod 16" wraparound so high node
// indices recycle pattern bits instead of needing an unbounded pattern.
const patternBits = 16

// ErrNetTooSmall is returned by BuildNet when the net's capacity can't
// hold the node count this index requires.
var ErrNetTooSmall = errors.New("search: net capacity too small for this index")

// BuildNet resets net and deterministically constructs the graph for the
// given index. It is idempotent in (index, net.Capacity()): the same
// index against a net of the same capacity always yields the same graph.
func BuildNet(index uint64, net *icnet.Net) error {
	net.Reset()

	n := 3 + int(index%sizeCap)
	pattern := index / sizeCap

	if n > net.Capacity() {
		return ErrNetTooSmall
	}

	delta, err := net.NewNode(icnet.Delta)
	if err != nil {
		return err
	}
	gamma, err := net.NewNode(icnet.Gamma)
	if err != nil {
		return err
	}
	net.Connect(delta, icnet.Principal, gamma, icnet.Principal)

	for k := 2; k < n; k++ {
		if _, err := net.NewNode(agentTypeForNode(pattern, k)); err != nil {
			return err
		}
	}

	for i := 0; i < n; i++ {
		next := (i + 1) % n
		prev := (i + n - 1) % n

		net.Connect(i, icnet.Aux1, next, icnet.Aux2)
		net.Connect(i, icnet.Aux2, prev, icnet.Aux1)

		if i != 0 && i != 1 {
			net.Connect(i, icnet.Principal, (i+2)%n, icnet.Principal)
		}
	}

	return nil
}

// agentTypeForNode picks node k's agent type from two bits of pattern,
// taken at bit offset (k mod patternBits)*2: 0 -> delta, 1 -> gamma,
// anything else (2 or 3) -> epsilon.
func agentTypeForNode(pattern uint64, k int) icnet.AgentType {
	shift := uint((k % patternBits) * 2)
	bits := (pattern >> shift) & 0x3
	switch bits {
	case 0:
		return icnet.Delta
	case 1:
		return icnet.Gamma
	default:
		return icnet.Epsilon
	}
}

// EnumState is convenience iteration state over BuildNet, mirroring the
// source's ic_enum_state_t.
type EnumState struct {
	MaxNodes     int
	CurrentIndex uint64
}

// NewEnumState initializes enumeration state for nets of the given
// capacity.
func NewEnumState(maxNodes int) *EnumState {
	return &EnumState{MaxNodes: maxNodes}
}

// Next builds the net at state.CurrentIndex and advances the index. It
// first checks net's capacity against state.MaxNodes, mirroring the
// source's ic_enum_state_t.max_nodes, which sizes the net the state
// drives rather than letting a caller hand it an undersized one;
// returns false only when that check or BuildNet itself fails (capacity
// exhaustion), since the index space itself is unbounded.
func (s *EnumState) Next(net *icnet.Net) (bool, error) {
	if net.Capacity() < s.MaxNodes {
		return false, ErrNetTooSmall
	}
	if err := BuildNet(s.CurrentIndex, net); err != nil {
		return false, err
	}
	s.CurrentIndex++
	return true, nil
}
