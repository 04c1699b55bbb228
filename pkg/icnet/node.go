package icnet

// AgentType identifies the kind of combinator a Node carries.
type AgentType int

const (
	Delta   AgentType = iota // δ, binary combinator
	Gamma                    // γ, binary combinator
	Epsilon                  // ε, erasure combinator
)

func (t AgentType) String() string {
	switch t {
	case Delta:
		return "delta"
	case Gamma:
		return "gamma"
	case Epsilon:
		return "epsilon"
	default:
		return "unknown"
	}
}

// Port indices. 0 is always principal; 1 and 2 are auxiliary.
const (
	Principal = 0
	Aux1      = 1
	Aux2      = 2
	numPorts  = 3
)

// Link is a connection endpoint: the peer node and the peer's port.
// A node index of -1 marks the port unlinked; by convention an unlinked
// port's PeerPort is also -1 so both halves of "unlinked" agree.
type Link struct {
	PeerNode int
	PeerPort int
}

func unlinked() Link { return Link{PeerNode: -1, PeerPort: -1} }

func (l Link) isUnlinked() bool { return l.PeerNode < 0 }

// Node is one agent in the net: its type, its three ports, and whether it
// is still live. Retired nodes (Active == false) keep their storage; the
// arena never reclaims a slot within a single reduction.
type Node struct {
	Type   AgentType
	Ports  [numPorts]Link
	Active bool
}
