package icnet

import (
	"fmt"
	"io"
)

var agentColor = map[AgentType]string{
	Delta:   "red",
	Gamma:   "blue",
	Epsilon: "green",
}

var agentGlyph = map[AgentType]string{
	Delta:   "d",
	Gamma:   "g",
	Epsilon: "e",
}

// WriteDOT emits a Graphviz representation of the net's active nodes and
// their links, for visualization tooling outside the core (spec.md §6
// DOT export collaborator). Only active nodes are shown; each edge is
// emitted once, from the lower port owner to its peer, to avoid doubling
// every link.
func (n *Net) WriteDOT(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph ic_net {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  rankdir=LR;"); err != nil {
		return err
	}

	for i := 0; i < n.used; i++ {
		node := n.nodes[i]
		if !node.Active {
			continue
		}
		if _, err := fmt.Fprintf(w, "  node%d [label=\"%s%d\", shape=circle, color=%s];\n",
			i, agentGlyph[node.Type], i, agentColor[node.Type]); err != nil {
			return err
		}
	}

	for i := 0; i < n.used; i++ {
		node := n.nodes[i]
		if !node.Active {
			continue
		}
		for p, link := range node.Ports {
			if link.isUnlinked() {
				continue
			}
			// Emit each undirected edge once: only from the endpoint
			// that sorts first, so a->b isn't also printed as b->a.
			if link.PeerNode < i || (link.PeerNode == i && link.PeerPort < p) {
				continue
			}
			if _, err := fmt.Fprintf(w, "  node%d -> node%d [label=\"%d-%d\", arrowhead=none];\n",
				i, link.PeerNode, p, link.PeerPort); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
