package icnet

import "fmt"

// DebugString renders a plain-text dump of the net's active nodes and
// their port wiring, plus gas and side-channel state. Grounded on the
// original implementation's ic_net_print (original_source/src/ic_runtime.c),
// which spec.md's distillation drops in favor of DOT export alone; kept
// here because it's the faster eyeball-a-failing-net tool and the CLI's
// --verbose flag wants it.
func (n *Net) DebugString() string {
	s := fmt.Sprintf("net: %d/%d nodes used, gas %d/%d\n", n.used, n.capacity, n.gasUsed, n.gasLimit)
	s += fmt.Sprintf("input N=%d", n.InputN)
	if n.Found {
		s += fmt.Sprintf(", factors %d*%d=%d\n", n.FactorA, n.FactorB, n.FactorA*n.FactorB)
	} else {
		s += ", no factors found\n"
	}

	for i := 0; i < n.used; i++ {
		node := n.nodes[i]
		if !node.Active {
			continue
		}
		s += fmt.Sprintf("  node %d: type=%s ports=[%s, %s, %s]\n",
			i, node.Type, portString(node.Ports[0]), portString(node.Ports[1]), portString(node.Ports[2]))
	}
	return s
}

func portString(l Link) string {
	if l.isUnlinked() {
		return "-"
	}
	return fmt.Sprintf("(%d,%d)", l.PeerNode, l.PeerPort)
}
