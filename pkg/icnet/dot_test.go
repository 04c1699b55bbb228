package icnet

import (
	"strings"
	"testing"
)

func TestWriteDOTOmitsRetiredNodes(t *testing.T) {
	net := NewNet(10, 100)
	d, _ := net.NewNode(Delta)
	g, _ := net.NewNode(Gamma)
	net.Connect(d, Principal, g, Principal)
	Reduce(net) // retires d and g; fresh delta/gamma pairs keep duplicating until the arena is full

	var buf strings.Builder
	if err := net.WriteDOT(&buf); err != nil {
		t.Fatalf("WriteDOT() error: %v", err)
	}
	out := buf.String()

	if strings.Contains(out, "node0 ") || strings.Contains(out, "node1 ") {
		t.Fatalf("retired nodes 0,1 should not appear: %s", out)
	}
	if !strings.HasPrefix(out, "digraph ic_net {") {
		t.Fatalf("expected a digraph header, got: %s", out)
	}
}

func TestDebugStringReportsSideChannel(t *testing.T) {
	net := NewNet(4, 50)
	net.InputN = 6
	net.FactorA, net.FactorB, net.Found = 2, 3, true
	s := net.DebugString()
	if !strings.Contains(s, "factors 2*3=6") {
		t.Fatalf("DebugString missing factor report: %s", s)
	}
}
