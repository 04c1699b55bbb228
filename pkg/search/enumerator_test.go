package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vic/icfactor/pkg/icnet"
)

// TestEnumerationTotality covers property 9: for indices 0..1000 with
// capacity >= 13, BuildNet succeeds and the net has at least one active
// pair, every port bidirectionally valid, and node count in [3, 12].
func TestEnumerationTotality(t *testing.T) {
	net := icnet.NewNet(13, 1000)
	for index := uint64(0); index <= 1000; index++ {
		require.NoError(t, BuildNet(index, net), "index %d", index)

		used := net.UsedNodes()
		assert.GreaterOrEqual(t, used, 3, "index %d", index)
		assert.LessOrEqual(t, used, 12, "index %d", index)

		assertPortsValid(t, net, index)
		assertHasActivePair(t, net, index)
	}
}

// TestEnumeratorCapacityTooSmall covers scenario E5: a tight capacity
// forces some indices to fail build, but every net that does build is
// still internally consistent.
func TestEnumeratorCapacityTooSmall(t *testing.T) {
	net := icnet.NewNet(5, 1000)
	for index := uint64(0); index < 10; index++ {
		err := BuildNet(index, net)
		if err != nil {
			continue
		}
		assertPortsValid(t, net, index)
	}
}

// TestBuildNetDeterministic covers property 10 (enumerator half):
// BuildNet(i, ...) yields identical nets across two calls.
func TestBuildNetDeterministic(t *testing.T) {
	n1 := icnet.NewNet(13, 100)
	n2 := icnet.NewNet(13, 100)

	for index := uint64(0); index < 50; index++ {
		require.NoError(t, BuildNet(index, n1))
		require.NoError(t, BuildNet(index, n2))

		require.Equal(t, n1.UsedNodes(), n2.UsedNodes(), "index %d", index)
		for i := 0; i < n1.UsedNodes(); i++ {
			assert.Equal(t, n1.NodeAt(i), n2.NodeAt(i), "index %d node %d", index, i)
		}
	}
}

func TestEnumStateNext(t *testing.T) {
	state := NewEnumState(13)
	net := icnet.NewNet(13, 100)

	ok, err := state.Next(net)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint64(1), state.CurrentIndex)

	ok, err = state.Next(net)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint64(2), state.CurrentIndex)
}

func assertPortsValid(t *testing.T, net *icnet.Net, index uint64) {
	t.Helper()
	used := net.UsedNodes()
	for i := 0; i < used; i++ {
		node := net.NodeAt(i)
		for p := 0; p < 3; p++ {
			link := node.Ports[p]
			if link.PeerNode < 0 {
				require.Equal(t, -1, link.PeerPort, "index %d node %d port %d", index, i, p)
				continue
			}
			require.True(t, link.PeerNode >= 0 && link.PeerNode < used,
				"index %d node %d port %d peer out of range: %+v", index, i, p, link)
			back := net.NodeAt(link.PeerNode).Ports[link.PeerPort]
			require.Equal(t, i, back.PeerNode, "index %d node %d port %d back-link disagrees", index, i, p)
			require.Equal(t, p, back.PeerPort, "index %d node %d port %d back-link disagrees", index, i, p)
		}
	}
}

func assertHasActivePair(t *testing.T, net *icnet.Net, index uint64) {
	t.Helper()
	used := net.UsedNodes()
	for i := 0; i < used; i++ {
		link := net.NodeAt(i).Ports[icnet.Principal]
		if link.PeerNode > i && link.PeerPort == icnet.Principal {
			return
		}
	}
	t.Fatalf("index %d: no active pair found", index)
}
