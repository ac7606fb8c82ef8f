package network_test

import (
	"testing"

	"github.com/katalvlaran/effres/network"
	"github.com/stretchr/testify/require"
)

// TestValidate covers every structural violation class.
func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		topo  network.Topology
		cause error
	}{
		{"reference", network.Reference(), nil},
		{"single edge", network.Topology{1: {2}, 2: {}}, nil},
		{"empty", network.Topology{}, network.ErrEmptyTopology},
		{"neighbor-only node", network.Topology{1: {2}}, nil},
		{"gap in ids", network.Topology{1: {3}, 3: {}}, nil},
		{"zero id", network.Topology{0: {1}, 1: {}}, network.ErrNodeOutOfRange},
		{"zero neighbor", network.Topology{1: {2}, 2: {0}}, network.ErrNodeOutOfRange},
		{"negative neighbor", network.Topology{1: {-1}}, network.ErrNodeOutOfRange},
		{"beyond MaxOrder", network.Topology{1: {network.MaxOrder + 1}}, network.ErrNodeOutOfRange},
		{"self-loop", network.Topology{1: {1, 2}, 2: {}}, network.ErrSelfLoop},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tc.topo.Validate()
			if tc.cause == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, network.ErrMalformedTopology)
			require.ErrorIs(t, err, tc.cause)
		})
	}
}

// TestReferenceShape pins the canonical network's size and degrees.
func TestReferenceShape(t *testing.T) {
	t.Parallel()

	ref := network.Reference()
	require.Equal(t, 15, ref.Order())
	require.Equal(t, 28, ref.EdgeCount())
	require.Len(t, ref.Edges(), 28)

	require.Len(t, ref.Incident(1), 4)
	require.Len(t, ref.Incident(5), 3)
	require.Len(t, ref.Incident(13), 7)
	require.Len(t, ref.Incident(15), 3)

	sum := 0
	for _, id := range ref.NodeIDs() {
		sum += len(ref.Incident(id))
	}
	require.Equal(t, 2*ref.EdgeCount(), sum) // handshake lemma
}

func TestIncident(t *testing.T) {
	t.Parallel()

	ref := network.Reference()
	require.Equal(t, []int{2, 9, 10, 11}, ref.Incident(1))
	require.Equal(t, []int{4, 6, 13}, ref.Incident(5))
	require.Equal(t, []int{6, 9, 13}, ref.Incident(14))

	// Parallel resistors appear once each, from either declaration side.
	bundle := network.Topology{1: {2, 2}, 2: {1}}
	require.Equal(t, []int{2, 2, 2}, bundle.Incident(1))
	require.Len(t, bundle.Incident(2), 3)
}

func TestNodeIDsAndEdgesOrder(t *testing.T) {
	t.Parallel()

	topo := network.Topology{3: {1}, 1: {2}, 2: {3}}
	require.Equal(t, []int{1, 2, 3}, topo.NodeIDs())
	require.Equal(t, []network.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 1}}, topo.Edges())
}

func TestClone(t *testing.T) {
	t.Parallel()

	ref := network.Reference()
	cp := ref.Clone()
	cp[1][0] = 15
	require.Equal(t, 2, ref[1][0], "Clone must not share neighbor slices")
	require.Equal(t, network.Reference(), ref)
	require.Len(t, cp.Edges(), ref.EdgeCount())
}

func TestFromEdges(t *testing.T) {
	t.Parallel()

	topo, err := network.FromEdges(3, []network.Edge{{U: 1, V: 2}, {U: 2, V: 3}})
	require.NoError(t, err)
	require.Equal(t, network.Topology{1: {2}, 2: {3}, 3: {}}, topo)

	_, err = network.FromEdges(2, []network.Edge{{U: 1, V: 3}})
	require.ErrorIs(t, err, network.ErrNodeOutOfRange)

	_, err = network.FromEdges(2, []network.Edge{{U: 4, V: 1}})
	require.ErrorIs(t, err, network.ErrMalformedTopology)

	_, err = network.FromEdges(0, nil)
	require.ErrorIs(t, err, network.ErrEmptyTopology)
}

func TestEdgeOther(t *testing.T) {
	t.Parallel()

	e := network.Edge{U: 4, V: 5}
	o, ok := e.Other(4)
	require.True(t, ok)
	require.Equal(t, 5, o)
	_, ok = e.Other(6)
	require.False(t, ok)
}

// Ids that only appear as neighbors, or nowhere below the largest id, are
// still nodes.
func TestOrderCountsNeighborOnlyNodes(t *testing.T) {
	t.Parallel()

	single := network.Topology{1: {2}}
	require.Equal(t, 2, single.Order())
	require.Equal(t, []int{1, 2}, single.NodeIDs())
	require.True(t, single.Has(2))
	require.False(t, single.Has(3))
	require.NoError(t, single.CheckNode(2))
	require.Equal(t, [][]int{{1, 2}}, single.Components())

	gap := network.Topology{1: {3}}
	require.Equal(t, 3, gap.Order())
	require.Equal(t, [][]int{{1, 3}, {2}}, gap.Components())

	err := gap.CheckNode(4)
	require.ErrorIs(t, err, network.ErrMalformedTopology)
	require.ErrorIs(t, err, network.ErrNodeOutOfRange)
	require.ErrorIs(t, gap.CheckNode(0), network.ErrNodeOutOfRange)
}
