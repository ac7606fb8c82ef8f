package network_test

import (
	"testing"

	"github.com/katalvlaran/effres/network"
	"github.com/stretchr/testify/require"
)

func TestComponents(t *testing.T) {
	t.Parallel()

	require.Equal(t, [][]int{{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}}, network.Reference().Components())

	split := network.Topology{1: {2}, 2: {}, 3: {4}, 4: {}, 5: {}}
	require.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, split.Components())
	require.True(t, split.Connected(1, 2))
	require.False(t, split.Connected(1, 3))
	require.False(t, split.Connected(1, 99))

	// Edges declared only from the higher id still connect.
	rev := network.Topology{1: {}, 2: {1}, 3: {2}}
	require.True(t, rev.Connected(1, 3))
}
