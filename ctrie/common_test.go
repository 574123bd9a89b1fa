package ctrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkInvariants walks the whole trie and verifies its structural invariants.
func checkInvariants[V any](t *testing.T, tr *Trie[V]) {
	t.Helper()

	var (
		terminals int
		toVisit   = []*node[V]{&tr.root}
	)

	for l := len(toVisit); l > 0; l = len(toVisit) {
		n := toVisit[l-1]
		toVisit = toVisit[:l-1]

		if n.terminal {
			terminals++
		}

		var (
			edges = n.children.edges
			bits  int
		)

		for _, word := range n.children.bitmap {
			for ; word != 0; word &= word - 1 {
				bits++
			}
		}

		require.Equal(t, len(edges), bits, "bitmap does not match the edges")

		for i, e := range edges {
			require.NotEmpty(t, e.label, "empty edge label")
			require.NotNil(t, e.node)

			pos, ok := n.children.locate(e.label[0])
			require.True(t, ok, "label %q is not in the bitmap", e.label)
			require.Equal(t, i, pos, "label %q is out of order", e.label)

			if i > 0 {
				prev := edges[i-1].label
				require.Less(t, prev[0], e.label[0], "labels %q and %q are not ordered", prev, e.label)
				require.Zero(t, commonPrefixLen(prev, e.label))
			}

			toVisit = append(toVisit, e.node)
		}
	}

	assert.Equal(t, terminals, tr.Len(), "Len does not match the terminal nodes")
}

func countNodes[V any](tr *Trie[V]) int {
	var (
		total   int
		toVisit = []*node[V]{&tr.root}
	)

	for l := len(toVisit); l > 0; l = len(toVisit) {
		n := toVisit[l-1]
		toVisit = toVisit[:l-1]
		total++

		for _, e := range n.children.edges {
			toVisit = append(toVisit, e.node)
		}
	}

	return total
}
