package ctrie

// Compact merges every non-terminal node having a single child into its
// parent edge and drops non-terminal leaves left behind by Remove.
// The root is never discarded. Returns the number of discarded nodes.
func (t *Trie[V]) Compact() int {
	return compact(&t.root)
}

func compact[V any](root *node[V]) (dropped int) {
	// breadth-first order puts every node after its parent
	order := []*node[V]{root}
	for i := 0; i < len(order); i++ {
		for _, e := range order[i].children.edges {
			order = append(order, e.node)
		}
	}

	// so walking it backwards cleans up the children first
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]

		for j := 0; j < n.children.size(); {
			var (
				e     = &n.children.edges[j]
				child = e.node
			)

			switch {
			case child.terminal:
				j++
			case child.children.size() == 0:
				// dead leaf
				n.children.removeAt(j)
				dropped++
			case child.children.size() == 1:
				// pass-through node - the first byte of the label stays the same
				next := child.children.edges[0]
				e.label += next.label
				e.node = next.node
				dropped++
				j++
			default:
				j++
			}
		}
	}

	return dropped
}
