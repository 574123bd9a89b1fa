package ctrie

// node is a branch or terminal point of the trie. The path from the root
// (concatenated edge labels) spells the key the node stands for.
type node[V any] struct {
	children fanout[V]
	// terminal is set when a key ends exactly here; val is meaningless otherwise
	terminal bool
	val      V
}

// child returns the only edge which may share a prefix with key.
func (n *node[V]) child(key string) *edge[V] {
	if key == "" {
		return nil
	}
	pos, ok := n.children.locate(key[0])
	if !ok {
		return nil
	}
	return &n.children.edges[pos]
}

// commonPrefixLen returns the number of leading bytes a and b have in common.
func commonPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var i int
	for ; i < n && a[i] == b[i]; i++ {
	}

	return i
}
