package ctrie

import (
	"strings"
)

type frame[V any] struct {
	node *node[V]
	path string
}

// Walk calls a handler for all keys with a given prefix in lexicographic order.
// It returns whether all prefixed keys were visited.
// The handler can continue the process by returning true or abort with false.
func (t *Trie[V]) Walk(prefix string, handler func(KV[V]) bool) bool {
	var (
		cur  = &t.root
		path string
		rest = prefix
	)

	// descend to the topmost node covering the prefix
	for rest != "" {
		e := cur.child(rest)
		if e == nil {
			return true
		}

		switch {
		case strings.HasPrefix(rest, e.label):
			rest = rest[len(e.label):]
		case strings.HasPrefix(e.label, rest):
			// the prefix ends inside the label
			rest = ""
		default:
			return true
		}

		cur = e.node
		path += e.label
	}

	return iterate(cur, path, handler)
}

// iterate visits the terminal nodes of a subtree in pre-order.
// The walk uses an explicit stack as a trie can be arbitrarily deep.
func iterate[V any](n *node[V], path string, h func(KV[V]) bool) bool {
	toVisit := []frame[V]{{n, path}}

	for l := len(toVisit); l > 0; l = len(toVisit) {
		// pop the last frame
		f := toVisit[l-1]
		toVisit = toVisit[:l-1]

		if f.node.terminal && !h(KV[V]{f.path, f.node.val}) {
			return false
		}

		// push the children in reverse so the smallest label is visited first
		edges := f.node.children.edges
		for i := len(edges) - 1; i >= 0; i-- {
			toVisit = append(toVisit, frame[V]{edges[i].node, f.path + edges[i].label})
		}
	}

	return true
}

// Keys returns all keys in a sorted order.
//
// It walks the whole trie, so it is relatively slow.
func (t *Trie[V]) Keys() []string {
	keys := make([]string, 0, t.size)

	iterate(&t.root, "", func(kv KV[V]) bool {
		keys = append(keys, kv.Key)
		return true
	})

	return keys
}

// Items returns all key-value pairs in the same order as Keys.
func (t *Trie[V]) Items() []KV[V] {
	items := make([]KV[V], 0, t.size)

	iterate(&t.root, "", func(kv KV[V]) bool {
		items = append(items, kv)
		return true
	})

	return items
}
