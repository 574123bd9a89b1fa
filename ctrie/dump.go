package ctrie

import (
	"fmt"
	"io"
	"strconv"
)

type dumpFrame[V any] struct {
	node   *node[V]
	tag    string
	indent string
}

// Dump writes an indented picture of the node graph, one node per line.
func (t *Trie[V]) Dump(w io.Writer) {
	toVisit := []dumpFrame[V]{{&t.root, "ROOT", ""}}

	for l := len(toVisit); l > 0; l = len(toVisit) {
		f := toVisit[l-1]
		toVisit = toVisit[:l-1]

		if f.node.terminal {
			fmt.Fprintf(w, "%s%s TERM val=%v\n", f.indent, f.tag, f.node.val)
		} else {
			fmt.Fprintf(w, "%s%s NODE\n", f.indent, f.tag)
		}

		edges := f.node.children.edges
		for i := len(edges) - 1; i >= 0; i-- {
			toVisit = append(toVisit, dumpFrame[V]{edges[i].node, strconv.Quote(edges[i].label), f.indent + "  "})
		}
	}
}
