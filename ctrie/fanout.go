package ctrie

import (
	"github.com/hideo55/go-popcount"
)

// edge is a labeled link to a child node. A label is never empty.
type edge[V any] struct {
	label string
	node  *node[V]
}

// fanout holds the children of a node indexed by the first byte of their labels.
//
// Sibling labels never share a prefix, so the first byte is unique per node.
// bitmap has a bit for every possible first byte (2**8 entries) and edges are
// kept dense and ordered by that byte: the rank of a set bit is its edge index.
type fanout[V any] struct {
	bitmap [4]uint64
	edges  []edge[V]
}

func (f *fanout[V]) size() int {
	return len(f.edges)
}

// locate returns the index of the edge starting with b and whether it exists.
// When there is no such edge the index is the position it has to be inserted at.
func (f *fanout[V]) locate(b byte) (int, bool) {
	if len(f.edges) == 0 {
		return 0, false
	}

	ofs := b >> 6
	idx := b & 0x3F // the lowest 6 bits (2**6 == 64)
	bmp := f.bitmap[ofs]

	cnt := popcount.Count(bmp & (uint64(1)<<idx - 1))
	for j := byte(0); j < ofs; j++ {
		cnt += popcount.Count(f.bitmap[j])
	}

	return int(cnt), (bmp>>idx)&0x01 != 0
}

// insertAt puts a new edge at a position obtained from locate.
func (f *fanout[V]) insertAt(pos int, e edge[V]) {
	b := e.label[0]
	f.bitmap[b>>6] |= uint64(1) << (b & 0x3F)

	f.edges = append(f.edges, edge[V]{})
	copy(f.edges[pos+1:], f.edges[pos:])
	f.edges[pos] = e
}

func (f *fanout[V]) removeAt(pos int) {
	b := f.edges[pos].label[0]
	f.bitmap[b>>6] &^= uint64(1) << (b & 0x3F)

	last := len(f.edges) - 1
	copy(f.edges[pos:], f.edges[pos+1:])
	f.edges[last] = edge[V]{} // release the node
	f.edges = f.edges[:last]
}
