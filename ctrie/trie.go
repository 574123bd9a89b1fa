package ctrie

import (
	"strings"
)

// KV represents a key-value pair
type KV[V any] struct {
	Key string
	Val V
}

// Trie is a compressed prefix tree mapping string keys to values of type V.
//
// The zero value is an empty trie ready for use. A Trie is not safe for
// concurrent use; callers sharing one must serialize access themselves.
type Trie[V any] struct {
	root node[V]
	size int
}

// New returns a new Trie optionally initialized with the given key-value pairs.
func New[V any](init ...KV[V]) *Trie[V] {
	t := &Trie[V]{}

	for _, kv := range init {
		t.Insert(kv.Key, kv.Val)
	}

	return t
}

// NewWithRoot returns a new Trie where the empty key is already mapped to val.
// It is the same as calling New and then Insert("", val).
func NewWithRoot[V any](val V, init ...KV[V]) *Trie[V] {
	t := New[V]()
	t.Insert("", val)

	for _, kv := range init {
		t.Insert(kv.Key, kv.Val)
	}

	return t
}

// Len returns the number of keys in the trie.
func (t *Trie[V]) Len() int {
	return t.size
}

// Insert associates val with key. It returns the previous value and true if
// the key was already present.
func (t *Trie[V]) Insert(key string, val V) (prev V, replaced bool) {
	cur := &t.root

	for key != "" {
		pos, ok := cur.children.locate(key[0])
		if !ok {
			// no edge shares a prefix with the key - add a leaf
			leaf := &node[V]{}
			cur.children.insertAt(pos, edge[V]{label: key, node: leaf})
			cur = leaf
			break
		}

		var (
			e   = &cur.children.edges[pos]
			num = commonPrefixLen(key, e.label)
		)

		if num < len(e.label) {
			// the key diverges inside the label - split the edge
			mid := &node[V]{}
			mid.children.insertAt(0, edge[V]{label: e.label[num:], node: e.node})
			e.label = e.label[:num]
			e.node = mid
		}

		cur = e.node
		key = key[num:]
	}

	if cur.terminal {
		prev, replaced = cur.val, true
	} else {
		cur.terminal = true
		t.size++
	}
	cur.val = val

	return prev, replaced
}

// lookup returns the node whose path spells key exactly, terminal or not.
func (t *Trie[V]) lookup(key string) *node[V] {
	cur := &t.root

	for key != "" {
		e := cur.child(key)
		if e == nil || !strings.HasPrefix(key, e.label) {
			return nil
		}
		cur, key = e.node, key[len(e.label):]
	}

	return cur
}

// Get returns a value associated with the key. A key that only prefixes
// other keys is not present.
func (t *Trie[V]) Get(key string) (V, bool) {
	if n := t.lookup(key); n != nil && n.terminal {
		return n.val, true
	}

	var zero V
	return zero, false
}

// Contains reports whether the key is present.
func (t *Trie[V]) Contains(key string) bool {
	n := t.lookup(key)
	return n != nil && n.terminal
}

// Find returns the value of the longest present key which is a prefix of key.
func (t *Trie[V]) Find(key string) (V, bool) {
	_, val, ok := t.LongestPrefix(key)
	return val, ok
}

// LongestPrefix is like Find but it also returns the matched key.
func (t *Trie[V]) LongestPrefix(key string) (string, V, bool) {
	var (
		best *node[V]
		size int // length of the best match
		cur  = &t.root
		rest = key
	)

	for {
		if cur.terminal {
			best, size = cur, len(key)-len(rest)
		}

		e := cur.child(rest)
		if e == nil || !strings.HasPrefix(rest, e.label) {
			break
		}
		cur, rest = e.node, rest[len(e.label):]
	}

	if best == nil {
		var zero V
		return "", zero, false
	}

	return key[:size], best.val, true
}

// WalkPath calls a handler for every present key which is a prefix of key,
// shortest first. The handler can continue the process by returning true or
// abort with false. It returns whether the walk was completed.
func (t *Trie[V]) WalkPath(key string, handler func(KV[V]) bool) bool {
	cur, rest := &t.root, key

	for {
		if cur.terminal && !handler(KV[V]{key[:len(key)-len(rest)], cur.val}) {
			return false
		}

		e := cur.child(rest)
		if e == nil || !strings.HasPrefix(rest, e.label) {
			return true
		}
		cur, rest = e.node, rest[len(e.label):]
	}
}

// Remove removes the key from the trie and returns its value (if any).
//
// The nodes are left in place; use Compact to get rid of the ones no key
// needs anymore.
func (t *Trie[V]) Remove(key string) (V, bool) {
	var zero V

	n := t.lookup(key)
	if n == nil || !n.terminal {
		return zero, false
	}

	prev := n.val
	n.terminal, n.val = false, zero
	t.size--

	return prev, true
}
