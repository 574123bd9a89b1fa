// Package registry maps hierarchical ids (plugin ids, dotted names, paths) to
// registration records and resolves an id to its nearest registered ancestor.
package registry

import (
	"strings"
	"sync"

	"github.com/radixtools/go-ctrie/ctrie"
)

// Registry is a namespace of registered ids. It is safe for concurrent use.
type Registry[V any] struct {
	mu   sync.RWMutex
	sep  string
	tree *ctrie.Trie[V]
}

// New returns an empty Registry whose id segments are delimited by sep.
// With an empty sep any registered prefix of an id counts as its ancestor.
func New[V any](sep string) *Registry[V] {
	return &Registry[V]{
		sep:  sep,
		tree: ctrie.New[V](),
	}
}

// Len returns the number of registered ids.
func (r *Registry[V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.tree.Len()
}

// Register associates rec with id. Returns the previous record (if any).
func (r *Registry[V]) Register(id string, rec V) (V, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.tree.Insert(id, rec)
}

// Unregister removes id and returns its record (if any).
func (r *Registry[V]) Unregister(id string) (V, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.tree.Remove(id)
}

// Lookup returns the record registered under exactly id.
func (r *Registry[V]) Lookup(id string) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.tree.Get(id)
}

// IDs returns all registered ids in a sorted order.
func (r *Registry[V]) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.tree.Keys()
}

// Resolve returns the nearest registered ancestor of id (id itself included)
// together with its record.
//
// A registered id is an ancestor when it equals id, is empty, ends with the
// separator or is followed by the separator in id. So with "-" as a separator
// "grafana" resolves "grafana-clock-panel" while "graf" does not.
func (r *Registry[V]) Resolve(id string) (string, V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.sep == "" {
		return r.tree.LongestPrefix(id)
	}

	var (
		ancestor string
		rec      V
		found    bool
	)

	// prefixes come shortest first, the last accepted one is the nearest
	r.tree.WalkPath(id, func(kv ctrie.KV[V]) bool {
		if r.isAncestor(kv.Key, id) {
			ancestor, rec, found = kv.Key, kv.Val, true
		}
		return true
	})

	return ancestor, rec, found
}

// isAncestor assumes prefix is a prefix of id.
func (r *Registry[V]) isAncestor(prefix, id string) bool {
	return len(prefix) == len(id) ||
		prefix == "" ||
		strings.HasSuffix(prefix, r.sep) ||
		strings.HasPrefix(id[len(prefix):], r.sep)
}

// Compact releases the structure left behind by unregistered ids.
func (r *Registry[V]) Compact() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.tree.Compact()
}
