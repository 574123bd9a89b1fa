// Package ctrie defines an implementation of a compressed prefix tree (a radix
// tree) mapping string keys to values.
//
// Chains of non-branching nodes are collapsed into a single edge labeled with a
// multi-byte string, so there is a node per branch point or terminal key only.
//
// Invariants:
// ----------
//
//   - sibling labels never share a non-empty prefix (they differ in the first byte);
//   - Len is the number of terminal nodes;
//   - the labels on the path to a terminal node spell its key;
//   - Remove only clears the terminal flag, the structure stays until Compact.
//
// Children of a node are stored in a fanout: a 256-bit bitmap of label first
// bytes plus a dense slice of edges ordered by that byte. An edge index is the
// population count of the bitmap below the byte's bit.
//
// Example trie:
// ------------
//
//	                       ,-- ["app"] TERM
//	                       |
//	[ROOT] -- ["grafana-"] +-- ["clock-panel"] TERM
//	                       |
//	                       `-- ["test"] TERM -- ["data"] TERM
//
// The trie above contains the following keys:
//
//   - "grafana-app"
//   - "grafana-clock-panel"
//   - "grafana-test"
//   - "grafana-testdata"
//
// Find (a longest-prefix match) returns the value of "grafana-test" for
// "grafana-test-v2" and nothing for "grafana-" as it is not a terminal key.
package ctrie
