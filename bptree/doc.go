// Package bptree implements an in-memory, generically keyed B+ tree.
//
// The tree is insert-only: entries are never removed and nodes are never
// merged. Duplicate keys are allowed and coexist as separate entries.
//
// # Structure
//
//	Tree
//	 ├── internal node (keys + children, len(children) == len(keys)+1)
//	 │      └── ...
//	 │             └── leaf (keys + values) ──next──▶ leaf ──next──▶ leaf
//
// All leaves are linked into a forward-only chain in ascending key order,
// which makes range scans a linear walk instead of repeated descents.
//
// # Capacity
//
// A tree with branching factor m splits a leaf once it holds m entries and
// an internal node once it holds m+1 children, so after every Insert leaves
// hold at most m-1 entries and internal nodes at most m children.
//
// # Range Search
//
// RangeSearch supports three comparators:
//
//   - LessEqual ("<="): every value whose key is <= the probe, ascending
//   - Equal ("=="): every value whose key equals the probe
//   - GreaterEqual (">="): every value whose key is >= the probe, ascending
//
// Unknown comparators and unordered probes (NaN) yield an empty result
// rather than an error.
//
// # Example
//
//	tree, _ := bptree.New[float64, string](3)
//	tree.Insert(0.5, "b")
//	tree.Insert(0.2, "a")
//	tree.RangeSearch(0.5, bptree.LessEqual) // [a b]
//
// A Tree is not safe for concurrent use. Callers that share a tree between
// goroutines must serialize writes and reads themselves.
package bptree
