package bptree

import (
	"cmp"
	"iter"
	"math"
)

// Tree is an insert-only B+ tree mapping keys of type K to values of type V.
//
// The zero value is not usable; construct trees with New or NewFunc.
type Tree[K, V any] struct {
	// root is re-read by every insert frame on the way back up, so a frame
	// that sees an overflowing root replaces it in place.
	root            node[K, V]
	branchingFactor int
	compare         func(a, b K) int
	size            int
}

// New creates an empty tree for an ordered key type using cmp.Compare.
func New[K cmp.Ordered, V any](branchingFactor int) (*Tree[K, V], error) {
	return NewFunc[K, V](branchingFactor, cmp.Compare[K])
}

// NewFunc creates an empty tree that orders keys with compare, which must
// return a negative number, zero or a positive number when a < b, a == b or
// a > b respectively.
func NewFunc[K, V any](branchingFactor int, compare func(a, b K) int) (*Tree[K, V], error) {
	if branchingFactor < MinBranchingFactor {
		return nil, &ErrInvalidBranchingFactor{BranchingFactor: branchingFactor}
	}
	if compare == nil {
		return nil, ErrNilCompare
	}

	return &Tree[K, V]{
		root:            &leafNode[K, V]{},
		branchingFactor: branchingFactor,
		compare:         compare,
	}, nil
}

// Insert adds key/value to the tree. It always succeeds; duplicate keys are
// kept as separate entries.
func (t *Tree[K, V]) Insert(key K, value V) {
	t.root.insert(t, key, value)
	t.size++
}

// splitRootIfOverflow grows the tree by one level when the current root is
// over capacity. Every insert frame calls it; once the root has been
// replaced the remaining calls are no-ops.
func (t *Tree[K, V]) splitRootIfOverflow() {
	if !t.root.overflows(t.branchingFactor) {
		return
	}

	old := t.root
	sibling := old.split()

	t.root = &internalNode[K, V]{
		keys:     []K{sibling.firstLeafKey()},
		children: []node[K, V]{old, sibling},
	}
}

// RangeSearch returns the values whose keys satisfy "key op probe", in
// ascending key order. It returns an empty slice for an unknown comparator
// or an unordered probe.
func (t *Tree[K, V]) RangeSearch(key K, op Comparator) []V {
	if !op.Valid() || unordered(key) {
		return []V{}
	}
	return t.root.rangeSearch(t, key, op)
}

// Len returns the number of entries inserted into the tree.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// BranchingFactor returns the maximum number of children of an internal node.
func (t *Tree[K, V]) BranchingFactor() int {
	return t.branchingFactor
}

// Height returns the number of levels, counting the leaf level.
func (t *Tree[K, V]) Height() int {
	h := 1
	for n := t.root; ; h++ {
		in, ok := n.(*internalNode[K, V])
		if !ok {
			return h
		}
		n = in.children[0]
	}
}

// All iterates over every entry in ascending key order by following the
// leaf chain.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for leaf := t.leftmostLeaf(); leaf != nil; leaf = leaf.next {
			for i, k := range leaf.keys {
				if !yield(k, leaf.values[i]) {
					return
				}
			}
		}
	}
}

func (t *Tree[K, V]) leftmostLeaf() *leafNode[K, V] {
	n := t.root
	for {
		switch v := n.(type) {
		case *leafNode[K, V]:
			return v
		case *internalNode[K, V]:
			n = v.children[0]
		}
	}
}

// unordered reports whether key is a floating point NaN, which compares
// as neither less than, equal to nor greater than any key.
func unordered[K any](key K) bool {
	switch k := any(key).(type) {
	case float64:
		return math.IsNaN(k)
	case float32:
		return math.IsNaN(float64(k))
	default:
		return false
	}
}
