package bptree

import "slices"

// node is implemented by exactly two types: *internalNode and *leafNode.
type node[K, V any] interface {
	// insert places key/value in the subtree and repairs overflow below it.
	insert(t *Tree[K, V], key K, value V)

	// split moves the upper half of the node into a new right sibling.
	split() node[K, V]

	// firstLeafKey returns the smallest key reachable from the node.
	firstLeafKey() K

	// overflows reports whether the node exceeds its capacity.
	overflows(branchingFactor int) bool

	rangeSearch(t *Tree[K, V], key K, op Comparator) []V

	keyList() []K
}

type internalNode[K, V any] struct {
	keys     []K
	children []node[K, V]
}

func (n *internalNode[K, V]) firstLeafKey() K {
	return n.children[0].firstLeafKey()
}

func (n *internalNode[K, V]) overflows(branchingFactor int) bool {
	return len(n.children) > branchingFactor
}

func (n *internalNode[K, V]) keyList() []K {
	return n.keys
}

// childIndex returns the first i with keys[i] >= key, or len(keys).
func (n *internalNode[K, V]) childIndex(compare func(a, b K) int, key K) int {
	if i := slices.IndexFunc(n.keys, func(k K) bool { return compare(k, key) >= 0 }); i >= 0 {
		return i
	}
	return len(n.keys)
}

func (n *internalNode[K, V]) insert(t *Tree[K, V], key K, value V) {
	i := n.childIndex(t.compare, key)
	child := n.children[i]
	child.insert(t, key, value)

	if child.overflows(t.branchingFactor) {
		sibling := child.split()
		n.keys = slices.Insert(n.keys, i, sibling.firstLeafKey())
		n.children = slices.Insert(n.children, i+1, sibling)
	}

	t.splitRootIfOverflow()
}

// split hands keys[ceil(nK/2):] and children[nC/2:] to the sibling. The node
// keeps its first nC/2 children and one key less than that; for odd
// branching factors this is exactly keys[:nK/2].
func (n *internalNode[K, V]) split() node[K, V] {
	nK, nC := len(n.keys), len(n.children)

	sibling := &internalNode[K, V]{
		keys:     slices.Clone(n.keys[(nK+1)/2:]),
		children: slices.Clone(n.children[nC/2:]),
	}

	clear(n.children[nC/2:])
	n.children = n.children[:nC/2]
	n.keys = n.keys[:len(n.children)-1]

	return sibling
}

func (n *internalNode[K, V]) rangeSearch(t *Tree[K, V], key K, op Comparator) []V {
	// "<=" always scans from the leftmost leaf.
	if op == LessEqual {
		return n.children[0].rangeSearch(t, key, op)
	}
	return n.children[n.childIndex(t.compare, key)].rangeSearch(t, key, op)
}

type leafNode[K, V any] struct {
	keys   []K
	values []V
	next   *leafNode[K, V]
}

func (n *leafNode[K, V]) firstLeafKey() K {
	return n.keys[0]
}

func (n *leafNode[K, V]) overflows(branchingFactor int) bool {
	return len(n.values) > branchingFactor-1
}

func (n *leafNode[K, V]) keyList() []K {
	return n.keys
}

// insert places the entry before the first key that is not less than key,
// so a new duplicate lands in front of existing equal keys.
func (n *leafNode[K, V]) insert(t *Tree[K, V], key K, value V) {
	i := 0
	for i < len(n.keys) && t.compare(n.keys[i], key) < 0 {
		i++
	}

	n.keys = slices.Insert(n.keys, i, key)
	n.values = slices.Insert(n.values, i, value)

	t.splitRootIfOverflow()
}

func (n *leafNode[K, V]) split() node[K, V] {
	mid := len(n.keys) / 2

	sibling := &leafNode[K, V]{
		keys:   slices.Clone(n.keys[mid:]),
		values: slices.Clone(n.values[mid:]),
		next:   n.next,
	}

	clear(n.values[mid:])
	n.keys = n.keys[:mid]
	n.values = n.values[:mid]
	n.next = sibling

	return sibling
}

func (n *leafNode[K, V]) rangeSearch(t *Tree[K, V], key K, op Comparator) []V {
	switch op {
	case Equal:
		return n.collectEqual(t.compare, key)
	case LessEqual:
		return n.collectLessEqual(t.compare, key)
	case GreaterEqual:
		return n.collectGreaterEqual(t.compare, key)
	default:
		return []V{}
	}
}

// collectEqual walks the chain from the start of n, skipping smaller keys and
// stopping at the first greater one. Equal runs may straddle leaves.
func (n *leafNode[K, V]) collectEqual(compare func(a, b K) int, key K) []V {
	result := []V{}
	for leaf, i := n, 0; leaf != nil; {
		if i >= len(leaf.keys) {
			leaf, i = leaf.next, 0
			continue
		}
		c := compare(leaf.keys[i], key)
		if c > 0 {
			break
		}
		if c == 0 {
			result = append(result, leaf.values[i])
		}
		i++
	}
	return result
}

func (n *leafNode[K, V]) collectLessEqual(compare func(a, b K) int, key K) []V {
	result := []V{}
	if len(n.keys) == 0 || compare(n.keys[0], key) > 0 {
		return result
	}
	for leaf, i := n, 0; leaf != nil; {
		if i >= len(leaf.keys) {
			leaf, i = leaf.next, 0
			continue
		}
		if compare(leaf.keys[i], key) > 0 {
			break
		}
		result = append(result, leaf.values[i])
		i++
	}
	return result
}

// collectGreaterEqual takes the qualifying suffix of n and then every later
// leaf in full; the chain is ascending, so nothing after the start can fail.
func (n *leafNode[K, V]) collectGreaterEqual(compare func(a, b K) int, key K) []V {
	i := 0
	for i < len(n.keys) && compare(n.keys[i], key) < 0 {
		i++
	}

	result := append([]V{}, n.values[i:]...)
	for leaf := n.next; leaf != nil; leaf = leaf.next {
		result = append(result, leaf.values...)
	}
	return result
}
