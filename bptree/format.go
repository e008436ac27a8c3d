package bptree

import (
	"fmt"
	"strings"
)

// String renders the tree level by level. Each line is one level; nodes that
// share a parent are grouped in braces and every node prints its keys:
//
//	{[0.5]}
//	{[0.2], [0.5 0.8]}
func (t *Tree[K, V]) String() string {
	var sb strings.Builder

	level := [][]node[K, V]{{t.root}}
	for len(level) > 0 {
		var next [][]node[K, V]
		for gi, group := range level {
			if gi > 0 {
				sb.WriteString(", ")
			}
			sb.WriteByte('{')
			for ni, n := range group {
				if ni > 0 {
					sb.WriteString(", ")
				}
				fmt.Fprint(&sb, n.keyList())
				if in, ok := n.(*internalNode[K, V]); ok {
					next = append(next, in.children)
				}
			}
			sb.WriteByte('}')
		}
		sb.WriteByte('\n')
		level = next
	}

	return sb.String()
}
