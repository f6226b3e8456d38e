// Copyright © 2026, the rbtree authors.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package rbtree

import "cmp"

// verify checks the red-black tree properties:
//  1. the root is black,
//  2. no red node has a red child,
//  3. every path from a node to a sentinel position crosses the same
//     number of black nodes,
//  4. the in-order key sequence is strictly increasing,
//  5. the stored size matches the node count.
//
// Tests call it after mutations; it is never needed in normal
// operation.
func (t *tree[K, V]) verify() bool {
	if t.root.color != black {
		return false
	}

	_, count, ok := t.checkSubtree(t.root)
	if !ok || count != t.size {
		return false
	}

	return t.checkKeyOrder()
}

// checkSubtree returns the black-height of the subtree rooted at n and
// its node count, or ok=false on a red-red adjacency or a black-height
// mismatch between the two sides.
func (t *tree[K, V]) checkSubtree(n *node[K, V]) (blackHeight, count int, ok bool) {
	if n == t.nilNode {
		return 1, 0, true
	}

	if n.color == red && (n.left.color == red || n.right.color == red) {
		return 0, 0, false
	}

	leftHeight, leftCount, leftOk := t.checkSubtree(n.left)
	rightHeight, rightCount, rightOk := t.checkSubtree(n.right)

	if !leftOk || !rightOk || leftHeight != rightHeight {
		return 0, 0, false
	}

	if n.color == black {
		leftHeight++
	}
	return leftHeight, leftCount + rightCount + 1, true
}

func (t *tree[K, V]) checkKeyOrder() bool {
	first := true
	var prev K
	ordered := true
	t.All()(func(key K, _ V) bool {
		if !first && cmp.Compare(prev, key) >= 0 {
			ordered = false
			return false
		}
		first = false
		prev = key
		return true
	})
	return ordered
}

// height returns the longest root-to-sentinel path length, 0 for an
// empty tree.
func (t *tree[K, V]) height() int {
	return t.subtreeHeight(t.root)
}

func (t *tree[K, V]) subtreeHeight(n *node[K, V]) int {
	if n == t.nilNode {
		return 0
	}
	return 1 + max(t.subtreeHeight(n.left), t.subtreeHeight(n.right))
}
