// Copyright © 2026, the rbtree authors.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package rbtree

import "iter"

// All returns an in-order iterator over the entries, ascending by key.
//
// The traversal keeps an explicit stack of the path to the current
// node, so restarting the sequence is free and stopping early does no
// extra work. The tree must not be mutated while the sequence runs.
func (t *tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stack := []*node[K, V]{}
		current := t.root
		for current != t.nilNode || len(stack) > 0 {
			for current != t.nilNode {
				stack = append(stack, current)
				current = current.left
			}

			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(current.key, current.value) {
				return
			}

			current = current.right
		}
	}
}

// Backward returns the descending mirror of All: right subtree first,
// then the node, then the left subtree.
func (t *tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stack := []*node[K, V]{}
		current := t.root
		for current != t.nilNode || len(stack) > 0 {
			for current != t.nilNode {
				stack = append(stack, current)
				current = current.right
			}

			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(current.key, current.value) {
				return
			}

			current = current.left
		}
	}
}
