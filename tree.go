// Copyright © 2026, the rbtree authors.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package rbtree

import "cmp"

// tree is the red-black tree engine behind the Tree interface.
//
// Every path from the root to a sentinel position crosses the same
// number of black nodes, no red node has a red child, and the root is
// black. Together these bound the height at 2·log2(n+1), which is what
// makes every operation below O(log n).
type tree[K cmp.Ordered, V any] struct {
	root    *node[K, V]
	nilNode *node[K, V] // shared black sentinel for absent children
	size    int
}

func newTree[K cmp.Ordered, V any]() *tree[K, V] {
	nilNode := &node[K, V]{color: black}
	return &tree[K, V]{
		root:    nilNode,
		nilNode: nilNode,
	}
}

// findNode walks from the root comparing three-way against each node's
// key. Returns the sentinel if the key is absent.
func (t *tree[K, V]) findNode(key K) *node[K, V] {
	current := t.root
	for current != t.nilNode {
		switch c := cmp.Compare(key, current.key); {
		case c < 0:
			current = current.left
		case c > 0:
			current = current.right
		default:
			return current
		}
	}
	return t.nilNode
}

// Insert stores value under key while maintaining the red-black
// properties. Re-inserting an existing key overwrites the value in
// place and returns the previous one; the node keeps its position and
// color, so no rebalancing is needed.
func (t *tree[K, V]) Insert(key K, value V) (V, bool) {
	parent := t.nilNode
	current := t.root

	for current != t.nilNode {
		parent = current
		switch c := cmp.Compare(key, current.key); {
		case c < 0:
			current = current.left
		case c > 0:
			current = current.right
		default:
			prev := current.value
			current.value = value
			return prev, true
		}
	}

	newNode := &node[K, V]{
		key:    key,
		value:  value,
		color:  red,
		left:   t.nilNode,
		right:  t.nilNode,
		parent: parent,
	}

	if parent == t.nilNode {
		t.root = newNode
	} else if cmp.Compare(key, parent.key) < 0 {
		parent.left = newNode
	} else {
		parent.right = newNode
	}

	t.size++
	t.fixInsert(newNode)

	var zero V
	return zero, false
}

// fixInsert restores the red-black properties after linking a new red
// node x. The only possible violation is a red parent; resolve it by
// case analysis on the uncle's color, walking up the tree:
//
// red uncle: recolor parent and uncle black, grandparent red, and
// continue from the grandparent, since it may now clash with its own
// parent.
//
// black uncle: one or two rotations fix it for good. When x is on the
// inner side ("triangle"), a rotation at the parent first turns it
// into the outer-side ("line") shape, then a rotation at the
// grandparent plus a recoloring finishes.
func (t *tree[K, V]) fixInsert(x *node[K, V]) {
	for x.parent.color == red {
		if x.parent == x.parent.parent.left {
			y := x.parent.parent.right // uncle
			if y.color == red {
				x.parent.color = black
				y.color = black
				x.parent.parent.color = red
				x = x.parent.parent
			} else {
				if x == x.parent.right {
					x = x.parent
					t.leftRotate(x)
				}
				x.parent.color = black
				x.parent.parent.color = red
				t.rightRotate(x.parent.parent)
			}
		} else {
			y := x.parent.parent.left
			if y.color == red {
				x.parent.color = black
				y.color = black
				x.parent.parent.color = red
				x = x.parent.parent
			} else {
				if x == x.parent.left {
					x = x.parent
					t.rightRotate(x)
				}
				x.parent.color = black
				x.parent.parent.color = red
				t.leftRotate(x.parent.parent)
			}
		}
	}
	// A propagated red may have reached the top.
	t.root.color = black
}

// Remove deletes the entry for key and returns its value.
func (t *tree[K, V]) Remove(key K) (V, bool) {
	_, value, ok := t.RemoveEntry(key)
	return value, ok
}

// RemoveEntry deletes the entry for key and returns the stored pair.
//
// A node with two children is not unlinked itself: the key and value
// of its in-order successor are moved into it, and the successor,
// which has no left child, is unlinked instead. The node actually
// spliced out therefore always has at most one child.
func (t *tree[K, V]) RemoveEntry(key K) (K, V, bool) {
	z := t.findNode(key)
	if z == t.nilNode {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}

	removedKey, removedValue := z.key, z.value

	if z.left != t.nilNode && z.right != t.nilNode {
		successor := t.minimum(z.right)
		z.key = successor.key
		z.value = successor.value
		z = successor
	}

	var x *node[K, V]
	if z.left != t.nilNode {
		x = z.left
	} else {
		x = z.right
	}
	t.transplant(z, x)

	// Splicing out a red node leaves every property intact. Splicing
	// out a black one removes a black node from the paths through x,
	// which fixDelete repairs.
	if z.color == black {
		t.fixDelete(x)
	}

	t.size--
	return removedKey, removedValue, true
}

// transplant replaces the subtree rooted at u with the subtree rooted
// at v in u's parent. v may be the sentinel; its parent link is set
// regardless, which fixDelete relies on to walk upward.
func (t *tree[K, V]) transplant(u, v *node[K, V]) {
	if u.parent == t.nilNode {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

// fixDelete repairs the missing black on the paths through x. The
// deficiency moves up the tree until it is absorbed by a red node (or
// the root), or resolved by a rotation that borrows from the sibling:
//
// red sibling: rotate at the parent to expose a black sibling, then
// fall through to the cases below.
//
// black sibling, both nephews black: recolor the sibling red, which
// balances the two sides locally, and push the deficiency to the
// parent.
//
// black sibling, far nephew red: rotate at the parent and recolor.
// This adds a black node to the deficient side and terminates. When
// only the near nephew is red, a rotation at the sibling first turns
// it into the far-nephew shape.
func (t *tree[K, V]) fixDelete(x *node[K, V]) {
	for x != t.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right // sibling
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.leftRotate(x.parent)
				w = x.parent.right
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.right.color == black {
					w.left.color = black
					w.color = red
					t.rightRotate(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color = black
				w.right.color = black
				t.leftRotate(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rightRotate(x.parent)
				w = x.parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.left.color == black {
					w.right.color = black
					w.color = red
					t.leftRotate(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = black
				w.left.color = black
				t.rightRotate(x.parent)
				x = t.root
			}
		}
	}
	x.color = black
}

// Get returns the value stored under key.
func (t *tree[K, V]) Get(key K) (V, bool) {
	n := t.findNode(key)
	if n == t.nilNode {
		var zero V
		return zero, false
	}
	return n.value, true
}

// GetKeyValue returns the stored key and value for key.
func (t *tree[K, V]) GetKeyValue(key K) (K, V, bool) {
	n := t.findNode(key)
	if n == t.nilNode {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return n.key, n.value, true
}

// MustGet returns the value stored under key and panics if the key is
// absent.
func (t *tree[K, V]) MustGet(key K) V {
	n := t.findNode(key)
	if n == t.nilNode {
		panic("rbtree: key not found")
	}
	return n.value
}

// ContainsKey reports whether key is present.
func (t *tree[K, V]) ContainsKey(key K) bool {
	return t.findNode(key) != t.nilNode
}

// First returns the minimum entry.
func (t *tree[K, V]) First() (K, V, bool) {
	if t.root == t.nilNode {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	n := t.minimum(t.root)
	return n.key, n.value, true
}

// Last returns the maximum entry.
func (t *tree[K, V]) Last() (K, V, bool) {
	if t.root == t.nilNode {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	n := t.maximum(t.root)
	return n.key, n.value, true
}

// PopFirst removes and returns the minimum entry.
func (t *tree[K, V]) PopFirst() (K, V, bool) {
	if t.root == t.nilNode {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return t.RemoveEntry(t.minimum(t.root).key)
}

// PopLast removes and returns the maximum entry.
func (t *tree[K, V]) PopLast() (K, V, bool) {
	if t.root == t.nilNode {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return t.RemoveEntry(t.maximum(t.root).key)
}

// Clear removes all entries. The node graph is released to the garbage
// collector as a whole.
func (t *tree[K, V]) Clear() {
	t.root = t.nilNode
	t.nilNode.parent = nil
	t.size = 0
}

// Len returns the number of entries.
func (t *tree[K, V]) Len() int {
	return t.size
}

// IsEmpty reports whether the tree holds no entries.
func (t *tree[K, V]) IsEmpty() bool {
	return t.size == 0
}
