// Copyright © 2026, the rbtree authors.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package rbtree

type color bool

const (
	red   color = true
	black color = false
)

// node is a single entry in the tree. Absent children point at the
// tree's shared sentinel, never at nil, so fixup code can read a
// child's color without branching. The parent link is maintained on
// every rotation and transplant; it carries no ownership.
type node[K, V any] struct {
	key                 K
	value               V
	color               color
	left, right, parent *node[K, V]
}

/*
Left rotation around node x:

	Before:               After:
	  P                    P
	  |                    |
	  x                    y
	 / \                  / \
	A   y       →        x   C
	   / \              / \
	  B   C            A   B

Subtree B changes sides, everything else keeps its position
relative to its new parent. In-order sequence is unchanged.
*/
func (t *tree[K, V]) leftRotate(x *node[K, V]) {
	y := x.right
	x.right = y.left
	if y.left != t.nilNode {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == t.nilNode {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

/*
Right rotation around node y:

	 Before:               After:
	    P                    P
	    |                    |
	    y                    x
	   / \                  / \
	  x   C       →        A   y
	 / \                      / \
	A   B                    B   C
*/
func (t *tree[K, V]) rightRotate(y *node[K, V]) {
	x := y.left
	y.left = x.right
	if x.right != t.nilNode {
		x.right.parent = y
	}
	x.parent = y.parent
	if y.parent == t.nilNode {
		t.root = x
	} else if y == y.parent.right {
		y.parent.right = x
	} else {
		y.parent.left = x
	}
	x.right = y
	y.parent = x
}

// minimum returns the leftmost node of the subtree rooted at x.
// It returns the sentinel only when x is the sentinel.
func (t *tree[K, V]) minimum(x *node[K, V]) *node[K, V] {
	for x.left != t.nilNode {
		x = x.left
	}
	return x
}

// maximum returns the rightmost node of the subtree rooted at x.
func (t *tree[K, V]) maximum(x *node[K, V]) *node[K, V] {
	for x.right != t.nilNode {
		x = x.right
	}
	return x
}
