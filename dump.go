// Copyright © 2026, the rbtree authors.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package rbtree

import (
	"fmt"
	"strings"
)

// DumpString renders the node graph top-down with one node per line,
// right subtree above, left subtree below, colors spelled out. Meant
// for debugging and test failure reports, not for parsing.
func (t *tree[K, V]) DumpString() string {
	if t.root == t.nilNode {
		return "(empty)\n"
	}

	var sb strings.Builder
	if t.root.right != t.nilNode {
		t.dumpNode(&sb, t.root.right, true, "")
	}
	fmt.Fprintf(&sb, "%s %v=%v\n", colorString(t.root.color), t.root.key, t.root.value)
	if t.root.left != t.nilNode {
		t.dumpNode(&sb, t.root.left, false, "")
	}
	return sb.String()
}

func (t *tree[K, V]) dumpNode(sb *strings.Builder, n *node[K, V], isRight bool, indent string) {
	var nextIndent string

	if n.right != t.nilNode {
		if isRight {
			nextIndent = indent + "        "
		} else {
			nextIndent = indent + " |      "
		}
		t.dumpNode(sb, n.right, true, nextIndent)
	}

	sb.WriteString(indent)
	if isRight {
		sb.WriteString(" /")
	} else {
		sb.WriteString(" \\")
	}
	fmt.Fprintf(sb, "----- %s %v=%v\n", colorString(n.color), n.key, n.value)

	if n.left != t.nilNode {
		if isRight {
			nextIndent = indent + " |      "
		} else {
			nextIndent = indent + "        "
		}
		t.dumpNode(sb, n.left, false, nextIndent)
	}
}

func colorString(c color) string {
	if c == red {
		return "RED"
	}
	return "BLACK"
}
