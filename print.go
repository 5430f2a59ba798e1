// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avltree

import (
	"io"
	"unicode/utf8"

	"github.com/cockroachdb/avltree/internal/ascii"
)

// emptyTree is the rendering of a tree with no keys.
const emptyTree = "<empty>"

// String renders the tree level by level: the root on the first line and
// each subsequent level on its own line, every key centered above the span of
// its subtree. A missing child of a node is drawn as "-". The width of the
// rendering doubles with every level, so it should not be used for large
// trees.
func (t *Tree[K, V]) String() string {
	if t.root == nil {
		return emptyTree
	}
	keys := make(map[*node[K, V]]string, t.count)
	width := 1
	var collect func(n *node[K, V])
	collect = func(n *node[K, V]) {
		if n == nil {
			return
		}
		s := t.cmp.FormatKey(n.key)
		keys[n] = s
		width = max(width, utf8.RuneCountInString(s))
		collect(n.left)
		collect(n.right)
	}
	collect(t.root)

	h := t.root.height
	cell := width + 2
	board := ascii.Make(h)
	var draw func(n *node[K, V], level, slot int)
	draw = func(n *node[K, V], level, slot int) {
		span := cell << (h - 1 - level)
		if n == nil {
			board.CenterIn(level, slot*span, span, "-")
			return
		}
		board.CenterIn(level, slot*span, span, keys[n])
		if n.left == nil && n.right == nil {
			return
		}
		draw(n.left, level+1, 2*slot)
		draw(n.right, level+1, 2*slot+1)
	}
	draw(t.root, 0, 0)
	return board.String()
}

// Print writes the rendering produced by String, followed by a newline, to w.
func (t *Tree[K, V]) Print(w io.Writer) error {
	_, err := io.WriteString(w, t.String()+"\n")
	return err
}

// DebugString returns a pre-order listing of every node with its height and
// balance factor, indented by depth. Children are labeled L or R.
func (t *Tree[K, V]) DebugString() string {
	if t.root == nil {
		return emptyTree
	}
	board := ascii.Make(t.count)
	var walk func(n *node[K, V], depth int, label string)
	walk = func(n *node[K, V], depth int, label string) {
		if n == nil {
			return
		}
		board.NewLine().Right(2*depth).Printf("%s%s h=%d b=%d",
			label, t.cmp.FormatKey(n.key), n.height, n.balance)
		walk(n.left, depth+1, "L ")
		walk(n.right, depth+1, "R ")
	}
	walk(t.root, 0, "")
	return board.String()
}
