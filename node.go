// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avltree

// node is a single key/value pair in the tree. Each node exclusively owns
// its children; there are no parent pointers; all restructuring happens on
// the way back up a recursive descent, with every mutating call returning
// the (possibly new) root of the subtree it was handed.
type node[K, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
	// height is the number of levels in the subtree rooted at this node. A
	// leaf has height 1.
	height int
	// balance is height(left) - height(right). It is in [-1, 1] whenever no
	// operation is in progress.
	balance int
}

// subtreeHeight returns the height of the subtree rooted at n, which may be
// nil.
func (n *node[K, V]) subtreeHeight() int {
	if n == nil {
		return 0
	}
	return n.height
}

// update recomputes the height and balance factor of n from its children.
// It must be called after any change to n's children, children first.
func (n *node[K, V]) update() {
	lh, rh := n.left.subtreeHeight(), n.right.subtreeHeight()
	n.height = 1 + max(lh, rh)
	n.balance = lh - rh
}

// leftmost returns the node with the smallest key in the subtree rooted at n.
func (n *node[K, V]) leftmost() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// rotateRight rotates the subtree rooted at n, turning (n (l a b) c) into
// (l a (n b c)), and returns l, the new subtree root.
func (n *node[K, V]) rotateRight() *node[K, V] {
	l := n.left
	n.left = l.right
	l.right = n
	// n is now below l, so it must be updated first.
	n.update()
	l.update()
	return l
}

// rotateLeft rotates the subtree rooted at n, turning (n a (r b c)) into
// (r (n a b) c), and returns r, the new subtree root.
func (n *node[K, V]) rotateLeft() *node[K, V] {
	r := n.right
	n.right = r.left
	r.left = n
	n.update()
	r.update()
	return r
}
