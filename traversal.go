// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avltree

// Order identifies a traversal order.
type Order int8

const (
	// InOrder visits left subtree, node, right subtree (ascending keys).
	InOrder Order = iota
	// PreOrder visits node, left subtree, right subtree.
	PreOrder
	// PostOrder visits left subtree, right subtree, node.
	PostOrder
	// LevelOrder visits nodes breadth-first, left to right within a level.
	LevelOrder
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case InOrder:
		return "in"
	case PreOrder:
		return "pre"
	case PostOrder:
		return "post"
	case LevelOrder:
		return "level"
	default:
		return "unknown"
	}
}

// Keys returns the keys of the tree in the given order. The returned slice is
// freshly allocated and is empty, not nil, for an empty tree.
func (t *Tree[K, V]) Keys(o Order) []K {
	keys := make([]K, 0, t.count)
	switch o {
	case InOrder:
		keys = t.root.appendInOrder(keys)
	case PreOrder:
		keys = t.root.appendPreOrder(keys)
	case PostOrder:
		keys = t.root.appendPostOrder(keys)
	case LevelOrder:
		keys = t.root.appendLevelOrder(keys)
	}
	return keys
}

// InOrder returns the keys in ascending order.
func (t *Tree[K, V]) InOrder() []K { return t.Keys(InOrder) }

// PreOrder returns the keys in pre-order.
func (t *Tree[K, V]) PreOrder() []K { return t.Keys(PreOrder) }

// PostOrder returns the keys in post-order.
func (t *Tree[K, V]) PostOrder() []K { return t.Keys(PostOrder) }

// LevelOrder returns the keys level by level starting at the root.
func (t *Tree[K, V]) LevelOrder() []K { return t.Keys(LevelOrder) }

func (n *node[K, V]) appendInOrder(keys []K) []K {
	if n == nil {
		return keys
	}
	keys = n.left.appendInOrder(keys)
	keys = append(keys, n.key)
	return n.right.appendInOrder(keys)
}

func (n *node[K, V]) appendPreOrder(keys []K) []K {
	if n == nil {
		return keys
	}
	keys = append(keys, n.key)
	keys = n.left.appendPreOrder(keys)
	return n.right.appendPreOrder(keys)
}

func (n *node[K, V]) appendPostOrder(keys []K) []K {
	if n == nil {
		return keys
	}
	keys = n.left.appendPostOrder(keys)
	keys = n.right.appendPostOrder(keys)
	return append(keys, n.key)
}

func (n *node[K, V]) appendLevelOrder(keys []K) []K {
	if n == nil {
		return keys
	}
	queue := []*node[K, V]{n}
	for len(queue) > 0 {
		n, queue = queue[0], queue[1:]
		keys = append(keys, n.key)
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}
	return keys
}
