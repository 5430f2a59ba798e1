// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avltree

import "github.com/cockroachdb/errors"

// CheckInvariants walks the whole tree and returns an error describing the
// first violation of the tree's structural invariants:
//
//   - keys are in strictly ascending order in an in-order walk;
//   - every node's stored height is 1 + the larger of its children's heights;
//   - every node's stored balance factor equals height(left) - height(right)
//     and lies in [-1, 1];
//   - the stored key count equals the number of reachable nodes.
//
// A non-nil error indicates a bug in the tree (or an inconsistent Comparer).
func (t *Tree[K, V]) CheckInvariants() error {
	if (t.root == nil) != (t.count == 0) {
		return errors.AssertionFailedf("avltree: root presence disagrees with count %d", t.count)
	}
	c := checker[K, V]{t: t}
	if _, err := c.check(t.root); err != nil {
		return err
	}
	if c.nodes != t.count {
		return errors.AssertionFailedf("avltree: count %d, but %d nodes reachable", t.count, c.nodes)
	}
	return nil
}

type checker[K, V any] struct {
	t     *Tree[K, V]
	nodes int
	prev  *node[K, V]
}

// check verifies the subtree rooted at n in-order and returns its height.
func (c *checker[K, V]) check(n *node[K, V]) (int, error) {
	if n == nil {
		return 0, nil
	}
	lh, err := c.check(n.left)
	if err != nil {
		return 0, err
	}
	fmtKey := c.t.cmp.FormatKey
	if c.prev != nil && c.t.cmp.Compare(c.prev.key, n.key) >= 0 {
		return 0, errors.AssertionFailedf("avltree: keys out of order: %s before %s",
			fmtKey(c.prev.key), fmtKey(n.key))
	}
	c.prev = n
	c.nodes++
	rh, err := c.check(n.right)
	if err != nil {
		return 0, err
	}
	if h := 1 + max(lh, rh); n.height != h {
		return 0, errors.AssertionFailedf("avltree: node %s has height %d, expected %d",
			fmtKey(n.key), n.height, h)
	}
	if b := lh - rh; n.balance != b {
		return 0, errors.AssertionFailedf("avltree: node %s has balance %d, expected %d",
			fmtKey(n.key), n.balance, b)
	}
	if n.balance < -1 || n.balance > 1 {
		return 0, errors.AssertionFailedf("avltree: node %s is unbalanced (balance %d)",
			fmtKey(n.key), n.balance)
	}
	return n.height, nil
}
