// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avltree

import (
	"cmp"

	"github.com/cockroachdb/avltree/internal/invariants"
	"github.com/cockroachdb/errors"
)

// checkPercent is the percentage of mutations after which invariants builds
// verify the whole tree.
const checkPercent = 10

// Tree is an ordered map from keys of type K to values of type V, kept
// height-balanced as an AVL tree.
//
// This implementation is not safe for concurrent use by multiple goroutines.
// If multiple goroutines access a tree concurrently, and at least one of them
// modifies the tree, it must be synchronized externally.
type Tree[K, V any] struct {
	root    *node[K, V]
	count   int
	cmp     *Comparer[K]
	opts    Options
	metrics Metrics
}

// New returns an empty tree ordering keys with cmp.Compare. opts may be nil.
func New[K cmp.Ordered, V any](opts *Options) *Tree[K, V] {
	return NewWithComparer[K, V](OrderedComparer[K](), opts)
}

// NewWithComparer returns an empty tree ordering keys with the given
// comparer. opts may be nil.
func NewWithComparer[K, V any](c *Comparer[K], opts *Options) *Tree[K, V] {
	t := &Tree[K, V]{cmp: c.EnsureDefaults()}
	if opts != nil {
		t.opts = *opts
	}
	t.opts.EnsureDefaults()
	return t
}

// Len returns the number of keys stored in the tree.
func (t *Tree[K, V]) Len() int {
	return t.count
}

// Height returns the number of levels in the tree: 0 for an empty tree, 1 for
// a tree holding a single key.
func (t *Tree[K, V]) Height() int {
	return t.root.subtreeHeight()
}

// Metrics returns a copy of the tree's counters.
func (t *Tree[K, V]) Metrics() Metrics {
	m := t.metrics
	m.Keys = t.count
	m.Height = t.Height()
	return m
}

// Get returns the value stored for key.
func (t *Tree[K, V]) Get(key K) (V, error) {
	var zero V
	if t.cmp.IsAbsent(key) {
		return zero, ErrInvalidKey
	}
	n := t.find(key)
	if n == nil {
		return zero, t.notFound(key)
	}
	return n.value, nil
}

// Contains returns true if key is stored in the tree. Unlike Get, a missing
// key is not an error.
func (t *Tree[K, V]) Contains(key K) (bool, error) {
	if t.cmp.IsAbsent(key) {
		return false, ErrInvalidKey
	}
	return t.find(key) != nil, nil
}

// RootKey returns the key stored at the root of the tree. ok is false if the
// tree is empty.
func (t *Tree[K, V]) RootKey() (key K, ok bool) {
	if t.root == nil {
		return key, false
	}
	return t.root.key, true
}

// LeftChildKey returns the key of the left child of the node holding key. ok
// is false if that node has no left child.
func (t *Tree[K, V]) LeftChildKey(key K) (child K, ok bool, err error) {
	n, err := t.mustFind(key)
	if err != nil || n.left == nil {
		return child, false, err
	}
	return n.left.key, true, nil
}

// RightChildKey returns the key of the right child of the node holding key. ok
// is false if that node has no right child.
func (t *Tree[K, V]) RightChildKey(key K) (child K, ok bool, err error) {
	n, err := t.mustFind(key)
	if err != nil || n.right == nil {
		return child, false, err
	}
	return n.right.key, true, nil
}

// Insert adds key with the associated value. It returns an error wrapping
// ErrDuplicateKey, without modifying the tree, if key is already present.
func (t *Tree[K, V]) Insert(key K, value V) error {
	if t.cmp.IsAbsent(key) {
		t.metrics.Failed++
		return ErrInvalidKey
	}
	if t.find(key) != nil {
		t.metrics.Failed++
		return errors.Wrapf(ErrDuplicateKey, "inserting %s", t.cmp.FormatKey(key))
	}
	t.root = t.insert(t.root, key, value)
	t.count++
	t.metrics.Inserts++
	t.maybeCheckInvariants(OpInsert)
	return nil
}

// Remove deletes key and its value. It returns an error wrapping
// ErrKeyNotFound, without modifying the tree, if key is not present.
func (t *Tree[K, V]) Remove(key K) error {
	if t.cmp.IsAbsent(key) {
		t.metrics.Failed++
		return ErrInvalidKey
	}
	if t.find(key) == nil {
		t.metrics.Failed++
		return errors.Wrapf(ErrKeyNotFound, "removing %s", t.cmp.FormatKey(key))
	}
	t.root = t.remove(t.root, key)
	t.count = invariants.SafeSub(t.count, 1)
	t.metrics.Removes++
	t.maybeCheckInvariants(OpRemove)
	return nil
}

// insert places a new leaf for key below n and returns the root of the
// rebalanced subtree. key must not already be present.
func (t *Tree[K, V]) insert(n *node[K, V], key K, value V) *node[K, V] {
	if n == nil {
		return &node[K, V]{key: key, value: value, height: 1}
	}
	if t.cmp.Compare(key, n.key) < 0 {
		n.left = t.insert(n.left, key, value)
	} else {
		n.right = t.insert(n.right, key, value)
	}
	n.update()

	// The new key sits below the child on the heavy side; which grandchild
	// subtree it landed in is decided by comparing against that child's key.
	switch {
	case n.balance > 1:
		if t.cmp.Compare(key, n.left.key) < 0 {
			return t.rebalance(OpInsert, RotateRight, n)
		}
		return t.rebalance(OpInsert, RotateLeftRight, n)
	case n.balance < -1:
		if t.cmp.Compare(key, n.right.key) > 0 {
			return t.rebalance(OpInsert, RotateLeft, n)
		}
		return t.rebalance(OpInsert, RotateRightLeft, n)
	}
	return n
}

// remove splices key out of the subtree rooted at n and returns the root of
// the rebalanced subtree. key must be present.
func (t *Tree[K, V]) remove(n *node[K, V], key K) *node[K, V] {
	if n == nil {
		return nil
	}
	switch c := t.cmp.Compare(key, n.key); {
	case c < 0:
		n.left = t.remove(n.left, key)
	case c > 0:
		n.right = t.remove(n.right, key)
	default:
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		// Take over the in-order successor's entry, then unlink the successor
		// node itself from the right subtree.
		succ := n.right.leftmost()
		n.key, n.value = succ.key, succ.value
		n.right = t.remove(n.right, succ.key)
	}
	n.update()

	// Unlike insertion, the child on the heavy side may be exactly balanced
	// after a removal, in which case a single rotation suffices.
	switch {
	case n.balance > 1:
		if n.left.balance >= 0 {
			return t.rebalance(OpRemove, RotateRight, n)
		}
		return t.rebalance(OpRemove, RotateLeftRight, n)
	case n.balance < -1:
		if n.right.balance <= 0 {
			return t.rebalance(OpRemove, RotateLeft, n)
		}
		return t.rebalance(OpRemove, RotateRightLeft, n)
	}
	return n
}

// rebalance applies the rotations for the given case to n, which must have a
// balance factor of magnitude 2, and returns the new subtree root.
func (t *Tree[K, V]) rebalance(op OpKind, kind RotationKind, n *node[K, V]) *node[K, V] {
	var info RotationInfo
	listener := t.opts.EventListener.Rotation
	if listener != nil {
		info = RotationInfo{Op: op, Kind: kind, Pivot: t.cmp.FormatKey(n.key), Balance: n.balance}
	}
	switch kind {
	case RotateRight:
		n = n.rotateRight()
	case RotateLeft:
		n = n.rotateLeft()
	case RotateLeftRight:
		n.left = n.left.rotateLeft()
		n = n.rotateRight()
	case RotateRightLeft:
		n.right = n.right.rotateRight()
		n = n.rotateLeft()
	}
	t.metrics.record(kind)
	if listener != nil {
		listener(info)
	}
	return n
}

func (t *Tree[K, V]) find(key K) *node[K, V] {
	n := t.root
	for n != nil {
		c := t.cmp.Compare(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// mustFind returns the node holding key, or an error if key is absent or not
// present.
func (t *Tree[K, V]) mustFind(key K) (*node[K, V], error) {
	if t.cmp.IsAbsent(key) {
		return nil, ErrInvalidKey
	}
	n := t.find(key)
	if n == nil {
		return nil, t.notFound(key)
	}
	return n, nil
}

func (t *Tree[K, V]) notFound(key K) error {
	return errors.Wrapf(ErrKeyNotFound, "looking up %s", t.cmp.FormatKey(key))
}

func (t *Tree[K, V]) maybeCheckInvariants(op OpKind) {
	if invariants.Enabled && invariants.Sometimes(checkPercent) {
		if err := t.CheckInvariants(); err != nil {
			t.opts.Logger.Fatalf("avltree: after %s: %v", op, err)
		}
	}
}
