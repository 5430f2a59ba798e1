// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package avltree provides an in-memory ordered key/value map implemented as
// an AVL tree.
//
// Every node records the height of the subtree rooted at it and its balance
// factor, the height of its left subtree minus the height of its right
// subtree. Insert and Remove restore the invariant that every balance factor
// lies in [-1, 1] with single and double rotations as the recursion unwinds,
// which bounds the height of the tree, and therefore the cost of every
// operation, to O(log n).
//
// A Tree performs no internal synchronization. Callers that share a Tree
// between goroutines must serialize access to it externally.
//
// Keys must be unique. Errors returned by the Tree wrap one of ErrInvalidKey,
// ErrKeyNotFound or ErrDuplicateKey and can be tested with errors.Is. A failed
// operation leaves the tree unchanged.
package avltree // import "github.com/cockroachdb/avltree"
