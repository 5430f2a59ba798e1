// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avltree

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidKey is returned when an absent key (see Comparer.IsAbsent) is
	// passed to an operation. It is always checked before any search.
	ErrInvalidKey = errors.New("avltree: invalid key")

	// ErrKeyNotFound is returned by operations that require the key to be
	// present in the tree.
	ErrKeyNotFound = errors.New("avltree: key not found")

	// ErrDuplicateKey is returned by Insert when the key is already present.
	ErrDuplicateKey = errors.New("avltree: duplicate key")
)
