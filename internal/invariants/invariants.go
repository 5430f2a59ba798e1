// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package invariants exposes whether the module was built with the
// "invariants" or "race" build tags, along with helpers that only do work in
// such builds.
package invariants

import "math/rand/v2"

// Sometimes returns true percent% of the time if we were built with the
// "invariants" or "race" build tags. Otherwise, always returns false.
func Sometimes(percent int) bool {
	return Enabled && rand.Uint32N(100) < uint32(percent)
}

// SafeSub returns a - b. If a < b, it panics in invariant builds and returns 0
// in non-invariant builds.
func SafeSub[T Integer](a, b T) T {
	if a < b {
		if Enabled {
			panic("underflow")
		}
		return 0
	}
	return a - b
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}
