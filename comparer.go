// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avltree

import (
	"cmp"
	"fmt"
	"reflect"
)

// Compare returns -1, 0, or +1 depending on whether a is 'less than', 'equal
// to' or 'greater than' b. The ordering it defines must be total and
// consistent across calls.
type Compare[K any] func(a, b K) int

// FormatKey returns a formatter for the user key.
type FormatKey[K any] func(key K) string

// Comparer defines a total ordering over the space of keys of type K, along
// with helpers for validating and formatting keys.
type Comparer[K any] struct {
	// Compare is mandatory.
	Compare Compare[K]

	// FormatKey is optional. It defaults to formatting keys with fmt.Sprint.
	FormatKey FormatKey[K]

	// IsAbsent is optional. It reports whether a key is the "no key" sentinel
	// for its type, which is never a valid argument to a Tree operation. It
	// defaults to reporting nil interfaces, pointers, slices, maps, funcs and
	// channels as absent.
	IsAbsent func(key K) bool

	// Name is the name of the comparer. It is informational only.
	Name string
}

// OrderedComparer returns a Comparer for any type with a natural ordering,
// using cmp.Compare.
func OrderedComparer[K cmp.Ordered]() *Comparer[K] {
	return &Comparer[K]{
		Compare: cmp.Compare[K],
		Name:    "avltree.OrderedComparer",
	}
}

// EnsureDefaults ensures that all non-optional fields are set.
//
// If any fields need to be set, returns a modified copy of c.
func (c *Comparer[K]) EnsureDefaults() *Comparer[K] {
	if c == nil || c.Compare == nil {
		panic("invalid Comparer: mandatory field not set")
	}
	if c.FormatKey != nil && c.IsAbsent != nil && c.Name != "" {
		return c
	}
	n := &Comparer[K]{}
	*n = *c
	if n.FormatKey == nil {
		n.FormatKey = func(key K) string { return fmt.Sprint(key) }
	}
	if n.IsAbsent == nil {
		n.IsAbsent = isNilKey[K]
	}
	if n.Name == "" {
		n.Name = "unnamed"
	}
	return n
}

// isNilKey reports whether key is a nil value of a nillable kind.
func isNilKey[K any](key K) bool {
	v := any(key)
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
