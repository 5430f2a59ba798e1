// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avltree

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/avltree/internal/base"
	"github.com/cockroachdb/redact"
	"github.com/stretchr/testify/require"
)

func TestRotationInfoFormat(t *testing.T) {
	info := RotationInfo{Op: OpRemove, Kind: RotateLeftRight, Pivot: "secret", Balance: 2}
	require.Equal(t, "[remove] left-right rotation at secret (balance 2)", info.String())
	require.Equal(t, "[remove] left-right rotation at secret (balance 2)", fmt.Sprint(info))

	// Keys are user data and are redacted; everything else is safe.
	s := redact.Sprint(info)
	require.EqualValues(t, "[remove] left-right rotation at ‹secret› (balance 2)", s)
	require.EqualValues(t, "[remove] left-right rotation at ‹×› (balance 2)", s.Redact())

	require.True(t, RotateLeftRight.Double())
	require.True(t, RotateRightLeft.Double())
	require.False(t, RotateLeft.Double())
	require.False(t, RotateRight.Double())
	require.Equal(t, "unknown", RotationKind(9).String())
	require.Equal(t, "unknown", OpKind(9).String())
}

func TestLoggingEventListener(t *testing.T) {
	var log base.InMemLogger
	listener := MakeLoggingEventListener(&log)
	tree := New[string, int](&Options{EventListener: &listener})
	for i, k := range []string{"a", "b", "c"} {
		require.NoError(t, tree.Insert(k, i))
	}
	require.Equal(t, "[insert] left rotation at a (balance -2)\n", log.String())
}

func TestTeeEventListener(t *testing.T) {
	var a, b []string
	listener := TeeEventListener(
		EventListener{Rotation: func(info RotationInfo) { a = append(a, info.Pivot) }},
		EventListener{Rotation: func(info RotationInfo) { b = append(b, info.Kind.String()) }},
	)
	tree := New[int, int](&Options{EventListener: &listener})
	for _, k := range []int{3, 2, 1, 4, 5} {
		require.NoError(t, tree.Insert(k, k))
	}
	require.Equal(t, []string{"3", "3"}, a)
	require.Equal(t, []string{"right", "left"}, b)

	// A listener with nil hooks is ignored.
	listener = TeeEventListener(EventListener{}, EventListener{})
	tree = New[int, int](&Options{EventListener: &listener})
	for _, k := range []int{1, 2, 3} {
		require.NoError(t, tree.Insert(k, k))
	}
	require.Equal(t, 3, tree.Len())
}
