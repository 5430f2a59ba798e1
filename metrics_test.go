// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avltree

import (
	"testing"

	"github.com/cockroachdb/redact"
	"github.com/stretchr/testify/require"
)

func TestMetricsFormat(t *testing.T) {
	var m Metrics
	m.Keys = 12
	m.Height = 5
	m.Inserts = 20
	m.Removes = 8
	m.Failed = 3
	m.Rotations.Left = 4
	m.Rotations.Right = 5
	m.Rotations.LeftRight = 1
	m.Rotations.RightLeft = 2

	const expected = `tree: keys=12 height=5
ops: inserts=20 removes=8 failed=3
rotations: left=4 right=5 left-right=1 right-left=2`
	require.Equal(t, expected, m.String())
	// All fields are safe.
	require.EqualValues(t, expected, redact.Sprint(&m).Redact())
	require.EqualValues(t, 9, m.Single())
	require.EqualValues(t, 3, m.Double())
}

func TestMetrics(t *testing.T) {
	tree := New[int, int](nil)
	for _, k := range []int{1, 2, 3, 4, 5, 6, 7} {
		require.NoError(t, tree.Insert(k, k))
	}
	require.Error(t, tree.Insert(4, 4))
	require.NoError(t, tree.Remove(1))
	require.NoError(t, tree.Remove(3))
	require.Error(t, tree.Remove(3))

	m := tree.Metrics()
	require.Equal(t, 5, m.Keys)
	require.Equal(t, tree.Height(), m.Height)
	require.EqualValues(t, 7, m.Inserts)
	require.EqualValues(t, 2, m.Removes)
	require.EqualValues(t, 2, m.Failed)
	require.EqualValues(t, 4, m.Rotations.Left)
	require.EqualValues(t, 0, m.Double())
	// The counters can be read from the returned value without binding it.
	require.EqualValues(t, 4, tree.Metrics().Single())
	require.Zero(t, tree.Metrics().Double())
}
