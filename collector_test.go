// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avltree

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetricsCollector(t *testing.T) {
	tree := New[int, int](nil)
	for _, k := range []int{3, 2, 1, 4, 5, 7, 6} {
		require.NoError(t, tree.Insert(k, k))
	}
	require.Error(t, tree.Remove(99))

	c := NewMetricsCollector("test", tree.Metrics)
	require.Equal(t, 9, testutil.CollectAndCount(c))

	const expected = `
# HELP test_avltree_failed_ops_total Number of inserts and removes that returned an error.
# TYPE test_avltree_failed_ops_total counter
test_avltree_failed_ops_total 1
# HELP test_avltree_height Number of levels in the tree.
# TYPE test_avltree_height gauge
test_avltree_height 3
# HELP test_avltree_inserts_total Number of successful inserts.
# TYPE test_avltree_inserts_total counter
test_avltree_inserts_total 7
# HELP test_avltree_keys Number of keys stored in the tree.
# TYPE test_avltree_keys gauge
test_avltree_keys 7
# HELP test_avltree_rotations_total Number of rebalancing steps, by case.
# TYPE test_avltree_rotations_total counter
test_avltree_rotations_total{kind="left"} 2
test_avltree_rotations_total{kind="left-right"} 0
test_avltree_rotations_total{kind="right"} 1
test_avltree_rotations_total{kind="right-left"} 1
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected),
		"test_avltree_failed_ops_total", "test_avltree_height", "test_avltree_inserts_total",
		"test_avltree_keys", "test_avltree_rotations_total"))

	// The collector reads the metrics on every scrape.
	require.NoError(t, tree.Remove(3))
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))
	n, err := testutil.GatherAndCount(reg, "test_avltree_removes_total", "test_avltree_keys")
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP test_avltree_removes_total Number of successful removes.
# TYPE test_avltree_removes_total counter
test_avltree_removes_total 1
`), "test_avltree_removes_total"))
}
