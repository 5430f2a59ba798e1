// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"context"
	"strings"
	"testing"

	"github.com/cockroachdb/crlib/testutils/leaktest"
	"github.com/stretchr/testify/require"
)

func testBenchOptions() benchOptions {
	return benchOptions{
		keys:          500,
		ops:           5000,
		trees:         4,
		readPercent:   40,
		removePercent: 20,
		seed:          7,
		plotPoints:    20,
	}
}

func TestBench(t *testing.T) {
	defer leaktest.AfterTest(t)()

	for _, hashed := range []bool{false, true} {
		cfg := testBenchOptions()
		cfg.hashed = hashed
		res, err := runBench(context.Background(), cfg)
		require.NoError(t, err)

		require.EqualValues(t, cfg.ops*cfg.trees, res.totalOps())
		m := res.metrics
		require.EqualValues(t, m.Inserts-m.Removes, m.Keys)
		require.LessOrEqual(t, m.Keys, cfg.keys*cfg.trees)
		// Misses include failed mutations and lookups of absent keys.
		require.GreaterOrEqual(t, uint64(res.misses), m.Failed)
		require.NotEmpty(t, res.heights)

		var buf strings.Builder
		require.NoError(t, res.report(&buf))
		out := buf.String()
		for _, s := range []string{
			"20000 ops on 4 trees",
			"P50(NS)",
			"bench_avltree_inserts_total",
			`kind=left-right`,
			"height of tree 0",
		} {
			require.Contains(t, out, s)
		}
	}
}

func TestBenchDeterministic(t *testing.T) {
	cfg := testBenchOptions()
	a, err := runBench(context.Background(), cfg)
	require.NoError(t, err)
	b, err := runBench(context.Background(), cfg)
	require.NoError(t, err)
	require.Equal(t, a.metrics, b.metrics)
	require.Equal(t, a.heights, b.heights)
}

func TestBenchRateLimited(t *testing.T) {
	defer leaktest.AfterTest(t)()

	cfg := testBenchOptions()
	cfg.ops = 50
	cfg.trees = 2
	cfg.maxOpsPerSec = 1e6
	res, err := runBench(context.Background(), cfg)
	require.NoError(t, err)
	require.EqualValues(t, 100, res.totalOps())

	// A cancelled context stops a throttled run.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg.maxOpsPerSec = 1
	_, err = runBench(ctx, cfg)
	require.ErrorIs(t, err, context.Canceled)
}

func TestBenchValidate(t *testing.T) {
	for _, mod := range []func(*benchOptions){
		func(o *benchOptions) { o.keys = 0 },
		func(o *benchOptions) { o.ops = -1 },
		func(o *benchOptions) { o.trees = 0 },
		func(o *benchOptions) { o.readPercent = 90 },
		func(o *benchOptions) { o.maxOpsPerSec = -1 },
	} {
		cfg := testBenchOptions()
		mod(&cfg)
		_, err := runBench(context.Background(), cfg)
		require.Error(t, err)
	}
}
