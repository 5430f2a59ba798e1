// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInMemLogger(t *testing.T) {
	var l InMemLogger
	l.Infof("rotate %s", "left")
	l.Errorf("bad key %d", 7)
	require.Equal(t, "rotate left\nerror: bad key 7\n", l.String())
	require.PanicsWithValue(t, "boom", func() { l.Fatalf("boom") })
	require.Contains(t, l.String(), "fatal: boom")
	l.Reset()
	require.Equal(t, "", l.String())
}

func TestNoopLoggerFatalPanics(t *testing.T) {
	var l Logger = NoopLogger{}
	l.Infof("ignored")
	require.Panics(t, func() { l.Fatalf("invariant %s", "violated") })
}
