// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avltree

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/avltree/internal/base"
	"github.com/cockroachdb/avltree/internal/strparse"
	"github.com/cockroachdb/crlib/crstrings"
	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

func TestTreeDatadriven(t *testing.T) {
	var tree *Tree[int, string]
	var log base.InMemLogger
	reset := func() {
		listener := MakeLoggingEventListener(&log)
		tree = New[int, string](&Options{Logger: &log, EventListener: &listener})
		log.Reset()
	}
	reset()

	formatKey := func(k int, ok bool) string {
		if !ok {
			return "-"
		}
		return strconv.Itoa(k)
	}

	datadriven.RunTest(t, "testdata/tree", func(t *testing.T, td *datadriven.TestData) string {
		var buf strings.Builder
		forEachKey := func(fn func(p *strparse.Parser, key int)) {
			for _, line := range crstrings.Lines(td.Input) {
				p := strparse.MakeParser("", line)
				fn(&p, p.Int())
			}
		}
		errorf := func(err error) {
			fmt.Fprintf(&buf, "error: %v\n", err)
		}

		switch td.Cmd {
		case "reset":
			reset()
			return "ok"

		case "insert":
			log.Reset()
			forEachKey(func(p *strparse.Parser, key int) {
				value := strconv.Itoa(key)
				if !p.Done() {
					value = p.Remaining()
				}
				if err := tree.Insert(key, value); err != nil {
					errorf(err)
				}
			})
			buf.WriteString(log.String())
			require.NoError(t, tree.CheckInvariants())

		case "remove":
			log.Reset()
			forEachKey(func(_ *strparse.Parser, key int) {
				if err := tree.Remove(key); err != nil {
					errorf(err)
				}
			})
			buf.WriteString(log.String())
			require.NoError(t, tree.CheckInvariants())

		case "get":
			forEachKey(func(_ *strparse.Parser, key int) {
				v, err := tree.Get(key)
				if err != nil {
					errorf(err)
					return
				}
				fmt.Fprintf(&buf, "%d: %s\n", key, v)
			})

		case "children":
			forEachKey(func(_ *strparse.Parser, key int) {
				l, lok, err := tree.LeftChildKey(key)
				if err != nil {
					errorf(err)
					return
				}
				r, rok, err := tree.RightChildKey(key)
				require.NoError(t, err)
				fmt.Fprintf(&buf, "%d: left=%s right=%s\n", key, formatKey(l, lok), formatKey(r, rok))
			})

		case "traverse":
			for _, o := range []Order{InOrder, PreOrder, PostOrder, LevelOrder} {
				fmt.Fprintf(&buf, "%s:", o)
				for _, k := range tree.Keys(o) {
					fmt.Fprintf(&buf, " %d", k)
				}
				buf.WriteString("\n")
			}

		case "print":
			return tree.String()

		case "debug":
			return tree.DebugString()

		case "metrics":
			m := tree.Metrics()
			return m.String()

		default:
			return fmt.Sprintf("unknown command: %s", td.Cmd)
		}
		if buf.Len() == 0 {
			return "ok"
		}
		return buf.String()
	})
}
