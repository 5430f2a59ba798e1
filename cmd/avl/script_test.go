// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
)

func TestScript(t *testing.T) {
	datadriven.RunTest(t, "testdata/script", func(t *testing.T, td *datadriven.TestData) string {
		switch td.Cmd {
		case "run":
			var buf strings.Builder
			runScriptInput(&buf, td.Input, td.HasArg("numeric"), td.HasArg("verbose"))
			return buf.String()
		default:
			return "unknown command: " + td.Cmd
		}
	})
}
