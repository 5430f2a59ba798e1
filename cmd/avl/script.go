// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"cmp"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cockroachdb/avltree"
	"github.com/cockroachdb/avltree/internal/strparse"
	"github.com/cockroachdb/crlib/crstrings"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var scriptConfig struct {
	numeric bool
}

var scriptCmd = &cobra.Command{
	Use:   "script <file>",
	Short: "replay a script of tree operations",
	Long: `
Replay a script of tree operations against an empty tree, printing one result
per command. A file name of "-" reads the script from stdin. Commands:

  insert <key> [value]   remove <key>        get <key>      contains <key>
  children <key>         root                height         len
  in | pre | post | level                    print          debug
  check                  metrics

Blank lines and lines starting with '#' are ignored. Failed commands print
"error: <msg>" and the script continues.
`,
	Args: cobra.ExactArgs(1),
	Run:  runScript,
}

func runScript(cmd *cobra.Command, args []string) {
	var data []byte
	var err error
	if args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		log.Fatal(err)
	}
	runScriptInput(os.Stdout, string(data), scriptConfig.numeric, verbose)
}

// runScriptInput executes every line of input against a new tree, writing the
// results to w.
func runScriptInput(w io.Writer, input string, numeric, verbose bool) {
	var opts avltree.Options
	if verbose {
		l := avltree.MakeLoggingEventListener(scriptLogger{w: w})
		opts.EventListener = &l
	}
	if numeric {
		newScript(w, &opts, (*strparse.Parser).Int64).run(input)
	} else {
		newScript(w, &opts, (*strparse.Parser).String).run(input)
	}
}

// scriptLogger interleaves log messages with the script output.
type scriptLogger struct {
	w io.Writer
}

func (l scriptLogger) Infof(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "# "+format+"\n", args...)
}

func (l scriptLogger) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "# error: "+format+"\n", args...)
}

func (l scriptLogger) Fatalf(format string, args ...interface{}) {
	log.Fatalf(format, args...)
}

type script[K cmp.Ordered] struct {
	w        io.Writer
	tree     *avltree.Tree[K, string]
	parseKey func(p *strparse.Parser) K
}

func newScript[K cmp.Ordered](
	w io.Writer, opts *avltree.Options, parseKey func(p *strparse.Parser) K,
) *script[K] {
	return &script[K]{
		w:        w,
		tree:     avltree.New[K, string](opts),
		parseKey: parseKey,
	}
}

func (s *script[K]) run(input string) {
	for _, line := range crstrings.Lines(input) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var out string
		var err error
		if perr := strparse.Catch(func() {
			p := strparse.MakeParser("", line)
			out, err = s.exec(&p)
		}); perr != nil {
			err = perr
		}
		if err != nil {
			fmt.Fprintf(s.w, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(s.w, out)
	}
}

func (s *script[K]) exec(p *strparse.Parser) (string, error) {
	t := s.tree
	cmd := p.Next()
	var key K
	switch cmd {
	case "insert":
		key = s.parseKey(p)
		value := fmt.Sprint(key)
		if !p.Done() {
			value = p.Remaining()
		}
		return "ok", t.Insert(key, value)
	case "remove", "get", "contains", "children":
		key = s.parseKey(p)
	}
	p.ExpectDone()

	switch cmd {
	case "remove":
		return "ok", t.Remove(key)

	case "get":
		return t.Get(key)

	case "contains":
		ok, err := t.Contains(key)
		return fmt.Sprint(ok), err

	case "children":
		l, lok, err := t.LeftChildKey(key)
		if err != nil {
			return "", err
		}
		r, rok, err := t.RightChildKey(key)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("left=%s right=%s", formatChild(l, lok), formatChild(r, rok)), nil

	case "root":
		k, ok := t.RootKey()
		return formatChild(k, ok), nil

	case "height":
		return fmt.Sprint(t.Height()), nil

	case "len":
		return fmt.Sprint(t.Len()), nil

	case "in", "pre", "post", "level":
		var o avltree.Order
		switch cmd {
		case "in":
			o = avltree.InOrder
		case "pre":
			o = avltree.PreOrder
		case "post":
			o = avltree.PostOrder
		case "level":
			o = avltree.LevelOrder
		}
		keys := t.Keys(o)
		strs := make([]string, len(keys))
		for i := range keys {
			strs[i] = fmt.Sprint(keys[i])
		}
		return strings.Join(strs, " "), nil

	case "print":
		return t.String(), nil

	case "debug":
		return t.DebugString(), nil

	case "check":
		return "ok", t.CheckInvariants()

	case "metrics":
		m := t.Metrics()
		return m.String(), nil

	default:
		return "", errors.Errorf("unknown command %q", cmd)
	}
}

func formatChild[K any](k K, ok bool) string {
	if !ok {
		return "-"
	}
	return fmt.Sprint(k)
}
