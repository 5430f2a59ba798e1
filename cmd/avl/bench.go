// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/avltree"
	"github.com/cockroachdb/avltree/internal/base"
	"github.com/cockroachdb/crlib/crtime"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/tokenbucket"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	minLatency = time.Nanosecond
	maxLatency = 10 * time.Second
)

type benchOptions struct {
	keys          int
	ops           int
	trees         int
	readPercent   int
	removePercent int
	seed          uint64
	hashed        bool
	maxOpsPerSec  float64
	plotPoints    int
	verbose       bool
}

var benchConfig benchOptions

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "run a random insert/remove/get workload",
	Long: `
Run a random workload of inserts, removes and lookups. Each of --trees trees
is owned by a single goroutine and receives --ops operations on keys drawn
uniformly from [0, --keys). The report contains latency percentiles for every
operation, the tree metrics and a plot of the height of the first tree.
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		cfg := benchConfig
		cfg.verbose = verbose
		res, err := runBench(ctx, cfg)
		if err != nil {
			log.Fatal(err)
		}
		if err := res.report(os.Stdout); err != nil {
			log.Fatal(err)
		}
	},
}

func (o *benchOptions) validate() error {
	switch {
	case o.keys <= 0:
		return errors.Newf("--keys must be positive, got %d", o.keys)
	case o.ops < 0:
		return errors.Newf("--ops must not be negative, got %d", o.ops)
	case o.trees <= 0:
		return errors.Newf("--trees must be positive, got %d", o.trees)
	case o.readPercent < 0 || o.removePercent < 0 || o.readPercent+o.removePercent > 100:
		return errors.Newf("--read-percent (%d) and --remove-percent (%d) must sum to at most 100",
			o.readPercent, o.removePercent)
	case o.maxOpsPerSec < 0:
		return errors.Newf("--max-ops-per-sec must not be negative")
	}
	return nil
}

type benchOp int8

const (
	benchInsert benchOp = iota
	benchGet
	benchRemove
	numBenchOps
)

func (o benchOp) String() string {
	switch o {
	case benchInsert:
		return "insert"
	case benchGet:
		return "get"
	case benchRemove:
		return "remove"
	default:
		return "unknown"
	}
}

func newHistogram() *hdrhistogram.Histogram {
	return hdrhistogram.New(minLatency.Nanoseconds(), maxLatency.Nanoseconds(), 2)
}

// benchWorker drives one tree.
type benchWorker struct {
	cfg     *benchOptions
	tree    *avltree.Tree[uint64, uint64]
	rng     *rand.Rand
	limiter *tokenbucket.TokenBucket
	hists   [numBenchOps]*hdrhistogram.Histogram
	misses  int
	heights []float64
}

func newBenchWorker(cfg *benchOptions, i int) *benchWorker {
	opts := &avltree.Options{Logger: base.NoopLogger{}}
	if cfg.verbose {
		l := avltree.MakeLoggingEventListener(avltree.DefaultLogger{})
		opts.EventListener = &l
	}
	w := &benchWorker{
		cfg:  cfg,
		tree: avltree.New[uint64, uint64](opts),
		rng:  rand.New(rand.NewPCG(cfg.seed, uint64(i))),
	}
	for op := range w.hists {
		w.hists[op] = newHistogram()
	}
	if cfg.maxOpsPerSec > 0 {
		rate := tokenbucket.TokensPerSecond(cfg.maxOpsPerSec / float64(cfg.trees))
		w.limiter = &tokenbucket.TokenBucket{}
		w.limiter.Init(rate, tokenbucket.Tokens(max(1, rate*0.1)))
	}
	return w
}

func (w *benchWorker) key() uint64 {
	k := w.rng.Uint64N(uint64(w.cfg.keys))
	if w.cfg.hashed {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], k)
		k = xxhash.Sum64(buf[:])
	}
	return k
}

func (w *benchWorker) nextOp() benchOp {
	switch r := w.rng.IntN(100); {
	case r < w.cfg.readPercent:
		return benchGet
	case r < w.cfg.readPercent+w.cfg.removePercent:
		return benchRemove
	default:
		return benchInsert
	}
}

func (w *benchWorker) run(ctx context.Context) error {
	sampleEvery := max(1, w.cfg.ops/max(1, w.cfg.plotPoints))
	for i := 0; i < w.cfg.ops; i++ {
		if w.limiter != nil {
			if err := w.limiter.WaitCtx(ctx, 1); err != nil {
				return err
			}
		} else if i%1024 == 0 && ctx.Err() != nil {
			return ctx.Err()
		}

		op, key := w.nextOp(), w.key()
		start := crtime.NowMono()
		var err error
		switch op {
		case benchInsert:
			err = w.tree.Insert(key, key)
		case benchGet:
			_, err = w.tree.Get(key)
		case benchRemove:
			err = w.tree.Remove(key)
		}
		elapsed := start.Elapsed()
		switch {
		case err == nil:
		case errors.Is(err, avltree.ErrDuplicateKey), errors.Is(err, avltree.ErrKeyNotFound):
			w.misses++
		default:
			return errors.Wrapf(err, "%s %d", op, key)
		}
		if err := w.hists[op].RecordValue(clampLatency(elapsed).Nanoseconds()); err != nil {
			return err
		}
		if i%sampleEvery == 0 {
			w.heights = append(w.heights, float64(w.tree.Height()))
		}
	}
	w.heights = append(w.heights, float64(w.tree.Height()))
	return w.tree.CheckInvariants()
}

func clampLatency(d time.Duration) time.Duration {
	return min(max(d, minLatency), maxLatency)
}

type benchResult struct {
	cfg      benchOptions
	elapsed  time.Duration
	hists    [numBenchOps]*hdrhistogram.Histogram
	misses   int
	metrics  avltree.Metrics
	heights  []float64
	registry *prometheus.Registry
}

// runBench runs the workload described by cfg to completion and returns the
// merged results of every tree.
func runBench(ctx context.Context, cfg benchOptions) (*benchResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	workers := make([]*benchWorker, cfg.trees)
	for i := range workers {
		workers[i] = newBenchWorker(&cfg, i)
	}

	start := crtime.NowMono()
	g, ctx := errgroup.WithContext(ctx)
	for _, w := range workers {
		g.Go(func() error { return w.run(ctx) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &benchResult{
		cfg:      cfg,
		elapsed:  start.Elapsed(),
		heights:  workers[0].heights,
		registry: prometheus.NewRegistry(),
	}
	for op := range res.hists {
		res.hists[op] = newHistogram()
	}
	for _, w := range workers {
		for op, h := range w.hists {
			res.hists[op].Merge(h)
		}
		res.misses += w.misses
		res.metrics = sumMetrics(res.metrics, w.tree.Metrics())
	}
	// The trees are no longer mutated, so scraping them is safe.
	err := res.registry.Register(avltree.NewMetricsCollector("bench", func() avltree.Metrics {
		var m avltree.Metrics
		for _, w := range workers {
			m = sumMetrics(m, w.tree.Metrics())
		}
		return m
	}))
	if err != nil {
		return nil, err
	}
	return res, nil
}

// sumMetrics adds b to a. The height of the result is the larger height.
func sumMetrics(a, b avltree.Metrics) avltree.Metrics {
	a.Keys += b.Keys
	a.Height = max(a.Height, b.Height)
	a.Inserts += b.Inserts
	a.Removes += b.Removes
	a.Failed += b.Failed
	a.Rotations.Left += b.Rotations.Left
	a.Rotations.Right += b.Rotations.Right
	a.Rotations.LeftRight += b.Rotations.LeftRight
	a.Rotations.RightLeft += b.Rotations.RightLeft
	return a
}

func (r *benchResult) totalOps() int64 {
	var n int64
	for _, h := range r.hists {
		n += h.TotalCount()
	}
	return n
}

func (r *benchResult) report(w io.Writer) error {
	ops := r.totalOps()
	fmt.Fprintf(w, "%d ops on %d trees in %s (%.1f ops/sec), %d misses\n\n",
		ops, r.cfg.trees, r.elapsed.Round(time.Millisecond),
		float64(ops)/max(r.elapsed.Seconds(), 1e-9), r.misses)

	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"op", "count", "mean(ns)", "p50(ns)", "p95(ns)", "p99(ns)", "max(ns)"})
	for op, h := range r.hists {
		tbl.Append([]string{
			benchOp(op).String(),
			fmt.Sprint(h.TotalCount()),
			fmt.Sprintf("%.1f", h.Mean()),
			fmt.Sprint(h.ValueAtQuantile(50)),
			fmt.Sprint(h.ValueAtQuantile(95)),
			fmt.Sprint(h.ValueAtQuantile(99)),
			fmt.Sprint(h.Max()),
		})
	}
	tbl.Render()
	fmt.Fprintln(w)

	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	tbl = tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"metric", "labels", "value"})
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			v := m.GetGauge().GetValue()
			if c := m.GetCounter(); c != nil {
				v = c.GetValue()
			}
			tbl.Append([]string{mf.GetName(), strings.Join(labels, ","), fmt.Sprint(v)})
		}
	}
	tbl.Render()

	if len(r.heights) > 1 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, asciigraph.Plot(r.heights,
			asciigraph.Height(10), asciigraph.Caption("height of tree 0")))
	}
	return nil
}
