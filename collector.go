// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avltree

import "github.com/prometheus/client_golang/prometheus"

// metricsCollector exports tree Metrics as prometheus metrics.
type metricsCollector struct {
	fn func() Metrics

	keys      *prometheus.Desc
	height    *prometheus.Desc
	inserts   *prometheus.Desc
	removes   *prometheus.Desc
	failed    *prometheus.Desc
	rotations *prometheus.Desc
}

var _ prometheus.Collector = (*metricsCollector)(nil)

// NewMetricsCollector returns a prometheus.Collector that reports the Metrics
// returned by fn each time it is scraped. Metric names are prefixed with
// namespace (e.g. "<namespace>_avltree_inserts_total").
//
// fn is called from the goroutine that scrapes the registry; since a Tree is
// not safe for concurrent use, fn must synchronize with the tree's owner (for
// example by returning a snapshot the owner publishes).
func NewMetricsCollector(namespace string, fn func() Metrics) prometheus.Collector {
	name := func(n string) string { return prometheus.BuildFQName(namespace, "avltree", n) }
	return &metricsCollector{
		fn:      fn,
		keys:    prometheus.NewDesc(name("keys"), "Number of keys stored in the tree.", nil, nil),
		height:  prometheus.NewDesc(name("height"), "Number of levels in the tree.", nil, nil),
		inserts: prometheus.NewDesc(name("inserts_total"), "Number of successful inserts.", nil, nil),
		removes: prometheus.NewDesc(name("removes_total"), "Number of successful removes.", nil, nil),
		failed:  prometheus.NewDesc(name("failed_ops_total"), "Number of inserts and removes that returned an error.", nil, nil),
		rotations: prometheus.NewDesc(name("rotations_total"),
			"Number of rebalancing steps, by case.", []string{"kind"}, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *metricsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.keys
	ch <- c.height
	ch <- c.inserts
	ch <- c.removes
	ch <- c.failed
	ch <- c.rotations
}

// Collect implements prometheus.Collector.
func (c *metricsCollector) Collect(ch chan<- prometheus.Metric) {
	m := c.fn()
	ch <- prometheus.MustNewConstMetric(c.keys, prometheus.GaugeValue, float64(m.Keys))
	ch <- prometheus.MustNewConstMetric(c.height, prometheus.GaugeValue, float64(m.Height))
	ch <- prometheus.MustNewConstMetric(c.inserts, prometheus.CounterValue, float64(m.Inserts))
	ch <- prometheus.MustNewConstMetric(c.removes, prometheus.CounterValue, float64(m.Removes))
	ch <- prometheus.MustNewConstMetric(c.failed, prometheus.CounterValue, float64(m.Failed))
	for _, r := range []struct {
		kind RotationKind
		n    uint64
	}{
		{RotateLeft, m.Rotations.Left},
		{RotateRight, m.Rotations.Right},
		{RotateLeftRight, m.Rotations.LeftRight},
		{RotateRightLeft, m.Rotations.RightLeft},
	} {
		ch <- prometheus.MustNewConstMetric(c.rotations, prometheus.CounterValue, float64(r.n), r.kind.String())
	}
}
