// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avltree

import "github.com/cockroachdb/redact"

// Metrics holds counters describing the mutations applied to a tree, along
// with a snapshot of its shape.
type Metrics struct {
	// Keys is the number of keys stored in the tree.
	Keys int
	// Height is the number of levels in the tree.
	Height int
	// Inserts is the number of successful Insert calls.
	Inserts uint64
	// Removes is the number of successful Remove calls.
	Removes uint64
	// Failed is the number of Insert and Remove calls that returned an error.
	Failed uint64
	// Rotations counts rebalancing steps by case.
	Rotations struct {
		Left      uint64
		Right     uint64
		LeftRight uint64
		RightLeft uint64
	}
}

// Single returns the number of rebalancing steps that needed one rotation.
func (m Metrics) Single() uint64 {
	return m.Rotations.Left + m.Rotations.Right
}

// Double returns the number of rebalancing steps that needed two rotations.
func (m Metrics) Double() uint64 {
	return m.Rotations.LeftRight + m.Rotations.RightLeft
}

func (m *Metrics) record(kind RotationKind) {
	switch kind {
	case RotateLeft:
		m.Rotations.Left++
	case RotateRight:
		m.Rotations.Right++
	case RotateLeftRight:
		m.Rotations.LeftRight++
	case RotateRightLeft:
		m.Rotations.RightLeft++
	}
}

// String pretty-prints the metrics.
func (m *Metrics) String() string {
	return redact.StringWithoutMarkers(m)
}

// SafeFormat implements redact.SafeFormatter.
func (m *Metrics) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("tree: keys=%d height=%d\n", redact.Safe(m.Keys), redact.Safe(m.Height))
	w.Printf("ops: inserts=%d removes=%d failed=%d\n",
		redact.Safe(m.Inserts), redact.Safe(m.Removes), redact.Safe(m.Failed))
	w.Printf("rotations: left=%d right=%d left-right=%d right-left=%d",
		redact.Safe(m.Rotations.Left), redact.Safe(m.Rotations.Right),
		redact.Safe(m.Rotations.LeftRight), redact.Safe(m.Rotations.RightLeft))
}
