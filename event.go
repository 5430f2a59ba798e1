// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avltree

import "github.com/cockroachdb/redact"

// OpKind identifies the mutation during which an event occurred.
type OpKind int8

const (
	// OpInsert is an Insert call.
	OpInsert OpKind = iota
	// OpRemove is a Remove call.
	OpRemove
)

// String implements fmt.Stringer.
func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// SafeFormat implements redact.SafeFormatter.
func (k OpKind) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeString(redact.SafeString(k.String()))
}

// RotationKind identifies one of the four rebalancing cases.
type RotationKind int8

const (
	// RotateRight is a single right rotation, fixing a left-left imbalance.
	RotateRight RotationKind = iota
	// RotateLeft is a single left rotation, fixing a right-right imbalance.
	RotateLeft
	// RotateLeftRight is a left rotation of the left child followed by a right
	// rotation, fixing a left-right imbalance.
	RotateLeftRight
	// RotateRightLeft is a right rotation of the right child followed by a left
	// rotation, fixing a right-left imbalance.
	RotateRightLeft
)

// String implements fmt.Stringer.
func (k RotationKind) String() string {
	switch k {
	case RotateRight:
		return "right"
	case RotateLeft:
		return "left"
	case RotateLeftRight:
		return "left-right"
	case RotateRightLeft:
		return "right-left"
	default:
		return "unknown"
	}
}

// SafeFormat implements redact.SafeFormatter.
func (k RotationKind) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeString(redact.SafeString(k.String()))
}

// Double returns true if the rebalancing case requires two rotations.
func (k RotationKind) Double() bool {
	return k == RotateLeftRight || k == RotateRightLeft
}

// RotationInfo contains the info for a rebalancing event.
type RotationInfo struct {
	// Op is the mutation that unbalanced the tree.
	Op OpKind
	// Kind is the rebalancing case that was applied.
	Kind RotationKind
	// Pivot is the formatted key of the node whose balance factor was out of
	// range, before the rotation demoted it.
	Pivot string
	// Balance is the balance factor of the pivot before the rotation.
	Balance int
}

func (i RotationInfo) String() string {
	return redact.StringWithoutMarkers(i)
}

// SafeFormat implements redact.SafeFormatter.
func (i RotationInfo) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("[%s] %s rotation at %s (balance %d)", i.Op, i.Kind, i.Pivot, redact.Safe(i.Balance))
}

// EventListener contains a set of functions that will be invoked when various
// significant tree events occur. Note that the functions should not run for an
// excessive amount of time as they are invoked synchronously by the tree
// operation that triggered them, and must not call back into the tree.
type EventListener struct {
	// Rotation is invoked after every rebalancing step, once per case (a
	// double rotation produces a single event).
	Rotation func(RotationInfo)
}

// MakeLoggingEventListener creates an EventListener that logs all events to
// the specified logger.
func MakeLoggingEventListener(logger Logger) EventListener {
	if logger == nil {
		logger = DefaultLogger{}
	}
	return EventListener{
		Rotation: func(info RotationInfo) {
			logger.Infof("%s", info)
		},
	}
}

// TeeEventListener wraps two EventListeners, forwarding all events to both.
func TeeEventListener(a, b EventListener) EventListener {
	return EventListener{
		Rotation: func(info RotationInfo) {
			if a.Rotation != nil {
				a.Rotation(info)
			}
			if b.Rotation != nil {
				b.Rotation(info)
			}
		},
	}
}
