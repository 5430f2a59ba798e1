// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avltree

import "github.com/cockroachdb/avltree/internal/base"

// Logger defines an interface for writing log messages.
type Logger = base.Logger

// DefaultLogger logs to the Go stdlib logs.
type DefaultLogger = base.DefaultLogger

// Options holds the optional parameters for configuring a Tree. The zero
// value is valid.
type Options struct {
	// Logger is used to report invariant violations in invariants builds and
	// by MakeLoggingEventListener. Defaults to DefaultLogger.
	Logger Logger

	// EventListener provides hooks for listening to significant tree events,
	// such as rebalancing rotations. Nil fields are ignored.
	EventListener *EventListener
}

// EnsureDefaults ensures that optional fields are set to their defaults.
func (o *Options) EnsureDefaults() {
	if o.Logger == nil {
		o.Logger = DefaultLogger{}
	}
	if o.EventListener == nil {
		o.EventListener = &EventListener{}
	}
}
