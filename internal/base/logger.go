// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Logger defines an interface for writing log messages.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// DefaultLogger logs to the Go stdlib logs.
type DefaultLogger struct{}

var _ Logger = DefaultLogger{}

// Infof implements the Logger.Infof interface.
func (DefaultLogger) Infof(format string, args ...interface{}) {
	_ = log.Output(2, fmt.Sprintf(format, args...))
}

// Errorf implements the Logger.Errorf interface.
func (DefaultLogger) Errorf(format string, args ...interface{}) {
	_ = log.Output(2, fmt.Sprintf(format, args...))
}

// Fatalf implements the Logger.Fatalf interface.
func (DefaultLogger) Fatalf(format string, args ...interface{}) {
	_ = log.Output(2, fmt.Sprintf(format, args...))
	os.Exit(1)
}

// NoopLogger does nothing. It is used by callers, such as benchmarks, that
// want to silence informational output.
type NoopLogger struct{}

var _ Logger = NoopLogger{}

// Infof implements the Logger.Infof interface.
func (NoopLogger) Infof(format string, args ...interface{}) {}

// Errorf implements the Logger.Errorf interface.
func (NoopLogger) Errorf(format string, args ...interface{}) {}

// Fatalf implements the Logger.Fatalf interface. It panics rather than
// exiting so that invariant failures are never silently dropped.
func (NoopLogger) Fatalf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

// InMemLogger implements Logger using an in-memory buffer (used for testing).
// Fatalf panics after recording the message.
type InMemLogger struct {
	lines []string
}

var _ Logger = (*InMemLogger)(nil)

// Reset clears the recorded messages.
func (b *InMemLogger) Reset() {
	b.lines = b.lines[:0]
}

// String returns the recorded messages, one per line.
func (b *InMemLogger) String() string {
	var buf strings.Builder
	for _, l := range b.lines {
		buf.WriteString(l)
		buf.WriteByte('\n')
	}
	return buf.String()
}

// Infof implements the Logger.Infof interface.
func (b *InMemLogger) Infof(format string, args ...interface{}) {
	b.lines = append(b.lines, fmt.Sprintf(format, args...))
}

// Errorf implements the Logger.Errorf interface.
func (b *InMemLogger) Errorf(format string, args ...interface{}) {
	b.lines = append(b.lines, "error: "+fmt.Sprintf(format, args...))
}

// Fatalf implements the Logger.Fatalf interface.
func (b *InMemLogger) Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	b.lines = append(b.lines, "fatal: "+msg)
	panic(msg)
}
