// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package ascii provides a character board used to lay out text diagrams,
// such as the level-by-level rendering of a tree.
package ascii

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Board is a grid of runes that grows on demand as text is written to it.
// The zero value is an empty board ready for use.
type Board struct {
	rows [][]rune
}

// Make returns a new Board with room for the given number of rows.
func Make(height int) Board {
	return Board{rows: make([][]rune, 0, height)}
}

// At returns a cursor positioned at the given row and column.
func (b *Board) At(r, c int) Cursor {
	return Cursor{b: b, r: r, c: c, carriageReturnCol: c}
}

// NewLine returns a cursor at the start of a new row appended to the board.
func (b *Board) NewLine() Cursor {
	b.row(len(b.rows), 0)
	return b.At(len(b.rows)-1, 0)
}

// CenterIn writes s on row r so that it is centered within the span of width
// columns starting at column c. If s is wider than the span, it starts at c.
func (b *Board) CenterIn(r, c, width int, s string) {
	n := utf8.RuneCountInString(s)
	if pad := width - n; pad > 0 {
		c += pad / 2
	}
	b.write(r, c, s)
}

// String returns the Board as a string. Trailing spaces are trimmed from each
// line.
func (b *Board) String() string {
	var buf strings.Builder
	for r, row := range b.rows {
		if r > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(strings.TrimRight(string(row), " "))
	}
	return buf.String()
}

// row returns row r, growing the board so that the row exists and is at
// least width runes wide.
func (b *Board) row(r, width int) []rune {
	for len(b.rows) <= r {
		b.rows = append(b.rows, nil)
	}
	if n := len(b.rows[r]); n < width {
		for i := n; i < width; i++ {
			b.rows[r] = append(b.rows[r], ' ')
		}
	}
	return b.rows[r]
}

func (b *Board) write(r, c int, s string) {
	row := b.row(r, c+utf8.RuneCountInString(s))
	i := c
	for _, ch := range s {
		row[i] = ch
		i++
	}
}

// Cursor is a position on a Board.
type Cursor struct {
	b    *Board
	r, c int
	// carriageReturnCol is the column to which newlines return.
	carriageReturnCol int
}

// Right returns a new cursor with the given column offset from the current
// cursor.
func (c Cursor) Right(numCols int) Cursor {
	c.c += numCols
	return c
}

// Printf writes the formatted string to cursor, returning a cursor where the
// written text ends.
func (c Cursor) Printf(format string, args ...interface{}) Cursor {
	return c.WriteString(fmt.Sprintf(format, args...))
}

// WriteString writes the provided string starting at the cursor, returning a
// cursor where the written text ends. Newlines in the string break to the next
// row, with the column reset to the column the cursor was created at.
func (c Cursor) WriteString(s string) Cursor {
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			c.b.write(c.r, c.c, s)
			c.c += utf8.RuneCountInString(s)
			break
		}
		c.b.write(c.r, c.c, s[:i])
		c.r++
		c.c = c.carriageReturnCol
		s = s[i+1:]
	}
	return c
}
