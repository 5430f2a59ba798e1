// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package strparse provides facilities for parsing strings, intended for use in
// tests, scripts and debug input.
package strparse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// Parser is a helper used to implement parsing of operation scripts.
//
// It takes a string and splits it into tokens. Tokens are separated by
// whitespace; in addition user-specified separators are also always separate
// tokens. For example, when passed the separators `=` the string `key=10`
// results in tokens `key`, `=`, `10`. A token that begins with a double quote
// extends to the matching closing quote, so Go-quoted strings may contain
// whitespace and separators.
//
// All Parser methods throw panics instead of returning errors. The code
// that uses a Parser can recover them with Catch.
type Parser struct {
	original  string
	tokens    []string
	lastToken string
}

// MakeParser constructs a new Parser that converts any instance of the runes
// contained in [separators] into separate tokens, and consumes the provided
// input string.
func MakeParser(separators string, input string) Parser {
	p := Parser{original: input}

	s := input
	for len(s) > 0 {
		nonWhiteSpacePos := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) })
		switch nonWhiteSpacePos {
		case -1:
			// Only whitespace.
			s = s[len(s):]
		case 0:
			if s[0] == '"' {
				if q, err := strconv.QuotedPrefix(s); err == nil {
					p.tokens = append(p.tokens, q)
					s = s[len(q):]
					continue
				}
			}
			wsPos := strings.IndexFunc(s, unicode.IsSpace)
			switch pos := strings.IndexAny(s, separators); pos {
			case -1:
				if wsPos == -1 {
					wsPos = len(s)
				}
				p.tokens = append(p.tokens, s[:wsPos])
				s = s[wsPos:]
			case 0:
				p.tokens = append(p.tokens, s[:1])
				s = s[1:]
			default:
				if wsPos != -1 && wsPos < pos {
					pos = wsPos
				}
				p.tokens = append(p.tokens, s[:pos])
				s = s[pos:]
			}
		default:
			// Whitespace.
			s = s[nonWhiteSpacePos:]
		}
	}
	return p
}

// Done returns true if there are no more tokens.
func (p *Parser) Done() bool {
	return len(p.tokens) == 0
}

// Peek returns the next token, without consuming the token. Returns "" if there
// are no more tokens.
func (p *Parser) Peek() string {
	if p.Done() {
		p.lastToken = ""
		return ""
	}
	p.lastToken = p.tokens[0]
	return p.tokens[0]
}

// Next returns the next token, or "" if there are no more tokens.
func (p *Parser) Next() string {
	res := p.Peek()
	if res != "" {
		p.tokens = p.tokens[1:]
	}
	return res
}

// Remaining returns all the remaining tokens, separated by spaces.
func (p *Parser) Remaining() string {
	var buf strings.Builder
	for _, tok := range p.tokens {
		if buf.Len() > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(tok)
	}
	p.tokens = nil
	return buf.String()
}

// ExpectDone panics if any tokens remain.
func (p *Parser) ExpectDone() {
	if !p.Done() {
		p.Peek()
		p.Errf("unexpected token")
	}
}

// String consumes the next token and returns it, unquoting it if it is a
// Go-quoted string.
func (p *Parser) String() string {
	if p.Done() {
		p.Errf("expected string, but no tokens found")
	}
	tok := p.Next()
	if strings.HasPrefix(tok, `"`) {
		s, err := strconv.Unquote(tok)
		if err != nil {
			p.Errf("cannot unquote: %v", err)
		}
		return s
	}
	return tok
}

// Int parses the next token as an integer.
func (p *Parser) Int() int {
	x, err := strconv.Atoi(p.Next())
	if err != nil {
		p.Errf("cannot parse number: %v", err)
	}
	return x
}

// Int64 parses the next token as an int64.
func (p *Parser) Int64() int64 {
	x, err := strconv.ParseInt(p.Next(), 10, 64)
	if err != nil {
		p.Errf("cannot parse number: %v", err)
	}
	return x
}

// Errf panics with an error which includes the original string and the last
// token.
func (p *Parser) Errf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	panic(&parseError{
		err: errors.Errorf("error parsing %q at token %q: %s", p.original, p.lastToken, msg),
	})
}

// parseError is the panic value raised by Errf.
type parseError struct {
	err error
}

// Catch runs fn, converting a panic raised by a Parser method into a returned
// error. Any other panic is re-raised.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(*parseError)
			if !ok {
				panic(r)
			}
			err = pe.err
		}
	}()
	fn()
	return nil
}
