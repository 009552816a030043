// Copyright 2020-2024 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"github.com/bufbuild/huffcompile/report"
	"github.com/bufbuild/huffcompile/source"
	"github.com/bufbuild/huffcompile/token"
)

// delimited parses a region bracketed by open and its matching closer.
//
// The closer is found first, by a scan that balances all three delimiter
// pairs, so a failure inside the region cannot disturb anything after it.
// parse is run over the tokens strictly inside the region and must consume
// all of them. If it fails, or leaves tokens behind, the failure is
// reported and fallback is called with the span of the whole discarded
// region to produce a placeholder.
//
// If the next token is not open, or the region is never closed before the
// next top-level keyword, an error is returned and the statement being
// parsed should be abandoned.
type delimited[T any] struct {
	p *parser

	open token.Kind
	// What the region holds, such as "macro body". Used in diagnostics.
	what string

	parse    func(*cursor) (T, error)
	fallback func(source.Span) T
}

func (d delimited[T]) run(c *cursor) (T, source.Span, error) {
	var zero T

	open, err := c.Expect(d.where(), d.open.String(), d.open)
	if err != nil {
		return zero, source.Span{}, err
	}

	closeIdx, ok := matchDelimiter(c.tokens, c.idx, d.open.Closer())
	if !ok {
		// Leave the cursor on the keyword that stopped the scan so that
		// top-level recovery resumes there.
		c.idx = closeIdx
		return zero, source.Span{}, &errUnclosed{open: open}
	}

	closer := c.tokens[closeIdx]
	inner := newCursor(c.tokens[c.idx:closeIdx], closer.Span.Start)
	c.idx = closeIdx + 1
	span := source.Join(open.Span, closer.Span)

	value, err := d.parse(inner)
	if err == nil && !inner.Done() {
		err = &errUnexpected{got: inner.Peek(), where: d.where(), want: closer.Kind.String()}
	}
	if err != nil {
		opts := []report.DiagnosticOption{snippetFor(err)}
		opts = append(opts,
			report.SnippetAt(span, "this %s was skipped", d.what),
		)
		d.p.Error(&errMalformed{what: d.what, cause: err}, opts...)
		return d.fallback(span), span, nil
	}
	return value, span, nil
}

func (d delimited[T]) where() string {
	return "in " + d.what
}

// matchDelimiter finds the index of the token that closes the region
// starting at start, whose closer is want.
//
// Nested delimiters of every kind are balanced along the way. A closer that
// matches an enclosing nested opener closes everything opened since; a stray
// closer of the wrong kind is skipped; a closer of kind want with no nested
// opener of that kind pending ends the region even if other nested regions
// are left open.
//
// If a #define or #include, or the end of input, is reached first, it
// returns the index of that token and false.
func matchDelimiter(tokens []token.Token, start int, want token.Kind) (int, bool) {
	var stack []token.Kind
	for i := start; i < len(tokens); i++ {
		kind := tokens[i].Kind
		switch {
		case kind == token.Define || kind == token.Include:
			return i, false
		case kind.IsOpen():
			stack = append(stack, kind.Closer())
		case kind.IsClose():
			if n := len(stack); n > 0 && stack[n-1] == kind {
				stack = stack[:n-1]
				continue
			}
			if idx := lastIndex(stack, kind); idx != -1 {
				stack = stack[:idx]
				continue
			}
			if kind == want {
				return i, true
			}
		}
	}
	return len(tokens), false
}

func lastIndex(stack []token.Kind, kind token.Kind) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == kind {
			return i
		}
	}
	return -1
}

// snippetFor returns the primary snippet for a parse error.
func snippetFor(err error) report.DiagnosticOption {
	switch err := err.(type) {
	case *errUnexpected:
		if err.want != "" {
			return report.SnippetAt(err.got.Span, "expected %s", err.want)
		}
		return report.SnippetAt(err.got.Span, "")
	case *errUnclosed:
		return report.SnippetAt(err.open.Span, "opened here")
	case *errTooLarge:
		return report.SnippetAt(err.got.Span, "")
	case *errMalformed:
		return snippetFor(err.cause)
	default:
		return func(*report.Diagnostic) {}
	}
}
