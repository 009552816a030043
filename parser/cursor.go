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
	"github.com/bufbuild/huffcompile/source"
	"github.com/bufbuild/huffcompile/token"
)

// cursor walks a slice of tokens.
type cursor struct {
	tokens []token.Token
	idx    int
	// Where the input ends; used as the span of the end-of-input token.
	end int
}

func newCursor(tokens []token.Token, end int) *cursor {
	return &cursor{tokens: tokens, end: end}
}

// Done returns whether every token has been consumed.
func (c *cursor) Done() bool {
	return c.idx >= len(c.tokens)
}

// Peek returns the next token without consuming it. At the end of input it
// returns a token of kind [token.Unknown].
func (c *cursor) Peek() token.Token {
	return c.PeekAt(0)
}

// PeekAt returns the token n places past the next one.
func (c *cursor) PeekAt(n int) token.Token {
	if c.idx+n >= len(c.tokens) {
		return token.Token{Span: source.NewSpan(c.end, c.end)}
	}
	return c.tokens[c.idx+n]
}

// Pop consumes the next token.
func (c *cursor) Pop() token.Token {
	tok := c.Peek()
	if !c.Done() {
		c.idx++
	}
	return tok
}

// Accept consumes the next token if it has one of the given kinds.
func (c *cursor) Accept(kinds ...token.Kind) (token.Token, bool) {
	if tok := c.Peek(); !c.Done() && tok.Is(kinds...) {
		return c.Pop(), true
	}
	return token.Token{}, false
}

// Expect consumes a token of one of the given kinds, or fails without
// consuming anything.
func (c *cursor) Expect(where, want string, kinds ...token.Kind) (token.Token, error) {
	if tok, ok := c.Accept(kinds...); ok {
		return tok, nil
	}
	return token.Token{}, &errUnexpected{got: c.Peek(), where: where, want: want}
}

// Mark returns the current position, for use with SpanSince.
func (c *cursor) Mark() int {
	return c.idx
}

// SpanSince returns the span of the tokens consumed since mark. If none
// were, it is an empty span at the next token.
func (c *cursor) SpanSince(mark int) source.Span {
	if mark >= c.idx {
		start := c.Peek().Span.Start
		return source.NewSpan(start, start)
	}
	return source.Join(c.tokens[mark].Span, c.tokens[c.idx-1].Span)
}
