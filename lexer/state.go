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

package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/bufbuild/huffcompile/report"
	"github.com/bufbuild/huffcompile/source"
	"github.com/bufbuild/huffcompile/token"
)

type lexer struct {
	*report.Report

	text   string
	cursor int
	tokens []token.Token
}

// Rest returns unlexed text.
func (l *lexer) Rest() string {
	return l.text[l.cursor:]
}

// Done returns whether the whole input has been consumed.
func (l *lexer) Done() bool {
	return l.cursor >= len(l.text)
}

// Peek returns the next rune without consuming it, or -1 at EOF.
func (l *lexer) Peek() rune {
	return l.RuneAt(0)
}

// RuneAt decodes the rune at the given offset past the cursor, or returns -1.
func (l *lexer) RuneAt(offset int) rune {
	if l.cursor+offset >= len(l.text) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(l.text[l.cursor+offset:])
	return r
}

// Pop consumes and returns the next rune, or -1 at EOF.
func (l *lexer) Pop() rune {
	if l.Done() {
		return -1
	}
	r, n := utf8.DecodeRuneInString(l.Rest())
	l.cursor += n
	return r
}

// HasPrefix checks if the given text exists past the cursor.
func (l *lexer) HasPrefix(prefix string) bool {
	return strings.HasPrefix(l.Rest(), prefix)
}

// TakeWhile consumes runes while f holds and returns the consumed text.
func (l *lexer) TakeWhile(f func(rune) bool) string {
	start := l.cursor
	for !l.Done() {
		r, n := utf8.DecodeRuneInString(l.Rest())
		if !f(r) {
			break
		}
		l.cursor += n
	}
	return l.text[start:l.cursor]
}

// SeekInclusive seeks until needle is found; returns the text up to and
// including needle, and moves the cursor past it.
func (l *lexer) SeekInclusive(needle string) (string, bool) {
	if idx := strings.Index(l.Rest(), needle); idx != -1 {
		prefix := l.Rest()[:idx+len(needle)]
		l.cursor += idx + len(needle)
		return prefix, true
	}
	return "", false
}

// SeekEOF moves the cursor to the end of the file and returns the text
// skipped.
func (l *lexer) SeekEOF() string {
	rest := l.Rest()
	l.cursor = len(l.text)
	return rest
}

// SpanFrom returns the span from start to the cursor.
func (l *lexer) SpanFrom(start int) source.Span {
	return source.NewSpan(start, l.cursor)
}

// Push appends a token of the given kind covering start to the cursor and
// returns a pointer to it so callers can fill in its value.
func (l *lexer) Push(start int, kind token.Kind) *token.Token {
	span := l.SpanFrom(start)
	l.tokens = append(l.tokens, token.Token{
		Kind: kind,
		Span: span,
		Text: strings.Clone(span.Text(l.text)),
	})
	return &l.tokens[len(l.tokens)-1]
}

// mustProgress turns a lexer loop that stops advancing into a panic rather
// than a hang.
type mustProgress struct {
	l    *lexer
	prev int
}

func (l *lexer) mustProgress() mustProgress {
	return mustProgress{l, -1}
}

func (mp *mustProgress) check() {
	if mp.prev == mp.l.cursor {
		panic("huffcompile/lexer: failed to make progress")
	}
	mp.prev = mp.l.cursor
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// isBlank reports horizontal whitespace. Newlines are significant.
func isBlank(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\v' || r == '\f'
}
