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
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/bufbuild/huffcompile/report"
	"github.com/bufbuild/huffcompile/token"
)

var simpleEscapes = map[rune]rune{
	'\\': '\\',
	'/':  '/',
	'"':  '"',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// lexString lexes a double-quoted string, decoding escapes as it goes.
func (l *lexer) lexString() {
	start := l.cursor
	l.Pop() // Opening quote.

	var buf strings.Builder
	for {
		if l.Done() {
			tok := l.Push(start, token.String)
			tok.Value = buf.String()
			l.Error(ErrUnterminatedString,
				report.SnippetAt(tok.Span, "expected a closing `\"`"),
			)
			return
		}

		escStart := l.cursor
		r := l.Pop()
		switch r {
		case '"':
			tok := l.Push(start, token.String)
			tok.Value = buf.String()
			return
		case '\\':
			l.lexEscape(escStart, &buf)
		default:
			buf.WriteRune(r)
		}
	}
}

// lexEscape decodes the escape whose backslash is at escStart, writing the
// result to buf. Invalid escapes are reported and lexing continues.
func (l *lexer) lexEscape(escStart int, buf *strings.Builder) {
	if l.Done() {
		// The unterminated string is reported by the caller.
		return
	}

	r := l.Pop()
	if esc, ok := simpleEscapes[r]; ok {
		buf.WriteRune(esc)
		return
	}
	if r != 'u' {
		l.Error(ErrInvalidEscape,
			report.SnippetAt(l.SpanFrom(escStart), "unknown escape"),
			report.Help("valid escapes are \\\\ \\/ \\\" \\b \\f \\n \\r \\t and \\uXXXX"),
		)
		buf.WriteRune(r)
		return
	}

	code, ok := l.lexCodeUnit()
	if !ok {
		l.Error(ErrInvalidEscape,
			report.SnippetAt(l.SpanFrom(escStart), "expected four hex digits after \\u"),
		)
		buf.WriteRune(utf8.RuneError)
		return
	}

	if utf16.IsSurrogate(code) && l.HasPrefix(`\u`) {
		// Try to complete a surrogate pair; on failure, back out and let
		// the second escape be decoded on its own.
		save := l.cursor
		l.cursor += len(`\u`)
		if low, ok := l.lexCodeUnit(); ok {
			if pair := utf16.DecodeRune(code, low); pair != utf8.RuneError {
				buf.WriteRune(pair)
				return
			}
		}
		l.cursor = save
	}

	if !utf8.ValidRune(code) {
		l.Error(ErrInvalidEscape,
			report.SnippetAt(l.SpanFrom(escStart), "U+%04X is not a valid code point", code),
		)
		buf.WriteRune(utf8.RuneError)
		return
	}
	buf.WriteRune(code)
}

// lexCodeUnit consumes exactly four hex digits. If fewer are present, it
// consumes those that are and fails.
func (l *lexer) lexCodeUnit() (rune, bool) {
	start := l.cursor
	for i := 0; i < 4 && isHexDigit(l.Peek()); i++ {
		l.cursor++
	}
	digits := l.text[start:l.cursor]
	if len(digits) != 4 {
		return 0, false
	}
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(n), true
}
