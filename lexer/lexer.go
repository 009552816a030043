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

// Package lexer turns Huff source text into tokens.
//
// The lexer never fails: characters it cannot make sense of are skipped,
// one diagnostic per run, and lexing resumes after them.
package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bufbuild/huffcompile/evm"
	"github.com/bufbuild/huffcompile/report"
	"github.com/bufbuild/huffcompile/source"
	"github.com/bufbuild/huffcompile/token"
)

const punctuation = "=()[]{}<>,:"

var punctKinds = map[rune]token.Kind{
	'=': token.Assign,
	'(': token.OpenParen,
	')': token.CloseParen,
	'[': token.OpenBracket,
	']': token.CloseBracket,
	'{': token.OpenBrace,
	'}': token.CloseBrace,
	'<': token.LeftAngle,
	'>': token.RightAngle,
	',': token.Comma,
	':': token.Colon,
}

// Lex breaks file into tokens, appending any diagnostics to r.
//
// The result never begins with a newline token and always ends with one,
// synthesized at the end of the file if the source does not end in a
// newline or comment.
func Lex(file *source.File, r *report.Report) []token.Token {
	l := &lexer{Report: r, text: file.Text()}
	l.lex()

	tokens := l.tokens
	if len(tokens) > 0 && tokens[0].Kind == token.Newline {
		tokens = tokens[1:]
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.Newline {
		end := len(l.text)
		tokens = append(tokens, token.Token{
			Kind: token.Newline,
			Span: source.NewSpan(end, end),
		})
	}
	return tokens
}

// LexString is a convenience wrapper around [Lex] for text with no path.
func LexString(text string, r *report.Report) []token.Token {
	return Lex(source.NewFile("", text), r)
}

func (l *lexer) lex() {
	mp := l.mustProgress()
	for !l.Done() {
		mp.check()

		start := l.cursor
		r := l.Peek()

		switch {
		case isBlank(r):
			l.TakeWhile(isBlank)

		case r == '\n' || l.HasPrefix("//") || l.HasPrefix("/*"):
			l.lexNewlines()

		case l.hasDirective("#define"):
			l.cursor += len("#define")
			l.Push(start, token.Define)
		case l.hasDirective("#include"):
			l.cursor += len("#include")
			l.Push(start, token.Include)

		case r == '"':
			l.lexString()

		case l.HasPrefix("0x") && isHexDigit(l.RuneAt(2)):
			l.lexHex()

		case strings.ContainsRune(punctuation, r):
			l.Pop()
			l.Push(start, punctKinds[r])

		case isIdentStart(r):
			l.lexWord()

		case isDigit(r):
			l.lexNumber()

		default:
			l.lexUnrecognized()
		}
	}
}

// hasDirective checks for a #-keyword that is not the prefix of a longer
// word.
func (l *lexer) hasDirective(directive string) bool {
	return l.HasPrefix(directive) && !isIdentContinue(l.RuneAt(len(directive)))
}

// startsToken returns whether some token or separator can begin at the
// cursor.
func (l *lexer) startsToken() bool {
	r := l.Peek()
	return isBlank(r) || r == '\n' || r == '"' ||
		isIdentStart(r) || isDigit(r) ||
		strings.ContainsRune(punctuation, r) ||
		l.HasPrefix("//") || l.HasPrefix("/*") ||
		l.hasDirective("#define") || l.hasDirective("#include")
}

// lexNewlines consumes a run of newlines, comments and the blanks between
// them, and pushes one newline token covering it.
func (l *lexer) lexNewlines() {
	start, end := l.cursor, l.cursor
	for !l.Done() {
		switch {
		case l.Peek() == '\n':
			l.cursor++
		case l.HasPrefix("//"):
			if _, ok := l.SeekInclusive("\n"); ok {
				l.cursor-- // Leave the newline to the next iteration.
			} else {
				l.SeekEOF()
			}
		case l.HasPrefix("/*"):
			open := l.cursor
			if _, ok := l.SeekInclusive("*/"); !ok {
				l.SeekEOF()
				l.Error(ErrUnterminatedComment,
					report.SnippetAt(source.NewSpan(open, open+2), "comment begins here"),
				)
			}
		case isBlank(l.Peek()):
			l.TakeWhile(isBlank)
			continue
		default:
			l.cursor = end
			l.Push(start, token.Newline)
			return
		}
		end = l.cursor
	}
	l.cursor = end
	l.Push(start, token.Newline)
	l.cursor = len(l.text)
}

// lexHex lexes 0x followed by at least one hex digit. Runs that fit in one
// word are literals; longer ones are inline code.
func (l *lexer) lexHex() {
	start := l.cursor
	l.cursor += len("0x")
	digits := l.TakeWhile(isHexDigit)

	if len(digits) >= evm.LiteralDigits {
		tok := l.Push(start, token.Code)
		tok.Value = strings.Clone(digits)
		return
	}

	tok := l.Push(start, token.Literal)
	tok.Value = strings.Clone(digits)
	// Cannot fail: digits is short enough and only holds hex digits.
	tok.Literal, _ = evm.ParseLiteral(digits)
}

// lexWord lexes an identifier-like run and classifies it, first match
// winning: builtin, primitive type, opcode, keyword, identifier.
func (l *lexer) lexWord() {
	start := l.cursor
	word := l.TakeWhile(isIdentContinue)

	if len(word) > 2 && strings.HasPrefix(word, "__") {
		tok := l.Push(start, token.Builtin)
		tok.Value = tok.Text
		return
	}

	if ty, ok := evm.ParsePrimitiveType(word); ok {
		dims := l.lexDims()
		// A bare address is the opcode; only an array of addresses is a
		// type at this stage.
		if ty.Kind != evm.TypeAddress || dims != nil {
			tok := l.Push(start, token.PrimitiveType)
			tok.Type = ty
			tok.Dims = dims
			return
		}
	}

	if op, ok := evm.LookupOpcode(word); ok {
		tok := l.Push(start, token.Opcode)
		tok.Opcode = op
		return
	}

	if kind, ok := token.LookupKeyword(word); ok {
		l.Push(start, kind)
		return
	}

	tok := l.Push(start, token.Ident)
	tok.Value = tok.Text
}

// lexDims consumes array suffixes directly following a type, such as
// [2][]. An unsized dimension is recorded as zero. A malformed suffix is
// left for the main loop to lex as punctuation.
func (l *lexer) lexDims() []int {
	var dims []int
	for l.Peek() == '[' {
		i := 1
		for isDigit(l.RuneAt(i)) {
			i++
		}
		if l.RuneAt(i) != ']' {
			break
		}

		var size int
		if digits := l.Rest()[1:i]; digits != "" {
			n, err := strconv.Atoi(digits)
			if err != nil {
				break
			}
			size = n
		}
		dims = append(dims, size)
		l.cursor += i + 1
	}
	return dims
}

func (l *lexer) lexNumber() {
	start := l.cursor
	digits := l.TakeWhile(isDigit)
	tok := l.Push(start, token.Number)

	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		l.Error(ErrNumberOverflow,
			report.SnippetAt(tok.Span, "this number is too large"),
			report.Help("write large values as 0x-prefixed hex literals"),
		)
		return
	}
	tok.Number = n
}

// lexUnrecognized skips a run of characters that cannot begin any token.
func (l *lexer) lexUnrecognized() {
	start := l.cursor
	l.Pop()
	for !l.Done() && !l.startsToken() {
		l.Pop()
	}

	span := l.SpanFrom(start)
	l.Error(fmt.Errorf("%w %q", ErrUnrecognized, span.Text(l.text)),
		report.SnippetAt(span, "skipped"),
	)
}
