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

// Package token defines the lexical tokens of Huff source.
package token

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bufbuild/huffcompile/evm"
	"github.com/bufbuild/huffcompile/source"
)

// Token is a single lexeme together with the span it was lexed from.
//
// Which of the value fields are meaningful depends on Kind; the rest are
// zero.
type Token struct {
	Kind Kind
	Span source.Span

	// Text is a copy of the source text this token covers.
	Text string

	// Value is the decoded contents of a String, the hex digits of a Code
	// or Literal as written, or the name of an Ident or Builtin.
	Value string

	Literal evm.Literal // Literal
	Opcode  evm.Opcode  // Opcode
	Number  uint64      // Number

	// Type and Dims describe a PrimitiveType. Each dimension is an array
	// size, with zero meaning an unsized dimension. A scalar has no Dims.
	Type evm.PrimitiveType
	Dims []int
}

// Is returns whether this token is of any of the given kinds.
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// IsArray returns whether this is a PrimitiveType with array dimensions.
func (t Token) IsArray() bool {
	return t.Kind == PrimitiveType && len(t.Dims) > 0
}

// Name returns the name an Ident, Builtin or Opcode token spells, or its
// source text for anything else.
func (t Token) Name() string {
	switch t.Kind {
	case Ident, Builtin:
		return t.Value
	case Opcode:
		return t.Opcode.String()
	default:
		return t.Text
	}
}

// String renders this token as source text that lexes back to an equivalent
// token.
func (t Token) String() string {
	if text, ok := t.Kind.Fixed(); ok {
		return text
	}
	switch t.Kind {
	case Newline:
		return "\n"
	case Literal, Code:
		return "0x" + t.Value
	case Number:
		return strconv.FormatUint(t.Number, 10)
	case String:
		return Quote(t.Value)
	case Ident, Builtin:
		return t.Value
	case Opcode:
		return t.Opcode.String()
	case PrimitiveType:
		var b strings.Builder
		b.WriteString(t.Type.String())
		writeDims(&b, t.Dims)
		return b.String()
	default:
		return t.Text
	}
}

// GoString implements [fmt.GoStringer], for debugging output.
func (t Token) GoString() string {
	return fmt.Sprintf("%v(%q)@%v", t.Kind, t.String(), t.Span)
}

// FormatDims renders array dimensions as they are written in source.
func FormatDims(dims []int) string {
	var b strings.Builder
	writeDims(&b, dims)
	return b.String()
}

func writeDims(b *strings.Builder, dims []int) {
	for _, d := range dims {
		b.WriteByte('[')
		if d != 0 {
			b.WriteString(strconv.Itoa(d))
		}
		b.WriteByte(']')
	}
}

// Quote renders s as a double-quoted string literal using only the escapes
// the lexer understands.
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Filter returns the tokens that are not newlines, which is the form the
// parser consumes.
func Filter(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind != Newline {
			out = append(out, t)
		}
	}
	return out
}
