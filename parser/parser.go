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
	"errors"
	"slices"

	"github.com/bufbuild/huffcompile/ast"
	"github.com/bufbuild/huffcompile/lexer"
	"github.com/bufbuild/huffcompile/report"
	"github.com/bufbuild/huffcompile/source"
	"github.com/bufbuild/huffcompile/token"
)

// ParseFile lexes and parses a file, returning the tokens the lexer
// produced along with the statements. Diagnostics from both phases are
// appended to r.
func ParseFile(file *source.File, r *report.Report) ([]token.Token, []source.Spanned[ast.Statement]) {
	tokens := lexer.Lex(file, r)
	return tokens, Parse(token.Filter(tokens), r)
}

// Parse parses a token stream into top-level statements, appending any
// diagnostics to r.
//
// Newline tokens carry no meaning to the grammar and callers are expected
// to remove them with [token.Filter]; any that remain are ignored.
//
// The result is never empty: input with no statements at all produces a
// single [ast.ParsingError].
func Parse(tokens []token.Token, r *report.Report) []source.Spanned[ast.Statement] {
	if slices.ContainsFunc(tokens, isNewline) {
		tokens = token.Filter(tokens)
	}

	var end int
	if len(tokens) > 0 {
		end = tokens[len(tokens)-1].Span.End
	}
	p := &parser{Report: r}
	return p.parseFile(newCursor(tokens, end))
}

type parser struct {
	*report.Report
}

func (p *parser) parseFile(c *cursor) []source.Spanned[ast.Statement] {
	var statements []source.Spanned[ast.Statement]
	for !c.Done() {
		mark := c.Mark()
		stmt, err := p.parseStatement(c)
		if err == nil {
			statements = append(statements, source.Wrap(stmt, c.SpanSince(mark)))
			continue
		}

		p.Error(err, snippetFor(err))

		// Resynchronize on the next top-level keyword, always consuming at
		// least one token.
		if c.Mark() == mark {
			c.Pop()
		}
		for !c.Done() && !c.Peek().Is(token.Define, token.Include) {
			c.Pop()
		}
		statements = append(statements, source.Wrap[ast.Statement](
			&ast.ParsingError{Token: failedAt(err), Message: err.Error()},
			c.SpanSince(mark),
		))
	}

	if len(statements) == 0 {
		tok := c.Peek()
		p.Error(ErrNoStatements, report.SnippetAt(tok.Span, ""))
		statements = append(statements, source.Wrap[ast.Statement](
			&ast.ParsingError{Token: tok, Message: ErrNoStatements.Error()},
			tok.Span,
		))
	}
	return statements
}

func (p *parser) parseStatement(c *cursor) (ast.Statement, error) {
	if c.Peek().Kind == token.Include {
		return p.parseInclude(c)
	}
	if _, err := c.Expect("at top level", "`#define` or `#include`", token.Define); err != nil {
		return nil, err
	}

	next := c.Peek()
	switch next.Kind {
	case token.Macro, token.Fn:
		return p.parseMacro(c)
	case token.Constant:
		return p.parseConstant(c)
	case token.Function:
		return p.parseFunction(c)
	case token.Event:
		return p.parseEvent(c)
	case token.Error:
		return p.parseError(c)
	case token.JumpTable, token.JumpTablePacked:
		return p.parseJumpTable(c)
	case token.CodeTable:
		return p.parseCodeTable(c)
	case token.Ident:
		if next.Value == "constructor" {
			return p.parseConstructor(c)
		}
	}
	return nil, &errUnexpected{
		got:   next,
		where: "after `#define`",
		want:  "a macro, fn, constant, function, event, error, table or constructor definition",
	}
}

// parseInclude parses #include "path".
func (p *parser) parseInclude(c *cursor) (ast.Statement, error) {
	c.Pop()
	path, err := c.Expect("after `#include`", "a quoted path", token.String)
	if err != nil {
		return nil, err
	}
	return &ast.FileInclude{Path: path.Value}, nil
}

// parseConstant parses constant NAME = VALUE, after the #define.
func (p *parser) parseConstant(c *cursor) (ast.Statement, error) {
	c.Pop()
	name, err := c.Expect("in constant definition", "a constant name", token.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := c.Expect("in constant definition", "`=`", token.Assign); err != nil {
		return nil, err
	}

	const want = "a hex literal or `FREE_STORAGE_POINTER()`"
	value, err := c.Expect("in constant definition", want, token.Literal, token.FreeStoragePointer)
	if err != nil {
		return nil, err
	}
	def := &ast.ConstantDefinition{Name: name.Value}
	if value.Kind == token.Literal {
		def.Value = &ast.LiteralValue{Literal: value.Literal}
		return def, nil
	}

	if _, err := c.Expect("after `FREE_STORAGE_POINTER`", "`(`", token.OpenParen); err != nil {
		return nil, err
	}
	if _, err := c.Expect("after `FREE_STORAGE_POINTER(`", "`)`", token.CloseParen); err != nil {
		return nil, err
	}
	def.Value = &ast.FreeStoragePointer{}
	return def, nil
}

// failedAt returns the token a statement-level error is about.
func failedAt(err error) token.Token {
	var unexpected *errUnexpected
	if errors.As(err, &unexpected) {
		return unexpected.got
	}
	var unclosed *errUnclosed
	if errors.As(err, &unclosed) {
		return unclosed.open
	}
	return token.Token{}
}

func isNewline(tok token.Token) bool {
	return tok.Kind == token.Newline
}
