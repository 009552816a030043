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
	"github.com/bufbuild/huffcompile/ast"
	"github.com/bufbuild/huffcompile/source"
	"github.com/bufbuild/huffcompile/token"
)

type entries = []source.Spanned[ast.TableEntry]

// parseJumpTable parses a jump table definition, after the #define:
//
//	jumptable NAME() = { label label ... }
func (p *parser) parseJumpTable(c *cursor) (ast.Statement, error) {
	kw := c.Pop()
	def := &ast.TableDefinition{Kind: ast.JumpTable}
	if kw.Kind == token.JumpTablePacked {
		def.Kind = ast.JumpTablePacked
	}

	name, err := c.Expect("in table definition", "a table name", token.Ident)
	if err != nil {
		return nil, err
	}
	def.Name = name.Value

	if err := p.parseTableSignature(c); err != nil {
		return nil, err
	}

	def.Entries, _, err = delimited[entries]{
		p:        p,
		open:     token.OpenBrace,
		what:     "jump table body",
		parse:    p.parseJumpTableBody,
		fallback: func(source.Span) entries { return nil },
	}.run(c)
	if err != nil {
		return nil, err
	}
	return def, nil
}

// parseJumpTableBody parses a list of labels. Anything else is recorded as
// an error entry.
func (p *parser) parseJumpTableBody(in *cursor) (entries, error) {
	var out entries
	for !in.Done() {
		tok := in.Pop()
		if tok.Kind == token.Ident {
			out = append(out, source.Wrap[ast.TableEntry](&ast.TableJumpLabel{Name: tok.Value}, tok.Span))
			continue
		}

		err := &errUnexpected{got: tok, where: "in jump table body", want: "a label"}
		p.Error(err, snippetFor(err))
		out = append(out, source.Wrap[ast.TableEntry](&ast.TableError{Message: err.Error()}, tok.Span))
	}
	return out, nil
}

// parseCodeTable parses a code table definition, after the #define:
//
//	codetable NAME() = { 0x... }
func (p *parser) parseCodeTable(c *cursor) (ast.Statement, error) {
	c.Pop()
	def := &ast.TableDefinition{Kind: ast.CodeTable}

	name, err := c.Expect("in table definition", "a table name", token.Ident)
	if err != nil {
		return nil, err
	}
	def.Name = name.Value

	if err := p.parseTableSignature(c); err != nil {
		return nil, err
	}

	def.Entries, _, err = delimited[entries]{
		p:    p,
		open: token.OpenBrace,
		what: "code table body",
		parse: func(in *cursor) (entries, error) {
			code, err := in.Expect("in code table body", "hex code", token.Code, token.Literal)
			if err != nil {
				return nil, err
			}
			text := code.Value
			if code.Kind == token.Literal {
				// From the first non-zero byte, as the word would be pushed.
				text = code.Literal.Hex(false)
			}
			return entries{source.Wrap[ast.TableEntry](&ast.TableCode{Code: text}, code.Span)}, nil
		},
		fallback: func(span source.Span) entries {
			return entries{source.Wrap[ast.TableEntry](&ast.TableError{Message: "malformed code table body"}, span)}
		},
	}.run(c)
	if err != nil {
		return nil, err
	}
	return def, nil
}

// parseTableSignature parses the optional "() =" between a table's name and
// its body.
func (p *parser) parseTableSignature(c *cursor) error {
	if _, ok := c.Accept(token.OpenParen); !ok {
		return nil
	}
	if _, err := c.Expect("in table definition", "`)`", token.CloseParen); err != nil {
		return err
	}
	_, err := c.Expect("in table definition", "`=`", token.Assign)
	return err
}
