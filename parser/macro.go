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
	"math"

	"github.com/bufbuild/huffcompile/ast"
	"github.com/bufbuild/huffcompile/source"
	"github.com/bufbuild/huffcompile/token"
)

type (
	args = []source.Spanned[ast.Arg]
	body = []source.Spanned[ast.MacroBody]
)

// parseMacro parses a macro or fn definition, after the #define:
//
//	macro NAME(args) = takes(n) returns(m) { body }
func (p *parser) parseMacro(c *cursor) (ast.Statement, error) {
	kw := c.Pop()
	def := &ast.MacroDefinition{Type: source.Wrap(ast.Macro, kw.Span)}
	if kw.Kind == token.Fn {
		def.Type.Value = ast.Fn
	}

	name, err := c.Expect("in macro definition", "a macro name", token.Ident)
	if err != nil {
		return nil, err
	}
	def.Name = name.Value

	def.Args, _, err = delimited[args]{
		p:        p,
		open:     token.OpenParen,
		what:     "macro arguments",
		parse:    p.parseMacroParams,
		fallback: func(source.Span) args { return nil },
	}.run(c)
	if err != nil {
		return nil, err
	}

	if _, err := c.Expect("in macro definition", "`=`", token.Assign); err != nil {
		return nil, err
	}
	if def.Takes, err = p.parseArity(c, token.Takes); err != nil {
		return nil, err
	}
	if def.Returns, err = p.parseArity(c, token.Returns); err != nil {
		return nil, err
	}

	def.Body, _, err = delimited[body]{
		p:        p,
		open:     token.OpenBrace,
		what:     "macro body",
		parse:    p.parseMacroBody,
		fallback: func(source.Span) body { return nil },
	}.run(c)
	if err != nil {
		return nil, err
	}
	return def, nil
}

// parseArity parses an optional takes(n) or returns(n) clause. A missing
// clause, or one with nothing between the parentheses, is zero.
func (p *parser) parseArity(c *cursor, kw token.Kind) (source.Spanned[int], error) {
	mark := c.Mark()
	if _, ok := c.Accept(kw); !ok {
		return source.Wrap(0, c.SpanSince(mark)), nil
	}

	text, _ := kw.Fixed()
	n, _, err := delimited[int]{
		p:    p,
		open: token.OpenParen,
		what: "`" + text + "` clause",
		parse: func(in *cursor) (int, error) {
			if in.Done() {
				return 0, nil
			}
			num, err := in.Expect("in `"+text+"` clause", "a stack item count", token.Number)
			if err != nil {
				return 0, err
			}
			if num.Number > math.MaxInt {
				return 0, &errTooLarge{got: num, what: "stack item count"}
			}
			return int(num.Number), nil
		},
		fallback: func(source.Span) int { return 0 },
	}.run(c)
	if err != nil {
		return source.Spanned[int]{}, err
	}
	return source.Wrap(n, c.SpanSince(mark)), nil
}

// parseMacroParams parses the argument names of a macro definition. Commas
// between names are optional. Anything that is not a name is recorded as an
// invalid argument.
func (p *parser) parseMacroParams(in *cursor) (args, error) {
	var out args
	for !in.Done() {
		tok := in.Pop()
		switch tok.Kind {
		case token.Comma:
			continue
		case token.Ident:
			out = append(out, source.Wrap(ast.ValidArg(tok.Value), tok.Span))
		default:
			p.unexpected(tok, "in macro arguments", "an argument name")
			out = append(out, source.Wrap(ast.InvalidArg(), tok.Span))
		}
	}
	return out, nil
}

// parseMacroBody parses the items of a macro body. It does not fail: tokens
// that cannot start an item become [ast.UnexpectedToken].
func (p *parser) parseMacroBody(in *cursor) (body, error) {
	var out body
	for !in.Done() {
		mark := in.Mark()
		item := p.parseBodyItem(in)
		out = append(out, source.Wrap(item, in.SpanSince(mark)))
	}
	return out, nil
}

func (p *parser) parseBodyItem(in *cursor) ast.MacroBody {
	tok := in.Pop()
	switch tok.Kind {
	case token.Opcode:
		return &ast.Opcode{Opcode: tok.Opcode}

	case token.Literal:
		return &ast.HexLiteral{Literal: tok.Literal}

	case token.Ident, token.Builtin:
		if in.Peek().Kind == token.OpenParen {
			list := p.parseInvocationArgs(in)
			if tok.Kind == token.Builtin {
				return &ast.BuiltinInvocation{Name: tok.Value, Args: list}
			}
			return &ast.MacroInvocation{Name: tok.Value, Args: list}
		}
		// A builtin that is not invoked is an ordinary label.
		if _, ok := in.Accept(token.Colon); ok {
			return &ast.JumpLabelDest{Name: tok.Value}
		}
		return &ast.JumpLabel{Name: tok.Value}

	case token.LeftAngle:
		if in.Peek().Kind == token.Ident && in.PeekAt(1).Kind == token.RightAngle {
			name := in.Pop()
			in.Pop()
			return &ast.ArgsInvocation{Name: name.Value}
		}
	}

	p.unexpected(tok, "in macro body", "an instruction, label or invocation")
	return &ast.UnexpectedToken{Text: tok.Text}
}

// parseInvocationArgs parses the parenthesized arguments of a macro or
// builtin invocation.
func (p *parser) parseInvocationArgs(in *cursor) args {
	out, _, err := delimited[args]{
		p:        p,
		open:     token.OpenParen,
		what:     "invocation arguments",
		parse:    p.parseInvocationArgList,
		fallback: func(source.Span) args { return nil },
	}.run(in)
	if err != nil {
		p.Error(err, snippetFor(err))
	}
	return out
}

func (p *parser) parseInvocationArgList(in *cursor) (args, error) {
	var out args
	for !in.Done() {
		tok := in.Pop()
		var arg ast.Arg
		switch tok.Kind {
		case token.Comma:
			continue
		case token.Ident, token.Builtin, token.String:
			arg = ast.ValidArg(tok.Value)
		case token.Opcode:
			arg = ast.ValidArg(tok.Opcode.String())
		case token.Literal, token.Code, token.Number:
			arg = ast.ValidArg(tok.Text)
		case token.LeftAngle:
			if in.Peek().Kind == token.Ident && in.PeekAt(1).Kind == token.RightAngle {
				name := in.Pop()
				end := in.Pop()
				out = append(out, source.Wrap(
					ast.ValidArg("<"+name.Value+">"),
					source.Join(tok.Span, end.Span),
				))
				continue
			}
			fallthrough
		default:
			p.unexpected(tok, "in invocation arguments", "an argument")
			arg = ast.InvalidArg()
		}
		out = append(out, source.Wrap(arg, tok.Span))
	}
	return out, nil
}

// unexpected reports a token that is skipped without abandoning the
// enclosing construct.
func (p *parser) unexpected(tok token.Token, where, want string) {
	err := &errUnexpected{got: tok, where: where, want: want}
	p.Error(err, snippetFor(err))
}
