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
	"fmt"
	"math"

	"github.com/bufbuild/huffcompile/ast"
	"github.com/bufbuild/huffcompile/evm"
	"github.com/bufbuild/huffcompile/report"
	"github.com/bufbuild/huffcompile/source"
	"github.com/bufbuild/huffcompile/token"
)

type (
	funcParams  = []source.Spanned[ast.FunctionParam]
	eventParams = []source.Spanned[ast.EventParam]
)

var mutabilities = map[token.Kind]ast.StateMutability{
	token.View:       ast.View,
	token.Pure:       ast.Pure,
	token.Payable:    ast.Payable,
	token.NonPayable: ast.NonPayable,
}

// parseFunction parses an ABI function, after the #define:
//
//	function NAME(params) view returns (params)
func (p *parser) parseFunction(c *cursor) (ast.Statement, error) {
	c.Pop()
	name, err := c.Expect("in function definition", "a function name", token.Ident)
	if err != nil {
		return nil, err
	}
	fn := &ast.AbiFunction{Name: name.Value}

	if fn.Inputs, err = p.parseParamList(c, "function parameters"); err != nil {
		return nil, err
	}

	mut, err := c.Expect("in function definition", "a state mutability",
		token.View, token.Pure, token.Payable, token.NonPayable)
	if err != nil {
		return nil, err
	}
	fn.StateMutability = source.Wrap(mutabilities[mut.Kind], mut.Span)

	if _, ok := c.Accept(token.Returns); ok {
		if fn.Outputs, err = p.parseParamList(c, "function outputs"); err != nil {
			return nil, err
		}
	}
	return fn, nil
}

// parseEvent parses an ABI event, after the #define.
func (p *parser) parseEvent(c *cursor) (ast.Statement, error) {
	c.Pop()
	name, err := c.Expect("in event definition", "an event name", token.Ident)
	if err != nil {
		return nil, err
	}
	ev := &ast.AbiEvent{Name: name.Value}

	ev.Inputs, _, err = delimited[eventParams]{
		p:        p,
		open:     token.OpenParen,
		what:     "event parameters",
		parse:    p.parseEventParams,
		fallback: func(source.Span) eventParams { return nil },
	}.run(c)
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// parseError parses an ABI error, after the #define.
func (p *parser) parseError(c *cursor) (ast.Statement, error) {
	c.Pop()
	name, err := c.Expect("in error definition", "an error name", token.Ident)
	if err != nil {
		return nil, err
	}
	decl := &ast.AbiError{Name: name.Value}
	if decl.Inputs, err = p.parseParamList(c, "error parameters"); err != nil {
		return nil, err
	}
	return decl, nil
}

// parseConstructor parses a constructor declaration, after the #define.
func (p *parser) parseConstructor(c *cursor) (ast.Statement, error) {
	c.Pop()
	ctor := new(ast.AbiConstructor)
	var err error
	if ctor.Inputs, err = p.parseParamList(c, "constructor parameters"); err != nil {
		return nil, err
	}
	return ctor, nil
}

func (p *parser) parseParamList(c *cursor, what string) (funcParams, error) {
	params, _, err := delimited[funcParams]{
		p:        p,
		open:     token.OpenParen,
		what:     what,
		parse:    p.parseFunctionParams,
		fallback: func(source.Span) funcParams { return nil },
	}.run(c)
	return params, err
}

// parseFunctionParams parses TYPE [LOCATION] [NAME], separated by commas.
func (p *parser) parseFunctionParams(in *cursor) (funcParams, error) {
	var out funcParams
	for !in.Done() {
		if _, ok := in.Accept(token.Comma); ok {
			continue
		}

		mark := in.Mark()
		kind, err := p.parseParamType(in, "in parameter list")
		if err != nil {
			return nil, err
		}
		param := ast.FunctionParam{Kind: kind}
		if loc, ok := in.Accept(token.Memory, token.Storage, token.Calldata); ok {
			param.InternalType = loc.Text
		}
		param.Name, _ = acceptParamName(in)
		out = append(out, source.Wrap(param, in.SpanSince(mark)))
	}
	return out, nil
}

// parseEventParams parses TYPE [indexed] [NAME], separated by commas.
func (p *parser) parseEventParams(in *cursor) (eventParams, error) {
	var out eventParams
	for !in.Done() {
		if _, ok := in.Accept(token.Comma); ok {
			continue
		}

		mark := in.Mark()
		kind, err := p.parseParamType(in, "in event parameters")
		if err != nil {
			return nil, err
		}
		param := ast.EventParam{Kind: kind}
		_, param.Indexed = in.Accept(token.Indexed)
		param.Name, _ = acceptParamName(in)
		out = append(out, source.Wrap(param, in.SpanSince(mark)))
	}
	return out, nil
}

// parseParamType parses a primitive type, possibly an array, or a
// parenthesized tuple of types followed by optional dimensions.
func (p *parser) parseParamType(in *cursor, where string) (ast.ParamType, error) {
	tok := in.Peek()
	switch {
	case tok.Kind == token.PrimitiveType:
		in.Pop()
		if !tok.Type.Valid() {
			p.Warn(fmt.Errorf("%w: %s", ErrInvalidTypeSize, tok.Type),
				report.SnippetAt(tok.Span, "not a valid ABI type"),
			)
		}
		return ast.ArrayType(ast.ScalarType(tok.Type), tok.Dims), nil

	case tok.Kind == token.Opcode && tok.Opcode == evm.Address:
		// The lexer cannot tell the type from the instruction.
		in.Pop()
		return ast.ParamType{Kind: ast.Address}, nil

	case tok.Kind == token.OpenParen:
		components, _, err := delimited[[]ast.ParamType]{
			p:        p,
			open:     token.OpenParen,
			what:     "tuple type",
			parse:    p.parseTupleComponents,
			fallback: func(source.Span) []ast.ParamType { return nil },
		}.run(in)
		if err != nil {
			return ast.ParamType{}, err
		}
		dims, err := parseDims(in)
		if err != nil {
			return ast.ParamType{}, err
		}
		return ast.ArrayType(ast.TupleType(components...), dims), nil
	}
	return ast.ParamType{}, &errUnexpected{got: tok, where: where, want: "a type"}
}

// parseTupleComponents parses the types inside a tuple. Component names and
// locations are permitted and discarded.
func (p *parser) parseTupleComponents(in *cursor) ([]ast.ParamType, error) {
	var out []ast.ParamType
	for !in.Done() {
		if _, ok := in.Accept(token.Comma); ok {
			continue
		}
		kind, err := p.parseParamType(in, "in tuple type")
		if err != nil {
			return nil, err
		}
		in.Accept(token.Memory, token.Storage, token.Calldata)
		acceptParamName(in)
		out = append(out, kind)
	}
	return out, nil
}

// parseDims parses [n] and [] suffixes written as separate tokens, as they
// are after a tuple.
func parseDims(in *cursor) ([]int, error) {
	var dims []int
	for in.Peek().Kind == token.OpenBracket {
		in.Pop()
		var size int
		if num, ok := in.Accept(token.Number); ok {
			if num.Number > math.MaxInt {
				return nil, &errTooLarge{got: num, what: "array size"}
			}
			size = int(num.Number)
		}
		if _, err := in.Expect("in array dimension", "`]`", token.CloseBracket); err != nil {
			return nil, err
		}
		dims = append(dims, size)
	}
	return dims, nil
}

// acceptParamName consumes a parameter name if one is next. Names that
// happen to be instructions, such as caller or gas, are accepted; address
// is not, since it is a type.
func acceptParamName(in *cursor) (string, bool) {
	tok := in.Peek()
	switch {
	case in.Done():
		return "", false
	case tok.Kind == token.Ident:
		in.Pop()
		return tok.Value, true
	case tok.Kind == token.Opcode && tok.Opcode != evm.Address:
		in.Pop()
		return tok.Opcode.String(), true
	}
	return "", false
}
