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

// Package walk provides helper functions for traversing the statements
// produced by the parser.
package walk

import (
	"github.com/bufbuild/huffcompile/ast"
	"github.com/bufbuild/huffcompile/source"
)

// Node is any value visited by a walk: an [ast.Statement], [ast.MacroBody],
// [ast.TableEntry], [ast.Arg], [ast.FunctionParam] or [ast.EventParam].
type Node = source.Spanned[any]

// Statements walks all statements and everything nested in them, in source
// order, calling fn for each. If fn returns an error, the walk stops and
// that error is returned.
func Statements(stmts []source.Spanned[ast.Statement], fn func(Node) error) error {
	return StatementsEnterAndExit(stmts, fn, nil)
}

// StatementsEnterAndExit is like [Statements], except that enter is called
// before a node's children are visited and exit afterwards. exit may be nil.
func StatementsEnterAndExit(stmts []source.Spanned[ast.Statement], enter, exit func(Node) error) error {
	w := &walker{enter: enter, exit: exit}
	for _, stmt := range stmts {
		if err := w.statement(stmt); err != nil {
			return err
		}
	}
	return nil
}

// MacroBodies calls fn for each item of each macro body, with the macro
// that contains it. Arguments of invocations are not visited.
func MacroBodies(stmts []source.Spanned[ast.Statement], fn func(*ast.MacroDefinition, source.Spanned[ast.MacroBody]) error) error {
	for _, stmt := range stmts {
		macro, ok := stmt.Value.(*ast.MacroDefinition)
		if !ok {
			continue
		}
		for _, item := range macro.Body {
			if err := fn(macro, item); err != nil {
				return err
			}
		}
	}
	return nil
}

type walker struct {
	enter, exit func(Node) error
}

func (w *walker) statement(stmt source.Spanned[ast.Statement]) error {
	return w.visit(source.Wrap[any](stmt.Value, stmt.Span), func() error {
		switch s := stmt.Value.(type) {
		case *ast.MacroDefinition:
			if err := leaves(w, s.Args); err != nil {
				return err
			}
			for _, item := range s.Body {
				if err := w.macroBody(item); err != nil {
					return err
				}
			}
		case *ast.TableDefinition:
			return leaves(w, s.Entries)
		case *ast.AbiFunction:
			if err := leaves(w, s.Inputs); err != nil {
				return err
			}
			return leaves(w, s.Outputs)
		case *ast.AbiEvent:
			return leaves(w, s.Inputs)
		case *ast.AbiError:
			return leaves(w, s.Inputs)
		case *ast.AbiConstructor:
			return leaves(w, s.Inputs)
		}
		return nil
	})
}

func (w *walker) macroBody(item source.Spanned[ast.MacroBody]) error {
	return w.visit(source.Wrap[any](item.Value, item.Span), func() error {
		switch b := item.Value.(type) {
		case *ast.MacroInvocation:
			return leaves(w, b.Args)
		case *ast.BuiltinInvocation:
			return leaves(w, b.Args)
		}
		return nil
	})
}

func leaves[T any](w *walker, nodes []source.Spanned[T]) error {
	for _, n := range nodes {
		if err := w.visit(source.Wrap[any](n.Value, n.Span), nil); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) visit(n Node, children func() error) error {
	if err := w.enter(n); err != nil {
		return err
	}
	if children != nil {
		if err := children(); err != nil {
			return err
		}
	}
	if w.exit != nil {
		return w.exit(n)
	}
	return nil
}
