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

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/urfave/cli.v1"

	"github.com/bufbuild/huffcompile"
	"github.com/bufbuild/huffcompile/ast"
	"github.com/bufbuild/huffcompile/parser"
	"github.com/bufbuild/huffcompile/report"
	"github.com/bufbuild/huffcompile/source"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func lex(ctx *cli.Context) error {
	results, err := compile(ctx, ctx.Bool(newlinesFlag.Name))
	if results == nil {
		return err
	}

	out := ctx.App.Writer
	for _, res := range results {
		header(out, res, len(results))
		table := newTable(out, "Pos", "Span", "Kind", "Token")
		for _, tok := range res.Tokens {
			loc := res.File.Location(tok.Span.Start)
			table.Append([]string{
				fmt.Sprintf("%d:%d", loc.Line, loc.Column),
				tok.Span.String(),
				tok.Kind.String(),
				strconv.Quote(tok.String()),
			})
		}
		table.Render()
	}
	return err
}

func parse(ctx *cli.Context) error {
	results, err := compile(ctx, false)
	if results == nil {
		return err
	}

	out := ctx.App.Writer
	for _, res := range results {
		header(out, res, len(results))
		if !ctx.Bool(summaryFlag.Name) {
			dumper.Fdump(out, res.Statements)
			continue
		}

		table := newTable(out, "Pos", "Kind", "Name", "Detail")
		for _, stmt := range res.Statements {
			loc := res.File.Location(stmt.Span.Start)
			kind, name, detail := summarize(stmt.Value)
			table.Append([]string{fmt.Sprintf("%d:%d", loc.Line, loc.Column), kind, name, detail})
		}
		table.Render()
	}
	return err
}

func includes(ctx *cli.Context) error {
	paths, err := expandInputs(ctx.Args())
	if err != nil {
		return err
	}
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		incs, err := parser.ScanForIncludes(f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("reading %q: %w", path, err)
		}
		for _, inc := range incs {
			fmt.Fprintf(ctx.App.Writer, "%s: %s\n", path, inc)
		}
	}
	return nil
}

func check(ctx *cli.Context) error {
	results, err := compile(ctx, false)
	if results == nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "%d files, %d errors, %d warnings\n",
		len(results), count(results, report.Error), count(results, report.Warning))
	return err
}

func header(out io.Writer, res *huffcompile.Result, n int) {
	if n > 1 {
		fmt.Fprintf(out, "== %s ==\n", res.File.Path())
	}
}

func newTable(out io.Writer, headers ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	return table
}

// summarize describes a statement in one table row.
func summarize(stmt ast.Statement) (kind, name, detail string) {
	switch s := stmt.(type) {
	case *ast.ParsingError:
		return "parse error", s.Token.Text, s.Message
	case *ast.FileInclude:
		return "include", s.Path, ""
	case *ast.ConstantDefinition:
		value := "FREE_STORAGE_POINTER()"
		if lit, ok := s.Value.(*ast.LiteralValue); ok {
			value = lit.Literal.String()
		}
		return "constant", s.Name, value
	case *ast.MacroDefinition:
		return s.Type.Value.String(), s.Name, fmt.Sprintf("takes(%d) returns(%d), %d items",
			s.Takes.Value, s.Returns.Value, len(s.Body))
	case *ast.TableDefinition:
		return s.Kind.String(), s.Name, fmt.Sprintf("%d entries", len(s.Entries))
	case *ast.AbiFunction:
		detail := s.Signature() + " " + s.StateMutability.Value.String()
		if len(s.Outputs) > 0 {
			detail += " returns (" + paramTypes(s.Outputs) + ")"
		}
		return "function", s.Name, detail
	case *ast.AbiEvent:
		return "event", s.Name, s.Signature()
	case *ast.AbiError:
		return "error", s.Name, s.Signature()
	case *ast.AbiConstructor:
		return "constructor", "", "(" + paramTypes(s.Inputs) + ")"
	default:
		return fmt.Sprintf("%T", stmt), "", ""
	}
}

func paramTypes(params []source.Spanned[ast.FunctionParam]) string {
	types := make([]string, len(params))
	for i, p := range params {
		types[i] = p.Value.Kind.String()
	}
	return strings.Join(types, ", ")
}
