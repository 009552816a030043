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

package huffcompile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/huffcompile/ast"
	"github.com/bufbuild/huffcompile/internal/interval"
	"github.com/bufbuild/huffcompile/lexer"
	"github.com/bufbuild/huffcompile/parser"
	"github.com/bufbuild/huffcompile/report"
	"github.com/bufbuild/huffcompile/reporter"
	"github.com/bufbuild/huffcompile/source"
	"github.com/bufbuild/huffcompile/token"
	"github.com/bufbuild/huffcompile/walk"
)

// Compiler lexes and parses Huff source files.
//
// Each file is handled independently: includes are recorded, not followed,
// so files can be processed in parallel.
type Compiler struct {
	// Resolves paths into source text. Only required by Compile.
	Resolver Resolver
	// The maximum parallelism to use when compiling. If unspecified or set to
	// a non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int
	// A custom error and warning reporter. If unspecified a default reporter
	// is used. A default reporter fails the compilation after encountering any
	// errors and ignores all warnings.
	Reporter reporter.Reporter
	// If true, Result.Tokens includes the newline tokens the parser ignores.
	KeepNewlines bool
}

// Result is the outcome of compiling one file.
type Result struct {
	File       *source.File
	Tokens     []token.Token
	Statements []source.Spanned[ast.Statement]
	// Everything found wrong with the file, in the order it was found.
	Diagnostics report.Report

	index struct {
		once sync.Once
		m    interval.Map[int, int]
	}
}

// StatementAt returns the statement whose span contains the byte offset, if
// any. Offsets between statements match nothing.
func (r *Result) StatementAt(offset int) (source.Spanned[ast.Statement], bool) {
	r.index.once.Do(func() {
		for i, stmt := range r.Statements {
			if !stmt.Span.IsEmpty() {
				r.index.m.Insert(stmt.Span.Start, stmt.Span.End-1, i)
			}
		}
	})
	found := r.index.m.Get(offset)
	if found.Value == nil {
		return source.Spanned[ast.Statement]{}, false
	}
	return r.Statements[*found.Value], true
}

// Includes returns the paths of this file's #include statements, in order.
func (r *Result) Includes() []string {
	var paths []string
	_ = walk.Statements(r.Statements, func(n walk.Node) error {
		if inc, ok := n.Value.(*ast.FileInclude); ok {
			paths = append(paths, inc.Path)
		}
		return nil
	})
	return paths
}

// Contract groups this file's statements by kind.
func (r *Result) Contract() *ast.Contract {
	return ast.NewContract(r.Statements)
}

// Compile loads the named files with the compiler's Resolver and parses
// them. See [Compiler.Parse].
func (c *Compiler) Compile(ctx context.Context, paths ...string) ([]*Result, error) {
	if c.Resolver == nil {
		return nil, errors.New("huffcompile: Compiler.Resolver is nil")
	}
	return c.run(ctx, len(paths), func(i int) (*source.File, error) {
		return c.load(paths[i])
	})
}

// Parse lexes and parses the given files in parallel. Results are returned
// in the same order as files.
//
// Diagnostics are passed to the compiler's Reporter. Once the reporter
// returns an error it receives no further diagnostics, and Parse returns
// that error. Every file is still parsed, so the results are complete
// either way. If the reporter swallows errors, [reporter.ErrInvalidSource]
// is returned when any file had errors.
//
// Compile returns the same, except that a file which could not be loaded
// stops the remaining loads; its result, and those of files never loaded,
// are nil.
func (c *Compiler) Parse(ctx context.Context, files ...*source.File) ([]*Result, error) {
	return c.run(ctx, len(files), func(i int) (*source.File, error) {
		return files[i], nil
	})
}

func (c *Compiler) run(ctx context.Context, n int, load func(int) (*source.File, error)) ([]*Result, error) {
	if n == 0 {
		return nil, nil
	}

	par := c.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}

	h := reporter.NewHandler(c.Reporter)
	sem := semaphore.NewWeighted(int64(par))
	g, ctx := errgroup.WithContext(ctx)

	results := make([]*Result, n)
	for i := range n {
		g.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			file, err := load(i)
			if err != nil {
				return err
			}
			results[i] = c.parse(file)
			// A reporter error is returned after every file is parsed.
			_ = h.HandleReport(file, results[i].Diagnostics)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, h.Error()
}

func (c *Compiler) parse(file *source.File) *Result {
	res := &Result{File: file}
	res.Tokens = lexer.Lex(file, &res.Diagnostics)
	filtered := token.Filter(res.Tokens)
	res.Statements = parser.Parse(filtered, &res.Diagnostics)
	if !c.KeepNewlines {
		res.Tokens = filtered
	}
	return res
}

func (c *Compiler) load(path string) (*source.File, error) {
	sr, err := c.Resolver.FindFileByPath(path)
	if err != nil {
		return nil, err
	}
	if sr.File != nil {
		return sr.File, nil
	}
	if sr.Source == nil {
		return nil, fmt.Errorf("search result for %q has no source", path)
	}
	defer func() {
		if closer, ok := sr.Source.(io.Closer); ok {
			_ = closer.Close()
		}
	}()
	data, err := io.ReadAll(sr.Source)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return source.NewFile(path, string(data)), nil
}
