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
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fatih/color"
	"gopkg.in/urfave/cli.v1"

	"github.com/bufbuild/huffcompile"
	"github.com/bufbuild/huffcompile/report"
	"github.com/bufbuild/huffcompile/reporter"
)

var errNoInputs = errors.New("no input files")

// expandInputs turns arguments into paths. Arguments containing glob
// metacharacters are expanded with doublestar, so src/**/*.huff works;
// anything else is passed through for the resolver to report.
func expandInputs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			paths = append(paths, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, errNoInputs
	}

	// Keep the first occurrence of each path.
	seen := make(map[string]bool, len(paths))
	return slices.DeleteFunc(paths, func(p string) bool {
		dup := seen[p]
		seen[p] = true
		return dup
	}), nil
}

// compile parses the command's arguments and prints every diagnostic. The
// error is reporter.ErrInvalidSource if results are usable but some file had
// errors.
func compile(ctx *cli.Context, keepNewlines bool) ([]*huffcompile.Result, error) {
	paths, err := expandInputs(ctx.Args())
	if err != nil {
		return nil, err
	}

	comp := huffcompile.Compiler{
		Resolver:       &huffcompile.SourceResolver{},
		MaxParallelism: ctx.GlobalInt("parallelism"),
		// Keep going after errors so that every file is reported on.
		Reporter:     reporter.NewReporter(func(reporter.ErrorWithPos) error { return nil }, nil),
		KeepNewlines: keepNewlines,
	}
	results, err := comp.Compile(context.Background(), paths...)
	if err != nil && !errors.Is(err, reporter.ErrInvalidSource) {
		return nil, err
	}

	r := newRenderer(ctx)
	for _, res := range results {
		if rerr := r.Render(ctx.App.ErrWriter, res.File, res.Diagnostics); rerr != nil {
			return nil, rerr
		}
	}
	return results, err
}

var levelColors = map[report.Level]*color.Color{
	report.Error:   color.New(color.FgRed, color.Bold),
	report.Warning: color.New(color.FgYellow, color.Bold),
	report.Remark:  color.New(color.FgCyan),
}

func newRenderer(ctx *cli.Context) report.Renderer {
	r := report.Renderer{ShowTrace: ctx.GlobalBool(traceFlag.Name)}
	if ctx.GlobalBool(noColorFlag.Name) {
		return r
	}
	r.Level = func(l report.Level) string {
		if c, ok := levelColors[l]; ok {
			return c.Sprint(l.String())
		}
		return l.String()
	}
	return r
}

func count(results []*huffcompile.Result, level report.Level) int {
	var n int
	for _, res := range results {
		n += res.Diagnostics.Count(level)
	}
	return n
}
