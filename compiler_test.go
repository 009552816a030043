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
	"fmt"
	"io/fs"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/huffcompile/ast"
	"github.com/bufbuild/huffcompile/parser"
	"github.com/bufbuild/huffcompile/reporter"
	"github.com/bufbuild/huffcompile/source"
	"github.com/bufbuild/huffcompile/token"
)

const (
	goodSource = `#include "./utils/Ownable.huff"
#include "./utils/Errors.huff"

#define function owner() view returns (address)

#define macro MAIN() = takes(0) returns(0) {
    0x00 calldataload 0xe0 shr
    __FUNC_SIG(owner) eq owner jumpi
    0x00 dup1 revert
    owner:
        OWNER()
}
`
	badSource = `#define macro BROKEN() = {
#define constant X = 0x01
`
)

// collector gathers everything reported, for use as a Reporter. If abort is
// set, the first error is returned to stop reporting.
type collector struct {
	abort    bool
	mu       sync.Mutex
	errs     []reporter.ErrorWithPos
	warnings []reporter.ErrorWithPos
}

func (c *collector) Error(err reporter.ErrorWithPos) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs = append(c.errs, err)
	if c.abort {
		return err
	}
	return nil
}

func (c *collector) Warning(err reporter.ErrorWithPos) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = append(c.warnings, err)
}

func TestParseKeepsOrder(t *testing.T) {
	t.Parallel()

	var files []*source.File
	for i := range 20 {
		files = append(files, source.NewFile(fmt.Sprintf("f%d.huff", i),
			fmt.Sprintf("#define constant C%d = 0x%02x\n", i, i+1)))
	}
	comp := Compiler{MaxParallelism: 3}
	results, err := comp.Parse(context.Background(), files...)
	require.NoError(t, err)
	require.Len(t, results, len(files))
	for i, res := range results {
		assert.Same(t, files[i], res.File)
		assert.Empty(t, res.Diagnostics)
		c := res.Contract()
		require.Len(t, c.Constants, 1)
		assert.Equal(t, fmt.Sprintf("C%d", i), c.Constants[0].Name)
	}
}

func TestParseCollectsErrors(t *testing.T) {
	t.Parallel()

	rep := new(collector)
	comp := Compiler{Reporter: rep}
	results, err := comp.Parse(context.Background(),
		source.NewFile("good.huff", goodSource),
		source.NewFile("bad.huff", badSource),
	)
	require.ErrorIs(t, err, reporter.ErrInvalidSource)
	require.Len(t, results, 2)

	assert.Empty(t, results[0].Diagnostics)
	assert.Equal(t, []string{"./utils/Ownable.huff", "./utils/Errors.huff"}, results[0].Includes())

	bad := results[1]
	assert.True(t, bad.Diagnostics.HasErrors())
	require.Len(t, bad.Statements, 2)
	assert.IsType(t, &ast.ParsingError{}, bad.Statements[0].Value)
	assert.IsType(t, &ast.ConstantDefinition{}, bad.Statements[1].Value)

	require.Len(t, rep.errs, 1)
	assert.ErrorIs(t, rep.errs[0], parser.ErrUnclosedDelimiter)
	assert.Equal(t, "bad.huff:1:26: unclosed `{`", rep.errs[0].Error())
}

func TestParseReporterError(t *testing.T) {
	t.Parallel()

	comp := Compiler{}
	results, err := comp.Parse(context.Background(), source.NewFile("bad.huff", badSource))
	var ewp reporter.ErrorWithPos
	require.ErrorAs(t, err, &ewp)
	assert.Equal(t, "bad.huff", ewp.GetPosition().Path)
	assert.Equal(t, 1, ewp.GetPosition().Line)

	require.Len(t, results, 1)
	require.NotNil(t, results[0])
	assert.Len(t, results[0].Contract().Constants, 1)
}

func TestParseAbortKeepsResults(t *testing.T) {
	t.Parallel()

	rep := &collector{abort: true}
	comp := Compiler{Reporter: rep, MaxParallelism: 1}
	results, err := comp.Parse(context.Background(),
		source.NewFile("bad.huff", badSource),
		source.NewFile("good.huff", goodSource),
		source.NewFile("bad2.huff", badSource),
	)
	require.Error(t, err)
	assert.NotErrorIs(t, err, reporter.ErrInvalidSource)
	assert.Len(t, rep.errs, 1)

	require.Len(t, results, 3)
	for _, res := range results {
		require.NotNil(t, res)
		assert.NotEmpty(t, res.Statements, res.File.Path())
	}
	assert.Empty(t, results[1].Diagnostics)
	assert.NotEmpty(t, results[2].Diagnostics)
}

func TestParseWarnings(t *testing.T) {
	t.Parallel()

	rep := new(collector)
	comp := Compiler{Reporter: rep}
	_, err := comp.Parse(context.Background(),
		source.NewFile("w.huff", "#define function f(uint7) pure returns ()\n"))
	require.NoError(t, err)
	require.Len(t, rep.warnings, 1)
	assert.ErrorIs(t, rep.warnings[0], parser.ErrInvalidTypeSize)
	assert.Equal(t, 1, rep.warnings[0].GetPosition().Line)
	assert.Equal(t, 20, rep.warnings[0].GetPosition().Column)
}

func TestKeepNewlines(t *testing.T) {
	t.Parallel()

	file := source.NewFile("m.huff", goodSource)
	hasNewline := func(tokens []token.Token) bool {
		for _, tok := range tokens {
			if tok.Kind == token.Newline {
				return true
			}
		}
		return false
	}

	results, err := (&Compiler{}).Parse(context.Background(), file)
	require.NoError(t, err)
	assert.False(t, hasNewline(results[0].Tokens))

	results, err = (&Compiler{KeepNewlines: true}).Parse(context.Background(), file)
	require.NoError(t, err)
	tokens := results[0].Tokens
	assert.True(t, hasNewline(tokens))
	assert.Equal(t, token.Newline, tokens[len(tokens)-1].Kind)
}

func TestCompile(t *testing.T) {
	t.Parallel()

	comp := Compiler{
		Resolver: &SourceResolver{
			ImportPaths: []string{"lib", "src"},
			Accessor: SourceAccessorFromMap(map[string]string{
				"src/main.huff": goodSource,
				"lib/utils.huff": "#define macro OWNER() = { caller }\n",
			}),
		},
	}
	results, err := comp.Compile(context.Background(), "main.huff", "utils.huff")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "main.huff", results[0].File.Path())
	assert.NotNil(t, results[0].Contract().Macro("MAIN"))
	assert.NotNil(t, results[1].Contract().Macro("OWNER"))
}

func TestCompileNotFound(t *testing.T) {
	t.Parallel()

	comp := Compiler{
		Resolver: CompositeResolver{
			&SourceResolver{Accessor: SourceAccessorFromMap(nil)},
			ResolverFunc(func(string) (SearchResult, error) {
				return SearchResult{}, fs.ErrPermission
			}),
		},
	}
	_, err := comp.Compile(context.Background(), "missing.huff")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = (&Compiler{}).Compile(context.Background(), "missing.huff")
	assert.Error(t, err)
}

func TestCompileLoadedFile(t *testing.T) {
	t.Parallel()

	file := source.NewFile("mem.huff", "#define constant X = 0x01\n")
	comp := Compiler{Resolver: ResolverFunc(func(string) (SearchResult, error) {
		return SearchResult{File: file}, nil
	})}
	results, err := comp.Compile(context.Background(), "anything")
	require.NoError(t, err)
	assert.Same(t, file, results[0].File)
}

func TestParseNothing(t *testing.T) {
	t.Parallel()

	results, err := (&Compiler{}).Parse(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, results)
}

func TestStatementAt(t *testing.T) {
	t.Parallel()

	text := "#define constant A = 0x01\n\n#define macro M() = {\n  stop\n}\n"
	results, err := (&Compiler{}).Parse(context.Background(), source.NewFile("at.huff", text))
	require.NoError(t, err)
	res := results[0]

	stmt, ok := res.StatementAt(0)
	require.True(t, ok)
	assert.IsType(t, &ast.ConstantDefinition{}, stmt.Value)

	stmt, ok = res.StatementAt(24)
	require.True(t, ok)
	assert.IsType(t, &ast.ConstantDefinition{}, stmt.Value)

	_, ok = res.StatementAt(26)
	assert.False(t, ok)

	stmt, ok = res.StatementAt(len(text) - 2)
	require.True(t, ok)
	assert.Equal(t, "M", stmt.Value.(*ast.MacroDefinition).Name)

	_, ok = res.StatementAt(len(text))
	assert.False(t, ok)
}
