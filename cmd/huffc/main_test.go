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
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/huffcompile/reporter"
)

const contract = `#define function balanceOf(address) view returns (uint256)

#define macro MAIN() = takes(0) returns(0) {
    stop
}
`

func write(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func run(args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	app := newApp(&out, &errOut)
	err = app.Run(append([]string{"huffc", "--no-color"}, args...))
	return out.String(), errOut.String(), err
}

func TestLex(t *testing.T) {
	t.Parallel()
	path := write(t, t.TempDir(), "main.huff", contract)

	stdout, stderr, err := run("lex", path)
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, `"MAIN"`)
	assert.Contains(t, stdout, "opcode")
	assert.Contains(t, stdout, `"stop"`)
	assert.NotContains(t, stdout, "newline")

	stdout, _, err = run("lex", "--newlines", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "newline")
}

func TestParse(t *testing.T) {
	t.Parallel()
	path := write(t, t.TempDir(), "main.huff", contract)

	stdout, _, err := run("parse", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "ast.MacroDefinition")
	assert.Contains(t, stdout, `"MAIN"`)

	stdout, _, err = run("parse", "--summary", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "balanceOf(address) view returns (uint256)")
	assert.Contains(t, stdout, "takes(0) returns(0), 1 items")
}

func TestCheck(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	good := write(t, dir, "good.huff", contract)
	bad := write(t, dir, "bad.huff", "#define macro BROKEN() = {\n#define constant X = 0x01\n")

	stdout, stderr, err := run("-j", "1", "check", good, bad)
	require.ErrorIs(t, err, reporter.ErrInvalidSource)
	assert.Contains(t, stderr, "error: "+bad+":1:26: unclosed `{`")
	assert.Equal(t, "2 files, 1 errors, 0 warnings\n", stdout)
}

func TestGlob(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	write(t, dir, "a/x.huff", contract)
	write(t, dir, "a/b/y.huff", contract)
	write(t, dir, "a/b/notes.txt", "not huff")

	stdout, _, err := run("check", filepath.Join(dir, "**", "*.huff"))
	require.NoError(t, err)
	assert.Equal(t, "2 files, 0 errors, 0 warnings\n", stdout)

	_, _, err = run("check", filepath.Join(dir, "*.sol"))
	assert.ErrorContains(t, err, "no files match")
}

func TestMissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := run("check", filepath.Join(t.TempDir(), "missing.huff"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, _, err = run("check")
	assert.ErrorIs(t, err, errNoInputs)
}

func TestExpandInputsDedupes(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	a := write(t, dir, "a.huff", contract)
	b := write(t, dir, "b.huff", contract)

	paths, err := expandInputs([]string{b, filepath.Join(dir, "*.huff"), a})
	require.NoError(t, err)
	assert.Equal(t, []string{b, a}, paths)
}

func TestIncludes(t *testing.T) {
	t.Parallel()
	path := write(t, t.TempDir(), "main.huff", "#include \"./a.huff\"\n#include \"./b.huff\"\n"+contract)

	stdout, _, err := run("includes", path)
	require.NoError(t, err)
	assert.Equal(t, path+": ./a.huff\n"+path+": ./b.huff\n", stdout)
}
