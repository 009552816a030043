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

package report_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/huffcompile/report"
	"github.com/bufbuild/huffcompile/source"
)

func TestReport(t *testing.T) {
	t.Parallel()

	file := source.NewFile("main.huff", `#define macro MAIN() = takes(0) returns(0) {
    0x00 calldataload
    $$$
}
`)

	errBad := errors.New("unrecognized token")

	var r report.Report
	r.Error(
		errBad,
		report.SnippetAt(source.NewSpan(71, 74), "this is not valid"),
		report.Help("remove these characters"),
	)
	r.Warn(
		errors.New("unknown builtin"),
		report.SnippetAt(source.NewSpan(8, 13), ""),
		report.Note("it is treated as a jump label"),
	)
	r.Remark(errors.New("file has no statements"))

	require.Len(t, r, 3)
	assert.True(t, r.HasErrors())
	assert.Equal(t, 1, r.Count(report.Warning))
	assert.ErrorIs(t, r[0].Err, errBad)

	span, ok := r[0].Primary()
	assert.True(t, ok)
	assert.Equal(t, "$$$", file.Slice(span))
	_, ok = r[2].Primary()
	assert.False(t, ok)

	var out strings.Builder
	require.NoError(t, report.Renderer{}.Render(&out, file, r))
	assert.Equal(t, `error: main.huff:3:5: unrecognized token
  main.huff:3:5: this is not valid
  help: remove these characters
warning: main.huff:1:9: unknown builtin
  note: it is treated as a jump label
remark: main.huff: file has no statements
`, out.String())
}

func TestRendererLevel(t *testing.T) {
	t.Parallel()

	var r report.Report
	r.Error(errors.New("boom"), report.SnippetAt(source.NewSpan(0, 1), ""))

	render := report.Renderer{Level: func(l report.Level) string {
		return strings.ToUpper(l.String())
	}}
	assert.Equal(t, "ERROR: 1:1: boom\n", render.Diagnostic(source.NewFile("", "x"), &r[0]))
}

func TestNilReport(t *testing.T) {
	t.Parallel()

	var r *report.Report
	assert.NotPanics(t, func() { r.Error(errors.New("dropped")) })
}
