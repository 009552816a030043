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

package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/huffcompile/source"
)

func TestSpan(t *testing.T) {
	t.Parallel()

	s := source.NewSpan(3, 7)
	assert.Equal(t, 4, s.Len())
	assert.False(t, s.IsEmpty())
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(7))
	assert.Equal(t, "3..7", s.String())
	assert.Equal(t, "defi", s.Text("#\n#define"))

	assert.Equal(t, source.Span{Start: 1, End: 9},
		source.Join(source.NewSpan(4, 9), source.NewSpan(1, 2), source.NewSpan(5, 5)))
	assert.Equal(t, source.Span{}, source.Join())

	assert.Panics(t, func() { source.NewSpan(2, 1) })
}

func TestSpanned(t *testing.T) {
	t.Parallel()

	s := source.Wrap("MAIN", source.NewSpan(14, 18))
	n := source.Map(s, func(v string) int { return len(v) })
	assert.Equal(t, 4, n.Value)
	assert.Equal(t, s.Span, n.Span)

	v, span := n.Unwrap()
	assert.Equal(t, 4, v)
	assert.Equal(t, source.NewSpan(14, 18), span)
}

func TestLocation(t *testing.T) {
	t.Parallel()

	file := source.NewFile("main.huff", "#define macro\n\tstop\n貓 add\n")

	tests := []struct {
		offset       int
		line, column int
		utf16        int
	}{
		{offset: 0, line: 1, column: 1},
		{offset: 8, line: 1, column: 9, utf16: 8},
		{offset: 14, line: 2, column: 1},
		{offset: 15, line: 2, column: 5, utf16: 1},
		// The cat is three bytes, two columns and one UTF-16 unit.
		{offset: 23, line: 3, column: 3, utf16: 1},
		{offset: 28, line: 4, column: 1},
		{offset: 1000, line: 4, column: 1},
	}
	for _, tt := range tests {
		loc := file.Location(tt.offset)
		assert.Equal(t, tt.line, loc.Line, "offset %d", tt.offset)
		assert.Equal(t, tt.column, loc.Column, "offset %d", tt.offset)
		assert.Equal(t, tt.utf16, loc.UTF16, "offset %d", tt.offset)
	}

	assert.Equal(t, "main.huff:2:5", file.Position(source.NewSpan(15, 19)))
	assert.Equal(t, "stop", file.Slice(source.NewSpan(15, 19)))
}

func TestNilFile(t *testing.T) {
	t.Parallel()

	var file *source.File
	assert.Empty(t, file.Path())
	assert.Empty(t, file.Text())
	assert.Equal(t, 1, file.Location(5).Line)
	assert.Equal(t, "1:1", file.Position(source.Span{}))
}
