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

package source

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode/utf16"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the number of columns a tab advances to.
const TabstopWidth = 4

// File is a source file handed to the lexer, together with a lazily built
// index of its lines.
//
// A nil *File behaves like an empty file with no path.
type File struct {
	path, text string

	once sync.Once
	// Byte offsets immediately after each '\n', prefixed by zero. A binary
	// search over this slice recovers the line an offset is on.
	lines []int
}

// Location is a user-displayable position within a [File].
type Location struct {
	// The byte offset for this location.
	Offset int

	// The line and column, 1-indexed. Column is measured in terminal cells,
	// so a wide rune such as 貓 advances it by two.
	Line, Column int

	// The UTF-16 code unit offset from the start of the line.
	UTF16 int
}

// NewFile returns a new source file.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns this file's path. It need not be a real filesystem path.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Text returns this file's complete text.
func (f *File) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// Len returns the length of this file's text in bytes.
func (f *File) Len() int {
	return len(f.Text())
}

// Slice returns the text covered by span.
func (f *File) Slice(span Span) string {
	return span.Text(f.Text())
}

// Location converts a byte offset into a line and column.
//
// Offsets past the end of the file are clamped to it.
func (f *File) Location(offset int) Location {
	text := f.Text()
	offset = max(0, min(offset, len(text)))
	lines := f.lineIndex()

	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}

	chunk := text[lines[line]:offset]
	var utf16Col int
	for _, r := range chunk {
		utf16Col += utf16.RuneLen(r)
	}

	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: width(chunk) + 1,
		UTF16:  utf16Col,
	}
}

// Position formats the start of span as path:line:col.
func (f *File) Position(span Span) string {
	loc := f.Location(span.Start)
	if f.Path() == "" {
		return fmt.Sprintf("%d:%d", loc.Line, loc.Column)
	}
	return fmt.Sprintf("%s:%d:%d", f.Path(), loc.Line, loc.Column)
}

func (f *File) lineIndex() []int {
	if f == nil {
		return []int{0}
	}
	f.once.Do(func() {
		f.lines = append(f.lines, 0)
		var next int
		text := f.text
		for {
			nl := strings.IndexByte(text, '\n') + 1
			if nl == 0 {
				break
			}
			next += nl
			text = text[nl:]
			f.lines = append(f.lines, next)
		}
	})
	return f.lines
}

// width returns the number of terminal cells text occupies, expanding tabs.
func width(text string) int {
	var column int
	for {
		tab := strings.IndexByte(text, '\t')
		if tab == -1 {
			return column + uniseg.StringWidth(text)
		}
		column += uniseg.StringWidth(text[:tab])
		column += TabstopWidth - column%TabstopWidth
		text = text[tab+1:]
	}
}
