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

package reporter

import (
	"errors"
	"fmt"

	"github.com/bufbuild/huffcompile/source"
)

// ErrInvalidSource is a sentinel error that is returned by the compiler in
// the event that syntax errors are encountered, but the configured Reporter
// always returns nil.
var ErrInvalidSource = errors.New("parse failed: invalid huff source")

// Position is a location in a named source file.
type Position struct {
	Path string
	source.Location
}

// PositionOf returns the position of the start of span in file.
func PositionOf(file *source.File, span source.Span) Position {
	return Position{Path: file.Path(), Location: file.Location(span.Start)}
}

func (p Position) String() string {
	if p.Path == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Path, p.Line, p.Column)
}

// ErrorWithPos is an error about a source file that includes information
// about the location in the file that caused the error.
//
// The value of Error() will contain both the Position and underlying error.
// The value of Unwrap() will only be the underlying error.
type ErrorWithPos interface {
	error
	GetPosition() Position
	Unwrap() error
}

// Error wraps err with a position.
func Error(pos Position, err error) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: err}
}

// Errorf is like [Error] but formats a new underlying error.
func Errorf(pos Position, format string, args ...any) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

type errorWithPos struct {
	underlying error
	pos        Position
}

func (e errorWithPos) Error() string {
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

func (e errorWithPos) GetPosition() Position {
	return e.pos
}

func (e errorWithPos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithPos{}
