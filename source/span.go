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

// Package source contains the position types shared by every phase of the
// compiler: byte-offset spans, spanned values, and the indexed source file
// used to turn offsets into lines and columns.
package source

import "fmt"

// Spanner is any type with a [Span].
type Spanner interface {
	Span() Span
}

// Span is a half-open range of byte offsets into a source buffer.
//
// Spans do not refer to the file they came from; callers pair them with the
// [File] they lexed when a human-readable position is needed.
type Span struct {
	Start, End int
}

// NewSpan returns the span [start, end). It panics if end precedes start.
func NewSpan(start, end int) Span {
	if start > end {
		panic(fmt.Sprintf("source: invalid span [%d, %d)", start, end))
	}
	return Span{Start: start, End: end}
}

// Len returns the length of this span, in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns whether this span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains returns whether offset falls inside this span.
func (s Span) Contains(offset int) bool {
	return s.Start <= offset && offset < s.End
}

// Text returns the text this span covers in text.
func (s Span) Text(text string) string {
	return text[s.Start:s.End]
}

// Span implements [Spanner].
func (s Span) Span() Span {
	return s
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Join returns the smallest span that contains every one of spans.
//
// Returns the zero span if spans is empty.
func Join(spans ...Span) Span {
	if len(spans) == 0 {
		return Span{}
	}
	joined := spans[0]
	for _, s := range spans[1:] {
		joined.Start = min(joined.Start, s.Start)
		joined.End = max(joined.End, s.End)
	}
	return joined
}

// Spanned pairs a value with the span of source it was produced from.
type Spanned[T any] struct {
	Value T
	Span  Span
}

// Wrap pairs value with span.
func Wrap[T any](value T, span Span) Spanned[T] {
	return Spanned[T]{Value: value, Span: span}
}

// Unwrap returns the value and span separately.
func (s Spanned[T]) Unwrap() (T, Span) {
	return s.Value, s.Span
}

// Map applies f to the value of s, keeping its span.
func Map[T, U any](s Spanned[T], f func(T) U) Spanned[U] {
	return Spanned[U]{Value: f(s.Value), Span: s.Span}
}
