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

// Package report collects diagnostics produced while lexing and parsing.
//
// Diagnostics are data, not control flow: a phase that finds a problem
// pushes a [Diagnostic] onto a [Report] and keeps going.
package report

import (
	"fmt"
	"runtime"

	"github.com/bufbuild/huffcompile/source"
)

const (
	Error Level = 1 + iota
	Warning
	Remark
)

// Level represents the severity of a diagnostic message.
type Level int8

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Diagnostic is a problem found in a source file.
//
// Not all Diagnostics are errors; some are warnings or remarks.
type Diagnostic struct {
	// The error that prompted this diagnostic. Its Error() return is used
	// as the diagnostic message.
	Err error

	// The kind of diagnostic this is.
	Level Level

	snippets    []Snippet
	notes, help []string

	// Only populated when HUFFCOMPILE_DEBUG is set.
	trace trace
}

// Snippet is an annotated span attached to a [Diagnostic].
type Snippet struct {
	Span    source.Span
	Message string
	Primary bool
}

// Message returns the diagnostic's message.
func (d *Diagnostic) Message() string {
	if d.Err == nil {
		return ""
	}
	return d.Err.Error()
}

// Primary returns the span this diagnostic is about, and whether it has one.
func (d *Diagnostic) Primary() (source.Span, bool) {
	if len(d.snippets) == 0 {
		return source.Span{}, false
	}
	return d.snippets[0].Span, true
}

// Snippets returns every annotated span, primary first.
func (d *Diagnostic) Snippets() []Snippet {
	return d.snippets
}

// Notes returns the notes attached with [Note].
func (d *Diagnostic) Notes() []string {
	return d.notes
}

// Help returns the suggestions attached with [Help].
func (d *Diagnostic) Help() []string {
	return d.help
}

// Trace returns the stack of the code that raised this diagnostic, when
// debugging is enabled.
func (d *Diagnostic) Trace() []runtime.Frame {
	return d.trace
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
type DiagnosticOption func(*Diagnostic)

// SnippetOf returns a DiagnosticOption that annotates the span of at.
//
// The first snippet added is the primary one.
func SnippetOf(at source.Spanner, format string, args ...any) DiagnosticOption {
	return SnippetAt(at.Span(), format, args...)
}

// SnippetAt is like [SnippetOf], but takes a span directly.
func SnippetAt(span source.Span, format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.snippets = append(d.snippets, Snippet{
			Span:    span,
			Message: fmt.Sprintf(format, args...),
			Primary: len(d.snippets) == 0,
		})
	}
}

// Note returns a DiagnosticOption that adds context to the diagnostic.
func Note(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.notes = append(d.notes, fmt.Sprintf(format, args...))
	}
}

// Help returns a DiagnosticOption that suggests a fix.
func Help(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.help = append(d.help, fmt.Sprintf(format, args...))
	}
}

// Report is a collection of diagnostics.
//
// A nil *Report discards everything pushed onto it.
type Report []Diagnostic

// Error pushes an error diagnostic onto this report.
func (r *Report) Error(err error, opts ...DiagnosticOption) {
	r.push(1, err, Error, opts)
}

// Warn pushes a warning diagnostic onto this report.
func (r *Report) Warn(err error, opts ...DiagnosticOption) {
	r.push(1, err, Warning, opts)
}

// Remark pushes a remark diagnostic onto this report.
func (r *Report) Remark(err error, opts ...DiagnosticOption) {
	r.push(1, err, Remark, opts)
}

// HasErrors returns whether any diagnostic in this report is an error.
func (r Report) HasErrors() bool {
	return r.Count(Error) > 0
}

// Count returns the number of diagnostics at the given level.
func (r Report) Count(level Level) int {
	var n int
	for i := range r {
		if r[i].Level == level {
			n++
		}
	}
	return n
}

func (r *Report) push(skip int, err error, level Level, opts []DiagnosticOption) {
	if r == nil {
		return
	}
	*r = append(*r, Diagnostic{Err: err, Level: level})
	d := &(*r)[len(*r)-1]
	for _, opt := range opts {
		opt(d)
	}

	d.trace = captureTrace(skip+1, debugMode)
}
