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

// Package reporter decides what happens to the diagnostics found while
// compiling a batch of files: whether compilation keeps going after an
// error, and where warnings go.
package reporter

import (
	"sync"

	"github.com/bufbuild/huffcompile/report"
	"github.com/bufbuild/huffcompile/source"
)

// ErrorReporter is responsible for reporting the given error. If the reporter
// returns a non-nil error, compilation will abort with that error. If the
// reporter returns nil, compilation will continue, so that as many syntax
// errors as possible are found.
type ErrorReporter func(err ErrorWithPos) error

// WarningReporter is responsible for reporting the given warning. Though
// they are just warnings, the details are supplied via an error type.
type WarningReporter func(ErrorWithPos)

// Reporter receives errors and warnings.
type Reporter interface {
	Error(ErrorWithPos) error
	Warning(ErrorWithPos)
}

// NewReporter builds a Reporter from functions. A nil errs aborts on the
// first error; a nil warnings discards warnings.
func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return reporterFuncs{errs: errs, warnings: warnings}
}

type reporterFuncs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r reporterFuncs) Error(err ErrorWithPos) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

func (r reporterFuncs) Warning(err ErrorWithPos) {
	if r.warnings != nil {
		r.warnings(err)
	}
}

// Handler funnels diagnostics from concurrent compilations into one
// Reporter, remembering the first error it returned. It is safe for
// concurrent use.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler returns a Handler for rep. A nil rep aborts on the first error.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{reporter: rep}
}

// HandleReport passes every diagnostic in r to the reporter, errors as
// errors and everything else as warnings. It returns the first non-nil
// error the reporter produced, here or in an earlier call.
func (h *Handler) HandleReport(file *source.File, r report.Report) error {
	for i := range r {
		d := &r[i]
		span, _ := d.Primary()
		pos := PositionOf(file, span)
		if d.Level != report.Error {
			h.HandleWarning(pos, d.Err)
			continue
		}
		if err := h.HandleError(Error(pos, d.Err)); err != nil {
			return err
		}
	}
	return h.ReporterError()
}

// HandleErrorf reports a formatted error at pos.
func (h *Handler) HandleErrorf(pos Position, format string, args ...any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	h.errsReported = true
	err := h.reporter.Error(Errorf(pos, format, args...))
	h.err = err
	return err
}

// HandleError reports err. Errors without a position are not passed to the
// reporter and abort immediately.
func (h *Handler) HandleError(err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	if ewp, ok := err.(ErrorWithPos); ok {
		h.errsReported = true
		err = h.reporter.Error(ewp)
	}
	h.err = err
	return err
}

// HandleWarning reports a warning at pos.
func (h *Handler) HandleWarning(pos Position, err error) {
	// no need for lock; warnings don't interact with mutable fields
	h.reporter.Warning(errorWithPos{pos: pos, underlying: err})
}

// Error returns the handler's result: the reporter's error if it returned
// one, [ErrInvalidSource] if errors were reported but swallowed, or nil.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidSource
	}
	return h.err
}

// ReporterError returns the error the reporter returned, if any.
func (h *Handler) ReporterError() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}
