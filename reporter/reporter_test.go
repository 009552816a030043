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

package reporter_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/huffcompile/report"
	"github.com/bufbuild/huffcompile/reporter"
	"github.com/bufbuild/huffcompile/source"
)

var errBoom = errors.New("boom")

func sample() (*source.File, report.Report) {
	file := source.NewFile("a.huff", "#define macro M() = {\n  $\n}\n")
	var r report.Report
	r.Warn(errors.New("odd"), report.SnippetAt(source.NewSpan(8, 13), ""))
	r.Error(errBoom, report.SnippetAt(source.NewSpan(24, 25), "here"))
	r.Error(errBoom, report.SnippetAt(source.NewSpan(0, 7), ""))
	return file, r
}

func TestErrorWithPos(t *testing.T) {
	t.Parallel()

	file := source.NewFile("a.huff", "stop\n  add")
	err := reporter.Error(reporter.PositionOf(file, source.NewSpan(7, 10)), errBoom)
	assert.Equal(t, "a.huff:2:3: boom", err.Error())
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 2, err.GetPosition().Line)

	err = reporter.Errorf(reporter.PositionOf(source.NewFile("", "x"), source.Span{}), "bad %d", 1)
	assert.Equal(t, "1:1: bad 1", err.Error())
}

func TestHandlerAbortsOnFirstError(t *testing.T) {
	t.Parallel()

	file, r := sample()
	var warnings []reporter.ErrorWithPos
	h := reporter.NewHandler(reporter.NewReporter(nil, func(err reporter.ErrorWithPos) {
		warnings = append(warnings, err)
	}))

	err := h.HandleReport(file, r)
	var ewp reporter.ErrorWithPos
	require.ErrorAs(t, err, &ewp)
	assert.Equal(t, "a.huff:2:3: boom", ewp.Error())
	assert.Equal(t, err, h.Error())
	require.Len(t, warnings, 1)
	assert.Equal(t, "a.huff:1:9: odd", warnings[0].Error())
}

func TestHandlerCollects(t *testing.T) {
	t.Parallel()

	file, r := sample()
	var errs []string
	h := reporter.NewHandler(reporter.NewReporter(func(err reporter.ErrorWithPos) error {
		errs = append(errs, err.Error())
		return nil
	}, nil))

	require.NoError(t, h.HandleReport(file, r))
	assert.Equal(t, []string{"a.huff:2:3: boom", "a.huff:1:1: boom"}, errs)
	assert.ErrorIs(t, h.Error(), reporter.ErrInvalidSource)
	assert.NoError(t, h.ReporterError())
}

func TestHandlerConcurrent(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var count int
	h := reporter.NewHandler(reporter.NewReporter(func(reporter.ErrorWithPos) error {
		mu.Lock()
		defer mu.Unlock()
		count++
		return nil
	}, nil))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			file, r := sample()
			assert.NoError(t, h.HandleReport(file, r))
		}()
	}
	wg.Wait()
	assert.Equal(t, 16, count)
	assert.ErrorIs(t, h.Error(), reporter.ErrInvalidSource)
}

func TestHandlerWithoutPosition(t *testing.T) {
	t.Parallel()

	h := reporter.NewHandler(nil)
	assert.ErrorIs(t, h.HandleError(errBoom), errBoom)
	// Later errors return the first one.
	assert.ErrorIs(t, h.HandleErrorf(reporter.Position{}, "other"), errBoom)
	assert.ErrorIs(t, h.Error(), errBoom)
}
