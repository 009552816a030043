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

package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDebugLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]debugLevel{
		"":      debugOff,
		"0":     debugOff,
		"False": debugOff,
		"1":     debugCaller,
		"yes":   debugCaller,
		"full":  debugStack,
		"STACK": debugStack,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseDebugLevel(in), "%q", in)
	}
}

func raiseTrace(level debugLevel) trace {
	return captureTrace(0, level)
}

func TestCaptureTrace(t *testing.T) {
	t.Parallel()

	assert.Nil(t, raiseTrace(debugOff))

	caller := raiseTrace(debugCaller)
	require.Len(t, caller, 1)
	assert.True(t, strings.HasSuffix(caller[0].Function, ".raiseTrace"), caller[0].Function)

	stack := raiseTrace(debugStack)
	require.Greater(t, len(stack), 1)
	assert.Equal(t, caller[0].Function, stack[0].Function)
	assert.True(t, strings.HasSuffix(stack[1].Function, ".TestCaptureTrace"), stack[1].Function)
}

func TestRenderTrace(t *testing.T) {
	t.Parallel()

	d := Diagnostic{Err: assert.AnError, Level: Error, trace: raiseTrace(debugCaller)}
	line := firstFrame(t, d.trace)

	withTrace := Renderer{ShowTrace: true}.Diagnostic(nil, &d)
	assert.Contains(t, withTrace, "\n    at "+line)
	assert.NotContains(t, Renderer{}.Diagnostic(nil, &d), "    at ")
}

func firstFrame(t *testing.T, tr trace) string {
	t.Helper()
	require.NotEmpty(t, tr)
	var out strings.Builder
	tr[:1].render(&out)
	return strings.TrimPrefix(out.String(), "    at ")
}
