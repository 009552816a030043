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
	"fmt"
	"os"
	"runtime"
	"strings"
)

// debugLevel is how much of the stack is recorded for each diagnostic.
type debugLevel int

const (
	debugOff debugLevel = iota
	debugCaller
	debugStack
)

// debugMode is read from HUFFCOMPILE_DEBUG at startup.
var debugMode = parseDebugLevel(os.Getenv("HUFFCOMPILE_DEBUG"))

// parseDebugLevel maps "stack" (or "full") to the whole stack, any false
// value to nothing, and anything else to the caller alone.
func parseDebugLevel(v string) debugLevel {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "off", "false":
		return debugOff
	case "stack", "full":
		return debugStack
	default:
		return debugCaller
	}
}

// trace is the stack of the code that raised a diagnostic, innermost first.
type trace []runtime.Frame

// captureTrace records the stack starting skip frames above its caller, so
// a skip of 0 starts at the function calling captureTrace.
func captureTrace(skip int, level debugLevel) trace {
	if level == debugOff {
		return nil
	}
	pc := make([]uintptr, 64)
	pc = pc[:runtime.Callers(skip+2, pc)]

	var out trace
	frames := runtime.CallersFrames(pc)
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			out = append(out, frame)
		}
		if !more || level == debugCaller {
			break
		}
	}
	return out
}

// render writes one indented line per frame, as the Renderer shows them
// below a diagnostic when ShowTrace is set.
func (t trace) render(out *strings.Builder) {
	for _, frame := range t {
		fmt.Fprintf(out, "    at %s (%s:%d)\n", frame.Function, frame.File, frame.Line)
	}
}
