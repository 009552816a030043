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
	"io"
	"strings"

	"github.com/bufbuild/huffcompile/source"
)

// Renderer formats diagnostics as single lines, in the style of the Go
// compiler:
//
//	error: main.huff:3:5: unexpected token `macro`
//
// Notes, help and snippet messages follow on indented lines.
type Renderer struct {
	// Called to decorate the level name, for example with terminal colours.
	// If nil, the level is printed as-is.
	Level func(Level) string

	// If set, stack traces captured in debug mode are printed too.
	ShowTrace bool
}

// Render writes every diagnostic in r to w, resolving spans against file.
func (c Renderer) Render(w io.Writer, file *source.File, r Report) error {
	for i := range r {
		if _, err := io.WriteString(w, c.Diagnostic(file, &r[i])); err != nil {
			return err
		}
	}
	return nil
}

// Diagnostic formats a single diagnostic.
func (c Renderer) Diagnostic(file *source.File, d *Diagnostic) string {
	var out strings.Builder

	level := d.Level.String()
	if c.Level != nil {
		level = c.Level(d.Level)
	}

	fmt.Fprintf(&out, "%s: ", level)
	if span, ok := d.Primary(); ok {
		fmt.Fprintf(&out, "%s: ", file.Position(span))
	} else if file.Path() != "" {
		fmt.Fprintf(&out, "%s: ", file.Path())
	}
	out.WriteString(d.Message())
	out.WriteByte('\n')

	for _, s := range d.snippets {
		if s.Message == "" {
			continue
		}
		fmt.Fprintf(&out, "  %s: %s\n", file.Position(s.Span), s.Message)
	}
	for _, note := range d.notes {
		fmt.Fprintf(&out, "  note: %s\n", note)
	}
	for _, help := range d.help {
		fmt.Fprintf(&out, "  help: %s\n", help)
	}
	if c.ShowTrace {
		d.trace.render(&out)
	}
	return out.String()
}
