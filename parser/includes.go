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

package parser

import (
	"io"

	"github.com/bufbuild/huffcompile/lexer"
	"github.com/bufbuild/huffcompile/report"
	"github.com/bufbuild/huffcompile/token"
)

// ScanForIncludes reads Huff source from r and returns the paths named by
// its #include statements, in order, without parsing anything else. It
// returns an error only if reading from r fails.
//
// Problems in the source are ignored. An #include that is not followed by a
// string is skipped.
func ScanForIncludes(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var discard report.Report
	tokens := token.Filter(lexer.LexString(string(data), &discard))
	var includes []string
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].Kind == token.Include && tokens[i+1].Kind == token.String {
			includes = append(includes, tokens[i+1].Value)
			i++
		}
	}
	return includes, nil
}
