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

package lexer

import "errors"

var (
	// Well-known diagnostics, so that the Err field of a [report.Diagnostic]
	// can be checked with [errors.Is].
	ErrUnrecognized        = errors.New("unrecognized characters")
	ErrInvalidEscape       = errors.New("invalid escape sequence")
	ErrUnterminatedString  = errors.New("unterminated string literal")
	ErrUnterminatedComment = errors.New("unterminated block comment")
	ErrNumberOverflow      = errors.New("decimal literal does not fit in 64 bits")
)
