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
	"errors"
	"fmt"

	"github.com/bufbuild/huffcompile/token"
)

var (
	// Well-known diagnostics, so that the Err field of a [report.Diagnostic]
	// can be checked with [errors.Is].
	ErrUnexpectedToken   = errors.New("unexpected token")
	ErrUnexpectedEOF     = errors.New("unexpected end of input")
	ErrUnclosedDelimiter = errors.New("unclosed delimiter")
	ErrMalformedBody     = errors.New("malformed delimited body")
	ErrNoStatements      = errors.New("file contains no statements")
	ErrInvalidTypeSize   = errors.New("invalid type size")
	ErrNumberTooLarge    = errors.New("number too large")
)

// errUnexpected is a diagnostic for a token that the grammar does not
// permit where it appears.
type errUnexpected struct {
	// The token found. Unknown means the input ended.
	got token.Token
	// Where the token appeared, such as "in macro body".
	where string
	// A description of what would have been accepted.
	want string
}

func (e *errUnexpected) Error() string {
	msg := "unexpected " + describe(e.got)
	if e.where != "" {
		msg += " " + e.where
	}
	if e.want != "" {
		msg += "; expected " + e.want
	}
	return msg
}

func (e *errUnexpected) Unwrap() error {
	if e.got.Kind == token.Unknown {
		return ErrUnexpectedEOF
	}
	return ErrUnexpectedToken
}

// errUnclosed is a diagnostic for an open delimiter with no matching close
// before the next top-level keyword or the end of input.
type errUnclosed struct {
	open token.Token
}

func (e *errUnclosed) Error() string {
	return fmt.Sprintf("unclosed `%s`", e.open.Text)
}

func (e *errUnclosed) Unwrap() error {
	return ErrUnclosedDelimiter
}

// errTooLarge is a diagnostic for a number that does not fit in an int.
type errTooLarge struct {
	got token.Token
	// What the number counts, such as "stack item count".
	what string
}

func (e *errTooLarge) Error() string {
	return fmt.Sprintf("%s `%s` is too large", e.what, e.got.Text)
}

func (e *errTooLarge) Unwrap() error {
	return ErrNumberTooLarge
}

// errMalformed wraps the error that caused a delimited region to be
// discarded.
type errMalformed struct {
	what  string
	cause error
}

func (e *errMalformed) Error() string {
	return fmt.Sprintf("malformed %s: %v", e.what, e.cause)
}

func (e *errMalformed) Unwrap() []error {
	return []error{ErrMalformedBody, e.cause}
}

// describe renders a token for use in a diagnostic.
func describe(tok token.Token) string {
	switch tok.Kind {
	case token.Unknown:
		return "end of input"
	}
	if _, ok := tok.Kind.Fixed(); ok {
		return tok.Kind.String()
	}
	return fmt.Sprintf("%v `%s`", tok.Kind, tok.Text)
}
