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

// Package parser turns the lexer's tokens into an AST.
//
// The parser is a recursive-descent parser over a token cursor. It never
// gives up on a file: a top-level statement that does not parse becomes an
// [ast.ParsingError] and parsing resumes at the next #define or #include,
// and a bracketed region whose contents do not parse is skipped up to its
// matching close delimiter and replaced with a placeholder, so that the
// rest of the enclosing statement is still filled in.
package parser
