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

// Package huffcompile provides the entry point for a front end for the Huff
// EVM assembly language. "Compile" in this case means lexing and parsing
// source into an AST, recovering from errors so that a single run reports
// as many problems as possible. Code generation is not done here.
//
// The various sub-packages represent the compile phases and the models for
// their results:
//  1. Lex source into tokens.
//     Also see: lexer.Lex
//  2. Parse tokens into statements.
//     Also see: parser.Parse
//
// Problems are recorded as diagnostics in a report.Report rather than
// returned as errors; see package report.
//
// # Compiler
//
// A Compiler parses many files in parallel. Files can be supplied already
// loaded, via Parse, or by path, via Compile and a Resolver:
//
//	compiler := huffcompile.Compiler{
//	    Resolver: &huffcompile.SourceResolver{},
//	}
//	results, err := compiler.Compile(ctx, "src/ERC20.huff")
//
// This minimal Compiler will use default parallelism, equal to the number of
// CPU cores detected, and will fail fast at the first error. Supply a
// Reporter to collect every error instead.
//
// #include statements are recorded but not followed; Result.Includes lists
// them for the caller to resolve.
package huffcompile
