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

// Package ast defines the tree the parser produces for a Huff source file.
//
// A file is an ordered list of [source.Spanned] statements. Every node is a
// plain value owned by its parent: there are no back-references and no
// sharing between nodes, and text payloads are copies of the source rather
// than views into it.
//
// The sum types in this package ([Statement], [ConstantValue], [MacroBody]
// and [TableEntry]) are closed. Code outside this package cannot add
// variants, and consumers are expected to type-switch over the ones
// defined here.
package ast
