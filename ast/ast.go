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

package ast

import (
	"github.com/bufbuild/huffcompile/evm"
	"github.com/bufbuild/huffcompile/source"
	"github.com/bufbuild/huffcompile/token"
)

// Statement is a top-level declaration.
type Statement interface {
	isStatement()
}

// ParsingError stands in for a top-level statement that could not be
// parsed. Token is where parsing gave up.
type ParsingError struct {
	Token   token.Token
	Message string
}

// FileInclude is #include "path". Resolving the path is up to the caller.
type FileInclude struct {
	Path string
}

// ConstantDefinition is #define constant NAME = VALUE.
type ConstantDefinition struct {
	Name  string
	Value ConstantValue
}

// MacroDefinition is a macro or fn definition.
type MacroDefinition struct {
	Name    string
	Type    source.Spanned[MacroType]
	Takes   source.Spanned[int]
	Returns source.Spanned[int]
	Args    []source.Spanned[Arg]
	Body    []source.Spanned[MacroBody]
}

// TableDefinition is a jump table, packed jump table or code table.
type TableDefinition struct {
	Name    string
	Kind    TableKind
	Entries []source.Spanned[TableEntry]
}

func (*ParsingError) isStatement()       {}
func (*FileInclude) isStatement()        {}
func (*ConstantDefinition) isStatement() {}
func (*MacroDefinition) isStatement()    {}
func (*TableDefinition) isStatement()    {}
func (*AbiFunction) isStatement()        {}
func (*AbiEvent) isStatement()           {}
func (*AbiError) isStatement()           {}
func (*AbiConstructor) isStatement()     {}

// ConstantValue is the right-hand side of a constant definition.
type ConstantValue interface {
	isConstantValue()
}

// LiteralValue is a constant bound to a hex literal.
type LiteralValue struct {
	Literal evm.Literal
}

// FreeStoragePointer is a constant bound to FREE_STORAGE_POINTER(), to be
// replaced by an automatically assigned storage slot.
type FreeStoragePointer struct{}

func (*LiteralValue) isConstantValue()       {}
func (*FreeStoragePointer) isConstantValue() {}

// MacroType distinguishes macros, which are inlined, from fns, which are
// called.
type MacroType int8

const (
	Macro MacroType = iota
	Fn
)

// String implements [fmt.Stringer].
func (t MacroType) String() string {
	if t == Fn {
		return "fn"
	}
	return "macro"
}

// TableKind is the kind of a [TableDefinition].
type TableKind int8

const (
	JumpTable TableKind = iota
	JumpTablePacked
	CodeTable
)

// String implements [fmt.Stringer].
func (k TableKind) String() string {
	switch k {
	case JumpTablePacked:
		return "jumptablepacked"
	case CodeTable:
		return "codetable"
	default:
		return "jumptable"
	}
}
