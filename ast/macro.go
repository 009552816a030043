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
)

// Arg is a macro argument: a name, or a placeholder for a token that could
// not be one.
type Arg struct {
	Name  string
	Valid bool
}

// ValidArg returns an argument with the given name.
func ValidArg(name string) Arg {
	return Arg{Name: name, Valid: true}
}

// InvalidArg returns the placeholder for an argument that did not parse.
func InvalidArg() Arg {
	return Arg{}
}

// String implements [fmt.Stringer].
func (a Arg) String() string {
	if !a.Valid {
		return "<invalid>"
	}
	return a.Name
}

// MacroBody is one item in a macro's body.
type MacroBody interface {
	isMacroBody()
}

// Opcode is a bare instruction.
type Opcode struct {
	Opcode evm.Opcode
}

// MacroInvocation is NAME(args...), a call of another macro.
type MacroInvocation struct {
	Name string
	Args []source.Spanned[Arg]
}

// ArgsInvocation is <NAME>, a reference to one of the enclosing macro's
// arguments.
type ArgsInvocation struct {
	Name string
}

// BuiltinInvocation is __NAME(args...). Name keeps its leading "__".
type BuiltinInvocation struct {
	Name string
	Args []source.Spanned[Arg]
}

// JumpLabel is a reference to a label.
type JumpLabel struct {
	Name string
}

// JumpLabelDest is NAME:, the definition of a label.
type JumpLabelDest struct {
	Name string
}

// HexLiteral is a 0x-prefixed word, pushed onto the stack.
type HexLiteral struct {
	Literal evm.Literal
}

// UnexpectedToken records a token that cannot appear in a macro body, such
// as a bare number or a keyword.
type UnexpectedToken struct {
	Text string
}

func (*Opcode) isMacroBody()            {}
func (*MacroInvocation) isMacroBody()   {}
func (*ArgsInvocation) isMacroBody()    {}
func (*BuiltinInvocation) isMacroBody() {}
func (*JumpLabel) isMacroBody()         {}
func (*JumpLabelDest) isMacroBody()     {}
func (*HexLiteral) isMacroBody()        {}
func (*UnexpectedToken) isMacroBody()   {}

// Kind resolves the builtin this invocation names. Unknown names are not an
// error here; callers fall back to treating them as labels.
func (b *BuiltinInvocation) Kind() (evm.BuiltinKind, bool) {
	return evm.LookupBuiltin(b.Name)
}

// TableEntry is one entry of a [TableDefinition].
type TableEntry interface {
	isTableEntry()
}

// TableJumpLabel is a label in a jump table.
type TableJumpLabel struct {
	Name string
}

// TableCode is the body of a code table, as hex digits without a 0x prefix.
type TableCode struct {
	Code string
}

// TableError stands in for a jump table entry that is not a label.
type TableError struct {
	Message string
}

func (*TableJumpLabel) isTableEntry() {}
func (*TableCode) isTableEntry()      {}
func (*TableError) isTableEntry()     {}
