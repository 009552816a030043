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

import "github.com/bufbuild/huffcompile/source"

// Contract groups the statements of one file by kind, in source order.
// Parsing errors are dropped.
type Contract struct {
	Includes     []*FileInclude
	Constants    []*ConstantDefinition
	Macros       []*MacroDefinition
	Tables       []*TableDefinition
	Functions    []*AbiFunction
	Events       []*AbiEvent
	Errors       []*AbiError
	Constructors []*AbiConstructor
}

// NewContract groups statements.
func NewContract(statements []source.Spanned[Statement]) *Contract {
	c := new(Contract)
	for _, stmt := range statements {
		switch s := stmt.Value.(type) {
		case *FileInclude:
			c.Includes = append(c.Includes, s)
		case *ConstantDefinition:
			c.Constants = append(c.Constants, s)
		case *MacroDefinition:
			c.Macros = append(c.Macros, s)
		case *TableDefinition:
			c.Tables = append(c.Tables, s)
		case *AbiFunction:
			c.Functions = append(c.Functions, s)
		case *AbiEvent:
			c.Events = append(c.Events, s)
		case *AbiError:
			c.Errors = append(c.Errors, s)
		case *AbiConstructor:
			c.Constructors = append(c.Constructors, s)
		}
	}
	return c
}

// Macro returns the first macro or fn with the given name.
func (c *Contract) Macro(name string) *MacroDefinition {
	return find(c.Macros, func(m *MacroDefinition) bool { return m.Name == name })
}

// Table returns the first table with the given name.
func (c *Contract) Table(name string) *TableDefinition {
	return find(c.Tables, func(t *TableDefinition) bool { return t.Name == name })
}

// Constant returns the first constant with the given name.
func (c *Contract) Constant(name string) *ConstantDefinition {
	return find(c.Constants, func(d *ConstantDefinition) bool { return d.Name == name })
}

func find[T any](items []*T, match func(*T) bool) *T {
	for _, item := range items {
		if match(item) {
			return item
		}
	}
	return nil
}
