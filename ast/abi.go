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
	"fmt"
	"strconv"
	"strings"

	"github.com/bufbuild/huffcompile/evm"
	"github.com/bufbuild/huffcompile/source"
	"github.com/bufbuild/huffcompile/token"
)

// ParamKind is the category of a [ParamType].
type ParamKind int8

const (
	Address ParamKind = iota
	Bytes
	Int
	Uint
	Bool
	String
	Array
	FixedBytes
	Tuple
)

// ParamType is the type of an ABI parameter.
//
// Size is set for Int, Uint (bits) and FixedBytes (bytes). Elem and Dims are
// set for Array; each dimension is a size, zero meaning unsized. Components
// is set for Tuple.
type ParamType struct {
	Kind       ParamKind
	Size       int
	Elem       *ParamType
	Dims       []int
	Components []ParamType
}

// ScalarType returns the parameter type for a primitive type.
func ScalarType(prim evm.PrimitiveType) ParamType {
	switch prim.Kind {
	case evm.TypeAddress:
		return ParamType{Kind: Address}
	case evm.TypeDynBytes:
		return ParamType{Kind: Bytes}
	case evm.TypeBool:
		return ParamType{Kind: Bool}
	case evm.TypeString:
		return ParamType{Kind: String}
	case evm.TypeInt:
		return ParamType{Kind: Int, Size: prim.Size}
	case evm.TypeFixedBytes:
		return ParamType{Kind: FixedBytes, Size: prim.Size}
	case evm.TypeUint:
		return ParamType{Kind: Uint, Size: prim.Size}
	default:
		panic(fmt.Sprintf("ast: unknown primitive type kind %d", prim.Kind))
	}
}

// ArrayType returns an array of elem with the given dimensions. With no
// dimensions, it returns elem.
func ArrayType(elem ParamType, dims []int) ParamType {
	if len(dims) == 0 {
		return elem
	}
	return ParamType{Kind: Array, Elem: &elem, Dims: dims}
}

// TupleType returns a tuple of the given components.
func TupleType(components ...ParamType) ParamType {
	return ParamType{Kind: Tuple, Components: components}
}

// IsMemoryType returns whether values of this type live in memory when
// passed to a function, as opposed to on the stack.
func (t ParamType) IsMemoryType() bool {
	switch t.Kind {
	case Bytes, String, Tuple, Array:
		return true
	default:
		return false
	}
}

// String renders this type as it is written in a signature, for example
// uint256[2][] or (address, bool).
func (t ParamType) String() string {
	switch t.Kind {
	case Address:
		return "address"
	case Bytes:
		return "bytes"
	case Int:
		return "int" + strconv.Itoa(t.Size)
	case Uint:
		return "uint" + strconv.Itoa(t.Size)
	case Bool:
		return "bool"
	case String:
		return "string"
	case FixedBytes:
		return "bytes" + strconv.Itoa(t.Size)
	case Array:
		elem := "?"
		if t.Elem != nil {
			elem = t.Elem.String()
		}
		return elem + token.FormatDims(t.Dims)
	case Tuple:
		parts := make([]string, len(t.Components))
		for i, c := range t.Components {
			parts[i] = c.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return fmt.Sprintf("param(%d)", int8(t.Kind))
	}
}

// StateMutability is an ABI function's mutability.
type StateMutability int8

const (
	View StateMutability = iota
	Payable
	NonPayable
	Pure
)

// String implements [fmt.Stringer].
func (m StateMutability) String() string {
	switch m {
	case Payable:
		return "payable"
	case NonPayable:
		return "nonpayable"
	case Pure:
		return "pure"
	default:
		return "view"
	}
}

// FunctionParam is a function, error or constructor parameter.
//
// InternalType holds the data location written after the type (memory,
// storage or calldata), or is empty if there was none. Name is empty for an
// anonymous parameter.
type FunctionParam struct {
	Name         string
	Kind         ParamType
	InternalType string
}

// EventParam is an event parameter.
type EventParam struct {
	Name    string
	Kind    ParamType
	Indexed bool
}

// AbiFunction is #define function.
type AbiFunction struct {
	Name            string
	Inputs          []source.Spanned[FunctionParam]
	Outputs         []source.Spanned[FunctionParam]
	StateMutability source.Spanned[StateMutability]
}

// AbiEvent is #define event.
type AbiEvent struct {
	Name      string
	Inputs    []source.Spanned[EventParam]
	Anonymous bool
}

// AbiError is #define error.
type AbiError struct {
	Name   string
	Inputs []source.Spanned[FunctionParam]
}

// AbiConstructor is #define constructor.
type AbiConstructor struct {
	Inputs []source.Spanned[FunctionParam]
}

// Signature renders a function's canonical signature, name(type,type).
func (f *AbiFunction) Signature() string {
	return signature(f.Name, f.Inputs)
}

// Signature renders an error's canonical signature.
func (e *AbiError) Signature() string {
	return signature(e.Name, e.Inputs)
}

// Signature renders an event's canonical signature.
func (e *AbiEvent) Signature() string {
	types := make([]string, len(e.Inputs))
	for i, in := range e.Inputs {
		types[i] = canonical(in.Value.Kind)
	}
	return e.Name + "(" + strings.Join(types, ",") + ")"
}

func signature(name string, params []source.Spanned[FunctionParam]) string {
	types := make([]string, len(params))
	for i, p := range params {
		types[i] = canonical(p.Value.Kind)
	}
	return name + "(" + strings.Join(types, ",") + ")"
}

// canonical renders a type with no spaces, as selectors are computed over.
func canonical(t ParamType) string {
	switch t.Kind {
	case Tuple:
		parts := make([]string, len(t.Components))
		for i, c := range t.Components {
			parts[i] = canonical(c)
		}
		return "(" + strings.Join(parts, ",") + ")"
	case Array:
		if t.Elem == nil {
			return t.String()
		}
		return canonical(*t.Elem) + token.FormatDims(t.Dims)
	default:
		return t.String()
	}
}
