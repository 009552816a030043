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

package evm

import (
	"fmt"
	"strconv"
	"strings"
)

// TypeKind is the base category of a [PrimitiveType].
type TypeKind int8

const (
	TypeAddress TypeKind = 1 + iota
	TypeDynBytes
	TypeBool
	TypeString
	TypeInt
	TypeFixedBytes
	TypeUint
)

// PrimitiveType is one of the elementary ABI types.
//
// Size is the bit width for Int and Uint, the byte count for FixedBytes, and
// zero otherwise.
type PrimitiveType struct {
	Kind TypeKind
	Size int
}

// ParsePrimitiveType recognizes a whole primitive-type keyword:
// bool, string, address, bytes, bytes<N>, int<N> or uint<N>.
//
// Sizes are not range-checked; see [PrimitiveType.Valid].
func ParsePrimitiveType(word string) (PrimitiveType, bool) {
	switch word {
	case "bool":
		return PrimitiveType{Kind: TypeBool}, true
	case "string":
		return PrimitiveType{Kind: TypeString}, true
	case "address":
		return PrimitiveType{Kind: TypeAddress}, true
	case "bytes":
		return PrimitiveType{Kind: TypeDynBytes}, true
	}

	for _, sized := range [...]struct {
		prefix string
		kind   TypeKind
	}{
		{"uint", TypeUint},
		{"int", TypeInt},
		{"bytes", TypeFixedBytes},
	} {
		digits, ok := strings.CutPrefix(word, sized.prefix)
		if !ok || !isDigits(digits) {
			continue
		}
		size, err := strconv.Atoi(digits)
		if err != nil {
			return PrimitiveType{}, false
		}
		return PrimitiveType{Kind: sized.kind, Size: size}, true
	}
	return PrimitiveType{}, false
}

// Valid returns whether this type's size is one the ABI permits.
func (t PrimitiveType) Valid() bool {
	switch t.Kind {
	case TypeInt, TypeUint:
		return t.Size >= 8 && t.Size <= 256 && t.Size%8 == 0
	case TypeFixedBytes:
		return t.Size >= 1 && t.Size <= 32
	case TypeAddress, TypeDynBytes, TypeBool, TypeString:
		return true
	default:
		return false
	}
}

// String implements [fmt.Stringer].
func (t PrimitiveType) String() string {
	switch t.Kind {
	case TypeAddress:
		return "address"
	case TypeDynBytes:
		return "bytes"
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	case TypeInt:
		return "int" + strconv.Itoa(t.Size)
	case TypeUint:
		return "uint" + strconv.Itoa(t.Size)
	case TypeFixedBytes:
		return "bytes" + strconv.Itoa(t.Size)
	default:
		return fmt.Sprintf("type(%d)", int8(t.Kind))
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
