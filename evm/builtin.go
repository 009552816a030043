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

import "fmt"

// BuiltinKind is a compiler-recognized pseudo-function.
type BuiltinKind int8

const (
	BuiltinTablestart BuiltinKind = 1 + iota
	BuiltinTablesize
	BuiltinCodesize
	BuiltinFunctionSignature
	BuiltinEventHash
	BuiltinErrorSelector
	BuiltinRightPad
	BuiltinDynConstructorArg
)

var builtinNames = [...]string{
	BuiltinTablestart:        "__tablestart",
	BuiltinTablesize:         "__tablesize",
	BuiltinCodesize:          "__codesize",
	BuiltinFunctionSignature: "__FUNC_SIG",
	BuiltinEventHash:         "__EVENT_HASH",
	BuiltinErrorSelector:     "__ERROR",
	BuiltinRightPad:          "__RIGHTPAD",
	BuiltinDynConstructorArg: "__DYN_CONSTRUCTOR_ARG",
}

var builtinsByName = func() map[string]BuiltinKind {
	m := make(map[string]BuiltinKind, len(builtinNames)-1)
	for kind, name := range builtinNames {
		if name != "" {
			m[name] = BuiltinKind(kind)
		}
	}
	return m
}()

// LookupBuiltin resolves a builtin name, including its leading "__".
//
// An unknown name is not an error: callers treat it as an ordinary label.
func LookupBuiltin(name string) (BuiltinKind, bool) {
	kind, ok := builtinsByName[name]
	return kind, ok
}

// Builtins returns every builtin kind, in declaration order.
func Builtins() []BuiltinKind {
	kinds := make([]BuiltinKind, 0, len(builtinNames)-1)
	for kind := BuiltinTablestart; kind <= BuiltinDynConstructorArg; kind++ {
		kinds = append(kinds, kind)
	}
	return kinds
}

// String returns the source spelling of this builtin.
func (k BuiltinKind) String() string {
	if k < BuiltinTablestart || k > BuiltinDynConstructorArg {
		return fmt.Sprintf("builtin(%d)", int8(k))
	}
	return builtinNames[k]
}
