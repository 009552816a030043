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

package evm_test

import (
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/huffcompile/evm"
)

func TestOpcodeTable(t *testing.T) {
	t.Parallel()

	var count int
	for op := range evm.Opcodes() {
		count++
		got, ok := evm.LookupOpcode(op.String())
		require.True(t, ok, "%s", op)
		assert.Equal(t, op, got)
		assert.Equal(t, strings.ToLower(op.String()), op.String())
	}
	assert.Equal(t, 150, count)

	tests := []struct {
		name string
		op   evm.Opcode
		code byte
	}{
		{"stop", evm.Stop, 0x00},
		{"sha3", evm.Sha3, 0x20},
		{"keccak256", evm.Sha3, 0x20},
		{"address", evm.Address, 0x30},
		{"difficulty", evm.Difficulty, 0x44},
		{"prevrandao", evm.Prevrandao, 0x44},
		{"tload", evm.Tload, 0x5c},
		{"tstore", evm.Tstore, 0x5d},
		{"push0", evm.Push0, 0x5f},
		{"push1", evm.Push1, 0x60},
		{"push32", evm.Push32, 0x7f},
		{"dup16", evm.Dup16, 0x8f},
		{"swap1", evm.Swap1, 0x90},
		{"log4", evm.Log4, 0xa4},
		{"selfdestruct", evm.Selfdestruct, 0xff},
	}
	for _, tt := range tests {
		op, ok := evm.LookupOpcode(tt.name)
		require.True(t, ok, tt.name)
		assert.Equal(t, tt.op, op, tt.name)
		assert.Equal(t, tt.code, op.Byte(), tt.name)
	}

	assert.NotEqual(t, evm.Difficulty, evm.Prevrandao)

	for _, name := range []string{"STOP", "push33", "dup0", "", "keccak"} {
		_, ok := evm.LookupOpcode(name)
		assert.False(t, ok, name)
	}
}

func TestOpcodeNames(t *testing.T) {
	t.Parallel()

	var names []string
	for name := range evm.OpcodeNames() {
		names = append(names, name)
	}
	assert.Len(t, names, 151)
	assert.Contains(t, names, "keccak256")
	assert.Contains(t, names, "jumpdest")
}

func TestPushSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, evm.Push0.PushSize())
	assert.Equal(t, 1, evm.Push1.PushSize())
	assert.Equal(t, 32, evm.Push32.PushSize())
	assert.Equal(t, 0, evm.Add.PushSize())
	assert.True(t, evm.Push0.IsPush())
	assert.False(t, evm.Dup1.IsPush())
}

func TestBuiltins(t *testing.T) {
	t.Parallel()

	kinds := evm.Builtins()
	require.Len(t, kinds, 8)
	for _, kind := range kinds {
		got, ok := evm.LookupBuiltin(kind.String())
		assert.True(t, ok)
		assert.Equal(t, kind, got)
	}

	kind, ok := evm.LookupBuiltin("__FUNC_SIG")
	assert.True(t, ok)
	assert.Equal(t, evm.BuiltinFunctionSignature, kind)

	_, ok = evm.LookupBuiltin("__CODECOPY_DYN_ARG")
	assert.False(t, ok)
	_, ok = evm.LookupBuiltin("FUNC_SIG")
	assert.False(t, ok)
}

func TestParsePrimitiveType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word  string
		want  evm.PrimitiveType
		ok    bool
		valid bool
	}{
		{"bool", evm.PrimitiveType{Kind: evm.TypeBool}, true, true},
		{"string", evm.PrimitiveType{Kind: evm.TypeString}, true, true},
		{"address", evm.PrimitiveType{Kind: evm.TypeAddress}, true, true},
		{"bytes", evm.PrimitiveType{Kind: evm.TypeDynBytes}, true, true},
		{"bytes32", evm.PrimitiveType{Kind: evm.TypeFixedBytes, Size: 32}, true, true},
		{"bytes33", evm.PrimitiveType{Kind: evm.TypeFixedBytes, Size: 33}, true, false},
		{"uint256", evm.PrimitiveType{Kind: evm.TypeUint, Size: 256}, true, true},
		{"uint7", evm.PrimitiveType{Kind: evm.TypeUint, Size: 7}, true, false},
		{"int8", evm.PrimitiveType{Kind: evm.TypeInt, Size: 8}, true, true},
		{"uint", evm.PrimitiveType{}, false, false},
		{"int", evm.PrimitiveType{}, false, false},
		{"uint256x", evm.PrimitiveType{}, false, false},
		{"Bool", evm.PrimitiveType{}, false, false},
		{"balance", evm.PrimitiveType{}, false, false},
	}
	for _, tt := range tests {
		got, ok := evm.ParsePrimitiveType(tt.word)
		assert.Equal(t, tt.ok, ok, tt.word)
		assert.Equal(t, tt.want, got, tt.word)
		assert.Equal(t, tt.valid, got.Valid(), tt.word)
		if ok {
			assert.Equal(t, tt.word, got.String())
		}
	}
}

func TestParseLiteral(t *testing.T) {
	t.Parallel()

	lit, err := evm.ParseLiteral("1234")
	require.NoError(t, err)
	var want evm.Literal
	want[30], want[31] = 0x12, 0x34
	assert.Equal(t, want, lit)
	assert.Equal(t, "0x1234", lit.String())
	assert.Equal(t, "1234", lit.Hex(false))
	assert.Equal(t, uint64(0x1234), lit.Int().Uint64())

	lit, err = evm.ParseLiteral("abc")
	require.NoError(t, err)
	assert.Equal(t, "0x0abc", lit.String())

	lit, err = evm.ParseLiteral("0000")
	require.NoError(t, err)
	assert.True(t, lit.IsZero())
	assert.Equal(t, "00", lit.Hex(false))

	// 63 digits is the longest literal.
	digits := strings.Repeat("f", 63)
	lit, err = evm.ParseLiteral(digits)
	require.NoError(t, err)
	assert.Equal(t, byte(0x0f), lit[0])
	assert.Equal(t, byte(0xff), lit[31])

	_, err = evm.ParseLiteral(strings.Repeat("f", 64))
	assert.ErrorIs(t, err, evm.ErrLiteralTooLong)

	_, err = evm.ParseLiteral("zz")
	assert.Error(t, err)

	assert.Equal(t, "0x2a", evm.LiteralFromInt(uint256.NewInt(42)).String())
}
