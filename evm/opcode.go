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
	"iter"
)

// Opcode is one mnemonic of the EVM instruction set.
//
// Opcode values are dense ordinals, not instruction bytes; use [Opcode.Byte]
// for the encoding. Two mnemonics may share a byte, as difficulty and
// prevrandao do.
type Opcode uint8

const (
	Stop Opcode = iota // stop
	Add
	Mul
	Sub
	Div
	Sdiv
	Mod
	Smod
	Addmod
	Mulmod
	Exp
	Signextend
	Lt
	Gt
	Slt
	Sgt
	Eq
	Iszero
	And
	Or
	Xor
	Not
	Byte
	Shl
	Shr
	Sar
	Sha3
	Address
	Balance
	Origin
	Caller
	Callvalue
	Calldataload
	Calldatasize
	Calldatacopy
	Codesize
	Codecopy
	Gasprice
	Extcodesize
	Extcodecopy
	Returndatasize
	Returndatacopy
	Extcodehash
	Blockhash
	Coinbase
	Timestamp
	Number
	Difficulty
	Prevrandao
	Gaslimit
	Chainid
	Selfbalance
	Basefee
	Blobhash
	Blobbasefee
	Pop
	Mload
	Mstore
	Mstore8
	Sload
	Sstore
	Jump
	Jumpi
	Pc
	Msize
	Gas
	Jumpdest
	Tload
	Tstore
	Mcopy
	Push0
	Push1
	Push2
	Push3
	Push4
	Push5
	Push6
	Push7
	Push8
	Push9
	Push10
	Push11
	Push12
	Push13
	Push14
	Push15
	Push16
	Push17
	Push18
	Push19
	Push20
	Push21
	Push22
	Push23
	Push24
	Push25
	Push26
	Push27
	Push28
	Push29
	Push30
	Push31
	Push32
	Dup1
	Dup2
	Dup3
	Dup4
	Dup5
	Dup6
	Dup7
	Dup8
	Dup9
	Dup10
	Dup11
	Dup12
	Dup13
	Dup14
	Dup15
	Dup16
	Swap1
	Swap2
	Swap3
	Swap4
	Swap5
	Swap6
	Swap7
	Swap8
	Swap9
	Swap10
	Swap11
	Swap12
	Swap13
	Swap14
	Swap15
	Swap16
	Log0
	Log1
	Log2
	Log3
	Log4
	Create
	Call
	Callcode
	Return
	Delegatecall
	Create2
	Staticcall
	Revert
	Invalid
	Selfdestruct

	opcodeCount int = iota
)

var opcodeTable = [...]struct {
	name string
	code byte
}{
	Stop: {"stop", 0x00},
	Add: {"add", 0x01},
	Mul: {"mul", 0x02},
	Sub: {"sub", 0x03},
	Div: {"div", 0x04},
	Sdiv: {"sdiv", 0x05},
	Mod: {"mod", 0x06},
	Smod: {"smod", 0x07},
	Addmod: {"addmod", 0x08},
	Mulmod: {"mulmod", 0x09},
	Exp: {"exp", 0x0a},
	Signextend: {"signextend", 0x0b},
	Lt: {"lt", 0x10},
	Gt: {"gt", 0x11},
	Slt: {"slt", 0x12},
	Sgt: {"sgt", 0x13},
	Eq: {"eq", 0x14},
	Iszero: {"iszero", 0x15},
	And: {"and", 0x16},
	Or: {"or", 0x17},
	Xor: {"xor", 0x18},
	Not: {"not", 0x19},
	Byte: {"byte", 0x1a},
	Shl: {"shl", 0x1b},
	Shr: {"shr", 0x1c},
	Sar: {"sar", 0x1d},
	Sha3: {"sha3", 0x20},
	Address: {"address", 0x30},
	Balance: {"balance", 0x31},
	Origin: {"origin", 0x32},
	Caller: {"caller", 0x33},
	Callvalue: {"callvalue", 0x34},
	Calldataload: {"calldataload", 0x35},
	Calldatasize: {"calldatasize", 0x36},
	Calldatacopy: {"calldatacopy", 0x37},
	Codesize: {"codesize", 0x38},
	Codecopy: {"codecopy", 0x39},
	Gasprice: {"gasprice", 0x3a},
	Extcodesize: {"extcodesize", 0x3b},
	Extcodecopy: {"extcodecopy", 0x3c},
	Returndatasize: {"returndatasize", 0x3d},
	Returndatacopy: {"returndatacopy", 0x3e},
	Extcodehash: {"extcodehash", 0x3f},
	Blockhash: {"blockhash", 0x40},
	Coinbase: {"coinbase", 0x41},
	Timestamp: {"timestamp", 0x42},
	Number: {"number", 0x43},
	Difficulty: {"difficulty", 0x44},
	Prevrandao: {"prevrandao", 0x44},
	Gaslimit: {"gaslimit", 0x45},
	Chainid: {"chainid", 0x46},
	Selfbalance: {"selfbalance", 0x47},
	Basefee: {"basefee", 0x48},
	Blobhash: {"blobhash", 0x49},
	Blobbasefee: {"blobbasefee", 0x4a},
	Pop: {"pop", 0x50},
	Mload: {"mload", 0x51},
	Mstore: {"mstore", 0x52},
	Mstore8: {"mstore8", 0x53},
	Sload: {"sload", 0x54},
	Sstore: {"sstore", 0x55},
	Jump: {"jump", 0x56},
	Jumpi: {"jumpi", 0x57},
	Pc: {"pc", 0x58},
	Msize: {"msize", 0x59},
	Gas: {"gas", 0x5a},
	Jumpdest: {"jumpdest", 0x5b},
	Tload: {"tload", 0x5c},
	Tstore: {"tstore", 0x5d},
	Mcopy: {"mcopy", 0x5e},
	Push0: {"push0", 0x5f},
	Push1: {"push1", 0x60},
	Push2: {"push2", 0x61},
	Push3: {"push3", 0x62},
	Push4: {"push4", 0x63},
	Push5: {"push5", 0x64},
	Push6: {"push6", 0x65},
	Push7: {"push7", 0x66},
	Push8: {"push8", 0x67},
	Push9: {"push9", 0x68},
	Push10: {"push10", 0x69},
	Push11: {"push11", 0x6a},
	Push12: {"push12", 0x6b},
	Push13: {"push13", 0x6c},
	Push14: {"push14", 0x6d},
	Push15: {"push15", 0x6e},
	Push16: {"push16", 0x6f},
	Push17: {"push17", 0x70},
	Push18: {"push18", 0x71},
	Push19: {"push19", 0x72},
	Push20: {"push20", 0x73},
	Push21: {"push21", 0x74},
	Push22: {"push22", 0x75},
	Push23: {"push23", 0x76},
	Push24: {"push24", 0x77},
	Push25: {"push25", 0x78},
	Push26: {"push26", 0x79},
	Push27: {"push27", 0x7a},
	Push28: {"push28", 0x7b},
	Push29: {"push29", 0x7c},
	Push30: {"push30", 0x7d},
	Push31: {"push31", 0x7e},
	Push32: {"push32", 0x7f},
	Dup1: {"dup1", 0x80},
	Dup2: {"dup2", 0x81},
	Dup3: {"dup3", 0x82},
	Dup4: {"dup4", 0x83},
	Dup5: {"dup5", 0x84},
	Dup6: {"dup6", 0x85},
	Dup7: {"dup7", 0x86},
	Dup8: {"dup8", 0x87},
	Dup9: {"dup9", 0x88},
	Dup10: {"dup10", 0x89},
	Dup11: {"dup11", 0x8a},
	Dup12: {"dup12", 0x8b},
	Dup13: {"dup13", 0x8c},
	Dup14: {"dup14", 0x8d},
	Dup15: {"dup15", 0x8e},
	Dup16: {"dup16", 0x8f},
	Swap1: {"swap1", 0x90},
	Swap2: {"swap2", 0x91},
	Swap3: {"swap3", 0x92},
	Swap4: {"swap4", 0x93},
	Swap5: {"swap5", 0x94},
	Swap6: {"swap6", 0x95},
	Swap7: {"swap7", 0x96},
	Swap8: {"swap8", 0x97},
	Swap9: {"swap9", 0x98},
	Swap10: {"swap10", 0x99},
	Swap11: {"swap11", 0x9a},
	Swap12: {"swap12", 0x9b},
	Swap13: {"swap13", 0x9c},
	Swap14: {"swap14", 0x9d},
	Swap15: {"swap15", 0x9e},
	Swap16: {"swap16", 0x9f},
	Log0: {"log0", 0xa0},
	Log1: {"log1", 0xa1},
	Log2: {"log2", 0xa2},
	Log3: {"log3", 0xa3},
	Log4: {"log4", 0xa4},
	Create: {"create", 0xf0},
	Call: {"call", 0xf1},
	Callcode: {"callcode", 0xf2},
	Return: {"return", 0xf3},
	Delegatecall: {"delegatecall", 0xf4},
	Create2: {"create2", 0xf5},
	Staticcall: {"staticcall", 0xfa},
	Revert: {"revert", 0xfd},
	Invalid: {"invalid", 0xfe},
	Selfdestruct: {"selfdestruct", 0xff},
}

// Aliases accepted in source in addition to each opcode's canonical name.
var opcodeAliases = map[string]Opcode{
	"keccak256": Sha3,
}

var opcodesByName = func() map[string]Opcode {
	m := make(map[string]Opcode, opcodeCount+len(opcodeAliases))
	for op := range Opcodes() {
		m[op.String()] = op
	}
	for name, op := range opcodeAliases {
		m[name] = op
	}
	return m
}()

// LookupOpcode resolves a lowercase mnemonic.
func LookupOpcode(name string) (Opcode, bool) {
	op, ok := opcodesByName[name]
	return op, ok
}

// OpcodeNames returns every name [LookupOpcode] accepts, aliases included,
// in no particular order.
func OpcodeNames() iter.Seq[string] {
	return func(yield func(string) bool) {
		for name := range opcodesByName {
			if !yield(name) {
				return
			}
		}
	}
}

// Opcodes yields every opcode in ordinal order.
func Opcodes() iter.Seq[Opcode] {
	return func(yield func(Opcode) bool) {
		for i := range opcodeCount {
			if !yield(Opcode(i)) {
				return
			}
		}
	}
}

// Byte returns the instruction byte this opcode assembles to.
func (o Opcode) Byte() byte {
	if int(o) >= opcodeCount {
		return 0xfe
	}
	return opcodeTable[o].code
}

// String returns this opcode's canonical mnemonic.
func (o Opcode) String() string {
	if int(o) >= opcodeCount {
		return fmt.Sprintf("opcode(%d)", uint8(o))
	}
	return opcodeTable[o].name
}

// PushSize returns the number of immediate bytes a PUSHn takes, or zero
// for every other opcode, PUSH0 included.
func (o Opcode) PushSize() int {
	if o >= Push1 && o <= Push32 {
		return int(o-Push1) + 1
	}
	return 0
}

// IsPush returns whether this is one of PUSH0 through PUSH32.
func (o Opcode) IsPush() bool {
	return o >= Push0 && o <= Push32
}
