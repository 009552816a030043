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

package token

import "fmt"

// Kind identifies what sort of token a [Token] is.
type Kind int8

const (
	Unknown Kind = iota

	// Punctuation.
	Assign       // =
	OpenParen    // (
	CloseParen   // )
	OpenBracket  // [
	CloseBracket // ]
	OpenBrace    // {
	CloseBrace   // }
	LeftAngle    // <
	RightAngle   // >
	Comma        // ,
	Colon        // :

	// Keywords.
	Define             // #define
	Include            // #include
	Macro              // macro
	Fn                 // fn
	Function           // function
	Event              // event
	Constant           // constant
	Error              // error
	Takes              // takes
	Returns            // returns
	CodeTable          // codetable
	JumpTable          // jumptable
	JumpTablePacked    // jumptablepacked
	View               // view
	Pure               // pure
	Payable            // payable
	NonPayable         // nonpayable
	Indexed            // indexed
	Calldata           // calldata
	Memory             // memory
	Storage            // storage
	FreeStoragePointer // FREE_STORAGE_POINTER

	// Tokens carrying a value.
	Literal       // 0x-prefixed hex that fits in one word
	Code          // 0x-prefixed hex of 64 digits or more
	Number        // decimal digits
	String        // double-quoted string
	Ident         // identifier
	Opcode        // opcode mnemonic
	Builtin       // __-prefixed name
	PrimitiveType // ABI elementary type, optionally an array

	// Newline stands in for any run of newlines and comments.
	Newline
)

var fixedText = [...]string{
	Assign:       "=",
	OpenParen:    "(",
	CloseParen:   ")",
	OpenBracket:  "[",
	CloseBracket: "]",
	OpenBrace:    "{",
	CloseBrace:   "}",
	LeftAngle:    "<",
	RightAngle:   ">",
	Comma:        ",",
	Colon:        ":",

	Define:             "#define",
	Include:            "#include",
	Macro:              "macro",
	Fn:                 "fn",
	Function:           "function",
	Event:              "event",
	Constant:           "constant",
	Error:              "error",
	Takes:              "takes",
	Returns:            "returns",
	CodeTable:          "codetable",
	JumpTable:          "jumptable",
	JumpTablePacked:    "jumptablepacked",
	View:               "view",
	Pure:               "pure",
	Payable:            "payable",
	NonPayable:         "nonpayable",
	Indexed:            "indexed",
	Calldata:           "calldata",
	Memory:             "memory",
	Storage:            "storage",
	FreeStoragePointer: "FREE_STORAGE_POINTER",

	Newline: "\n",
}

var kindNames = [...]string{
	Unknown:       "unknown",
	Literal:       "literal",
	Code:          "code",
	Number:        "number",
	String:        "string",
	Ident:         "identifier",
	Opcode:        "opcode",
	Builtin:       "builtin",
	PrimitiveType: "type",
	Newline:       "newline",
}

// Fixed returns the source spelling of a punctuation or keyword kind, and
// whether the kind has one.
func (k Kind) Fixed() (string, bool) {
	if k <= 0 || int(k) >= len(fixedText) || k == Newline {
		return "", false
	}
	text := fixedText[k]
	return text, text != ""
}

// IsPunct returns whether this kind is a single punctuation character.
func (k Kind) IsPunct() bool {
	return k >= Assign && k <= Colon
}

// IsKeyword returns whether this kind is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= Define && k <= FreeStoragePointer
}

// IsOpen returns whether this kind opens a delimited region.
func (k Kind) IsOpen() bool {
	return k == OpenParen || k == OpenBracket || k == OpenBrace
}

// IsClose returns whether this kind closes a delimited region.
func (k Kind) IsClose() bool {
	return k == CloseParen || k == CloseBracket || k == CloseBrace
}

// Closer returns the kind that closes an opening delimiter, or [Unknown].
func (k Kind) Closer() Kind {
	switch k {
	case OpenParen:
		return CloseParen
	case OpenBracket:
		return CloseBracket
	case OpenBrace:
		return CloseBrace
	default:
		return Unknown
	}
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if text, ok := k.Fixed(); ok {
		return "`" + text + "`"
	}
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int8(k))
}

var keywords = func() map[string]Kind {
	m := make(map[string]Kind)
	for k := Macro; k <= FreeStoragePointer; k++ {
		m[fixedText[k]] = k
	}
	return m
}()

// LookupKeyword resolves a bare word to a keyword kind. #define and #include
// are not bare words and are never returned.
func LookupKeyword(word string) (Kind, bool) {
	k, ok := keywords[word]
	return k, ok
}
