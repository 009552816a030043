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
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/holiman/uint256"
)

// LiteralDigits is the number of hex digits in one EVM word. Hex runs at
// least this long are inline code rather than literals.
const LiteralDigits = 64

// ErrLiteralTooLong is returned by [ParseLiteral] for runs that do not fit
// in one word.
var ErrLiteralTooLong = errors.New("hex literal does not fit in 32 bytes")

// Literal is a 32-byte EVM word, most significant byte first.
type Literal [32]byte

// ParseLiteral decodes a run of hex digits, without the 0x prefix, as a
// big-endian integer right-aligned in a word: "1234" becomes thirty zero
// bytes followed by 0x12, 0x34.
func ParseLiteral(digits string) (Literal, error) {
	if len(digits) >= LiteralDigits {
		return Literal{}, ErrLiteralTooLong
	}
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	raw, err := hex.DecodeString(digits)
	if err != nil {
		return Literal{}, fmt.Errorf("invalid hex literal: %w", err)
	}
	return Literal(new(uint256.Int).SetBytes(raw).Bytes32()), nil
}

// LiteralFromInt returns the word holding n.
func LiteralFromInt(n *uint256.Int) Literal {
	return n.Bytes32()
}

// Int returns this word as an unsigned 256-bit integer.
func (l Literal) Int() *uint256.Int {
	return new(uint256.Int).SetBytes32(l[:])
}

// IsZero returns whether every byte of this word is zero.
func (l Literal) IsZero() bool {
	return l == Literal{}
}

// Hex renders this word from its first non-zero byte, so 0x00..01 is "01"
// and zero is "00".
func (l Literal) Hex(prefixed bool) string {
	i := 0
	for i < len(l)-1 && l[i] == 0 {
		i++
	}
	s := hex.EncodeToString(l[i:])
	if prefixed {
		return "0x" + s
	}
	return s
}

// String implements [fmt.Stringer].
func (l Literal) String() string {
	return l.Hex(true)
}
