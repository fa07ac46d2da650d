//
// corvid - a UCI chess engine in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
// Copyright (c) 2026 corvid contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

// CastlingRights is a bitmask of the four remaining castling privileges.
type CastlingRights uint8

// Castling right bits.
const (
	CastlingNone    CastlingRights = 0
	CastlingWhiteKS CastlingRights = 1 << 0
	CastlingWhiteQS CastlingRights = 1 << 1
	CastlingBlackKS CastlingRights = 1 << 2
	CastlingBlackQS CastlingRights = 1 << 3
	CastlingAll                    = CastlingWhiteKS | CastlingWhiteQS | CastlingBlackKS | CastlingBlackQS
)

// Has reports whether all bits of other are set in c.
func (c CastlingRights) Has(other CastlingRights) bool {
	return c&other == other
}

// String renders c in FEN castling-field notation, e.g. "KQkq" or "-".
func (c CastlingRights) String() string {
	if c == CastlingNone {
		return "-"
	}
	s := ""
	if c.Has(CastlingWhiteKS) {
		s += "K"
	}
	if c.Has(CastlingWhiteQS) {
		s += "Q"
	}
	if c.Has(CastlingBlackKS) {
		s += "k"
	}
	if c.Has(CastlingBlackQS) {
		s += "q"
	}
	return s
}
