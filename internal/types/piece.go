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

// PieceType identifies a kind of chess piece independent of color.
type PieceType int8

// Piece types. PtNone must stay zero so a zeroed board square reads empty.
const (
	PtNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PieceTypeLength = 7
)

// IsValid reports whether pt is one of the six piece kinds.
func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt <= King
}

var pieceTypeChar = [PieceTypeLength]string{"", "p", "n", "b", "r", "q", "k"}

// Char returns the lower-case algebraic letter for pt, or "" for PtNone.
func (pt PieceType) Char() string {
	return pieceTypeChar[pt]
}

// Value returns the static material value of one piece of this type.
func (pt PieceType) Value() Value {
	return pieceTypeValue[pt]
}

var pieceTypeValue = [PieceTypeLength]Value{0, 100, 320, 330, 500, 900, 0}

// Piece is a colored piece, e.g. a white knight or a black queen.
type Piece int8

// PieceNone is the value of an empty board square.
const PieceNone Piece = 0

// MakePiece builds a Piece from a color and a piece type.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == PtNone {
		return PieceNone
	}
	return Piece(int8(c)*int8(PieceTypeLength) + int8(pt))
}

// TypeOf returns the piece type component of p.
func (p Piece) TypeOf() PieceType {
	if p == PieceNone {
		return PtNone
	}
	return PieceType(int8(p) % int8(PieceTypeLength))
}

// ColorOf returns the color component of p. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	if int8(p) >= int8(PieceTypeLength) {
		return Black
	}
	return White
}

// Value returns the static material value of p.
func (p Piece) Value() Value {
	return p.TypeOf().Value()
}

// Char returns the algebraic letter for p, upper case for White, lower for
// Black, and "" for an empty square.
func (p Piece) Char() string {
	if p == PieceNone {
		return ""
	}
	c := p.TypeOf().Char()
	if p.ColorOf() == White {
		return toUpper(c)
	}
	return c
}

func toUpper(s string) string {
	b := []byte(s)
	if len(b) == 1 && b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
