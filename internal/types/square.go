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

// Square is one of the 64 board squares, A1..H8, plus SqNone.
type Square int8

// Squares, A1 first, H8 last (rank-major, a-file first).
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
	SqLength = 64
)

var fileChar = "abcdefgh"
var rankChar = "12345678"

// SquareOf builds a square from zero-based file (0=a) and rank (0=1st rank).
func SquareOf(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SqNone
	}
	return Square(rank*8 + file)
}

// File returns the zero-based file (0=a .. 7=h).
func (s Square) File() int {
	return int(s) & 7
}

// Rank returns the zero-based rank (0=1st rank .. 7=8th rank).
func (s Square) Rank() int {
	return int(s) >> 3
}

// IsValid reports whether s is one of the 64 board squares.
func (s Square) IsValid() bool {
	return s >= SqA1 && s < SqLength
}

// String returns algebraic notation, e.g. "e4".
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return string(fileChar[s.File()]) + string(rankChar[s.Rank()])
}

// Direction is a delta in square index used to step across the board.
type Direction int8

// Compass directions as square-index deltas for an unbounded (no-wraparound-
// checked) ray walk. Callers must bound file/rank themselves.
const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	NorthEast Direction = North + East
	NorthWest Direction = North + West
	SouthEast Direction = South + East
	SouthWest Direction = South + West
)
