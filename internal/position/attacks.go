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

package position

import (
	. "github.com/corvidchess/corvid/internal/types"
)

// knightOffsets and kingOffsets are file/rank deltas, not raw square deltas,
// so they never wrap around the board edge.
var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// IsAttacked reports whether sq is attacked by any piece of color by.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	if p.pawnAttacks(sq, by) {
		return true
	}
	for _, d := range knightOffsets {
		if t := stepSquare(sq, d[0], d[1]); t != SqNone && p.board[t] == MakePiece(by, Knight) {
			return true
		}
	}
	for _, d := range kingOffsets {
		if t := stepSquare(sq, d[0], d[1]); t != SqNone && p.board[t] == MakePiece(by, King) {
			return true
		}
	}
	if p.rayAttacked(sq, by, bishopDirs, Bishop, Queen) {
		return true
	}
	if p.rayAttacked(sq, by, rookDirs, Rook, Queen) {
		return true
	}
	return false
}

func (p *Position) pawnAttacks(sq Square, by Color) bool {
	// A pawn of color `by` attacks sq if it sits one rank behind sq (from
	// by's point of view) on an adjacent file.
	rankDelta := -1
	if by == Black {
		rankDelta = 1
	}
	for _, fileDelta := range [2]int{-1, 1} {
		if t := stepSquare(sq, fileDelta, rankDelta); t != SqNone && p.board[t] == MakePiece(by, Pawn) {
			return true
		}
	}
	return false
}

func (p *Position) rayAttacked(sq Square, by Color, dirs [4][2]int, slider1, slider2 PieceType) bool {
	for _, d := range dirs {
		t := sq
		for {
			next := stepSquare(t, d[0], d[1])
			if next == SqNone {
				break
			}
			t = next
			pc := p.board[t]
			if pc == PieceNone {
				continue
			}
			if pc.ColorOf() == by && (pc.TypeOf() == slider1 || pc.TypeOf() == slider2) {
				return true
			}
			break
		}
	}
	return false
}

// stepSquare returns the square reached by moving fileDelta/rankDelta from
// sq, or SqNone if that leaves the board.
func stepSquare(sq Square, fileDelta, rankDelta int) Square {
	f := sq.File() + fileDelta
	r := sq.Rank() + rankDelta
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return SqNone
	}
	return SquareOf(f, r)
}
