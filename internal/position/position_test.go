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
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvidchess/corvid/internal/types"
)

func TestNew_startingPosition(t *testing.T) {
	p := New()
	assert.Equal(t, White, p.NextPlayer())
	assert.Equal(t, MakePiece(White, King), p.Board(SqE1))
	assert.Equal(t, MakePiece(Black, King), p.Board(SqE8))
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, 0, p.HalfMoveClock())
}

func TestDoUndoMove_restoresExactly(t *testing.T) {
	p := New()
	before := p.ZobristKey()
	beforeFen := p.StringFen()

	m := NewMove(SqE2, SqE4, Pawn, Normal)
	p.DoMove(m)
	assert.NotEqual(t, before, p.ZobristKey())
	assert.Equal(t, Black, p.NextPlayer())

	p.UndoMove()
	assert.Equal(t, before, p.ZobristKey())
	assert.Equal(t, beforeFen, p.StringFen())
	assert.Equal(t, White, p.NextPlayer())
}

func TestDoUndoMove_sequenceRestoresExactly(t *testing.T) {
	p := New()
	before := p.ZobristKey()

	moves := []Move{
		NewMove(SqE2, SqE4, Pawn, Normal),
		NewMove(SqE7, SqE5, Pawn, Normal),
		NewMove(SqG1, SqF3, Knight, Normal),
	}
	for _, m := range moves {
		p.DoMove(m)
	}
	for range moves {
		p.UndoMove()
	}

	assert.Equal(t, before, p.ZobristKey())
}

func TestHalfMoveClock_resetsOnPawnMoveAndCapture(t *testing.T) {
	p := New()
	p.DoMove(NewMove(SqE2, SqE4, Pawn, Normal))
	assert.Equal(t, 0, p.HalfMoveClock())

	p.DoMove(NewMove(SqG8, SqF6, Knight, Normal))
	assert.Equal(t, 1, p.HalfMoveClock())

	p.DoMove(NewMove(SqB1, SqC3, Knight, Normal))
	assert.Equal(t, 2, p.HalfMoveClock())

	p.DoMove(NewCapture(SqF6, SqE4, Knight, Pawn, Normal))
	assert.Equal(t, 0, p.HalfMoveClock())
}

func TestHasInsufficientMaterial_bareKings(t *testing.T) {
	p, err := NewFen("8/8/4k3/8/8/4K3/8/8 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, p.HasInsufficientMaterial())
}

func TestHasInsufficientMaterial_falseWithPawn(t *testing.T) {
	p, err := NewFen("8/8/4k3/8/8/4K3/4P3/8 w - - 0 1")
	assert.NoError(t, err)
	assert.False(t, p.HasInsufficientMaterial())
}

func TestHasCheck(t *testing.T) {
	p, err := NewFen("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	assert.NoError(t, err)
	assert.False(t, p.HasCheck())

	p.DoMove(NewMove(SqA1, SqA8, Rook, Normal))
	assert.True(t, p.HasCheck())
}

func TestClone_independentFromOriginal(t *testing.T) {
	p := New()
	clone := p.Clone()

	clone.DoMove(NewMove(SqE2, SqE4, Pawn, Normal))

	assert.Equal(t, White, p.NextPlayer())
	assert.Equal(t, Black, clone.NextPlayer())
	assert.NotEqual(t, p.ZobristKey(), clone.ZobristKey())
}
