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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/moveslice"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

func TestGenerateLegalMoves_startingPositionHas20Moves(t *testing.T) {
	mg := New()
	p := position.New()
	legal := mg.GenerateLegalMoves(p, GenAll, moveslice.New(64))
	assert.Equal(t, 20, legal.Len())
}

func TestGenerateLegalMoves_noMovesAtStalemate(t *testing.T) {
	mg := New()
	p, err := position.NewFen("8/8/8/8/8/1qk5/8/K7 w - - 0 1")
	assert.NoError(t, err)
	legal := mg.GenerateLegalMoves(p, GenAll, moveslice.New(64))
	assert.Equal(t, 0, legal.Len())
	assert.False(t, mg.HasLegalMove(p))
}

func TestGenerateLegalMoves_everyMoveLeavesOwnKingSafe(t *testing.T) {
	mg := New()
	p := position.New()
	legal := mg.GenerateLegalMoves(p, GenAll, moveslice.New(64))
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		p.DoMove(m)
		mover := p.NextPlayer().Flip()
		assert.False(t, p.IsAttacked(p.KingSquare(mover), mover.Flip()))
		p.UndoMove()
	}
}

func TestGetNextMove_matchesGenerateLegalMoves(t *testing.T) {
	mg := New()
	p := position.New()
	full := mg.GenerateLegalMoves(p, GenAll, moveslice.New(64))

	mg2 := New()
	count := 0
	for m := mg2.GetNextMove(p, GenAll); m != NoMove; m = mg2.GetNextMove(p, GenAll) {
		count++
	}
	assert.Equal(t, full.Len(), count)
}

func TestMoveFromUci_findsLegalMove(t *testing.T) {
	mg := New()
	p := position.New()
	m := mg.MoveFromUci(p, "e2e4")
	assert.True(t, m.IsValid())
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
}

func TestMoveFromUci_unknownMoveReturnsNoMove(t *testing.T) {
	mg := New()
	p := position.New()
	m := mg.MoveFromUci(p, "a1a8")
	assert.Equal(t, NoMove, m)
}

func TestGenCap_onlyCapturesAndPromotionsWhenNotInCheck(t *testing.T) {
	mg := New()
	p, err := position.NewFen("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	caps := mg.GenerateLegalMoves(p, GenCap, moveslice.New(64))
	for i := 0; i < caps.Len(); i++ {
		assert.True(t, caps.At(i).IsCapture())
	}
	assert.GreaterOrEqual(t, caps.Len(), 1)
}
