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

// Package movegen generates legal moves for a position, lazily, so the
// search can stop pulling moves at a cutoff without paying for moves it
// never looks at.
package movegen

import (
	"fmt"

	"github.com/corvidchess/corvid/internal/moveslice"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// GenMode selects which classes of pseudo-legal moves to generate.
type GenMode int

// Generation modes. GenAll is the union of GenCap and GenNonCap.
const (
	GenCap    GenMode = 1 << 0
	GenNonCap GenMode = 1 << 1
	GenAll            = GenCap | GenNonCap
)

// Movegen generates and lazily hands out legal moves for a position. A
// Movegen is reused across positions; create one with New and call
// GetNextMove in a loop until it returns NoMove.
type Movegen struct {
	legalMoves    *moveslice.MoveSlice
	takeIndex     int
	generatedKey  position.Key
	generatedMode GenMode
	haveGenerated bool
}

// New returns a ready-to-use move generator.
func New() *Movegen {
	return &Movegen{
		legalMoves: moveslice.New(64),
	}
}

// GetNextMove returns the next legal move for p under mode, or NoMove once
// exhausted. The first call for a given (position, mode) pair generates the
// full legal move list; subsequent calls simply hand out the next element.
// Calling GetNextMove again after a position change (detected by Zobrist
// key) restarts generation.
func (mg *Movegen) GetNextMove(p *position.Position, mode GenMode) Move {
	if !mg.haveGenerated || mg.generatedKey != p.ZobristKey() || mg.generatedMode != mode {
		mg.GenerateLegalMoves(p, mode, mg.legalMoves)
		mg.generatedKey = p.ZobristKey()
		mg.generatedMode = mode
		mg.haveGenerated = true
		mg.takeIndex = 0
	}
	if mg.takeIndex >= mg.legalMoves.Len() {
		return NoMove
	}
	m := mg.legalMoves.At(mg.takeIndex)
	mg.takeIndex++
	return m
}

// ResetOnDemand forces the next GetNextMove call to regenerate, even for an
// unchanged position. Search calls this when reusing one Movegen instance
// across positions that might hash-collide.
func (mg *Movegen) ResetOnDemand() {
	mg.haveGenerated = false
	mg.takeIndex = 0
}

// HasLegalMove reports whether p has at least one legal move, without
// generating or storing the full list.
func (mg *Movegen) HasLegalMove(p *position.Position) bool {
	found := false
	mg.generatePseudoLegal(p, GenAll, func(m Move) bool {
		if isLegal(p, m) {
			found = true
			return false
		}
		return true
	})
	return found
}

// GenerateLegalMoves fills dest with every legal move available to the side
// to move in mode, clearing dest first.
func (mg *Movegen) GenerateLegalMoves(p *position.Position, mode GenMode, dest *moveslice.MoveSlice) *moveslice.MoveSlice {
	dest.Clear()
	mg.generatePseudoLegal(p, mode, func(m Move) bool {
		if isLegal(p, m) {
			dest.PushBack(m)
		}
		return true
	})
	return dest
}

// isLegal makes m, checks whether the mover's own king is left in check,
// and undoes it. This is the sole legality gate in the engine (spec.md §6):
// the search never sees a pseudo-legal move.
func isLegal(p *position.Position, m Move) bool {
	mover := p.NextPlayer()
	p.DoMove(m)
	kingSq := p.KingSquare(mover)
	legal := !p.IsAttacked(kingSq, mover.Flip())
	p.UndoMove()
	return legal
}

// generatePseudoLegal calls yield for every pseudo-legal move matching mode,
// stopping early if yield returns false.
func (mg *Movegen) generatePseudoLegal(p *position.Position, mode GenMode, yield func(Move) bool) {
	us := p.NextPlayer()
	for sq := SqA1; sq < SqLength; sq++ {
		pc := p.Board(sq)
		if pc == PieceNone || pc.ColorOf() != us {
			continue
		}
		var ok bool
		switch pc.TypeOf() {
		case Pawn:
			ok = genPawnMoves(p, sq, us, mode, yield)
		case Knight:
			ok = genOffsetMoves(p, sq, us, mode, knightOffsets, yield)
		case Bishop:
			ok = genSlidingMoves(p, sq, us, mode, bishopDirs, yield)
		case Rook:
			ok = genSlidingMoves(p, sq, us, mode, rookDirs, yield)
		case Queen:
			ok = genSlidingMoves(p, sq, us, mode, bishopDirs, yield)
			if ok {
				ok = genSlidingMoves(p, sq, us, mode, rookDirs, yield)
			}
		case King:
			ok = genOffsetMoves(p, sq, us, mode, kingOffsets, yield)
		}
		if !ok {
			return
		}
	}
	if mode&GenNonCap != 0 {
		if !genCastling(p, us, yield) {
			return
		}
	}
}

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

func step(sq Square, fileDelta, rankDelta int) Square {
	f := sq.File() + fileDelta
	r := sq.Rank() + rankDelta
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return SqNone
	}
	return SquareOf(f, r)
}

func genOffsetMoves(p *position.Position, from Square, us Color, mode GenMode, offsets [8][2]int, yield func(Move) bool) bool {
	piece := p.Board(from)
	for _, d := range offsets {
		to := step(from, d[0], d[1])
		if to == SqNone {
			continue
		}
		target := p.Board(to)
		if target != PieceNone && target.ColorOf() == us {
			continue
		}
		if target != PieceNone {
			if mode&GenCap == 0 {
				continue
			}
			if !yield(NewCapture(from, to, piece.TypeOf(), target.TypeOf(), Normal)) {
				return false
			}
		} else {
			if mode&GenNonCap == 0 {
				continue
			}
			if !yield(NewMove(from, to, piece.TypeOf(), Normal)) {
				return false
			}
		}
	}
	return true
}

func genSlidingMoves(p *position.Position, from Square, us Color, mode GenMode, dirs [4][2]int, yield func(Move) bool) bool {
	piece := p.Board(from)
	for _, d := range dirs {
		to := from
		for {
			next := step(to, d[0], d[1])
			if next == SqNone {
				break
			}
			to = next
			target := p.Board(to)
			if target == PieceNone {
				if mode&GenNonCap != 0 {
					if !yield(NewMove(from, to, piece.TypeOf(), Normal)) {
						return false
					}
				}
				continue
			}
			if target.ColorOf() != us && mode&GenCap != 0 {
				if !yield(NewCapture(from, to, piece.TypeOf(), target.TypeOf(), Normal)) {
					return false
				}
			}
			break
		}
	}
	return true
}

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

func genPawnMoves(p *position.Position, from Square, us Color, mode GenMode, yield func(Move) bool) bool {
	forward := 1
	startRank := 1
	promoRank := 7
	if us == Black {
		forward = -1
		startRank = 6
		promoRank = 0
	}

	// captures, including promotions and en passant
	if mode&GenCap != 0 {
		for _, fileDelta := range [2]int{-1, 1} {
			to := step(from, fileDelta, forward)
			if to == SqNone {
				continue
			}
			if to == p.EnPassantSquare() {
				if !yield(NewMove(from, to, Pawn, EnPassant)) {
					return false
				}
				continue
			}
			target := p.Board(to)
			if target == PieceNone || target.ColorOf() == us {
				continue
			}
			if to.Rank() == promoRank {
				for _, promo := range promotionPieces {
					if !yield(NewPromotion(from, to, target.TypeOf(), promo)) {
						return false
					}
				}
			} else {
				if !yield(NewCapture(from, to, Pawn, target.TypeOf(), Normal)) {
					return false
				}
			}
		}
	}

	// pushes, including double push and promotion
	one := step(from, 0, forward)
	if one == SqNone || p.Board(one) != PieceNone {
		return true
	}
	if one.Rank() == promoRank {
		if mode&GenCap != 0 { // promotions are tactical, generated with captures
			for _, promo := range promotionPieces {
				if !yield(NewPromotion(from, one, PtNone, promo)) {
					return false
				}
			}
		}
		return true
	}
	if mode&GenNonCap != 0 {
		if !yield(NewMove(from, one, Pawn, Normal)) {
			return false
		}
		if from.Rank() == startRank {
			two := step(from, 0, 2*forward)
			if two != SqNone && p.Board(two) == PieceNone {
				if !yield(NewMove(from, two, Pawn, Normal)) {
					return false
				}
			}
		}
	}
	return true
}

func genCastling(p *position.Position, us Color, yield func(Move) bool) bool {
	opp := us.Flip()
	rank := 0
	ksRight, qsRight := CastlingWhiteKS, CastlingWhiteQS
	if us == Black {
		rank = 7
		ksRight, qsRight = CastlingBlackKS, CastlingBlackQS
	}
	kingFrom := SquareOf(4, rank)
	if p.Board(kingFrom) != MakePiece(us, King) || p.IsAttacked(kingFrom, opp) {
		return true
	}

	if p.CastlingRights().Has(ksRight) {
		f, g, h := SquareOf(5, rank), SquareOf(6, rank), SquareOf(7, rank)
		if p.Board(f) == PieceNone && p.Board(g) == PieceNone && p.Board(h) == MakePiece(us, Rook) &&
			!p.IsAttacked(f, opp) && !p.IsAttacked(g, opp) {
			if !yield(NewMove(kingFrom, g, King, Castling)) {
				return false
			}
		}
	}
	if p.CastlingRights().Has(qsRight) {
		d, c, b, a := SquareOf(3, rank), SquareOf(2, rank), SquareOf(1, rank), SquareOf(0, rank)
		if p.Board(d) == PieceNone && p.Board(c) == PieceNone && p.Board(b) == PieceNone &&
			p.Board(a) == MakePiece(us, Rook) && !p.IsAttacked(d, opp) && !p.IsAttacked(c, opp) {
			if !yield(NewMove(kingFrom, c, King, Castling)) {
				return false
			}
		}
	}
	return true
}

// MoveFromUci returns the legal move on p matching the UCI long algebraic
// string uciMove (e.g. "e2e4", "e7e8q"), or NoMove if none matches.
func (mg *Movegen) MoveFromUci(p *position.Position, uciMove string) Move {
	legal := mg.GenerateLegalMoves(p, GenAll, moveslice.New(64))
	for i := 0; i < legal.Len(); i++ {
		if legal.At(i).StringUci() == uciMove {
			return legal.At(i)
		}
	}
	return NoMove
}

// String renders mg's iteration state for diagnostics.
func (mg *Movegen) String() string {
	return fmt.Sprintf("Movegen{generated=%v take=%d/%d}", mg.haveGenerated, mg.takeIndex, mg.legalMoves.Len())
}
