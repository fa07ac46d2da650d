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

import "strings"

// MoveType distinguishes the four ways a move can be made.
type MoveType int8

// Move types.
const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
)

// IsValid reports whether mt is one of the four known move types.
func (mt MoveType) IsValid() bool {
	return mt >= Normal && mt <= Castling
}

// Move is a 32-bit packed chess move: origin, target, moving piece,
// promotion piece, captured piece and move type. Moves are opaque to the
// search; only equality and make/undo matter (spec.md §3).
//
//	bit 0-5:   to square      (6 bits)
//	bit 6-11:  from square    (6 bits)
//	bit 12-13: move type      (2 bits)
//	bit 14-16: promotion type (3 bits)
//	bit 17-19: moving piece   (3 bits)
//	bit 20-22: captured piece (3 bits)
type Move uint32

// NoMove is the sentinel value denoting the absence of a move.
const NoMove Move = 0

const (
	toShift        = 0
	fromShift      = 6
	typeShift      = 12
	promotionShift = 14
	pieceShift     = 17
	capturedShift  = 20

	squareBits = 0x3F
	typeBits   = 0x3
	pieceBits  = 0x7
)

// NewMove builds a quiet or castling move.
func NewMove(from, to Square, piece PieceType, mt MoveType) Move {
	return Move(to)<<toShift |
		Move(from)<<fromShift |
		Move(mt)<<typeShift |
		Move(piece)<<pieceShift
}

// NewCapture builds a capturing move.
func NewCapture(from, to Square, piece, captured PieceType, mt MoveType) Move {
	return NewMove(from, to, piece, mt) | Move(captured)<<capturedShift
}

// NewPromotion builds a promotion move, optionally a promoting capture.
func NewPromotion(from, to Square, captured, promoteTo PieceType) Move {
	m := NewMove(from, to, Pawn, Promotion) | Move(promoteTo)<<promotionShift
	if captured != PtNone {
		m |= Move(captured) << capturedShift
	}
	return m
}

// From returns the origin square.
func (m Move) From() Square { return Square((m >> fromShift) & squareBits) }

// To returns the target square.
func (m Move) To() Square { return Square((m >> toShift) & squareBits) }

// MoveType returns the move type.
func (m Move) MoveType() MoveType { return MoveType((m >> typeShift) & typeBits) }

// Piece returns the type of piece making the move.
func (m Move) Piece() PieceType { return PieceType((m >> pieceShift) & pieceBits) }

// PromotionType returns the promotion piece type; only meaningful when
// MoveType() == Promotion.
func (m Move) PromotionType() PieceType { return PieceType((m >> promotionShift) & pieceBits) }

// CapturedPiece returns the captured piece type, or PtNone for a quiet move.
func (m Move) CapturedPiece() PieceType { return PieceType((m >> capturedShift) & pieceBits) }

// IsCapture reports whether the move captures a piece (including en passant).
func (m Move) IsCapture() bool {
	return m.CapturedPiece() != PtNone || m.MoveType() == EnPassant
}

// IsValid reports whether m has well-formed squares and a known move type;
// the promotion type is not checked. NoMove is never valid.
func (m Move) IsValid() bool {
	return m != NoMove && m.From().IsValid() && m.To().IsValid() && m.MoveType().IsValid()
}

// StringUci renders m in UCI long algebraic notation, e.g. "e2e4" or "e7e8q".
func (m Move) StringUci() string {
	if m == NoMove {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		b.WriteString(m.PromotionType().Char())
	}
	return b.String()
}

// String is a verbose, human-readable rendering of m, used in logs.
func (m Move) String() string {
	if m == NoMove {
		return "NoMove"
	}
	return "Move{" + m.StringUci() + "}"
}
