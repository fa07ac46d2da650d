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

// Package position implements a mailbox chess board: make/undo move, Zobrist
// hashing, check and repetition detection. It is a collaborator of the
// search core, not part of it (move legality and the board representation
// are intentionally kept simple).
package position

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/corvidchess/corvid/internal/types"
)

const startFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// StartFen is the standard chess starting position in FEN.
const StartFen = startFen

// historyState snapshots everything DoMove destroys so UndoMove can restore
// it without recomputation.
type historyState struct {
	move             Move
	capturedPiece    Piece
	castlingRights   CastlingRights
	enPassantSquare  Square
	halfMoveClock    int
	zobristKey       Key
	hasCheck         int8 // -1 unknown, 0 false, 1 true
}

const (
	flagUnknown int8 = -1
	flagFalse   int8 = 0
	flagTrue    int8 = 1
)

// Position is a mutable mailbox board plus enough state to make and undo
// moves and to detect draws.
type Position struct {
	board           [SqLength]Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	nextPlayer      Color
	kingSquare      [2]Square
	zobristKey      Key
	material        [2]Value

	nextHalfMoveNumber int
	hasCheckFlag       int8

	history []historyState
}

// New returns the standard chess starting position.
func New() *Position {
	p, err := NewFen(startFen)
	if err != nil {
		panic(fmt.Sprintf("position: invalid built-in start fen: %v", err))
	}
	return p
}

// NewFen parses a FEN string into a Position.
func NewFen(fen string) (*Position, error) {
	p := &Position{
		kingSquare:   [2]Square{SqNone, SqNone},
		hasCheckFlag: flagUnknown,
	}
	if err := p.setupFromFen(fen); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Position) setupFromFen(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return fmt.Errorf("position: fen %q: need at least 4 fields", fen)
	}

	for i := range p.board {
		p.board[i] = PieceNone
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("position: fen %q: expected 8 ranks, got %d", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				pt, c, err := pieceFromChar(ch)
				if err != nil {
					return fmt.Errorf("position: fen %q: %w", fen, err)
				}
				if file > 7 {
					return fmt.Errorf("position: fen %q: rank %d overflows", fen, rank+1)
				}
				sq := SquareOf(file, rank)
				p.putPiece(MakePiece(c, pt), sq)
				file++
			}
		}
	}

	switch fields[1] {
	case "w":
		p.nextPlayer = White
	case "b":
		p.nextPlayer = Black
	default:
		return fmt.Errorf("position: fen %q: invalid side to move %q", fen, fields[1])
	}

	p.castlingRights = CastlingNone
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.castlingRights |= CastlingWhiteKS
			case 'Q':
				p.castlingRights |= CastlingWhiteQS
			case 'k':
				p.castlingRights |= CastlingBlackKS
			case 'q':
				p.castlingRights |= CastlingBlackQS
			default:
				return fmt.Errorf("position: fen %q: invalid castling field", fen)
			}
		}
	}

	p.enPassantSquare = SqNone
	if fields[3] != "-" {
		sq := squareFromAlgebraic(fields[3])
		if sq == SqNone {
			return fmt.Errorf("position: fen %q: invalid en passant square %q", fen, fields[3])
		}
		p.enPassantSquare = sq
	}

	p.halfMoveClock = 0
	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			p.halfMoveClock = n
		}
	}
	p.nextHalfMoveNumber = 1
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			p.nextHalfMoveNumber = 2 * n
			if p.nextPlayer == White {
				p.nextHalfMoveNumber--
			}
		}
	}

	p.zobristKey = p.computeZobrist()
	p.hasCheckFlag = flagUnknown
	return nil
}

func pieceFromChar(ch rune) (PieceType, Color, error) {
	c := White
	lc := ch
	if ch >= 'a' && ch <= 'z' {
		c = Black
	} else {
		lc = ch + ('a' - 'A')
	}
	switch lc {
	case 'p':
		return Pawn, c, nil
	case 'n':
		return Knight, c, nil
	case 'b':
		return Bishop, c, nil
	case 'r':
		return Rook, c, nil
	case 'q':
		return Queen, c, nil
	case 'k':
		return King, c, nil
	default:
		return PtNone, c, fmt.Errorf("invalid piece char %q", ch)
	}
}

func squareFromAlgebraic(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	return SquareOf(file, rank)
}

func (p *Position) computeZobrist() Key {
	var k Key
	for sq := SqA1; sq < SqLength; sq++ {
		pc := p.board[sq]
		if pc == PieceNone {
			continue
		}
		k ^= zobristBase.pieces[pc.ColorOf()][pc.TypeOf()][sq]
	}
	k ^= zobristBase.castlingRights[p.castlingRights]
	if p.enPassantSquare != SqNone {
		k ^= zobristBase.enPassantFile[p.enPassantSquare.File()]
	}
	if p.nextPlayer == Black {
		k ^= zobristBase.nextPlayer
	}
	return k
}

func (p *Position) putPiece(pc Piece, sq Square) {
	p.board[sq] = pc
	if pc.TypeOf() == King {
		p.kingSquare[pc.ColorOf()] = sq
	}
	p.material[pc.ColorOf()] += pc.Value()
}

func (p *Position) removePiece(sq Square) Piece {
	pc := p.board[sq]
	if pc != PieceNone {
		p.material[pc.ColorOf()] -= pc.Value()
	}
	p.board[sq] = PieceNone
	return pc
}

func (p *Position) movePiece(from, to Square) {
	pc := p.removePiece(from)
	p.putPiece(pc, to)
}

// Board returns the piece on sq.
func (p *Position) Board(sq Square) Piece { return p.board[sq] }

// NextPlayer returns the side to move.
func (p *Position) NextPlayer() Color { return p.nextPlayer }

// CastlingRights returns the remaining castling privileges.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EnPassantSquare returns the current en passant target square, or SqNone.
func (p *Position) EnPassantSquare() Square { return p.enPassantSquare }

// HalfMoveClock returns the number of half-moves since the last capture or
// pawn move (the fifty-move-rule counter).
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// ZobristKey returns the current Zobrist hash.
func (p *Position) ZobristKey() Key { return p.zobristKey }

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square { return p.kingSquare[c] }

// PlyCount returns the number of moves played so far in this game (the
// length of the undo history).
func (p *Position) PlyCount() int { return len(p.history) }

// DoMove makes m on the board. The caller is responsible for only ever
// making pseudo-legal moves generated for the current position; DoMove does
// not itself check legality (spec.md §6 assigns that to the generator).
func (p *Position) DoMove(m Move) {
	h := historyState{
		move:            m,
		castlingRights:  p.castlingRights,
		enPassantSquare: p.enPassantSquare,
		halfMoveClock:   p.halfMoveClock,
		zobristKey:      p.zobristKey,
		hasCheck:        flagUnknown,
	}

	from, to := m.From(), m.To()
	movingPiece := p.board[from]

	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.File()]
	}
	p.enPassantSquare = SqNone

	switch m.MoveType() {
	case EnPassant:
		capSq := SquareOf(to.File(), from.Rank())
		h.capturedPiece = p.removePiece(capSq)
		p.zobristKey ^= zobristBase.pieces[h.capturedPiece.ColorOf()][h.capturedPiece.TypeOf()][capSq]
		p.zobristKey ^= zobristBase.pieces[movingPiece.ColorOf()][movingPiece.TypeOf()][from]
		p.movePiece(from, to)
		p.zobristKey ^= zobristBase.pieces[movingPiece.ColorOf()][movingPiece.TypeOf()][to]

	case Promotion:
		h.capturedPiece = p.board[to]
		if h.capturedPiece != PieceNone {
			p.zobristKey ^= zobristBase.pieces[h.capturedPiece.ColorOf()][h.capturedPiece.TypeOf()][to]
			p.removePiece(to)
		}
		p.zobristKey ^= zobristBase.pieces[movingPiece.ColorOf()][movingPiece.TypeOf()][from]
		p.removePiece(from)
		promoted := MakePiece(p.nextPlayer, m.PromotionType())
		p.putPiece(promoted, to)
		p.zobristKey ^= zobristBase.pieces[promoted.ColorOf()][promoted.TypeOf()][to]

	case Castling:
		p.zobristKey ^= zobristBase.pieces[movingPiece.ColorOf()][movingPiece.TypeOf()][from]
		p.movePiece(from, to)
		p.zobristKey ^= zobristBase.pieces[movingPiece.ColorOf()][movingPiece.TypeOf()][to]
		rookFrom, rookTo := castlingRookSquares(to)
		rook := p.board[rookFrom]
		p.zobristKey ^= zobristBase.pieces[rook.ColorOf()][rook.TypeOf()][rookFrom]
		p.movePiece(rookFrom, rookTo)
		p.zobristKey ^= zobristBase.pieces[rook.ColorOf()][rook.TypeOf()][rookTo]

	default: // Normal
		h.capturedPiece = p.board[to]
		if h.capturedPiece != PieceNone {
			p.zobristKey ^= zobristBase.pieces[h.capturedPiece.ColorOf()][h.capturedPiece.TypeOf()][to]
		}
		p.zobristKey ^= zobristBase.pieces[movingPiece.ColorOf()][movingPiece.TypeOf()][from]
		p.movePiece(from, to)
		p.zobristKey ^= zobristBase.pieces[movingPiece.ColorOf()][movingPiece.TypeOf()][to]

		if movingPiece.TypeOf() == Pawn && abs(int(to)-int(from)) == 16 {
			p.enPassantSquare = SquareOf(from.File(), (from.Rank()+to.Rank())/2)
			p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.File()]
		}
	}

	p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	p.invalidateCastlingRights(from, to, movingPiece)
	p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]

	if movingPiece.TypeOf() == Pawn || h.capturedPiece != PieceNone {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobristBase.nextPlayer
	p.nextHalfMoveNumber++
	p.hasCheckFlag = flagUnknown

	p.history = append(p.history, h)
}

// UndoMove reverses the most recent DoMove. Calling UndoMove on the initial
// position is a programming error and panics.
func (p *Position) UndoMove() {
	n := len(p.history)
	if n == 0 {
		panic("position: UndoMove called on initial position")
	}
	h := p.history[n-1]
	p.history = p.history[:n-1]

	p.nextPlayer = p.nextPlayer.Flip()
	m := h.move
	from, to := m.From(), m.To()

	switch m.MoveType() {
	case EnPassant:
		p.movePiece(to, from)
		capSq := SquareOf(to.File(), from.Rank())
		p.putPiece(h.capturedPiece, capSq)

	case Promotion:
		p.removePiece(to)
		p.putPiece(MakePiece(p.nextPlayer, Pawn), from)
		if h.capturedPiece != PieceNone {
			p.putPiece(h.capturedPiece, to)
		}

	case Castling:
		p.movePiece(to, from)
		rookFrom, rookTo := castlingRookSquares(to)
		p.movePiece(rookTo, rookFrom)

	default: // Normal
		p.movePiece(to, from)
		if h.capturedPiece != PieceNone {
			p.putPiece(h.capturedPiece, to)
		}
	}

	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.zobristKey = h.zobristKey
	p.hasCheckFlag = flagUnknown
	p.nextHalfMoveNumber--
}

func castlingRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	default:
		panic(fmt.Sprintf("position: %s is not a castling target square", kingTo))
	}
}

func (p *Position) invalidateCastlingRights(from, to Square, moving Piece) {
	switch {
	case moving.TypeOf() == King && moving.ColorOf() == White:
		p.castlingRights &^= CastlingWhiteKS | CastlingWhiteQS
	case moving.TypeOf() == King && moving.ColorOf() == Black:
		p.castlingRights &^= CastlingBlackKS | CastlingBlackQS
	}
	for _, sq := range [2]Square{from, to} {
		switch sq {
		case SqA1:
			p.castlingRights &^= CastlingWhiteQS
		case SqH1:
			p.castlingRights &^= CastlingWhiteKS
		case SqA8:
			p.castlingRights &^= CastlingBlackQS
		case SqH8:
			p.castlingRights &^= CastlingBlackKS
		}
	}
}

// HasCheck reports whether the side to move is in check. The result is
// cached per position and invalidated by DoMove/UndoMove.
func (p *Position) HasCheck() bool {
	if p.hasCheckFlag == flagUnknown {
		check := p.IsAttacked(p.kingSquare[p.nextPlayer], p.nextPlayer.Flip())
		if check {
			p.hasCheckFlag = flagTrue
		} else {
			p.hasCheckFlag = flagFalse
		}
	}
	return p.hasCheckFlag == flagTrue
}

// Clone returns an independent copy of p; mutating the clone (DoMove,
// UndoMove) never affects p. The Search Controller clones the position it
// is handed so the worker thread owns its own board (spec.md §5).
func (p *Position) Clone() *Position {
	clone := *p
	clone.history = make([]historyState, len(p.history), cap(p.history))
	copy(clone.history, p.history)
	return &clone
}

// GivesCheck reports whether making m would leave the opponent in check.
// It makes and undoes the move; callers on a hot path should prefer
// HasCheck() after DoMove when the move is made anyway.
func (p *Position) GivesCheck(m Move) bool {
	p.DoMove(m)
	check := p.HasCheck()
	p.UndoMove()
	return check
}

// CheckRepetitions reports whether the current position has occurred at
// least reps times earlier in the game (not counting the current
// occurrence). reps == 2 detects the position that would be a third
// occurrence, matching FIDE three-fold repetition.
func (p *Position) CheckRepetitions(reps int) bool {
	counter := 0
	lastHalfMove := p.halfMoveClock
	for i := len(p.history) - 2; i >= 0; i -= 2 {
		if p.history[i].halfMoveClock >= lastHalfMove {
			break
		}
		lastHalfMove = p.history[i].halfMoveClock
		if p.history[i].zobristKey == p.zobristKey {
			counter++
			if counter >= reps {
				return true
			}
		}
	}
	return false
}

// IsRepetition reports whether the current position is a draw by three-fold
// repetition.
func (p *Position) IsRepetition() bool {
	return p.CheckRepetitions(2)
}

// HasInsufficientMaterial reports whether neither side has enough material
// to force checkmate.
func (p *Position) HasInsufficientMaterial() bool {
	if p.material[White]+p.material[Black] == 0 {
		return true
	}

	pawns := false
	for sq := SqA1; sq < SqLength; sq++ {
		if p.board[sq].TypeOf() == Pawn {
			pawns = true
			break
		}
	}
	if pawns {
		return false
	}

	wNP, bNP := p.material[White], p.material[Black]
	minor := Value(Bishop.Value())

	if wNP < 400 && bNP < 400 {
		return true
	}
	twoKnights := Value(2 * Knight.Value())
	if (wNP == twoKnights && bNP <= minor) || (bNP == twoKnights && wNP <= minor) {
		return true
	}
	twoBishops := Value(2 * Bishop.Value())
	if (wNP == twoBishops && bNP == minor) || (bNP == twoBishops && wNP == minor) {
		return true
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// StringFen renders the position as a FEN string.
func (p *Position) StringFen() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file <= 7; file++ {
			pc := p.board[SquareOf(file, rank)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.Char())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}
	b.WriteByte(' ')
	b.WriteString(p.nextPlayer.String())
	b.WriteByte(' ')
	b.WriteString(p.castlingRights.String())
	b.WriteByte(' ')
	b.WriteString(p.enPassantSquare.String())
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.halfMoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa((p.nextHalfMoveNumber + 1) / 2))
	return b.String()
}

// String renders the position as an 8x8 ASCII diagram for debugging.
func (p *Position) String() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file <= 7; file++ {
			pc := p.board[SquareOf(file, rank)]
			if pc == PieceNone {
				b.WriteByte('.')
			} else {
				b.WriteString(pc.Char())
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
