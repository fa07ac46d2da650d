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

package search

import (
	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// searchInterior is the recursive negamax alpha-beta search below the root
// (spec.md §4.4). It is fail-soft: bestValue may exceed beta on a cutoff.
func (s *Search) searchInterior(p *position.Position, depth, ply int, alpha, beta Value) Value {
	if depth <= 0 {
		return s.quiescence(p, ply, alpha, beta)
	}

	s.nodesVisited++
	s.pv[ply].Clear()

	if s.stopRequested() || ply >= MaxPly {
		return s.eval.Evaluate(p)
	}

	if p.HasInsufficientMaterial() || p.IsRepetition() || p.HalfMoveClock() >= 100 {
		return ValueDraw
	}

	isCheck := p.HasCheck()

	mg := s.mg[ply]
	mg.ResetOnDemand()

	bestValue := ValueMin
	movesSearched := 0

	for move := mg.GetNextMove(p, movegen.GenAll); move != NoMove; move = mg.GetNextMove(p, movegen.GenAll) {
		p.DoMove(move)
		movesSearched++
		value := -s.searchInterior(p, depth-1, ply+1, -beta, -alpha)
		p.UndoMove()

		if s.stopRequested() {
			return bestValue
		}

		if value > bestValue {
			bestValue = value
			if value > alpha {
				alpha = value
				savePV(move, s.pv[ply+1], s.pv[ply])
				if value >= beta {
					break
				}
			}
		}
	}

	if movesSearched == 0 {
		if isCheck {
			return -ValueCheckMate + Value(ply)
		}
		return ValueDraw
	}

	return bestValue
}

// quiescence is the tactical-only extension at the search horizon (spec.md
// §4.5): stand-pat when not in check, captures-and-promotions only unless
// in check, in which case all evasions are tried. Falls back to the static
// evaluation when config.Settings.Search.UseQuiescence is off; the stand-pat
// lower bound itself is separately gated by UseQSStandpat.
func (s *Search) quiescence(p *position.Position, ply int, alpha, beta Value) Value {
	s.nodesVisited++
	s.pv[ply].Clear()

	if s.stopRequested() || ply >= MaxPly || !config.Settings.Search.UseQuiescence {
		return s.eval.Evaluate(p)
	}

	if p.HasInsufficientMaterial() || p.IsRepetition() || p.HalfMoveClock() >= 100 {
		return ValueDraw
	}

	isCheck := p.HasCheck()
	bestValue := ValueMin

	if !isCheck {
		standPat := s.eval.Evaluate(p)
		bestValue = standPat
		if config.Settings.Search.UseQSStandpat && standPat > alpha {
			alpha = standPat
			if standPat >= beta {
				return standPat
			}
		}
	}

	mode := movegen.GenCap
	if isCheck {
		mode = movegen.GenAll
	}

	mg := s.mg[ply]
	mg.ResetOnDemand()

	movesSearched := 0
	for move := mg.GetNextMove(p, mode); move != NoMove; move = mg.GetNextMove(p, mode) {
		p.DoMove(move)
		movesSearched++
		value := -s.quiescence(p, ply+1, -beta, -alpha)
		p.UndoMove()

		if s.stopRequested() {
			return bestValue
		}

		if value > bestValue {
			bestValue = value
			if value > alpha {
				alpha = value
				savePV(move, s.pv[ply+1], s.pv[ply])
				if value >= beta {
					break
				}
			}
		}
	}

	if isCheck && movesSearched == 0 {
		return -ValueCheckMate + Value(ply)
	}

	return bestValue
}
