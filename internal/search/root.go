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
	"sort"
	"sync/atomic"
	"time"

	"github.com/corvidchess/corvid/internal/moveslice"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/protocol"
	. "github.com/corvidchess/corvid/internal/types"
)

// RootEntry is one candidate root move with the score and PV found for it
// in the current iteration (spec.md §3).
type RootEntry struct {
	Move  Move
	Score Value
	Pv    moveslice.MoveSlice
}

// RootMoveList is the ordered root move list of spec.md §3. Index 0 holds
// the current best move once an iteration has updated it.
type RootMoveList []RootEntry

func newRootMoveList(legal *moveslice.MoveSlice, filter moveslice.MoveSlice) RootMoveList {
	allowed := func(m Move) bool {
		if filter.Len() == 0 {
			return true
		}
		for i := 0; i < filter.Len(); i++ {
			if filter.At(i) == m {
				return true
			}
		}
		return false
	}
	rml := make(RootMoveList, 0, legal.Len())
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if allowed(m) {
			rml = append(rml, RootEntry{Move: m, Score: ValueNA})
		}
	}
	return rml
}

// Len reports the number of root entries.
func (rml RootMoveList) Len() int { return len(rml) }

// Best returns the entry at index 0, or a zero entry if rml is empty.
func (rml RootMoveList) Best() RootEntry {
	if len(rml) == 0 {
		return RootEntry{Move: NoMove, Score: ValueNA}
	}
	return rml[0]
}

// Sort re-orders rml descending by score, stably: a tie keeps the order a
// prior iteration established (spec.md §3 ordering discipline).
func (rml RootMoveList) Sort() {
	sort.SliceStable(rml, func(i, j int) bool { return rml[i].Score > rml[j].Score })
}

// iterativeDeepening runs the 5-step loop of spec.md §4.2 and records the
// final best-move/ponder-move report into s.result.
func (s *Search) iterativeDeepening(p *position.Position) {
	if s.rootMoves.Len() == 0 {
		atomic.StoreInt32(&s.stopFlag, 1)
		s.result = BestMoveResult{Move: NoMove}
		return
	}

	maxDepth := MaxDepth
	if s.limits.Depth > 0 && s.limits.Depth < maxDepth {
		maxDepth = s.limits.Depth
	}

	for depth := 1; depth <= maxDepth; depth++ {
		s.currentDepth = depth
		s.currentMaxDepth = 0
		s.sendStatus(true)

		s.rootSearch(p, depth, ValueMin, ValueMax)

		s.rootMoves.Sort()
		atomic.AddInt32(&s.iterationsComplete, 1)

		s.checkStopCondition()
		if s.stopRequested() {
			break
		}
	}

	if s.timer != nil {
		s.timer.Stop()
	}
	s.sendStatus(true)

	best := s.rootMoves.Best()
	result := BestMoveResult{Move: best.Move, PonderMove: NoMove}
	if best.Pv.Len() >= 2 {
		result.PonderMove = best.Pv.At(1)
	}
	s.result = result
}

// rootSearch implements spec.md §4.3: fail-soft with only alpha
// advancement, because every root move must be scored to allow sorting.
func (s *Search) rootSearch(p *position.Position, depth int, alpha, beta Value) {
	s.nodesVisited++
	if depth > s.currentMaxDepth {
		s.currentMaxDepth = depth
	}
	s.pv[0].Clear()

	if s.stopRequested() {
		return
	}

	for i := range s.rootMoves {
		s.rootMoves[i].Score = ValueMin
	}

	for i := range s.rootMoves {
		move := s.rootMoves[i].Move
		s.currentMove = move
		s.currentMoveNumber = i + 1
		s.sendStatus(false)

		p.DoMove(move)
		var value Value
		if s.checkDrawRepAnd50(p) {
			value = ValueDraw
		} else {
			value = -s.searchInterior(p, depth-1, 1, -beta, -alpha)
		}
		p.UndoMove()

		if s.stopRequested() {
			return
		}

		s.rootMoves[i].Score = value

		if value > alpha {
			alpha = value
			savePV(move, s.pv[1], s.pv[0])
			s.rootMoves[i].Pv = *s.pv[0].Clone()
			s.sendMoveInfo(value)
		}
	}
}

// sendStatus emits a status record per spec.md §4.8. Forced emissions
// always fire; others only when >=1000ms have elapsed since the last one.
func (s *Search) sendStatus(forced bool) {
	if s.driver == nil {
		return
	}
	now := time.Now()
	if !forced && now.Sub(s.lastStatusTime) < time.Second {
		return
	}
	s.lastStatusTime = now
	s.driver.SendInfo(s.statusInfo())
	if s.currentMove != NoMove {
		s.driver.SendCurrentMove(s.currentMove, s.currentMoveNumber)
	}
}

// sendMoveInfo emits the unconditional move-info record for a new best
// root move, carrying its PV and mate-aware score (spec.md §4.8).
func (s *Search) sendMoveInfo(value Value) {
	if s.driver == nil {
		return
	}
	info := s.statusInfo()
	info.Value = value
	info.Pv = *s.pv[0].Clone()
	s.driver.SendInfo(info)
}

func (s *Search) statusInfo() protocol.Info {
	elapsed := time.Since(s.startTime)
	var nps uint64
	if elapsed >= time.Second {
		nps = uint64(float64(s.nodesVisited) * 1000 / float64(elapsed.Milliseconds()))
	}
	return protocol.Info{
		Depth:    s.currentDepth,
		SelDepth: s.currentMaxDepth,
		Value:    s.rootMoves.Best().Score,
		Nodes:    s.nodesVisited,
		Nps:      nps,
		Time:     elapsed,
	}
}

// savePV implements spec.md §4.6: dest becomes [move] followed by all of
// src, an O(ply) copy bounded by the MaxPly PV buffer.
func savePV(move Move, src, dest *moveslice.MoveSlice) {
	dest.Clear()
	dest.PushBack(move)
	*dest = append(*dest, *src...)
}
