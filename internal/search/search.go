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

// Package search is the engine's search core: iterative deepening over a
// fail-soft negamax alpha-beta interior search with quiescence at the
// horizon, driven by a worker goroutine that a Controller starts, stops and
// ponder-hits. It has no opening book, no transposition table and no
// parallelism - a single worker thread is the whole of it.
package search

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/evaluator"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/moveslice"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/protocol"
	. "github.com/corvidchess/corvid/internal/types"
)

// Search owns one run of the worker thread described in spec.md §5: a
// Controller builds it, starts it exactly once, and may stop it or report a
// ponderhit while it runs. A Search is not reusable across games; build a
// new one per search the way the teacher's NewSearch() is called fresh for
// each StartSearch.
type Search struct {
	log *logging.Logger

	driver protocol.Driver
	eval   *evaluator.Evaluator

	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	// stopFlag and timerStopped are monotone booleans (spec.md §5, §9):
	// only ever written false->true, so unsynchronized reads are safe and
	// a missed observation only delays the next poll point by one node.
	stopFlag     int32
	timerStopped int32
	timer        *time.Timer

	startTime      time.Time
	position       *position.Position
	limits         Limits
	timeLimit      time.Duration
	timeManagement bool

	nodesVisited uint64

	mg []*movegen.Movegen
	pv []*moveslice.MoveSlice

	rootMoves RootMoveList

	currentDepth       int
	currentMaxDepth    int
	currentMove        Move
	currentMoveNumber  int
	iterationsComplete int32

	lastStatusTime time.Time

	result BestMoveResult
}

// BestMoveResult is the Controller's final report (spec.md §4.2, §6).
type BestMoveResult struct {
	Move       Move
	PonderMove Move
}

// New returns a Search ready for a single Start call. driver receives
// progress and result callbacks; eval provides the static evaluation used
// at quiescence leaves. driver may be nil to run silently (used by tests
// that only need the returned result).
func New(driver protocol.Driver, eval *evaluator.Evaluator) *Search {
	return &Search{
		log:           myLogging.GetSearchLog(),
		driver:        driver,
		eval:          eval,
		initSemaphore: semaphore.NewWeighted(1),
		isRunning:     semaphore.NewWeighted(1),
	}
}

// Start spawns the worker on a clone of p under limits. It blocks the
// caller only until the worker has populated the root move list (the
// one-shot release of spec.md §4.1/§5), so that any stop()/ponderhit()
// issued immediately after Start returns cannot race root setup.
func (s *Search) Start(p *position.Position, limits Limits) {
	_ = s.initSemaphore.Acquire(context.Background(), 1)
	go s.run(p.Clone(), limits)
	_ = s.initSemaphore.Acquire(context.Background(), 1)
	s.initSemaphore.Release(1)
}

// Stop sets the stop flag and waits up to 5 seconds for the worker to join
// (spec.md §4.1, §5). It is best-effort: if the deadline elapses the call
// returns anyway and the worker is left to finish on its own.
func (s *Search) Stop() {
	atomic.StoreInt32(&s.stopFlag, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.isRunning.Acquire(ctx, 1)
	s.isRunning.Release(1)
}

// PonderHit arms the time-management timer with the configured time
// budget and, if at least one full iteration has already completed,
// immediately re-evaluates the stop-condition check (spec.md §4.1, §9 -
// intentional, even though the timer was just armed: it handles the case
// where the ponder search is already a deep, decisive result).
func (s *Search) PonderHit() {
	if !s.limits.Ponder {
		return
	}
	s.armTimer(s.timeLimit)
	if atomic.LoadInt32(&s.iterationsComplete) > 0 {
		s.checkStopCondition()
	}
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

func (s *Search) stopRequested() bool {
	if atomic.LoadInt32(&s.stopFlag) == 1 {
		return true
	}
	if s.limits.Nodes > 0 && s.nodesVisited >= s.limits.Nodes {
		atomic.StoreInt32(&s.stopFlag, 1)
		return true
	}
	return false
}

// run is the worker thread body: spawned by Start, it owns position for
// the duration of the search (spec.md §5 "Board ... owned by the worker
// thread").
func (s *Search) run(p *position.Position, limits Limits) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("search already running")
		s.initSemaphore.Release(1)
		return
	}
	defer s.isRunning.Release(1)

	s.startTime = time.Now()
	s.position = p
	s.limits = limits
	s.nodesVisited = 0
	s.lastStatusTime = s.startTime
	atomic.StoreInt32(&s.iterationsComplete, 0)

	s.mg = make([]*movegen.Movegen, MaxPly+1)
	s.pv = make([]*moveslice.MoveSlice, MaxPly+1)
	for i := range s.mg {
		s.mg[i] = movegen.New()
		s.pv[i] = moveslice.New(MaxPly + 1)
	}

	s.rootMoves = newRootMoveList(s.mg[0].GenerateLegalMoves(p, movegen.GenAll, moveslice.New(64)), limits.Moves)

	s.timeManagement = limits.TimeManagement
	if limits.TimeControl {
		s.timeLimit = s.deriveTimeLimit(p, limits)
		if limits.TimeControl && !limits.Ponder {
			s.armTimer(s.timeLimit)
		}
	}

	// Release the init-phase lock: Start() may now return to its caller.
	s.initSemaphore.Release(1)

	s.iterativeDeepening(p)

	if s.timer != nil {
		s.timer.Stop()
	}
	atomic.StoreInt32(&s.stopFlag, 1)

	if s.driver != nil {
		s.driver.SendBestMove(protocol.BestMove{Move: s.result.Move, PonderMove: s.result.PonderMove})
	}
}

// deriveTimeLimit implements the exact clock->time formula of spec.md §4.1.
func (s *Search) deriveTimeLimit(p *position.Position, limits Limits) time.Duration {
	if limits.MoveTime > 0 {
		return limits.MoveTime
	}

	var timeLeft, inc time.Duration
	if p.NextPlayer() == White {
		timeLeft, inc = limits.WhiteTime, limits.WhiteInc
	} else {
		timeLeft, inc = limits.BlackTime, limits.BlackInc
	}

	movesToGo := limits.MovesToGo
	if movesToGo <= 0 {
		movesToGo = config.Settings.Search.MovesToGoDefault
	}

	overhead := time.Duration(config.Settings.Search.MoveOverheadMs) * time.Millisecond
	maxSearch := time.Duration(math.Floor(float64(timeLeft)*0.95)) - overhead
	if maxSearch <= 0 {
		maxSearch = time.Nanosecond
	}

	t := (maxSearch + time.Duration(movesToGo-1)*inc) / time.Duration(movesToGo)
	if t > maxSearch {
		t = maxSearch
	}
	return t
}

// armTimer schedules the one-shot deadline of spec.md §4.9. On firing it
// always sets timerStopped; it additionally force-stops the search unless
// time management is enabled and no iteration has completed yet, in which
// case the next stop-condition check (run from iterativeDeepening, which
// observes timerStopped) makes the call instead. This guarantees the
// search always completes at least one iteration before it can be cut off
// by the clock.
func (s *Search) armTimer(d time.Duration) {
	s.timer = time.AfterFunc(d, func() {
		atomic.StoreInt32(&s.timerStopped, 1)
		if s.timeManagement && atomic.LoadInt32(&s.iterationsComplete) == 0 {
			return
		}
		atomic.StoreInt32(&s.stopFlag, 1)
	})
}

// checkStopCondition implements spec.md §4.7. It is only active when a
// timer was armed and time management is enabled; otherwise the deepener's
// own depth/node limits are the only way to stop.
func (s *Search) checkStopCondition() {
	if s.timer == nil || !s.timeManagement {
		return
	}
	if atomic.LoadInt32(&s.timerStopped) == 1 {
		atomic.StoreInt32(&s.stopFlag, 1)
		return
	}
	if s.rootMoves.Len() == 1 {
		atomic.StoreInt32(&s.stopFlag, 1)
		return
	}
	best := s.rootMoves.Best()
	score := best.Score
	abs := score
	if abs < 0 {
		abs = -abs
	}
	if abs >= ValueCheckMateThreshold && Value(s.currentDepth) >= ValueCheckMate-abs {
		atomic.StoreInt32(&s.stopFlag, 1)
	}
}

func (s *Search) checkDrawRepAnd50(p *position.Position) bool {
	return p.IsRepetition() || p.HalfMoveClock() >= 100
}
