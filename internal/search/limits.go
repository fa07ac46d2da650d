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
	"errors"
	"time"

	"github.com/corvidchess/corvid/internal/moveslice"
	. "github.com/corvidchess/corvid/internal/types"
)

// errInvalidArgument is returned by every Limits constructor on a violated
// precondition. Construction is the only place search arguments are
// validated; nothing downstream re-checks them.
var errInvalidArgument = errors.New("search: invalid argument")

// Limits configures one search: what bounds it, and whether a timer and
// time management are in play. A zero Limits is not meaningful on its own;
// build one with the New*Search constructors below.
type Limits struct {
	Infinite bool
	Ponder   bool

	Depth int
	Nodes uint64

	// Moves restricts the root search to this set when non-empty
	// (spec.md §3 "SearchMoves filter").
	Moves moveslice.MoveSlice

	// TimeControl is true for any mode that arms the Search Timer: fixed
	// time, clock-derived time, or ponder (armed lazily on ponderhit).
	TimeControl bool
	MoveTime    time.Duration

	WhiteTime, BlackTime time.Duration
	WhiteInc, BlackInc   time.Duration
	MovesToGo            int

	// TimeManagement enables the adaptive stop-condition checks of §4.7;
	// it is set by the clock and ponder constructors, not by a fixed
	// "time" budget (spec.md §4.1, §9).
	TimeManagement bool
}

// NewDepthSearch limits the iterative deepener to depth plies, 1..MaxDepth.
func NewDepthSearch(depth int) (Limits, error) {
	if depth < 1 || depth > MaxDepth {
		return Limits{}, errInvalidArgument
	}
	return Limits{Depth: depth}, nil
}

// NewNodesSearch limits the search to a hard node ceiling.
func NewNodesSearch(nodes uint64) (Limits, error) {
	if nodes < 1 {
		return Limits{}, errInvalidArgument
	}
	return Limits{Depth: MaxDepth, Nodes: nodes}, nil
}

// NewTimeSearch gives the search a fixed wall-clock budget. This arms the
// timer but does not enable time management: the search runs the full
// budget rather than stopping early on a decisive result.
func NewTimeSearch(d time.Duration) (Limits, error) {
	if d < time.Millisecond {
		return Limits{}, errInvalidArgument
	}
	return Limits{Depth: MaxDepth, TimeControl: true, MoveTime: d}, nil
}

// NewMovesSearch restricts the root search to moves, running otherwise
// unbounded (to MaxDepth) until stopped.
func NewMovesSearch(moves moveslice.MoveSlice) (Limits, error) {
	if moves.Len() == 0 {
		return Limits{}, errInvalidArgument
	}
	return Limits{Depth: MaxDepth, Moves: moves}, nil
}

// NewInfiniteSearch runs until stop() is called explicitly.
func NewInfiniteSearch() Limits {
	return Limits{Depth: MaxDepth, Infinite: true}
}

// NewClockSearch derives a time budget from the remaining clock and enables
// time management (spec.md §4.1 clock→time derivation, §4.7).
func NewClockSearch(whiteTime, blackTime, whiteInc, blackInc time.Duration, movesToGo int) (Limits, error) {
	if whiteTime < time.Millisecond || blackTime < time.Millisecond {
		return Limits{}, errInvalidArgument
	}
	if whiteInc < 0 || blackInc < 0 || movesToGo < 0 {
		return Limits{}, errInvalidArgument
	}
	return Limits{
		Depth:          MaxDepth,
		TimeControl:    true,
		TimeManagement: true,
		WhiteTime:      whiteTime,
		BlackTime:      blackTime,
		WhiteInc:       whiteInc,
		BlackInc:       blackInc,
		MovesToGo:      movesToGo,
	}, nil
}

// NewPonderSearch is identical to NewClockSearch except the timer is not
// armed until a ponderhit signal arrives (spec.md §3 "ponder").
func NewPonderSearch(whiteTime, blackTime, whiteInc, blackInc time.Duration, movesToGo int) (Limits, error) {
	l, err := NewClockSearch(whiteTime, blackTime, whiteInc, blackInc, movesToGo)
	if err != nil {
		return Limits{}, err
	}
	l.Ponder = true
	return l, nil
}
