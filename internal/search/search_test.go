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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/evaluator"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/moveslice"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/protocol"
	. "github.com/corvidchess/corvid/internal/types"
)

func (s *Search) rootMoveCountFor(p *position.Position) int {
	return movegen.New().GenerateLegalMoves(p, movegen.GenAll, moveslice.New(64)).Len()
}

func movegenMoveFromUci(p *position.Position, uciMove string) Move {
	return movegen.New().MoveFromUci(p, uciMove)
}

func moveSliceOf(raw ...uint32) moveslice.MoveSlice {
	ms := moveslice.New(len(raw) + 1)
	for _, v := range raw {
		ms.PushBack(Move(v))
	}
	return *ms
}

// recordingDriver captures every callback a Search issues, for assertions
// that don't need real UCI output.
type recordingDriver struct {
	mu         sync.Mutex
	infos      []protocol.Info
	bestMove   protocol.BestMove
	gotBest    bool
	currMoves  int
}

func (d *recordingDriver) SendInfo(info protocol.Info) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.infos = append(d.infos, info)
}

func (d *recordingDriver) SendCurrentMove(move Move, moveNumber int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.currMoves++
}

func (d *recordingDriver) SendBestMove(result protocol.BestMove) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bestMove = result
	d.gotBest = true
}

func (d *recordingDriver) waitForBestMove(t *testing.T, timeout time.Duration) protocol.BestMove {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		d.mu.Lock()
		got := d.gotBest
		best := d.bestMove
		d.mu.Unlock()
		if got {
			return best
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("search did not report a best move in time")
	return protocol.BestMove{}
}

func newTestSearch() (*Search, *recordingDriver) {
	driver := &recordingDriver{}
	return New(driver, evaluator.New()), driver
}

// Scenario 1 (spec.md §8): starting position, depth 1.
func TestSearch_StartPositionDepth1(t *testing.T) {
	s, driver := newTestSearch()
	p := position.New()
	limits, err := NewDepthSearch(1)
	assert.NoError(t, err)

	assert.EqualValues(t, 20, s.rootMoveCountFor(p))

	s.Start(p, limits)
	best := driver.waitForBestMove(t, 5*time.Second)

	assert.NotEqual(t, NoMove, best.Move)
	assert.GreaterOrEqual(t, s.nodesVisited, uint64(21))
}

// Scenario 2 (spec.md §8): Fool's mate, depth 2 from Black finds Qh4#.
func TestSearch_FoolsMate(t *testing.T) {
	s, driver := newTestSearch()
	p := position.New()
	for _, uci := range []string{"f2f3", "e7e5", "g2g4"} {
		m := movegenMoveFromUci(p, uci)
		assert.True(t, m.IsValid(), "move %s must be legal", uci)
		p.DoMove(m)
	}

	limits, err := NewDepthSearch(2)
	assert.NoError(t, err)
	s.Start(p, limits)
	best := driver.waitForBestMove(t, 5*time.Second)

	assert.Equal(t, "d8h4", best.Move.StringUci())
}

// Scenario 3 (spec.md §8): stalemate position reports a null best-move.
func TestSearch_Stalemate(t *testing.T) {
	s, driver := newTestSearch()
	p, err := position.NewFen("8/8/8/8/8/1qk5/8/K7 w - - 0 1")
	assert.NoError(t, err)

	limits, err := NewDepthSearch(1)
	assert.NoError(t, err)
	s.Start(p, limits)
	best := driver.waitForBestMove(t, 5*time.Second)

	assert.Equal(t, NoMove, best.Move)
}

// Scenario 4 (spec.md §8): one legal move with time management stops after
// iteration 1.
func TestSearch_OneLegalMoveStopsAfterFirstIteration(t *testing.T) {
	s, driver := newTestSearch()
	p, err := position.NewFen("k5r1/8/8/8/8/8/8/7K w - - 0 1")
	assert.NoError(t, err)

	forced := s.rootMoveCountFor(p)
	if forced != 1 {
		t.Skipf("fixture has %d legal moves, want exactly 1", forced)
	}

	limits, err := NewClockSearch(60*time.Second, 60*time.Second, 0, 0, 0)
	assert.NoError(t, err)
	start := time.Now()
	s.Start(p, limits)
	best := driver.waitForBestMove(t, 5*time.Second)

	assert.Less(t, time.Since(start), time.Second)
	assert.NotEqual(t, NoMove, best.Move)
}

// Scenario 5 (spec.md §8): nodes=1000 terminates within the budget window.
func TestSearch_NodesBudget(t *testing.T) {
	s, driver := newTestSearch()
	p := position.New()
	limits, err := NewNodesSearch(1000)
	assert.NoError(t, err)

	s.Start(p, limits)
	best := driver.waitForBestMove(t, 5*time.Second)

	assert.NotEqual(t, NoMove, best.Move)
	assert.GreaterOrEqual(t, s.nodesVisited, uint64(1000))
}

// Scenario 6 (spec.md §8): infinite search, stop() after ~100ms returns
// within 5s with a non-null best-move.
func TestSearch_InfiniteThenStop(t *testing.T) {
	s, driver := newTestSearch()
	p := position.New()
	limits := NewInfiniteSearch()

	start := time.Now()
	s.Start(p, limits)
	time.Sleep(100 * time.Millisecond)
	s.Stop()
	best := driver.waitForBestMove(t, 5*time.Second)

	assert.Less(t, time.Since(start), 5*time.Second)
	assert.NotEqual(t, NoMove, best.Move)
}

func Test_savePV(t *testing.T) {
	src := moveSliceOf(1234, 2345, 3456, 4567)
	dest := moveSliceOf()

	savePV(Move(9999), &src, &dest)

	assert.EqualValues(t, 5, dest.Len())
	assert.EqualValues(t, 9999, dest.At(0))
	assert.EqualValues(t, 4567, dest.At(4))
}

func TestRootMoveList_Sort(t *testing.T) {
	rml := RootMoveList{
		{Move: Move(1), Score: 10},
		{Move: Move(2), Score: 30},
		{Move: Move(3), Score: 20},
	}
	rml.Sort()
	assert.Equal(t, Move(2), rml.Best().Move)
	assert.EqualValues(t, 30, rml[0].Score)
	assert.EqualValues(t, 20, rml[1].Score)
	assert.EqualValues(t, 10, rml[2].Score)
}
