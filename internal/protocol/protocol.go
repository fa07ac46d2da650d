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

// Package protocol defines the callback interface the search uses to report
// progress, independent of whatever front end is driving it. It exists to
// break the import cycle between the search and a UCI handler that holds a
// reference to the search it drives.
package protocol

import (
	"time"

	"github.com/corvidchess/corvid/internal/moveslice"
	. "github.com/corvidchess/corvid/internal/types"
)

// Info is a snapshot of search progress, sent roughly once per completed
// iteration and periodically during a long-running iteration (spec.md §4.8).
type Info struct {
	Depth    int
	SelDepth int
	Value    Value
	Nodes    uint64
	Nps      uint64
	Time     time.Duration
	Pv       moveslice.MoveSlice
}

// BestMove is the final result of a search (spec.md §4.1 "stop").
type BestMove struct {
	Move       Move
	PonderMove Move
}

// Driver receives progress and result callbacks from a running search. A
// front end (e.g. the UCI loop) implements Driver to turn these into
// protocol output; tests can implement it to capture calls directly.
type Driver interface {
	// SendInfo reports progress: a completed iteration or a periodic status
	// update mid-iteration (spec.md §4.8).
	SendInfo(info Info)

	// SendCurrentMove reports the root move currently being searched at the
	// top of the current iteration.
	SendCurrentMove(move Move, moveNumber int)

	// SendBestMove reports the final search result (spec.md §4.1 "stop").
	SendBestMove(result BestMove)
}
