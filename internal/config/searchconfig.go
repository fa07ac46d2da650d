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

package config

// searchConfiguration holds the tunable knobs of the plain alpha-beta
// search: no opening book, transposition table, null-move pruning or late
// move reductions - this engine does not implement any of those.
type searchConfiguration struct {
	// UsePonder gates whether a "go ponder" request is honored (internal/uci's
	// readSearchLimits) and is exposed as the "Ponder" setoption checkbox.
	UsePonder bool

	// UseQuiescence and UseQSStandpat gate the quiescence extension and its
	// stand-pat lower bound (internal/search/alphabeta.go's quiescence).
	UseQuiescence bool
	UseQSStandpat bool

	// MovesToGoDefault is used in the clock-to-time derivation when the
	// UCI "go" command omits movestogo (search.Search.deriveTimeLimit).
	MovesToGoDefault int

	// MoveOverheadMs is subtracted from the computed time budget to leave
	// headroom for engine/GUI communication latency
	// (search.Search.deriveTimeLimit).
	MoveOverheadMs int64
}

func init() {
	Settings.Search.UsePonder = true

	Settings.Search.UseQuiescence = true
	Settings.Search.UseQSStandpat = true

	Settings.Search.MovesToGoDefault = 40
	Settings.Search.MoveOverheadMs = 1000
}
