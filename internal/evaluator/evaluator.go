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

// Package evaluator assigns a static centipawn value to a position: the
// leaf evaluation the search calls whenever it wants a score without
// recursing further.
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/config"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// Evaluator computes a static value for a position, from the perspective of
// the side to move.
type Evaluator struct {
	log *logging.Logger
}

// New returns a ready-to-use Evaluator.
func New() *Evaluator {
	return &Evaluator{log: myLogging.GetLog()}
}

// Evaluate scores p from the perspective of the side to move. A position
// with insufficient mating material is always a draw, regardless of the
// material and positional terms below.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	if p.HasInsufficientMaterial() {
		return ValueDraw
	}

	// Evaluated from White's perspective first, flipped to the mover's
	// perspective at the end (negamax convention, spec.md §4.4).
	var score Value

	if config.Settings.Eval.UseMaterialEval {
		score += e.material(p, White) - e.material(p, Black)
	}
	if config.Settings.Eval.UsePositionalEval {
		score += e.positional(p, White) - e.positional(p, Black)
	}

	if p.NextPlayer() == Black {
		score = -score
	}
	score += Value(config.Settings.Eval.Tempo)

	return score
}

func (e *Evaluator) material(p *position.Position, c Color) Value {
	var total Value
	for sq := SqA1; sq < SqLength; sq++ {
		pc := p.Board(sq)
		if pc != PieceNone && pc.ColorOf() == c {
			total += pc.Value()
		}
	}
	return total
}

func (e *Evaluator) positional(p *position.Position, c Color) Value {
	endgame := e.material(p, c.Flip()) < 1300
	var total Value
	for sq := SqA1; sq < SqLength; sq++ {
		pc := p.Board(sq)
		if pc == PieceNone || pc.ColorOf() != c {
			continue
		}
		total += Value(pstValue(pc.TypeOf(), sq, c, endgame))
	}
	return total
}
