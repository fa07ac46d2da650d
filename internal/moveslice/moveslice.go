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

// Package moveslice provides slice helpers for Move: the root move list and
// the per-ply principal variation buffer.
package moveslice

import (
	"fmt"
	"strings"

	. "github.com/corvidchess/corvid/internal/types"
)

// MoveSlice is a slice of moves, e.g. the root move list.
type MoveSlice []Move

// New creates a move slice with the given capacity and zero elements.
func New(capacity int) *MoveSlice {
	moves := make([]Move, 0, capacity)
	return (*MoveSlice)(&moves)
}

// Len returns the number of moves currently stored.
func (ms *MoveSlice) Len() int { return len(*ms) }

// PushBack appends m at the end of the slice.
func (ms *MoveSlice) PushBack(m Move) { *ms = append(*ms, m) }

// At returns the move at index i. Panics if i is out of bounds.
func (ms *MoveSlice) At(i int) Move {
	if i < 0 || i >= len(*ms) {
		panic("moveslice: index out of bounds")
	}
	return (*ms)[i]
}

// Set overwrites the move at index i. Panics if i is out of bounds.
func (ms *MoveSlice) Set(i int, m Move) {
	if i < 0 || i >= len(*ms) {
		panic("moveslice: index out of bounds")
	}
	(*ms)[i] = m
}

// Filter removes every element for which f(index) is false, rebuilding the
// slice in place over the existing array.
func (ms *MoveSlice) Filter(f func(index int) bool) {
	b := (*ms)[:0]
	for i, m := range *ms {
		if f(i) {
			b = append(b, m)
		}
	}
	*ms = b
}

// Clone returns a deep copy of ms.
func (ms *MoveSlice) Clone() *MoveSlice {
	dest := make([]Move, ms.Len())
	copy(dest, *ms)
	return (*MoveSlice)(&dest)
}

// Clear empties the slice while retaining its capacity.
func (ms *MoveSlice) Clear() { *ms = (*ms)[:0] }

// String renders ms for diagnostics.
func (ms *MoveSlice) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MoveSlice[%d]{", ms.Len())
	for i, m := range *ms {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.String())
	}
	b.WriteString("}")
	return b.String()
}

// StringUci renders ms as a space-separated list of UCI long algebraic
// moves, as used in a "searchmoves" echo or a PV line.
func (ms *MoveSlice) StringUci() string {
	var b strings.Builder
	for i, m := range *ms {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(m.StringUci())
	}
	return b.String()
}
