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

package types

import (
	"strconv"
	"strings"
)

// Value is a centipawn evaluation or mate-distance score from the
// perspective of the side to move.
type Value int32

// MaxPly and MaxDepth bound recursion and the PV buffer (spec.md §3).
const (
	MaxPly   = 256
	MaxDepth = 64
)

// Search value constants. Required ordering (spec.md §6):
// CheckMateThreshold < CheckMate < Infinity, and CheckMate+MaxPly < Infinity.
const (
	ValueZero      Value = 0
	ValueDraw      Value = 0
	ValueNA        Value = -32_000
	ValueInfinity  Value = 20_000
	ValueCheckMate Value = 19_000

	// ValueCheckMateThreshold is the boundary above which a value encodes a
	// forced mate rather than a centipawn score.
	ValueCheckMateThreshold Value = ValueCheckMate - MaxPly

	ValueMin = -ValueCheckMate
	ValueMax = ValueCheckMate
)

// IsValid reports whether v lies within the representable score range.
func (v Value) IsValid() bool {
	return v >= -ValueInfinity && v <= ValueInfinity
}

// IsCheckMateValue reports whether v encodes a forced mate (spec.md §9
// "Mate-distance scoring").
func (v Value) IsCheckMateValue() bool {
	a := v
	if a < 0 {
		a = -a
	}
	return a > ValueCheckMateThreshold && a <= ValueCheckMate
}

// String renders v as a UCI score token: "cp <n>" or "mate <n>". ValueNA
// renders as "N/A".
func (v Value) String() string {
	if v == ValueNA {
		return "N/A"
	}
	if v.IsCheckMateValue() {
		a := v
		if a < 0 {
			a = -a
		}
		dist := int(ValueCheckMate-a) + 1
		mateIn := dist / 2
		var b strings.Builder
		b.WriteString("mate ")
		if v < 0 {
			b.WriteString("-")
		}
		b.WriteString(strconv.Itoa(mateIn))
		return b.String()
	}
	return "cp " + strconv.Itoa(int(v))
}
