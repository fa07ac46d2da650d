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

package position

import (
	"math/rand"

	. "github.com/corvidchess/corvid/internal/types"
)

// Key is a 64-bit position hash used for repetition detection.
type Key uint64

type zobrist struct {
	pieces         [2][PieceTypeLength][SqLength]Key
	castlingRights [16]Key
	enPassantFile  [8]Key
	nextPlayer     Key
}

var zobristBase zobrist

func init() {
	// Fixed seed: zobrist keys only need to be stable within one run, not
	// across runs or builds.
	r := rand.New(rand.NewSource(1070372))
	for c := 0; c < 2; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := SqA1; sq < SqLength; sq++ {
				zobristBase.pieces[c][pt][sq] = Key(r.Uint64())
			}
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristBase.castlingRights[cr] = Key(r.Uint64())
	}
	for f := 0; f < 8; f++ {
		zobristBase.enPassantFile[f] = Key(r.Uint64())
	}
	zobristBase.nextPlayer = Key(r.Uint64())
}
