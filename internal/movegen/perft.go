//
// bbcgo - a bitboard chess engine
//
// MIT License
//
// Copyright (c) 2020-2024 bbcgo contributors
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

package movegen

import (
	"github.com/cmk/bbcgo/internal/position"
	. "github.com/cmk/bbcgo/internal/types"
)

// Perft counts leaf nodes reachable from pos at the given depth by full
// legal-move enumeration (pseudo-legal generation filtered by Make),
// without evaluation or move ordering. It is the move generator's
// correctness oracle.
func Perft(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var list MoveList
	Generate(pos, &list, false)

	var nodes uint64
	for i := 0; i < list.Count; i++ {
		if !pos.Make(list.Moves[i], position.All) {
			continue
		}
		nodes += Perft(pos, depth-1)
		pos.Unmake()
	}
	return nodes
}
