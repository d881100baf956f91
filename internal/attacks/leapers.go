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

// Package attacks precomputes, once at process start, every attack set the
// move generator and evaluator need: pawn/knight/king leaper masks and
// bishop/rook sliding attacks via fancy magic bitboards.
package attacks

import (
	. "github.com/cmk/bbcgo/internal/types"
)

// Square coordinates as (row, col), row 0 = rank 8, col 0 = file a. Using
// coordinate arithmetic instead of bit shifts makes wrap-around suppression
// trivial: a step is legal iff both coordinates stay in [0,7].
func rowCol(sq Square) (int, int) {
	return int(sq) / 8, int(sq) % 8
}

func onBoard(row, col int) bool {
	return row >= 0 && row < 8 && col >= 0 && col < 8
}

func squareAt(row, col int) Square {
	return Square(row*8 + col)
}

var (
	pawnAttacks   [2][SqLength]Bitboard
	knightAttacks [SqLength]Bitboard
	kingAttacks   [SqLength]Bitboard
)

var knightDeltas = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingDeltas = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
	{0, 1}, {1, -1}, {1, 0}, {1, 1},
}

func initLeapers() {
	for sq := Square(0); sq < SqLength; sq++ {
		row, col := rowCol(sq)

		// White pawns attack toward lower rows (rank 8 at row 0); Black
		// pawns attack toward higher rows.
		var wb, bb Bitboard
		if onBoard(row-1, col-1) {
			wb = wb.Set(squareAt(row-1, col-1))
		}
		if onBoard(row-1, col+1) {
			wb = wb.Set(squareAt(row-1, col+1))
		}
		if onBoard(row+1, col-1) {
			bb = bb.Set(squareAt(row+1, col-1))
		}
		if onBoard(row+1, col+1) {
			bb = bb.Set(squareAt(row+1, col+1))
		}
		pawnAttacks[White][sq] = wb
		pawnAttacks[Black][sq] = bb

		var nb Bitboard
		for _, d := range knightDeltas {
			r, c := row+d[0], col+d[1]
			if onBoard(r, c) {
				nb = nb.Set(squareAt(r, c))
			}
		}
		knightAttacks[sq] = nb

		var kb Bitboard
		for _, d := range kingDeltas {
			r, c := row+d[0], col+d[1]
			if onBoard(r, c) {
				kb = kb.Set(squareAt(r, c))
			}
		}
		kingAttacks[sq] = kb
	}
}

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// KnightAttacks returns the knight attack set from sq.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the king (one-step) attack set from sq.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}
