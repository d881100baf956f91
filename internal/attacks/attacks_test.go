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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/cmk/bbcgo/internal/types"
)

func TestKnightAttacksCorner(t *testing.T) {
	// a knight on a8 (row 0, col 0) has exactly two targets: b6 and c7.
	att := KnightAttacks(SqA8)
	assert.Equal(t, 2, att.PopCount())
	assert.True(t, att.Has(SqC7))
	assert.True(t, att.Has(SqB6))
}

func TestKingAttacksCenter(t *testing.T) {
	att := KingAttacks(SqE4)
	assert.Equal(t, 8, att.PopCount())
}

func TestPawnAttacksDirection(t *testing.T) {
	// White pawns attack toward rank 8->1 decreasing row index, i.e. toward
	// higher ranks on the board; Black the opposite.
	wAtt := PawnAttacks(White, SqE4)
	assert.True(t, wAtt.Has(SqD5))
	assert.True(t, wAtt.Has(SqF5))

	bAtt := PawnAttacks(Black, SqE4)
	assert.True(t, bAtt.Has(SqD3))
	assert.True(t, bAtt.Has(SqF3))
}

func TestRookAttacksEmptyBoard(t *testing.T) {
	att := RookAttacks(SqA1, 0)
	assert.Equal(t, 14, att.PopCount())
}

func TestRookAttacksBlocked(t *testing.T) {
	occ := SqA4.Bb() | SqD1.Bb()
	att := RookAttacks(SqA1, occ)
	assert.True(t, att.Has(SqA2))
	assert.True(t, att.Has(SqA3))
	assert.True(t, att.Has(SqA4))
	assert.False(t, att.Has(SqA5))
	assert.True(t, att.Has(SqB1))
	assert.True(t, att.Has(SqC1))
	assert.True(t, att.Has(SqD1))
	assert.False(t, att.Has(SqE1))
}

func TestBishopAttacksEmptyBoard(t *testing.T) {
	att := BishopAttacks(SqD4, 0)
	assert.Equal(t, 13, att.PopCount())
}

func TestQueenAttacksCombinesBoth(t *testing.T) {
	q := QueenAttacks(SqD4, 0)
	r := RookAttacks(SqD4, 0)
	b := BishopAttacks(SqD4, 0)
	assert.Equal(t, r|b, q)
}

func TestMagicAttacksMatchSlidingReference(t *testing.T) {
	// Spot-check every square against the brute-force slider for a handful
	// of synthetic occupancies, including empty and fully populated boards.
	occupancies := []Bitboard{0, ^Bitboard(0), SqD4.Bb() | SqD5.Bb() | SqB2.Bb() | SqG7.Bb()}
	for sq := Square(0); sq < SqLength; sq++ {
		for _, occ := range occupancies {
			assert.Equal(t, slidingAttack(rookDirs, sq, occ), RookAttacks(sq, occ), "rook mismatch at %s", sq)
			assert.Equal(t, slidingAttack(bishopDirs, sq, occ), BishopAttacks(sq, occ), "bishop mismatch at %s", sq)
		}
	}
}
