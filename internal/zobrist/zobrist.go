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

// Package zobrist holds the random keys used to incrementally hash a
// position, and the helpers to combine them.
package zobrist

import (
	. "github.com/cmk/bbcgo/internal/types"
)

// Key is a Zobrist hash value.
type Key uint64

var (
	// PieceKey is named with a Key suffix, rather than Piece, because this
	// package dot-imports internal/types and Piece is already that
	// package's piece-kind type.
	PieceKey  [NumPieces][SqLength]Key
	EnPassant [SqLength]Key
	Castle    [16]Key
	Side      Key
)

// seed is fixed so hashes are reproducible across runs and platforms.
const seed uint64 = 1804289383

// keyRand is the same xorshift generator the magic-bitboard search uses,
// seeded independently so the two table sets never correlate.
type keyRand struct{ s uint64 }

func (r *keyRand) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

func init() {
	r := &keyRand{s: seed}
	for pc := 0; pc < NumPieces; pc++ {
		for sq := Square(0); sq < SqLength; sq++ {
			PieceKey[pc][sq] = Key(r.next())
		}
	}
	for sq := Square(0); sq < SqLength; sq++ {
		EnPassant[sq] = Key(r.next())
	}
	for cr := 0; cr < 16; cr++ {
		Castle[cr] = Key(r.next())
	}
	Side = Key(r.next())
}

// FullHash computes the Zobrist key of a position from scratch: XOR of
// piece[k][s] for every occupied square, ep[ep] if an en-passant target is
// set, castle[castle] unconditionally, and side iff black to move.
func FullHash(pieceAt func(sq Square) Piece, ep Square, castle CastlingRights, sideToMove Color) Key {
	var h Key
	for sq := Square(0); sq < SqLength; sq++ {
		if p := pieceAt(sq); p != NoPiece {
			h ^= PieceKey[p][sq]
		}
	}
	if ep.IsValid() {
		h ^= EnPassant[ep]
	}
	h ^= Castle[castle]
	if sideToMove == Black {
		h ^= Side
	}
	return h
}
