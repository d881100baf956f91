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

package types

// CastlingRights packs the four castling availability bits.
type CastlingRights uint8

// Castling right bits.
const (
	CastleWK CastlingRights = 1 // White kingside
	CastleWQ CastlingRights = 2 // White queenside
	CastleBK CastlingRights = 4 // Black kingside
	CastleBQ CastlingRights = 8 // Black queenside
	CastleAll CastlingRights = CastleWK | CastleWQ | CastleBK | CastleBQ
)

// Has reports whether the given right is present.
func (cr CastlingRights) Has(right CastlingRights) bool {
	return cr&right != 0
}

// crMask, indexed by square, clears the castling rights that become
// invalid when a move touches that square (as source or target): the
// king's start square clears both of its color's rights, a rook's start
// square clears the matching right, every other square leaves rights
// untouched (mask is CastleAll).
var crMask [SqLength]CastlingRights

func init() {
	for i := range crMask {
		crMask[i] = CastleAll
	}
	crMask[SqE1] = CastleAll &^ (CastleWK | CastleWQ)
	crMask[SqE8] = CastleAll &^ (CastleBK | CastleBQ)
	crMask[SqH1] = CastleAll &^ CastleWK
	crMask[SqA1] = CastleAll &^ CastleWQ
	crMask[SqH8] = CastleAll &^ CastleBK
	crMask[SqA8] = CastleAll &^ CastleBQ
}

// UpdateCastlingRights returns the castling rights remaining after a move
// between from and to: new = old & crMask[from] & crMask[to].
func UpdateCastlingRights(cr CastlingRights, from, to Square) CastlingRights {
	return cr & crMask[from] & crMask[to]
}

func (cr CastlingRights) String() string {
	if cr == 0 {
		return "-"
	}
	s := ""
	if cr.Has(CastleWK) {
		s += "K"
	}
	if cr.Has(CastleWQ) {
		s += "Q"
	}
	if cr.Has(CastleBK) {
		s += "k"
	}
	if cr.Has(CastleBQ) {
		s += "q"
	}
	return s
}
