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
	"math/bits"

	. "github.com/cmk/bbcgo/internal/types"
)

// magicEntry holds the fancy-magic lookup parameters for one square of one
// sliding piece type. Attacks are looked up as
//
//	table[(occupied&mask)*magic>>shift]
type magicEntry struct {
	mask  Bitboard
	magic uint64
	shift uint
	table []Bitboard
}

var (
	bishopMagics [SqLength]magicEntry
	rookMagics   [SqLength]magicEntry
)

var rookDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
var bishopDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// slidingAttack rays out from sq along dirs over the given occupancy,
// stopping (inclusive) at the first occupied square in each direction.
func slidingAttack(dirs [4][2]int, sq Square, occ Bitboard) Bitboard {
	var attacks Bitboard
	row, col := rowCol(sq)
	for _, d := range dirs {
		r, c := row+d[0], col+d[1]
		for onBoard(r, c) {
			s := squareAt(r, c)
			attacks = attacks.Set(s)
			if occ.Has(s) {
				break
			}
			r += d[0]
			c += d[1]
		}
	}
	return attacks
}

// relevantMask computes the relevant occupancy mask for a slider on sq: the
// full attack set on an empty board, minus board edges the slider's own ray
// always reaches regardless of what's on them (it cannot see past the
// edge), except edges coincident with sq's own rank or file which still
// matter. Direction-set agnostic, so it serves bishop and rook alike.
func relevantMask(dirs [4][2]int, sq Square) Bitboard {
	full := slidingAttack(dirs, sq, 0)
	edges := (RankBb[1] | RankBb[8]) &^ RankBb[sq.Rank()]
	edges |= (FileABb | FileHBb) &^ FileBb(sq.File())
	return full &^ edges
}

// occupancySubsets enumerates every subset of mask bits via the
// Carry-Rippler trick: b = (b - mask) & mask cycles through all 2^popcount
// subsets before returning to zero.
func occupancySubsets(mask Bitboard) []Bitboard {
	subsets := make([]Bitboard, 0, 1<<uint(mask.PopCount()))
	var b Bitboard
	for {
		subsets = append(subsets, b)
		b = (b - mask) & mask
		if b == 0 {
			break
		}
	}
	return subsets
}

// findMagic searches for a magic multiplier that maps every occupancy
// subset of mask to a collision-free index into a table of size
// 1<<popcount(mask), verified against the attack sets computed by
// slidingAttack. Uses an epoch counter instead of clearing the attack
// table between failed candidates.
func findMagic(dirs [4][2]int, sq Square, mask Bitboard) (uint64, []Bitboard) {
	relevantBits := mask.PopCount()
	shift := uint(64 - relevantBits)
	subsets := occupancySubsets(mask)

	reference := make([]Bitboard, len(subsets))
	for i, occ := range subsets {
		reference[i] = slidingAttack(dirs, sq, occ)
	}

	size := 1 << uint(relevantBits)
	table := make([]Bitboard, size)
	epoch := make([]int, size)
	cur := 0

	rng := newPrng(0x9E3779B97F4A7C15 ^ uint64(sq)*0x2545F4914F6CDD1D)

	for {
		magic := rng.sparseRand()
		if bits.OnesCount64(uint64(mask)*magic>>56) < 6 {
			continue
		}
		cur++
		ok := true
		for i, occ := range subsets {
			idx := (uint64(occ) * magic) >> shift
			if epoch[idx] != cur {
				epoch[idx] = cur
				table[idx] = reference[i]
			} else if table[idx] != reference[i] {
				ok = false
				break
			}
		}
		if ok {
			return magic, table
		}
	}
}

func initMagics() {
	for sq := Square(0); sq < SqLength; sq++ {
		bMask := relevantMask(bishopDirs, sq)
		bMagic, bTable := findMagic(bishopDirs, sq, bMask)
		bishopMagics[sq] = magicEntry{mask: bMask, magic: bMagic, shift: uint(64 - bMask.PopCount()), table: bTable}

		rMask := relevantMask(rookDirs, sq)
		rMagic, rTable := findMagic(rookDirs, sq, rMask)
		rookMagics[sq] = magicEntry{mask: rMask, magic: rMagic, shift: uint(64 - rMask.PopCount()), table: rTable}
	}
}

// BishopAttacks returns the bishop attack set from sq given the board
// occupancy occ.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	e := &bishopMagics[sq]
	idx := (uint64(occ&e.mask) * e.magic) >> e.shift
	return e.table[idx]
}

// RookAttacks returns the rook attack set from sq given the board
// occupancy occ.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	e := &rookMagics[sq]
	idx := (uint64(occ&e.mask) * e.magic) >> e.shift
	return e.table[idx]
}

// QueenAttacks returns the combined bishop+rook attack set from sq.
func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return BishopAttacks(sq, occ) | RookAttacks(sq, occ)
}

func init() {
	initLeapers()
	initMagics()
}
