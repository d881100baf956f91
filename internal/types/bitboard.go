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

import (
	"strings"

	"github.com/cmk/bbcgo/internal/bitutil"
)

// Bitboard is a 64-bit set with one bit per board square.
type Bitboard uint64

// Bb returns the one-bit Bitboard for the square.
func (sq Square) Bb() Bitboard {
	return Bitboard(1) << uint(sq)
}

// Set returns b with sq's bit set.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | sq.Bb()
}

// Clear returns b with sq's bit cleared.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ sq.Bb()
}

// Has reports whether sq's bit is set in b.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bitutil.PopCount(uint64(b))
}

// Lsb returns the least-significant set square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	idx := bitutil.LsbIndex(uint64(b))
	if idx < 0 {
		return SqNone
	}
	return Square(idx)
}

// PopLsb clears and returns the least-significant set square.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	*b = Bitboard(bitutil.ResetLsb(uint64(*b)))
	return sq
}

// String renders the bitboard as an 8x8 ASCII board, rank 8 at the top.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			if b.Has(sq) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// File masks.
var (
	FileABb, FileBBb, FileCBb, FileDBb, FileEBb, FileFBb, FileGBb, FileHBb Bitboard
	NotFileABb, NotFileHBb, NotFileABBb, NotFileGHBb                      Bitboard
	RankBb                                                                [9]Bitboard // RankBb[1..8]
)

func init() {
	for sq := Square(0); sq < SqLength; sq++ {
		switch sq.File() {
		case FileA:
			FileABb = FileABb.Set(sq)
		case FileB:
			FileBBb = FileBBb.Set(sq)
		case FileC:
			FileCBb = FileCBb.Set(sq)
		case FileD:
			FileDBb = FileDBb.Set(sq)
		case FileE:
			FileEBb = FileEBb.Set(sq)
		case FileF:
			FileFBb = FileFBb.Set(sq)
		case FileG:
			FileGBb = FileGBb.Set(sq)
		case FileH:
			FileHBb = FileHBb.Set(sq)
		}
		RankBb[sq.Rank()] = RankBb[sq.Rank()].Set(sq)
	}
	NotFileABb = ^FileABb
	NotFileHBb = ^FileHBb
	NotFileABBb = ^(FileABb | FileBBb)
	NotFileGHBb = ^(FileGBb | FileHBb)
}

// AdjacentFilesBb returns the bitboard of the one or two files adjacent to f.
func AdjacentFilesBb(f File) Bitboard {
	var b Bitboard
	if f > FileA {
		b |= fileBb(f - 1)
	}
	if f < FileH {
		b |= fileBb(f + 1)
	}
	return b
}

// FileBb returns the full-file bitboard containing f.
func FileBb(f File) Bitboard {
	return fileBb(f)
}

func fileBb(f File) Bitboard {
	switch f {
	case FileA:
		return FileABb
	case FileB:
		return FileBBb
	case FileC:
		return FileCBb
	case FileD:
		return FileDBb
	case FileE:
		return FileEBb
	case FileF:
		return FileFBb
	case FileG:
		return FileGBb
	default:
		return FileHBb
	}
}
