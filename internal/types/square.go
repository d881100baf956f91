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

import "fmt"

// Square identifies one of the 64 squares of a chess board. Squares are
// numbered row-major from rank 8 down to rank 1, files a through h left to
// right, so SqA8 is 0 and SqH1 is 63. SqNone is the sentinel "no square".
type Square int8

// Board squares, a8=0 .. h1=63.
const (
	SqA8 Square = 0
	SqB8 Square = 1
	SqC8 Square = 2
	SqD8 Square = 3
	SqE8 Square = 4
	SqF8 Square = 5
	SqG8 Square = 6
	SqH8 Square = 7
	SqA7 Square = 8
	SqB7 Square = 9
	SqC7 Square = 10
	SqD7 Square = 11
	SqE7 Square = 12
	SqF7 Square = 13
	SqG7 Square = 14
	SqH7 Square = 15
	SqA6 Square = 16
	SqB6 Square = 17
	SqC6 Square = 18
	SqD6 Square = 19
	SqE6 Square = 20
	SqF6 Square = 21
	SqG6 Square = 22
	SqH6 Square = 23
	SqA5 Square = 24
	SqB5 Square = 25
	SqC5 Square = 26
	SqD5 Square = 27
	SqE5 Square = 28
	SqF5 Square = 29
	SqG5 Square = 30
	SqH5 Square = 31
	SqA4 Square = 32
	SqB4 Square = 33
	SqC4 Square = 34
	SqD4 Square = 35
	SqE4 Square = 36
	SqF4 Square = 37
	SqG4 Square = 38
	SqH4 Square = 39
	SqA3 Square = 40
	SqB3 Square = 41
	SqC3 Square = 42
	SqD3 Square = 43
	SqE3 Square = 44
	SqF3 Square = 45
	SqG3 Square = 46
	SqH3 Square = 47
	SqA2 Square = 48
	SqB2 Square = 49
	SqC2 Square = 50
	SqD2 Square = 51
	SqE2 Square = 52
	SqF2 Square = 53
	SqG2 Square = 54
	SqH2 Square = 55
	SqA1 Square = 56
	SqB1 Square = 57
	SqC1 Square = 58
	SqD1 Square = 59
	SqE1 Square = 60
	SqF1 Square = 61
	SqG1 Square = 62
	SqH1 Square = 63
	// SqNone is the sentinel for "no square" (e.g. no en-passant target).
	SqNone Square = 64
)

// SqLength is the number of real squares on the board.
const SqLength = 64

// IsValid reports whether sq is one of the 64 real board squares.
func (sq Square) IsValid() bool {
	return sq >= 0 && sq < SqLength
}

// File returns the file (0=a .. 7=h) of the square.
func (sq Square) File() File {
	return File(sq % 8)
}

// Rank returns the rank of the square as a human rank number, 1..8.
func (sq Square) Rank() int {
	return 8 - int(sq/8)
}

// rank0 returns the row index used internally for board math: 0 for rank 8
// down to 7 for rank 1. sq = rank0*8 + file.
func (sq Square) rank0() int {
	return int(sq / 8)
}

// SquareOf returns the square for the given file (0=a..7=h) and human rank
// number (1..8).
func SquareOf(f File, rank int) Square {
	return Square((8-rank)*8 + int(f))
}

// Mirror returns the square obtained by flipping the board vertically
// (rank 1 <-> rank 8), used to mirror White piece-square tables for Black.
func (sq Square) Mirror() Square {
	return sq ^ 56
}

// String returns the algebraic coordinate of the square (e.g. "e4"), or
// "-" for SqNone.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+byte(sq.File()), sq.Rank())
}

// ParseSquare parses an algebraic coordinate (e.g. "e4") into a Square, or
// returns SqNone if the string is not a valid coordinate.
func ParseSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return SqNone
	}
	return SquareOf(File(f-'a'), int(r-'0'))
}

// File identifies a file (column) of the board, 0=a .. 7=h.
type File uint8

// File constants.
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)
