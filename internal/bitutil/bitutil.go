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

// Package bitutil provides the handful of bit-twiddling primitives the rest
// of the engine is built on: population count and least-significant-bit
// index over a 64-bit bitboard.
package bitutil

import "math/bits"

// PopCount returns the number of set bits in b.
func PopCount(b uint64) int {
	return bits.OnesCount64(b)
}

// LsbIndex returns the index of the least significant set bit of b, or -1
// if b is zero. Matches the classic Kernighan/bsf semantics.
func LsbIndex(b uint64) int {
	if b == 0 {
		return -1
	}
	return bits.TrailingZeros64(b)
}

// ResetLsb clears the least significant set bit of b and returns the result.
func ResetLsb(b uint64) uint64 {
	return b & (b - 1)
}
