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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cmk/bbcgo/internal/fen"
	"github.com/cmk/bbcgo/internal/position"
)

// Perft is slow at the higher depths, especially Kiwipete and Position 5.
// Run with `go test -short` to skip those during quick iteration.

func TestPerftStartPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	p := position.NewStartPosition()
	assert.Equal(t, uint64(20), Perft(p, 1))
	assert.Equal(t, uint64(400), Perft(p, 2))
	assert.Equal(t, uint64(8902), Perft(p, 3))
	assert.Equal(t, uint64(197281), Perft(p, 4))
	assert.Equal(t, uint64(4865609), Perft(p, 5))
}

func TestPerftKiwipete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	p, err := fen.Parse("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, uint64(4085603), Perft(p, 4))
}

func TestPerftPosition3(t *testing.T) {
	p, err := fen.Parse("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, uint64(674624), Perft(p, 5))
}

func TestPerftPosition4(t *testing.T) {
	p, err := fen.Parse("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, uint64(422333), Perft(p, 4))
}

func TestPerftPosition5(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	p, err := fen.Parse("rnbqkb1r/pp1p1ppp/2p5/4P3/2B5/8/PPP1NnPP/RNBQK2R w KQkq - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, uint64(2103487), Perft(p, 4))
}
