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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/cmk/bbcgo/internal/types"
)

func TestStartPositionInvariants(t *testing.T) {
	p := NewStartPosition()
	assert.Equal(t, White, p.Side)
	assert.Equal(t, SqNone, p.EP)
	assert.Equal(t, CastleAll, p.Castle)
	assert.Equal(t, p.Occ[White]|p.Occ[Black], p.Occ[Both])

	saved := p.Hash
	p.RehashFromScratch()
	assert.Equal(t, saved, p.Hash)
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	p := NewStartPosition()
	before := p.state

	m := NewMove(SqE2, SqE4, WP, NoPiece, MoveFlags{DoublePush: true})
	ok := p.Make(m, All)
	assert.True(t, ok)
	assert.NotEqual(t, before, p.state)

	p.Unmake()
	assert.Equal(t, before, p.state)
	assert.Equal(t, 0, p.Ply)
}

func TestMakeRejectsMoveIntoCheck(t *testing.T) {
	// White king on e1, black rook on e8, only the e2 pawn between them:
	// capturing on d3 takes the pawn off the e-file and would expose the
	// king to check along it.
	p := &Position{}
	p.EP = SqNone
	p.Pieces[WK] = SqE1.Bb()
	p.Pieces[WP] = SqE2.Bb()
	p.Pieces[BK] = SqH8.Bb()
	p.Pieces[BR] = SqE8.Bb()
	p.Pieces[BP] = SqD3.Bb()
	p.RebuildOccupanciesFromPieces()
	p.RehashFromScratch()

	m := NewMove(SqE2, SqD3, WP, NoPiece, MoveFlags{Capture: true})
	ok := p.Make(m, All)
	assert.False(t, ok)
	assert.True(t, p.Pieces[WP].Has(SqE2))
}

func TestEnPassantCapture(t *testing.T) {
	p := &Position{}
	p.Pieces[WK] = SqE1.Bb()
	p.Pieces[BK] = SqE8.Bb()
	p.Pieces[WP] = SqE5.Bb()
	p.Pieces[BP] = SqD5.Bb()
	p.EP = SqD6
	p.RebuildOccupanciesFromPieces()
	p.RehashFromScratch()

	m := NewMove(SqE5, SqD6, WP, NoPiece, MoveFlags{Capture: true, EnPassant: true})
	ok := p.Make(m, All)
	assert.True(t, ok)
	assert.True(t, p.Pieces[WP].Has(SqD6))
	assert.False(t, p.Pieces[BP].Has(SqD5))
	assert.Equal(t, SqNone, p.EP)
}

func TestIsRepetition(t *testing.T) {
	p := NewStartPosition()
	startHash := p.Hash
	p.PushGameHash(startHash)

	m1 := NewMove(SqG1, SqF3, WN, NoPiece, MoveFlags{})
	assert.True(t, p.Make(m1, All))
	m2 := NewMove(SqG8, SqF6, BN, NoPiece, MoveFlags{})
	assert.True(t, p.Make(m2, All))
	m3 := NewMove(SqF3, SqG1, WN, NoPiece, MoveFlags{})
	assert.True(t, p.Make(m3, All))
	m4 := NewMove(SqF6, SqG8, BN, NoPiece, MoveFlags{})
	assert.True(t, p.Make(m4, All))

	assert.Equal(t, startHash, p.Hash)
	assert.True(t, p.IsRepetition())
}
