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

// Package evaluator computes a static positional score for a position:
// material, piece-square tables, pawn structure, rook/king file semantics
// and mobility, expressed in centipawns from the side-to-move's
// perspective.
package evaluator

import (
	"github.com/cmk/bbcgo/internal/attacks"
	"github.com/cmk/bbcgo/internal/position"
	. "github.com/cmk/bbcgo/internal/types"
)

const (
	doubledPawnPenalty  = -10
	isolatedPawnPenalty = -10
	semiOpenFileBonus   = 10
	openFileBonus       = 15
	kingShieldBonus     = 5
)

var passedPawnBonus = [9]int{0, 0, 10, 30, 50, 75, 100, 150, 200} // indexed by rank 1..8

// pawnScore, knightScore, bishopScore, rookScore and kingScore are
// white-perspective piece-square tables indexed by square (a8=0..h1=63).
// Black's score for a piece on sq is the same table indexed at sq.Mirror().
// There is no queen table: queens are scored purely by mobility.
var (
	pawnScore = [64]int{
		90, 90, 90, 90, 90, 90, 90, 90,
		30, 30, 30, 40, 40, 30, 30, 30,
		20, 20, 20, 30, 30, 30, 20, 20,
		10, 10, 10, 20, 20, 10, 10, 10,
		5, 5, 10, 20, 20, 5, 5, 5,
		0, 0, 0, 5, 5, 0, 0, 0,
		0, 0, 0, -10, -10, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	knightScore = [64]int{
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 10, 10, 0, 0, -5,
		-5, 5, 20, 20, 20, 20, 5, -5,
		-5, 10, 20, 30, 30, 20, 10, -5,
		-5, 10, 20, 30, 30, 20, 10, -5,
		-5, 5, 20, 10, 10, 20, 5, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, -10, 0, 0, 0, 0, -10, -5,
	}
	bishopScore = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 20, 0, 10, 10, 0, 20, 0,
		0, 0, 10, 20, 20, 10, 0, 0,
		0, 0, 10, 20, 20, 10, 0, 0,
		0, 10, 0, 0, 0, 0, 10, 0,
		0, 30, 0, 0, 0, 0, 30, 0,
		0, 0, -10, 0, 0, -10, 0, 0,
	}
	rookScore = [64]int{
		50, 50, 50, 50, 50, 50, 50, 50,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 10, 20, 20, 10, 0, 0,
		0, 0, 10, 20, 20, 10, 0, 0,
		0, 0, 10, 20, 20, 10, 0, 0,
		0, 0, 10, 20, 20, 10, 0, 0,
		0, 0, 10, 20, 20, 10, 0, 0,
		0, 0, 0, 20, 20, 0, 0, 0,
	}
	kingScore = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 5, 5, 5, 5, 0, 0,
		0, 5, 5, 10, 10, 5, 5, 0,
		0, 5, 10, 20, 20, 10, 5, 0,
		0, 5, 10, 20, 20, 10, 5, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 5, 5, -5, -5, 0, 5, 0,
		0, 0, 5, 0, -15, 0, 10, 0,
	}
)

// Evaluate returns the static score of pos in centipawns from the
// perspective of the side to move.
func Evaluate(pos *position.Position) int {
	score := 0

	for sq := Square(0); sq < SqLength; sq++ {
		piece := pos.PieceAt(sq)
		if piece == NoPiece {
			continue
		}
		score += pieceScore(pos, piece, sq)
	}

	if pos.Side == Black {
		return -score
	}
	return score
}

func pieceScore(pos *position.Position, piece Piece, sq Square) int {
	sign := 1
	if piece.Color() == Black {
		sign = -1
	}

	s := piece.ValueOf() * sign

	switch piece.Kind() {
	case KindPawn:
		s += sign * pawnPositional(pos, piece, sq)
	case KindKnight:
		s += sign * knightScore[mirrorFor(piece, sq)]
	case KindBishop:
		s += sign * bishopScore[mirrorFor(piece, sq)]
		s += sign * attacks.BishopAttacks(sq, pos.Occ[Both]).PopCount()
	case KindRook:
		s += sign * rookScore[mirrorFor(piece, sq)]
		semiOpen, open := fileOpenness(pos, piece.Color(), sq)
		if semiOpen {
			s += sign * semiOpenFileBonus
		}
		if open {
			s += sign * openFileBonus
		}
	case KindQueen:
		s += sign * attacks.QueenAttacks(sq, pos.Occ[Both]).PopCount()
	case KindKing:
		s += sign * kingScore[mirrorFor(piece, sq)]
		semiOpen, open := fileOpenness(pos, piece.Color(), sq)
		if semiOpen {
			s -= sign * semiOpenFileBonus
		}
		if open {
			s -= sign * openFileBonus
		}
		s += sign * kingShield(pos, piece.Color(), sq)
	}
	return s
}

func mirrorFor(piece Piece, sq Square) Square {
	if piece.Color() == Black {
		return sq.Mirror()
	}
	return sq
}

func pawnPositional(pos *position.Position, piece Piece, sq Square) int {
	own := pos.Pieces[piece]
	s := pawnScore[mirrorFor(piece, sq)]

	onFile := (own & FileBb(sq.File())).PopCount()
	if onFile > 1 {
		s += onFile * doubledPawnPenalty
	}
	if own&AdjacentFilesBb(sq.File()) == 0 {
		s += isolatedPawnPenalty
	}

	enemyPawn := MakePiece(piece.Color().Flip(), KindPawn)
	if passedMask(piece.Color(), sq)&pos.Pieces[enemyPawn] == 0 {
		rank := sq.Rank()
		if piece.Color() == Black {
			rank = 9 - sq.Rank()
		}
		s += passedPawnBonus[rank]
	}
	return s
}

// passedMask returns the squares on sq's file and the two adjacent files,
// strictly ahead of sq from color's perspective, that an enemy pawn
// occupying would stop sq's pawn from being passed.
func passedMask(color Color, sq Square) Bitboard {
	files := FileBb(sq.File()) | AdjacentFilesBb(sq.File())
	var ahead Bitboard
	if color == White {
		for r := sq.Rank() + 1; r <= 8; r++ {
			ahead |= RankBb[r]
		}
	} else {
		for r := 1; r < sq.Rank(); r++ {
			ahead |= RankBb[r]
		}
	}
	return files & ahead
}

// fileOpenness reports whether sq's file carries no pawns of color (semi
// open from that color's perspective) and whether it carries no pawns of
// either color (fully open).
func fileOpenness(pos *position.Position, color Color, sq Square) (semiOpen, open bool) {
	file := FileBb(sq.File())
	ownPawn := MakePiece(color, KindPawn)
	semiOpen = pos.Pieces[ownPawn]&file == 0
	open = (pos.Pieces[WP]|pos.Pieces[BP])&file == 0
	return
}

func kingShield(pos *position.Position, color Color, sq Square) int {
	return (attacks.KingAttacks(sq) & pos.Occ[color]).PopCount() * kingShieldBonus
}
