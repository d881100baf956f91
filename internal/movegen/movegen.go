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

// Package movegen enumerates pseudo-legal moves from a position: every move
// obeys piece movement, capture, promotion, en-passant and castling
// prerequisites, but legality with respect to the mover's own king being in
// check is left to position.Make.
package movegen

import (
	"github.com/cmk/bbcgo/internal/attacks"
	"github.com/cmk/bbcgo/internal/position"
	. "github.com/cmk/bbcgo/internal/types"
)

var promotionKinds = [4]int{KindKnight, KindBishop, KindRook, KindQueen}

// Generate appends every pseudo-legal move in pos to list. When
// capturesOnly is true only captures (including promotion-captures and
// en-passant) are produced, matching the move subset quiescence searches.
func Generate(pos *position.Position, list *MoveList, capturesOnly bool) {
	side := pos.Side
	own := pos.Occ[side]
	enemy := pos.Occ[side.Flip()]
	occ := pos.Occ[Both]

	generatePawnMoves(pos, list, side, enemy, occ, capturesOnly)
	generateLeaperMoves(pos, list, MakePiece(side, KindKnight), attacks.KnightAttacks, own, enemy, capturesOnly)
	generateLeaperMoves(pos, list, MakePiece(side, KindKing), attacks.KingAttacks, own, enemy, capturesOnly)
	generateSliderMoves(pos, list, MakePiece(side, KindBishop), attacks.BishopAttacks, own, enemy, occ, capturesOnly)
	generateSliderMoves(pos, list, MakePiece(side, KindRook), attacks.RookAttacks, own, enemy, occ, capturesOnly)
	generateSliderMoves(pos, list, MakePiece(side, KindQueen), attacks.QueenAttacks, own, enemy, occ, capturesOnly)
	if !capturesOnly {
		generateCastling(pos, list, side, occ)
	}
}

func generatePawnMoves(pos *position.Position, list *MoveList, side Color, enemy, occ Bitboard, capturesOnly bool) {
	pawn := MakePiece(side, KindPawn)
	promoRank := 8
	startRank := 2
	forward := -8
	if side == Black {
		promoRank = 1
		startRank = 7
		forward = 8
	}

	bb := pos.Pieces[pawn]
	for bb != 0 {
		from := bb.PopLsb()

		if !capturesOnly {
			to := from + Square(forward)
			if to.IsValid() && !occ.Has(to) {
				emitPawnMoves(list, pawn, from, to, to.Rank() == promoRank, MoveFlags{})
				if from.Rank() == startRank {
					to2 := to + Square(forward)
					if to2.IsValid() && !occ.Has(to2) {
						list.Add(NewMove(from, to2, pawn, NoPiece, MoveFlags{DoublePush: true}))
					}
				}
			}
		}

		atk := attacks.PawnAttacks(side, from)
		captures := atk & enemy
		for captures != 0 {
			to := captures.PopLsb()
			emitPawnMoves(list, pawn, from, to, to.Rank() == promoRank, MoveFlags{Capture: true})
		}

		if pos.EP.IsValid() && atk.Has(pos.EP) {
			list.Add(NewMove(from, pos.EP, pawn, NoPiece, MoveFlags{Capture: true, EnPassant: true}))
		}
	}
}

func emitPawnMoves(list *MoveList, pawn Piece, from, to Square, isPromotion bool, flags MoveFlags) {
	if !isPromotion {
		list.Add(NewMove(from, to, pawn, NoPiece, flags))
		return
	}
	color := pawn.Color()
	for _, kind := range promotionKinds {
		list.Add(NewMove(from, to, pawn, MakePiece(color, kind), flags))
	}
}

func generateLeaperMoves(pos *position.Position, list *MoveList, piece Piece, attackFn func(Square) Bitboard, own, enemy Bitboard, capturesOnly bool) {
	bb := pos.Pieces[piece]
	for bb != 0 {
		from := bb.PopLsb()
		targets := attackFn(from) &^ own
		for targets != 0 {
			to := targets.PopLsb()
			isCapture := enemy.Has(to)
			if capturesOnly && !isCapture {
				continue
			}
			list.Add(NewMove(from, to, piece, NoPiece, MoveFlags{Capture: isCapture}))
		}
	}
}

func generateSliderMoves(pos *position.Position, list *MoveList, piece Piece, attackFn func(Square, Bitboard) Bitboard, own, enemy, occ Bitboard, capturesOnly bool) {
	bb := pos.Pieces[piece]
	for bb != 0 {
		from := bb.PopLsb()
		targets := attackFn(from, occ) &^ own
		for targets != 0 {
			to := targets.PopLsb()
			isCapture := enemy.Has(to)
			if capturesOnly && !isCapture {
				continue
			}
			list.Add(NewMove(from, to, piece, NoPiece, MoveFlags{Capture: isCapture}))
		}
	}
}

func generateCastling(pos *position.Position, list *MoveList, side Color, occ Bitboard) {
	enemy := side.Flip()
	if side == White {
		if pos.Castle.Has(CastleWK) &&
			!occ.Has(SqF1) && !occ.Has(SqG1) &&
			!pos.IsSquareAttacked(SqE1, enemy) && !pos.IsSquareAttacked(SqF1, enemy) {
			list.Add(NewMove(SqE1, SqG1, WK, NoPiece, MoveFlags{Castling: true}))
		}
		if pos.Castle.Has(CastleWQ) &&
			!occ.Has(SqB1) && !occ.Has(SqC1) && !occ.Has(SqD1) &&
			!pos.IsSquareAttacked(SqE1, enemy) && !pos.IsSquareAttacked(SqD1, enemy) {
			list.Add(NewMove(SqE1, SqC1, WK, NoPiece, MoveFlags{Castling: true}))
		}
		return
	}
	if pos.Castle.Has(CastleBK) &&
		!occ.Has(SqF8) && !occ.Has(SqG8) &&
		!pos.IsSquareAttacked(SqE8, enemy) && !pos.IsSquareAttacked(SqF8, enemy) {
		list.Add(NewMove(SqE8, SqG8, BK, NoPiece, MoveFlags{Castling: true}))
	}
	if pos.Castle.Has(CastleBQ) &&
		!occ.Has(SqB8) && !occ.Has(SqC8) && !occ.Has(SqD8) &&
		!pos.IsSquareAttacked(SqE8, enemy) && !pos.IsSquareAttacked(SqD8, enemy) {
		list.Add(NewMove(SqE8, SqC8, BK, NoPiece, MoveFlags{Castling: true}))
	}
}
