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

// Package position represents the chess board: twelve piece bitboards, the
// derived occupancies, side to move, castling rights, en-passant target and
// Zobrist hash, plus the history needed to make and unmake moves and to
// detect repetition.
package position

import (
	"github.com/cmk/bbcgo/internal/attacks"
	. "github.com/cmk/bbcgo/internal/types"
	"github.com/cmk/bbcgo/internal/zobrist"
)

// maxHistory bounds both the make/unmake undo stack and the repetition
// stack. It must cover the deepest search line plus the longest game history
// fed in via the position command; 1024 half-moves comfortably exceeds any
// practical game and search depth combined.
const maxHistory = 1024

// MakeFlag selects which moves Make accepts.
type MakeFlag int

const (
	// All accepts any pseudo-legal move.
	All MakeFlag = iota
	// CapturesOnly rejects non-capture moves outright, used by quiescence.
	CapturesOnly
)

// state is the part of a Position that Make snapshots and Unmake restores.
// Ply and the history/repetition stacks live outside it because they are
// owned by the make/unmake bookkeeping itself, not by the board state.
type state struct {
	Pieces [NumPieces]Bitboard
	Occ    [3]Bitboard
	Side   Color
	EP     Square
	Castle CastlingRights
	Hash   zobrist.Key
}

// Position is the single mutable object search operates on.
type Position struct {
	state
	Ply int

	rep    [maxHistory]zobrist.Key
	repLen int

	undo    [maxHistory]state
	undoPly [maxHistory]int
	undoLen int
}

// Reset clears the position to the empty board, white to move, no castling
// rights, no en-passant target, and an empty history.
func (p *Position) Reset() {
	*p = Position{}
	p.EP = SqNone
	p.RehashFromScratch()
}

// NewStartPosition returns a Position set to the standard chess starting
// array. It is a direct convenience constructor, not a FEN parse: FEN
// parsing is an external adapter (see internal/fen) that calls PieceAt's
// counterparts to populate an arbitrary position.
func NewStartPosition() *Position {
	p := &Position{}
	p.EP = SqNone
	p.Castle = CastleAll

	place := func(piece Piece, squares ...Square) {
		for _, sq := range squares {
			p.Pieces[piece] = p.Pieces[piece].Set(sq)
		}
	}
	place(BR, SqA8, SqH8)
	place(BN, SqB8, SqG8)
	place(BB, SqC8, SqF8)
	place(BQ, SqD8)
	place(BK, SqE8)
	for sq := SqA7; sq <= SqH7; sq++ {
		p.Pieces[BP] = p.Pieces[BP].Set(sq)
	}
	for sq := SqA2; sq <= SqH2; sq++ {
		p.Pieces[WP] = p.Pieces[WP].Set(sq)
	}
	place(WR, SqA1, SqH1)
	place(WN, SqB1, SqG1)
	place(WB, SqC1, SqF1)
	place(WQ, SqD1)
	place(WK, SqE1)

	p.RebuildOccupanciesFromPieces()
	p.RehashFromScratch()
	return p
}

// PieceAt returns the piece occupying sq, or NoPiece if it is empty.
func (p *Position) PieceAt(sq Square) Piece {
	for k := Piece(0); k < NumPieces; k++ {
		if p.Pieces[k].Has(sq) {
			return k
		}
	}
	return NoPiece
}

// RebuildOccupanciesFromPieces recomputes Occ from Pieces.
func (p *Position) RebuildOccupanciesFromPieces() {
	var w, b Bitboard
	for k := WP; k <= WK; k++ {
		w |= p.Pieces[k]
	}
	for k := BP; k <= BK; k++ {
		b |= p.Pieces[k]
	}
	p.Occ[White] = w
	p.Occ[Black] = b
	p.Occ[Both] = w | b
}

// RehashFromScratch recomputes Hash from Pieces, EP, Castle and Side.
func (p *Position) RehashFromScratch() {
	p.Hash = zobrist.FullHash(p.PieceAt, p.EP, p.Castle, p.Side)
}

func enemyKindRange(mover Color) (Piece, Piece) {
	if mover == White {
		return BP, BK
	}
	return WP, WK
}

// IsSquareAttacked reports whether sq is attacked by any piece of color by.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	occ := p.Occ[Both]

	if attacks.PawnAttacks(by.Flip(), sq)&p.Pieces[MakePiece(by, KindPawn)] != 0 {
		return true
	}
	if attacks.KnightAttacks(sq)&p.Pieces[MakePiece(by, KindKnight)] != 0 {
		return true
	}
	if attacks.KingAttacks(sq)&p.Pieces[MakePiece(by, KindKing)] != 0 {
		return true
	}
	bishopsQueens := p.Pieces[MakePiece(by, KindBishop)] | p.Pieces[MakePiece(by, KindQueen)]
	if attacks.BishopAttacks(sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.Pieces[MakePiece(by, KindRook)] | p.Pieces[MakePiece(by, KindQueen)]
	if attacks.RookAttacks(sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}

// InCheck reports whether the side to move is currently in check.
func (p *Position) InCheck() bool {
	kingSq := p.Pieces[MakePiece(p.Side, KindKing)].Lsb()
	return p.IsSquareAttacked(kingSq, p.Side.Flip())
}

// IsRepetition reports whether the current hash occurred earlier on the
// repetition stack (game history plus the moves made along the search
// path). It excludes the just-pushed current entry itself.
func (p *Position) IsRepetition() bool {
	for i := 0; i < p.repLen-1; i++ {
		if p.rep[i] == p.Hash {
			return true
		}
	}
	return false
}

// PushGameHash records a hash reached outside of search (e.g. while
// replaying the moves list of a position command) onto the repetition
// stack, so later search-path repetitions are detected against game history
// too.
func (p *Position) PushGameHash(h zobrist.Key) {
	p.rep[p.repLen] = h
	p.repLen++
}

// castleRookMove returns the rook's source/target squares and piece for a
// castling move's king destination square.
func castleRookMove(to Square) (from, dest Square, rook Piece) {
	switch to {
	case SqG1:
		return SqH1, SqF1, WR
	case SqC1:
		return SqA1, SqD1, WR
	case SqG8:
		return SqH8, SqF8, BR
	default:
		return SqA8, SqD8, BR
	}
}

// Make applies m to the position in a snapshot, mutate, validate-legality
// sequence: the board is always snapshotted first, mutated in place, and
// restored on illegality so callers never see
// a partially-applied move. Returns false ("rejected") for non-captures
// under CapturesOnly, or for moves that leave the mover's own king in
// check; true ("accepted") otherwise, incrementing Ply and pushing the new
// hash onto the repetition stack, both undone together by Unmake.
func (p *Position) Make(m Move, flag MakeFlag) bool {
	if flag == CapturesOnly && !m.IsCapture() {
		return false
	}

	p.undo[p.undoLen] = p.state
	p.undoPly[p.undoLen] = p.Ply
	p.undoLen++

	from, to := m.From(), m.To()
	piece := m.Piece()
	mover := p.Side

	// 1. move the piece.
	p.Pieces[piece] = p.Pieces[piece].Clear(from).Set(to)
	p.Hash ^= zobrist.PieceKey[piece][from]
	p.Hash ^= zobrist.PieceKey[piece][to]

	// 2. capture, excluding en-passant (handled separately below).
	if m.IsCapture() && !m.IsEnPassant() {
		lo, hi := enemyKindRange(mover)
		for k := lo; k <= hi; k++ {
			if p.Pieces[k].Has(to) {
				p.Pieces[k] = p.Pieces[k].Clear(to)
				p.Hash ^= zobrist.PieceKey[k][to]
				break
			}
		}
	}

	// 3. promotion: the pawn placed at `to` in step 1 becomes the promoted piece.
	if m.IsPromotion() {
		p.Pieces[piece] = p.Pieces[piece].Clear(to)
		p.Hash ^= zobrist.PieceKey[piece][to]
		promo := m.Promotion()
		p.Pieces[promo] = p.Pieces[promo].Set(to)
		p.Hash ^= zobrist.PieceKey[promo][to]
	}

	// 4. en-passant: remove the captured pawn at `to` +/- 8 depending on mover.
	if m.IsEnPassant() {
		var capSq Square
		capPawn := BP
		if mover == White {
			capSq = to + 8
		} else {
			capSq = to - 8
			capPawn = WP
		}
		p.Pieces[capPawn] = p.Pieces[capPawn].Clear(capSq)
		p.Hash ^= zobrist.PieceKey[capPawn][capSq]
	}

	// 5. en-passant target square bookkeeping.
	if p.EP.IsValid() {
		p.Hash ^= zobrist.EnPassant[p.EP]
		p.EP = SqNone
	}
	if m.IsDoublePush() {
		var epSq Square
		if mover == White {
			epSq = to + 8
		} else {
			epSq = to - 8
		}
		p.EP = epSq
		p.Hash ^= zobrist.EnPassant[epSq]
	}

	// 6. castling moves the corresponding rook too.
	if m.IsCastling() {
		rookFrom, rookTo, rook := castleRookMove(to)
		p.Pieces[rook] = p.Pieces[rook].Clear(rookFrom).Set(rookTo)
		p.Hash ^= zobrist.PieceKey[rook][rookFrom]
		p.Hash ^= zobrist.PieceKey[rook][rookTo]
	}

	// 7. castling rights.
	p.Hash ^= zobrist.Castle[p.Castle]
	p.Castle = UpdateCastlingRights(p.Castle, from, to)
	p.Hash ^= zobrist.Castle[p.Castle]

	// 8. occupancies.
	p.RebuildOccupanciesFromPieces()

	// 9. side to move.
	p.Side = p.Side.Flip()
	p.Hash ^= zobrist.Side

	// 10. legality: reject if the mover's own king is now attacked.
	kingSq := p.Pieces[MakePiece(mover, KindKing)].Lsb()
	if p.IsSquareAttacked(kingSq, p.Side) {
		p.undoLen--
		p.state = p.undo[p.undoLen]
		return false
	}

	p.Ply++
	p.rep[p.repLen] = p.Hash
	p.repLen++
	return true
}

// Unmake reverts the most recent accepted Make.
func (p *Position) Unmake() {
	p.repLen--
	p.undoLen--
	p.state = p.undo[p.undoLen]
	p.Ply = p.undoPly[p.undoLen]
}

// MakeNull applies a null move: the side to move passes without moving a
// piece, used by null-move pruning. It snapshots state like Make but does
// not touch the repetition stack, since a pass is not a played game move.
func (p *Position) MakeNull() {
	p.undo[p.undoLen] = p.state
	p.undoPly[p.undoLen] = p.Ply
	p.undoLen++

	if p.EP.IsValid() {
		p.Hash ^= zobrist.EnPassant[p.EP]
		p.EP = SqNone
	}
	p.Side = p.Side.Flip()
	p.Hash ^= zobrist.Side
	p.Ply++
}

// UnmakeNull reverts the most recent MakeNull.
func (p *Position) UnmakeNull() {
	p.undoLen--
	p.state = p.undo[p.undoLen]
	p.Ply = p.undoPly[p.undoLen]
}
