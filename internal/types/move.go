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

// Move packs a chess move into 24 bits:
//
//	bits 0..5   source square
//	bits 6..11  target square
//	bits 12..15 moving piece (0..11)
//	bits 16..19 promotion piece (0 = none, else N/B/R/Q of the mover's color)
//	bit  20     capture flag
//	bit  21     double pawn push flag
//	bit  22     en-passant capture flag
//	bit  23     castling flag
//
// A zero promotion field means "no promotion": the White pawn (kind 0) is
// never a legal promotion piece, so the value is free to serve as the
// sentinel. MoveNone (all zero bits) decodes as a8-a8 moved by a White
// pawn, which is never a legal move, so it doubles safely as the "no move"
// sentinel.
type Move uint32

// MoveNone is the zero value, used as a sentinel for "no move".
const MoveNone Move = 0

const (
	fromShift  = 0
	toShift    = 6
	pieceShift = 12
	promShift  = 16

	sixBits  Move = 0x3F
	fourBits Move = 0xF

	captureBit  = 1 << 20
	doublePush  = 1 << 21
	enPassant   = 1 << 22
	castlingBit = 1 << 23
)

// MoveFlags bundle the boolean attributes beyond from/to/piece/promotion.
type MoveFlags struct {
	Capture    bool
	DoublePush bool
	EnPassant  bool
	Castling   bool
}

// NewMove encodes a move from its components. Pass NoPiece as promotion
// for a non-promoting move.
func NewMove(from, to Square, piece, promotion Piece, flags MoveFlags) Move {
	m := Move(from)<<fromShift | Move(to)<<toShift | Move(piece)<<pieceShift
	if promotion != NoPiece {
		m |= Move(promotion) << promShift
	}
	if flags.Capture {
		m |= captureBit
	}
	if flags.DoublePush {
		m |= doublePush
	}
	if flags.EnPassant {
		m |= enPassant
	}
	if flags.Castling {
		m |= castlingBit
	}
	return m
}

// From returns the source square.
func (m Move) From() Square { return Square((m >> fromShift) & sixBits) }

// To returns the target square.
func (m Move) To() Square { return Square((m >> toShift) & sixBits) }

// Piece returns the moving piece.
func (m Move) Piece() Piece { return Piece((m >> pieceShift) & fourBits) }

// Promotion returns the promotion piece, or NoPiece if this move is not a
// promotion.
func (m Move) Promotion() Piece {
	v := (m >> promShift) & fourBits
	if v == 0 {
		return NoPiece
	}
	return Piece(v)
}

// IsPromotion reports whether this move promotes a pawn.
func (m Move) IsPromotion() bool { return (m>>promShift)&fourBits != 0 }

// IsCapture reports whether this move captures a piece (including en-passant).
func (m Move) IsCapture() bool { return m&captureBit != 0 }

// IsDoublePush reports whether this move is a double pawn push.
func (m Move) IsDoublePush() bool { return m&doublePush != 0 }

// IsEnPassant reports whether this move is an en-passant capture.
func (m Move) IsEnPassant() bool { return m&enPassant != 0 }

// IsCastling reports whether this move is a castling move.
func (m Move) IsCastling() bool { return m&castlingBit != 0 }

// IsQuiet reports whether the move is neither a capture nor a promotion,
// the class of moves LMR and move-ordering treat as "quiet".
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// String returns the UCI wire representation of the move, e.g. "e2e4" or
// "e7e8q". MoveNone renders as "0000" per UCI convention.
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += promotionLetter(m.Promotion())
	}
	return s
}

func promotionLetter(p Piece) string {
	switch p.Kind() {
	case KindKnight:
		return "n"
	case KindBishop:
		return "b"
	case KindRook:
		return "r"
	case KindQueen:
		return "q"
	default:
		return ""
	}
}

// MaxMoves bounds the size of a MoveList; no legal chess position has more
// pseudo-legal moves than this.
const MaxMoves = 256

// MoveList is a bounded, stack-allocated sequence of moves with a count,
// avoiding heap allocation on every move-generation call.
type MoveList struct {
	Moves [MaxMoves]Move
	Count int
}

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.Moves[ml.Count] = m
	ml.Count++
}

// Clear resets the list to empty without reallocating its backing array.
func (ml *MoveList) Clear() {
	ml.Count = 0
}

// Contains reports whether m is present in the list.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.Count; i++ {
		if ml.Moves[i] == m {
			return true
		}
	}
	return false
}
