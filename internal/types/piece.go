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

// Color is one of White or Black. Both exists only as an index into
// occupancy bitboards, never as a piece's color.
type Color uint8

// Color constants.
const (
	White Color = 0
	Black Color = 1
	Both  Color = 2
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == Black {
		return "b"
	}
	return "w"
}

// Piece enumerates the 12 piece kinds in the fixed order the rest of the
// engine depends on: White pawn..king, then Black pawn..king. This ordering
// is load-bearing: MVV-LVA, Zobrist keys, piece-square tables and the
// Piece.Kind mirroring below all assume it.
type Piece int8

// Piece kinds, in the fixed order required by the engine.
const (
	WP Piece = iota
	WN
	WB
	WR
	WQ
	WK
	BP
	BN
	BB
	BR
	BQ
	BK
	// NoPiece marks an empty board square. It is not one of the 12 kinds
	// and must never appear in a Move's moving-piece field.
	NoPiece Piece = 12
)

// NumPieces is the number of real piece kinds (12).
const NumPieces = 12

// Kind index within a color: 0=Pawn 1=Knight 2=Bishop 3=Rook 4=Queen 5=King.
// Works for both colors because Black's block starts exactly 6 kinds after
// White's, i.e. p % 6.
const (
	KindPawn = iota
	KindKnight
	KindBishop
	KindRook
	KindQueen
	KindKing
)

// Kind returns the piece kind (0=Pawn..5=King) independent of color.
func (p Piece) Kind() int {
	return int(p) % 6
}

// Color returns the color of the piece. Undefined for NoPiece.
func (p Piece) Color() Color {
	if p >= BP {
		return Black
	}
	return White
}

// MakePiece returns the piece of the given color and kind (0=Pawn..5=King).
func MakePiece(c Color, kind int) Piece {
	return Piece(int(c)*6 + kind)
}

var pieceChars = [13]byte{'P', 'N', 'B', 'R', 'Q', 'K', 'p', 'n', 'b', 'r', 'q', 'k', '.'}

// Char returns the single-letter FEN/board representation of the piece,
// uppercase for White, lowercase for Black, '.' for NoPiece.
func (p Piece) Char() byte {
	if p < 0 || p > NoPiece {
		return '.'
	}
	return pieceChars[p]
}

// PieceFromChar returns the Piece for a FEN piece letter, or NoPiece if the
// letter does not name a piece.
func PieceFromChar(c byte) Piece {
	for i, pc := range pieceChars {
		if pc == c && i < int(NoPiece) {
			return Piece(i)
		}
	}
	return NoPiece
}

func (p Piece) String() string {
	return string(p.Char())
}

// Material value in centipawns of each piece kind (Pawn..King), white-positive.
var KindValue = [6]int{100, 300, 350, 500, 1000, 10000}

// ValueOf returns the material value of the piece, always positive
// regardless of color (callers negate for Black where needed).
func (p Piece) ValueOf() int {
	return KindValue[p.Kind()]
}
