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

// Package fen is a thin external collaborator: it knows how to turn FEN
// text into a position.Position and back. It has no say in search or move
// generation semantics.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cmk/bbcgo/internal/position"
	. "github.com/cmk/bbcgo/internal/types"
)

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Parse reads FEN fields 1-4 (board, side to move, castling rights,
// en-passant target) into a fresh position. Half-move and full-move
// counters, if present, are ignored.
func Parse(fenStr string) (*position.Position, error) {
	fields := strings.Fields(fenStr)
	if len(fields) < 4 {
		return nil, fmt.Errorf("fen: expected at least 4 fields, got %d", len(fields))
	}

	p := &position.Position{}
	p.EP = SqNone

	if err := parseBoard(p, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		p.Side = White
	case "b":
		p.Side = Black
	default:
		return nil, fmt.Errorf("fen: invalid side to move %q", fields[1])
	}

	p.Castle = parseCastling(fields[2])

	if fields[3] != "-" {
		sq := ParseSquare(fields[3])
		if !sq.IsValid() {
			return nil, fmt.Errorf("fen: invalid en-passant square %q", fields[3])
		}
		p.EP = sq
	}

	p.RebuildOccupanciesFromPieces()
	p.RehashFromScratch()
	return p, nil
}

func parseBoard(p *position.Position, board string) error {
	ranks := strings.Split(board, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("fen: expected 8 ranks, got %d", len(ranks))
	}
	for rankIdx, rankStr := range ranks {
		rank := 8 - rankIdx
		file := 0
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece := PieceFromChar(byte(c))
			if piece == NoPiece {
				return fmt.Errorf("fen: invalid board character %q", c)
			}
			if file > 7 {
				return fmt.Errorf("fen: rank %d overflows 8 files", rank)
			}
			sq := SquareOf(File(file), rank)
			p.Pieces[piece] = p.Pieces[piece].Set(sq)
			file++
		}
	}
	return nil
}

func parseCastling(s string) CastlingRights {
	if s == "-" {
		return 0
	}
	var cr CastlingRights
	for _, c := range s {
		switch c {
		case 'K':
			cr |= CastleWK
		case 'Q':
			cr |= CastleWQ
		case 'k':
			cr |= CastleBK
		case 'q':
			cr |= CastleBQ
		}
	}
	return cr
}

// String serializes the position's board, side, castling and en-passant
// fields as FEN (fields 1-4), with placeholder "0 1" half/full-move
// counters since Position does not track them.
func String(p *position.Position) string {
	var sb strings.Builder
	for rank := 8; rank >= 1; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := SquareOf(File(file), rank)
			piece := p.PieceAt(sq)
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(piece.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.Side.String())

	sb.WriteByte(' ')
	sb.WriteString(p.Castle.String())

	sb.WriteByte(' ')
	sb.WriteString(p.EP.String())

	sb.WriteString(" 0 1")
	return sb.String()
}
