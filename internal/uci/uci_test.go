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

package uci

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cmk/bbcgo/internal/movegen"
	. "github.com/cmk/bbcgo/internal/types"
)

func TestRunHandshake(t *testing.T) {
	h := NewHandler()
	buf := new(bytes.Buffer)
	code := h.Run(strings.NewReader("uci\nisready\nquit\n"), buf)

	assert.Equal(t, 0, code)
	out := buf.String()
	assert.Contains(t, out, "id name BBC")
	assert.Contains(t, out, "id name Code Monkey King")
	assert.Contains(t, out, "uciok")
	assert.Contains(t, out, "readyok")
}

func TestRunIgnoresUnknownCommands(t *testing.T) {
	h := NewHandler()
	buf := new(bytes.Buffer)
	code := h.Run(strings.NewReader("garbage in\nisready\nquit\n"), buf)

	assert.Equal(t, 0, code)
	assert.Contains(t, buf.String(), "readyok")
}

func TestGoDepthEmitsOneInfoPerDepth(t *testing.T) {
	h := NewHandler()
	buf := new(bytes.Buffer)
	h.dispatch("position startpos", buf)
	h.dispatch("go depth 6", buf)

	depths := infoDepths(t, buf.String())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, depths)

	best := bestmove(t, buf.String())
	var list MoveList
	movegen.Generate(h.pos, &list, false)
	assert.True(t, containsUci(&list, best), "bestmove %s not generated in start position", best)
}

func TestGoAfterMovesAnswersForBlack(t *testing.T) {
	h := NewHandler()
	buf := new(bytes.Buffer)
	h.dispatch("position startpos moves e2e4 e7e5 g1f3", buf)
	assert.Equal(t, Black, h.pos.Side)

	h.dispatch("go depth 4", buf)

	best := bestmove(t, buf.String())
	var list MoveList
	movegen.Generate(h.pos, &list, false)
	assert.True(t, containsUci(&list, best), "bestmove %s not legal for black here", best)
}

func TestGoReturnsTheOnlyLegalMove(t *testing.T) {
	// Black king on a8 is checked by the h8 rook; b7/b8 are covered by the
	// b1 rook, so a8a7 is the single legal move.
	h := NewHandler()
	buf := new(bytes.Buffer)
	h.dispatch("position fen k6R/8/8/8/8/8/8/1R4K1 b - - 0 1", buf)
	h.dispatch("go depth 2", buf)

	assert.Equal(t, "a8a7", bestmove(t, buf.String()))
}

func TestGoReportsMateInOne(t *testing.T) {
	h := NewHandler()
	buf := new(bytes.Buffer)
	h.dispatch("position fen 6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1", buf)
	h.dispatch("go depth 3", buf)

	out := buf.String()
	assert.Contains(t, out, "score mate 1")
	assert.Equal(t, "a1a8", bestmove(t, out))
}

func TestPositionWithBadMoveKeepsPrefix(t *testing.T) {
	h := NewHandler()
	buf := new(bytes.Buffer)
	// e2e4 is applied; the unparseable "zzzz" stops the list there, so the
	// trailing e7e5 never runs and the partially-applied position stands.
	h.dispatch("position startpos moves e2e4 zzzz e7e5", buf)

	assert.Equal(t, Black, h.pos.Side)
	assert.True(t, h.pos.Pieces[WP].Has(SqE4))
	assert.True(t, h.pos.Pieces[BP].Has(SqE7))
}

func TestPrintBoardShowsFenAndHash(t *testing.T) {
	h := NewHandler()
	buf := new(bytes.Buffer)
	h.dispatch("position startpos", buf)
	h.dispatch("d", buf)

	out := buf.String()
	assert.Contains(t, out, "FEN:")
	assert.Contains(t, out, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	assert.Contains(t, out, "Hash key:")
}

// infoDepths extracts the "depth N" value of every info line, in order.
func infoDepths(t *testing.T, out string) []int {
	t.Helper()
	var depths []int
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "info ") {
			continue
		}
		fields := strings.Fields(line)
		for i := 0; i < len(fields)-1; i++ {
			if fields[i] == "depth" {
				d, err := strconv.Atoi(fields[i+1])
				assert.NoError(t, err)
				depths = append(depths, d)
			}
		}
	}
	return depths
}

// bestmove extracts the move from the output's bestmove line.
func bestmove(t *testing.T, out string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "bestmove ") {
			return strings.TrimPrefix(line, "bestmove ")
		}
	}
	t.Fatalf("no bestmove line in output:\n%s", out)
	return ""
}

func containsUci(list *MoveList, uciMove string) bool {
	for i := 0; i < list.Count; i++ {
		if list.Moves[i].String() == uciMove {
			return true
		}
	}
	return false
}
