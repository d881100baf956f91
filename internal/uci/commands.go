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
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/cmk/bbcgo/internal/fen"
	"github.com/cmk/bbcgo/internal/movegen"
	"github.com/cmk/bbcgo/internal/position"
	"github.com/cmk/bbcgo/internal/search"
	. "github.com/cmk/bbcgo/internal/types"
	"github.com/cmk/bbcgo/internal/util"
)

// handlePosition implements "position [startpos | fen <FEN>] [moves ...]".
// A malformed move stops processing the remainder of the moves list; the
// partially-applied position stands, per the error handling design.
func (h *Handler) handlePosition(fields []string) {
	if len(fields) == 0 {
		return
	}

	i := 0
	switch fields[0] {
	case "startpos":
		h.pos = position.NewStartPosition()
		i = 1
	case "fen":
		end := i + 1
		for end < len(fields) && fields[end] != "moves" {
			end++
		}
		p, err := fen.Parse(joinFields(fields[1:end]))
		if err != nil {
			h.log.Warningf("position fen: %v", err)
			return
		}
		h.pos = p
		i = end
	default:
		return
	}

	// Seed the repetition stack with the base position's hash; Make pushes
	// the hash after each applied move.
	h.pos.PushGameHash(h.pos.Hash)

	if i < len(fields) && fields[i] == "moves" {
		for _, tok := range fields[i+1:] {
			m, ok := findMove(h.pos, tok)
			if !ok {
				break
			}
			if !h.pos.Make(m, position.All) {
				break
			}
		}
	}
}

func joinFields(fields []string) string {
	s := ""
	for i, f := range fields {
		if i > 0 {
			s += " "
		}
		s += f
	}
	return s
}

// findMove looks up the legal move whose UCI notation (e.g. "e2e4",
// "e7e8q") matches tok.
func findMove(pos *position.Position, tok string) (Move, bool) {
	var list MoveList
	movegen.Generate(pos, &list, false)
	for i := 0; i < list.Count; i++ {
		if list.Moves[i].String() == tok {
			return list.Moves[i], true
		}
	}
	return MoveNone, false
}

// handleGo parses "go [depth N] [wtime ms] [btime ms] [winc ms] [binc ms]
// [movestogo N] [movetime ms] [infinite]", runs the search and emits one
// "info" line per completed depth followed by "bestmove".
func (h *Handler) handleGo(fields []string, out io.Writer) {
	limits := search.NewLimits()

	for i := 0; i < len(fields); i++ {
		switch fields[i] {
		case "depth":
			i++
			limits.Depth = atoiOr(fields, i, 0)
		case "wtime":
			i++
			limits.WhiteTime = time.Duration(atoiOr(fields, i, 0)) * time.Millisecond
		case "btime":
			i++
			limits.BlackTime = time.Duration(atoiOr(fields, i, 0)) * time.Millisecond
		case "winc":
			i++
			limits.WhiteInc = time.Duration(atoiOr(fields, i, 0)) * time.Millisecond
		case "binc":
			i++
			limits.BlackInc = time.Duration(atoiOr(fields, i, 0)) * time.Millisecond
		case "movestogo":
			i++
			limits.MovesToGo = atoiOr(fields, i, 0)
		case "movetime":
			i++
			limits.MoveTime = time.Duration(atoiOr(fields, i, 0)) * time.Millisecond
		case "infinite":
			limits.Infinite = true
		}
	}

	h.stop.Store(false)

	var last search.Info
	best := h.engine.Run(h.pos, limits, func(info search.Info) {
		last = info
		fmt.Fprint(out, "info")
		if info.Mate {
			fmt.Fprintf(out, " score mate %d", info.Score)
		} else {
			fmt.Fprintf(out, " score cp %d", info.Score)
		}
		fmt.Fprintf(out, " depth %d nodes %d time %d", info.Depth, info.Nodes, info.Time.Milliseconds())
		if len(info.PV) > 0 {
			fmt.Fprint(out, " pv")
			for _, m := range info.PV {
				fmt.Fprint(out, " "+m.String())
			}
		}
		fmt.Fprintln(out)
	})

	if last.Depth > 0 {
		h.log.Infof("search finished: depth %d, %d nodes, %d nps",
			last.Depth, last.Nodes, util.Nps(last.Nodes, last.Time))
	}
	fmt.Fprintf(out, "bestmove %s\n", best.String())
}

func atoiOr(fields []string, i, fallback int) int {
	if i < 0 || i >= len(fields) {
		return fallback
	}
	n, err := strconv.Atoi(fields[i])
	if err != nil {
		return fallback
	}
	return n
}
