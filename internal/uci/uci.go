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

// Package uci implements a line-delimited UCI protocol handler. Standard
// input is owned by a single reader goroutine so that "stop"/"quit" can
// interrupt a synchronous search running on the main handler goroutine:
// the reader sets atomic flags the moment such a line arrives, then
// forwards the raw line to the handler's command queue. The search itself
// only ever consults an atomic bool (search.Engine.PollStop), never
// touches I/O directly.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	oplogging "github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cmk/bbcgo/internal/fen"
	"github.com/cmk/bbcgo/internal/logging"
	"github.com/cmk/bbcgo/internal/position"
	"github.com/cmk/bbcgo/internal/search"
	. "github.com/cmk/bbcgo/internal/types"
	"github.com/cmk/bbcgo/internal/util"
)

// engineName and engineAuthorName are both reported as "id name" lines in
// the "uci" handshake; see the comment at the handshake site.
const (
	engineName       = "BBC"
	engineAuthorName = "Code Monkey King"
)

// Handler owns one game's worth of state: the current position, the
// search engine (and its persistent TT/killer/history tables), and the
// cooperative stop/quit flags shared with the stdin reader goroutine.
type Handler struct {
	pos    *position.Position
	engine *search.Engine

	stop util.Bool
	quit util.Bool

	out *message.Printer
	log *oplogging.Logger
}

// NewHandler returns a Handler at the standard starting position with a
// fresh search engine.
func NewHandler() *Handler {
	return &Handler{
		pos:    position.NewStartPosition(),
		engine: search.NewEngine(),
		out:    message.NewPrinter(language.English),
		log:    logging.GetLog(),
	}
}

// Run reads UCI commands from in, line by line, writing protocol replies
// to out, until "quit" is received or in is exhausted. It returns the
// process exit code: 0 on a clean quit.
func (h *Handler) Run(in io.Reader, out io.Writer) int {
	lines := make(chan string, 64)

	go func() {
		sc := bufio.NewScanner(in)
		sc.Buffer(make([]byte, 0, 4096), 1<<20)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			switch line {
			case "stop":
				h.stop.Store(true)
			case "quit":
				h.stop.Store(true)
				h.quit.Store(true)
			}
			lines <- line
		}
		close(lines)
	}()

	h.engine.PollStop = h.stop.Load

	for line := range lines {
		if line == "" {
			continue
		}
		h.dispatch(line, out)
		// Lines queued ahead of "quit" are still dispatched in order; the
		// reader's early flag only cuts a running search short.
		if line == "quit" {
			break
		}
	}
	return 0
}

func (h *Handler) dispatch(line string, out io.Writer) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "uci":
		// Two "id name" lines, never an "id author" line. See DESIGN.md.
		fmt.Fprintf(out, "id name %s\n", engineName)
		fmt.Fprintf(out, "id name %s\n", engineAuthorName)
		fmt.Fprintln(out, "uciok")
	case "isready":
		fmt.Fprintln(out, "readyok")
	case "ucinewgame":
		h.pos = position.NewStartPosition()
		h.engine.NewGame()
	case "position":
		h.handlePosition(fields[1:])
		h.engine.TT.Clear()
	case "go":
		h.handleGo(fields[1:], out)
	case "stop", "quit":
		// Already actioned by the reader goroutine; nothing further to do.
	case "d", "print":
		h.printBoard(out)
	default:
		// Malformed or unrecognized lines are ignored silently, per the
		// error handling design: only a well-formed command advances
		// engine state.
	}
}

// printBoard handles the "d" debug command: an ASCII board, the Zobrist
// key and the position's FEN.
func (h *Handler) printBoard(out io.Writer) {
	h.out.Fprintln(out)
	for rank := 8; rank >= 1; rank-- {
		h.out.Fprintf(out, "%d  ", rank)
		for file := 0; file < 8; file++ {
			sq := SquareOf(File(file), rank)
			h.out.Fprintf(out, "%c  ", h.pos.PieceAt(sq).Char())
		}
		h.out.Fprintln(out)
	}
	h.out.Fprintln(out, "\n   a  b  c  d  e  f  g  h")
	h.out.Fprintf(out, "\n     Side:     %s\n", h.pos.Side.String())
	h.out.Fprintf(out, "     Castling: %s\n", h.pos.Castle.String())
	h.out.Fprintf(out, "     Hash key: %x\n", uint64(h.pos.Hash))
	h.out.Fprintf(out, "     FEN:      %s\n\n", fen.String(h.pos))
}
