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

// Package search implements iterative-deepening negamax with alpha-beta
// pruning, principal-variation search, null-move pruning, late-move
// reduction, quiescence search and a transposition table. It owns the only
// mutator of position state during a search: the position is walked forward
// and backward in place via Position.Make/Unmake, never copied.
package search

import (
	"time"

	"github.com/cmk/bbcgo/internal/config"
	"github.com/cmk/bbcgo/internal/evaluator"
	"github.com/cmk/bbcgo/internal/moveorder"
	"github.com/cmk/bbcgo/internal/movegen"
	"github.com/cmk/bbcgo/internal/position"
	"github.com/cmk/bbcgo/internal/transpositiontable"
	. "github.com/cmk/bbcgo/internal/types"
)

// Search score bounds, shared with the transposition table so mate-score
// rebasing agrees across packages.
const (
	Infinity  = transpositiontable.Infinity
	MateValue = transpositiontable.MateValue
	MateScore = transpositiontable.MateScore
)

// aspirationWindow is the half-width of the window opened around the
// previous iteration's score before falling back to a full-width search.
const aspirationWindow = 50

// nodesPerPoll is how often, in visited nodes, the search checks the
// cancellation deadline and the external stop signal.
const nodesPerPoll = 2048

// fullDepthMoves and reductionLimit gate late-move reduction: the first
// fullDepthMoves moves at a node, and any node shallower than
// reductionLimit, are always searched at full depth.
const (
	fullDepthMoves = 4
	reductionLimit = 3
)

// Info is emitted once per completed iterative-deepening depth.
type Info struct {
	Depth int
	Score int
	Mate  bool
	Nodes uint64
	Time  time.Duration
	PV    []Move
}

// Engine holds everything a search needs beyond the position itself: the
// transposition table and the killer/history/PV tables. An Engine is reused
// across searches on the same game so the tables keep accumulating
// knowledge; Clear resets them for a new game.
type Engine struct {
	TT    *transpositiontable.Table
	Order *moveorder.Tables

	// MaxDepth is the iterative-deepening ceiling used when a "go" command
	// carries no "depth", with or without a time budget. Set from
	// config.Settings.Search.MaxDepth at construction.
	MaxDepth int

	pv    [moveorder.MaxPly][moveorder.MaxPly]Move
	pvLen [moveorder.MaxPly]int

	followPV bool
	scorePV  bool

	nodes   uint64
	stopped bool

	deadline    time.Time
	hasDeadline bool

	// PollStop, when set, is consulted every nodesPerPoll nodes alongside
	// the wall-clock deadline, so an external "stop"/"quit" can interrupt
	// a running search. Rather than tie the search package to a particular
	// I/O mechanism, the caller (the UCI front end) supplies a predicate
	// backed by its own stdin reader goroutine.
	PollStop func() bool
}

// NewEngine returns an Engine with a fresh transposition table and ordering
// tables, sized and depth-capped from config.Settings.Search (falling back
// to engine defaults when Setup has not populated it, e.g. in tests).
func NewEngine() *Engine {
	maxDepth := DefaultMaxDepth
	if config.Settings.Search.MaxDepth > 0 {
		maxDepth = config.Settings.Search.MaxDepth
	}
	return &Engine{
		TT:       transpositiontable.New(transpositiontable.EntriesForMB(config.Settings.Search.TTSizeMb)),
		Order:    moveorder.NewTables(),
		MaxDepth: maxDepth,
	}
}

// NewGame resets the tables for a new game: a fresh TT and cleared
// killer/history state. Hash continuity across moves of the same game is
// kept by the caller via Position.PushGameHash, not by the Engine.
func (e *Engine) NewGame() {
	e.TT.Clear()
	e.Order.Clear()
}

// Run performs an iterative-deepening search of pos under limits, calling
// onInfo after each completed depth (if non-nil), and returns the best move
// found. The returned move is always from the deepest iteration that
// finished before the deadline or stop signal; a partial iteration's
// results are discarded.
func (e *Engine) Run(pos *position.Position, limits Limits, onInfo func(Info)) Move {
	start := time.Now()
	e.deadline, e.hasDeadline = limits.deadline(pos.Side, start)
	e.nodes = 0
	e.stopped = false

	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth > moveorder.MaxPly-1 {
		maxDepth = e.MaxDepth
	}

	var bestMove Move
	prevScore := 0

	for depth := 1; depth <= maxDepth; depth++ {
		e.followPV = true
		e.scorePV = false

		alpha, beta := -Infinity, Infinity
		if depth > 1 {
			alpha, beta = prevScore-aspirationWindow, prevScore+aspirationWindow
		}

		var score int
		for {
			score = e.negamax(pos, alpha, beta, depth, 0)
			if e.stopped {
				break
			}
			if score <= alpha || score >= beta {
				alpha, beta = -Infinity, Infinity
				continue
			}
			break
		}

		if e.stopped {
			break
		}

		prevScore = score
		if e.pvLen[0] > 0 {
			bestMove = e.pv[0][0]
		}

		if onInfo != nil {
			line := append([]Move(nil), e.pv[0][:e.pvLen[0]]...)
			mate := false
			reported := score
			if score > MateScore {
				mate = true
				reported = (MateValue - score + 1) / 2
			} else if score < -MateScore {
				mate = true
				reported = -(MateValue + score + 1) / 2
			}
			onInfo(Info{Depth: depth, Score: reported, Mate: mate, Nodes: e.nodes, Time: time.Since(start), PV: line})
		}
	}

	return bestMove
}

func (e *Engine) checkStop() {
	if e.hasDeadline && !time.Now().Before(e.deadline) {
		e.stopped = true
		return
	}
	if e.PollStop != nil && e.PollStop() {
		e.stopped = true
	}
}

// enablePVScoring turns scorePV on for this node if the previous
// iteration's PV move at this ply is present in list, and turns followPV
// off otherwise so deeper nodes stop bothering to check.
func (e *Engine) enablePVScoring(list *MoveList, ply int) {
	e.followPV = false
	for i := 0; i < list.Count; i++ {
		if list.Moves[i] == e.pv[0][ply] {
			e.scorePV = true
			e.followPV = true
			return
		}
	}
}

func (e *Engine) negamax(pos *position.Position, alpha, beta, depth, ply int) int {
	e.pvLen[ply] = ply

	e.nodes++
	if e.nodes%nodesPerPoll == 0 {
		e.checkStop()
	}
	if e.stopped {
		return 0
	}

	if ply > 0 && pos.IsRepetition() {
		return 0
	}

	pvNode := beta-alpha > 1

	if ply > 0 && !pvNode {
		if score, ok := e.TT.Probe(pos.Hash, depth, alpha, beta, ply); ok {
			return score
		}
	}

	if depth == 0 {
		return e.quiescence(pos, alpha, beta, ply)
	}
	if ply >= moveorder.MaxPly-1 {
		return evaluator.Evaluate(pos)
	}

	inCheck := pos.InCheck()
	if inCheck {
		depth++
	}

	if depth >= reductionLimit && !inCheck && ply > 0 {
		pos.MakeNull()
		score := -e.negamax(pos, -beta, -beta+1, depth-1-2, ply+1)
		pos.UnmakeNull()
		if e.stopped {
			return 0
		}
		if score >= beta {
			return beta
		}
	}

	var list MoveList
	movegen.Generate(pos, &list, false)

	if e.followPV {
		e.enablePVScoring(&list, ply)
	}
	pvMove := MoveNone
	if e.scorePV {
		pvMove = e.pv[0][ply]
		e.scorePV = false
	}
	scores := e.Order.Score(pos, list, ply, pvMove)
	moveorder.Sort(&list, scores)

	legalMoves := 0
	movesSearched := 0
	ttFlag := transpositiontable.Alpha

	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		if !pos.Make(m, position.All) {
			continue
		}
		legalMoves++

		var score int
		if movesSearched == 0 {
			score = -e.negamax(pos, -beta, -alpha, depth-1, ply+1)
		} else {
			if movesSearched >= fullDepthMoves && depth >= reductionLimit && !inCheck && m.IsQuiet() {
				score = -e.negamax(pos, -alpha-1, -alpha, depth-2, ply+1)
			} else {
				score = alpha + 1
			}
			if score > alpha {
				score = -e.negamax(pos, -alpha-1, -alpha, depth-1, ply+1)
				if score > alpha && score < beta {
					score = -e.negamax(pos, -beta, -alpha, depth-1, ply+1)
				}
			}
		}
		movesSearched++

		pos.Unmake()

		if e.stopped {
			return 0
		}

		if score > alpha {
			ttFlag = transpositiontable.Exact
			if m.IsQuiet() {
				e.Order.AddHistory(m.Piece(), m.To(), depth)
			}
			alpha = score

			e.pv[ply][ply] = m
			for next := ply + 1; next < e.pvLen[ply+1]; next++ {
				e.pv[ply][next] = e.pv[ply+1][next]
			}
			e.pvLen[ply] = e.pvLen[ply+1]

			if score >= beta {
				e.TT.Store(pos.Hash, depth, transpositiontable.Beta, beta, ply)
				if m.IsQuiet() {
					e.Order.RecordKiller(ply, m)
				}
				return beta
			}
		}
	}

	if legalMoves == 0 {
		if inCheck {
			return -MateValue + ply
		}
		return 0
	}

	e.TT.Store(pos.Hash, depth, ttFlag, alpha, ply)
	return alpha
}

func (e *Engine) quiescence(pos *position.Position, alpha, beta, ply int) int {
	e.nodes++
	if e.nodes%nodesPerPoll == 0 {
		e.checkStop()
	}
	if e.stopped {
		return 0
	}
	if ply >= moveorder.MaxPly-1 {
		return evaluator.Evaluate(pos)
	}

	standPat := evaluator.Evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var list MoveList
	movegen.Generate(pos, &list, true)
	scores := e.Order.Score(pos, list, ply, MoveNone)
	moveorder.Sort(&list, scores)

	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		if !pos.Make(m, position.CapturesOnly) {
			continue
		}
		score := -e.quiescence(pos, -beta, -alpha, ply+1)
		pos.Unmake()

		if e.stopped {
			return 0
		}

		if score > alpha {
			alpha = score
			if score >= beta {
				return beta
			}
		}
	}

	return alpha
}
