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

// Package moveorder scores and sorts a generated move list so that search
// explores the moves most likely to be good, or most likely to prune,
// first: the PV move, then captures by MVV-LVA, then killers, then history.
package moveorder

import (
	"sort"

	"github.com/cmk/bbcgo/internal/position"
	. "github.com/cmk/bbcgo/internal/types"
)

const (
	pvScore          = 20000
	captureBaseScore = 10000
	killerOneScore   = 9000
	killerTwoScore   = 8000
)

// mvvLva[attackerKind][victimKind] = 100*(6-attackerKind) + 100*victimKind,
// producing the canonical "pawn takes queen is best, queen takes pawn is
// worst" capture ordering.
var mvvLva [6][6]int

func init() {
	for attacker := 0; attacker < 6; attacker++ {
		for victim := 0; victim < 6; victim++ {
			mvvLva[attacker][victim] = 100*(6-attacker) + 100*victim
		}
	}
}

// Tables holds the per-search-line move-ordering state: killer moves and
// history scores, indexed by ply and by [piece][target] respectively.
type Tables struct {
	Killer  [MaxPly][2]Move
	History [NumPieces][SqLength]int
}

// MaxPly bounds the ply-indexed killer table; no reasonable search reaches
// this depth.
const MaxPly = 128

// NewTables returns a zeroed ordering state.
func NewTables() *Tables {
	return &Tables{}
}

// Clear resets killers and history, done at engine start and ucinewgame.
func (t *Tables) Clear() {
	*t = Tables{}
}

// RecordKiller shifts move into the ply's killer slots, unless it is
// already the top killer.
func (t *Tables) RecordKiller(ply int, move Move) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	if t.Killer[ply][0] == move {
		return
	}
	t.Killer[ply][1] = t.Killer[ply][0]
	t.Killer[ply][0] = move
}

// AddHistory increments the history score for a quiet move that caused a
// beta cutoff, weighted by the remaining search depth.
func (t *Tables) AddHistory(piece Piece, target Square, depth int) {
	t.History[piece][target] += depth
}

// Score scores every move in list for the given ply. pvMove is the move to
// prioritize above all else (typically pv_table[0][ply]), or MoveNone if
// none applies.
func (t *Tables) Score(pos *position.Position, list MoveList, ply int, pvMove Move) []int {
	scores := make([]int, list.Count)
	for i := 0; i < list.Count; i++ {
		scores[i] = t.scoreMove(pos, list.Moves[i], ply, pvMove)
	}
	return scores
}

func (t *Tables) scoreMove(pos *position.Position, m Move, ply int, pvMove Move) int {
	if pvMove != MoveNone && m == pvMove {
		return pvScore
	}
	if m.IsCapture() {
		attacker := m.Piece().Kind()
		victim := pos.PieceAt(m.To())
		victimKind := KindPawn
		if m.IsEnPassant() {
			victimKind = KindPawn
		} else if victim != NoPiece {
			victimKind = victim.Kind()
		}
		return mvvLva[attacker][victimKind] + captureBaseScore
	}
	if ply >= 0 && ply < MaxPly {
		if m == t.Killer[ply][0] {
			return killerOneScore
		}
		if m == t.Killer[ply][1] {
			return killerTwoScore
		}
	}
	return t.History[m.Piece()][m.To()]
}

// Sort orders list's moves by descending score in place.
func Sort(list *MoveList, scores []int) {
	idx := make([]int, list.Count)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
	sorted := make([]Move, list.Count)
	for i, j := range idx {
		sorted[i] = list.Moves[j]
	}
	copy(list.Moves[:list.Count], sorted)
}
