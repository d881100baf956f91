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

// Package transpositiontable implements a fixed-size, direct-mapped
// transposition table for caching search results across branches of the
// game tree. It is not safe for concurrent use; the engine has a single
// search thread by design.
package transpositiontable

import (
	"unsafe"

	"github.com/cmk/bbcgo/internal/zobrist"
)

// Flag classifies how a stored score relates to the alpha-beta window it
// was computed under.
type Flag uint8

const (
	// None marks an empty slot.
	None Flag = iota
	// Exact means score is the true minimax value.
	Exact
	// Alpha means score is an upper bound (search failed low).
	Alpha
	// Beta means score is a lower bound (search failed high).
	Beta
)

// Search score constants, shared with the search package for mate-score
// window checks.
const (
	Infinity  = 50000
	MateValue = 49000
	MateScore = 48000
)

// DefaultSize is the default table size: 800,000 entries, direct-mapped
// by hash modulo DefaultSize. Larger tables trade memory for fewer
// collisions. The slot is computed by modulo rather than a power-of-two
// mask, so any entry count works.
const DefaultSize = 800_000

// EntriesForMB returns how many entries fit into sizeMb megabytes, so the
// table can be sized from an operator-facing byte budget rather than a raw
// entry count. sizeMb <= 0 falls back to DefaultSize.
func EntriesForMB(sizeMb int) int {
	if sizeMb <= 0 {
		return DefaultSize
	}
	return sizeMb * 1024 * 1024 / int(unsafe.Sizeof(Entry{}))
}

// Entry is one slot of the table.
type Entry struct {
	Hash  zobrist.Key
	Depth int
	Flag  Flag
	Score int
}

// Table is a fixed-size, always-replace transposition table.
type Table struct {
	entries []Entry
}

// New creates a table with size entries. size <= 0 falls back to
// DefaultSize.
func New(size int) *Table {
	if size <= 0 {
		size = DefaultSize
	}
	return &Table{entries: make([]Entry, size)}
}

// Len returns the table's entry count.
func (t *Table) Len() int {
	return len(t.entries)
}

// Clear empties every slot, used at engine start, at ucinewgame, and after
// every position command.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}

func (t *Table) slot(hash zobrist.Key) *Entry {
	return &t.entries[uint64(hash)%uint64(len(t.entries))]
}

// Store writes an entry, always replacing whatever was in that slot.
// Mate scores are ply-relative during search (mate-in-N from the current
// node) but must be stored ply-independent so a later probe at a
// different ply rebases correctly; Probe applies the inverse adjustment.
func (t *Table) Store(hash zobrist.Key, depth int, flag Flag, score int, ply int) {
	if score > MateScore {
		score += ply
	} else if score < -MateScore {
		score -= ply
	}
	*t.slot(hash) = Entry{Hash: hash, Depth: depth, Flag: flag, Score: score}
}

// Probe looks up hash for a usable bound given the current alpha/beta
// window and required depth. ok is false on a miss (wrong hash, shallower
// depth, or a stored bound that doesn't resolve the window).
func (t *Table) Probe(hash zobrist.Key, depth, alpha, beta, ply int) (score int, ok bool) {
	e := t.slot(hash)
	if e.Hash != hash || e.Depth < depth {
		return 0, false
	}

	score = e.Score
	if score < -MateScore {
		score += ply
	} else if score > MateScore {
		score -= ply
	}

	switch e.Flag {
	case Exact:
		return score, true
	case Alpha:
		if score <= alpha {
			return alpha, true
		}
	case Beta:
		if score >= beta {
			return beta, true
		}
	}
	return 0, false
}
