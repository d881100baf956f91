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

package search

import (
	"time"

	"github.com/cmk/bbcgo/internal/config"
	. "github.com/cmk/bbcgo/internal/types"
)

// DefaultMaxDepth is used when a go command carries no explicit depth and
// config.Settings.Search.MaxDepth has not been set (e.g. config.Setup was
// never called).
const DefaultMaxDepth = 64

// defaultMoveOverhead is the safety margin subtracted from a computed
// per-move budget when config.Settings.Search.MoveOverheadMs is unset.
const defaultMoveOverhead = 50 * time.Millisecond

// Limits holds everything a "go" command can specify about how long and how
// deep to search.
type Limits struct {
	Depth     int
	WhiteTime time.Duration
	BlackTime time.Duration
	WhiteInc  time.Duration
	BlackInc  time.Duration
	MoveTime  time.Duration
	MovesToGo int
	Infinite  bool

	// MoveOverhead is subtracted from a computed per-move budget once it
	// exceeds the 1500ms threshold, leaving room for I/O and move
	// transmission. Zero falls back to defaultMoveOverhead.
	MoveOverhead time.Duration
}

// NewLimits returns an empty Limits, equivalent to "go" with no parameters:
// search to the engine's MaxDepth with no time budget, using the configured
// move-overhead margin from config.Settings.Search.MoveOverheadMs.
func NewLimits() Limits {
	return Limits{MoveOverhead: time.Duration(config.Settings.Search.MoveOverheadMs) * time.Millisecond}
}

// deadline computes the absolute wall-clock time the search must stop by,
// given the side to move and the moment the go command was received. The
// second return value is false when no time control applies (infinite
// search or a bare depth limit), in which case only node/depth limits bound
// the search.
func (l Limits) deadline(side Color, start time.Time) (time.Time, bool) {
	if l.Infinite {
		return time.Time{}, false
	}
	if l.MoveTime > 0 {
		return start.Add(l.MoveTime), true
	}

	var remaining, inc time.Duration
	if side == White {
		remaining, inc = l.WhiteTime, l.WhiteInc
	} else {
		remaining, inc = l.BlackTime, l.BlackInc
	}
	if remaining <= 0 {
		return time.Time{}, false
	}

	movesToGo := l.MovesToGo
	if movesToGo <= 0 {
		movesToGo = 30
	}
	overhead := l.MoveOverhead
	if overhead <= 0 {
		overhead = defaultMoveOverhead
	}

	budget := remaining / time.Duration(movesToGo)
	if budget > 1500*time.Millisecond {
		budget -= overhead
	}
	budget += inc
	if budget <= 0 {
		budget = time.Millisecond
	}
	return start.Add(budget), true
}
