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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cmk/bbcgo/internal/config"
	"github.com/cmk/bbcgo/internal/fen"
	"github.com/cmk/bbcgo/internal/movegen"
	"github.com/cmk/bbcgo/internal/position"
	"github.com/cmk/bbcgo/internal/transpositiontable"
	. "github.com/cmk/bbcgo/internal/types"
)

func TestFindsBackRankMateInOne(t *testing.T) {
	pos, err := fen.Parse("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	assert.NoError(t, err)

	e := NewEngine()
	var lastInfo Info
	best := e.Run(pos, Limits{Depth: 3}, func(i Info) { lastInfo = i })

	assert.Equal(t, "a1a8", best.String())
	assert.True(t, lastInfo.Mate)
	assert.Equal(t, 1, lastInfo.Score)
}

func TestRootMoveIsAlwaysLegal(t *testing.T) {
	pos := position.NewStartPosition()
	e := NewEngine()
	best := e.Run(pos, Limits{Depth: 2}, nil)

	var list MoveList
	movegen.Generate(pos, &list, false)
	assert.True(t, list.Contains(best))
}

func TestStalemateScoresAsDraw(t *testing.T) {
	// Black to move, king on a8 has no legal move and is not in check.
	pos, err := fen.Parse("k7/8/1Q6/8/8/8/8/1K6 b - - 0 1")
	assert.NoError(t, err)

	e := NewEngine()
	var lastInfo Info
	e.Run(pos, Limits{Depth: 1}, func(i Info) { lastInfo = i })
	assert.False(t, lastInfo.Mate)
	assert.Equal(t, 0, lastInfo.Score)

	var list MoveList
	movegen.Generate(pos, &list, false)
	legalMoves := 0
	for i := 0; i < list.Count; i++ {
		if pos.Make(list.Moves[i], position.All) {
			legalMoves++
			pos.Unmake()
		}
	}
	assert.Equal(t, 0, legalMoves)
	assert.False(t, pos.InCheck())
}

func TestNewGameClearsTables(t *testing.T) {
	pos := position.NewStartPosition()
	e := NewEngine()
	e.Run(pos, Limits{Depth: 2}, nil)
	e.NewGame()
	assert.Equal(t, 0, e.Order.History[WP][SqE4])
}

func TestCheckStopHonorsExternalPoll(t *testing.T) {
	e := NewEngine()
	e.PollStop = func() bool { return true }
	e.checkStop()
	assert.True(t, e.stopped)
}

func TestCheckStopHonorsExpiredDeadline(t *testing.T) {
	e := NewEngine()
	e.hasDeadline = true
	e.deadline = time.Now().Add(-time.Second)
	e.checkStop()
	assert.True(t, e.stopped)
}

func TestNewEngineFallsBackToDefaultsWithoutConfig(t *testing.T) {
	saved := config.Settings.Search
	config.Settings.Search.MaxDepth = 0
	config.Settings.Search.TTSizeMb = 0
	defer func() { config.Settings.Search = saved }()

	e := NewEngine()
	assert.Equal(t, DefaultMaxDepth, e.MaxDepth)
}

func TestNewEnginePicksUpConfiguredMaxDepthAndTTSize(t *testing.T) {
	saved := config.Settings.Search
	config.Settings.Search.MaxDepth = 12
	config.Settings.Search.TTSizeMb = 1
	defer func() { config.Settings.Search = saved }()

	e := NewEngine()
	assert.Equal(t, 12, e.MaxDepth)
	assert.Equal(t, transpositiontable.EntriesForMB(1), e.TT.Len())
}
