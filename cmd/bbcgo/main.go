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

// Command bbcgo is the engine's process entry point: it reads the config
// file and command-line flags, then either runs a standalone perft bench
// or hands stdin/stdout to the UCI handler.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/cmk/bbcgo/internal/config"
	"github.com/cmk/bbcgo/internal/fen"
	"github.com/cmk/bbcgo/internal/logging"
	"github.com/cmk/bbcgo/internal/movegen"
	"github.com/cmk/bbcgo/internal/uci"
)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	maxDepth := flag.Int("maxdepth", 0, "override the configured iterative-deepening depth ceiling")
	moveOverhead := flag.Int("moveoverhead", 0, "override the configured move-overhead safety margin, in milliseconds")
	perftDepth := flag.Int("perft", 0, "run a standalone perft to the given depth on -fen (or the start position) and exit")
	fenStr := flag.String("fen", fen.StartFEN, "FEN to use with -perft")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of this run to ./cpu.pprof")
	flag.Parse()

	var prof interface{ Stop() }
	if *cpuProfile {
		prof = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	}

	// This needs to happen before config.Setup() or the default will be used.
	config.ConfFile = *configFile
	config.Setup()

	// After reading the config file and defaults, command-line flags
	// override individual settings.
	if *maxDepth > 0 {
		config.Settings.Search.MaxDepth = *maxDepth
	}
	if *moveOverhead > 0 {
		config.Settings.Search.MoveOverheadMs = *moveOverhead
	}

	logging.GetLog()

	exitCode := 0
	if *perftDepth > 0 {
		runPerft(*fenStr, *perftDepth)
	} else {
		exitCode = uci.NewHandler().Run(os.Stdin, os.Stdout)
	}

	// os.Exit does not run deferred calls, so the profile is stopped here.
	if prof != nil {
		prof.Stop()
	}
	os.Exit(exitCode)
}

// runPerft prints one line per depth from 1 to depth, so each line can be
// checked on its own against published perft node counts.
func runPerft(fenStr string, depth int) {
	pos, err := fen.Parse(fenStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "perft: ", err)
		os.Exit(1)
	}
	for d := 1; d <= depth; d++ {
		nodes := movegen.Perft(pos, d)
		fmt.Printf("perft %d: %d nodes\n", d, nodes)
	}
}
