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

// Package config holds globally available configuration variables which are
// either set by defaults, read from a config file or set by command line
// options.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/cmk/bbcgo/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the used config file. A relative path is
	// looked up by util.ResolveFile in the working directory, the
	// executable's directory and the home directory, in that order.
	ConfFile = "./config.toml"

	// LogLevel names the general log level. No command-line flag or config
	// file entry sets it.
	LogLevel = "info"

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

type conf struct {
	Search searchConfiguration
}

// searchConfiguration holds the tunables of the search that an operator
// might reasonably want to change without a recompile. The evaluation
// weights (material, PSQT, pawn structure) are not configurable: they are
// fixed constants of the engine, not user-facing options.
type searchConfiguration struct {
	// TTSizeMb is the transposition table size in megabytes.
	TTSizeMb int
	// MaxDepth is the iterative-deepening depth ceiling used when "go"
	// specifies no "depth", with or without a time budget.
	MaxDepth int
	// MoveOverheadMs is subtracted as a safety margin from the computed
	// per-move time budget once that budget exceeds 1500ms, leaving room
	// for I/O and move transmission.
	MoveOverheadMs int
}

// Setup reads the configuration file and sets defaults for anything
// the file does not provide.
func Setup() {
	if initialized {
		return
	}

	Settings = conf{
		Search: searchConfiguration{
			TTSizeMb:       64,
			MaxDepth:       64,
			MoveOverheadMs: 50,
		},
	}

	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}

	initialized = true
}

// String prints out the current configuration settings and values using
// reflection, the way a debug "info string" dump would.
func (settings *conf) String() string {
	var c strings.Builder
	c.WriteString("Search Config:\n")
	s := reflect.ValueOf(&settings.Search).Elem()
	typeOfT := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	return c.String()
}
