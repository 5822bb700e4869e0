/*
 * Corvid - a bitboard chess engine core written in Go
 */

// Package config holds the globally available configuration for the
// engine: search heuristics, evaluation toggles and logging setup. It is
// populated by defaults set in each section's init(), then optionally
// overridden by a TOML file, then optionally overridden again by command
// line flags in cmd/corvid.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

var (
	// ConfFile is the path to the configuration file. Must be set before
	// Setup is called to have any effect.
	ConfFile = "./config.toml"

	// LogLevel is the standard (engine lifecycle) log level.
	LogLevel = 5

	// SearchLogLevel is the (usually much chattier) search-trace log level.
	SearchLogLevel = 3

	// Settings holds every configuration value, defaulted then possibly
	// overridden from ConfFile.
	Settings Conf

	initialized = false
)

// Conf is the top-level configuration structure decoded from TOML.
type Conf struct {
	Search SearchConfig
	Eval   EvalConfig
	Log    LogConfig
}

// Setup reads the configuration file named by ConfFile, falling back to
// the defaults set by each section's init() when the file is missing or
// unparseable - this is deliberately non-fatal (ConfigUnavailable in the
// spec's error taxonomy is a logged notice, not a panic).
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config: file not found or invalid, using defaults:", err)
	}
	initialized = true
}

// Reset clears the initialized flag so a subsequent Setup() re-reads the
// file - used by tests that swap ConfFile between cases.
func Reset() {
	initialized = false
}
