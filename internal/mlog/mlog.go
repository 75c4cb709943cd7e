// Package mlog wraps github.com/rs/zerolog into the engine's logging
// facade: one process-wide structured logger, configured once from
// config.Config, that every package logs state transitions through
// instead of fmt.Printf.
//
// Grounded on github.com/smilemakc/mbflow's src/internal/config.go and
// factory.go, which both log through a package-level zerolog logger
// rather than constructing one per call site.
package mlog

import (
	"os"

	"github.com/rs/zerolog"
)

// L is the package-wide logger. Init replaces it; until then it writes
// human-readable console output with no level filter of its own.
var L = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// Init configures L's level from a spec.md §6 LogLevel string
// ("debug", "info", "warn", "error"); an unrecognized or empty level
// sets info.
func Init(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	L = L.Level(lvl)
}
