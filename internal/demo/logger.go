// Package demo wires the virtual package into a runnable bubbletea
// program: a scrollable list model, row rendering, a settings overlay,
// and optional on-disk persistence of measured item sizes.
package demo

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds a console logger for the demo program. Output goes
// to stderr so it never interleaves with the bubbletea-rendered
// terminal screen on stdout.
func NewLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	var w io.Writer = zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}

	return zerolog.New(w).With().Timestamp().Str("app", "vscrolldemo").Logger()
}
