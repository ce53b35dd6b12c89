// Package cli implements the prismview command-line interface.
//
// The CLI is built using cobra and logs through charmbracelet/log. Every
// command goes through the shared pipeline package, so output matches
// what the HTTP server produces for the same options.
//
// # Commands
//
// The main commands are:
//   - render: lay out scenes and write SVG, PNG or JSON
//   - layout / visualize: the two halves of render, with a frame file between
//   - hierarchy: draw a scene's color hierarchy as a node-link diagram
//   - scenes: list the built-in scenes
//   - view: interactive terminal preview; space cycles scenes
//   - serve: HTTP API
//   - cache, config: manage local state
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports layout, render and cache events.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed time.
// Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Rendered 3 scenes (12ms)".
func (p *progress) done(msg string, keyvals ...any) {
	args := append([]any{"took", time.Since(p.start).Round(time.Millisecond)}, keyvals...)
	p.logger.Info(msg, args...)
}
