// Package cli implements the apidoc command-line interface.
//
// apidoc reads a distribution snapshot (a JSON dump of bundles, components,
// services, extension points, contributions, operations and packages) and
// runs one of the registered exporters over it. The CLI is built using cobra
// and logs through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - export: Run a graph or statistics exporter over a snapshot
//   - stats: Shortcut for the contribution statistics exporters
//   - groups: Print the namespace group forest of a snapshot
//   - versions: Sort and check distribution version strings
//   - exporters: List the exporter registry
//   - cache: Manage the SVG render cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Configuration
//
// Exporter descriptors, code-type lists and default selections are read from
// apidoc.toml (see [Config]).
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger writing to w with short wall-clock timestamps
// ("15:04:05.00").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// step times one command phase. Not safe for concurrent use.
type step struct {
	logger *log.Logger
	start  time.Time
}

func startStep(l *log.Logger) *step {
	return &step{logger: l, start: time.Now()}
}

// done logs msg at info level with keyvals and the elapsed time, rounded to
// the millisecond, under the "elapsed" key.
func (s *step) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(s.start).Round(time.Millisecond))
	s.logger.Info(msg, keyvals...)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger stored by withLogger, or
// log.Default() when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
