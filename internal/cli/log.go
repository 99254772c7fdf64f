// Package cli implements the showcase command-line interface.
//
// The CLI runs the project pipeline against a GitHub account and presents
// the result as a table, as JSON, in an interactive browser, or over an
// HTTP API. It is built using cobra and logs via charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - projects: Print the categorized project listing
//   - browse: Page through projects interactively
//   - serve: Serve projects and the contact form over HTTP
//   - contact: Send a contact message to the configured store
//   - config: Show or validate the configuration
//   - cache: Manage the API response cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs cache, HTTP and pipeline events. Loggers are passed through
// context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at level, with timestamps like
// "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs the completion of a long-running step with its duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level with the elapsed time under "took".
// Example output: "14:32:01.45 INFO loaded projects owner=octocat took=1.234s"
func (p *progress) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "took", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a copy of ctx carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached with withLogger, or
// log.Default() if there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
