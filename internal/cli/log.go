// Package cli implements the chaosnote command-line interface.
//
// The default command opens a full-screen editor whose note is rewritten on
// a timer while the headline drifts through random Cyrillic letters. The
// remaining commands run the same engine headless (mutate, headline) or
// inspect local state (note, config).
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context. While the editor owns the terminal, log
// output is redirected to a file under the XDG state directory.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
// The returned progress should call done when the operation completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
// Example output: "Applied 10 mutations (1ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// The logger can be retrieved later with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
// This ensures commands always have a valid logger even if context setup fails.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports engine events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnSeed(_ context.Context, symbol string) {
	h.logger.Debug("seeded empty note", "symbol", symbol)
}

func (h *logHooks) OnOperator(_ context.Context, operator string, before, after int) {
	h.logger.Debug("mutation", "op", operator, "before", before, "after", after)
}

func (h *logHooks) OnReverse(_ context.Context, direction, target string) {
	h.logger.Debug("headline reversed", "direction", direction, "target", target)
}

func (h *logHooks) OnStart(_ context.Context, period, headlinePeriod time.Duration) {
	h.logger.Debug("chaos started", "period", period, "headline", headlinePeriod)
}

func (h *logHooks) OnStop(context.Context) {
	h.logger.Debug("chaos stopped")
}

func (h *logHooks) OnPeriodChange(_ context.Context, from, to time.Duration) {
	h.logger.Debug("speed changed", "from", from, "to", to)
}
