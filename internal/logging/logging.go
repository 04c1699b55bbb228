// Package logging provides the engine's optional verbose tracer. It's
// deliberately thin: a single slog.Logger the reduction loop can report
// rewrite events through when --verbose is set. None of the libraries
// the retrieved example repos use for logging (there are none in any
// go.mod under _examples/) apply here, so this one ambient concern rides
// on the standard library's log/slog rather than an ecosystem package —
// see DESIGN.md for the explicit justification.
package logging

import (
	"context"
	"io"
	"log/slog"
)

// New builds a text-handler slog.Logger writing to w. level controls
// verbosity; callers typically pass slog.LevelInfo normally and
// slog.LevelDebug under --verbose.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// RewriteEvent logs one applied rewrite step at debug level.
func RewriteEvent(ctx context.Context, logger *slog.Logger, rule string, a, b int, gasUsed int) {
	logger.DebugContext(ctx, "rewrite applied", "rule", rule, "node_a", a, "node_b", b, "gas_used", gasUsed)
}

// SearchProgress logs one progress callback invocation at info level.
func SearchProgress(ctx context.Context, logger *slog.Logger, runID string, index uint64, found bool) {
	logger.InfoContext(ctx, "search progress", "run_id", runID, "index", index, "found", found)
}
