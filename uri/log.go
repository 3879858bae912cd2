package uri

import (
	"context"
	"io"
	"log/slog"
)

// logger is the package-level slog.Logger the package's debug output goes
// through; ResolveUri is the only function that logs. It defaults to a handler that discards everything, matching
// ghettovoice-gosip/internal/log's Noop logger: a parsing library has no
// business writing to a caller's stderr unless asked.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger replaces the package-level logger. Passing nil restores the
// no-op default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = l
}

func logDebug(msg string, args ...any) {
	logger.DebugContext(context.Background(), msg, args...)
}
