package scoreheap

import (
	"log/slog"
	"os"

	"github.com/obsius/score-heap/core"
)

// Logger wraps slog.Logger with scoreheap-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogSplit logs a sorted-segment split.
func (l *Logger) LogSplit(segID, newID int32, kept, moved int) {
	l.Debug("segment split",
		"segment", segID,
		"upper", newID,
		"kept", kept,
		"moved", moved,
	)
}

// LogJoin logs two segments merging.
func (l *Logger) LogJoin(into, from int32, length int) {
	l.Debug("segments joined",
		"into", into,
		"from", from,
		"length", length,
	)
}

// LogConvert logs a sorted segment being replaced by a uniform one.
func (l *Logger) LogConvert(segID, newID int32, score core.Score) {
	l.Debug("segment converted to uniform",
		"segment", segID,
		"uniform", newID,
		"score", int32(score),
	)
}

// LogSegmentDrop logs an emptied segment leaving the sequence.
func (l *Logger) LogSegmentDrop(segID int32) {
	l.Debug("segment dropped",
		"segment", segID,
	)
}

// LogJoinOverflow logs an aborted join. A join that would overflow a sorted
// segment's fixed backing size indicates a sizing-policy bug; the merge is
// abandoned rather than truncated.
func (l *Logger) LogJoinOverflow(into, from int32, err error) {
	l.Error("join aborted",
		"into", into,
		"from", from,
		"error", err,
	)
}
