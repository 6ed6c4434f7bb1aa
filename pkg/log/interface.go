// Package log provides the structured logging interface used by goregress models.
//
// The interface is slog-shaped so callers can plug in their own backend. The
// default backend is zerolog (see zerolog.go) and it is silent until the
// application installs a real writer with SetLogger.
//
// Example usage:
//
//	log.SetLogger(log.NewZerologLogger(os.Stderr, log.LevelDebug))
//	logger := log.GetLogger().With(log.ModelNameKey, "SimpleLinearRegression")
//	logger.Debug("fit completed",
//	    log.OperationKey, log.OperationFit,
//	    log.SamplesKey, 4,
//	)
package log

import "context"

// Logger is the structured logger models write to. Fields alternate key and
// value; a lone error in first position is logged under ErrAttrKey.
type Logger interface {
	Debug(msg string, fields ...any)
	Info(msg string, fields ...any)
	Warn(msg string, fields ...any)
	Error(msg string, fields ...any)

	// With returns a child logger that adds fields to every record.
	With(fields ...any) Logger

	// Enabled reports whether a record at level would be written. Models
	// check it before building fit summaries.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// normalizeFields turns a leading lone error into an ("error", err) pair so
// the remaining fields stay aligned as key/value pairs.
func normalizeFields(fields []any) []any {
	if len(fields)%2 == 1 {
		if err, ok := fields[0].(error); ok {
			out := make([]any, 0, len(fields)+1)
			out = append(out, ErrAttrKey, err)
			return append(out, fields[1:]...)
		}
	}
	return fields
}
