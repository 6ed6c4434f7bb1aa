package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/goregress/pkg/errors"
)

// ZerologLogger implements Logger on top of zerolog.
type ZerologLogger struct {
	zl zerolog.Logger
}

// NewZerologLogger returns a JSON logger writing to w at the given minimum level.
func NewZerologLogger(w io.Writer, level Level) *ZerologLogger {
	zl := zerolog.New(w).Level(toZerologLevel(level)).With().Timestamp().Logger()
	return &ZerologLogger{zl: zl}
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *ZerologLogger {
	return &ZerologLogger{zl: zerolog.Nop()}
}

func (z *ZerologLogger) Debug(msg string, fields ...any) {
	addFields(z.zl.Debug(), fields).Msg(msg)
}

func (z *ZerologLogger) Info(msg string, fields ...any) {
	addFields(z.zl.Info(), fields).Msg(msg)
}

func (z *ZerologLogger) Warn(msg string, fields ...any) {
	addFields(z.zl.Warn(), fields).Msg(msg)
}

func (z *ZerologLogger) Error(msg string, fields ...any) {
	addFields(z.zl.Error(), fields).Msg(msg)
}

// With returns a child logger carrying fields on every record.
func (z *ZerologLogger) With(fields ...any) Logger {
	return &ZerologLogger{zl: z.zl.With().Fields(normalizeFields(fields)).Logger()}
}

// Enabled reports whether records at level pass the logger's minimum level.
func (z *ZerologLogger) Enabled(_ context.Context, level Level) bool {
	min := z.zl.GetLevel()
	return min != zerolog.Disabled && toZerologLevel(level) >= min
}

// addFields appends key/value pairs to ev. Errors that know how to marshal
// themselves for zerolog get an extra "<key>_detail" object.
func addFields(ev *zerolog.Event, fields []any) *zerolog.Event {
	if ev == nil {
		return ev
	}
	fields = normalizeFields(fields)
	for i := 0; i+1 < len(fields); i += 2 {
		key := fmt.Sprint(fields[i])
		switch v := fields[i+1].(type) {
		case error:
			ev = ev.AnErr(key, v)
			var m zerolog.LogObjectMarshaler
			if errors.As(v, &m) {
				ev = ev.Object(key+"_detail", m)
			}
		case string:
			ev = ev.Str(key, v)
		case int:
			ev = ev.Int(key, v)
		case float64:
			ev = ev.Float64(key, v)
		case []float64:
			ev = ev.Floats64(key, v)
		case bool:
			ev = ev.Bool(key, v)
		default:
			ev = ev.Interface(key, v)
		}
	}
	return ev
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

var (
	globalMu     sync.RWMutex
	globalLogger Logger = NewNopLogger()
)

// GetLogger returns the package-level logger used by models that were not
// given one explicitly.
func GetLogger() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// SetLogger replaces the package-level logger. nil restores the no-op logger.
func SetLogger(l Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	if l == nil {
		l = NewNopLogger()
	}
	globalLogger = l
}

// RouteWarnings sends warnings raised through errors.Warn to l at warn
// level. nil restores the default handler.
func RouteWarnings(l Logger) {
	if l == nil {
		errors.SetWarnFunc(nil)
		return
	}
	errors.SetWarnFunc(func(w error) {
		l.Warn("goregress warning", ErrAttrKey, w)
	})
}
