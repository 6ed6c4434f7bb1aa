package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/goregress/pkg/errors"
)

func TestTestLogger(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelDebug)

	testLogger.Debug("debug message", "key1", "value1", "number", 42)
	testLogger.Info("info message", OperationKey, OperationFit)
	testLogger.Warn("warning message", ErrorCodeKey, ErrorDegenerate)
	testLogger.Error("error message", fmt.Errorf("test error"), ErrorCodeKey, ErrorEmptyInput)

	require.NotEmpty(t, buffer.String())
	for _, msg := range []string{"debug message", "info message", "warning message", "error message"} {
		assert.True(t, testLogger.ContainsMessage(msg), msg)
	}
	assert.True(t, testLogger.ContainsField("key1", "value1"))
	assert.True(t, testLogger.ContainsField("number", 42.0))
	assert.True(t, testLogger.ContainsField(ErrAttrKey, "test error"))
	assert.True(t, testLogger.ContainsField(ErrorCodeKey, ErrorEmptyInput))
}

func TestTestLoggerWith(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)

	child := testLogger.With(ModelNameKey, "SimpleLinearRegression", ComponentKey, "linear")
	child.Info("fit completed", SamplesKey, 4)

	entries, err := testLogger.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "SimpleLinearRegression", entries[0][ModelNameKey])
	assert.Equal(t, "linear", entries[0][ComponentKey])
	assert.Equal(t, 4.0, entries[0][SamplesKey])
}

func TestTestLoggerEnabled(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)
	ctx := context.Background()

	assert.True(t, testLogger.Enabled(ctx, LevelInfo))
	assert.True(t, testLogger.Enabled(ctx, LevelError))
	assert.False(t, testLogger.Enabled(ctx, LevelDebug))

	testLogger.Debug("hidden")
	testLogger.Info("shown")
	assert.False(t, testLogger.ContainsMessage("hidden"))
	assert.True(t, testLogger.ContainsMessage("shown"))
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelInfo)

	logger.Debug("not emitted")
	logger.With(ModelNameKey, "LogisticRegression").Info("fit completed",
		EpochsKey, 1000,
		LearningRateKey, 0.1,
		CoefficientsKey, []float64{0.5, -1},
	)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "fit completed", entry["message"])
	assert.Equal(t, "LogisticRegression", entry[ModelNameKey])
	assert.Equal(t, 1000.0, entry[EpochsKey])
	assert.Equal(t, []interface{}{0.5, -1.0}, entry[CoefficientsKey])

	assert.False(t, logger.Enabled(context.Background(), LevelDebug))
	assert.True(t, logger.Enabled(context.Background(), LevelWarn))
}

func TestZerologLoggerErrorDetail(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelDebug)

	err := errors.NewLengthMismatchError("SimpleLinearRegression.Fit", 3, 2)
	logger.Error("fit rejected", err, ErrorCodeKey, ErrorLengthMismatch)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Contains(t, entry[ErrAttrKey], "samples: want 3, got 2")
	assert.Equal(t, ErrorLengthMismatch, entry[ErrorCodeKey])

	detail, ok := entry[ErrAttrKey+"_detail"].(map[string]interface{})
	require.True(t, ok, "expected structured error detail")
	assert.Equal(t, "DimensionError", detail["error_type"])
	assert.Equal(t, 3.0, detail["expected"])
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Info("dropped")
	assert.False(t, logger.Enabled(context.Background(), LevelError))
}

func TestGlobalLoggerAndWarnings(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)
	SetLogger(testLogger)
	RouteWarnings(testLogger)
	defer func() {
		SetLogger(nil)
		RouteWarnings(nil)
	}()

	assert.Same(t, testLogger, GetLogger())

	errors.Warn(errors.NewDegenerateInputWarning("SimpleLinearRegression.Fit", "slope", 0))
	assert.True(t, testLogger.ContainsMessage("goregress warning"))
	assert.True(t, testLogger.ContainsMessage("degenerate input"))

	SetLogger(nil)
	_, isNop := GetLogger().(*ZerologLogger)
	assert.True(t, isNop)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLoggerTo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SetupLoggerTo(&buf, "debug"))
	defer func() {
		SetLogger(nil)
		RouteWarnings(nil)
	}()

	err := errors.NewNotFittedError("LogisticRegression", "Save")
	slog.Error("save failed", ErrAttr(err))

	out := buf.String()
	assert.Contains(t, out, `"severity":"ERROR"`)
	assert.Contains(t, out, `"message":"save failed"`)
	assert.Contains(t, out, StacktraceAttrKey)

	assert.Error(t, SetupLoggerTo(&buf, "loud"))
}

func BenchmarkZerologLogger(b *testing.B) {
	logger := NewZerologLogger(&bytes.Buffer{}, LevelInfo).With(ModelNameKey, "BenchmarkModel")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message",
			OperationKey, OperationPredict,
			SamplesKey, 1000,
		)
	}
}
