package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"error level", "error"},
		{"invalid level defaults to info", "invalid"},
		{"empty level defaults to info", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.level)
			require.NotNil(t, logger)
			require.Implements(t, (*Logger)(nil), logger)
		})
	}
}

func TestLoggerMethods(t *testing.T) {
	logger := NewLogger("debug")
	ctx := context.Background()

	require.NotPanics(t, func() {
		logger.Debug(ctx, "debug message", Fields{"key": "value"})
		logger.Info(ctx, "info message", Fields{"key": "value"})
		logger.Error(ctx, errors.New("boom"), Fields{"key": "value"})
	})
}

func TestMsgWithFields(t *testing.T) {
	out := msgWithFields("completion request", Fields{"model": "gpt-4o-mini", "attempt": 1})
	require.True(t, strings.HasPrefix(out, "completion request | "), "message should prefix fields")
	require.Contains(t, out, "model=gpt-4o-mini")
	require.Contains(t, out, "attempt=1")

	require.Equal(t, "bare", msgWithFields("bare", nil))
}

func TestMsgWithFieldsStableOrder(t *testing.T) {
	fields := Fields{"b": 2, "a": 1, "c": 3}
	first := msgWithFields("m", fields)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, msgWithFields("m", fields), "field order should be stable")
	}
}
