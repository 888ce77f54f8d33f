package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/valknarthing/tasklist/internal/tasks"
)

func TestRunDemo_Output(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	runDemo(&buf, tasks.NewManager(), logger)

	expected := "All tasks: 2\nCompleted: 1\nPending: 1\n"
	if buf.String() != expected {
		t.Errorf("expected output %q, got %q", expected, buf.String())
	}
}

func TestNewLoggerFromEnv_Levels(t *testing.T) {
	cases := []struct {
		env     string
		enabled slog.Level
		muted   slog.Level
	}{
		{"debug", slog.LevelDebug, slog.LevelDebug - 1},
		{"warn", slog.LevelWarn, slog.LevelInfo},
		{"error", slog.LevelError, slog.LevelWarn},
		{"", slog.LevelInfo, slog.LevelDebug},
		{"nonsense", slog.LevelInfo, slog.LevelDebug},
	}

	for _, tc := range cases {
		t.Setenv("LOG_LEVEL", tc.env)
		logger := newLoggerFromEnv()

		if !logger.Enabled(context.Background(), tc.enabled) {
			t.Errorf("LOG_LEVEL=%q: expected level %v to be enabled", tc.env, tc.enabled)
		}
		if logger.Enabled(context.Background(), tc.muted) {
			t.Errorf("LOG_LEVEL=%q: expected level %v to be muted", tc.env, tc.muted)
		}
	}
}
