package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/valknarthing/tasklist/internal/tasks"
)

func main() {
	logger := newLoggerFromEnv()
	slog.SetDefault(logger)

	runDemo(os.Stdout, tasks.NewManager(), logger)
}

// runDemo exercises the manager with a fixed scenario and writes the
// three count lines to w. Logs go to the logger, not w, so the demo
// output stays exactly three lines.
func runDemo(w io.Writer, m *tasks.Manager, logger *slog.Logger) {
	t1 := m.Add("Write docs", "Document the Universal LSP")
	logger.Info("task_added", slog.String("id", t1.ID.String()), slog.String("title", t1.Title))

	t2 := m.Add("Add tests", "Write unit tests")
	logger.Info("task_added", slog.String("id", t2.ID.String()), slog.String("title", t2.Title))

	t1.MarkComplete()
	logger.Info("task_completed", slog.String("id", t1.ID.String()))

	fmt.Fprintf(w, "All tasks: %d\n", len(m.List(tasks.FilterAll)))
	fmt.Fprintf(w, "Completed: %d\n", len(m.List(tasks.FilterCompleted)))
	fmt.Fprintf(w, "Pending: %d\n", len(m.List(tasks.FilterPending)))
}

func newLoggerFromEnv() *slog.Logger {
	level := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn", "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	// Logs go to stderr; stdout is reserved for the demo's count lines.
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: l,
	})
	return slog.New(handler)
}
