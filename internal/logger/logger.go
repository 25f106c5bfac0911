package logger

import (
	"log/slog"
	"time"
)

// Every helper tags its record with a "type" attr; the pretty handler
// colors and prefixes lines by it.
func typed(kind string, attrs []any) []any {
	return append([]any{slog.String("type", kind)}, attrs...)
}

// LogCommand records the outcome of a CLI command.
func LogCommand(name string, duration time.Duration, err error) {
	attrs := typed("cmd", []any{slog.String("name", name), slog.Duration("took", duration)})
	if err != nil {
		slog.Error("Command failed", append(attrs, slog.Any("error", err))...)
		return
	}
	slog.Info("Command executed", attrs...)
}

// LogAction records a committed domain action. taskID 0 means the action
// is not about a task (feed, reset, register).
func LogAction(action string, userID, taskID int64, attrs ...any) {
	base := []any{slog.String("action", action), slog.Int64("user_id", userID)}
	if taskID != 0 {
		base = append(base, slog.Int64("task_id", taskID))
	}
	slog.Info("Action applied", typed("action", append(base, attrs...))...)
}

func LogSystem(msg string, attrs ...any) {
	slog.Info(msg, typed("sys", attrs)...)
}

func LogError(msg string, err error, attrs ...any) {
	slog.Error(msg, typed("error", append([]any{slog.Any("error", err)}, attrs...))...)
}
