package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestQueryLogger_Log(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(NewHandler("habitpet", &buf, slog.LevelInfo)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	NewQueryLogger("exec", "SELECT 1").Log(nil, 1)
	if buf.Len() != 0 {
		t.Fatalf("fast query logged at info: %q", buf.String())
	}

	SlowQuery = 0
	t.Cleanup(func() { SlowQuery = 500 * time.Millisecond })
	NewQueryLogger("exec", "SELECT 2", 7).Log(nil, 1)
	if out := buf.String(); !strings.Contains(out, "Slow query") || !strings.Contains(out, "args=1") {
		t.Errorf("slow query output = %q", out)
	}

	buf.Reset()
	NewQueryLogger("exec", "SELECT 3").Log(errors.New("syntax"), 0)
	if out := buf.String(); !strings.Contains(out, "[ERROR]") || !strings.Contains(out, "error=syntax") {
		t.Errorf("failed query output = %q", out)
	}
}
