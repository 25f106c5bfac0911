package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestCustomHandler_Handle(t *testing.T) {
	tests := []struct {
		name     string
		log      func(l *slog.Logger)
		contains []string
		absent   []string
	}{
		{
			name: "db type tag",
			log: func(l *slog.Logger) {
				l.Info("Query executed", slog.String("type", "db"), slog.Int("rows", 3))
			},
			contains: []string{"[habitpet]", "[INFO]", "[DB]", "Query executed", "rows=3"},
			absent:   []string{"type="},
		},
		{
			name: "error with attrs from With",
			log: func(l *slog.Logger) {
				l.With(slog.String("type", "action")).Error("Task action failed", slog.Any("error", errors.New("boom")))
			},
			contains: []string{"[ERROR]", "[ACT]", "error=boom"},
		},
		{
			name: "debug filtered",
			log: func(l *slog.Logger) {
				l.Debug("noise")
			},
			absent: []string{"noise"},
		},
		{
			name: "groups prefix keys",
			log: func(l *slog.Logger) {
				l.WithGroup("req").Warn("slow", slog.Int("ms", 900))
			},
			contains: []string{"[WARN]", "[SYS]", "req.ms=900"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(slog.New(NewHandler("habitpet", &buf, slog.LevelInfo)))
			out := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output %q missing %q", out, want)
				}
			}
			for _, unwanted := range tt.absent {
				if strings.Contains(out, unwanted) {
					t.Errorf("output %q should not contain %q", out, unwanted)
				}
			}
		})
	}
}
