package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorPurple = "\033[35m"
	colorWhite  = "\033[37m"
)

type LogType string

const (
	TypeCommand LogType = "CMD"
	TypeDB      LogType = "DB"
	TypeHTTP    LogType = "HTTP"
	TypeAction  LogType = "ACT"
	TypeSystem  LogType = "SYS"
	TypeError   LogType = "ERR"
)

// CustomHandler renders one colored line per record:
// [App] [15:04:05] [LEVEL] [TYPE] message key=value ...
type CustomHandler struct {
	app    string
	level  slog.Leveler
	out    io.Writer
	mu     *sync.Mutex
	attrs  []slog.Attr
	groups []string
	color  bool
}

func NewHandler(app string, out io.Writer, level slog.Leveler) *CustomHandler {
	if out == nil {
		out = os.Stdout
	}
	if level == nil {
		level = slog.LevelInfo
	}
	return &CustomHandler{
		app:   app,
		level: level,
		out:   out,
		mu:    &sync.Mutex{},
		color: out == os.Stdout || out == os.Stderr,
	}
}

func (h *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *CustomHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

func (h *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	levelColor, levelText := levelStyle(r.Level)

	logType := getLogType(h.attrs, &r)
	message := r.Message
	if r.Level >= slog.LevelError {
		if location := getErrorLocation(&r); location != "" {
			message = fmt.Sprintf("%s (%s)", message, location)
		}
	}

	var b strings.Builder
	prefix := strings.Join(h.groups, ".")
	writeAttr := func(a slog.Attr) {
		if a.Key == "type" || a.Key == "error_location" {
			return
		}
		key := a.Key
		if prefix != "" {
			key = prefix + "." + key
		}
		fmt.Fprintf(&b, " %s=%v", key, a.Value.Resolve())
	}
	for _, a := range h.attrs {
		writeAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(a)
		return true
	})

	line := fmt.Sprintf("[%s] [%s] [%s] [%s] %s%s",
		h.app,
		r.Time.Format("15:04:05"),
		levelText,
		logType,
		message,
		b.String(),
	)
	if h.color {
		line = fmt.Sprintf("%s[%s] [%s] [%s%s%s] [%s] %s%s%s",
			colorWhite, h.app, r.Time.Format("15:04:05"),
			levelColor, levelText, colorWhite,
			logType, message, b.String(), colorReset)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, line+"\n")
	return err
}

func levelStyle(level slog.Level) (string, string) {
	switch {
	case level >= slog.LevelError:
		return colorRed, "ERROR"
	case level >= slog.LevelWarn:
		return colorYellow, "WARN"
	case level >= slog.LevelInfo:
		return colorGreen, "INFO"
	default:
		return colorPurple, "DEBUG"
	}
}

func getLogType(handlerAttrs []slog.Attr, r *slog.Record) LogType {
	logType := TypeSystem
	match := func(a slog.Attr) bool {
		if a.Key != "type" {
			return false
		}
		switch a.Value.String() {
		case "cmd":
			logType = TypeCommand
		case "db":
			logType = TypeDB
		case "http":
			logType = TypeHTTP
		case "action":
			logType = TypeAction
		case "error":
			logType = TypeError
		}
		return true
	}
	for _, a := range handlerAttrs {
		match(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		return !match(a)
	})
	return logType
}

func getErrorLocation(r *slog.Record) string {
	var location string
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "error_location" {
			location = a.Value.String()
			return false
		}
		return true
	})
	if location == "" && r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		frame, _ := frames.Next()
		if frame.File != "" {
			location = fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
		}
	}
	return location
}

// New builds the process logger from its format name: "json" selects the
// stdlib JSON handler, anything else the console handler.
func New(app, format string, level slog.Level, addSource bool) *slog.Logger {
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:     level,
			AddSource: addSource,
		}))
	}
	return slog.New(NewHandler(app, os.Stdout, level))
}

// Since formats an elapsed duration for log lines.
func Since(start time.Time) slog.Attr {
	return slog.Duration("took", time.Since(start))
}
