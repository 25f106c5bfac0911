package logger

import (
	"log/slog"
	"time"
)

// SlowQuery is the duration above which a successful query is logged at
// warn level instead of debug.
var SlowQuery = 500 * time.Millisecond

// QueryLogger times one statement. Arguments are not logged; seed and
// schema statements are the only callers and carry no user data worth it.
type QueryLogger struct {
	op    string
	query string
	nargs int
	start time.Time
}

func NewQueryLogger(operation, query string, args ...any) *QueryLogger {
	return &QueryLogger{op: operation, query: query, nargs: len(args), start: time.Now()}
}

func (l *QueryLogger) Log(err error, rowsAffected int64) {
	took := time.Since(l.start)
	attrs := []any{
		slog.String("type", "db"),
		slog.String("operation", l.op),
		slog.String("query", l.query),
		slog.Int("args", l.nargs),
		slog.Duration("took", took),
	}

	switch {
	case err != nil:
		slog.Error("Query failed", append(attrs, slog.Any("error", err))...)
	case took > SlowQuery:
		slog.Warn("Slow query", append(attrs, slog.Int64("rows", rowsAffected))...)
	default:
		slog.Debug("Query executed", append(attrs, slog.Int64("rows", rowsAffected))...)
	}
}
