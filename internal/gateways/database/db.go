// Package database owns the postgres connection, schema and the unit of
// work the domain services run their transactions through.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/habitpet/habitpet/internal/config"
	"github.com/habitpet/habitpet/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

const (
	dialAttempts = 5
	dialBackoff  = time.Second
)

// DB pairs a pgx pool, used for DDL and seeding, with the bun handle the
// repositories query through. Both point at the same database.
type DB struct {
	pool  *pgxpool.Pool
	bunDB *bun.DB
}

func New(ctx context.Context, cfg config.DBConfig) (*DB, error) {
	if err := waitReachable(ctx, cfg); err != nil {
		return nil, err
	}

	dsn := DSN(cfg)
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}
	poolConfig.ConnConfig.ConnectTimeout = config.ConnectTimeout
	if cfg.PoolSize > 0 {
		poolConfig.MaxConns = int32(cfg.PoolSize)
	}
	if cfg.MaxIdleConns > 0 {
		poolConfig.MinConns = int32(min(cfg.MaxIdleConns, max(cfg.PoolSize, 1)))
	}
	if cfg.MaxLifetime > 0 {
		poolConfig.MaxConnLifetime = time.Duration(cfg.MaxLifetime) * time.Minute
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(dsn),
		pgdriver.WithTimeout(config.ConnectTimeout),
	))
	if cfg.PoolSize > 0 {
		sqldb.SetMaxOpenConns(cfg.PoolSize)
		sqldb.SetMaxIdleConns(cfg.PoolSize)
	}

	db := &DB{pool: pool, bunDB: bun.NewDB(sqldb, pgdialect.New())}
	logger.LogSystem("Connected to database",
		slog.String("host", cfg.Host),
		slog.String("database", cfg.Database),
		slog.Int("pool_size", int(poolConfig.MaxConns)),
	)
	return db, nil
}

// DSN renders cfg as a postgres URL understood by both pgx and pgdriver.
func DSN(cfg config.DBConfig) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:   "/" + cfg.Database,
	}
	q := url.Values{}
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	q.Set("sslmode", sslMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// waitReachable dials the server until it accepts TCP connections so that
// a freshly started compose stack does not fail the first command.
func waitReachable(ctx context.Context, cfg config.DBConfig) error {
	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	dialer := net.Dialer{Timeout: config.ConnectTimeout}

	var err error
	for attempt := 1; attempt <= dialAttempts; attempt++ {
		var conn net.Conn
		if conn, err = dialer.DialContext(ctx, "tcp", addr); err == nil {
			return conn.Close()
		}
		slog.Warn("Database not reachable",
			slog.String("type", "db"),
			slog.String("addr", addr),
			slog.Int("attempt", attempt),
			slog.Any("error", err))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(dialBackoff * time.Duration(attempt)):
		}
	}
	return fmt.Errorf("database %s unreachable after %d attempts: %w", addr, dialAttempts, err)
}

func (db *DB) BunDB() *bun.DB {
	return db.bunDB
}

// Ping checks both handles; the health endpoint reports it as the db component.
func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, config.ConnectTimeout)
	defer cancel()

	if err := db.pool.Ping(ctx); err != nil {
		return fmt.Errorf("pgx ping: %w", err)
	}
	return db.bunDB.PingContext(ctx)
}

func (db *DB) ExecWithLog(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	ql := logger.NewQueryLogger("exec", query, args...)
	tag, err := db.pool.Exec(ctx, query, args...)
	ql.Log(err, tag.RowsAffected())
	return tag, err
}

func (db *DB) Close() {
	db.pool.Close()
	if err := db.bunDB.Close(); err != nil {
		logger.LogError("Failed to close database", err)
	}
}
