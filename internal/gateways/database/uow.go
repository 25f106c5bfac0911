package database

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/habitpet/habitpet/internal/config"
	"github.com/habitpet/habitpet/internal/domain/store"
	"github.com/habitpet/habitpet/internal/gateways/database/repositories"
	"github.com/uptrace/bun"
)

const (
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
)

// unitOfWork runs domain transactions on bun, retrying the whole function
// when postgres aborts it for a serialization conflict or deadlock.
type unitOfWork struct {
	db         *bun.DB
	isolation  sql.IsolationLevel
	maxRetries int
	repos      store.Repositories
}

func NewUnitOfWork(db *bun.DB, cfg config.DBConfig) store.UnitOfWork {
	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = config.MaxTxRetries
	}
	return &unitOfWork{
		db:         db,
		isolation:  isolationLevel(cfg.Isolation),
		maxRetries: retries,
		repos:      bindRepositories(db),
	}
}

func bindRepositories(db bun.IDB) store.Repositories {
	return store.Repositories{
		Users:      repositories.NewUserRepository(db),
		Tasks:      repositories.NewTaskRepository(db),
		Companions: repositories.NewCompanionRepository(db),
		Kinds:      repositories.NewCharacterKindRepository(db),
		Ledger:     repositories.NewTaskEventRepository(db),
		Titles:     repositories.NewTitleRepository(db),
	}
}

func isolationLevel(name string) sql.IsolationLevel {
	switch name {
	case "read_committed":
		return sql.LevelReadCommitted
	case "repeatable_read":
		return sql.LevelRepeatableRead
	default:
		return sql.LevelSerializable
	}
}

func (u *unitOfWork) Repositories() store.Repositories {
	return u.repos
}

func (u *unitOfWork) WithTransaction(ctx context.Context, fn store.TxFunc) error {
	opts := &sql.TxOptions{Isolation: u.isolation}

	var err error
	for attempt := 1; attempt <= u.maxRetries; attempt++ {
		txCtx, cancel := context.WithTimeout(ctx, config.DefaultTxTimeout)
		err = u.db.RunInTx(txCtx, opts, func(ctx context.Context, tx bun.Tx) error {
			return fn(ctx, bindRepositories(tx))
		})
		cancel()

		if err == nil || !retryable(err) {
			return err
		}

		slog.Warn("Transaction conflict, retrying",
			slog.String("type", "db"),
			slog.Int("attempt", attempt),
			slog.Any("error", err))

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt) * config.TxRetryBaseDelay):
		}
	}
	return err
}

func retryable(err error) bool {
	switch repositories.SQLState(err) {
	case serializationFailure, deadlockDetected:
		return true
	}
	return false
}
