package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/habitpet/habitpet/internal/gateways/database/models"
	"github.com/habitpet/habitpet/internal/logger"
)

// InitializeSchema creates all tables and indexes. It is safe to run
// against an existing database.
func (db *DB) InitializeSchema(ctx context.Context) error {
	tables := []any{
		(*models.CharacterKind)(nil),
		(*models.User)(nil),
		(*models.Companion)(nil),
		(*models.Task)(nil),
		(*models.TaskEvent)(nil),
		(*models.Title)(nil),
		(*models.UserTitle)(nil),
	}

	for _, model := range tables {
		_, err := db.bunDB.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_character_kinds_stage ON character_kinds(stage);",
		"CREATE INDEX IF NOT EXISTS idx_character_kinds_evolves_from ON character_kinds(evolves_from_id);",
		"CREATE INDEX IF NOT EXISTS idx_companions_user_id ON companions(user_id, created_at DESC);",
		"CREATE INDEX IF NOT EXISTS idx_companions_ranking ON companions(level DESC, exp DESC) WHERE state = 'alive';",
		"CREATE INDEX IF NOT EXISTS idx_tasks_user_status ON tasks(user_id, status);",
		"CREATE INDEX IF NOT EXISTS idx_task_events_user_action ON task_events(user_id, action);",
		"CREATE INDEX IF NOT EXISTS idx_task_events_task ON task_events(task_id, occurred_at DESC) WHERE action = 'completed';",
		"CREATE INDEX IF NOT EXISTS idx_task_events_user_occurred ON task_events(user_id, occurred_at DESC);",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_user_titles_user_title ON user_titles(user_id, title_id);",
	}

	for _, idx := range indexes {
		if _, err := db.ExecWithLog(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	logger.LogSystem("Schema initialized", slog.Int("tables", len(tables)), slog.Int("indexes", len(indexes)))
	return nil
}
