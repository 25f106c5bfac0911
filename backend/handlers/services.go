package handlers

import (
	"context"

	"github.com/habitpet/habitpet/internal/domain/completion"
	"github.com/habitpet/habitpet/internal/domain/leaderboard"
	"github.com/habitpet/habitpet/internal/domain/lifecycle"
	"github.com/habitpet/habitpet/internal/gateways/database/models"
)

//go:generate mockgen -source=services.go -destination=mock/services.go -package=mock

// Rewards runs the reward-bearing actions.
type Rewards interface {
	Complete(ctx context.Context, userID, taskID int64) (*completion.Outcome, error)
	LogAmount(ctx context.Context, userID, taskID int64, rawAmount, unit string) (*completion.Outcome, error)
	Reopen(ctx context.Context, userID, taskID int64) (*models.Task, error)
	Feed(ctx context.Context, userID int64) (*completion.Outcome, error)
}

// Lifecycle manages tasks and companions outside the reward loop.
type Lifecycle interface {
	CreateTask(ctx context.Context, userID int64, in lifecycle.TaskInput) (*models.Task, error)
	UpdateTask(ctx context.Context, userID, taskID int64, patch lifecycle.TaskPatch) (*models.Task, error)
	ArchiveTask(ctx context.Context, userID, taskID int64) (*models.Task, error)
	GetTask(ctx context.Context, userID, taskID int64) (*models.Task, error)
	ListTasks(ctx context.Context, userID int64, filter lifecycle.ListFilter) ([]*models.Task, error)
	ResetCompanion(ctx context.Context, userID int64) (*models.Companion, error)
	ActiveCompanion(ctx context.Context, userID int64) (*models.Companion, error)
	Collection(ctx context.Context, userID int64) ([]*models.Companion, error)
	Titles(ctx context.Context, userID int64) ([]*models.UserTitle, error)
}

type Rankings interface {
	TopUsers(ctx context.Context, limit int) ([]leaderboard.Entry, error)
	RankOf(ctx context.Context, userID int64) (int, bool, error)
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
