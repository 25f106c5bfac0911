package ledger

import (
	"context"
	"time"

	"github.com/habitpet/habitpet/internal/domain/amount"
	"github.com/habitpet/habitpet/internal/gateways/database/models"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock

type Repository interface {
	Append(ctx context.Context, event *models.TaskEvent) error
	// LastCompletion is the newest completed entry for the task.
	LastCompletion(ctx context.Context, userID, taskID int64) (*models.TaskEvent, error)
	CountByAction(ctx context.Context, userID int64, action models.TaskAction) (int64, error)
	SumAmount(ctx context.Context, userID int64) (amount.Amount, error)
	SumXP(ctx context.Context, userID int64) (int64, error)
	// ActiveDays lists the distinct UTC dates with a completion or log since
	// the given time, newest first.
	ActiveDays(ctx context.Context, userID int64, since time.Time) ([]time.Time, error)
	ListByUser(ctx context.Context, userID int64, limit int) ([]*models.TaskEvent, error)
}
