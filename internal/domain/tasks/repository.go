package tasks

import (
	"context"

	"github.com/habitpet/habitpet/internal/gateways/database/models"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock

type Repository interface {
	Create(ctx context.Context, task *models.Task) error
	// Get returns the task only when it belongs to userID.
	Get(ctx context.Context, userID, taskID int64) (*models.Task, error)
	// GetForUpdate is Get with a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, userID, taskID int64) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	ListByUser(ctx context.Context, userID int64, status models.TaskStatus) ([]*models.Task, error)
}
