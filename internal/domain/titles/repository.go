package titles

import (
	"context"

	"github.com/habitpet/habitpet/internal/gateways/database/models"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock

type Repository interface {
	// ListActive returns active titles ordered by id.
	ListActive(ctx context.Context) ([]*models.Title, error)
	UnlockedIDs(ctx context.Context, userID int64) (map[int64]bool, error)
	// Unlock inserts the user title and reports whether a row was created.
	// An existing (user, title) pair is left alone.
	Unlock(ctx context.Context, userTitle *models.UserTitle) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.UserTitle, error)
}
