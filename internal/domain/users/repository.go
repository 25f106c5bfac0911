package users

import (
	"context"

	"github.com/habitpet/habitpet/internal/gateways/database/models"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock

type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetForUpdate locks the user row until the transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*models.User, error)
	// AddFood applies delta to the balance in place and returns the new one.
	AddFood(ctx context.Context, userID, delta int64) (int64, error)
	SetActiveCompanion(ctx context.Context, userID, companionID int64) error
}
