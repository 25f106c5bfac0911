package companions

import (
	"context"

	"github.com/habitpet/habitpet/internal/domain/growth"
	"github.com/habitpet/habitpet/internal/gateways/database/models"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock

type Repository interface {
	Create(ctx context.Context, companion *models.Companion) error
	GetByID(ctx context.Context, id int64) (*models.Companion, error)
	// GetForUpdate locks the companion row until the transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*models.Companion, error)
	Update(ctx context.Context, companion *models.Companion) error
	// ListByUser returns the user's companions with their kind, newest first.
	ListByUser(ctx context.Context, userID int64) ([]*models.Companion, error)
}

// KindRepository is the species master data.
type KindRepository interface {
	growth.SpeciesTable
	GetByID(ctx context.Context, id int64) (*models.CharacterKind, error)
	// Egg is the kind every new companion starts as.
	Egg(ctx context.Context) (*models.CharacterKind, error)
}
