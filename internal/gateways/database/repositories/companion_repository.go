package repositories

import (
	"context"

	"github.com/habitpet/habitpet/internal/domain/companions"
	"github.com/habitpet/habitpet/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type companionRepository struct {
	db bun.IDB
}

func NewCompanionRepository(db bun.IDB) companions.Repository {
	return &companionRepository{db: db}
}

func (r *companionRepository) Create(ctx context.Context, companion *models.Companion) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := r.db.NewInsert().Model(companion).Returning("*").Exec(ctx)
	return handleError("create", "companion", companion.UserID, err)
}

func (r *companionRepository) GetByID(ctx context.Context, id int64) (*models.Companion, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	companion := new(models.Companion)
	err := r.db.NewSelect().
		Model(companion).
		Relation("Kind").
		Where("c.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, handleError("get", "companion", id, err)
	}
	return companion, nil
}

// GetForUpdate locks only the companion row; the joined kind is master
// data and is never written.
func (r *companionRepository) GetForUpdate(ctx context.Context, id int64) (*models.Companion, error) {
	companion := new(models.Companion)
	err := r.db.NewSelect().
		Model(companion).
		Relation("Kind").
		Where("c.id = ?", id).
		For("UPDATE OF c").
		Scan(ctx)
	if err != nil {
		return nil, handleError("lock", "companion", id, err)
	}
	return companion, nil
}

func (r *companionRepository) Update(ctx context.Context, companion *models.Companion) error {
	_, err := r.db.NewUpdate().
		Model(companion).
		ExcludeColumn("created_at").
		WherePK().
		Exec(ctx)
	return handleError("update", "companion", companion.ID, err)
}

func (r *companionRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Companion, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var list []*models.Companion
	err := r.db.NewSelect().
		Model(&list).
		Relation("Kind").
		Where("c.user_id = ?", userID).
		Order("c.created_at DESC", "c.id DESC").
		Scan(ctx)
	if err != nil {
		return nil, handleError("list", "companion", userID, err)
	}
	return list, nil
}

type characterKindRepository struct {
	db bun.IDB
}

func NewCharacterKindRepository(db bun.IDB) companions.KindRepository {
	return &characterKindRepository{db: db}
}

func (r *characterKindRepository) GetByID(ctx context.Context, id int64) (*models.CharacterKind, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	kind := new(models.CharacterKind)
	err := r.db.NewSelect().
		Model(kind).
		Where("ck.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, handleError("get", "character_kind", id, err)
	}
	return kind, nil
}

func (r *characterKindRepository) Egg(ctx context.Context) (*models.CharacterKind, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	kind := new(models.CharacterKind)
	err := r.db.NewSelect().
		Model(kind).
		Where("ck.stage = ?", models.StageEgg).
		Order("ck.id ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, handleError("get", "character_kind", models.StageEgg, err)
	}
	return kind, nil
}

func (r *characterKindRepository) Successors(ctx context.Context, kindID int64) ([]*models.CharacterKind, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var list []*models.CharacterKind
	err := r.db.NewSelect().
		Model(&list).
		Where("ck.evolves_from_id = ?", kindID).
		Order("ck.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, handleError("successors", "character_kind", kindID, err)
	}
	return list, nil
}
