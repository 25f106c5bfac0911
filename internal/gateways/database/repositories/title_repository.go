package repositories

import (
	"context"

	"github.com/habitpet/habitpet/internal/domain/titles"
	"github.com/habitpet/habitpet/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type titleRepository struct {
	db bun.IDB
}

func NewTitleRepository(db bun.IDB) titles.Repository {
	return &titleRepository{db: db}
}

func (r *titleRepository) ListActive(ctx context.Context) ([]*models.Title, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var list []*models.Title
	err := r.db.NewSelect().
		Model(&list).
		Where("ti.active = TRUE").
		Order("ti.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, handleError("list_active", "title", nil, err)
	}
	return list, nil
}

func (r *titleRepository) UnlockedIDs(ctx context.Context, userID int64) (map[int64]bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var ids []int64
	err := r.db.NewSelect().
		Model((*models.UserTitle)(nil)).
		Column("ut.title_id").
		Where("ut.user_id = ?", userID).
		Scan(ctx, &ids)
	if err != nil {
		return nil, handleError("unlocked_ids", "user_title", userID, err)
	}

	out := make(map[int64]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

// Unlock relies on the unique (user_id, title_id) index so a concurrent
// unlock of the same title inserts nothing.
func (r *titleRepository) Unlock(ctx context.Context, userTitle *models.UserTitle) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := r.db.NewInsert().
		Model(userTitle).
		On("CONFLICT (user_id, title_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, handleError("unlock", "user_title", userTitle.TitleID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, handleError("unlock", "user_title", userTitle.TitleID, err)
	}
	return n > 0, nil
}

func (r *titleRepository) ListByUser(ctx context.Context, userID int64) ([]*models.UserTitle, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var list []*models.UserTitle
	err := r.db.NewSelect().
		Model(&list).
		Relation("Title").
		Where("ut.user_id = ?", userID).
		Order("ut.unlocked_at ASC", "ut.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, handleError("list", "user_title", userID, err)
	}
	return list, nil
}
