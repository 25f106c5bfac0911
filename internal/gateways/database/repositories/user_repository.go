package repositories

import (
	"context"
	"time"

	"github.com/habitpet/habitpet/internal/domain/users"
	"github.com/habitpet/habitpet/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type userRepository struct {
	db bun.IDB
}

func NewUserRepository(db bun.IDB) users.Repository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := r.db.NewInsert().Model(user).Returning("*").Exec(ctx)
	if isUniqueViolation(err) {
		return &ConflictError{Entity: "user", Field: "email", Value: user.Email}
	}
	return handleError("create", "user", user.Email, err)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("u.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, handleError("get", "user", id, err)
	}
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("u.email = ?", email).
		Scan(ctx)
	if err != nil {
		return nil, handleError("get", "user", email, err)
	}
	return user, nil
}

func (r *userRepository) GetForUpdate(ctx context.Context, id int64) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("u.id = ?", id).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		return nil, handleError("lock", "user", id, err)
	}
	return user, nil
}

func (r *userRepository) AddFood(ctx context.Context, userID, delta int64) (int64, error) {
	var balance int64
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("food_count = food_count + ?", delta).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userID).
		Returning("food_count").
		Exec(ctx, &balance)
	if err != nil {
		return 0, handleError("add_food", "user", userID, err)
	}
	return balance, nil
}

func (r *userRepository) SetActiveCompanion(ctx context.Context, userID, companionID int64) error {
	res, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("active_companion_id = ?", companionID).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return handleError("set_active_companion", "user", userID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &NotFoundError{Entity: "user", ID: userID}
	}
	return nil
}
