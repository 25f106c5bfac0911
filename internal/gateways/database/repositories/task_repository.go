package repositories

import (
	"context"

	"github.com/habitpet/habitpet/internal/domain/tasks"
	"github.com/habitpet/habitpet/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type taskRepository struct {
	db bun.IDB
}

func NewTaskRepository(db bun.IDB) tasks.Repository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := r.db.NewInsert().Model(task).Returning("*").Exec(ctx)
	return handleError("create", "task", task.Title, err)
}

func (r *taskRepository) Get(ctx context.Context, userID, taskID int64) (*models.Task, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	task := new(models.Task)
	err := r.db.NewSelect().
		Model(task).
		Where("t.id = ? AND t.user_id = ?", taskID, userID).
		Scan(ctx)
	if err != nil {
		return nil, handleError("get", "task", taskID, err)
	}
	return task, nil
}

func (r *taskRepository) GetForUpdate(ctx context.Context, userID, taskID int64) (*models.Task, error) {
	task := new(models.Task)
	err := r.db.NewSelect().
		Model(task).
		Where("t.id = ? AND t.user_id = ?", taskID, userID).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		return nil, handleError("lock", "task", taskID, err)
	}
	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	_, err := r.db.NewUpdate().
		Model(task).
		WherePK().
		Exec(ctx)
	return handleError("update", "task", task.ID, err)
}

// ListByUser filters by status; an empty status means every task that is
// not archived.
func (r *taskRepository) ListByUser(ctx context.Context, userID int64, status models.TaskStatus) ([]*models.Task, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var list []*models.Task
	q := r.db.NewSelect().
		Model(&list).
		Where("t.user_id = ?", userID)
	if status == "" {
		q = q.Where("t.status <> ?", models.TaskArchived)
	} else {
		q = q.Where("t.status = ?", status)
	}

	err := q.Order("t.created_at DESC", "t.id DESC").Scan(ctx)
	if err != nil {
		return nil, handleError("list", "task", userID, err)
	}
	return list, nil
}
