package repositories

import (
	"context"
	"time"

	"github.com/habitpet/habitpet/internal/domain/amount"
	"github.com/habitpet/habitpet/internal/domain/ledger"
	"github.com/habitpet/habitpet/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

// taskEventRepository only ever inserts; ledger rows are never updated or
// deleted.
type taskEventRepository struct {
	db bun.IDB
}

func NewTaskEventRepository(db bun.IDB) ledger.Repository {
	return &taskEventRepository{db: db}
}

func (r *taskEventRepository) Append(ctx context.Context, event *models.TaskEvent) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := r.db.NewInsert().Model(event).Returning("*").Exec(ctx)
	return handleError("append", "task_event", event.Action, err)
}

func (r *taskEventRepository) LastCompletion(ctx context.Context, userID, taskID int64) (*models.TaskEvent, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	event := new(models.TaskEvent)
	err := r.db.NewSelect().
		Model(event).
		Where("te.user_id = ? AND te.task_id = ?", userID, taskID).
		Where("te.action = ?", models.ActionCompleted).
		Order("te.occurred_at DESC", "te.id DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, handleError("last_completion", "task_event", taskID, err)
	}
	return event, nil
}

func (r *taskEventRepository) CountByAction(ctx context.Context, userID int64, action models.TaskAction) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	n, err := r.db.NewSelect().
		Model((*models.TaskEvent)(nil)).
		Where("te.user_id = ? AND te.action = ?", userID, action).
		Count(ctx)
	if err != nil {
		return 0, handleError("count", "task_event", userID, err)
	}
	return int64(n), nil
}

func (r *taskEventRepository) SumAmount(ctx context.Context, userID int64) (amount.Amount, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var sum amount.Amount
	err := r.db.NewSelect().
		Model((*models.TaskEvent)(nil)).
		ColumnExpr("COALESCE(SUM(te.amount), 0)").
		Where("te.user_id = ? AND te.action = ?", userID, models.ActionLogged).
		Scan(ctx, &sum)
	if err != nil {
		return 0, handleError("sum_amount", "task_event", userID, err)
	}
	return sum, nil
}

// SumXP is net of reversals, so reopened entries count negatively.
func (r *taskEventRepository) SumXP(ctx context.Context, userID int64) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var sum int64
	err := r.db.NewSelect().
		Model((*models.TaskEvent)(nil)).
		ColumnExpr("COALESCE(SUM(te.xp_amount), 0)").
		Where("te.user_id = ?", userID).
		Scan(ctx, &sum)
	if err != nil {
		return 0, handleError("sum_xp", "task_event", userID, err)
	}
	return sum, nil
}

func (r *taskEventRepository) ActiveDays(ctx context.Context, userID int64, since time.Time) ([]time.Time, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var days []time.Time
	err := r.db.NewSelect().
		Model((*models.TaskEvent)(nil)).
		Distinct().
		ColumnExpr("(te.occurred_at AT TIME ZONE 'UTC')::date AS day").
		Where("te.user_id = ?", userID).
		Where("te.action IN (?)", bun.In([]models.TaskAction{models.ActionCompleted, models.ActionLogged})).
		Where("te.occurred_at >= ?", since).
		OrderExpr("day DESC").
		Scan(ctx, &days)
	if err != nil {
		return nil, handleError("active_days", "task_event", userID, err)
	}
	for i := range days {
		days[i] = days[i].UTC()
	}
	return days, nil
}

func (r *taskEventRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]*models.TaskEvent, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var list []*models.TaskEvent
	err := r.db.NewSelect().
		Model(&list).
		Where("te.user_id = ?", userID).
		Order("te.occurred_at DESC", "te.id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, handleError("list", "task_event", userID, err)
	}
	return list, nil
}
