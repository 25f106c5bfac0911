// Package ledger builds the immutable task_events rows that back every
// reward-bearing action. Rows are only ever appended.
package ledger

import (
	"time"

	"github.com/habitpet/habitpet/internal/domain/amount"
	"github.com/habitpet/habitpet/internal/gateways/database/models"
)

// Award is what an action actually credited (or debited) for one entry.
type Award struct {
	CompanionID *int64
	XP          int64
	Food        int64
}

func base(task *models.Task, action models.TaskAction, at time.Time) *models.TaskEvent {
	taskID := task.ID
	return &models.TaskEvent{
		UserID:     task.UserID,
		TaskID:     &taskID,
		TaskKind:   task.Kind,
		Action:     action,
		OccurredAt: at,
	}
}

func Created(task *models.Task, at time.Time) *models.TaskEvent {
	return base(task, models.ActionCreated, at)
}

func Completed(task *models.Task, award Award, at time.Time) *models.TaskEvent {
	e := base(task, models.ActionCompleted, at)
	e.Delta = 1
	e.XPAmount = award.XP
	e.FoodAmount = award.Food
	e.AwardedCompanionID = award.CompanionID
	return e
}

func Logged(task *models.Task, qty amount.Amount, unit string, award Award, at time.Time) *models.TaskEvent {
	e := base(task, models.ActionLogged, at)
	e.Delta = 1
	e.Amount = qty
	e.Unit = unit
	e.XPAmount = award.XP
	e.FoodAmount = award.Food
	e.AwardedCompanionID = award.CompanionID
	return e
}

// Reopened records an undo. The award passed in holds positive amounts
// that were taken back; they are stored negated.
func Reopened(task *models.Task, award Award, at time.Time) *models.TaskEvent {
	e := base(task, models.ActionReopened, at)
	e.Delta = -1
	e.XPAmount = -award.XP
	e.FoodAmount = -award.Food
	e.AwardedCompanionID = award.CompanionID
	return e
}

// Totals sums a slice of entries the same way the aggregate queries do.
type Totals struct {
	XP          int64
	Food        int64
	Completions int64
	Logs        int64
	Amount      amount.Amount
}

func Sum(events []*models.TaskEvent) Totals {
	var t Totals
	for _, e := range events {
		t.XP += e.XPAmount
		t.Food += e.FoodAmount
		switch e.Action {
		case models.ActionCompleted:
			t.Completions++
		case models.ActionLogged:
			t.Logs++
			t.Amount += e.Amount
		}
	}
	return t
}
