package models

import (
	"time"

	"github.com/habitpet/habitpet/internal/domain/amount"
	"github.com/uptrace/bun"
)

type TaskAction string

const (
	ActionCreated   TaskAction = "created"
	ActionCompleted TaskAction = "completed"
	ActionLogged    TaskAction = "logged"
	ActionReopened  TaskAction = "reopened"
)

// TaskEvent is an immutable ledger row. TaskKind is a snapshot so the row
// still reads correctly after the task is gone.
type TaskEvent struct {
	bun.BaseModel `bun:"table:task_events,alias:te"`

	ID                 int64         `bun:"id,pk,autoincrement"`
	UserID             int64         `bun:"user_id,notnull"`
	TaskID             *int64        `bun:"task_id"`
	TaskKind           TaskKind      `bun:"task_kind,notnull,type:text"`
	Action             TaskAction    `bun:"action,notnull,type:text"`
	Delta              int           `bun:"delta,notnull,default:0"`
	Amount             amount.Amount `bun:"amount,notnull,type:numeric(10,2),default:0"`
	Unit               string        `bun:"unit,nullzero,type:varchar(20)"`
	XPAmount           int64         `bun:"xp_amount,notnull,default:0"`
	FoodAmount         int64         `bun:"food_amount,notnull,default:0"`
	AwardedCompanionID *int64        `bun:"awarded_companion_id"`
	OccurredAt         time.Time     `bun:"occurred_at,notnull"`
	CreatedAt          time.Time     `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
