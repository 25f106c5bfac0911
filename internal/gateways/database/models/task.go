package models

import (
	"time"

	"github.com/habitpet/habitpet/internal/domain/amount"
	"github.com/uptrace/bun"
)

type TaskKind string

const (
	TaskKindTodo  TaskKind = "todo"
	TaskKindHabit TaskKind = "habit"
)

type TaskStatus string

const (
	TaskOpen     TaskStatus = "open"
	TaskDone     TaskStatus = "done"
	TaskArchived TaskStatus = "archived"
)

type TrackingMode string

const (
	TrackingNone     TrackingMode = ""
	TrackingCheckbox TrackingMode = "checkbox"
	TrackingLog      TrackingMode = "log"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

type Task struct {
	bun.BaseModel `bun:"table:tasks,alias:t"`

	ID              int64          `bun:"id,pk,autoincrement"`
	UserID          int64          `bun:"user_id,notnull"`
	Title           string         `bun:"title,notnull"`
	Kind            TaskKind       `bun:"kind,notnull,type:text"`
	Status          TaskStatus     `bun:"status,notnull,type:text"`
	TrackingMode    TrackingMode   `bun:"tracking_mode,nullzero,type:text"`
	Difficulty      Difficulty     `bun:"difficulty,notnull,type:text"`
	RewardExp       int64          `bun:"reward_exp,notnull,default:0"`
	RewardFoodCount int64          `bun:"reward_food_count,notnull,default:0"`
	TargetValue     *amount.Amount `bun:"target_value,type:numeric(10,2)"`
	TargetUnit      string         `bun:"target_unit,nullzero"`
	TargetPeriod    string         `bun:"target_period,nullzero"`
	Tag             string         `bun:"tag,nullzero"`
	DueOn           *time.Time     `bun:"due_on,type:date"`
	RepeatDays      []int          `bun:"repeat_days,type:jsonb"`
	CompletedAt     *time.Time     `bun:"completed_at"`
	CreatedAt       time.Time      `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt       time.Time      `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
