package models

import "time"

// TaskCreateRequest is the body of POST /api/tasks.
type TaskCreateRequest struct {
	Title           string     `json:"title" validate:"required,max=255"`
	Kind            string     `json:"kind" validate:"required,oneof=todo habit"`
	TrackingMode    string     `json:"tracking_mode" validate:"omitempty,oneof=checkbox log"`
	Difficulty      string     `json:"difficulty" validate:"omitempty,oneof=easy normal hard"`
	RewardFoodCount *int64     `json:"reward_food_count" validate:"omitempty,min=0"`
	TargetValue     string     `json:"target_value" validate:"max=32"`
	TargetUnit      string     `json:"target_unit" validate:"max=20"`
	TargetPeriod    string     `json:"target_period" validate:"omitempty,oneof=daily weekly monthly"`
	Tag             string     `json:"tag" validate:"max=50"`
	DueOn           *time.Time `json:"due_on"`
	RepeatDays      []int      `json:"repeat_days" validate:"omitempty,max=7,dive,min=0,max=6"`
}

// TaskUpdateRequest is the body of PATCH /api/tasks/:id. Absent fields
// are left alone.
type TaskUpdateRequest struct {
	Title           *string    `json:"title" validate:"omitempty,max=255"`
	TrackingMode    *string    `json:"tracking_mode" validate:"omitempty,oneof=checkbox log"`
	Difficulty      *string    `json:"difficulty" validate:"omitempty,oneof=easy normal hard"`
	RewardFoodCount *int64     `json:"reward_food_count" validate:"omitempty,min=0"`
	TargetValue     *string    `json:"target_value" validate:"omitempty,max=32"`
	TargetUnit      *string    `json:"target_unit" validate:"omitempty,max=20"`
	TargetPeriod    *string    `json:"target_period" validate:"omitempty,oneof=daily weekly monthly"`
	Tag             *string    `json:"tag" validate:"omitempty,max=50"`
	DueOn           *time.Time `json:"due_on"`
	RepeatDays      []int      `json:"repeat_days" validate:"omitempty,max=7,dive,min=0,max=6"`
}

// LogRequest is the body of POST /api/tasks/:id/log. Amount is taken as
// text; anything that does not parse counts as zero.
type LogRequest struct {
	Amount string `json:"amount" validate:"max=32"`
	Unit   string `json:"unit"`
}
