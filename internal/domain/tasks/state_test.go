package tasks

import (
	"errors"
	"testing"

	"github.com/habitpet/habitpet/internal/apperr"
	"github.com/habitpet/habitpet/internal/gateways/database/models"
)

func task(kind models.TaskKind, mode models.TrackingMode, status models.TaskStatus) *models.Task {
	return &models.Task{ID: 7, Kind: kind, TrackingMode: mode, Status: status}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		task     *models.Task
		action   Action
		wantTo   models.TaskStatus
		wantNoop bool
		wantErr  bool
	}{
		{name: "todo complete", task: task(models.TaskKindTodo, models.TrackingNone, models.TaskOpen), action: ActionComplete, wantTo: models.TaskDone},
		{name: "todo ignores stray mode", task: task(models.TaskKindTodo, models.TrackingLog, models.TaskOpen), action: ActionComplete, wantTo: models.TaskDone},
		{name: "todo double complete", task: task(models.TaskKindTodo, models.TrackingNone, models.TaskDone), action: ActionComplete, wantErr: true},
		{name: "checkbox habit complete", task: task(models.TaskKindHabit, models.TrackingCheckbox, models.TaskOpen), action: ActionComplete, wantTo: models.TaskDone},
		{name: "log habit cannot complete", task: task(models.TaskKindHabit, models.TrackingLog, models.TaskOpen), action: ActionComplete, wantErr: true},
		{name: "habit without mode", task: task(models.TaskKindHabit, models.TrackingNone, models.TaskOpen), action: ActionComplete, wantErr: true},
		{name: "archived cannot complete", task: task(models.TaskKindTodo, models.TrackingNone, models.TaskArchived), action: ActionComplete, wantErr: true},
		{name: "log habit log keeps open", task: task(models.TaskKindHabit, models.TrackingLog, models.TaskOpen), action: ActionLog, wantTo: models.TaskOpen},
		{name: "todo cannot log", task: task(models.TaskKindTodo, models.TrackingNone, models.TaskOpen), action: ActionLog, wantErr: true},
		{name: "checkbox habit cannot log", task: task(models.TaskKindHabit, models.TrackingCheckbox, models.TaskOpen), action: ActionLog, wantErr: true},
		{name: "archived cannot log", task: task(models.TaskKindHabit, models.TrackingLog, models.TaskArchived), action: ActionLog, wantErr: true},
		{name: "reopen done", task: task(models.TaskKindTodo, models.TrackingNone, models.TaskDone), action: ActionReopen, wantTo: models.TaskOpen},
		{name: "reopen open is noop", task: task(models.TaskKindTodo, models.TrackingNone, models.TaskOpen), action: ActionReopen, wantTo: models.TaskOpen, wantNoop: true},
		{name: "reopen archived", task: task(models.TaskKindTodo, models.TrackingNone, models.TaskArchived), action: ActionReopen, wantErr: true},
		{name: "archive open", task: task(models.TaskKindHabit, models.TrackingLog, models.TaskOpen), action: ActionArchive, wantTo: models.TaskArchived},
		{name: "archive done", task: task(models.TaskKindTodo, models.TrackingNone, models.TaskDone), action: ActionArchive, wantTo: models.TaskArchived},
		{name: "archive twice", task: task(models.TaskKindTodo, models.TrackingNone, models.TaskArchived), action: ActionArchive, wantErr: true},
		{name: "update archived", task: task(models.TaskKindTodo, models.TrackingNone, models.TaskArchived), action: ActionUpdate, wantErr: true},
		{name: "unknown action", task: task(models.TaskKindTodo, models.TrackingNone, models.TaskOpen), action: Action("explode"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Check(tt.task, tt.action)
			if tt.wantErr {
				if !errors.Is(err, apperr.ErrInvalidOperation) {
					t.Fatalf("Check() error = %v, want InvalidOperation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Check() unexpected error = %v", err)
			}
			if got.To != tt.wantTo || got.Noop != tt.wantNoop {
				t.Errorf("Check() = %+v, want to=%s noop=%v", got, tt.wantTo, tt.wantNoop)
			}
		})
	}
}

func TestRewardExp(t *testing.T) {
	tests := []struct {
		difficulty models.Difficulty
		want       int64
	}{
		{models.DifficultyEasy, 10},
		{models.DifficultyNormal, 20},
		{models.DifficultyHard, 40},
		{models.Difficulty(""), 20},
	}
	for _, tt := range tests {
		if got := RewardExp(tt.difficulty); got != tt.want {
			t.Errorf("RewardExp(%q) = %d, want %d", tt.difficulty, got, tt.want)
		}
	}
}

func TestLogUnit(t *testing.T) {
	habit := &models.Task{TargetUnit: "km"}
	tests := []struct {
		name string
		unit string
		want string
	}{
		{name: "given", unit: "times", want: "times"},
		{name: "blank", unit: "  ", want: "km"},
		{name: "too long", unit: "kilometres-ran-this-morning", want: "km"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LogUnit(habit, tt.unit); got != tt.want {
				t.Errorf("LogUnit(%q) = %q, want %q", tt.unit, got, tt.want)
			}
		})
	}
}
