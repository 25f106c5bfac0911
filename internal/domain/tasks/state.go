package tasks

import (
	"github.com/habitpet/habitpet/internal/apperr"
	"github.com/habitpet/habitpet/internal/gateways/database/models"
)

// Variant is the behavior class of a task, derived from kind and tracking mode.
type Variant int

const (
	VariantTodo Variant = iota + 1
	VariantHabitCheckbox
	VariantHabitLog
)

func (v Variant) String() string {
	switch v {
	case VariantTodo:
		return "todo"
	case VariantHabitCheckbox:
		return "habit/checkbox"
	case VariantHabitLog:
		return "habit/log"
	default:
		return "unknown"
	}
}

type Action string

const (
	ActionComplete Action = "complete"
	ActionLog      Action = "log"
	ActionReopen   Action = "reopen"
	ActionArchive  Action = "archive"
	ActionUpdate   Action = "update"
)

// Transition is the result of a legal action. Noop means the task is
// already where the action would put it.
type Transition struct {
	Variant Variant
	From    models.TaskStatus
	To      models.TaskStatus
	Noop    bool
}

// VariantOf classifies a task. A habit must carry a tracking mode; a todo
// ignores whatever mode it has.
func VariantOf(task *models.Task) (Variant, error) {
	switch task.Kind {
	case models.TaskKindTodo:
		return VariantTodo, nil
	case models.TaskKindHabit:
		switch task.TrackingMode {
		case models.TrackingCheckbox:
			return VariantHabitCheckbox, nil
		case models.TrackingLog:
			return VariantHabitLog, nil
		default:
			return 0, apperr.InvalidOperation("habit %d has no tracking mode", task.ID)
		}
	default:
		return 0, apperr.InvalidOperation("task %d has unknown kind %q", task.ID, task.Kind)
	}
}

// Check validates action against the task's variant and status and returns
// the status it leads to. Every (variant, status, action) combination is
// listed below; anything else is an InvalidOperation.
func Check(task *models.Task, action Action) (Transition, error) {
	variant, err := VariantOf(task)
	if err != nil {
		return Transition{}, err
	}

	t := Transition{Variant: variant, From: task.Status, To: task.Status}
	if task.Status == models.TaskArchived {
		return t, apperr.InvalidOperation("task %d is archived", task.ID)
	}

	switch action {
	case ActionComplete:
		switch {
		case variant == VariantHabitLog:
			return t, apperr.InvalidOperation("task %d tracks quantities; log an amount instead", task.ID)
		case task.Status == models.TaskOpen:
			t.To = models.TaskDone
			return t, nil
		case task.Status == models.TaskDone:
			return t, apperr.InvalidOperation("task %d is already done", task.ID)
		}

	case ActionLog:
		switch {
		case variant != VariantHabitLog:
			return t, apperr.InvalidOperation("task %d does not track quantities", task.ID)
		case task.Status == models.TaskOpen:
			return t, nil
		}

	case ActionReopen:
		switch task.Status {
		case models.TaskOpen:
			t.Noop = true
			return t, nil
		case models.TaskDone:
			t.To = models.TaskOpen
			return t, nil
		}

	case ActionArchive:
		switch task.Status {
		case models.TaskOpen, models.TaskDone:
			t.To = models.TaskArchived
			return t, nil
		}

	case ActionUpdate:
		switch task.Status {
		case models.TaskOpen, models.TaskDone:
			return t, nil
		}
	}

	return t, apperr.InvalidOperation("cannot %s task %d in status %s", action, task.ID, task.Status)
}
