package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/habitpet/habitpet/internal/apperr"
	"github.com/habitpet/habitpet/internal/config"
	"github.com/habitpet/habitpet/internal/domain/amount"
	"github.com/habitpet/habitpet/internal/domain/ledger"
	"github.com/habitpet/habitpet/internal/domain/store"
	"github.com/habitpet/habitpet/internal/domain/tasks"
	"github.com/habitpet/habitpet/internal/gateways/database/models"
	"github.com/habitpet/habitpet/internal/logger"
	"github.com/sahilm/fuzzy"
)

type TaskInput struct {
	Title           string
	Kind            models.TaskKind
	TrackingMode    models.TrackingMode
	Difficulty      models.Difficulty
	RewardFoodCount *int64
	TargetValue     string
	TargetUnit      string
	TargetPeriod    string
	Tag             string
	DueOn           *time.Time
	RepeatDays      []int
}

// TaskPatch holds optional changes; nil fields are left alone.
type TaskPatch struct {
	Title           *string
	TrackingMode    *models.TrackingMode
	Difficulty      *models.Difficulty
	RewardFoodCount *int64
	TargetValue     *string
	TargetUnit      *string
	TargetPeriod    *string
	Tag             *string
	DueOn           *time.Time
	RepeatDays      []int
}

type ListFilter struct {
	Query  string
	Status models.TaskStatus
}

// CreateTask inserts the task and its created ledger entry together.
func (s *Service) CreateTask(ctx context.Context, userID int64, in TaskInput) (*models.Task, error) {
	task, err := buildTask(userID, in)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithTransaction(ctx, func(ctx context.Context, r store.Repositories) error {
		now := s.now()
		task.CreatedAt = now
		task.UpdatedAt = now
		if err := r.Tasks.Create(ctx, task); err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}
		if err := r.Ledger.Append(ctx, ledger.Created(task, now)); err != nil {
			return fmt.Errorf("failed to append ledger entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, s.fail("create", userID, 0, err)
	}

	logger.LogAction("create", userID, task.ID, slog.String("kind", string(task.Kind)))
	return task, nil
}

// UpdateTask applies a patch. Tracking mode is fixed once a task exists.
func (s *Service) UpdateTask(ctx context.Context, userID, taskID int64, patch TaskPatch) (*models.Task, error) {
	var task *models.Task
	err := s.uow.WithTransaction(ctx, func(ctx context.Context, r store.Repositories) error {
		t, err := r.Tasks.GetForUpdate(ctx, userID, taskID)
		if err != nil {
			return err
		}
		if _, err := tasks.Check(t, tasks.ActionUpdate); err != nil {
			return err
		}
		if err := applyPatch(t, patch); err != nil {
			return err
		}

		t.UpdatedAt = s.now()
		if err := r.Tasks.Update(ctx, t); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
		task = t
		return nil
	})
	if err != nil {
		return nil, s.fail("update", userID, taskID, err)
	}
	return task, nil
}

// ArchiveTask soft-deletes an open or done task.
func (s *Service) ArchiveTask(ctx context.Context, userID, taskID int64) (*models.Task, error) {
	var task *models.Task
	err := s.uow.WithTransaction(ctx, func(ctx context.Context, r store.Repositories) error {
		t, err := r.Tasks.GetForUpdate(ctx, userID, taskID)
		if err != nil {
			return err
		}
		tr, err := tasks.Check(t, tasks.ActionArchive)
		if err != nil {
			return err
		}

		t.Status = tr.To
		t.UpdatedAt = s.now()
		if err := r.Tasks.Update(ctx, t); err != nil {
			return fmt.Errorf("failed to archive task: %w", err)
		}
		task = t
		return nil
	})
	if err != nil {
		return nil, s.fail(string(tasks.ActionArchive), userID, taskID, err)
	}

	logger.LogAction(string(tasks.ActionArchive), userID, taskID)
	return task, nil
}

func (s *Service) GetTask(ctx context.Context, userID, taskID int64) (*models.Task, error) {
	task, err := s.uow.Repositories().Tasks.Get(ctx, userID, taskID)
	if err != nil {
		return nil, s.fail("get", userID, taskID, err)
	}
	return task, nil
}

// ListTasks lists the user's tasks. With a query, only fuzzy title matches
// are returned, best match first.
func (s *Service) ListTasks(ctx context.Context, userID int64, filter ListFilter) ([]*models.Task, error) {
	list, err := s.uow.Repositories().Tasks.ListByUser(ctx, userID, filter.Status)
	if err != nil {
		return nil, s.fail("list", userID, 0, err)
	}

	query := strings.TrimSpace(filter.Query)
	if query == "" {
		return list, nil
	}

	matches := fuzzy.FindFrom(query, taskTitles(list))
	out := make([]*models.Task, 0, len(matches))
	for _, m := range matches {
		out = append(out, list[m.Index])
	}
	return out, nil
}

type taskTitles []*models.Task

func (t taskTitles) String(i int) string { return t[i].Title }
func (t taskTitles) Len() int            { return len(t) }

func buildTask(userID int64, in TaskInput) (*models.Task, error) {
	task := &models.Task{
		UserID:          userID,
		Kind:            in.Kind,
		Status:          models.TaskOpen,
		Difficulty:      in.Difficulty,
		RewardFoodCount: config.DefaultRewardFood,
		DueOn:           in.DueOn,
	}
	if task.Difficulty == "" {
		task.Difficulty = models.DifficultyNormal
	}

	switch in.Kind {
	case models.TaskKindTodo:
		task.TrackingMode = models.TrackingNone
	case models.TaskKindHabit:
		if in.TrackingMode != models.TrackingCheckbox && in.TrackingMode != models.TrackingLog {
			return nil, apperr.InvalidOperation("habits need a tracking mode of checkbox or log")
		}
		task.TrackingMode = in.TrackingMode
	default:
		return nil, apperr.InvalidOperation("unknown task kind %q", in.Kind)
	}

	patch := TaskPatch{
		Title:           &in.Title,
		Difficulty:      &task.Difficulty,
		RewardFoodCount: in.RewardFoodCount,
		Tag:             &in.Tag,
		RepeatDays:      in.RepeatDays,
	}
	if task.TrackingMode == models.TrackingLog {
		patch.TargetValue = &in.TargetValue
		patch.TargetUnit = &in.TargetUnit
		patch.TargetPeriod = &in.TargetPeriod
	}
	if err := applyPatch(task, patch); err != nil {
		return nil, err
	}
	return task, nil
}

func applyPatch(task *models.Task, p TaskPatch) error {
	if p.TrackingMode != nil && *p.TrackingMode != task.TrackingMode {
		return apperr.InvalidOperation("tracking mode cannot change after creation")
	}

	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" || utf8.RuneCountInString(title) > config.MaxTitleLength {
			return apperr.InvalidOperation("title must be 1 to %d characters", config.MaxTitleLength)
		}
		task.Title = title
	}
	if p.Difficulty != nil {
		if !tasks.ValidDifficulty(*p.Difficulty) {
			return apperr.InvalidOperation("unknown difficulty %q", *p.Difficulty)
		}
		task.Difficulty = *p.Difficulty
		task.RewardExp = tasks.RewardExp(task.Difficulty)
	}
	if p.RewardFoodCount != nil {
		if *p.RewardFoodCount < 0 {
			return apperr.InvalidOperation("reward food count cannot be negative")
		}
		task.RewardFoodCount = *p.RewardFoodCount
	}
	if p.Tag != nil {
		tag := strings.TrimSpace(*p.Tag)
		if utf8.RuneCountInString(tag) > config.MaxTagLength {
			return apperr.InvalidOperation("tag must be at most %d characters", config.MaxTagLength)
		}
		task.Tag = tag
	}
	if p.DueOn != nil {
		due := p.DueOn.UTC().Truncate(24 * time.Hour)
		task.DueOn = &due
	}
	if p.RepeatDays != nil {
		for _, d := range p.RepeatDays {
			if d < 0 || d > 6 {
				return apperr.InvalidOperation("repeat day %d is not a weekday (0-6)", d)
			}
		}
		task.RepeatDays = p.RepeatDays
	}

	if task.TrackingMode != models.TrackingLog {
		return nil
	}
	if p.TargetValue != nil {
		if v := strings.TrimSpace(*p.TargetValue); v != "" {
			target := amount.Parse(v)
			task.TargetValue = &target
		}
	}
	if p.TargetUnit != nil && *p.TargetUnit != "" {
		if !tasks.ValidUnit(*p.TargetUnit) {
			return apperr.InvalidOperation("unknown unit %q", *p.TargetUnit)
		}
		task.TargetUnit = *p.TargetUnit
	}
	if p.TargetPeriod != nil && *p.TargetPeriod != "" {
		if !tasks.ValidPeriod(*p.TargetPeriod) {
			return apperr.InvalidOperation("unknown period %q", *p.TargetPeriod)
		}
		task.TargetPeriod = *p.TargetPeriod
	}
	return nil
}
