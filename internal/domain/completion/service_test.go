package completion

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/habitpet/habitpet/internal/apperr"
	"github.com/habitpet/habitpet/internal/domain/amount"
	companionsmock "github.com/habitpet/habitpet/internal/domain/companions/mock"
	"github.com/habitpet/habitpet/internal/domain/growth"
	ledgermock "github.com/habitpet/habitpet/internal/domain/ledger/mock"
	"github.com/habitpet/habitpet/internal/domain/store"
	storemock "github.com/habitpet/habitpet/internal/domain/store/mock"
	tasksmock "github.com/habitpet/habitpet/internal/domain/tasks/mock"
	"github.com/habitpet/habitpet/internal/domain/titles"
	titlesmock "github.com/habitpet/habitpet/internal/domain/titles/mock"
	usersmock "github.com/habitpet/habitpet/internal/domain/users/mock"
	"github.com/habitpet/habitpet/internal/gateways/database/models"
	"go.uber.org/mock/gomock"
)

var (
	now = time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC)

	eggKind = &models.CharacterKind{ID: 1, Name: "Egg", Stage: models.StageEgg}
	kitKind = &models.CharacterKind{ID: 3, Name: "Kit", Stage: models.StageJuvenile}

	testComments = CommentTable{
		ReactionLevelUp:       {"level up!"},
		ReactionFeed:          {"yum"},
		ReactionTaskCompleted: {"done!"},
		ReactionTaskLogged:    {"logged!"},
	}
)

type fixture struct {
	users      *usersmock.MockRepository
	tasks      *tasksmock.MockRepository
	companions *companionsmock.MockRepository
	kinds      *companionsmock.MockKindRepository
	ledger     *ledgermock.MockRepository
	titles     *titlesmock.MockRepository
	svc        *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		users:      usersmock.NewMockRepository(ctrl),
		tasks:      tasksmock.NewMockRepository(ctrl),
		companions: companionsmock.NewMockRepository(ctrl),
		kinds:      companionsmock.NewMockKindRepository(ctrl),
		ledger:     ledgermock.NewMockRepository(ctrl),
		titles:     titlesmock.NewMockRepository(ctrl),
	}
	repos := store.Repositories{
		Users:      f.users,
		Tasks:      f.tasks,
		Companions: f.companions,
		Kinds:      f.kinds,
		Ledger:     f.ledger,
		Titles:     f.titles,
	}

	uow := storemock.NewMockUnitOfWork(ctrl)
	uow.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn store.TxFunc) error {
			return fn(ctx, repos)
		}).
		AnyTimes()

	f.svc = NewService(uow, growth.NewEngine(growth.NewDefaultConfig()), titles.NewEvaluator(),
		WithClock(func() time.Time { return now }),
		WithCommenter(testComments),
	)
	return f
}

func ptr(v int64) *int64 { return &v }

func todoTask(difficulty models.Difficulty, rewardExp int64) *models.Task {
	return &models.Task{
		ID: 10, UserID: 1, Title: "Write report",
		Kind: models.TaskKindTodo, Status: models.TaskOpen,
		Difficulty: difficulty, RewardExp: rewardExp, RewardFoodCount: 1,
	}
}

func logHabit() *models.Task {
	return &models.Task{
		ID: 20, UserID: 1, Title: "Push-ups",
		Kind: models.TaskKindHabit, TrackingMode: models.TrackingLog, Status: models.TaskOpen,
		Difficulty: models.DifficultyNormal, RewardExp: 20, RewardFoodCount: 1,
		TargetUnit: "times",
	}
}

// expectPay sets up the user and companion reads and writes of a payout.
func (f *fixture) expectPay(user *models.User, companion *models.Companion, food int64) {
	f.users.EXPECT().GetForUpdate(gomock.Any(), user.ID).Return(user, nil)
	f.users.EXPECT().AddFood(gomock.Any(), user.ID, food).Return(user.FoodCount+food, nil)
	if companion != nil {
		f.companions.EXPECT().GetForUpdate(gomock.Any(), companion.ID).Return(companion, nil)
		if companion.Alive() {
			f.companions.EXPECT().Update(gomock.Any(), companion).Return(nil)
		}
	}
}

func (f *fixture) captureEntry() *models.TaskEvent {
	entry := &models.TaskEvent{}
	f.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *models.TaskEvent) error {
		*entry = *e
		return nil
	})
	return entry
}

func TestService_Complete(t *testing.T) {
	t.Run("normal task pays food and exp", func(t *testing.T) {
		f := newFixture(t)
		task := todoTask(models.DifficultyNormal, 20)
		user := &models.User{ID: 1, FoodCount: 0, ActiveCompanionID: ptr(5)}
		companion := &models.Companion{ID: 5, UserID: 1, Level: 1, Exp: 0, State: models.CompanionAlive, CharacterKindID: 1, Kind: eggKind}

		f.tasks.EXPECT().GetForUpdate(gomock.Any(), int64(1), int64(10)).Return(task, nil)
		f.tasks.EXPECT().Update(gomock.Any(), task).Return(nil)
		f.expectPay(user, companion, 1)
		entry := f.captureEntry()
		f.titles.EXPECT().ListActive(gomock.Any()).Return(nil, nil)

		out, err := f.svc.Complete(context.Background(), 1, 10)
		if err != nil {
			t.Fatalf("Complete() unexpected error = %v", err)
		}
		if out.Task.Status != models.TaskDone || out.Task.CompletedAt == nil || !out.Task.CompletedAt.Equal(now) {
			t.Errorf("task = %+v, want done at %v", out.Task, now)
		}
		if out.FoodBalance != 1 || out.FoodAwarded != 1 || out.XPAwarded != 20 {
			t.Errorf("outcome food=%d/%d xp=%d", out.FoodBalance, out.FoodAwarded, out.XPAwarded)
		}
		if companion.Exp != 20 || companion.Level != 1 || companion.LastActivityAt == nil {
			t.Errorf("companion = %+v", companion)
		}
		if entry.Action != models.ActionCompleted || entry.Delta != 1 || entry.XPAmount != 20 || entry.FoodAmount != 1 ||
			entry.AwardedCompanionID == nil || *entry.AwardedCompanionID != 5 {
			t.Errorf("ledger entry = %+v", entry)
		}
		if out.Hatched || out.Evolved {
			t.Errorf("unexpected stage change")
		}
		if out.Comment != "done!" {
			t.Errorf("Comment = %q, want %q", out.Comment, "done!")
		}
		if out.Notice != "Task completed! +20 EXP, +1 food" {
			t.Errorf("Notice = %q", out.Notice)
		}
	})

	t.Run("crossing level 2 hatches without a comment", func(t *testing.T) {
		f := newFixture(t)
		task := todoTask(models.DifficultyEasy, 10)
		user := &models.User{ID: 1, ActiveCompanionID: ptr(5)}
		companion := &models.Companion{ID: 5, UserID: 1, Level: 1, Exp: 45, State: models.CompanionAlive, CharacterKindID: 1, Kind: eggKind}

		f.tasks.EXPECT().GetForUpdate(gomock.Any(), int64(1), int64(10)).Return(task, nil)
		f.tasks.EXPECT().Update(gomock.Any(), task).Return(nil)
		f.expectPay(user, companion, 1)
		f.kinds.EXPECT().Successors(gomock.Any(), int64(1)).Return([]*models.CharacterKind{kitKind}, nil)
		f.captureEntry()
		f.titles.EXPECT().ListActive(gomock.Any()).Return(nil, nil)

		out, err := f.svc.Complete(context.Background(), 1, 10)
		if err != nil {
			t.Fatalf("Complete() unexpected error = %v", err)
		}
		if !out.Hatched || out.Evolved {
			t.Errorf("hatched/evolved = %v/%v, want true/false", out.Hatched, out.Evolved)
		}
		if companion.Level != 2 || companion.Exp != 5 || companion.CharacterKindID != 3 {
			t.Errorf("companion = level %d exp %d kind %d", companion.Level, companion.Exp, companion.CharacterKindID)
		}
		if out.Growth.Stage != models.StageJuvenile {
			t.Errorf("stage = %s, want juvenile", out.Growth.Stage)
		}
		if out.Comment != "" {
			t.Errorf("Comment = %q, want none on hatch", out.Comment)
		}
		if out.Notice != "Your companion hatched!" {
			t.Errorf("Notice = %q", out.Notice)
		}
	})

	t.Run("level up comment wins over completion", func(t *testing.T) {
		f := newFixture(t)
		task := todoTask(models.DifficultyNormal, 20)
		user := &models.User{ID: 1, FoodCount: 4, ActiveCompanionID: ptr(5)}
		companion := &models.Companion{ID: 5, UserID: 1, Level: 3, Exp: 100, State: models.CompanionAlive, CharacterKindID: 3, Kind: kitKind}

		f.tasks.EXPECT().GetForUpdate(gomock.Any(), int64(1), int64(10)).Return(task, nil)
		f.tasks.EXPECT().Update(gomock.Any(), task).Return(nil)
		f.expectPay(user, companion, 1)
		f.captureEntry()
		f.titles.EXPECT().ListActive(gomock.Any()).Return(nil, nil)

		out, err := f.svc.Complete(context.Background(), 1, 10)
		if err != nil {
			t.Fatalf("Complete() unexpected error = %v", err)
		}
		if companion.Level != 4 || companion.Exp != 8 {
			t.Errorf("companion = level %d exp %d, want 4/8", companion.Level, companion.Exp)
		}
		if out.Comment != "level up!" {
			t.Errorf("Comment = %q, want level up line", out.Comment)
		}
	})

	t.Run("dead companion gets nothing", func(t *testing.T) {
		f := newFixture(t)
		task := todoTask(models.DifficultyHard, 40)
		user := &models.User{ID: 1, ActiveCompanionID: ptr(5)}
		companion := &models.Companion{ID: 5, UserID: 1, Level: 6, Exp: 10, State: models.CompanionDead}

		f.tasks.EXPECT().GetForUpdate(gomock.Any(), int64(1), int64(10)).Return(task, nil)
		f.tasks.EXPECT().Update(gomock.Any(), task).Return(nil)
		f.expectPay(user, companion, 1)
		entry := f.captureEntry()
		f.titles.EXPECT().ListActive(gomock.Any()).Return(nil, nil)

		out, err := f.svc.Complete(context.Background(), 1, 10)
		if err != nil {
			t.Fatalf("Complete() unexpected error = %v", err)
		}
		if out.Growth != nil || out.XPAwarded != 0 || companion.Exp != 10 {
			t.Errorf("dead companion was credited: %+v", out)
		}
		if entry.XPAmount != 0 || entry.AwardedCompanionID != nil {
			t.Errorf("ledger entry = %+v, want no exp", entry)
		}
		if out.Notice != "Task completed! +1 food" {
			t.Errorf("Notice = %q", out.Notice)
		}
	})

	t.Run("unlocked titles are returned", func(t *testing.T) {
		f := newFixture(t)
		task := todoTask(models.DifficultyNormal, 20)
		user := &models.User{ID: 1}
		first := &models.Title{ID: 1, Key: "first_step", RuleType: titles.RuleTotalCompletions, Threshold: 1, Active: true}

		f.tasks.EXPECT().GetForUpdate(gomock.Any(), int64(1), int64(10)).Return(task, nil)
		f.tasks.EXPECT().Update(gomock.Any(), task).Return(nil)
		f.expectPay(user, nil, 1)
		f.captureEntry()
		f.titles.EXPECT().ListActive(gomock.Any()).Return([]*models.Title{first}, nil)
		f.titles.EXPECT().UnlockedIDs(gomock.Any(), int64(1)).Return(map[int64]bool{}, nil)
		f.ledger.EXPECT().CountByAction(gomock.Any(), int64(1), models.ActionCompleted).Return(int64(1), nil)
		f.titles.EXPECT().Unlock(gomock.Any(), gomock.Any()).Return(true, nil)

		out, err := f.svc.Complete(context.Background(), 1, 10)
		if err != nil {
			t.Fatalf("Complete() unexpected error = %v", err)
		}
		if len(out.Unlocked) != 1 || out.Unlocked[0].Key != "first_step" {
			t.Errorf("Unlocked = %v", out.Unlocked)
		}
	})
}

func TestService_Complete_Rejected(t *testing.T) {
	done := todoTask(models.DifficultyNormal, 20)
	done.Status = models.TaskDone
	archived := todoTask(models.DifficultyNormal, 20)
	archived.Status = models.TaskArchived

	tests := []struct {
		name    string
		task    *models.Task
		getErr  error
		wantErr error
	}{
		{name: "log habit", task: logHabit(), wantErr: apperr.ErrInvalidOperation},
		{name: "already done", task: done, wantErr: apperr.ErrInvalidOperation},
		{name: "archived", task: archived, wantErr: apperr.ErrInvalidOperation},
		{name: "someone else's task", getErr: apperr.NotFound("task", 10), wantErr: apperr.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.tasks.EXPECT().GetForUpdate(gomock.Any(), int64(1), int64(10)).Return(tt.task, tt.getErr)

			out, err := f.svc.Complete(context.Background(), 1, 10)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Complete() error = %v, want %v", err, tt.wantErr)
			}
			if out != nil {
				t.Errorf("Complete() outcome = %+v, want nil", out)
			}
		})
	}
}

// serialUnitOfWork runs one transaction at a time, the way row locks on the
// task serialize two requests for the same task.
type serialUnitOfWork struct {
	mu    sync.Mutex
	repos store.Repositories
}

func (u *serialUnitOfWork) WithTransaction(ctx context.Context, fn store.TxFunc) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(ctx, u.repos)
}

func (u *serialUnitOfWork) Repositories() store.Repositories { return u.repos }

func TestService_Complete_DoubleSubmitPaysOnce(t *testing.T) {
	f := newFixture(t)
	uow := &serialUnitOfWork{repos: store.Repositories{
		Users:      f.users,
		Tasks:      f.tasks,
		Companions: f.companions,
		Kinds:      f.kinds,
		Ledger:     f.ledger,
		Titles:     f.titles,
	}}
	svc := NewService(uow, growth.NewEngine(growth.NewDefaultConfig()), titles.NewEvaluator(),
		WithClock(func() time.Time { return now }),
		WithCommenter(testComments),
	)

	// committed row state; each transaction reads a copy and writes it back
	row := todoTask(models.DifficultyNormal, 20)
	f.tasks.EXPECT().GetForUpdate(gomock.Any(), int64(1), int64(10)).
		DoAndReturn(func(context.Context, int64, int64) (*models.Task, error) {
			task := *row
			return &task, nil
		}).
		Times(2)
	f.tasks.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task *models.Task) error {
			*row = *task
			return nil
		}).
		Times(1)

	user := &models.User{ID: 1, FoodCount: 0, ActiveCompanionID: ptr(5)}
	companion := &models.Companion{ID: 5, UserID: 1, Level: 1, Exp: 0, State: models.CompanionAlive, CharacterKindID: 1, Kind: eggKind}
	f.expectPay(user, companion, 1)
	f.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.titles.EXPECT().ListActive(gomock.Any()).Return(nil, nil).Times(1)

	var (
		wg   sync.WaitGroup
		errs = make([]error, 2)
	)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.Complete(context.Background(), 1, 10)
		}()
	}
	wg.Wait()

	var ok, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, apperr.ErrInvalidOperation):
			rejected++
		default:
			t.Fatalf("Complete() unexpected error = %v", err)
		}
	}
	if ok != 1 || rejected != 1 {
		t.Fatalf("succeeded=%d rejected=%d, want one of each", ok, rejected)
	}
	if companion.Exp != 20 {
		t.Errorf("companion exp = %d, want a single 20 exp award", companion.Exp)
	}
	if row.Status != models.TaskDone {
		t.Errorf("task status = %s, want done", row.Status)
	}
}

func TestService_Complete_UnexpectedFailureIsInternal(t *testing.T) {
	f := newFixture(t)
	task := todoTask(models.DifficultyNormal, 20)
	user := &models.User{ID: 1}

	f.tasks.EXPECT().GetForUpdate(gomock.Any(), int64(1), int64(10)).Return(task, nil)
	f.tasks.EXPECT().Update(gomock.Any(), task).Return(nil)
	f.expectPay(user, nil, 1)
	f.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	_, err := f.svc.Complete(context.Background(), 1, 10)
	if !errors.Is(err, apperr.ErrInternal) {
		t.Fatalf("Complete() error = %v, want Internal", err)
	}
}

func TestService_LogAmount(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		unit       string
		wantAmount amount.Amount
		wantUnit   string
	}{
		{name: "whole number", raw: "25", unit: "times", wantAmount: 2500, wantUnit: "times"},
		{name: "decimal", raw: "2.345", unit: "km", wantAmount: 235, wantUnit: "km"},
		{name: "leading point", raw: ".5", unit: "km", wantAmount: 50, wantUnit: "km"},
		{name: "malformed degrades to zero", raw: "lots", unit: "", wantAmount: 0, wantUnit: "times"},
		{name: "negative degrades to zero", raw: "-3", unit: "times", wantAmount: 0, wantUnit: "times"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			task := logHabit()
			user := &models.User{ID: 1, ActiveCompanionID: ptr(5)}
			companion := &models.Companion{ID: 5, UserID: 1, Level: 2, Exp: 0, State: models.CompanionAlive, CharacterKindID: 3, Kind: kitKind}

			f.tasks.EXPECT().GetForUpdate(gomock.Any(), int64(1), int64(20)).Return(task, nil)
			f.expectPay(user, companion, 1)
			entry := f.captureEntry()
			f.titles.EXPECT().ListActive(gomock.Any()).Return(nil, nil)

			out, err := f.svc.LogAmount(context.Background(), 1, 20, tt.raw, tt.unit)
			if err != nil {
				t.Fatalf("LogAmount() unexpected error = %v", err)
			}
			if out.Task.Status != models.TaskOpen {
				t.Errorf("status = %s, want open", out.Task.Status)
			}
			if entry.Action != models.ActionLogged || entry.Delta != 1 || entry.Amount != tt.wantAmount || entry.Unit != tt.wantUnit {
				t.Errorf("ledger entry = %+v", entry)
			}
			if entry.XPAmount != 20 || companion.Exp != 20 {
				t.Errorf("xp = %d, companion exp = %d, want 20", entry.XPAmount, companion.Exp)
			}
			if out.Comment != "logged!" {
				t.Errorf("Comment = %q", out.Comment)
			}
		})
	}
}

func TestService_LogAmount_RejectsCheckboxTasks(t *testing.T) {
	f := newFixture(t)
	f.tasks.EXPECT().GetForUpdate(gomock.Any(), int64(1), int64(10)).Return(todoTask(models.DifficultyNormal, 20), nil)

	_, err := f.svc.LogAmount(context.Background(), 1, 10, "5", "km")
	if !errors.Is(err, apperr.ErrInvalidOperation) {
		t.Fatalf("LogAmount() error = %v, want InvalidOperation", err)
	}
}

func TestService_Reopen(t *testing.T) {
	doneTask := func() *models.Task {
		task := todoTask(models.DifficultyNormal, 20)
		task.Status = models.TaskDone
		task.CompletedAt = &now
		return task
	}

	t.Run("reverses food and exp", func(t *testing.T) {
		f := newFixture(t)
		task := doneTask()
		user := &models.User{ID: 1, FoodCount: 3, ActiveCompanionID: ptr(5)}
		companion := &models.Companion{ID: 5, UserID: 1, Level: 2, Exp: 10, State: models.CompanionAlive}

		f.tasks.EXPECT().GetForUpdate(gomock.Any(), int64(1), int64(10)).Return(task, nil)
		f.tasks.EXPECT().Update(gomock.Any(), task).Return(nil)
		f.users.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(user, nil)
		f.users.EXPECT().AddFood(gomock.Any(), int64(1), int64(-1)).Return(int64(2), nil)
		f.ledger.EXPECT().LastCompletion(gomock.Any(), int64(1), int64(10)).
			Return(&models.TaskEvent{Action: models.ActionCompleted, XPAmount: 20, FoodAmount: 1, AwardedCompanionID: ptr(5)}, nil)
		f.companions.EXPECT().GetForUpdate(gomock.Any(), int64(5)).Return(companion, nil)
		f.companions.EXPECT().Update(gomock.Any(), companion).Return(nil)
		entry := f.captureEntry()

		got, err := f.svc.Reopen(context.Background(), 1, 10)
		if err != nil {
			t.Fatalf("Reopen() unexpected error = %v", err)
		}
		if got.Status != models.TaskOpen || got.CompletedAt != nil {
			t.Errorf("task = %+v, want open without completion time", got)
		}
		if companion.Level != 2 || companion.Exp != 0 {
			t.Errorf("companion = level %d exp %d, want level kept and exp clamped", companion.Level, companion.Exp)
		}
		if entry.Action != models.ActionReopened || entry.Delta != -1 || entry.XPAmount != -20 || entry.FoodAmount != -1 {
			t.Errorf("ledger entry = %+v", entry)
		}
	})

	t.Run("takes back the food paid, not the edited reward", func(t *testing.T) {
		f := newFixture(t)
		task := doneTask()
		task.RewardFoodCount = 5
		user := &models.User{ID: 1, FoodCount: 10, ActiveCompanionID: ptr(5)}

		f.tasks.EXPECT().GetForUpdate(gomock.Any(), int64(1), int64(10)).Return(task, nil)
		f.tasks.EXPECT().Update(gomock.Any(), task).Return(nil)
		f.users.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(user, nil)
		f.users.EXPECT().AddFood(gomock.Any(), int64(1), int64(-1)).Return(int64(9), nil)
		f.ledger.EXPECT().LastCompletion(gomock.Any(), int64(1), int64(10)).
			Return(&models.TaskEvent{Action: models.ActionCompleted, FoodAmount: 1}, nil)
		entry := f.captureEntry()

		if _, err := f.svc.Reopen(context.Background(), 1, 10); err != nil {
			t.Fatalf("Reopen() unexpected error = %v", err)
		}
		if entry.FoodAmount != -1 {
			t.Errorf("reopened entry food = %d, want -1", entry.FoodAmount)
		}
	})

	t.Run("no prior completion falls back to the task reward", func(t *testing.T) {
		f := newFixture(t)
		task := doneTask()
		task.RewardFoodCount = 3
		user := &models.User{ID: 1, FoodCount: 2, ActiveCompanionID: ptr(5)}

		f.tasks.EXPECT().GetForUpdate(gomock.Any(), int64(1), int64(10)).Return(task, nil)
		f.tasks.EXPECT().Update(gomock.Any(), task).Return(nil)
		f.users.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(user, nil)
		f.users.EXPECT().AddFood(gomock.Any(), int64(1), int64(-2)).Return(int64(0), nil)
		f.ledger.EXPECT().LastCompletion(gomock.Any(), int64(1), int64(10)).Return(nil, apperr.NotFound("completion", 10))
		entry := f.captureEntry()

		if _, err := f.svc.Reopen(context.Background(), 1, 10); err != nil {
			t.Fatalf("Reopen() unexpected error = %v", err)
		}
		if entry.FoodAmount != -2 {
			t.Errorf("reopened entry food = %d, want -2 (capped at balance)", entry.FoodAmount)
		}
	})

	t.Run("empty pantry and no prior completion", func(t *testing.T) {
		f := newFixture(t)
		task := doneTask()
		user := &models.User{ID: 1, FoodCount: 0, ActiveCompanionID: ptr(5)}

		f.tasks.EXPECT().GetForUpdate(gomock.Any(), int64(1), int64(10)).Return(task, nil)
		f.tasks.EXPECT().Update(gomock.Any(), task).Return(nil)
		f.users.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(user, nil)
		f.ledger.EXPECT().LastCompletion(gomock.Any(), int64(1), int64(10)).Return(nil, apperr.NotFound("completion", 10))
		entry := f.captureEntry()

		if _, err := f.svc.Reopen(context.Background(), 1, 10); err != nil {
			t.Fatalf("Reopen() unexpected error = %v", err)
		}
		if entry.XPAmount != 0 || entry.FoodAmount != 0 || entry.AwardedCompanionID != nil {
			t.Errorf("ledger entry = %+v, want nothing reversed", entry)
		}
	})

	t.Run("companion replaced since completion", func(t *testing.T) {
		f := newFixture(t)
		task := doneTask()
		user := &models.User{ID: 1, FoodCount: 1, ActiveCompanionID: ptr(9)}

		f.tasks.EXPECT().GetForUpdate(gomock.Any(), int64(1), int64(10)).Return(task, nil)
		f.tasks.EXPECT().Update(gomock.Any(), task).Return(nil)
		f.users.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(user, nil)
		f.users.EXPECT().AddFood(gomock.Any(), int64(1), int64(-1)).Return(int64(0), nil)
		f.ledger.EXPECT().LastCompletion(gomock.Any(), int64(1), int64(10)).
			Return(&models.TaskEvent{XPAmount: 20, FoodAmount: 1, AwardedCompanionID: ptr(5)}, nil)
		entry := f.captureEntry()

		if _, err := f.svc.Reopen(context.Background(), 1, 10); err != nil {
			t.Fatalf("Reopen() unexpected error = %v", err)
		}
		if entry.XPAmount != 0 || entry.FoodAmount != -1 {
			t.Errorf("ledger entry = %+v", entry)
		}
	})

	t.Run("open task is a no-op", func(t *testing.T) {
		f := newFixture(t)
		task := todoTask(models.DifficultyNormal, 20)
		f.tasks.EXPECT().GetForUpdate(gomock.Any(), int64(1), int64(10)).Return(task, nil)

		got, err := f.svc.Reopen(context.Background(), 1, 10)
		if err != nil {
			t.Fatalf("Reopen() unexpected error = %v", err)
		}
		if got != task {
			t.Errorf("Reopen() returned a different task")
		}
	})
}

func TestService_Feed(t *testing.T) {
	tests := []struct {
		name      string
		food      int64
		bond      int
		noActive  bool
		wantErr   error
		wantBond  int
		wantSpent bool
	}{
		{name: "raises bond", food: 2, bond: 40, wantBond: 50, wantSpent: true},
		{name: "clamps at max", food: 1, bond: 95, wantBond: 100, wantSpent: true},
		{name: "no food", food: 0, bond: 40, wantErr: apperr.ErrInsufficientResource},
		{name: "bond full", food: 5, bond: 100, wantErr: apperr.ErrLimitReached},
		{name: "no active companion", food: 5, noActive: true, wantErr: apperr.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			user := &models.User{ID: 1, FoodCount: tt.food, ActiveCompanionID: ptr(5)}
			if tt.noActive {
				user.ActiveCompanionID = nil
			}
			companion := &models.Companion{ID: 5, UserID: 1, Level: 3, Exp: 7, Bond: tt.bond, BondMax: 100, State: models.CompanionAlive}

			f.users.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(user, nil)
			if !tt.noActive {
				f.companions.EXPECT().GetForUpdate(gomock.Any(), int64(5)).Return(companion, nil)
			}
			if tt.wantSpent {
				f.users.EXPECT().AddFood(gomock.Any(), int64(1), int64(-1)).Return(tt.food-1, nil)
				f.companions.EXPECT().Update(gomock.Any(), companion).Return(nil)
			}

			out, err := f.svc.Feed(context.Background(), 1)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Feed() error = %v, want %v", err, tt.wantErr)
				}
				if companion.Bond != tt.bond {
					t.Errorf("bond changed on failure: %d", companion.Bond)
				}
				return
			}
			if err != nil {
				t.Fatalf("Feed() unexpected error = %v", err)
			}
			if companion.Bond != tt.wantBond || out.FoodBalance != tt.food-1 {
				t.Errorf("bond = %d food = %d, want %d/%d", companion.Bond, out.FoodBalance, tt.wantBond, tt.food-1)
			}
			if companion.Level != 3 || companion.Exp != 7 {
				t.Errorf("feeding touched growth: %+v", companion)
			}
			if out.Comment != "yum" {
				t.Errorf("Comment = %q", out.Comment)
			}
		})
	}
}

func TestTrigger_Priority(t *testing.T) {
	tests := []struct {
		name string
		in   trigger
		want Reaction
		ok   bool
	}{
		{name: "level up first", in: trigger{leveledUp: true, feed: true, completed: true, logged: true}, want: ReactionLevelUp, ok: true},
		{name: "feed over completion", in: trigger{feed: true, completed: true}, want: ReactionFeed, ok: true},
		{name: "completion over log", in: trigger{completed: true, logged: true}, want: ReactionTaskCompleted, ok: true},
		{name: "log", in: trigger{logged: true}, want: ReactionTaskLogged, ok: true},
		{name: "nothing", in: trigger{}, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.in.reaction()
			if got != tt.want || ok != tt.ok {
				t.Errorf("reaction() = %q, %v, want %q, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}
