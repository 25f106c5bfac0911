// Package completion applies task completions, quantity logs, undos and
// feeding as single transactions over tasks, balances, companions, the
// ledger and titles.
package completion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/habitpet/habitpet/internal/apperr"
	"github.com/habitpet/habitpet/internal/domain/amount"
	"github.com/habitpet/habitpet/internal/domain/growth"
	"github.com/habitpet/habitpet/internal/domain/ledger"
	"github.com/habitpet/habitpet/internal/domain/store"
	"github.com/habitpet/habitpet/internal/domain/tasks"
	"github.com/habitpet/habitpet/internal/domain/titles"
	"github.com/habitpet/habitpet/internal/gateways/database/models"
	"github.com/habitpet/habitpet/internal/logger"
)

type Service struct {
	uow       store.UnitOfWork
	engine    *growth.Engine
	evaluator *titles.Evaluator
	comments  Commenter
	now       func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithCommenter(c Commenter) Option {
	return func(s *Service) { s.comments = c }
}

func NewService(uow store.UnitOfWork, engine *growth.Engine, evaluator *titles.Evaluator, opts ...Option) *Service {
	s := &Service{
		uow:       uow,
		engine:    engine,
		evaluator: evaluator,
		comments:  DefaultComments,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Complete moves an open checkbox task to done and pays out its rewards.
func (s *Service) Complete(ctx context.Context, userID, taskID int64) (*Outcome, error) {
	var out *Outcome
	err := s.uow.WithTransaction(ctx, func(ctx context.Context, r store.Repositories) error {
		task, err := r.Tasks.GetForUpdate(ctx, userID, taskID)
		if err != nil {
			return err
		}
		tr, err := tasks.Check(task, tasks.ActionComplete)
		if err != nil {
			return err
		}

		now := s.now()
		task.Status = tr.To
		task.CompletedAt = &now
		task.UpdatedAt = now
		if err := r.Tasks.Update(ctx, task); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}

		pay, err := s.pay(ctx, r, userID, task, now)
		if err != nil {
			return err
		}
		entry := ledger.Completed(task, pay.ledgerAward(), now)
		if err := r.Ledger.Append(ctx, entry); err != nil {
			return fmt.Errorf("failed to append ledger entry: %w", err)
		}

		unlocked, err := s.evaluator.Evaluate(ctx, r.Titles, r.Ledger, titles.State{UserID: userID, Companion: pay.companion, Now: now})
		if err != nil {
			return err
		}

		out = s.outcome(task, pay, entry, unlocked, trigger{completed: true})
		out.Notice = completeNotice(out)
		return nil
	})
	if err != nil {
		return nil, s.fail(string(tasks.ActionComplete), userID, taskID, err)
	}

	logger.LogAction(string(tasks.ActionComplete), userID, taskID,
		slog.Int64("xp", out.XPAwarded),
		slog.Int64("food", out.FoodAwarded),
		slog.Bool("hatched", out.Hatched),
		slog.Bool("evolved", out.Evolved),
	)
	return out, nil
}

// LogAmount records a quantity against a log-mode habit. The task stays
// open. An unparseable amount is stored as zero instead of failing.
func (s *Service) LogAmount(ctx context.Context, userID, taskID int64, rawAmount, unit string) (*Outcome, error) {
	qty := amount.Parse(rawAmount)

	var out *Outcome
	err := s.uow.WithTransaction(ctx, func(ctx context.Context, r store.Repositories) error {
		task, err := r.Tasks.GetForUpdate(ctx, userID, taskID)
		if err != nil {
			return err
		}
		if _, err := tasks.Check(task, tasks.ActionLog); err != nil {
			return err
		}

		now := s.now()
		pay, err := s.pay(ctx, r, userID, task, now)
		if err != nil {
			return err
		}
		entry := ledger.Logged(task, qty, tasks.LogUnit(task, unit), pay.ledgerAward(), now)
		if err := r.Ledger.Append(ctx, entry); err != nil {
			return fmt.Errorf("failed to append ledger entry: %w", err)
		}

		unlocked, err := s.evaluator.Evaluate(ctx, r.Titles, r.Ledger, titles.State{UserID: userID, Companion: pay.companion, Now: now})
		if err != nil {
			return err
		}

		out = s.outcome(task, pay, entry, unlocked, trigger{logged: true})
		out.Notice = logNotice(out)
		return nil
	})
	if err != nil {
		return nil, s.fail(string(tasks.ActionLog), userID, taskID, err)
	}

	logger.LogAction(string(tasks.ActionLog), userID, taskID,
		slog.String("amount", qty.String()),
		slog.String("unit", out.Entry.Unit),
		slog.Int64("xp", out.XPAwarded),
	)
	return out, nil
}

// Reopen undoes a completion on a best-effort basis. The food recorded on
// the last completed entry is taken back up to the current balance and exp is reduced without ever lowering the
// level. Reopening an open task returns it unchanged.
func (s *Service) Reopen(ctx context.Context, userID, taskID int64) (*models.Task, error) {
	var (
		result   *models.Task
		reversed ledger.Award
	)
	err := s.uow.WithTransaction(ctx, func(ctx context.Context, r store.Repositories) error {
		task, err := r.Tasks.GetForUpdate(ctx, userID, taskID)
		if err != nil {
			return err
		}
		tr, err := tasks.Check(task, tasks.ActionReopen)
		if err != nil {
			return err
		}
		if tr.Noop {
			result = task
			reversed = ledger.Award{}
			return nil
		}

		now := s.now()
		task.Status = tr.To
		task.CompletedAt = nil
		task.UpdatedAt = now
		if err := r.Tasks.Update(ctx, task); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}

		user, err := r.Users.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		last, err := r.Ledger.LastCompletion(ctx, userID, taskID)
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			last = nil
		case err != nil:
			return fmt.Errorf("failed to load last completion: %w", err)
		}

		// Take back what the completion paid, not the task's current reward,
		// which may have been edited since.
		credited := tasks.RewardFood(task)
		if last != nil {
			credited = max(last.FoodAmount, 0)
		}
		award := ledger.Award{Food: min(credited, max(user.FoodCount, 0))}
		if award.Food > 0 {
			if _, err := r.Users.AddFood(ctx, userID, -award.Food); err != nil {
				return fmt.Errorf("failed to debit food: %w", err)
			}
		}

		if last != nil && last.XPAmount > 0 && sameCompanion(last.AwardedCompanionID, user.ActiveCompanionID) {
			companion, err := r.Companions.GetForUpdate(ctx, *user.ActiveCompanionID)
			if err != nil {
				return err
			}
			if companion.Alive() {
				res := s.engine.Decrease(companion.Level, companion.Exp, last.XPAmount)
				companion.Exp = res.Exp
				companion.UpdatedAt = now
				if err := r.Companions.Update(ctx, companion); err != nil {
					return fmt.Errorf("failed to update companion: %w", err)
				}
				award.CompanionID = &companion.ID
				award.XP = last.XPAmount
			}
		}

		if err := r.Ledger.Append(ctx, ledger.Reopened(task, award, now)); err != nil {
			return fmt.Errorf("failed to append ledger entry: %w", err)
		}

		result = task
		reversed = award
		return nil
	})
	if err != nil {
		return nil, s.fail(string(tasks.ActionReopen), userID, taskID, err)
	}

	logger.LogAction(string(tasks.ActionReopen), userID, taskID,
		slog.Int64("xp", -reversed.XP),
		slog.Int64("food", -reversed.Food),
	)
	return result, nil
}

// Feed spends one food to raise the active companion's bond. Feeding never
// touches exp or level and writes no ledger entry.
func (s *Service) Feed(ctx context.Context, userID int64) (*Outcome, error) {
	var out *Outcome
	err := s.uow.WithTransaction(ctx, func(ctx context.Context, r store.Repositories) error {
		user, err := r.Users.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user.ActiveCompanionID == nil {
			return apperr.New(apperr.CodeNotFound, "no active companion")
		}
		companion, err := r.Companions.GetForUpdate(ctx, *user.ActiveCompanionID)
		if err != nil {
			return err
		}
		if !companion.Alive() {
			return apperr.InvalidOperation("companion %d is not alive", companion.ID)
		}

		bond, err := s.engine.Feed(companion.Bond, companion.BondMax, user.FoodCount)
		if err != nil {
			return err
		}

		balance, err := r.Users.AddFood(ctx, userID, -1)
		if err != nil {
			return fmt.Errorf("failed to spend food: %w", err)
		}

		now := s.now()
		companion.Bond = bond.Bond
		companion.BondMax = bond.BondMax
		companion.LastActivityAt = &now
		companion.UpdatedAt = now
		if err := r.Companions.Update(ctx, companion); err != nil {
			return fmt.Errorf("failed to update companion: %w", err)
		}

		out = &Outcome{
			Companion:   companion,
			Bond:        &bond,
			FoodBalance: balance,
			Notice:      "Fed your companion!",
		}
		out.Comment = s.comment(trigger{feed: true}, companion)
		return nil
	})
	if err != nil {
		return nil, s.fail("feed", userID, 0, err)
	}

	logger.LogAction("feed", userID, 0, slog.Int("bond", out.Bond.Bond))
	return out, nil
}

// payout is what one completion or log credited.
type payout struct {
	food      int64
	balance   int64
	xp        int64
	companion *models.Companion
	growth    *growth.Result
}

func (p payout) ledgerAward() ledger.Award {
	a := ledger.Award{XP: p.xp, Food: p.food}
	if p.growth != nil {
		a.CompanionID = &p.companion.ID
	}
	return a
}

// pay credits the task's food to the user and its exp to the active
// companion. A dead or missing companion gets nothing and the recorded exp
// is zero.
func (s *Service) pay(ctx context.Context, r store.Repositories, userID int64, task *models.Task, now time.Time) (payout, error) {
	user, err := r.Users.GetForUpdate(ctx, userID)
	if err != nil {
		return payout{}, err
	}

	p := payout{balance: user.FoodCount}
	if food := tasks.RewardFood(task); food > 0 {
		balance, err := r.Users.AddFood(ctx, userID, food)
		if err != nil {
			return payout{}, fmt.Errorf("failed to credit food: %w", err)
		}
		p.food = food
		p.balance = balance
	}

	if user.ActiveCompanionID == nil {
		return p, nil
	}
	companion, err := r.Companions.GetForUpdate(ctx, *user.ActiveCompanionID)
	if err != nil {
		return payout{}, err
	}
	p.companion = companion
	if !companion.Alive() {
		return p, nil
	}

	res := s.engine.Award(companion.Level, companion.Exp, task.RewardExp)
	if res.Hatched || res.Evolved {
		if err := s.evolve(ctx, r, companion, res.Stage); err != nil {
			return payout{}, err
		}
	}

	companion.Level = res.Level
	companion.Exp = res.Exp
	companion.LastActivityAt = &now
	companion.UpdatedAt = now
	if err := r.Companions.Update(ctx, companion); err != nil {
		return payout{}, fmt.Errorf("failed to update companion: %w", err)
	}

	p.xp = res.ExpDelta
	p.growth = &res
	return p, nil
}

// evolve moves the companion onto a kind of the target stage, walking the
// species lineage one stage at a time.
func (s *Service) evolve(ctx context.Context, r store.Repositories, companion *models.Companion, target models.Stage) error {
	current := companion.Kind
	if current == nil || current.ID != companion.CharacterKindID {
		kind, err := r.Kinds.GetByID(ctx, companion.CharacterKindID)
		if err != nil {
			return fmt.Errorf("failed to load character kind: %w", err)
		}
		current = kind
	}

	next, err := growth.Evolve(ctx, r.Kinds, current, target, companion.ID)
	if err != nil {
		return fmt.Errorf("failed to evolve companion %d: %w", companion.ID, err)
	}
	companion.CharacterKindID = next.ID
	companion.Kind = next
	return nil
}

func (s *Service) outcome(task *models.Task, p payout, entry *models.TaskEvent, unlocked []*models.Title, t trigger) *Outcome {
	out := &Outcome{
		Task:        task,
		Companion:   p.companion,
		Growth:      p.growth,
		Entry:       entry,
		XPAwarded:   p.xp,
		FoodAwarded: p.food,
		FoodBalance: p.balance,
		Unlocked:    unlocked,
	}
	if p.growth == nil {
		return out
	}

	out.Hatched = p.growth.Hatched
	out.Evolved = p.growth.Evolved
	if out.Hatched || out.Evolved {
		return out
	}
	t.leveledUp = p.growth.LeveledUp()
	out.Comment = s.comment(t, p.companion)
	return out
}

func (s *Service) comment(t trigger, companion *models.Companion) string {
	reaction, ok := t.reaction()
	if !ok || s.comments == nil {
		return ""
	}
	return s.comments.Comment(reaction, companion.ID+companion.Exp)
}

// fail passes classified errors through and turns anything else into a
// generic failure, logged with enough context to replay by hand.
func (s *Service) fail(action string, userID, taskID int64, err error) error {
	if apperr.Classified(err) {
		return err
	}
	logger.LogError("Task action failed", err,
		slog.String("action", action),
		slog.Int64("user_id", userID),
		slog.Int64("task_id", taskID),
	)
	return apperr.Wrap(apperr.CodeInternal, action+" failed", err)
}

func sameCompanion(a, b *int64) bool {
	return a != nil && b != nil && *a == *b
}

func completeNotice(o *Outcome) string {
	switch {
	case o.Evolved:
		return "Your companion evolved!"
	case o.Hatched:
		return "Your companion hatched!"
	case o.XPAwarded > 0:
		return fmt.Sprintf("Task completed! +%d EXP, +%d food", o.XPAwarded, o.FoodAwarded)
	default:
		return fmt.Sprintf("Task completed! +%d food", o.FoodAwarded)
	}
}

func logNotice(o *Outcome) string {
	logged := fmt.Sprintf("Logged %s %s", o.Entry.Amount, o.Entry.Unit)
	switch {
	case o.Evolved:
		return logged + ". Your companion evolved!"
	case o.Hatched:
		return logged + ". Your companion hatched!"
	case o.XPAwarded > 0:
		return fmt.Sprintf("%s. +%d EXP, +%d food", logged, o.XPAwarded, o.FoodAwarded)
	default:
		return fmt.Sprintf("%s. +%d food", logged, o.FoodAwarded)
	}
}
