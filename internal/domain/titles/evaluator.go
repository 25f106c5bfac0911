// Package titles unlocks achievements from cumulative ledger and companion
// state.
package titles

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/habitpet/habitpet/internal/domain/amount"
	"github.com/habitpet/habitpet/internal/domain/ledger"
	"github.com/habitpet/habitpet/internal/gateways/database/models"
)

const (
	RuleTotalCompletions = "total_completions"
	RuleTotalLogs        = "total_logs"
	RuleLoggedAmount     = "logged_amount"
	RuleStreakDays       = "streak_days"
	RuleCompanionLevel   = "companion_level"
	RuleTotalXP          = "total_xp"
)

// streakLookback bounds how far back ActiveDays is read for streaks.
const streakLookback = 400 * 24 * time.Hour

// State is the post-action view the rules are checked against.
type State struct {
	UserID    int64
	Companion *models.Companion
	Now       time.Time
}

type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate unlocks every active title whose rule the user now satisfies
// and returns the newly unlocked ones in title id order. Metrics are read
// at most once per call.
func (e *Evaluator) Evaluate(ctx context.Context, repo Repository, events ledger.Repository, state State) ([]*models.Title, error) {
	rules, err := repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list titles: %w", err)
	}
	if len(rules) == 0 {
		return nil, nil
	}
	sort.SliceStable(rules, func(i, j int) bool { return rules[i].ID < rules[j].ID })

	owned, err := repo.UnlockedIDs(ctx, state.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load unlocked titles: %w", err)
	}

	m := &metrics{events: events, state: state, cache: make(map[string]int64)}
	var unlocked []*models.Title
	for _, rule := range rules {
		if owned[rule.ID] {
			continue
		}
		value, known, err := m.value(ctx, rule.RuleType)
		if err != nil {
			return nil, err
		}
		if !known || value < rule.Threshold {
			continue
		}

		created, err := repo.Unlock(ctx, &models.UserTitle{
			UserID:     state.UserID,
			TitleID:    rule.ID,
			UnlockedAt: state.Now,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to unlock title %s: %w", rule.Key, err)
		}
		if created {
			unlocked = append(unlocked, rule)
		}
	}
	return unlocked, nil
}

type metrics struct {
	events ledger.Repository
	state  State
	cache  map[string]int64
}

// value reports the user's metric for a rule type. Unknown rule types are
// never satisfied.
func (m *metrics) value(ctx context.Context, ruleType string) (int64, bool, error) {
	if v, ok := m.cache[ruleType]; ok {
		return v, true, nil
	}

	var (
		v   int64
		err error
	)
	userID := m.state.UserID
	switch ruleType {
	case RuleTotalCompletions:
		v, err = m.events.CountByAction(ctx, userID, models.ActionCompleted)
	case RuleTotalLogs:
		v, err = m.events.CountByAction(ctx, userID, models.ActionLogged)
	case RuleLoggedAmount:
		var sum amount.Amount
		sum, err = m.events.SumAmount(ctx, userID)
		v = sum.Whole()
	case RuleTotalXP:
		v, err = m.events.SumXP(ctx, userID)
	case RuleCompanionLevel:
		if m.state.Companion != nil {
			v = int64(m.state.Companion.Level)
		}
	case RuleStreakDays:
		var days []time.Time
		days, err = m.events.ActiveDays(ctx, userID, m.state.Now.Add(-streakLookback))
		v = int64(Streak(days, m.state.Now))
	default:
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to compute %s: %w", ruleType, err)
	}

	m.cache[ruleType] = v
	return v, true, nil
}

// Streak counts consecutive days with activity ending today (UTC). days may
// be in any order and contain duplicates.
func Streak(days []time.Time, now time.Time) int {
	active := make(map[string]bool, len(days))
	for _, d := range days {
		active[d.UTC().Format(time.DateOnly)] = true
	}

	streak := 0
	for day := now.UTC(); active[day.Format(time.DateOnly)]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}
