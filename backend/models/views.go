package models

import (
	"time"

	"github.com/habitpet/habitpet/internal/domain/amount"
	"github.com/habitpet/habitpet/internal/domain/completion"
	"github.com/habitpet/habitpet/internal/domain/leaderboard"
	db "github.com/habitpet/habitpet/internal/gateways/database/models"
)

type TaskView struct {
	ID              int64          `json:"id"`
	Title           string         `json:"title"`
	Kind            string         `json:"kind"`
	Status          string         `json:"status"`
	TrackingMode    string         `json:"tracking_mode,omitempty"`
	Difficulty      string         `json:"difficulty"`
	RewardExp       int64          `json:"reward_exp"`
	RewardFoodCount int64          `json:"reward_food_count"`
	TargetValue     *amount.Amount `json:"target_value,omitempty"`
	TargetUnit      string         `json:"target_unit,omitempty"`
	TargetPeriod    string         `json:"target_period,omitempty"`
	Tag             string         `json:"tag,omitempty"`
	DueOn           *time.Time     `json:"due_on,omitempty"`
	RepeatDays      []int          `json:"repeat_days,omitempty"`
	CompletedAt     *time.Time     `json:"completed_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func NewTaskView(t *db.Task) *TaskView {
	if t == nil {
		return nil
	}
	return &TaskView{
		ID:              t.ID,
		Title:           t.Title,
		Kind:            string(t.Kind),
		Status:          string(t.Status),
		TrackingMode:    string(t.TrackingMode),
		Difficulty:      string(t.Difficulty),
		RewardExp:       t.RewardExp,
		RewardFoodCount: t.RewardFoodCount,
		TargetValue:     t.TargetValue,
		TargetUnit:      t.TargetUnit,
		TargetPeriod:    t.TargetPeriod,
		Tag:             t.Tag,
		DueOn:           t.DueOn,
		RepeatDays:      t.RepeatDays,
		CompletedAt:     t.CompletedAt,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func NewTaskViews(list []*db.Task) []*TaskView {
	out := make([]*TaskView, 0, len(list))
	for _, t := range list {
		out = append(out, NewTaskView(t))
	}
	return out
}

type CompanionView struct {
	ID             int64      `json:"id"`
	KindID         int64      `json:"kind_id"`
	KindName       string     `json:"kind_name,omitempty"`
	AssetKey       string     `json:"asset_key,omitempty"`
	Stage          string     `json:"stage,omitempty"`
	Level          int        `json:"level"`
	Exp            int64      `json:"exp"`
	Bond           int        `json:"bond"`
	BondMax        int        `json:"bond_max"`
	State          string     `json:"state"`
	LastActivityAt *time.Time `json:"last_activity_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func NewCompanionView(c *db.Companion) *CompanionView {
	if c == nil {
		return nil
	}
	v := &CompanionView{
		ID:             c.ID,
		KindID:         c.CharacterKindID,
		Level:          c.Level,
		Exp:            c.Exp,
		Bond:           c.Bond,
		BondMax:        c.BondMax,
		State:          string(c.State),
		LastActivityAt: c.LastActivityAt,
		CreatedAt:      c.CreatedAt,
	}
	if c.Kind != nil {
		v.KindName = c.Kind.Name
		v.AssetKey = c.Kind.AssetKey
		v.Stage = string(c.Kind.Stage)
	}
	return v
}

func NewCompanionViews(list []*db.Companion) []*CompanionView {
	out := make([]*CompanionView, 0, len(list))
	for _, c := range list {
		out = append(out, NewCompanionView(c))
	}
	return out
}

type TitleView struct {
	Key         string     `json:"key"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

func NewTitleView(t *db.Title) *TitleView {
	return &TitleView{Key: t.Key, Name: t.Name, Description: t.Description}
}

func NewUserTitleViews(list []*db.UserTitle) []*TitleView {
	out := make([]*TitleView, 0, len(list))
	for _, ut := range list {
		if ut.Title == nil {
			continue
		}
		v := NewTitleView(ut.Title)
		at := ut.UnlockedAt
		v.UnlockedAt = &at
		out = append(out, v)
	}
	return out
}

type GrowthView struct {
	LevelBefore int      `json:"level_before"`
	Level       int      `json:"level"`
	Exp         int64    `json:"exp"`
	ExpDelta    int64    `json:"exp_delta"`
	RequiredExp int64    `json:"required_exp"`
	Stage       string   `json:"stage,omitempty"`
	LeveledUp   bool     `json:"leveled_up"`
	Crossed     []string `json:"crossed,omitempty"`
}

type BondView struct {
	Bond    int   `json:"bond"`
	BondMax int   `json:"bond_max"`
	Food    int64 `json:"food"`
}

// OutcomeView is the response of every reward-bearing action.
type OutcomeView struct {
	Task        *TaskView      `json:"task,omitempty"`
	Companion   *CompanionView `json:"companion,omitempty"`
	Growth      *GrowthView    `json:"growth,omitempty"`
	Bond        *BondView      `json:"bond,omitempty"`
	XPAwarded   int64          `json:"xp_awarded"`
	FoodAwarded int64          `json:"food_awarded"`
	FoodBalance int64          `json:"food_balance"`
	Hatched     bool           `json:"hatched"`
	Evolved     bool           `json:"evolved"`
	Unlocked    []*TitleView   `json:"unlocked,omitempty"`
	Notice      string         `json:"notice,omitempty"`
	Comment     string         `json:"comment,omitempty"`
}

func NewOutcomeView(o *completion.Outcome) *OutcomeView {
	v := &OutcomeView{
		Task:        NewTaskView(o.Task),
		Companion:   NewCompanionView(o.Companion),
		XPAwarded:   o.XPAwarded,
		FoodAwarded: o.FoodAwarded,
		FoodBalance: o.FoodBalance,
		Hatched:     o.Hatched,
		Evolved:     o.Evolved,
		Notice:      o.Notice,
		Comment:     o.Comment,
	}
	if g := o.Growth; g != nil {
		v.Growth = &GrowthView{
			LevelBefore: g.LevelBefore,
			Level:       g.Level,
			Exp:         g.Exp,
			ExpDelta:    g.ExpDelta,
			RequiredExp: g.RequiredExp,
			Stage:       string(g.Stage),
			LeveledUp:   g.LeveledUp(),
		}
		for _, s := range g.Crossed() {
			v.Growth.Crossed = append(v.Growth.Crossed, string(s))
		}
	}
	if b := o.Bond; b != nil {
		v.Bond = &BondView{Bond: b.Bond, BondMax: b.BondMax, Food: b.Food}
	}
	for _, t := range o.Unlocked {
		v.Unlocked = append(v.Unlocked, NewTitleView(t))
	}
	return v
}

type RankingView struct {
	Rank  int               `json:"rank"`
	Entry leaderboard.Entry `json:"entry"`
}

func NewRankingViews(entries []leaderboard.Entry) []RankingView {
	out := make([]RankingView, 0, len(entries))
	for i, e := range entries {
		out = append(out, RankingView{Rank: i + 1, Entry: e})
	}
	return out
}

type MyRankView struct {
	Ranked bool `json:"ranked"`
	Rank   int  `json:"rank,omitempty"`
}
